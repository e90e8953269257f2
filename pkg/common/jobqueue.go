package common

import "sync"

type Job func() error

// JobQueue runs jobs one by one on a single background goroutine, in the order they were enqueued.
// Frontends use it to keep slow operations (such as loading a model) off the input loop.
type JobQueue struct {
	jobsChannel chan Job
	waitGroup   sync.WaitGroup
	stopOnce    sync.Once
	logger      Logger
}

func NewJobQueue(logger Logger) *JobQueue {
	queue := &JobQueue{
		jobsChannel: make(chan Job, 128),
		logger:      logger,
	}
	queue.waitGroup.Add(1)
	go queue.run()
	return queue
}

// Enqueue must not be called after Stop.
func (j *JobQueue) Enqueue(job Job) {
	j.jobsChannel <- job
}

// Stop waits for all the jobs enqueued so far to finish.
func (j *JobQueue) Stop() {
	j.stopOnce.Do(func() {
		close(j.jobsChannel)
	})
	j.waitGroup.Wait()
}

func (j *JobQueue) run() {
	defer j.waitGroup.Done()
	for job := range j.jobsChannel {
		err := job()
		if err != nil {
			j.logger.Log("failed to process a job: " + err.Error())
		}
	}
}

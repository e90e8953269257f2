package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"kgeyst.com/modelkit/pkg/common"
	"kgeyst.com/modelkit/pkg/modelkit/api"
	"kgeyst.com/modelkit/pkg/modelkit/domain"
)

const help = `Commands:
  :list              list available models
  :use <n|name>      select a model (not loaded yet)
  :load              load the selected model in the background
  :info              describe the selected model
  :image <path|url>  classify an image
  :quit              exit
Anything else is sent to the selected model as text.`

func main() {
	err := mainImpl()
	if err != nil {
		panic(err)
	}
}

func mainImpl() error {
	config, err := common.LoadConfigOrDefault("config.yaml")
	if err != nil {
		return err
	}
	models, err := api.NewAPI(config)
	if err != nil {
		return err
	}
	jobQueue := common.NewJobQueue(models.Logger())
	defer jobQueue.Stop()
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer func() {
		_ = rl.Close()
	}()
	s := &session{
		api:      models,
		jobQueue: jobQueue,
		out:      rl.Stdout(),
	}
	_, _ = fmt.Fprintln(s.out, help)
	s.list()
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF, readline.ErrInterrupt
			break
		}
		line = strings.TrimSpace(line)
		if line == ":quit" {
			break
		}
		s.handle(line)
	}
	return nil
}

type session struct {
	api      api.API
	jobQueue *common.JobQueue
	out      io.Writer
	// Guards model: Load() runs on the job queue while the input loop keeps going.
	mutex       sync.Mutex
	model       domain.Model
	modelNumber int
}

func (s *session) handle(line string) {
	command, argument, _ := strings.Cut(line, " ")
	argument = strings.TrimSpace(argument)
	switch command {
	case "":
	case ":help":
		s.println(help)
	case ":list":
		s.list()
	case ":use":
		s.use(argument)
	case ":load":
		s.load()
	case ":info":
		s.info()
	case ":image":
		s.processImage(argument)
	default:
		s.process(domain.InputKindText, line)
	}
}

func (s *session) list() {
	for i, modelType := range s.api.ListAvailable() {
		s.println(fmt.Sprintf("  %d. %s", i+1, modelType))
	}
}

func (s *session) use(selection string) {
	modelTypes := s.api.ListAvailable()
	modelType := selection
	if number, err := strconv.Atoi(selection); err == nil && number >= 1 && number <= len(modelTypes) {
		modelType = modelTypes[number-1]
	}
	if !s.mutex.TryLock() {
		s.println("Please wait, the model is still loading")
		return
	}
	defer s.mutex.Unlock()
	model, err := s.api.Create(modelType)
	if err != nil {
		s.println(err.Error())
		return
	}
	s.model = model
	s.modelNumber = indexOf(modelTypes, modelType) + 1
	s.printJSON(model.Describe())
}

func (s *session) load() {
	if !s.mutex.TryLock() {
		s.println("Please wait, the model is still loading")
		return
	}
	model := s.model
	if model == nil {
		s.mutex.Unlock()
		s.println("Please select a model first (:use)")
		return
	}
	s.println("Loading " + model.Name() + "...")
	s.jobQueue.Enqueue(func() error {
		defer s.mutex.Unlock()
		model.Load()
		if model.LoadState() != domain.LoadStateLoaded {
			s.println("Failed to load " + model.Name() + " (see the log)")
			return nil
		}
		s.println("Successfully loaded " + model.Name())
		return nil
	})
}

func (s *session) info() {
	if !s.mutex.TryLock() {
		s.println("Please wait, the model is still loading")
		return
	}
	defer s.mutex.Unlock()
	if s.model == nil {
		s.println("Please select a model first (:use)")
		return
	}
	s.printJSON(s.model.Describe())
}

func (s *session) processImage(input string) {
	path, cleanup, err := s.api.ResolveImageInput(input)
	defer cleanup()
	if err != nil {
		s.println(err.Error())
		return
	}
	s.process(domain.InputKindImage, path)
}

func (s *session) process(kind domain.InputKind, input string) {
	if !s.mutex.TryLock() {
		s.println("Please wait, the model is still loading")
		return
	}
	defer s.mutex.Unlock()
	if s.model == nil {
		s.println("Please select a model first (:use)")
		return
	}
	if s.model.LoadState() != domain.LoadStateLoaded {
		s.println("Model is not loaded (:load)")
		return
	}
	output, err := s.api.Run(s.model, s.modelNumber, kind, input)
	if err != nil {
		s.println(err.Error())
		return
	}
	s.println(output.JSON())
}

func (s *session) println(message string) {
	_, _ = fmt.Fprintln(s.out, message)
}

func (s *session) printJSON(descriptor domain.Descriptor) {
	data, err := json.MarshalIndent(descriptor, "", "  ")
	if err != nil {
		s.println(err.Error())
		return
	}
	s.println(string(data))
}

func indexOf(slice []string, str string) int {
	for i, s := range slice {
		if s == str {
			return i
		}
	}
	return -1
}

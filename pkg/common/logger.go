package common

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

type Logger interface {
	Log(message string)
}

const logTimeFormat = "2006-01-02 15:04:05.000"

type fileLogger struct {
	mutex      sync.Mutex
	path       string
	fileWriter *bufio.Writer
	console    io.Writer
}

// NewFileLogger logs to the file specified by `path`. If the file is unavailable, writes to the console.
// Safe for concurrent use: frontends log from both the input loop and the job queue.
func NewFileLogger(path string) Logger {
	return &fileLogger{
		path:    path,
		console: os.Stdout,
	}
}

func (f *fileLogger) Log(message string) {
	line := formatLogLine(message)
	f.mutex.Lock()
	defer f.mutex.Unlock()
	if !f.fileWriterReady() {
		f.logMessageToConsole(line)
		return
	}
	_, err := f.fileWriter.WriteString(line)
	if err != nil {
		f.logErrorToConsole(err.Error())
		f.logMessageToConsole(line)
		return
	}
	err = f.fileWriter.Flush()
	if err != nil {
		f.logErrorToConsole(err.Error())
	}
}

func (f *fileLogger) logErrorToConsole(message string) {
	_, _ = fmt.Fprintf(f.console, "Error: %s. Logging switched to console.\n", message)
}

func (f *fileLogger) logMessageToConsole(line string) {
	_, _ = fmt.Fprint(f.console, line)
}

func (f *fileLogger) fileWriterReady() bool {
	if f.fileWriter != nil {
		return true
	}
	if f.path == "" {
		return false
	}
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		f.logErrorToConsole(err.Error())
		f.path = "" // don't retry on every message
		return false
	}
	f.fileWriter = bufio.NewWriter(file)
	return true
}

func formatLogLine(message string) string {
	return fmt.Sprintf("[%s] %s\n", time.Now().Format(logTimeFormat), strings.TrimRight(message, "\n"))
}

type nopLogger struct{}

// NewNopLogger discards everything.
func NewNopLogger() Logger {
	return nopLogger{}
}

func (nopLogger) Log(string) {}

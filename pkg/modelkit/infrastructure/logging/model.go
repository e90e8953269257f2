package logging

import (
	"fmt"
	"time"

	"kgeyst.com/modelkit/pkg/common"
	"kgeyst.com/modelkit/pkg/modelkit/domain"
)

type modelDecorator struct {
	domain.Model
	logger common.Logger
}

// NewModelDecorator logs how long Load() and Process(..) of `wrappedModel` take, and how they end.
func NewModelDecorator(wrappedModel domain.Model, logger common.Logger) domain.Model {
	return &modelDecorator{
		Model:  wrappedModel,
		logger: logger,
	}
}

func (m *modelDecorator) Load() {
	t := time.Now()
	m.Model.Load()
	m.logger.Log(fmt.Sprintf("load '%s' (%s): %s (took %d ms)", m.Name(), m.ID(), m.LoadState(), since(t)))
}

func (m *modelDecorator) Process(input string) (*domain.Result, error) {
	t := time.Now()
	result, err := m.Model.Process(input)
	switch {
	case err != nil:
		m.logger.Log(fmt.Sprintf("process '%s' (%s): rejected: %s", m.Name(), m.ID(), err))
	case result.IsError():
		m.logger.Log(fmt.Sprintf("process '%s' (%s): %s (took %d ms)", m.Name(), m.ID(), result.Error, since(t)))
	default:
		m.logger.Log(fmt.Sprintf("process '%s' (%s): %d predictions (took %d ms)", m.Name(), m.ID(), len(result.Predictions), since(t)))
	}
	return result, err
}

func since(t time.Time) int64 {
	return time.Since(t).Milliseconds()
}

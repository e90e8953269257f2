package domain_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kgeyst.com/modelkit/pkg/modelkit/domain"
)

type echoProcessor struct {
	panicOn string
}

func (e *echoProcessor) Prepare(input string) (*domain.Result, error) {
	switch {
	case input == e.panicOn:
		panic("processor exploded")
	case input == "unsupported":
		return nil, domain.NewUnsupportedFormatError("Nope")
	case input == "broken":
		return nil, errors.New("disk on fire")
	}
	return &domain.Result{Input: strings.ToUpper(input)}, nil
}

func (e *echoProcessor) Simulate(input string) []domain.Prediction {
	return []domain.Prediction{{Label: "simulated:" + input, Score: 0.5}}
}

func newTestModel(provider domain.ResponderProvider, maxPredictions int) *domain.BaseModel {
	return domain.NewBaseModel(domain.BaseModelOptions{
		Name:     "echo-model",
		Category: "Echo",
		Capability: domain.CapabilityMetadata{
			Description: "echoes",
			InputType:   "Text",
			OutputType:  "Echo",
			UseCase:     "tests",
		},
		Accepts:           domain.InputKindText,
		Processor:         &echoProcessor{panicOn: "panic"},
		ResponderProvider: provider,
		MaxPredictions:    maxPredictions,
	})
}

func TestBaseModelStartsNotLoaded(t *testing.T) {
	model := newTestModel(nil, 0)
	assert.Equal(t, domain.LoadStateNotLoaded, model.LoadState())
	assert.NotEmpty(t, model.ID())
	assert.NotEqual(t, model.ID(), newTestModel(nil, 0).ID())

	result, err := model.Process("hello")
	require.NoError(t, err)
	assert.True(t, result.IsError())
	assert.Equal(t, "Model not loaded", result.Error)
	assert.True(t, errors.Is(result.Failure, domain.ErrModelNotLoaded))
}

func TestBaseModelRejectsEmptyInputFirst(t *testing.T) {
	model := newTestModel(nil, 0)
	_, err := model.Process("")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	model.Load()
	_, err = model.Process("")
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestBaseModelSimulatedWithoutProvider(t *testing.T) {
	model := newTestModel(nil, 0)
	model.Load()
	require.Equal(t, domain.LoadStateLoaded, model.LoadState())

	result, err := model.Process("hi")
	require.NoError(t, err)
	assert.False(t, result.IsError())
	assert.Equal(t, "HI", result.Input)
	assert.Equal(t, "echo-model", result.ModelUsed)
	assert.Equal(t, []domain.Prediction{{Label: "simulated:HI", Score: 0.5}}, result.Predictions)
	assert.Equal(t, domain.LoadStateLoaded, model.LoadState())
}

func TestBaseModelFallsBackWhenResponderUnavailable(t *testing.T) {
	var requestedName string
	model := newTestModel(func(modelName string) (domain.Responder, error) {
		requestedName = modelName
		return nil, errors.Wrap(domain.ErrResponderUnavailable, "not installed")
	}, 0)
	model.Load()
	assert.Equal(t, "echo-model", requestedName)
	require.Equal(t, domain.LoadStateLoaded, model.LoadState())

	result, err := model.Process("x")
	require.NoError(t, err)
	top, ok := result.TopPrediction()
	require.True(t, ok)
	assert.Equal(t, "simulated:X", top.Label)
}

func TestBaseModelFailsToLoad(t *testing.T) {
	calls := 0
	model := newTestModel(func(string) (domain.Responder, error) {
		calls++
		return nil, errors.New("permission denied")
	}, 0)
	model.Load()
	assert.Equal(t, domain.LoadStateFailedToLoad, model.LoadState())
	assert.Equal(t, domain.LoadStateFailedToLoad, model.Describe().Status)

	result, err := model.Process("x")
	require.NoError(t, err)
	assert.True(t, errors.Is(result.Failure, domain.ErrModelNotLoaded))

	// another attempt is allowed
	model.Load()
	assert.Equal(t, 2, calls)
	assert.Equal(t, domain.LoadStateFailedToLoad, model.LoadState())
}

func TestBaseModelLoadIsIdempotent(t *testing.T) {
	calls := 0
	model := newTestModel(func(string) (domain.Responder, error) {
		calls++
		return domain.ResponderFunc(func(string) ([]domain.Prediction, error) {
			return nil, nil
		}), nil
	}, 0)
	model.Load()
	model.Load()
	assert.Equal(t, 1, calls)
	assert.Equal(t, domain.LoadStateLoaded, model.LoadState())
}

func TestBaseModelRanksAndTruncatesRealPredictions(t *testing.T) {
	model := newTestModel(func(string) (domain.Responder, error) {
		return domain.ResponderFunc(func(string) ([]domain.Prediction, error) {
			return []domain.Prediction{
				{Label: "c", Score: 0.1},
				{Label: "a", Score: 0.9},
				{Label: "b", Score: 0.5},
			}, nil
		}), nil
	}, 2)
	model.Load()
	result, err := model.Process("x")
	require.NoError(t, err)
	assert.Equal(t, []domain.Prediction{{Label: "a", Score: 0.9}, {Label: "b", Score: 0.5}}, result.Predictions)
}

func TestBaseModelSoftErrors(t *testing.T) {
	model := newTestModel(func(string) (domain.Responder, error) {
		return domain.ResponderFunc(func(input string) ([]domain.Prediction, error) {
			if input == "FAIL" {
				return nil, errors.New("responder crashed")
			}
			return []domain.Prediction{{Label: "ok", Score: 1}}, nil
		}), nil
	}, 0)
	model.Load()

	tests := []struct {
		input   string
		kind    error
		message string
	}{
		{"unsupported", domain.ErrUnsupportedFormat, "Nope"},
		{"broken", domain.ErrProcessingFailure, "Processing failed: disk on fire"},
		{"fail", domain.ErrProcessingFailure, "Processing failed: responder crashed"},
		{"panic", domain.ErrProcessingFailure, "Processing failed: processor exploded"},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			result, err := model.Process(test.input)
			require.NoError(t, err)
			assert.True(t, errors.Is(result.Failure, test.kind))
			assert.Equal(t, test.message, result.Error)
			assert.Empty(t, result.Predictions)
			assert.Equal(t, domain.LoadStateLoaded, model.LoadState())
		})
	}
}

func TestBaseModelDescribe(t *testing.T) {
	model := newTestModel(nil, 0)
	first := model.Describe()
	assert.Equal(t, first, model.Describe())
	assert.Equal(t, "echo-model", first.Name)
	assert.Equal(t, "Echo", first.Category)
	assert.Equal(t, "echoes", first.Description)
	assert.Equal(t, domain.LoadStateNotLoaded, first.Status)

	model.Load()
	assert.Equal(t, domain.LoadStateLoaded, model.Describe().Status)
}

func TestBaseModelAccepts(t *testing.T) {
	model := newTestModel(nil, 0)
	assert.True(t, model.Accepts(domain.InputKindText))
	assert.False(t, model.Accepts(domain.InputKindImage))
}

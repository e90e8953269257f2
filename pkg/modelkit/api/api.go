package api

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mvdan/xurls"

	"kgeyst.com/modelkit/pkg/common"
	"kgeyst.com/modelkit/pkg/modelkit/domain"
	"kgeyst.com/modelkit/pkg/modelkit/domain/imagemodel"
	"kgeyst.com/modelkit/pkg/modelkit/domain/textmodel"
	"kgeyst.com/modelkit/pkg/modelkit/infrastructure/command"
	"kgeyst.com/modelkit/pkg/modelkit/infrastructure/filesystem"
	"kgeyst.com/modelkit/pkg/modelkit/infrastructure/logging"
)

// Model type identifiers, in the order they're listed.
const (
	ModelTypeTextClassification  = textmodel.Category
	ModelTypeImageClassification = imagemodel.Category
)

// API is the entrypoint to the models. It shouldn't contain any logic of its own; it glues the registry, the
// variants and the infrastructure together for frontends (console, IRC etc.)
type API interface {
	// ListAvailable the model type identifiers to choose from, in a stable order.
	ListAvailable() []string
	// Create makes a new, not yet loaded model instance of the given type. Fails with domain.ErrUnknownModelType.
	Create(modelType string) (domain.Model, error)
	// Describe describes the given model type without loading anything. Useful for information panels which are
	// updated whenever the selection changes.
	Describe(modelType string) (domain.Descriptor, error)
	// Run processes `input` with `model` and wraps the result for display. `modelNumber` is the 1-based position
	// of the model's type in ListAvailable(). Only domain.ErrInvalidInput is returned as an error.
	Run(model domain.Model, modelNumber int, kind domain.InputKind, input string) (*Output, error)
	// ResolveImageInput turns what the user typed into a local image path: quotes are removed and URLs are
	// downloaded to a temporary file. `cleanup` removes the temporary file, if any, and is never nil.
	ResolveImageInput(input string) (path string, cleanup func(), err error)
	// Logger the logger the models log to. Frontends can log to it as well.
	Logger() common.Logger
}

// Load() pretends to be busy for a second by default, so that frontends have some progress to show.
const defaultLoadDelay = time.Second

// Output is what frontends display after processing.
type Output struct {
	ModelNumber int              `json:"model_number"`
	InputType   domain.InputKind `json:"input_type"`
	ModelName   string           `json:"model_name"`
	Result      *domain.Result   `json:"result,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// JSON pretty-prints the output.
func (o *Output) JSON() string {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(data)
}

type api struct {
	registry             *domain.ModelRegistry
	tempFilePathProvider *filesystem.TempFilePathProvider
	logger               common.Logger
}

func NewAPI(config *common.Config) (API, error) {
	logger := common.NewFileLogger(config.GetStringOrDefault(domain.ConfigKeyLogPath, "log.txt"))
	loadDelay := config.GetDurationOrDefault(domain.ConfigKeyLoadDelay, defaultLoadDelay)
	registry, err := domain.NewModelRegistry(
		domain.RegistryEntry{
			ID: ModelTypeTextClassification,
			Constructor: func() domain.Model {
				return textmodel.NewModel(textmodel.Options{
					Name:              config.GetString(domain.ConfigKeyTextModelName),
					MaxLength:         config.GetIntOrDefault(domain.ConfigKeyMaxTextLength, textmodel.DefaultMaxLength),
					LoadDelay:         loadDelay,
					ResponderProvider: command.NewResponderProvider(config.GetString(domain.ConfigKeySentimentCommand)),
					Logger:            logger,
				})
			},
		},
		domain.RegistryEntry{
			ID: ModelTypeImageClassification,
			Constructor: func() domain.Model {
				return imagemodel.NewModel(imagemodel.Options{
					Name:              config.GetString(domain.ConfigKeyImageModelName),
					MaxPredictions:    config.GetIntOrDefault(domain.ConfigKeyMaxImagePredictions, imagemodel.DefaultMaxPredictions),
					LoadDelay:         loadDelay,
					ResponderProvider: command.NewResponderProvider(config.GetString(domain.ConfigKeyImageClassificationCommand)),
					Logger:            logger,
				})
			},
		},
	)
	if err != nil {
		return nil, err
	}
	return &api{
		registry:             registry,
		tempFilePathProvider: filesystem.NewTempFilePathProvider(config),
		logger:               logger,
	}, nil
}

func (a *api) ListAvailable() []string {
	return a.registry.ListAvailable()
}

func (a *api) Create(modelType string) (domain.Model, error) {
	model, err := a.registry.Create(modelType)
	if err != nil {
		return nil, err
	}
	return logging.NewModelDecorator(model, a.logger), nil
}

func (a *api) Describe(modelType string) (domain.Descriptor, error) {
	model, err := a.registry.Create(modelType)
	if err != nil {
		return domain.Descriptor{}, err
	}
	return model.Describe(), nil
}

func (a *api) Run(model domain.Model, modelNumber int, kind domain.InputKind, input string) (*Output, error) {
	output := &Output{
		ModelNumber: modelNumber,
		InputType:   kind,
		ModelName:   model.Name(),
	}
	if !model.Accepts(kind) {
		output.Error = fmt.Sprintf("%s: current model (%s) doesn't support %s input", domain.ErrIncompatibleInput, model.Category(), kind)
		return output, nil
	}
	result, err := model.Process(input)
	if err != nil {
		return nil, err
	}
	output.Result = result
	return output, nil
}

func (a *api) ResolveImageInput(input string) (string, func(), error) {
	noop := func() {}
	input = common.RemoveQuotesIfAny(strings.TrimSpace(input))
	if xurls.Strict.FindString(input) != input || input == "" {
		return input, noop, nil
	}
	filePath := a.tempFilePathProvider.GetTempFilePathForURL(input)
	err := common.DownloadFromURL(input, filePath)
	if err != nil {
		_ = os.Remove(filePath)
		return "", noop, err
	}
	return filePath, func() {
		_ = os.Remove(filePath)
	}, nil
}

func (a *api) Logger() common.Logger {
	return a.logger
}

package imagemodel

import (
	"time"

	"kgeyst.com/modelkit/pkg/common"
	"kgeyst.com/modelkit/pkg/modelkit/domain"
)

const (
	DefaultName           = "google/vit-base-patch16-224"
	DefaultMaxPredictions = 5
	Category              = "Image Classification"
)

var capability = domain.CapabilityMetadata{
	Description: "Vision Transformer for image classification",
	InputType:   "Image (JPG, PNG, BMP, GIF)",
	OutputType:  "Object classification with confidence scores",
	UseCase:     "Identify objects, animals, scenes in images",
}

// Options zero values fall back to defaults.
type Options struct {
	Name              string
	MaxPredictions    int
	LoadDelay         time.Duration
	ResponderProvider domain.ResponderProvider
	Logger            common.Logger
}

// Model classifies the content of an image file. Input is a path on disk.
type Model struct {
	*domain.BaseModel
}

func NewModel(options Options) *Model {
	if options.Name == "" {
		options.Name = DefaultName
	}
	if options.MaxPredictions <= 0 {
		options.MaxPredictions = DefaultMaxPredictions
	}
	return &Model{
		BaseModel: domain.NewBaseModel(domain.BaseModelOptions{
			Name:              options.Name,
			Category:          Category,
			Capability:        capability,
			Accepts:           domain.InputKindImage,
			Processor:         &processor{},
			ResponderProvider: options.ResponderProvider,
			LoadDelay:         options.LoadDelay,
			MaxPredictions:    options.MaxPredictions,
			Logger:            options.Logger,
		}),
	}
}

package textmodel

import (
	"time"

	"kgeyst.com/modelkit/pkg/common"
	"kgeyst.com/modelkit/pkg/modelkit/domain"
)

const (
	DefaultName      = "distilbert-base-uncased-finetuned-sst-2-english"
	DefaultMaxLength = 1000
	Category         = "Text Classification"
)

var capability = domain.CapabilityMetadata{
	Description: "DistilBERT sentiment analysis model",
	InputType:   "Text",
	OutputType:  "Sentiment classification (POSITIVE/NEGATIVE)",
	UseCase:     "Analyze sentiment of text input, reviews, comments",
}

// Options zero values fall back to defaults.
type Options struct {
	Name              string
	MaxLength         int
	LoadDelay         time.Duration
	ResponderProvider domain.ResponderProvider
	Logger            common.Logger
}

// Model classifies the sentiment of a text.
type Model struct {
	*domain.BaseModel
}

func NewModel(options Options) *Model {
	if options.Name == "" {
		options.Name = DefaultName
	}
	if options.MaxLength <= 0 {
		options.MaxLength = DefaultMaxLength
	}
	return &Model{
		BaseModel: domain.NewBaseModel(domain.BaseModelOptions{
			Name:              options.Name,
			Category:          Category,
			Capability:        capability,
			Accepts:           domain.InputKindText,
			Processor:         &processor{maxLength: options.MaxLength},
			ResponderProvider: options.ResponderProvider,
			LoadDelay:         options.LoadDelay,
			Logger:            options.Logger,
		}),
	}
}

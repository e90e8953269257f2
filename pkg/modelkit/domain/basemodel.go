package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"kgeyst.com/modelkit/pkg/common"
)

// Processor is the variant-specific part of a model.
type Processor interface {
	// Prepare validates and cleans the raw input. The returned result must have Input set (it's what's passed to
	// the responder). Variants reject content with NewUnsupportedFormatError(..); other errors are reported as
	// processing failures.
	Prepare(input string) (*Result, error)
	// Simulate is the responder used when the real one is unavailable.
	Simulate(input string) []Prediction
}

// BaseModelOptions describe a variant to NewBaseModel(..)
type BaseModelOptions struct {
	Name       string
	Category   string
	Capability CapabilityMetadata
	Accepts    InputKind
	Processor  Processor
	// ResponderProvider can be nil: the model is simulated then.
	ResponderProvider ResponderProvider
	// LoadDelay Load() waits that long before acquiring the responder.
	LoadDelay time.Duration
	// MaxPredictions zero means no limit.
	MaxPredictions int
	Logger         common.Logger
}

// BaseModel implements the lifecycle shared by all variants. Variants embed it and supply a Processor.
type BaseModel struct {
	id             string
	name           string
	category       string
	capability     CapabilityMetadata
	accepts        InputKind
	processor      Processor
	provider       ResponderProvider
	loadDelay      time.Duration
	maxPredictions int
	logger         common.Logger

	state     LoadState
	responder Responder
	process   ProcessFunc
}

func NewBaseModel(options BaseModelOptions) *BaseModel {
	logger := options.Logger
	if logger == nil {
		logger = common.NewNopLogger()
	}
	b := &BaseModel{
		id:             uuid.NewString(),
		name:           options.Name,
		category:       options.Category,
		capability:     options.Capability,
		accepts:        options.Accepts,
		processor:      options.Processor,
		provider:       options.ResponderProvider,
		loadDelay:      options.LoadDelay,
		maxPredictions: options.MaxPredictions,
		logger:         logger,
		state:          LoadStateNotLoaded,
	}
	b.process = ChainProcess(b.processLoaded, RequireInput, RecoverProcessingFailure)
	return b
}

func (b *BaseModel) ID() string {
	return b.id
}

func (b *BaseModel) Name() string {
	return b.name
}

func (b *BaseModel) Category() string {
	return b.category
}

func (b *BaseModel) LoadState() LoadState {
	return b.state
}

func (b *BaseModel) Accepts(kind InputKind) bool {
	return b.accepts == kind
}

func (b *BaseModel) Describe() Descriptor {
	return Descriptor{
		Name:               b.name,
		Category:           b.category,
		Status:             b.state,
		CapabilityMetadata: b.capability,
	}
}

func (b *BaseModel) Load() {
	if b.state == LoadStateLoaded {
		return
	}
	if b.loadDelay > 0 {
		time.Sleep(b.loadDelay)
	}
	responder, err := b.acquireResponder()
	if err != nil {
		b.logger.Log(err.Error())
		b.responder = nil
		b.state = LoadStateFailedToLoad
		return
	}
	b.responder = responder
	b.state = LoadStateLoaded
}

func (b *BaseModel) acquireResponder() (Responder, error) {
	simulated := ResponderFunc(func(input string) ([]Prediction, error) {
		return b.processor.Simulate(input), nil
	})
	if b.provider == nil {
		return simulated, nil
	}
	responder, err := b.provider(b.name)
	if err == nil && responder == nil {
		err = errors.New("provider returned no responder")
	}
	if err == nil {
		return responder, nil
	}
	if errors.Is(err, ErrResponderUnavailable) {
		b.logger.Log("using a simulated responder for '" + b.name + "': " + err.Error())
		return simulated, nil
	}
	return nil, errors.Wrapf(ErrLoadFailure, "'%s': %s", b.name, err.Error())
}

func (b *BaseModel) Process(input string) (*Result, error) {
	return b.process(input)
}

func (b *BaseModel) processLoaded(input string) (*Result, error) {
	if b.state != LoadStateLoaded || b.responder == nil {
		return newErrorResult(&ResultError{Kind: ErrModelNotLoaded, Message: "Model not loaded"}), nil
	}
	result, err := b.processor.Prepare(input)
	if err != nil {
		return newErrorResult(toResultError(err)), nil
	}
	predictions, err := b.responder.Respond(result.Input)
	if err != nil {
		return newErrorResult(toResultError(err)), nil
	}
	result.Predictions = b.rank(predictions)
	result.ModelUsed = b.name
	return result, nil
}

// rank sorts by descending score and keeps the top maxPredictions.
func (b *BaseModel) rank(predictions []Prediction) []Prediction {
	ranked := make([]Prediction, len(predictions))
	copy(ranked, predictions)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if b.maxPredictions > 0 && len(ranked) > b.maxPredictions {
		ranked = ranked[:b.maxPredictions]
	}
	return ranked
}

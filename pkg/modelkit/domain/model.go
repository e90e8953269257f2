package domain

// LoadState tells whether a model instance can process input.
type LoadState int

const (
	// LoadStateNotLoaded every model instance starts here
	LoadStateNotLoaded = LoadState(iota)
	// LoadStateLoaded a responder (real or simulated) was acquired, Process(..) is usable
	LoadStateLoaded
	// LoadStateFailedToLoad the responder couldn't be acquired and there was nothing to fall back to
	LoadStateFailedToLoad
)

func (s LoadState) String() string {
	switch s {
	case LoadStateNotLoaded:
		return "Not Loaded"
	case LoadStateLoaded:
		return "Loaded"
	case LoadStateFailedToLoad:
		return "Failed To Load"
	default:
		return "Unknown"
	}
}

func (s LoadState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// InputKind the kind of raw input a caller has at hand.
type InputKind string

const (
	InputKindText  = InputKind("text")
	InputKindImage = InputKind("image")
)

// Model is the uniform contract every model variant satisfies, so that callers (frontends) can drive
// models without knowing their concrete types.
// A model instance is expected to be driven by one caller at a time; it's not safe for concurrent use.
type Model interface {
	// ID a unique identifier of this particular instance. Two instances of the same variant have different IDs.
	ID() string
	// Name the name of the underlying model artifact. Useful for display and as a lookup key for responders.
	Name() string
	// Category a human-readable category, such as "Text Classification".
	Category() string
	// LoadState the current state of the instance. Never anything but the three declared states.
	LoadState() LoadState
	// Load acquires the responder for this model. When the real responder is unavailable, a simulated one is used
	// instead; only if acquisition fails in a way that can't fall back, the state becomes LoadStateFailedToLoad.
	// Never panics or returns an error: inspect LoadState() afterwards. Calling it on a loaded model is a no-op.
	Load()
	// Process runs the input through the model. The only error returned is ErrInvalidInput (empty input);
	// everything else (not loaded, unsupported format, processing failures) is reported inside the Result.
	Process(input string) (*Result, error)
	// Describe returns the base descriptor merged with the variant's capability metadata.
	Describe() Descriptor
	// Accepts tells whether the model can make sense of the given kind of input.
	Accepts(kind InputKind) bool
}

// CapabilityMetadata fixed per variant.
type CapabilityMetadata struct {
	Description string `json:"description"`
	InputType   string `json:"input_type"`
	OutputType  string `json:"output_type"`
	UseCase     string `json:"use_case"`
}

// Descriptor is what Model.Describe() returns.
type Descriptor struct {
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Status   LoadState `json:"status"`
	CapabilityMetadata
}

// Prediction a single label with its confidence score.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// ImageInfo basic metadata of an image file. If the file couldn't be read, only Error is set.
type ImageInfo struct {
	Format string `json:"format,omitempty"`
	Mode   string `json:"mode,omitempty"`
	Size   []int  `json:"size,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Result is what Model.Process(..) returns. Either Error is set (Failure then holds a *ResultError), or
// Predictions and ModelUsed are.
type Result struct {
	Input       string       `json:"input,omitempty"`
	ImageInfo   *ImageInfo   `json:"image_info,omitempty"`
	Predictions []Prediction `json:"results,omitempty"`
	ModelUsed   string       `json:"model_used,omitempty"`
	Error       string       `json:"error,omitempty"`
	Failure     error        `json:"-"`
}

// IsError true if the result carries an error instead of predictions.
func (r *Result) IsError() bool {
	return r.Failure != nil
}

// TopPrediction the highest-ranked prediction, if any.
func (r *Result) TopPrediction() (Prediction, bool) {
	if len(r.Predictions) == 0 {
		return Prediction{}, false
	}
	return r.Predictions[0], true
}

func newErrorResult(failure *ResultError) *Result {
	return &Result{
		Error:   failure.Message,
		Failure: failure,
	}
}

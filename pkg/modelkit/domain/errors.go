package domain

import "github.com/pkg/errors"

// Returned by Model.Process(..) and ModelRegistry.Create(..) directly; these are usage errors.
var (
	ErrInvalidInput       = errors.New("input cannot be empty")
	ErrUnknownModelType   = errors.New("unknown model type")
	ErrDuplicateModelType = errors.New("duplicate model type")
)

// Carried inside Result.Failure (see ResultError); these are content/runtime errors.
var (
	ErrModelNotLoaded       = errors.New("model not loaded")
	ErrUnsupportedFormat    = errors.New("unsupported format")
	ErrProcessingFailure    = errors.New("processing failed")
	ErrIncompatibleInput    = errors.New("incompatible input")
	ErrLoadFailure          = errors.New("failed to load model")
	ErrResponderUnavailable = errors.New("responder unavailable")
)

// ResultError is a soft error reported inside a Result. Kind is one of the sentinel errors above and is what
// errors.Is(..) matches; Message is meant for the user.
type ResultError struct {
	Kind    error
	Message string
}

func (e *ResultError) Error() string {
	return e.Message
}

func (e *ResultError) Unwrap() error {
	return e.Kind
}

// NewUnsupportedFormatError used by variants to reject input they can't handle.
func NewUnsupportedFormatError(message string) *ResultError {
	return &ResultError{Kind: ErrUnsupportedFormat, Message: message}
}

// toResultError keeps ResultErrors as is; anything else becomes a processing failure.
func toResultError(err error) *ResultError {
	var resultError *ResultError
	if errors.As(err, &resultError) {
		return resultError
	}
	return &ResultError{
		Kind:    ErrProcessingFailure,
		Message: "Processing failed: " + err.Error(),
	}
}

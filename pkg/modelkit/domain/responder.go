package domain

// Responder maps validated input (cleaned text or an image path) to predictions ranked by score.
type Responder interface {
	Respond(input string) ([]Prediction, error)
}

type ResponderFunc func(input string) ([]Prediction, error)

func (f ResponderFunc) Respond(input string) ([]Prediction, error) {
	return f(input)
}

// ResponderProvider constructs the real responder for the model artifact named `modelName`.
// Returning an error which wraps ErrResponderUnavailable makes the model fall back to its simulated responder;
// any other error fails the load.
type ResponderProvider func(modelName string) (Responder, error)

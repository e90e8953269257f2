package domain

import "fmt"

// ProcessFunc is the shape of Model.Process(..).
type ProcessFunc func(input string) (*Result, error)

// ProcessMiddleware wraps a ProcessFunc with a cross-cutting concern (validation, recovery etc.)
type ProcessMiddleware func(next ProcessFunc) ProcessFunc

// ChainProcess applies the middlewares to `process`; the first middleware is the outermost one.
func ChainProcess(process ProcessFunc, middlewares ...ProcessMiddleware) ProcessFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		process = middlewares[i](process)
	}
	return process
}

// RequireInput rejects empty input with ErrInvalidInput before anything else happens.
func RequireInput(next ProcessFunc) ProcessFunc {
	return func(input string) (*Result, error) {
		if input == "" {
			return nil, ErrInvalidInput
		}
		return next(input)
	}
}

// RecoverProcessingFailure turns a panic further down the chain into a processing failure result, so that
// Process(..) never brings down the caller (typically a UI event loop).
func RecoverProcessingFailure(next ProcessFunc) ProcessFunc {
	return func(input string) (result *Result, err error) {
		defer func() {
			if r := recover(); r != nil {
				result = newErrorResult(toResultError(fmt.Errorf("%v", r)))
				err = nil
			}
		}()
		return next(input)
	}
}

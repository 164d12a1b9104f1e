package normalize

import "fmt"

// InvalidInputError indicates a caller supplied a payload that is not a
// JSON object or cannot be coerced into the expected document shape.
// It is the caller's error class (4xx), never retried.
type InvalidInputError struct {
	Message string
	Cause   error
}

func (e *InvalidInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid input: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Cause
}

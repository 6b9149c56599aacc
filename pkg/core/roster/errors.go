package roster

import "fmt"

// InvalidInputError reports malformed or inconsistent solver input.
// It is returned before any search starts; the core never defaults
// missing entries to recover from it.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}

func invalidInputf(format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Reason: fmt.Sprintf(format, args...)}
}

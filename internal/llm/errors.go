package llm

import (
	"errors"
	"fmt"
)

// TransportError represents a failure reaching the LLM provider: network,
// auth, rate limit. It is distinct from a semantic failure, where the
// provider answered but the response could not be parsed.
type TransportError struct {
	Message string
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("llm transport error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("llm transport error: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// IsTransport reports whether err is (or wraps) a TransportError
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

package pathway

import "fmt"

// APICallError represents an error from an external research source
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pathway research call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pathway research call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents an error parsing a structured research response
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pathway parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pathway parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

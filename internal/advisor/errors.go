package advisor

import "fmt"

// APICallError represents an error from the Gemini API
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("advisor call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("advisor call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ParseError represents an error parsing the advisor's response
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("advisor parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("advisor parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a recommendation that failed acceptance checks
type ValidationError struct {
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("recommendation rejected: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("recommendation rejected: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

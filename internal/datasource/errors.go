package datasource

import "fmt"

// APICallError reports a failed call to an upstream data source.
type APICallError struct {
	Source  string
	Message string
	Err     error
}

func (e *APICallError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s API call failed: %s: %v", e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("%s API call failed: %s", e.Source, e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Err
}

// ParseError reports a response body that could not be decoded.
type ParseError struct {
	Source  string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse %s response: %s: %v", e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("failed to parse %s response: %s", e.Source, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrNoCredentials indicates the client was constructed without an API key.
type ErrNoCredentials struct {
	Source string
}

func (e *ErrNoCredentials) Error() string {
	return fmt.Sprintf("no credentials configured for %s", e.Source)
}

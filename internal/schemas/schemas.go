// Package schemas validates the structured documents the generative stages
// return, most importantly the advisor recommendation. Schemas are embedded
// and compiled once.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed recommendation.json
var recommendationSchema string

var (
	compileOnce sync.Once
	compiledRec *gojsonschema.Schema
	compileErr  error
)

// ValidationError aggregates the field-level problems found in a document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError locates one validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateRecommendation checks a JSON recommendation document against the
// embedded schema. A document that does not parse at all is reported as a
// single root-level field error.
func ValidateRecommendation(jsonContent string) error {
	compileOnce.Do(func() {
		compiledRec, compileErr = gojsonschema.NewSchema(
			gojsonschema.NewStringLoader(recommendationSchema))
	})
	if compileErr != nil {
		return fmt.Errorf("recommendation schema does not compile: %w", compileErr)
	}

	result, err := compiledRec.Validate(gojsonschema.NewStringLoader(jsonContent))
	if err != nil {
		return &ValidationError{Errors: []FieldError{
			{Field: "(root)", Message: err.Error()},
		}}
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}

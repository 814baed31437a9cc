package explanation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyParagraph is returned before any network call when the input is blank
var ErrEmptyParagraph = errors.New("paragraph cannot be empty")

// ValidationKind distinguishes a response that is not JSON at all from one
// that is JSON but does not match the schema.
type ValidationKind string

const (
	KindParse  ValidationKind = "parse"
	KindSchema ValidationKind = "schema"
)

// ValidationError represents a malformed model output
type ValidationError struct {
	Kind   ValidationKind
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindParse:
		return fmt.Sprintf("malformed output: response is not valid JSON: %v", e.Err)
	case KindSchema:
		return fmt.Sprintf("malformed output: response does not match the schema: %s", strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("malformed output: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

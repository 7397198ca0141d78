package note

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformedDocument reports a document with no recognizable
	// front-matter block.
	ErrMalformedDocument = errors.New("note: missing front-matter block")
	// ErrInvalidFrontMatter reports a front-matter block that could not be
	// decoded.
	ErrInvalidFrontMatter = errors.New("note: invalid front-matter")
	// ErrMissingField reports required front-matter fields that were absent.
	ErrMissingField = errors.New("note: missing required field")
)

// MissingFieldError names the required front-matter field that was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	if e == nil || strings.TrimSpace(e.Field) == "" {
		return ErrMissingField.Error()
	}
	return fmt.Sprintf("%s: %s", ErrMissingField.Error(), e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// InvalidFrontMatterError carries the decoder failure for a front-matter
// block that was present but unparseable.
type InvalidFrontMatterError struct {
	Reason error
}

func (e *InvalidFrontMatterError) Error() string {
	if e == nil || e.Reason == nil {
		return ErrInvalidFrontMatter.Error()
	}
	return fmt.Sprintf("%s: %v", ErrInvalidFrontMatter.Error(), e.Reason)
}

func (e *InvalidFrontMatterError) Unwrap() error {
	return ErrInvalidFrontMatter
}

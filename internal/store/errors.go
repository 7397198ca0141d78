package store

import (
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-zettel/internal/note"
)

var (
	// ErrNotFound reports a lookup for an id absent from the loaded set.
	ErrNotFound = errors.New("store: note not found")
	// ErrDuplicateID reports two documents claiming the same note id. Loads
	// always abort on this: ambiguous lookups are unacceptable and silent
	// overwrites hide authoring mistakes.
	ErrDuplicateID = errors.New("store: duplicate note id")
)

const (
	loadFailedCode         = "STORE_LOAD_FAILED"
	dirUnreadableCode      = "STORE_DIR_UNREADABLE"
	malformedDocumentCode  = "NOTE_MALFORMED_DOCUMENT"
	missingFieldCode       = "NOTE_MISSING_FIELD"
	invalidFrontMatterCode = "NOTE_INVALID_FRONTMATTER"
)

// NotFoundError names the id that missed the index.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	if e == nil || strings.TrimSpace(e.ID) == "" {
		return ErrNotFound.Error()
	}
	return fmt.Sprintf("%s: id=%s", ErrNotFound.Error(), e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// AssetNotFoundError reports a missing attachment on an existing note.
type AssetNotFoundError struct {
	NoteID string
	Name   string
}

func (e *AssetNotFoundError) Error() string {
	if e == nil {
		return ErrNotFound.Error()
	}
	return fmt.Sprintf("store: asset not found: id=%s name=%s", e.NoteID, e.Name)
}

func (e *AssetNotFoundError) Unwrap() error {
	return ErrNotFound
}

// DuplicateIDError names the conflicting id and both source documents.
type DuplicateIDError struct {
	ID           string
	Path         string
	ExistingPath string
}

func (e *DuplicateIDError) Error() string {
	if e == nil {
		return ErrDuplicateID.Error()
	}
	return fmt.Sprintf("%s: id=%s in %s (already defined in %s)",
		ErrDuplicateID.Error(), e.ID, e.Path, e.ExistingPath)
}

func (e *DuplicateIDError) Unwrap() error {
	return ErrDuplicateID
}

func wrapLoadError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "note store load failed").
		WithTextCode(loadTextCode(err))
}

// loadTextCode picks the text code surfaced for an aborted load. Parse
// failures keep their document-level code so operators can tell a bad note
// apart from an unreadable tree.
func loadTextCode(err error) string {
	switch {
	case errors.Is(err, note.ErrMalformedDocument):
		return malformedDocumentCode
	case errors.Is(err, note.ErrMissingField):
		return missingFieldCode
	case errors.Is(err, note.ErrInvalidFrontMatter):
		return invalidFrontMatterCode
	}
	return loadFailedCode
}

func wrapDirError(err error, dir string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, fmt.Sprintf("content directory unreadable: %s", dir)).
		WithTextCode(dirUnreadableCode)
}

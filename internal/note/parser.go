package note

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	slug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-zettel/pkg/interfaces"
)

// frontMatterEnvelope is the typed front-matter shape a note document must
// carry. Unknown keys are tolerated and ignored; the record contract is fixed.
type frontMatterEnvelope struct {
	ID         string   `yaml:"id"`
	Title      string   `yaml:"title"`
	Tags       []string `yaml:"tags"`
	References []string `yaml:"references"`
}

// ParseDocument parses raw document text into a Note record. The document
// must open with a front-matter block carrying at least `id` and `title`;
// everything after the closing delimiter is kept verbatim as the body.
//
// Failures are typed: ErrMalformedDocument when no front-matter block exists,
// InvalidFrontMatterError when the block cannot be decoded, and
// MissingFieldError when a required field is absent. Reference targets are
// not validated here; that requires cross-note knowledge the store owns.
func ParseDocument(source []byte) (*interfaces.Note, error) {
	var env frontMatterEnvelope

	body, err := frontmatter.MustParse(bytes.NewReader(source), &env)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return nil, ErrMalformedDocument
		}
		return nil, &InvalidFrontMatterError{Reason: err}
	}

	if strings.TrimSpace(env.ID) == "" {
		return nil, &MissingFieldError{Field: "id"}
	}
	if strings.TrimSpace(env.Title) == "" {
		return nil, &MissingFieldError{Field: "title"}
	}

	return &interfaces.Note{
		ID:         strings.TrimSpace(env.ID),
		Title:      strings.TrimSpace(env.Title),
		Tags:       append([]string(nil), env.Tags...),
		References: append([]string(nil), env.References...),
		Body:       body,
	}, nil
}

// ParseFile parses a note document read from path. Front-matter `id` wins;
// when it is absent the file stem is slugified and used instead, so documents
// named after their id do not need to repeat it. Title remains mandatory.
func ParseFile(path string, source []byte, modified time.Time) (*interfaces.Note, error) {
	record, err := ParseDocument(source)

	var missing *MissingFieldError
	if err != nil && errors.As(err, &missing) && missing.Field == "id" {
		if id := idFromPath(path); id != "" {
			record, err = parseWithFallbackID(source, id)
		}
	}
	if err != nil {
		return nil, err
	}

	record.FilePath = filepath.ToSlash(path)
	record.LastModified = modified
	return record, nil
}

func parseWithFallbackID(source []byte, id string) (*interfaces.Note, error) {
	var env frontMatterEnvelope

	body, err := frontmatter.MustParse(bytes.NewReader(source), &env)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return nil, ErrMalformedDocument
		}
		return nil, &InvalidFrontMatterError{Reason: err}
	}

	if strings.TrimSpace(env.Title) == "" {
		return nil, &MissingFieldError{Field: "title"}
	}

	return &interfaces.Note{
		ID:         id,
		Title:      strings.TrimSpace(env.Title),
		Tags:       append([]string(nil), env.Tags...),
		References: append([]string(nil), env.References...),
		Body:       body,
	}, nil
}

// idFromPath derives a stable id from the file stem. Returns "" when the stem
// does not normalize to a usable slug.
func idFromPath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if strings.TrimSpace(stem) == "" {
		return ""
	}
	normalized, err := slug.Normalize(stem)
	if err != nil || strings.TrimSpace(normalized) == "" {
		return ""
	}
	return normalized
}

// Package store loads note documents from a content directory at startup and
// serves them from an in-memory index. The store is read-only after Load
// returns, so any number of request handlers can read it concurrently without
// synchronization.
package store

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-zettel/internal/logging"
	"github.com/goliatone/go-zettel/internal/note"
	"github.com/goliatone/go-zettel/pkg/interfaces"
)

// Config controls how the content directory is scanned.
type Config struct {
	// BasePath is the content root holding note documents.
	BasePath string
	// Pattern limits discovered files to the supplied glob (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed. Off by
	// default; the scan order is deterministic either way.
	Recursive bool
	// FailFast aborts the load on the first per-document parse failure
	// instead of skipping it. Duplicate ids abort regardless.
	FailFast bool
}

// SkippedDocument records a document the load policy skipped.
type SkippedDocument struct {
	Path   string
	Reason error
}

// LoadReport summarizes a completed load for startup logging.
type LoadReport struct {
	Loaded  int
	Skipped []SkippedDocument
}

// Store is the immutable, id-indexed note collection.
type Store struct {
	fsys   fs.FS
	notes  map[string]*interfaces.Note
	order  []string
	report LoadReport
}

var _ interfaces.NoteReader = (*Store)(nil)

// Load scans cfg.BasePath for note documents, parses each through the note
// parser, renders bodies eagerly, and builds the id index. Per-document parse
// failures are skipped and reported unless cfg.FailFast; duplicate ids and an
// unreadable directory abort the load.
func Load(ctx context.Context, cfg Config, renderer interfaces.Renderer, provider interfaces.LoggerProvider) (*Store, error) {
	logger := logging.StoreLogger(provider)

	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = "*.md"
	}

	basePath := filepath.Clean(cfg.BasePath)
	if _, err := os.Stat(basePath); err != nil {
		return nil, wrapDirError(err, basePath)
	}
	fsys := os.DirFS(basePath)

	s := &Store{
		fsys:  fsys,
		notes: map[string]*interfaces.Note{},
	}

	paths, err := discover(ctx, fsys, pattern, cfg.Recursive)
	if err != nil {
		return nil, wrapDirError(err, basePath)
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, wrapLoadError(err)
		}

		record, err := loadDocument(fsys, path, renderer)
		if err != nil {
			if cfg.FailFast {
				return nil, wrapLoadError(fmt.Errorf("parse %s: %w", path, err))
			}
			logging.WithNoteContext(logger, path, "", err.Error()).
				Warn("skipping unparseable note document")
			s.report.Skipped = append(s.report.Skipped, SkippedDocument{Path: path, Reason: err})
			continue
		}

		if existing, ok := s.notes[record.ID]; ok {
			return nil, &DuplicateIDError{
				ID:           record.ID,
				Path:         path,
				ExistingPath: existing.FilePath,
			}
		}

		s.notes[record.ID] = record
		s.order = append(s.order, record.ID)
	}

	sort.Strings(s.order)
	s.report.Loaded = len(s.order)

	logger.Info("note store loaded",
		"loaded", s.report.Loaded,
		"skipped", len(s.report.Skipped),
		"base_path", basePath,
	)
	return s, nil
}

// discover walks the filesystem and returns matching document paths in
// lexical path order.
func discover(ctx context.Context, fsys fs.FS, pattern string, recursive bool) ([]string, error) {
	var paths []string

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() {
			if !recursive && path != "." {
				return fs.SkipDir
			}
			return nil
		}

		match, err := filepath.Match(pattern, filepath.Base(path))
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if match {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

func loadDocument(fsys fs.FS, path string, renderer interfaces.Renderer) (*interfaces.Note, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	info, err := fs.Stat(fsys, path)
	if err != nil {
		return nil, err
	}

	record, err := note.ParseFile(path, data, info.ModTime())
	if err != nil {
		return nil, err
	}

	if renderer != nil {
		record.BodyHTML = renderer.Render(record.Body)
	}
	record.Assets = scanAssets(fsys, path)
	return record, nil
}

// List returns summaries for every loaded note in id lexical order.
func (s *Store) List() []interfaces.NoteSummary {
	out := make([]interfaces.NoteSummary, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.notes[id].Summary())
	}
	return out
}

// Get returns a copy of the note for id, or a NotFoundError when the id is
// absent from the index.
func (s *Store) Get(id string) (*interfaces.Note, error) {
	record, ok := s.notes[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return record.Clone(), nil
}

// ResolveTitle satisfies interfaces.TitleResolver for reference resolution.
func (s *Store) ResolveTitle(id string) (string, bool) {
	record, ok := s.notes[id]
	if !ok {
		return "", false
	}
	return record.Title, true
}

// Len reports the number of loaded notes.
func (s *Store) Len() int {
	return len(s.order)
}

// Report returns the load report captured during Load.
func (s *Store) Report() LoadReport {
	skipped := append([]SkippedDocument(nil), s.report.Skipped...)
	return LoadReport{Loaded: s.report.Loaded, Skipped: skipped}
}

// OpenAsset reads the named attachment of a note. The name must match a
// scanned asset exactly, which also keeps path traversal out of the asset
// endpoint.
func (s *Store) OpenAsset(id, name string) ([]byte, interfaces.Asset, error) {
	record, ok := s.notes[id]
	if !ok {
		return nil, interfaces.Asset{}, &NotFoundError{ID: id}
	}

	for _, asset := range record.Assets {
		if asset.Name != name {
			continue
		}
		data, err := fs.ReadFile(s.fsys, asset.Path)
		if err != nil {
			return nil, interfaces.Asset{}, &AssetNotFoundError{NoteID: id, Name: name}
		}
		return data, asset, nil
	}
	return nil, interfaces.Asset{}, &AssetNotFoundError{NoteID: id, Name: name}
}

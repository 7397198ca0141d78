// Package zettel serves a directory of Markdown notes with front-matter as a
// read-only, cross-referenced note collection: notes are loaded and rendered
// once at startup, indexed by id, and exposed through a JSON HTTP surface.
package zettel

import (
	"context"
	"net/http"

	"github.com/goliatone/go-zettel/internal/di"
	"github.com/goliatone/go-zettel/internal/store"
	"github.com/goliatone/go-zettel/internal/view"
	"github.com/goliatone/go-zettel/pkg/interfaces"
)

// Note exports the note record for consumers of the zettel package.
type Note = interfaces.Note

// NoteSummary exports the listing projection.
type NoteSummary = interfaces.NoteSummary

// Asset exports the attachment record.
type Asset = interfaces.Asset

// NoteView exports the detail projection served by the HTTP layer.
type NoteView = view.NoteView

// ReferenceView exports the resolved cross-reference entry.
type ReferenceView = view.ReferenceView

// LoadReport exports the startup load summary.
type LoadReport = store.LoadReport

// ErrNoteNotFound reports lookups for ids absent from the loaded set.
var ErrNoteNotFound = store.ErrNotFound

// ErrDuplicateNoteID reports two documents claiming the same id at load.
var ErrDuplicateNoteID = store.ErrDuplicateID

// Module is the top level note runtime façade.
type Module struct {
	container *di.Container
}

// New validates cfg, loads the note collection from disk, and constructs the
// runtime. The returned module is immutable and safe for concurrent use.
func New(ctx context.Context, cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(ctx, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Store returns the loaded note store.
func (m *Module) Store() *store.Store {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Store()
}

// Viewer returns the presentation adapter.
func (m *Module) Viewer() *view.Viewer {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Viewer()
}

// Renderer returns the configured Markdown renderer.
func (m *Module) Renderer() interfaces.Renderer {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Renderer()
}

// Report returns the startup load report.
func (m *Module) Report() LoadReport {
	if m == nil || m.container == nil {
		return LoadReport{}
	}
	return m.container.Store().Report()
}

// Handler returns the HTTP surface mounted at the configured base path.
func (m *Module) Handler() http.Handler {
	if m == nil || m.container == nil {
		return http.NotFoundHandler()
	}
	return m.container.API().Handler(m.container.Config().HTTP.BasePath)
}

// Package http exposes the read-only JSON surface over the note store:
// listing, note detail with resolved references, attachments, and the
// stylesheet. Handlers perform no writes, so they can serve any number of
// concurrent requests against the immutable store.
package http

import (
	"net/http"

	"github.com/goliatone/go-zettel/internal/logging"
	"github.com/goliatone/go-zettel/internal/view"
	"github.com/goliatone/go-zettel/pkg/interfaces"
)

// NoteSource is the store surface the API consumes.
type NoteSource interface {
	interfaces.NoteReader
	OpenAsset(id, name string) ([]byte, interfaces.Asset, error)
}

// API serves the note endpoints.
type API struct {
	notes      NoteSource
	viewer     *view.Viewer
	stylesheet string
	logger     interfaces.Logger
}

// NewAPI constructs the API around a note source and viewer. The stylesheet
// is precomputed; it never changes after startup.
func NewAPI(notes NoteSource, viewer *view.Viewer, stylesheet string, provider interfaces.LoggerProvider) *API {
	return &API{
		notes:      notes,
		viewer:     viewer,
		stylesheet: stylesheet,
		logger:     logging.HTTPLogger(provider),
	}
}

// Routes registers every endpoint on mux under base.
func (api *API) Routes(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	root := joinPath(base, "notes")
	mux.HandleFunc("GET "+root, api.handleNoteList)
	mux.HandleFunc("GET "+root+"/{id}", api.handleNoteGet)
	mux.HandleFunc("GET "+root+"/{id}/assets/{name}", api.handleNoteAsset)
	mux.HandleFunc("GET "+joinPath(base, "styles.css"), api.handleStylesheet)
}

// Handler returns the routed API wrapped with request-id logging middleware.
func (api *API) Handler(base string) http.Handler {
	mux := http.NewServeMux()
	api.Routes(mux, base)
	return withRequestID(api.logger, mux)
}

func (api *API) handleNoteList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.notes == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, api.notes.List())
}

func (api *API) handleNoteGet(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.notes == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	record, err := api.notes.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.viewer.Note(record, api.notes))
}

func (api *API) handleNoteAsset(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.notes == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}

	data, asset, err := api.notes.OpenAsset(r.PathValue("id"), r.PathValue("name"))
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", asset.MimeType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (api *API) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(api.stylesheet))
}

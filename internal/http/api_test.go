package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-zettel/internal/store"
	"github.com/goliatone/go-zettel/internal/view"
	"github.com/goliatone/go-zettel/pkg/interfaces"
)

type fakeSource struct {
	notes map[string]*interfaces.Note
	order []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		notes: map[string]*interfaces.Note{
			"a": {
				ID:       "a",
				Title:    "A",
				Tags:     []string{"alpha"},
				BodyHTML: []byte("<p>note a</p>"),
			},
			"b": {
				ID:         "b",
				Title:      "B",
				References: []string{"a", "ghost"},
				BodyHTML:   []byte("<p>note b</p>"),
				Assets: []interfaces.Asset{
					{Name: "chart.svg", Path: "b.assets/chart.svg", MimeType: "image/svg+xml"},
				},
			},
		},
		order: []string{"a", "b"},
	}
}

func (f *fakeSource) List() []interfaces.NoteSummary {
	out := make([]interfaces.NoteSummary, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.notes[id].Summary())
	}
	return out
}

func (f *fakeSource) Get(id string) (*interfaces.Note, error) {
	record, ok := f.notes[id]
	if !ok {
		return nil, &store.NotFoundError{ID: id}
	}
	return record.Clone(), nil
}

func (f *fakeSource) ResolveTitle(id string) (string, bool) {
	record, ok := f.notes[id]
	if !ok {
		return "", false
	}
	return record.Title, true
}

func (f *fakeSource) OpenAsset(id, name string) ([]byte, interfaces.Asset, error) {
	record, ok := f.notes[id]
	if !ok {
		return nil, interfaces.Asset{}, &store.NotFoundError{ID: id}
	}
	for _, asset := range record.Assets {
		if asset.Name == name {
			return []byte("<svg/>"), asset, nil
		}
	}
	return nil, interfaces.Asset{}, &store.AssetNotFoundError{NoteID: id, Name: name}
}

func testHandler(tb testing.TB) http.Handler {
	tb.Helper()

	manager := urlkit.NewRouteManager(view.DefaultRouteConfig("/api", "frontend"))
	links, err := view.NewLinkBuilder(manager, "frontend")
	if err != nil {
		tb.Fatalf("NewLinkBuilder returned error: %v", err)
	}

	api := NewAPI(newFakeSource(), view.NewViewer(links), ".hl-keyword { color: red; }\n", nil)
	return api.Handler("/api")
}

func doRequest(tb testing.TB, handler http.Handler, path string) *httptest.ResponseRecorder {
	tb.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestNoteList(t *testing.T) {
	rec := doRequest(t, testHandler(t), "/api/notes")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}

	var summaries []interfaces.NoteSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(summaries) != 2 || summaries[0].ID != "a" || summaries[1].ID != "b" {
		t.Errorf("unexpected list payload: %+v", summaries)
	}
}

func TestNoteDetail(t *testing.T) {
	rec := doRequest(t, testHandler(t), "/api/notes/b")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var detail view.NoteView
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode detail: %v", err)
	}

	if detail.ID != "b" || detail.Title != "B" {
		t.Errorf("unexpected identity: %+v", detail)
	}
	if detail.BodyHTML != "<p>note b</p>" {
		t.Errorf("unexpected body %q", detail.BodyHTML)
	}
	if len(detail.References) != 2 {
		t.Fatalf("expected 2 references, got %+v", detail.References)
	}
	if detail.References[0].ID != "a" || detail.References[0].Title != "A" {
		t.Errorf("unexpected resolved reference %+v", detail.References[0])
	}
	if detail.References[1].Title != view.UnknownTitle {
		t.Errorf("dangling reference should carry the sentinel title, got %+v", detail.References[1])
	}
	if !strings.Contains(detail.Href, "/api/notes/b") {
		t.Errorf("unexpected href %q", detail.Href)
	}
}

func TestNoteDetailNotFound(t *testing.T) {
	rec := doRequest(t, testHandler(t), "/api/notes/zzz")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if payload.Error != "not_found" {
		t.Errorf("unexpected error code %q", payload.Error)
	}
}

func TestNoteAsset(t *testing.T) {
	rec := doRequest(t, testHandler(t), "/api/notes/b/assets/chart.svg")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("unexpected content type %q", ct)
	}
	if rec.Body.String() != "<svg/>" {
		t.Errorf("unexpected asset body %q", rec.Body.String())
	}
}

func TestNoteAssetNotFound(t *testing.T) {
	rec := doRequest(t, testHandler(t), "/api/notes/b/assets/missing.png")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestStylesheet(t *testing.T) {
	rec := doRequest(t, testHandler(t), "/api/styles.css")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/css; charset=utf-8" {
		t.Errorf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), ".hl-keyword") {
		t.Errorf("unexpected stylesheet body %q", rec.Body.String())
	}
}

func TestRequestIDHeader(t *testing.T) {
	handler := testHandler(t)

	rec := doRequest(t, handler, "/api/notes")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Errorf("expected generated request id header")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/notes", nil)
	req.Header.Set("X-Request-ID", "incoming-id")
	echo := httptest.NewRecorder()
	handler.ServeHTTP(echo, req)
	if got := echo.Header().Get("X-Request-ID"); got != "incoming-id" {
		t.Errorf("expected incoming id echoed, got %q", got)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/notes", nil)
	rec := httptest.NewRecorder()
	testHandler(t).ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for POST, got %d", rec.Code)
	}
}

func TestJoinPath(t *testing.T) {
	cases := []struct {
		base   string
		suffix string
		want   string
	}{
		{"", "", "/"},
		{"", "notes", "/notes"},
		{"/api", "notes", "/api/notes"},
		{"api/", "/notes/", "/api/notes"},
		{"/api", "", "/api"},
	}

	for _, tc := range cases {
		if got := joinPath(tc.base, tc.suffix); got != tc.want {
			t.Errorf("joinPath(%q, %q) = %q, want %q", tc.base, tc.suffix, got, tc.want)
		}
	}
}

package zettel

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Content.Dir = "testdata/notes"
	cfg.Logging.Provider = "noop"
	return cfg
}

func newTestModule(tb testing.TB) *Module {
	tb.Helper()
	module, err := New(context.Background(), testConfig())
	if err != nil {
		tb.Fatalf("New returned error: %v", err)
	}
	return module
}

func TestNewLoadsCollection(t *testing.T) {
	module := newTestModule(t)

	report := module.Report()
	if report.Loaded != 2 || len(report.Skipped) != 0 {
		t.Fatalf("unexpected load report: %+v", report)
	}

	record, err := module.Store().Get("zettel-1")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if record.Title != "First Note" {
		t.Errorf("unexpected title %q", record.Title)
	}
	if !strings.Contains(string(record.BodyHTML), `<span class="hl-keyword">func</span>`) {
		t.Errorf("expected highlighted code in rendered body, got %q", record.BodyHTML)
	}
	if !strings.Contains(string(record.BodyHTML), `<span class="math-inline">`) {
		t.Errorf("expected math span in rendered body, got %q", record.BodyHTML)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Content.Dir = ""

	if _, err := New(context.Background(), cfg); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestUnknownLookup(t *testing.T) {
	module := newTestModule(t)

	if _, err := module.Store().Get("zettel-3"); !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestHandlerServesNotes(t *testing.T) {
	handler := newTestModule(t).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/notes/zettel-2", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var detail NoteView
	if err := json.Unmarshal(rec.Body.Bytes(), &detail); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if len(detail.References) != 2 {
		t.Fatalf("expected 2 references, got %+v", detail.References)
	}
	if detail.References[0].Title != "First Note" {
		t.Errorf("expected resolved reference title, got %+v", detail.References[0])
	}
	if detail.References[1].Title != "unknown" {
		t.Errorf("expected sentinel title for dangling reference, got %+v", detail.References[1])
	}
	if !strings.Contains(detail.Href, "/api/notes/zettel-2") {
		t.Errorf("unexpected href %q", detail.Href)
	}
}

func TestHandlerServesStylesheet(t *testing.T) {
	handler := newTestModule(t).Handler()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/styles.css", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), ".hl-keyword") {
		t.Errorf("stylesheet should style highlight classes, got %q", rec.Body.String())
	}
}

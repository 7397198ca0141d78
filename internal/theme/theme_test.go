package theme

import (
	"strings"
	"testing"

	"github.com/goliatone/go-zettel/internal/render"
)

func TestStylesheetDefaultPalette(t *testing.T) {
	css, err := Stylesheet(Config{})
	if err != nil {
		t.Fatalf("Stylesheet returned error: %v", err)
	}

	if !strings.HasPrefix(css, ":root {") {
		t.Errorf("stylesheet should open with the variable block, got %q", css[:40])
	}

	for _, kind := range render.Kinds() {
		class := kind.CSSClass()
		if !strings.Contains(css, "--zettel-"+class+":") {
			t.Errorf("missing variable for %s", class)
		}
		if !strings.Contains(css, "."+class+" { color: var(--zettel-"+class+"); }") {
			t.Errorf("missing rule for %s", class)
		}
	}

	if !strings.Contains(css, ".math-display") {
		t.Errorf("missing math display rule")
	}
	if !strings.Contains(css, "pre code") {
		t.Errorf("missing code block rule")
	}
}

func TestStylesheetCustomPrefix(t *testing.T) {
	css, err := Stylesheet(Config{CSSVariablePrefix: "notes"})
	if err != nil {
		t.Fatalf("Stylesheet returned error: %v", err)
	}

	if !strings.Contains(css, "--notes-hl-keyword:") {
		t.Errorf("expected prefixed variable, got %q", css)
	}
	if strings.Contains(css, "--zettel-") {
		t.Errorf("default prefix should be replaced, got %q", css)
	}
}

func TestStylesheetIsDeterministic(t *testing.T) {
	first, err := Stylesheet(Config{})
	if err != nil {
		t.Fatalf("Stylesheet returned error: %v", err)
	}
	for i := 0; i < 3; i++ {
		next, err := Stylesheet(Config{})
		if err != nil {
			t.Fatalf("Stylesheet returned error: %v", err)
		}
		if next != first {
			t.Fatalf("stylesheet output varied between calls")
		}
	}
}

func TestStylesheetMissingManifestDir(t *testing.T) {
	if _, err := Stylesheet(Config{Dir: "testdata/nope"}); err == nil {
		t.Fatalf("expected error for missing manifest directory")
	}
}

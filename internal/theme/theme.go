// Package theme assembles the stylesheet served next to the note API. Token
// highlight classes read their colors from CSS variables; a go-theme manifest
// can override the built-in palette per deployment.
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-zettel/internal/render"
)

// Config selects the optional theme manifest and variant.
type Config struct {
	// Dir points at a go-theme manifest directory. Empty keeps the built-in
	// palette.
	Dir string
	// Name overrides the manifest's theme name during selection.
	Name string
	// Variant selects a manifest variant (e.g. "dark").
	Variant string
	// CSSVariablePrefix namespaces emitted variables (defaults to "zettel").
	CSSVariablePrefix string
}

// defaultPalette maps highlight classes to fallback colors used when no theme
// variable overrides them.
var defaultPalette = map[string]string{
	"hl-comment":     "#8b949e",
	"hl-keyword":     "#ff7b72",
	"hl-string":      "#a5d6ff",
	"hl-number":      "#79c0ff",
	"hl-attribute":   "#7ee787",
	"hl-symbol":      "#ffa657",
	"hl-type":        "#ffa198",
	"hl-function":    "#d2a8ff",
	"hl-macro":       "#f2cc60",
	"hl-constant":    "#79c0ff",
	"hl-punctuation": "#c9d1d9",
	"hl-operator":    "#ff7b72",
}

// Stylesheet renders the full CSS document: variable declarations (manifest
// overrides included when configured) followed by the token, math, and code
// block rules.
func Stylesheet(cfg Config) (string, error) {
	prefix := strings.TrimSpace(cfg.CSSVariablePrefix)
	if prefix == "" {
		prefix = "zettel"
	}

	variables := map[string]string{}
	for class, color := range defaultPalette {
		variables[fmt.Sprintf("--%s-%s", prefix, class)] = color
	}

	if strings.TrimSpace(cfg.Dir) != "" {
		overrides, err := manifestVariables(cfg, prefix)
		if err != nil {
			return "", err
		}
		for key, value := range overrides {
			variables[key] = value
		}
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range sortedKeys(variables) {
		fmt.Fprintf(&b, "  %s: %s;\n", key, variables[key])
	}
	b.WriteString("}\n\n")

	b.WriteString("pre code { display: block; overflow-x: auto; }\n")
	for _, kind := range render.Kinds() {
		class := kind.CSSClass()
		fmt.Fprintf(&b, ".%s { color: var(--%s-%s); }\n", class, prefix, class)
	}
	b.WriteString(".math-display { display: block; text-align: center; }\n")

	return b.String(), nil
}

// manifestVariables loads the configured manifest and returns its CSS
// variables for the selected variant.
func manifestVariables(cfg Config, prefix string) (map[string]string, error) {
	dir := filepath.Clean(strings.TrimSpace(cfg.Dir))

	manifest, err := gotheme.LoadDir(os.DirFS(dir), ".")
	if err != nil {
		return nil, fmt.Errorf("theme: load manifest from %s: %w", dir, err)
	}

	normalized := *manifest
	if name := strings.TrimSpace(cfg.Name); name != "" {
		normalized.Name = name
	}
	if strings.TrimSpace(normalized.Name) == "" {
		return nil, fmt.Errorf("theme: manifest in %s has no name", dir)
	}

	registry := gotheme.NewRegistry()
	if err := registry.Register(&normalized); err != nil {
		return nil, fmt.Errorf("theme: register manifest: %w", err)
	}

	selector := gotheme.Selector{
		Registry:       registry,
		DefaultTheme:   normalized.Name,
		DefaultVariant: strings.TrimSpace(cfg.Variant),
	}

	selection, err := selector.Select(normalized.Name, strings.TrimSpace(cfg.Variant))
	if err != nil {
		return nil, fmt.Errorf("theme: select %s: %w", normalized.Name, err)
	}

	return selection.CSSVariables(prefix), nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

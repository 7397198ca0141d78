// Package render converts note bodies from Markdown into embeddable HTML
// fragments. Rendering is pure, deterministic, and never fails: engine errors
// and unrecognized syntax degrade to escaped literal text.
package render

import (
	"bytes"
	"html"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-zettel/pkg/interfaces"
)

// Options controls engine assembly. The zero value yields GFM defaults with
// highlighting and math spans enabled.
type Options struct {
	// Extensions names goldmark extensions by key; unknown names are ignored.
	// Empty selects the GFM default set.
	Extensions []string
	// HardWraps renders soft line breaks as <br>.
	HardWraps bool
	// SafeMode suppresses raw HTML passthrough from note bodies.
	SafeMode bool
	// DisableMath skips wrapping $...$ / $$...$$ segments in math spans.
	DisableMath bool
}

// Renderer renders Markdown through a fixed goldmark engine. The engine is
// assembled once and is stateless, so a single Renderer is safe for
// concurrent use across requests.
type Renderer struct {
	engine    goldmark.Markdown
	mathSpans bool
}

var _ interfaces.Renderer = (*Renderer)(nil)

// New assembles a Renderer from the supplied options.
func New(opts Options) *Renderer {
	return &Renderer{
		engine:    newEngine(opts),
		mathSpans: !opts.DisableMath,
	}
}

// Render converts Markdown into an HTML fragment. It never returns an error:
// if the engine rejects the input the raw text is emitted as an escaped
// preformatted block instead.
func (r *Renderer) Render(markdown []byte) []byte {
	var buf bytes.Buffer
	if err := r.engine.Convert(markdown, &buf); err != nil {
		return literalFallback(markdown)
	}

	out := buf.Bytes()
	if r.mathSpans {
		out = wrapMathSpans(out)
	}
	return out
}

func literalFallback(markdown []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("<pre><code>")
	buf.WriteString(html.EscapeString(string(markdown)))
	buf.WriteString("</code></pre>\n")
	return buf.Bytes()
}

// mathPattern matches display segments first so $$...$$ is never split into
// two inline matches.
var mathPattern = regexp.MustCompile(`\$\$[^$]+?\$\$|\$[^$\n]+?\$`)

// wrapMathSpans wraps TeX-delimited segments in classed elements for
// client-side typesetting. The delimited source is kept verbatim inside the
// wrapper.
func wrapMathSpans(fragment []byte) []byte {
	return mathPattern.ReplaceAllFunc(fragment, func(match []byte) []byte {
		if bytes.HasPrefix(match, []byte("$$")) {
			return []byte(`<div class="math-display">` + string(match) + `</div>`)
		}
		return []byte(`<span class="math-inline">` + string(match) + `</span>`)
	})
}

func newEngine(opts Options) goldmark.Markdown {
	exts := collectExtensions(opts.Extensions)
	exts = append(exts, NewHighlighting())

	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}

	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, goldmarkhtml.WithHardWraps())
	}
	if !opts.SafeMode {
		rendererOptions = append(rendererOptions, goldmarkhtml.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
		goldmark.WithExtensions(exts...),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}

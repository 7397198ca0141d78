package render

import (
	"bytes"
	"html"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// highlighting replaces goldmark's fenced code rendering with a chroma-backed
// renderer that emits spans classed by the fixed TokenKind taxonomy.
type highlighting struct{}

// NewHighlighting returns the goldmark extender wiring fenced-code syntax
// highlighting into an engine.
func NewHighlighting() goldmark.Extender {
	return &highlighting{}
}

func (h *highlighting) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(newHighlightRenderer(), 200),
	))
}

type highlightRenderer struct{}

func newHighlightRenderer() renderer.NodeRenderer {
	return &highlightRenderer{}
}

func (r *highlightRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *highlightRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}

	n := node.(*ast.FencedCodeBlock)

	language := ""
	if lang := n.Language(source); lang != nil {
		language = string(lang)
	}

	var code bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		code.Write(line.Value(source))
	}

	if language == "" {
		_, _ = w.WriteString("<pre><code>")
	} else {
		_, _ = w.WriteString(`<pre><code class="language-` + html.EscapeString(language) + `">`)
	}

	writeCode(w, language, code.String())

	_, _ = w.WriteString("</code></pre>\n")
	return ast.WalkContinue, nil
}

// writeCode emits the code body. A recognized language tag produces
// token-classed spans; anything else falls back to escaped literal text so
// rendering never fails on unknown input.
func writeCode(w util.BufWriter, language, code string) {
	if language == "" {
		_, _ = w.WriteString(html.EscapeString(code))
		return
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		_, _ = w.WriteString(html.EscapeString(code))
		return
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		_, _ = w.WriteString(html.EscapeString(code))
		return
	}

	for token := iterator(); token != chroma.EOF; token = iterator() {
		kind := classifyToken(token.Type)
		class := kind.CSSClass()
		if class == "" {
			_, _ = w.WriteString(html.EscapeString(token.Value))
			continue
		}
		_, _ = w.WriteString(`<span class="` + class + `">`)
		_, _ = w.WriteString(html.EscapeString(token.Value))
		_, _ = w.WriteString("</span>")
	}
}

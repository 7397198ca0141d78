package render

import "github.com/alecthomas/chroma/v2"

// TokenKind is the fixed highlight taxonomy emitted for fenced code. Output
// stability matters more than lexer fidelity here: every chroma token type
// collapses onto one of these kinds (or Plain), and each kind maps to a
// stable CSS class the stylesheet styles.
type TokenKind int

const (
	TokenPlain TokenKind = iota
	TokenComment
	TokenKeyword
	TokenString
	TokenNumber
	TokenAttribute
	TokenSymbol
	TokenType
	TokenFunction
	TokenMacro
	TokenConstant
	TokenPunctuation
	TokenOperator
)

var tokenClasses = map[TokenKind]string{
	TokenComment:     "hl-comment",
	TokenKeyword:     "hl-keyword",
	TokenString:      "hl-string",
	TokenNumber:      "hl-number",
	TokenAttribute:   "hl-attribute",
	TokenSymbol:      "hl-symbol",
	TokenType:        "hl-type",
	TokenFunction:    "hl-function",
	TokenMacro:       "hl-macro",
	TokenConstant:    "hl-constant",
	TokenPunctuation: "hl-punctuation",
	TokenOperator:    "hl-operator",
}

// CSSClass returns the stylesheet class for the kind, or "" for TokenPlain
// so plain runs are emitted without a wrapping span.
func (k TokenKind) CSSClass() string {
	return tokenClasses[k]
}

// Kinds enumerates every styled token kind in stable order, for stylesheet
// generation and tests.
func Kinds() []TokenKind {
	return []TokenKind{
		TokenComment,
		TokenKeyword,
		TokenString,
		TokenNumber,
		TokenAttribute,
		TokenSymbol,
		TokenType,
		TokenFunction,
		TokenMacro,
		TokenConstant,
		TokenPunctuation,
		TokenOperator,
	}
}

// classifyToken maps a chroma token type onto the fixed taxonomy. Specific
// types are matched first, then the broad category decides; anything left
// renders as plain text.
func classifyToken(t chroma.TokenType) TokenKind {
	switch t {
	case chroma.KeywordType:
		return TokenType
	case chroma.KeywordConstant:
		return TokenConstant
	case chroma.NameFunction, chroma.NameFunctionMagic, chroma.NameBuiltin:
		return TokenFunction
	case chroma.NameClass, chroma.NameNamespace:
		return TokenType
	case chroma.NameAttribute, chroma.NameProperty, chroma.NameTag:
		return TokenAttribute
	case chroma.NameConstant:
		return TokenConstant
	case chroma.NameDecorator:
		return TokenMacro
	case chroma.CommentPreproc, chroma.CommentPreprocFile:
		return TokenMacro
	case chroma.LiteralStringSymbol:
		return TokenSymbol
	}

	switch t.Category() {
	case chroma.Keyword:
		return TokenKeyword
	case chroma.Comment:
		return TokenComment
	case chroma.Operator:
		return TokenOperator
	case chroma.Punctuation:
		return TokenPunctuation
	case chroma.LiteralString:
		return TokenString
	case chroma.LiteralNumber:
		return TokenNumber
	}

	return TokenPlain
}

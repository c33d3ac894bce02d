package docprinter

import (
	"errors"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrRender                = errors.New("unrenderable document")
	ErrMalformedCell         = errors.New("malformed cell")
	ErrConfigurationMismatch = errors.New("row configuration mismatch")
	ErrUnsupportedLayout     = errors.New("unsupported layout")
	ErrInvalidDocument       = errors.New("invalid document description")
)

// Doc is a document: a description of printable content that does not yet
// commit to a line width. The set of implementations is closed; use the
// constructors in this package rather than building values by hand.
type Doc interface {
	isDoc()
}

// Text is a single line of text. Use [Str] to build one.
type Text struct {
	text string
}

// Interned documents. Each compares equal to every other instance of
// itself obtained from the constructors.
var (
	// Empty is the empty document.
	Empty Doc = Text{}
	// Space is a single space.
	Space Doc = Text{text: " "}
	// Line is a forced line break.
	Line Doc = line{}
	// Fail is the empty set of alternatives. Rendering it is an error.
	Fail Doc = &AltDoc{}
	// SoftLine is either nothing or a line break, in that order.
	SoftLine = Alt(Empty, Line)
)

func (Text) isDoc() {}

// String returns the text.
func (t Text) String() string { return t.text }

type line struct{}

func (line) isDoc() {}

// NestDoc indents every line started by Doc by Indent columns.
// Indent is always positive and Doc is never a *NestDoc.
type NestDoc struct {
	Indent int
	Doc    Doc
}

func (*NestDoc) isDoc() {}

// CatDoc is a concatenation. No element is a *CatDoc or [Empty].
type CatDoc struct {
	Docs []Doc
}

func (*CatDoc) isDoc() {}

// AltDoc is a set of layouts with the same meaning, listed narrowest
// first. No element is an *AltDoc. With no elements it is [Fail].
type AltDoc struct {
	Docs []Doc
}

func (*AltDoc) isDoc() {}

// RowDoc is one row of a potential table. Cells are laid out side by side
// and end with a line break. No cell is a *RowDoc.
type RowDoc struct {
	Cells     []Doc
	Config    RowConfig
	MinWidths []int
}

func (*RowDoc) isDoc() {}

// TableDoc is a sequence of rows whose columns share a common width.
type TableDoc struct {
	Rows []*RowDoc
}

func (*TableDoc) isDoc() {}

func isEmpty(d Doc) bool {
	return d == nil || d == Empty
}

func isFail(d Doc) bool {
	a, ok := d.(*AltDoc)
	return ok && len(a.Docs) == 0
}

func isBlank(s string) bool {
	return s != "" && strings.TrimSpace(s) == ""
}

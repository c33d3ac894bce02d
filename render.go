package docprinter

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Token is the unit of renderer output: a fragment of text or a line break.
type Token struct {
	Text    string
	Newline bool
}

// Newline is the line break token.
var Newline = Token{Newline: true}

// String returns the token's text, or "\n" for a line break.
func (t Token) String() string {
	if t.Newline {
		return "\n"
	}
	return t.Text
}

// Width returns the display width of the token. Line breaks have no width.
func (t Token) Width() int {
	if t.Newline {
		return 0
	}
	return runewidth.StringWidth(t.Text)
}

// Renderer resolves a document into a stream of tokens. The stream yields
// a non-nil error at most once, as its last element.
type Renderer interface {
	Render(d Doc) iter.Seq2[Token, error]
}

// policy picks one of a non-empty list of alternatives.
type policy interface {
	choose(e *engine, alts []Doc) Doc
}

// errStopped unwinds the recursion once the consumer stops reading.
var errStopped = errors.New("stopped")

// stream adapts an engine run to an iterator.
func stream(d Doc, p policy) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		e := newEngine(p, 0, func(t Token) bool { return yield(t, nil) })
		if err := e.render(d); err != nil && !errors.Is(err, errStopped) {
			yield(Token{}, err)
		}
	}
}

// nestLayer is the line state of one enclosing [NestDoc].
type nestLayer struct {
	indent  int
	content bool    // the current line has non-blank content
	pending []Token // leading whitespace seen before any content
}

// engine holds the state of a single render: the enclosing nests, the
// column of the output line and the consumer.
type engine struct {
	policy policy
	layers []*nestLayer
	col    int
	sink   func(Token) bool
}

func newEngine(p policy, col int, sink func(Token) bool) *engine {
	return &engine{policy: p, col: col, sink: sink}
}

func (e *engine) render(d Doc) error {
	switch d := d.(type) {
	case nil:
		return nil
	case Text:
		if d.text == "" {
			return nil
		}
		return e.put(Token{Text: d.text})
	case line:
		return e.put(Newline)
	case *CatDoc:
		for _, c := range d.Docs {
			if err := e.render(c); err != nil {
				return err
			}
		}
		return nil
	case *AltDoc:
		if len(d.Docs) == 0 {
			return fmt.Errorf("%w: no alternative layout", ErrRender)
		}
		return e.render(e.policy.choose(e, d.Docs))
	case *NestDoc:
		e.layers = append(e.layers, &nestLayer{indent: d.Indent})
		err := e.render(d.Doc)
		e.layers = e.layers[:len(e.layers)-1]
		return err
	case *RowDoc:
		return e.table([]*RowDoc{d})
	case *TableDoc:
		return e.table(d.Rows)
	default:
		return fmt.Errorf("%w: unknown document %T", ErrRender, d)
	}
}

func (e *engine) put(t Token) error {
	if !e.emit(len(e.layers)-1, t) {
		return errStopped
	}
	return nil
}

// emit passes t through the nest layers from the i-th outwards. A layer
// holds back leading whitespace until the line gets content, then writes
// its indentation followed by the held whitespace. Whitespace on a line
// that stays blank is dropped.
func (e *engine) emit(i int, t Token) bool {
	if i < 0 {
		return e.write(t)
	}
	l := e.layers[i]
	switch {
	case t.Newline:
		l.content = false
		l.pending = l.pending[:0]
		return e.emit(i-1, t)
	case l.content:
		return e.emit(i-1, t)
	case isBlank(t.Text):
		l.pending = append(l.pending, t)
		return true
	}
	l.content = true
	if !e.emit(i-1, Token{Text: strings.Repeat(" ", l.indent)}) {
		return false
	}
	for _, p := range l.pending {
		if !e.emit(i-1, p) {
			return false
		}
	}
	l.pending = l.pending[:0]
	return e.emit(i-1, t)
}

func (e *engine) write(t Token) bool {
	if t.Newline {
		e.col = 0
	} else {
		e.col += t.Width()
	}
	return e.sink(t)
}

// column returns the column at which the next content token would land,
// counting indentation and whitespace still held back by the nest layers.
func (e *engine) column() int {
	col := e.col
	for i := len(e.layers) - 1; i >= 0; i-- {
		l := e.layers[i]
		if l.content {
			continue
		}
		col += l.indent
		for _, p := range l.pending {
			col += p.Width()
		}
	}
	return col
}

// indent returns the column at which content lands on a new line.
func (e *engine) indent() int {
	n := 0
	for _, l := range e.layers {
		n += l.indent
	}
	return n
}

// buffer renders d on its own, starting at column col, and returns its
// tokens. It is used for table cells and for measuring.
func (e *engine) buffer(d Doc, col int) ([]Token, error) {
	var toks []Token
	sub := newEngine(e.policy, col, func(t Token) bool {
		toks = append(toks, t)
		return true
	})
	if err := sub.render(d); err != nil {
		return nil, err
	}
	return toks, nil
}

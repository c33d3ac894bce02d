package docprinter

import (
	"fmt"
	"iter"
)

// SimpleLayout selects the alternative the simple renderer commits to.
type SimpleLayout int

const (
	Shortest SimpleLayout = iota // first alternative
	Longest                      // last alternative
)

var layouts = []SimpleLayout{Shortest, Longest}

// String returns the layout name.
func (l SimpleLayout) String() string {
	switch l {
	case Shortest:
		return "shortest"
	case Longest:
		return "longest"
	default:
		return fmt.Sprintf("SimpleLayout(%d)", int(l))
	}
}

// Layouts returns all simple layouts.
func Layouts() []SimpleLayout {
	out := make([]SimpleLayout, len(layouts))
	copy(out, layouts)
	return out
}

// ParseLayout parses a layout name as returned by [SimpleLayout.String].
func ParseLayout(s string) (SimpleLayout, error) {
	for _, l := range layouts {
		if l.String() == s {
			return l, nil
		}
	}
	return Shortest, fmt.Errorf("%w: %q", ErrUnsupportedLayout, s)
}

// SimpleRenderer renders without regard to line width. Every set of
// alternatives resolves to the same position in the list, the first one
// for [Shortest] and the last one for [Longest].
type SimpleRenderer struct {
	Layout SimpleLayout
}

var _ Renderer = SimpleRenderer{}

// Render returns the tokens of d.
func (r SimpleRenderer) Render(d Doc) iter.Seq2[Token, error] {
	return stream(d, r)
}

func (r SimpleRenderer) choose(_ *engine, alts []Doc) Doc {
	if r.Layout == Longest {
		return alts[len(alts)-1]
	}
	return alts[0]
}

// RenderSimple renders d with the [Shortest] simple layout.
func RenderSimple(d Doc) iter.Seq2[Token, error] {
	return SimpleRenderer{}.Render(d)
}

package docprinter

import "iter"

// SmartRenderer renders to fit MaxLineWidth. At each set of alternatives
// it takes the first one whose length hint fits between the current
// column, indentation included, and the maximum width. If none fits it
// takes the last, widest one.
type SmartRenderer struct {
	MaxLineWidth int
}

var _ Renderer = SmartRenderer{}

// Render returns the tokens of d.
func (r SmartRenderer) Render(d Doc) iter.Seq2[Token, error] {
	return stream(d, r)
}

func (r SmartRenderer) choose(e *engine, alts []Doc) Doc {
	col := e.column()
	for _, a := range alts {
		if addHint(col, e.hint(a)) <= r.MaxLineWidth {
			return a
		}
	}
	return alts[len(alts)-1]
}

// RenderSmart renders d to fit maxLineWidth.
func RenderSmart(d Doc, maxLineWidth int) iter.Seq2[Token, error] {
	return SmartRenderer{MaxLineWidth: maxLineWidth}.Render(d)
}

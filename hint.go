package docprinter

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// Unbounded is the length hint of a document that cannot be laid out on a
// single line.
const Unbounded = math.MaxInt / 2

// Hint estimates the width of d without rendering it: text counts its
// display width, a line break is [Unbounded], alternatives count their
// first layout. Rows and tables are rendered and count their widest line.
func Hint(d Doc) int {
	return newEngine(SimpleRenderer{}, 0, nil).hint(d)
}

func (e *engine) hint(d Doc) int {
	switch d := d.(type) {
	case nil:
		return 0
	case Text:
		return runewidth.StringWidth(d.text)
	case line:
		return Unbounded
	case *NestDoc:
		return addHint(d.Indent, e.hint(d.Doc))
	case *CatDoc:
		n := 0
		for _, c := range d.Docs {
			if n = addHint(n, e.hint(c)); n == Unbounded {
				break
			}
		}
		return n
	case *AltDoc:
		if len(d.Docs) == 0 {
			return Unbounded
		}
		return e.hint(d.Docs[0])
	case *RowDoc:
		return e.tableHint([]*RowDoc{d})
	case *TableDoc:
		return e.tableHint(d.Rows)
	}
	return Unbounded
}

func (e *engine) tableHint(rows []*RowDoc) int {
	_, widths, err := e.measure(rows)
	if err != nil {
		return Unbounded
	}
	return tableWidth(rows, widths)
}

func addHint(a, b int) int {
	if a >= Unbounded-b {
		return Unbounded
	}
	return a + b
}

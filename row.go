package docprinter

import "fmt"

// Alignment controls on which side a cell is padded to its column width.
type Alignment int

const (
	AlignLeft Alignment = iota // pad on the right
	AlignCenter
	AlignRight // pad on the left
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// RowConfig is the layout configuration shared by the cells of a row.
type RowConfig struct {
	Pad   rune // fills a cell up to its column width
	Sep   rune // between columns
	Align Alignment
}

// DefaultRowConfig pads and separates with single spaces, left aligned.
var DefaultRowConfig = RowConfig{Pad: ' ', Sep: ' '}

// String returns a compact description of the configuration.
func (c RowConfig) String() string {
	return fmt.Sprintf("pad=%q sep=%q align=%s", c.Pad, c.Sep, c.Align)
}

// Row builds a row with [DefaultRowConfig]. See [NewRow].
func Row(cells ...Doc) (*RowDoc, error) {
	return NewRow(DefaultRowConfig, cells...)
}

// NewRow builds a row with the given configuration. Cells that are rows
// themselves are spliced in, together with their minimum column widths. A
// spliced row with a different configuration is an error wrapping
// [ErrConfigurationMismatch].
func NewRow(cfg RowConfig, cells ...Doc) (*RowDoc, error) {
	r := &RowDoc{Config: cfg}
	for _, c := range cells {
		sub, ok := c.(*RowDoc)
		if !ok {
			if c == nil {
				c = Empty
			}
			r.Cells = append(r.Cells, c)
			continue
		}
		if sub.Config != cfg {
			return nil, fmt.Errorf("%w: cannot splice row (%s) into row (%s)", ErrConfigurationMismatch, sub.Config, cfg)
		}
		r.MinWidths = spliceWidths(r.MinWidths, sub.MinWidths, len(r.Cells))
		r.Cells = append(r.Cells, sub.Cells...)
	}
	return r, nil
}

// WithMinWidths returns a copy of r whose columns are at least as wide as
// widths. Non-positive entries leave a column unconstrained.
func (r *RowDoc) WithMinWidths(widths ...int) *RowDoc {
	out := *r
	out.MinWidths = spliceWidths(append([]int(nil), r.MinWidths...), widths, 0)
	return &out
}

// spliceWidths raises dst[offset+i] to src[i], growing dst as needed.
func spliceWidths(dst, src []int, offset int) []int {
	for i, w := range src {
		j := offset + i
		for len(dst) <= j {
			dst = append(dst, 0)
		}
		if w > dst[j] {
			dst[j] = w
		}
	}
	return dst
}

// Table builds a table from rows. Nil rows are skipped.
func Table(rows ...*RowDoc) *TableDoc {
	t := &TableDoc{Rows: make([]*RowDoc, 0, len(rows))}
	for _, r := range rows {
		if r != nil {
			t.Rows = append(t.Rows, r)
		}
	}
	return t
}

// Tabulate groups docs into a single table. Each doc must be a row, a
// table, or a set of alternatives with a row among them; the first such
// row is used. It reports false if any doc has no row to offer.
func Tabulate(docs ...Doc) (*TableDoc, bool) {
	var rows []*RowDoc
	for _, d := range docs {
		switch d := d.(type) {
		case *RowDoc:
			rows = append(rows, d)
		case *TableDoc:
			rows = append(rows, d.Rows...)
		case *AltDoc:
			r := firstRow(d)
			if r == nil {
				return nil, false
			}
			rows = append(rows, r)
		default:
			return nil, false
		}
	}
	if len(rows) == 0 {
		return nil, false
	}
	return Table(rows...), true
}

func firstRow(a *AltDoc) *RowDoc {
	for _, d := range a.Docs {
		if r, ok := d.(*RowDoc); ok {
			return r
		}
	}
	return nil
}

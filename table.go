package docprinter

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// cell is a rendered table cell.
type cell struct {
	toks  []Token
	width int
}

// table renders rows with aligned columns. A bare row is a table of one.
func (e *engine) table(rows []*RowDoc) error {
	cells, widths, err := e.measure(rows)
	if err != nil {
		return err
	}
	for i, r := range rows {
		if len(widths) == 0 {
			continue
		}
		for j, width := range widths {
			c := cells[i][j]
			left, right := alignCell(width-c.width, r.Config.Align)
			if err := e.pad(r.Config.Pad, left); err != nil {
				return err
			}
			for _, t := range c.toks {
				if err := e.put(t); err != nil {
					return err
				}
			}
			if err := e.pad(r.Config.Pad, right); err != nil {
				return err
			}
			if j < len(widths)-1 && r.Config.Sep != 0 {
				if err := e.put(Token{Text: string(r.Config.Sep)}); err != nil {
					return err
				}
			}
		}
		if err := e.put(Newline); err != nil {
			return err
		}
	}
	return nil
}

// measure renders every cell and computes the column widths: the widest
// cell of each column, raised to any minimum width the rows ask for.
// Missing cells are empty. The first row starts at the current column,
// later rows at the indentation of a fresh line.
func (e *engine) measure(rows []*RowDoc) ([][]cell, []int, error) {
	numCols := colCount(rows)
	widths := make([]int, numCols)
	cells := make([][]cell, len(rows))
	start := e.column()
	for i, r := range rows {
		cells[i] = make([]cell, numCols)
		col := start
		if i > 0 {
			col = e.indent()
		}
		for j := range r.Cells {
			toks, err := e.buffer(r.Cells[j], col)
			if err != nil {
				return nil, nil, err
			}
			c := cell{toks: toks}
			for _, t := range toks {
				if t.Newline {
					return nil, nil, fmt.Errorf("%w: line break in row %d, column %d", ErrMalformedCell, i+1, j+1)
				}
				c.width += t.Width()
			}
			cells[i][j] = c
			if c.width > widths[j] {
				widths[j] = c.width
			}
			col += c.width + sepWidth(r.Config)
		}
		for j, w := range r.MinWidths {
			if j < numCols && w > widths[j] {
				widths[j] = w
			}
		}
	}
	return cells, widths, nil
}

// tableWidth returns the width of the widest rendered line.
func tableWidth(rows []*RowDoc, widths []int) int {
	if len(widths) == 0 {
		return 0
	}
	total := 0
	for _, w := range widths {
		total += w
	}
	n := 0
	for _, r := range rows {
		if w := total + (len(widths)-1)*sepWidth(r.Config); w > n {
			n = w
		}
	}
	return n
}

func colCount(rows []*RowDoc) int {
	n := 0
	for _, r := range rows {
		if len(r.Cells) > n {
			n = len(r.Cells)
		}
	}
	return n
}

func sepWidth(cfg RowConfig) int {
	if cfg.Sep == 0 {
		return 0
	}
	return runewidth.RuneWidth(cfg.Sep)
}

// alignCell splits pad columns of padding between the left and right side
// of a cell.
func alignCell(pad int, align Alignment) (left, right int) {
	if pad <= 0 {
		return 0, 0
	}
	switch align {
	case AlignRight:
		return pad, 0
	case AlignCenter:
		left = pad / 2
		return left, pad - left
	default:
		return 0, pad
	}
}

// pad emits n columns of the pad rune. A zero rune pads with spaces; the
// remainder that a wide rune cannot fill is padded with spaces too.
func (e *engine) pad(r rune, n int) error {
	if n <= 0 {
		return nil
	}
	if r == 0 {
		r = ' '
	}
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		w = 1
	}
	s := strings.Repeat(string(r), n/w) + strings.Repeat(" ", n%w)
	return e.put(Token{Text: s})
}

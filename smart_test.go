package docprinter_test

import (
	"testing"

	"github.com/bjaus/docprinter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderSmart(t *testing.T, d docprinter.Doc, width int) string {
	t.Helper()
	out, err := docprinter.ToString(docprinter.SmartRenderer{MaxLineWidth: width}, d)
	require.NoError(t, err)
	return out
}

func TestSmartPicksFirstThatFits(t *testing.T) {
	t.Parallel()
	doc := docprinter.Alt(docprinter.Str("x"), docprinter.Str("xxx"))
	assert.Equal(t, "x", renderSmart(t, doc, 2))
	assert.Equal(t, "x", renderSmart(t, doc, 1))
}

func TestSmartFallsBackToLast(t *testing.T) {
	t.Parallel()
	doc := docprinter.Alt(docprinter.Str("x"), docprinter.Str("yy"), docprinter.Str("xxx"))
	assert.Equal(t, "xxx", renderSmart(t, doc, 0))
}

func TestSmartCountsCurrentColumn(t *testing.T) {
	t.Parallel()
	doc := docprinter.Cat(docprinter.Str("abc"), docprinter.Alt(docprinter.Str("de"), docprinter.Str("fghij")))
	assert.Equal(t, "abcfghij", renderSmart(t, doc, 4))
	assert.Equal(t, "abcde", renderSmart(t, doc, 5))
}

func TestSmartSkipsMultiLineAlternative(t *testing.T) {
	t.Parallel()
	doc := docprinter.Alt(docprinter.Cat(a, docprinter.Line, b), docprinter.Cat(a, b), c)
	assert.Equal(t, "ab", renderSmart(t, doc, 80))
}

func TestSmartSkipsFailingAlternative(t *testing.T) {
	t.Parallel()
	doc := docprinter.Alt(docprinter.Cat(a, docprinter.Fail), b)
	assert.Equal(t, "b", renderSmart(t, doc, 80))
}

func TestSmartCountsPendingIndentation(t *testing.T) {
	t.Parallel()
	doc := docprinter.Nest(4, docprinter.Cat(docprinter.Line, docprinter.Alt(docprinter.Str("abcd"), docprinter.Str("z"))))
	assert.Equal(t, "\n    z", renderSmart(t, doc, 7))
	assert.Equal(t, "\n    abcd", renderSmart(t, doc, 8))
}

func TestSmartSoftLine(t *testing.T) {
	t.Parallel()
	doc := docprinter.Cat(a, docprinter.SoftLine, b)
	assert.Equal(t, "ab", renderSmart(t, doc, 80))
	assert.Equal(t, "a\nb", renderSmart(t, doc, 0))
}

func TestSmartFillsWords(t *testing.T) {
	t.Parallel()
	words := []string{"aaa", "bbb", "ccc", "ddd"}
	docs := []docprinter.Doc{docprinter.Str(words[0])}
	for _, w := range words[1:] {
		docs = append(docs, docprinter.Alt(
			docprinter.Cat(docprinter.Space, docprinter.Str(w)),
			docprinter.Cat(docprinter.Line, docprinter.Str(w)),
		))
	}
	doc := docprinter.Cat(docs...)
	assert.Equal(t, "aaa bbb\nccc ddd", renderSmart(t, doc, 10))
	assert.Equal(t, "aaa bbb ccc ddd", renderSmart(t, doc, 15))
	assert.Equal(t, "aaa\nbbb\nccc\nddd", renderSmart(t, doc, 3))
}

func TestSmartTable(t *testing.T) {
	t.Parallel()
	tbl := docprinter.Table(
		mustRow(t, a, docprinter.Str("bb")),
		mustRow(t, docprinter.Str("ccc"), d),
	)
	doc := docprinter.Alt(tbl, docprinter.Str("fallback"))
	assert.Equal(t, "a   bb\nccc d \n", renderSmart(t, doc, 6))
	assert.Equal(t, "fallback", renderSmart(t, doc, 5))
}

func TestSmartInsideCell(t *testing.T) {
	t.Parallel()
	row := mustRow(t, docprinter.Str("abc"), docprinter.Alt(docprinter.Str("de"), docprinter.Str("f")))
	assert.Equal(t, "abc f\n", renderSmart(t, row, 5))
	assert.Equal(t, "abc de\n", renderSmart(t, row, 6))
}

func TestSmartTableAfterText(t *testing.T) {
	t.Parallel()
	row := mustRow(t, docprinter.Str("k"), docprinter.Alt(docprinter.Str("long"), docprinter.Str("s")))
	doc := docprinter.Nest(2, docprinter.Cat(docprinter.Str("label: "), docprinter.Table(row, row)))
	assert.Equal(t, "  label: k s   \n  k long\n", renderSmart(t, doc, 10))
}

func TestHint(t *testing.T) {
	t.Parallel()
	multi := docprinter.Cat(a, docprinter.Line, b)
	tests := []struct {
		name string
		doc  docprinter.Doc
		want int
	}{
		{"empty", docprinter.Empty, 0},
		{"nil", nil, 0},
		{"text", docprinter.Str("hello"), 5},
		{"wide", docprinter.Str("你好"), 4},
		{"line", docprinter.Line, docprinter.Unbounded},
		{"cat", docprinter.Cat(a, docprinter.Space, b), 3},
		{"cat with line", multi, docprinter.Unbounded},
		{"nest", docprinter.Nest(2, a), 3},
		{"nest with line", docprinter.Nest(2, multi), docprinter.Unbounded},
		{"alt counts first", docprinter.Alt(docprinter.Str("ab"), c), 2},
		{"alt with multi-line first", docprinter.Alt(multi, c), docprinter.Unbounded},
		{"fail", docprinter.Fail, docprinter.Unbounded},
		{"row", mustRow(t, a, docprinter.Str("bb")), 4},
		{"malformed row", mustRow(t, a, multi), docprinter.Unbounded},
		{"table", docprinter.Table(mustRow(t, a, docprinter.Str("bb")), mustRow(t, docprinter.Str("ccc"), d)), 6},
		{"empty table", docprinter.Table(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, docprinter.Hint(tt.doc))
		})
	}
}

func TestHintSaturates(t *testing.T) {
	t.Parallel()
	doc := docprinter.Cat(docprinter.Line, docprinter.Line, docprinter.Nest(3, docprinter.Line))
	assert.Equal(t, docprinter.Unbounded, docprinter.Hint(doc))
	assert.Equal(t, docprinter.Unbounded, docprinter.Hint(docprinter.Cat(a, doc)))
}

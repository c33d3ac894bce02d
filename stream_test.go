package docprinter_test

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/bjaus/docprinter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errWrite = errors.New("write failed")

type failingWriter struct {
	n int // writes allowed before failing
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errWrite
	}
	w.n--
	return len(p), nil
}

func TestWrite(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, docprinter.Write(&buf, docprinter.SimpleRenderer{}, docprinter.Spaced(a, b)))
	assert.Equal(t, "a b", buf.String())
}

func TestWriteStopsAtWriterError(t *testing.T) {
	t.Parallel()
	w := &failingWriter{n: 1}
	err := docprinter.Write(w, docprinter.SimpleRenderer{}, docprinter.Cat(a, b, c))
	assert.ErrorIs(t, err, errWrite)
	assert.Equal(t, 0, w.n)
}

func TestWriteRenderError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := docprinter.Write(&buf, docprinter.SimpleRenderer{}, docprinter.Cat(a, docprinter.Fail))
	assert.ErrorIs(t, err, docprinter.ErrRender)
	assert.Equal(t, "a", buf.String())
}

func TestMarshal(t *testing.T) {
	t.Parallel()
	out, err := docprinter.Marshal(docprinter.SmartRenderer{MaxLineWidth: 0}, docprinter.Cat(a, docprinter.SoftLine, b))
	require.NoError(t, err)
	assert.Equal(t, []byte("a\nb"), out)

	_, err = docprinter.Marshal(docprinter.SimpleRenderer{}, docprinter.Fail)
	assert.ErrorIs(t, err, docprinter.ErrRender)
}

func TestToStringError(t *testing.T) {
	t.Parallel()
	out, err := docprinter.ToString(docprinter.SimpleRenderer{}, docprinter.Cat(a, docprinter.Fail))
	assert.ErrorIs(t, err, docprinter.ErrRender)
	assert.Empty(t, out)
}

func TestTokensError(t *testing.T) {
	t.Parallel()
	toks, err := docprinter.Tokens(docprinter.SimpleRenderer{}, docprinter.Fail)
	assert.ErrorIs(t, err, docprinter.ErrRender)
	assert.Nil(t, toks)
}

func TestWriteIter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	docs := []docprinter.Doc{
		docprinter.Cat(a, docprinter.Line),
		mustRow(t, b, c),
		d,
	}
	require.NoError(t, docprinter.WriteIter(&buf, docprinter.SimpleRenderer{}, slices.Values(docs)))
	assert.Equal(t, "a\nb c\nd", buf.String())
}

func TestWriteIterStopsAtFirstError(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	seen := 0
	seq := func(yield func(docprinter.Doc) bool) {
		for _, doc := range []docprinter.Doc{a, docprinter.Fail, b} {
			seen++
			if !yield(doc) {
				return
			}
		}
	}
	err := docprinter.WriteIter(&buf, docprinter.SimpleRenderer{}, seq)
	assert.ErrorIs(t, err, docprinter.ErrRender)
	assert.Equal(t, "a", buf.String())
	assert.Equal(t, 2, seen)
}

func TestWriteChan(t *testing.T) {
	t.Parallel()
	ch := make(chan docprinter.Doc, 3)
	ch <- a
	ch <- docprinter.Line
	ch <- b
	close(ch)

	var buf bytes.Buffer
	require.NoError(t, docprinter.WriteChan(&buf, docprinter.SimpleRenderer{}, ch))
	assert.Equal(t, "a\nb", buf.String())
}

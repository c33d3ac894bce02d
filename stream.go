package docprinter

import (
	"bytes"
	"io"
	"iter"
	"strings"
)

// Write renders d with r and writes the tokens to w as they are produced.
// On a render error the output written so far is incomplete and should be
// discarded.
func Write(w io.Writer, r Renderer, d Doc) error {
	for t, err := range r.Render(d) {
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, t.String()); err != nil {
			return err
		}
	}
	return nil
}

// Marshal renders d with r and returns the bytes.
func Marshal(r Renderer, d Doc) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, r, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToString renders d with r and concatenates the tokens.
func ToString(r Renderer, d Doc) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, r, d); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Tokens renders d with r and collects the tokens.
func Tokens(r Renderer, d Doc) ([]Token, error) {
	var toks []Token
	for t, err := range r.Render(d) {
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
	}
	return toks, nil
}

// WriteIter renders each document from seq with r and writes it to w,
// stopping at the first error.
func WriteIter(w io.Writer, r Renderer, seq iter.Seq[Doc]) error {
	var streamErr error
	seq(func(d Doc) bool {
		if err := Write(w, r, d); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// WriteChan renders documents received from ch and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, r Renderer, ch <-chan Doc) error {
	return WriteIter(w, r, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

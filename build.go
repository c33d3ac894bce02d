package docprinter

import "strings"

// Str returns the document for s. The empty string is [Empty] and a single
// space is [Space]. A string with line breaks is split as by [Lines].
func Str(s string) Doc {
	switch {
	case s == "":
		return Empty
	case s == " ":
		return Space
	case strings.ContainsAny(s, "\r\n"):
		return Lines(s)
	default:
		return Text{text: s}
	}
}

// Lines splits s at line breaks and joins the pieces with [Line]. A
// trailing line break is kept, so "a\n" is "a" followed by [Line].
func Lines(s string) Doc {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	parts := strings.Split(s, "\n")
	docs := make([]Doc, len(parts))
	for i, p := range parts {
		docs[i] = Str(p)
	}
	return Join(Line, docs...)
}

// Words splits s around runs of whitespace and joins the words with
// [Space].
func Words(s string) Doc {
	fields := strings.Fields(s)
	docs := make([]Doc, len(fields))
	for i, f := range fields {
		docs[i] = Text{text: f}
	}
	return Join(Space, docs...)
}

// Cat concatenates docs. Nested concatenations are spliced in and empty
// documents are dropped. No documents give [Empty]; a single document is
// returned as is.
func Cat(docs ...Doc) Doc {
	var out []Doc
	for _, d := range docs {
		if c, ok := d.(*CatDoc); ok {
			out = append(out, c.Docs...)
			continue
		}
		if !isEmpty(d) {
			out = append(out, d)
		}
	}
	switch len(out) {
	case 0:
		return Empty
	case 1:
		return out[0]
	}
	return &CatDoc{Docs: out}
}

// Join concatenates docs with sep between each consecutive pair.
func Join(sep Doc, docs ...Doc) Doc {
	if len(docs) == 0 {
		return Empty
	}
	out := make([]Doc, 0, 2*len(docs)-1)
	for i, d := range docs {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, d)
	}
	return Cat(out...)
}

// Nest indents every line started by d by indent columns. A non-positive
// indent returns d unchanged. Nested indentation is summed.
func Nest(indent int, d Doc) Doc {
	if indent <= 0 {
		return d
	}
	if isEmpty(d) {
		return Empty
	}
	if n, ok := d.(*NestDoc); ok {
		return &NestDoc{Indent: indent + n.Indent, Doc: n.Doc}
	}
	return &NestDoc{Indent: indent, Doc: d}
}

// Alt combines docs as alternative layouts, narrowest first. Nested
// alternatives are spliced in, so [Fail] is dropped. No alternatives give
// [Fail]; a single alternative is returned as is.
func Alt(docs ...Doc) Doc {
	var out []Doc
	for _, d := range docs {
		switch d := d.(type) {
		case *AltDoc:
			out = append(out, d.Docs...)
		case nil:
			out = append(out, Empty)
		default:
			out = append(out, d)
		}
	}
	switch len(out) {
	case 0:
		return Fail
	case 1:
		return out[0]
	}
	return &AltDoc{Docs: out}
}

// Repeat concatenates n copies of d.
func Repeat(d Doc, n int) Doc {
	if n <= 0 {
		return Empty
	}
	docs := make([]Doc, n)
	for i := range docs {
		docs[i] = d
	}
	return Cat(docs...)
}

// Then composes a and b.
func Then(a, b Doc) Doc { return Cat(a, b) }

// Or combines a and b as alternatives.
func Or(a, b Doc) Doc { return Alt(a, b) }

// Columns composes a and b as the cells of a row.
func Columns(a, b Doc) (*RowDoc, error) { return Row(a, b) }

// Spaced concatenates docs separated by single spaces. Empty documents are
// skipped and no space is added next to [Space].
func Spaced(docs ...Doc) Doc {
	var out []Doc
	for _, d := range docs {
		if isEmpty(d) {
			continue
		}
		if n := len(out); n > 0 && d != Space && out[n-1] != Space {
			out = append(out, Space)
		}
		out = append(out, d)
	}
	return Cat(out...)
}

// Between concatenates docs between the literal open and close strings.
func Between(open, close string, docs ...Doc) Doc {
	return Cat(Str(open), Cat(docs...), Str(close))
}

// Parens wraps docs in parentheses.
func Parens(docs ...Doc) Doc { return Between("(", ")", docs...) }

// Brackets wraps docs in square brackets.
func Brackets(docs ...Doc) Doc { return Between("[", "]", docs...) }

// Braces wraps docs in curly braces.
func Braces(docs ...Doc) Doc { return Between("{", "}", docs...) }

// Angles wraps docs in angle brackets.
func Angles(docs ...Doc) Doc { return Between("<", ">", docs...) }

// Quote wraps docs in double quotes.
func Quote(docs ...Doc) Doc { return Between(`"`, `"`, docs...) }

// SmartQuote quotes docs with double quotes, unless the content contains
// double quotes and no single quotes, in which case single quotes are used.
func SmartQuote(docs ...Doc) Doc {
	var double, single bool
	for _, d := range docs {
		walkText(d, func(s string) {
			double = double || strings.Contains(s, `"`)
			single = single || strings.Contains(s, `'`)
		})
	}
	if double && !single {
		return Between("'", "'", docs...)
	}
	return Quote(docs...)
}

// walkText calls f for every text leaf of d, in order, visiting all
// alternatives.
func walkText(d Doc, f func(string)) {
	switch d := d.(type) {
	case Text:
		f(d.text)
	case *NestDoc:
		walkText(d.Doc, f)
	case *CatDoc:
		for _, c := range d.Docs {
			walkText(c, f)
		}
	case *AltDoc:
		for _, c := range d.Docs {
			walkText(c, f)
		}
	case *RowDoc:
		for _, c := range d.Cells {
			walkText(c, f)
		}
	case *TableDoc:
		for _, r := range d.Rows {
			walkText(r, f)
		}
	}
}

// Inline restricts d to the layouts that fit on a single line. Line breaks,
// rows and tables become [Fail]; alternatives that cannot be single line
// are dropped.
func Inline(d Doc) Doc {
	switch d := d.(type) {
	case nil:
		return Empty
	case line, *RowDoc, *TableDoc:
		return Fail
	case *NestDoc:
		c := Inline(d.Doc)
		if isFail(c) {
			return Fail
		}
		return Nest(d.Indent, c)
	case *CatDoc:
		out := make([]Doc, len(d.Docs))
		for i, c := range d.Docs {
			out[i] = Inline(c)
			if isFail(out[i]) {
				return Fail
			}
		}
		return Cat(out...)
	case *AltDoc:
		var out []Doc
		for _, c := range d.Docs {
			if c = Inline(c); !isFail(c) {
				out = append(out, c)
			}
		}
		return Alt(out...)
	}
	return d
}

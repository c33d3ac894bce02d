package docprinter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Tags for the interned documents in the YAML representation.
const (
	tagLine  = "!line"
	tagSpace = "!space"
	tagEmpty = "!empty"
	tagFail  = "!fail"
)

// Decoder reads document descriptions written in YAML.
type Decoder struct {
	// IndentSize is the indentation of a nest that does not give its own.
	IndentSize int
}

// DecodeYAML reads a document description from r with the zero [Decoder].
// See [Decoder.Decode].
func DecodeYAML(r io.Reader) (Doc, error) {
	return Decoder{}.Decode(r)
}

// Decode reads a document description from r. Empty input is [Empty].
//
// Plain scalars are text as by [Str]; the tags !line, !space, !empty and
// !fail stand for the interned documents; a sequence is a concatenation.
// Composite documents are single-key mappings:
//
//	cat: [docs]
//	alt: [docs]
//	join: {sep: doc, docs: [docs]}
//	nest: {indent: 4, doc: doc}
//	row: [cells] | {cells: [cells], pad: " ", sep: " ", align: left, min_widths: [ints]}
//	table: [rows]
//	words: "some text"
//	inline: doc
func (dec Decoder) Decode(r io.Reader) (Doc, error) {
	var n yaml.Node
	if err := yaml.NewDecoder(r).Decode(&n); err != nil {
		if errors.Is(err, io.EOF) {
			return Empty, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	st := &decodeState{Decoder: dec, expanding: make(map[*yaml.Node]bool)}
	return st.decodeNode(&n)
}

// maxAliasNodes bounds the number of nodes decoded through aliases, so
// nested aliases cannot expand without limit.
const maxAliasNodes = 1 << 16

// decodeState tracks the aliases being expanded during one Decode.
type decodeState struct {
	Decoder
	expanding map[*yaml.Node]bool
	aliased   int
}

// UnmarshalYAML decodes a document description from data. See [DecodeYAML].
func UnmarshalYAML(data []byte) (Doc, error) {
	return DecodeYAML(bytes.NewReader(data))
}

func (dec *decodeState) decodeNode(n *yaml.Node) (Doc, error) {
	if len(dec.expanding) > 0 {
		if dec.aliased++; dec.aliased > maxAliasNodes {
			return nil, invalid(n, "aliases expand to more than %d nodes", maxAliasNodes)
		}
	}
	switch n.Kind {
	case 0:
		return Empty, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Empty, nil
		}
		return dec.decodeNode(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, invalid(n, "unknown alias %s", n.Value)
		}
		if dec.expanding[n.Alias] {
			return nil, invalid(n, "alias %s refers to itself", n.Value)
		}
		dec.expanding[n.Alias] = true
		defer delete(dec.expanding, n.Alias)
		return dec.decodeNode(n.Alias)
	case yaml.ScalarNode:
		return dec.decodeScalar(n)
	case yaml.SequenceNode:
		docs, err := dec.decodeSeq(n)
		if err != nil {
			return nil, err
		}
		return Cat(docs...), nil
	case yaml.MappingNode:
		return dec.decodeMapping(n)
	}
	return nil, invalid(n, "unexpected node")
}

func (dec *decodeState) decodeScalar(n *yaml.Node) (Doc, error) {
	switch n.Tag {
	case tagLine:
		return Line, nil
	case tagSpace:
		return Space, nil
	case tagEmpty, "!!null":
		return Empty, nil
	case tagFail:
		return Fail, nil
	}
	if len(n.Tag) > 1 && n.Tag[0] == '!' && n.Tag[1] != '!' {
		return nil, invalid(n, "unknown tag %s", n.Tag)
	}
	return Str(n.Value), nil
}

func (dec *decodeState) decodeSeq(n *yaml.Node) ([]Doc, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, invalid(n, "expected a sequence")
	}
	docs := make([]Doc, len(n.Content))
	for i, c := range n.Content {
		d, err := dec.decodeNode(c)
		if err != nil {
			return nil, err
		}
		docs[i] = d
	}
	return docs, nil
}

func (dec *decodeState) decodeMapping(n *yaml.Node) (Doc, error) {
	if len(n.Content) != 2 {
		return nil, invalid(n, "expected a mapping with a single key")
	}
	key, val := n.Content[0].Value, n.Content[1]
	switch key {
	case "cat":
		docs, err := dec.decodeSeq(val)
		if err != nil {
			return nil, err
		}
		return Cat(docs...), nil
	case "alt":
		docs, err := dec.decodeSeq(val)
		if err != nil {
			return nil, err
		}
		return Alt(docs...), nil
	case "join":
		var fields struct {
			Sep  yaml.Node `yaml:"sep"`
			Docs yaml.Node `yaml:"docs"`
		}
		if err := val.Decode(&fields); err != nil {
			return nil, invalid(val, "%v", err)
		}
		sep, err := dec.decodeNode(&fields.Sep)
		if err != nil {
			return nil, err
		}
		docs, err := dec.decodeSeq(&fields.Docs)
		if err != nil {
			return nil, err
		}
		return Join(sep, docs...), nil
	case "nest":
		var fields struct {
			Indent *int      `yaml:"indent"`
			Doc    yaml.Node `yaml:"doc"`
		}
		if err := val.Decode(&fields); err != nil {
			return nil, invalid(val, "%v", err)
		}
		indent := dec.IndentSize
		if fields.Indent != nil {
			indent = *fields.Indent
		}
		d, err := dec.decodeNode(&fields.Doc)
		if err != nil {
			return nil, err
		}
		return Nest(indent, d), nil
	case "row":
		return dec.decodeRow(val)
	case "table":
		if val.Kind != yaml.SequenceNode {
			return nil, invalid(val, "expected a sequence of rows")
		}
		rows := make([]*RowDoc, len(val.Content))
		for i, c := range val.Content {
			if c.Kind == yaml.MappingNode && len(c.Content) == 2 && c.Content[0].Value == "row" {
				c = c.Content[1]
			}
			r, err := dec.decodeRow(c)
			if err != nil {
				return nil, err
			}
			rows[i] = r
		}
		return Table(rows...), nil
	case "words":
		return Words(val.Value), nil
	case "inline":
		d, err := dec.decodeNode(val)
		if err != nil {
			return nil, err
		}
		return Inline(d), nil
	}
	return nil, invalid(n, "unknown document %q", key)
}

func (dec *decodeState) decodeRow(n *yaml.Node) (*RowDoc, error) {
	if n.Kind == yaml.SequenceNode {
		cells, err := dec.decodeSeq(n)
		if err != nil {
			return nil, err
		}
		return rowAt(n, DefaultRowConfig, cells, nil)
	}
	var fields struct {
		Cells     yaml.Node `yaml:"cells"`
		Pad       *string   `yaml:"pad"`
		Sep       *string   `yaml:"sep"`
		Align     string    `yaml:"align"`
		MinWidths []int     `yaml:"min_widths"`
	}
	if err := n.Decode(&fields); err != nil {
		return nil, invalid(n, "%v", err)
	}
	cfg := DefaultRowConfig
	var err error
	if fields.Pad != nil {
		if cfg.Pad, err = decodeRune(n, "pad", *fields.Pad); err != nil {
			return nil, err
		}
	}
	if fields.Sep != nil {
		if cfg.Sep, err = decodeRune(n, "sep", *fields.Sep); err != nil {
			return nil, err
		}
	}
	if fields.Align != "" {
		if cfg.Align, err = parseAlignment(fields.Align); err != nil {
			return nil, invalid(n, "%v", err)
		}
	}
	cells, err := dec.decodeSeq(&fields.Cells)
	if err != nil {
		return nil, err
	}
	return rowAt(n, cfg, cells, fields.MinWidths)
}

func rowAt(n *yaml.Node, cfg RowConfig, cells []Doc, minWidths []int) (*RowDoc, error) {
	r, err := NewRow(cfg, cells...)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}
	if len(minWidths) > 0 {
		r = r.WithMinWidths(minWidths...)
	}
	return r, nil
}

func decodeRune(n *yaml.Node, field, s string) (rune, error) {
	if s == "" {
		return 0, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, invalid(n, "%s must be a single character, got %q", field, s)
	}
	return r, nil
}

func parseAlignment(s string) (Alignment, error) {
	for _, a := range []Alignment{AlignLeft, AlignCenter, AlignRight} {
		if a.String() == s {
			return a, nil
		}
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q", s)
}

func invalid(n *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrInvalidDocument, n.Line, fmt.Sprintf(format, args...))
}

// EncodeYAML writes the description of d to w in the form read by
// [DecodeYAML]. It is meant for debugging layouts and for tests.
func EncodeYAML(w io.Writer, d Doc) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(encodeNode(d)); err != nil {
		return err
	}
	return enc.Close()
}

// MarshalYAML returns the description of d. See [EncodeYAML].
func MarshalYAML(d Doc) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeYAML(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeNode(d Doc) *yaml.Node {
	switch d := d.(type) {
	case nil:
		return tagged(tagEmpty)
	case Text:
		switch d.text {
		case "":
			return tagged(tagEmpty)
		case " ":
			return tagged(tagSpace)
		}
		return scalar(d.text)
	case line:
		return tagged(tagLine)
	case *NestDoc:
		return single("nest", mapping(
			"indent", scalarInt(d.Indent),
			"doc", encodeNode(d.Doc),
		))
	case *CatDoc:
		return single("cat", encodeSeq(d.Docs))
	case *AltDoc:
		if len(d.Docs) == 0 {
			return tagged(tagFail)
		}
		return single("alt", encodeSeq(d.Docs))
	case *RowDoc:
		return single("row", encodeRow(d))
	case *TableDoc:
		rows := &yaml.Node{Kind: yaml.SequenceNode}
		for _, r := range d.Rows {
			rows.Content = append(rows.Content, single("row", encodeRow(r)))
		}
		return single("table", rows)
	}
	return tagged(tagFail)
}

func encodeRow(r *RowDoc) *yaml.Node {
	m := mapping(
		"cells", encodeSeq(r.Cells),
		"pad", scalar(runeString(r.Config.Pad)),
		"sep", scalar(runeString(r.Config.Sep)),
		"align", scalar(r.Config.Align.String()),
	)
	if len(r.MinWidths) > 0 {
		ws := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, w := range r.MinWidths {
			ws.Content = append(ws.Content, scalarInt(w))
		}
		m.Content = append(m.Content, scalar("min_widths"), ws)
	}
	return m
}

func encodeSeq(docs []Doc) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode}
	for _, d := range docs {
		n.Content = append(n.Content, encodeNode(d))
	}
	return n
}

func runeString(r rune) string {
	if r == 0 {
		return ""
	}
	return string(r)
}

func tagged(tag string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag}
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func scalarInt(i int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(i)}
}

func single(key string, val *yaml.Node) *yaml.Node {
	return mapping(key, val)
}

func mapping(kvs ...any) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i < len(kvs); i += 2 {
		m.Content = append(m.Content, scalar(kvs[i].(string)), kvs[i+1].(*yaml.Node))
	}
	return m
}

// Package docprinter lays out structured text documents.
//
// A document is an immutable tree of [Doc] values built with the
// constructors in this package. Leaves are text and line breaks; composite
// documents concatenate, indent, offer alternative layouts, and arrange
// cells into aligned rows and tables. A [Renderer] resolves the
// alternatives and streams the result as [Token] values.
//
// # Building Documents
//
// The constructors normalize as they build:
//
//   - [Str], [Lines] and [Words]: text, split at line breaks or whitespace
//   - [Cat], [Join], [Then], [Spaced] and [Repeat]: concatenation, flattened
//     with empty documents dropped
//   - [Nest]: indentation, merged when nested
//   - [Alt] and [Or]: alternative layouts, flattened in order
//   - [Row], [NewRow], [Columns], [Table] and [Tabulate]: aligned cells
//   - [Inline]: the single-line layouts of a document
//
// [Empty], [Space], [Line], [SoftLine] and [Fail] are shared values, so
// they compare equal with ==.
//
//	doc := docprinter.Cat(
//		docprinter.Str("call("),
//		docprinter.Alt(
//			docprinter.Join(docprinter.Str(", "), args...),
//			docprinter.Nest(4, docprinter.Cat(docprinter.Line, docprinter.Join(docprinter.Str(","), lines...))),
//		),
//		docprinter.Str(")"),
//	)
//
// # Rendering
//
// [SimpleRenderer] commits every set of alternatives to the same position,
// the first one or, with [Longest], the last. [SmartRenderer] takes the
// first alternative whose [Hint] fits between the current column and
// MaxLineWidth, and the last one if none fits.
//
// Nested indentation applies to every line that has content; whitespace
// on lines that stay blank is dropped. Rows and tables pad each cell to
// the width of its column using the row's [RowConfig].
//
// The entry points are [Write], [Marshal] and [ToString]:
//
//	docprinter.Write(os.Stdout, docprinter.SmartRenderer{MaxLineWidth: 80}, doc)
//
// Use [WriteIter] or [WriteChan] to render a stream of documents.
//
// # YAML
//
// [DecodeYAML] and [EncodeYAML] read and write a YAML description of a
// document, used by the docfmt command and for debugging layouts.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrRender]: a document has no layout, such as [Fail]
//   - [ErrMalformedCell]: a table cell renders a line break
//   - [ErrConfigurationMismatch]: rows with different configurations are spliced
//   - [ErrUnsupportedLayout]: unknown simple layout name
//   - [ErrInvalidDocument]: a YAML description cannot be decoded
package docprinter

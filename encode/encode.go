package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/blockyaml/debug"
	"github.com/signadot/blockyaml/format"
	"github.com/signadot/blockyaml/ir"
)

// indentStep is the number of spaces added per nesting level.
const indentStep = 2

// EncState holds what stays fixed for one Encode call. Indentation and
// sequence item position are passed down the recursion instead.
type EncState struct {
	nl      format.NewLine
	newLine string

	Color func(Colorable, string) string

	trace bool
	line  strings.Builder
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{trace: debug.Encode()}
	for _, opt := range opts {
		opt(es)
	}
	es.newLine = es.nl.Terminator()
	return es
}

// Encode writes node to w as block YAML. The returned error comes from w;
// a malformed tree panics (see ErrInvalidNode and ErrEncoding).
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	return encode(node, w, es, 0, false)
}

// Serialize returns the block YAML text of node.
func Serialize(node *ir.Node, opts ...EncodeOption) []byte {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Helper functions for writing

func writeString(w io.Writer, s string, es *EncState) error {
	if es.trace {
		es.line.WriteString(s)
	}
	_, err := io.WriteString(w, s)
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	if _, err := io.WriteString(w, es.newLine); err != nil {
		return err
	}
	if es.trace {
		debug.Logf("encode: %q\n", es.line.String())
		es.line.Reset()
	}
	return nil
}

func writeIndent(w io.Writer, indent int, es *EncState) error {
	if indent <= 0 {
		return nil
	}
	return writeString(w, strings.Repeat(" ", indent), es)
}

func applyColor(es *EncState, able Colorable, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(able, v)
}

// Main encode function

func encode(node *ir.Node, w io.Writer, es *EncState, indent int, dash bool) error {
	checkNode(node)
	switch node.Type {
	case ir.ScalarType:
		return encodeScalar(node, w, es, indent, dash)
	case ir.SequenceType:
		return encodeSequence(node, w, es, indent, dash)
	case ir.MappingType:
		return encodeMapping(node, w, es, indent, dash)
	default:
		panic(fmt.Errorf("%w: node type %s", ErrInvalidNode, node.Type))
	}
}

func checkNode(node *ir.Node) {
	if node == nil {
		panic(fmt.Errorf("%w: nil node", ErrInvalidNode))
	}
}

func encodeScalar(node *ir.Node, w io.Writer, es *EncState, indent int, dash bool) error {
	if err := writeIndent(w, indent, es); err != nil {
		return err
	}
	if dash {
		if err := writeArrayElementMarker(w, es); err != nil {
			return err
		}
	}
	if err := writeScalar(node, w, es); err != nil {
		return err
	}
	return writeNL(w, es)
}

// writeCollectionDash writes the line holding only "-" that introduces a
// sequence or mapping nested as a sequence item.
func writeCollectionDash(t ir.Type, w io.Writer, es *EncState, indent int) error {
	if err := writeIndent(w, indent, es); err != nil {
		return err
	}
	sep := applyColor(es, Colorable{Type: t, Attr: SepColor}, "-")
	if err := writeString(w, sep, es); err != nil {
		return err
	}
	return writeNL(w, es)
}

// Sequence encoding

func encodeSequence(node *ir.Node, w io.Writer, es *EncState, indent int, dash bool) error {
	if len(node.Values) == 0 {
		return nil
	}
	if dash {
		if err := writeCollectionDash(ir.SequenceType, w, es, indent); err != nil {
			return err
		}
		indent += indentStep
	}
	for _, v := range node.Values {
		if err := encode(v, w, es, indent, true); err != nil {
			return err
		}
	}
	return nil
}

func writeArrayElementMarker(w io.Writer, es *EncState) error {
	sep := applyColor(es, Colorable{Type: ir.SequenceType, Attr: SepColor}, "-")
	return writeString(w, sep+" ", es)
}

// Mapping encoding

func encodeMapping(node *ir.Node, w io.Writer, es *EncState, indent int, dash bool) error {
	if len(node.Fields) == 0 {
		return nil
	}
	if dash {
		if err := writeCollectionDash(ir.MappingType, w, es, indent); err != nil {
			return err
		}
		indent += indentStep
	}
	for i, field := range node.Fields {
		if err := encodeMappingEntry(field, node.Values[i], w, es, indent); err != nil {
			return err
		}
	}
	return nil
}

func encodeMappingEntry(field string, val *ir.Node, w io.Writer, es *EncState, indent int) error {
	if err := writeIndent(w, indent, es); err != nil {
		return err
	}
	if err := writeField(w, field, es); err != nil {
		return err
	}
	checkNode(val)
	switch val.Type {
	case ir.ScalarType:
		if err := writeScalar(val, w, es); err != nil {
			return err
		}
		return writeNL(w, es)
	case ir.SequenceType, ir.MappingType:
		if err := writeNL(w, es); err != nil {
			return err
		}
		return encode(val, w, es, indent+indentStep, false)
	default:
		panic(fmt.Errorf("%w: node type %s under key %q", ErrInvalidNode, val.Type, field))
	}
}

// writeField writes the key verbatim followed by ": ".
func writeField(w io.Writer, f string, es *EncState) error {
	if !utf8.ValidString(f) {
		panic(fmt.Errorf("%w: key %q is not valid UTF-8", ErrEncoding, f))
	}
	sep := ":"
	if es.Color != nil {
		if f != "" {
			f = applyColor(es, Colorable{Type: ir.MappingType, Attr: KeyColor}, f)
		}
		sep = applyColor(es, Colorable{Type: ir.MappingType, Attr: SepColor}, sep)
	}
	return writeString(w, f+sep+" ", es)
}

// Scalar encoding

func writeScalar(node *ir.Node, w io.Writer, es *EncState) error {
	v := scalarLiteral(node)
	if v == "" {
		return nil
	}
	v = applyColor(es, Colorable{Type: ir.ScalarType, Kind: node.Kind, Attr: ValueColor}, v)
	return writeString(w, v, es)
}

func scalarLiteral(node *ir.Node) string {
	switch node.Kind {
	case ir.NullKind:
		return "null"
	case ir.BoolKind:
		return strconv.FormatBool(node.Bool)
	case ir.IntKind:
		return strconv.FormatInt(node.Int64, 10)
	case ir.FloatKind:
		return formatFloat(node.Float64)
	case ir.StringKind:
		return quoteString(node.String)
	default:
		panic(fmt.Errorf("%w: scalar kind %s", ErrInvalidNode, node.Kind))
	}
}

// quoteString wraps v in double quotes without escaping anything. The empty
// string has no literal at all.
func quoteString(v string) string {
	if v == "" {
		return ""
	}
	if !utf8.ValidString(v) {
		panic(fmt.Errorf("%w: string %q is not valid UTF-8", ErrEncoding, v))
	}
	return `"` + v + `"`
}

// Number encoding

// formatFloat returns the shortest text that parses back to f. Decimal
// exponents below -4 or from 15 up use the E notation, as in 1E+15.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	e := strconv.FormatFloat(f, 'E', -1, 64)
	i := strings.IndexByte(e, 'E')
	exp, err := strconv.Atoi(e[i+1:])
	if err != nil {
		panic(fmt.Errorf("%w: float %s", ErrEncoding, e))
	}
	if exp < -4 || exp >= 15 {
		return e
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

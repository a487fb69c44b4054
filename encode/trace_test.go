package encode

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/blockyaml/debug"
	"github.com/signadot/blockyaml/format"
	"github.com/signadot/blockyaml/ir"
)

func TestEncodeTrace(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	prevOut := debug.SetOutput(buf)
	defer debug.SetOutput(prevOut)
	prevOn := debug.SetEncode(true)
	defer debug.SetEncode(prevOn)

	node := ir.NewMapping().
		Set("a", ir.FromInt(1)).
		Set("b", ir.NewSequence(ir.FromString("x"), ir.NewSequence(ir.Null())))
	got := MustString(node, EncodeNewLine(format.CRLF))

	wantOut := "a: 1\r\nb: \r\n  - \"x\"\r\n  -\r\n    - null\r\n"
	if diff := cmp.Diff(wantOut, got); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
	wantTrace := `encode: "a: 1"
encode: "b: "
encode: "  - \"x\""
encode: "  -"
encode: "    - null"
`
	if diff := cmp.Diff(wantTrace, buf.String()); diff != "" {
		t.Errorf("trace (-want +got):\n%s", diff)
	}
}

func TestEncodeTraceOff(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	prevOut := debug.SetOutput(buf)
	defer debug.SetOutput(prevOut)
	prevOn := debug.SetEncode(false)
	defer debug.SetEncode(prevOn)

	MustString(ir.NewSequence(ir.FromInt(1)))
	if buf.Len() != 0 {
		t.Errorf("unexpected trace %q", buf.String())
	}
}

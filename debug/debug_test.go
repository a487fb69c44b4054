package debug

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	prev := SetOutput(buf)
	defer SetOutput(prev)

	Logf("n=%d %v\n", 3, []any{1})
	want := "n=3 [\n   |  1\n   |]\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestSetEncode(t *testing.T) {
	prev := SetEncode(true)
	defer SetEncode(prev)
	if !Encode() {
		t.Error("encode switch not on")
	}
	if !SetEncode(false) {
		t.Error("SetEncode did not return previous value")
	}
	if Encode() {
		t.Error("encode switch not off")
	}
}

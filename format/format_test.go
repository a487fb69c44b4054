package format

import (
	"errors"
	"testing"
)

func TestParseNewLine(t *testing.T) {
	tests := []struct {
		in   string
		want NewLine
	}{
		{"native", Native},
		{"n", Native},
		{"lf", LF},
		{"unix", LF},
		{"crlf", CRLF},
		{"windows", CRLF},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNewLine(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
	if _, err := ParseNewLine("cr"); !errors.Is(err, ErrBadNewLine) {
		t.Errorf("expected ErrBadNewLine, got %v", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, nl := range AllNewLines() {
		d, err := nl.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got NewLine
		if err := got.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if got != nl {
			t.Errorf("%s round tripped to %s", nl, got)
		}
	}
}

func TestTerminator(t *testing.T) {
	if LF.Terminator() != "\n" {
		t.Errorf("lf %q", LF.Terminator())
	}
	if CRLF.Terminator() != "\r\n" {
		t.Errorf("crlf %q", CRLF.Terminator())
	}
	if got := Native.terminatorFor("windows"); got != "\r\n" {
		t.Errorf("native on windows %q", got)
	}
	if got := Native.terminatorFor("linux"); got != "\n" {
		t.Errorf("native on linux %q", got)
	}
}

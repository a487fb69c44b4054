package format

import (
	"errors"
	"fmt"
	"runtime"
)

type NewLine int

const (
	Native NewLine = iota
	LF
	CRLF
)

var ErrBadNewLine = errors.New("bad newline")

func ParseNewLine(v string) (NewLine, error) {
	nl, ok := map[string]NewLine{
		"n":       Native,
		"native":  Native,
		"lf":      LF,
		"unix":    LF,
		"crlf":    CRLF,
		"windows": CRLF,
	}[v]
	if ok {
		return nl, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadNewLine, v)
}

func (nl NewLine) String() string {
	d, err := nl.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (nl NewLine) MarshalText() ([]byte, error) {
	switch nl {
	case Native:
		return []byte("native"), nil
	case LF:
		return []byte("lf"), nil
	case CRLF:
		return []byte("crlf"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a newline>", nl)
	}
}

func (nl *NewLine) UnmarshalText(d []byte) error {
	pnl, err := ParseNewLine(string(d))
	if err != nil {
		return err
	}
	*nl = pnl
	return nil
}

// Terminator returns the byte sequence ending each line.
func (nl NewLine) Terminator() string {
	return nl.terminatorFor(runtime.GOOS)
}

func (nl NewLine) terminatorFor(goos string) string {
	switch nl {
	case LF:
		return "\n"
	case CRLF:
		return "\r\n"
	default:
		if goos == "windows" {
			return "\r\n"
		}
		return "\n"
	}
}

// AllNewLines returns all supported line terminator settings.
func AllNewLines() []NewLine {
	return []NewLine{Native, LF, CRLF}
}

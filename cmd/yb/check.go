package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/blockyaml/decode"
	"github.com/signadot/blockyaml/encode"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var ErrMismatch = errors.New("rendered output differs from expected")

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: check requires an input and an expected file", cli.ErrUsage)
	}
	in, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	expected, err := os.ReadFile(args[1])
	if err != nil {
		return err
	}
	node, err := decode.Decode(in)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	opts := []encode.EncodeOption{}
	if cfg.NL != nil {
		opts = append(opts, encode.EncodeNewLine(*cfg.NL))
	}
	got := encode.Serialize(node, opts...)
	if bytes.Equal(got, expected) {
		return nil
	}
	if !cfg.Quiet {
		if err := writeLineDiff(cc.Out, string(expected), string(got)); err != nil {
			return err
		}
	}
	return fmt.Errorf("%w: %s", ErrMismatch, args[1])
}

// writeLineDiff writes from and to line by line, prefixing lines only in
// from with "-", lines only in to with "+" and common lines with " ".
func writeLineDiff(w io.Writer, from, to string) error {
	lineMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapLinesTo(lineMap, runeMap, from)
	toRunes := mapLinesTo(lineMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	for i := range diffs {
		diff := &diffs[i]
		prefix := " "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		}
		for _, r := range diff.Text {
			if _, err := fmt.Fprintf(w, "%s%q\n", prefix, runeMap[r]); err != nil {
				return err
			}
		}
	}
	return nil
}

// mapLinesTo assigns one rune per distinct line, keeping line terminators
// so that a change of terminator shows up as a changed line.
func mapLinesTo(m map[string]rune, im map[rune]string, text string) []rune {
	lines := strings.SplitAfter(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	rs := make([]rune, len(lines))
	for i, line := range lines {
		r, ok := m[line]
		if !ok {
			r = rune(len(m))
			m[line] = r
			im[r] = line
		}
		rs[i] = r
	}
	return rs
}

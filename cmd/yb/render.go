package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/blockyaml/decode"
	"github.com/signadot/blockyaml/encode"

	"github.com/scott-cotton/cli"
)

func render(cfg *RenderConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		return err
	}
	switch len(args) {
	case 0:
		return renderReader(cfg.MainConfig, cc.Out, cc.In)
	case 1:
		return renderFile(cfg.MainConfig, cc.Out, args[0], cc.In)
	default:
		return fmt.Errorf("%w: render takes at most one file", cli.ErrUsage)
	}
}

func renderFile(cfg *MainConfig, w io.Writer, file string, stdin io.Reader) error {
	if file == "-" {
		return renderReader(cfg, w, stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	if err := renderReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func renderReader(cfg *MainConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	node, err := decode.Decode(in)
	if err != nil {
		return err
	}
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

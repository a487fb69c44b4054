package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "nl",
			Description: "line terminator: native/n, lf/unix, crlf/windows",
			Type:        cli.NamedFuncOpt(cfg.nlFunc(), "(newline)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "yb").
		WithSynopsis("yb [opts] command [opts]").
		WithDescription("yb writes JSON documents as block style YAML.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ybMain(cfg, cc, args)
		}).
		WithSubs(
			RenderCommand(cfg),
			CheckCommand(cfg))
}

func RenderCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenderConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Render, "render").
		WithAliases("r").
		WithSynopsis("render [file]").
		WithDescription("render a JSON document as block YAML").
		WithRun(func(cc *cli.Context, args []string) error {
			return render(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [opts] <input.json> <expected.yaml>").
		WithDescription("render a JSON document and compare it with expected block YAML").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Sep: ".", Esc: `\`, Deep: -1}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "md").
		WithSynopsis("md [opts] command [opts]").
		WithDescription("md is a tool for working with path-addressed nested documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mdMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			DelCommand(cfg),
			KeysCommand(cfg),
			FlattenCommand(cfg),
			InflateCommand(cfg),
			FilterCommand(cfg),
			MergeCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("get the value at a path in documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set <path> <value> [files]").
		WithDescription("set a value at a path and print the updated documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func DelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DelConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Del, "del").
		WithAliases("d", "rm").
		WithSynopsis("del <path> [files]").
		WithDescription("delete the value at a path and print the updated documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Keys, "keys").
		WithAliases("k").
		WithSynopsis("keys [<path>] [files]").
		WithDescription("list the direct keys at a path, escaped for reuse as paths").
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
}

func FlattenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FlattenConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Flatten, "flatten").
		WithAliases("f", "deflate").
		WithSynopsis("flatten [files]").
		WithDescription("flatten documents into path: value entries").
		WithRun(func(cc *cli.Context, args []string) error {
			return flatten(cfg, cc, args)
		})
}

func InflateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InflateConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Inflate, "inflate").
		WithAliases("i", "classify").
		WithSynopsis("inflate [files]").
		WithDescription("rebuild nested documents from flat path: value entries").
		WithRun(func(cc *cli.Context, args []string) error {
			return inflate(cfg, cc, args)
		})
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithSynopsis("filter -where <expr> [files]").
		WithDescription("keep flattened entries where an expression over {path, value} holds").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Merge, "merge").
		WithAliases("m").
		WithSynopsis("merge <base> <overlay>").
		WithDescription("merge two documents with JSON merge-patch semantics").
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
}

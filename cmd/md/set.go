package main

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/mdict-format/go-mdict/tree"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	tk, err := cfg.tokenizer()
	if err != nil {
		return err
	}
	path := args[0]
	var v any
	if err := yaml.Unmarshal([]byte(args[1]), &v); err != nil {
		return fmt.Errorf("error decoding value %q: %w", args[1], err)
	}
	return forEachDoc(args[2:], func(arg string, root *tree.Node) error {
		if err := tree.SetPath(root, path, tree.FromGo(v), tk); err != nil {
			return fmt.Errorf("error setting %s in %s: %w", path, arg, err)
		}
		return writeYAML(cc.Out, tree.ToGo(root))
	})
}

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: del requires a path argument", cli.ErrUsage)
	}
	tk, err := cfg.tokenizer()
	if err != nil {
		return err
	}
	path := args[0]
	return forEachDoc(args[1:], func(arg string, root *tree.Node) error {
		if err := tree.DeletePath(root, path, tk); err != nil {
			return fmt.Errorf("error deleting %s from %s: %w", path, arg, err)
		}
		return writeYAML(cc.Out, tree.ToGo(root))
	})
}

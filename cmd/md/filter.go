package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/mdict-format/go-mdict/classify"
	"github.com/mdict-format/go-mdict/tree"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Where == "" {
		return fmt.Errorf("%w: filter requires -where", cli.ErrUsage)
	}
	tk, err := cfg.tokenizer()
	if err != nil {
		return err
	}
	prog, err := expr.Compile(cfg.Where, expr.AsBool())
	if err != nil {
		return fmt.Errorf("%w: bad -where expression: %v", cli.ErrUsage, err)
	}
	return forEachDoc(args, func(arg string, root *tree.Node) error {
		ms := yaml.MapSlice{}
		for e := range classify.Unclassify(root, tk.JoinOne, -1) {
			out, err := expr.Run(prog, map[string]any{
				"path":  e.Path,
				"value": goValue(e.Value),
			})
			if err != nil {
				return fmt.Errorf("error filtering %s at %s: %w", arg, e.Path, err)
			}
			if keep, _ := out.(bool); keep {
				ms = append(ms, yaml.MapItem{Key: e.Path, Value: goValue(e.Value)})
			}
		}
		return writeYAML(cc.Out, ms)
	})
}

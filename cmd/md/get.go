package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/mdict-format/go-mdict/tree"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path argument", cli.ErrUsage)
	}
	tk, err := cfg.tokenizer()
	if err != nil {
		return err
	}
	path := args[0]
	return forEachDoc(args[1:], func(arg string, root *tree.Node) error {
		n, err := tree.GetPath(root, path, tk)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
		return writeYAML(cc.Out, tree.ToGo(n))
	})
}

package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	mdict "github.com/mdict-format/go-mdict"
	"github.com/mdict-format/go-mdict/tree"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	tk, err := cfg.tokenizer()
	if err != nil {
		return err
	}
	path := ""
	if len(args) > 0 && !isFileArg(args[0]) {
		path = args[0]
		args = args[1:]
	}
	pr := cfg.keyPrinter(cc.Out)
	return forEachDoc(args, func(arg string, root *tree.Node) error {
		n := root
		if path != "" {
			n, err = tree.GetPath(root, path, tk)
			if err != nil {
				return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
			}
		}
		m := mdict.New(n, mdict.WithTokenizer(tk))
		for k := range m.Keys() {
			if _, err := fmt.Fprintln(cc.Out, pr(k)); err != nil {
				return err
			}
		}
		return nil
	})
}

// isFileArg disambiguates the optional path argument: anything naming
// an existing file, or stdin, is a file.
func isFileArg(arg string) bool {
	if arg == "-" {
		return true
	}
	_, err := os.Stat(arg)
	return err == nil
}

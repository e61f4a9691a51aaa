package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/mdict-format/go-mdict/classify"
	"github.com/mdict-format/go-mdict/token"
	"github.com/mdict-format/go-mdict/tree"
)

func flatten(cfg *FlattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flatten.Parse(cc, args)
	if err != nil {
		cfg.Flatten.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	tk, err := cfg.tokenizer()
	if err != nil {
		return err
	}
	return forEachDoc(args, func(arg string, root *tree.Node) error {
		return flattenDoc(cc.Out, root, tk, cfg.Deep)
	})
}

func flattenDoc(w io.Writer, root *tree.Node, tk *token.Tokenizer, deep int) error {
	ms := yaml.MapSlice{}
	for _, e := range classify.Deflate(root, tk, deep) {
		ms = append(ms, yaml.MapItem{Key: e.Path, Value: goValue(e.Value)})
	}
	return writeYAML(w, ms)
}

func inflate(cfg *InflateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Inflate.Parse(cc, args)
	if err != nil {
		cfg.Inflate.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	tk, err := cfg.tokenizer()
	if err != nil {
		return err
	}
	return forEachDoc(args, func(arg string, root *tree.Node) error {
		if err := inflateDoc(cc.Out, root, tk, cfg.Deep); err != nil {
			return fmt.Errorf("error inflating %s: %w", arg, err)
		}
		return nil
	})
}

func inflateDoc(w io.Writer, root *tree.Node, tk *token.Tokenizer, deep int) error {
	if root.Type != tree.MapType {
		return fmt.Errorf("inflate needs a flat mapping document")
	}
	entries := make([]classify.Entry, 0, root.Len())
	for i, k := range root.Keys {
		entries = append(entries, classify.Entry{Path: k, Value: root.Values[i]})
	}
	built, err := classify.Inflate(entries, tk, deep)
	if err != nil {
		return err
	}
	return writeYAML(w, tree.ToGo(built))
}

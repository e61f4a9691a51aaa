package main

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/mdict-format/go-mdict/tree"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: merge requires a base and an overlay document", cli.ErrUsage)
	}
	base, err := docJSON(args[0])
	if err != nil {
		return err
	}
	overlay, err := docJSON(args[1])
	if err != nil {
		return err
	}
	merged, err := jsonpatch.MergePatch(base, overlay)
	if err != nil {
		return fmt.Errorf("error merging %s into %s: %w", args[1], args[0], err)
	}
	var v any
	if err := json.Unmarshal(merged, &v); err != nil {
		return err
	}
	return writeYAML(cc.Out, v)
}

func docJSON(arg string) ([]byte, error) {
	root, err := readDoc(arg)
	if err != nil {
		return nil, err
	}
	d, err := json.Marshal(tree.ToGo(root))
	if err != nil {
		return nil, fmt.Errorf("error encoding %s: %w", arg, err)
	}
	return d, nil
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/mdict-format/go-mdict/tree"
)

// readDoc parses one YAML/JSON document into a tree. "-" reads stdin.
func readDoc(arg string) (*tree.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return tree.FromGo(v), nil
}

// forEachDoc runs f over every file argument, defaulting to stdin when
// none are given.
func forEachDoc(args []string, f func(arg string, root *tree.Node) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		root, err := readDoc(arg)
		if err != nil {
			return err
		}
		if err := f(arg, root); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	d, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = w.Write(d)
	return err
}

// goValue unwraps entry values for printing: nodes render as their Go
// form, anything else as itself.
func goValue(v any) any {
	if n, ok := v.(*tree.Node); ok {
		return tree.ToGo(n)
	}
	return v
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/mdict-format/go-mdict/token"
)

type MainConfig struct {
	Sep   string `cli:"name=sep desc='path separator character'"`
	Esc   string `cli:"name=esc desc='path escape character'"`
	Deep  int    `cli:"name=deep desc='depth budget for flatten/inflate, -1 unbounded'"`
	Color bool   `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// loadConfig layers the optional config file then MD_* environment
// over the built-in defaults. Flags are parsed afterwards and win.
func (cfg *MainConfig) loadConfig() error {
	k := koanf.New(".")
	if path := configPath(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return fmt.Errorf("error loading config %s: %w", path, err)
		}
	}
	err := k.Load(env.Provider("MD_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "MD_"))
	}), nil)
	if err != nil {
		return err
	}
	if k.Exists("sep") {
		cfg.Sep = k.String("sep")
	}
	if k.Exists("esc") {
		cfg.Esc = k.String("esc")
	}
	if k.Exists("deep") {
		cfg.Deep = k.Int("deep")
	}
	if k.Exists("color") {
		cfg.Color = k.Bool("color")
	}
	return nil
}

func configPath() string {
	if p := os.Getenv("MD_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat("md.yaml"); err == nil {
		return "md.yaml"
	}
	return ""
}

func (cfg *MainConfig) tokenizer() (*token.Tokenizer, error) {
	if len(cfg.Sep) != 1 || len(cfg.Esc) != 1 {
		return nil, fmt.Errorf("%w: -sep and -esc must each be a single byte", cli.ErrUsage)
	}
	if cfg.Sep == cfg.Esc {
		return nil, fmt.Errorf("%w: -sep and -esc must differ", cli.ErrUsage)
	}
	return token.New(cfg.Sep[0], cfg.Esc[0]), nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// colored reports whether output to w should be colored: forced by
// -color, otherwise only on a terminal.
func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) keyPrinter(w io.Writer) func(string) string {
	if cfg.colored(w) {
		c := color.New(color.FgCyan)
		return func(s string) string { return c.Sprint(s) }
	}
	return func(s string) string { return s }
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Set *cli.Command
}

type DelConfig struct {
	*MainConfig

	Del *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type FlattenConfig struct {
	*MainConfig

	Flatten *cli.Command
}

type InflateConfig struct {
	*MainConfig

	Inflate *cli.Command
}

type FilterConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='expression over {path, value} keeping matching entries'"`

	Filter *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Merge *cli.Command
}

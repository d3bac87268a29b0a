package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/yamlfmt/encode"
	"github.com/signadot/yamlfmt/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color        bool   `cli:"name=color desc='encode with color'"`
	Src          string `cli:"name=src desc='event source (yamlv3 or goyaml)'"`
	MaxDepth     int    `cli:"name=max-depth desc='maximum nesting depth'"`
	ScopeAnchors bool   `cli:"name=scope-anchors desc='forget anchors at each document start'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) validate() error {
	if cfg.Src != "" {
		if err := parse.Source(cfg.Src).Valid(); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	if cfg.MaxDepth < 0 {
		return fmt.Errorf("%w: negative -max-depth %d", cli.ErrUsage, cfg.MaxDepth)
	}
	return nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{
		parse.MaxDepth(cfg.MaxDepth),
		parse.ScopeAnchors(cfg.ScopeAnchors),
	}
	if cfg.Src != "" {
		res = append(res, parse.WithSource(parse.Source(cfg.Src)))
	}
	return res
}

// colors reports whether output to w is colored: as given by -color, or
// when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type FmtConfig struct {
	*MainConfig
	Indent  int  `cli:"name=indent desc='spaces per nesting level'"`
	BadNull bool `cli:"name=bad-null desc='write bad values as null'"`

	Fmt *cli.Command
}

func (cfg *FmtConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := cfg.MainConfig.encOpts(w)
	if cfg.Indent != 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	return append(res, encode.BadValueAsNull(cfg.BadNull))
}

type DumpConfig struct {
	*MainConfig
	Dump *cli.Command
}

type EventsConfig struct {
	*MainConfig
	Events *cli.Command
}

type GetConfig struct {
	*MainConfig
	Test bool `cli:"name=test desc='exit 1 unless every result is true'"`

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig
	List *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only set the exit code'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Text    bool `cli:"name=text desc='diff serialized text instead of tree listings'"`

	Diff *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Expr string `cli:"name=x desc='expression to evaluate against doc'"`

	Eval *cli.Command
}

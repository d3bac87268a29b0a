package main

import (
	"fmt"
	"strings"

	"github.com/signadot/yamlfmt"
	"github.com/signadot/yamlfmt/encode"
	"github.com/signadot/yamlfmt/ir"
	"github.com/signadot/yamlfmt/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	texts := make([]string, 2)
	for i, in := range ins {
		docs, err := cfg.load(in)
		if err != nil {
			return err
		}
		texts[i], err = cfg.render(ir.ConvertAll(docs))
		if err != nil {
			return fmt.Errorf("error rendering %s: %w", in.name, err)
		}
	}
	if cfg.Reverse {
		texts[0], texts[1] = texts[1], texts[0]
	}
	edits := libdiff.Lines(texts[0], texts[1])
	if !libdiff.Changed(edits) {
		return nil
	}
	if _, err := fmt.Fprint(cc.Out, libdiff.Format(edits, cfg.colors(cc.Out))); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func (cfg *DiffConfig) render(docs []*ir.Out) (string, error) {
	buf := &strings.Builder{}
	if cfg.Text {
		if err := encode.EncodeDocs(docs, buf); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	if err := yamlfmt.Dump(buf, docs...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package main

import (
	"fmt"

	"github.com/signadot/yamlfmt/encode"
	"github.com/signadot/yamlfmt/ir"

	"github.com/scott-cotton/cli"
)

func format(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for _, in := range ins {
		docs, err := cfg.load(in)
		if err != nil {
			return err
		}
		if err := encode.EncodeDocs(ir.ConvertAll(docs), cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", in.name, err)
		}
	}
	return nil
}

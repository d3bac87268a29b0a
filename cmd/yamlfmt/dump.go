package main

import (
	"fmt"

	"github.com/signadot/yamlfmt"
	"github.com/signadot/yamlfmt/ir"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	for _, in := range ins {
		docs, err := cfg.load(in)
		if err != nil {
			return err
		}
		if err := yamlfmt.Dump(cc.Out, ir.ConvertAll(docs)...); err != nil {
			return fmt.Errorf("error writing %s: %w", in.name, err)
		}
	}
	return nil
}

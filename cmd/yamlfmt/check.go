package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/signadot/yamlfmt"
	"github.com/signadot/yamlfmt/ir"
	"github.com/signadot/yamlfmt/libdiff"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	failed := 0
	for _, in := range ins {
		docs, err := cfg.load(in)
		if err != nil {
			return err
		}
		for i, doc := range docs {
			if err := warnUnresolved(theLog, in.name, i, doc); err != nil {
				return err
			}
			err := yamlfmt.RoundTrip(doc, cfg.parseOpts()...)
			if err == nil {
				continue
			}
			failed++
			if cfg.Quiet {
				continue
			}
			var rtErr *yamlfmt.RoundTripError
			if errors.As(err, &rtErr) {
				_, err = fmt.Fprintf(cc.Out, "# %s document %d written as\n%s# reads back with changes\n%s",
					in.name, i, rtErr.Text, libdiff.Format(rtErr.Edits, colors))
			} else {
				_, err = fmt.Fprintf(cc.Out, "# %s document %d: %v\n", in.name, i, err)
			}
			if err != nil {
				return err
			}
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// warnUnresolved logs each alias in doc whose anchor was not found.
func warnUnresolved(log *slog.Logger, file string, i int, doc *ir.Node) error {
	return doc.Visit(func(node *ir.Node, isPost bool) (bool, error) {
		if !isPost && node.Type == ir.AliasedType && node.IsUnresolved() {
			log.Warn("unresolved alias", "file", file, "document", i, "alias", node.Name)
		}
		return true, nil
	})
}

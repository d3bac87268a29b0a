package main

import (
	"fmt"

	"github.com/signadot/yamlfmt/parse"

	"github.com/scott-cotton/cli"
)

func events(cfg *EventsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Events.Parse(cc, args)
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args)
	if err != nil {
		return err
	}
	for _, in := range ins {
		evs, err := parse.Events(in.data, cfg.parseOpts()...)
		for _, ev := range evs {
			if _, werr := fmt.Fprintf(cc.Out, "%s\t%s\n", ev.Pos, ev); werr != nil {
				return werr
			}
		}
		if err != nil {
			return fmt.Errorf("error reading events of %s: %w", in.name, err)
		}
	}
	return nil
}

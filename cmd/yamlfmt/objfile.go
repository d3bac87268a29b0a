package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/yamlfmt/ir"
	"github.com/signadot/yamlfmt/parse"

	"github.com/scott-cotton/cli"
)

// input is the content of one command argument, "-" for standard input.
type input struct {
	name string
	data []byte
}

func readInputs(cc *cli.Context, args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	res := make([]input, 0, len(args))
	for _, arg := range args {
		d, err := readInput(cc, arg)
		if err != nil {
			return nil, err
		}
		res = append(res, input{name: arg, data: d})
	}
	return res, nil
}

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func (cfg *MainConfig) load(in input) ([]*ir.Node, error) {
	docs, err := parse.Load(in.data, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", in.name, err)
	}
	return docs, nil
}

// queryPath prefixes p with "$" when it is missing.
func queryPath(p string) (string, error) {
	if p == "" {
		return "", fmt.Errorf("%w: invalid query \"\"", cli.ErrUsage)
	}
	if p[0] != '$' {
		p = "$" + p
	}
	return p, nil
}

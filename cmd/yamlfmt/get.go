package main

import (
	"fmt"

	"github.com/signadot/yamlfmt/encode"
	"github.com/signadot/yamlfmt/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a document path", cli.ErrUsage)
	}
	path, err := queryPath(args[0])
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args[1:])
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	allTrue := true
	for _, in := range ins {
		docs, err := cfg.load(in)
		if err != nil {
			return err
		}
		for i, doc := range docs {
			res, err := doc.GetPath(path)
			if err != nil {
				return fmt.Errorf("error querying %s with %s: %w", in.name, path, err)
			}
			if cfg.Test {
				if !ir.Truth(res) {
					theLog.Info("false", "file", in.name, "document", i, "path", path)
					allTrue = false
				}
				continue
			}
			if err := encode.Encode(ir.Convert(res), cc.Out, opts...); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
		}
	}
	if !allTrue {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: list requires one argument, a document path", cli.ErrUsage)
	}
	path, err := queryPath(args[0])
	if err != nil {
		return err
	}
	ins, err := readInputs(cc, args[1:])
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for _, in := range ins {
		docs, err := cfg.load(in)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			res, err := doc.ListPath(nil, path)
			if err != nil {
				return fmt.Errorf("error executing list on %s: %w", in.name, err)
			}
			if err := encode.Encode(ir.Convert(ir.FromSlice(res)), cc.Out, opts...); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
		}
	}
	return nil
}

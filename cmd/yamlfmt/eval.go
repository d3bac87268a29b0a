package main

import (
	"fmt"

	"github.com/signadot/yamlfmt/encode"
	"github.com/signadot/yamlfmt/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: eval requires -x <expr>", cli.ErrUsage)
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
		for i, doc := range docs {
			v, err := evalDoc(cfg.Expr, doc, i)
			if err != nil {
				return fmt.Errorf("error evaluating %s document %d: %w", in.name, i, err)
			}
			res, err := ir.FromAny(v)
			if err != nil {
				return fmt.Errorf("result of %s document %d: %w", in.name, i, err)
			}
			if err := encode.Encode(res, cc.Out, opts...); err != nil {
				return fmt.Errorf("error encoding result: %w", err)
			}
		}
	}
	return nil
}

func evalDoc(input string, doc *ir.Node, i int) (any, error) {
	env := map[string]any{
		"doc": ir.Convert(doc).ToAny(),
	}
	compileOpts := append(exprOpts(doc, i), expr.Env(env))
	program, err := expr.Compile(input, compileOpts...)
	if err != nil {
		return nil, err
	}
	return vm.Run(program, env)
}

func exprOpts(doc *ir.Node, i int) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ir.Convert(res).ToAny(), nil
		},
			new(func(string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			nodes, err := doc.ListPath(nil, params[0].(string))
			if err != nil {
				return nil, err
			}
			res := make([]any, len(nodes))
			for j, node := range nodes {
				res[j] = ir.Convert(node).ToAny()
			}
			return res, nil
		},
			new(func(string) []any)),
		expr.Function("docindex", func(params ...any) (any, error) {
			return i, nil
		},
			new(func() int)),
	}
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/avdva/bignum/bigint"
	"github.com/avdva/bignum/rational"
)

const cmpOp = "cmp"

var intOps = map[string]func(x, y bigint.Int) (bigint.Int, error){
	"+": func(x, y bigint.Int) (bigint.Int, error) { return x.Add(y), nil },
	"-": func(x, y bigint.Int) (bigint.Int, error) { return x.Sub(y), nil },
	"*": func(x, y bigint.Int) (bigint.Int, error) { return x.Mul(y), nil },
	"/": bigint.Int.Div,
	"%": bigint.Int.Mod,
}

var ratOps = map[string]func(x, y rational.Rat) (rational.Rat, error){
	"+": func(x, y rational.Rat) (rational.Rat, error) { return x.Add(y), nil },
	"-": func(x, y rational.Rat) (rational.Rat, error) { return x.Sub(y), nil },
	"*": func(x, y rational.Rat) (rational.Rat, error) { return x.Mul(y), nil },
	"/": rational.Rat.Div,
}

type intResult struct {
	Result bigint.Int `json:"result"`
}

type ratResult struct {
	Result  rational.Rat `json:"result"`
	Decimal string       `json:"decimal"`
}

type cmpResult struct {
	Result int `json:"result"`
}

func newIntCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "int <a> <op> <b>",
		Short: "Evaluate a binary operation over two integers",
		Long: `Evaluate a binary operation over two integers of any size.
Supported operations are + - * / % and cmp. Division truncates toward zero,
the remainder has the sign of the dividend.`,
		Example: "  bigcalc int 123456789012345678901234567890 '*' 987654321\n  bigcalc int -- -7 % 2",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := evalInt(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), res)
		},
	}
}

func evalInt(as, op, bs string) (interface{}, error) {
	x, err := bigint.FromString(as)
	if err != nil {
		return nil, fmt.Errorf("bad first operand: %w", err)
	}
	y, err := bigint.FromString(bs)
	if err != nil {
		return nil, fmt.Errorf("bad second operand: %w", err)
	}
	if op == cmpOp {
		return cmpResult{Result: x.Cmp(y)}, nil
	}
	fn, found := intOps[op]
	if !found {
		return nil, fmt.Errorf("unsupported operation %q", op)
	}
	res, err := fn(x, y)
	if err != nil {
		return nil, err
	}
	return intResult{Result: res}, nil
}

func newRatCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rat <a> <op> <b>",
		Short: "Evaluate a binary operation over two fractions",
		Long: `Evaluate a binary operation over two exact fractions.
Operands are integers, fractions like 3/4 or decimals like -12.375.
Supported operations are + - * / and cmp.`,
		Example: "  bigcalc rat 1/3 + 0.5\n  bigcalc --prec 20 rat 22/7 - 3",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := evalRat(args[0], args[1], args[2], opts.prec)
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), res)
		},
	}
}

func evalRat(as, op, bs string, prec int) (interface{}, error) {
	x, err := rational.FromString(as)
	if err != nil {
		return nil, fmt.Errorf("bad first operand: %w", err)
	}
	y, err := rational.FromString(bs)
	if err != nil {
		return nil, fmt.Errorf("bad second operand: %w", err)
	}
	if op == cmpOp {
		return cmpResult{Result: x.Cmp(y)}, nil
	}
	fn, found := ratOps[op]
	if !found {
		return nil, fmt.Errorf("unsupported operation %q", op)
	}
	res, err := fn(x, y)
	if err != nil {
		return nil, err
	}
	return ratResult{Result: res, Decimal: res.AsDecimal(prec)}, nil
}

// print writes a result either as JSON or as plain text.
func (opts *options) print(w io.Writer, res interface{}) error {
	if opts.json {
		return json.NewEncoder(w).Encode(res)
	}
	var err error
	switch r := res.(type) {
	case intResult:
		_, err = fmt.Fprintln(w, r.Result)
	case ratResult:
		_, err = fmt.Fprintf(w, "%v (%s)\n", r.Result, r.Decimal)
	case cmpResult:
		_, err = fmt.Fprintln(w, r.Result)
	default:
		panic(fmt.Sprintf("unexpected result type %T", res))
	}
	return err
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/avdva/bignum/bigint"
)

type sumResult struct {
	Result bigint.Int `json:"result"`
	Count  int        `json:"count"`
}

func newSumCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "sum",
		Short:   "Sum whitespace-separated integers read from stdin",
		Example: "  seq 1 100 | bigcalc sum",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := sumInts(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if opts.json {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(res)
			}
			return writeTotal(cmd.OutOrStdout(), res.Result)
		},
	}
}

func sumInts(r io.Reader) (sumResult, error) {
	var res sumResult
	in := bufio.NewReader(r)
	for {
		var x bigint.Int
		if _, err := fmt.Fscan(in, &x); err != nil {
			// fmt reports the end of the stream as io.ErrUnexpectedEOF for custom scanners.
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return res, nil
			}
			return sumResult{}, fmt.Errorf("token #%d: %w", res.Count+1, err)
		}
		res.Result = res.Result.Add(x)
		res.Count++
	}
}

// writeTotal writes x followed by a newline through a buffered writer.
func writeTotal(w io.Writer, x bigint.Int) error {
	bw := bufio.NewWriter(w)
	if _, err := x.WriteTo(bw); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	return bw.Flush()
}

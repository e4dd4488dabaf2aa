// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Version can be overridden at build time via -ldflags.
var Version = "0.1.0"

var versionColor = color.New(color.FgGreen, color.Bold)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show bigcalc version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "bigcalc %s\n", versionColor.Sprint(Version))
			return err
		},
	}
}

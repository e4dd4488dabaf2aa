// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command bigcalc is a small calculator over arbitrary-precision integers and exact rationals.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avdva/bignum/bigint"
)

const defaultPrecision = 6

// options are shared by all commands. Flags override the values from the config file.
type options struct {
	configPath  string
	prec        int
	json        bool
	jsonNumbers bool
	color       string
}

var errColor = color.New(color.FgRed, color.Bold)

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "bigcalc",
		Short:         "Arbitrary-precision integer and rational calculator",
		Long:          `bigcalc evaluates expressions over integers of any size and exact fractions.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a TOML config file")
	flags.IntVar(&opts.prec, "prec", defaultPrecision, "digits after the point for rational results")
	flags.BoolVar(&opts.json, "json", false, "print results as JSON")
	flags.BoolVar(&opts.jsonNumbers, "json-numbers", false, "encode integers as JSON numbers instead of strings")
	flags.StringVar(&opts.color, "color", "auto", "colorize output (auto|on|off)")

	rootCmd.AddCommand(newIntCmd(opts))
	rootCmd.AddCommand(newRatCmd(opts))
	rootCmd.AddCommand(newSumCmd(opts))
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// setup merges the config file into opts and applies global settings.
func (opts *options) setup(cmd *cobra.Command) error {
	if opts.configPath != "" {
		cfg, err := loadConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg.apply(opts, cmd.Flags())
	}
	if _, err := precision(opts.prec); err != nil {
		return err
	}
	switch opts.color {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stderr)
	default:
		return errBadColorMode
	}
	if opts.jsonNumbers {
		bigint.JSONMode = bigint.JSONModeNumber
	} else {
		bigint.JSONMode = bigint.JSONModeString
	}
	return nil
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln(errColor.Sprint("error:"), err)
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

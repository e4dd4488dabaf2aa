// Copyright 2020 Aleksandr Demakin. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

var errBadColorMode = errors.New("unsupported color mode (must be auto, on or off)")

// config is the content of a config file, like
//	precision = 10
//	json = true
//	json_numbers = false
//	color = "off"
type config struct {
	Precision   int64  `toml:"precision"`
	JSON        bool   `toml:"json"`
	JSONNumbers bool   `toml:"json_numbers"`
	Color       string `toml:"color"`

	meta toml.MetaData
}

func loadConfig(path string) (config, error) {
	var cfg config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if meta.IsDefined("precision") {
		if _, err := safecast.Conv[uint16](cfg.Precision); err != nil {
			return config{}, fmt.Errorf("%s: bad precision %d: %w", path, cfg.Precision, err)
		}
	}
	cfg.meta = meta
	return cfg, nil
}

// apply copies the values defined in the file to opts, unless they were set with flags.
func (cfg config) apply(opts *options, flags *pflag.FlagSet) {
	if cfg.meta.IsDefined("precision") && !flags.Changed("prec") {
		opts.prec = int(cfg.Precision)
	}
	if cfg.meta.IsDefined("json") && !flags.Changed("json") {
		opts.json = cfg.JSON
	}
	if cfg.meta.IsDefined("json_numbers") && !flags.Changed("json-numbers") {
		opts.jsonNumbers = cfg.JSONNumbers
	}
	if cfg.meta.IsDefined("color") && !flags.Changed("color") {
		opts.color = cfg.Color
	}
}

// precision validates the number of digits after the point.
func precision(prec int) (int, error) {
	p, err := safecast.Conv[uint16](prec)
	if err != nil {
		return 0, fmt.Errorf("bad precision %d: %w", prec, err)
	}
	return int(p), nil
}

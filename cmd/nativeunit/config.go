// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// DefaultConfig is the config file read if no other is given.  It is
// not an error if it doesn't exist.
var DefaultConfig = ".nativeunit.yaml"

// DefaultFormat of a written report.
var DefaultFormat = FormatText

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrFormat is returned for an unknown report format.
var ErrFormat = errors.New("nativeunit: unknown format")

// config holds the settings of a nativeunit command.
type config struct {
	Plugins  []string `yaml:"plugins"`
	Format   string   `yaml:"format"`
	Database string   `yaml:"database"`
	Verbose  bool     `yaml:"verbose"`
	TUI      bool     `yaml:"tui"`
	List     bool     `yaml:"-"`
}

// loadConfig reads the yaml config at given path.  A missing file is
// only an error if it was explicitly requested.
func loadConfig(path string, explicit bool) (*config, error) {
	cfg := &config{Format: DefaultFormat}
	bb, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("nativeunit: config: %w", err)
	}
	if err := yaml.Unmarshal(bb, cfg); err != nil {
		return nil, fmt.Errorf("nativeunit: config: %s: %w", path, err)
	}
	return cfg, nil
}

// merge overwrites the config's settings with the explicitly set flags
// of given command and appends given plugin arguments.
func (cfg *config) merge(cmd *cobra.Command, flags *config, args []string) error {
	ff := cmd.Flags()
	if ff.Changed("format") {
		cfg.Format = flags.Format
	}
	if ff.Changed("database") {
		cfg.Database = flags.Database
	}
	if ff.Changed("verbose") {
		cfg.Verbose = flags.Verbose
	}
	if ff.Changed("tui") {
		cfg.TUI = flags.TUI
	}
	cfg.List = flags.List
	cfg.Plugins = append(cfg.Plugins, args...)
	if cfg.Format == "" {
		cfg.Format = DefaultFormat
	}
	switch cfg.Format {
	case FormatText, FormatJSON:
		return nil
	}
	return fmt.Errorf("%w: %s", ErrFormat, cfg.Format)
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/slukits/lines"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/slukits/nativeunit"
	"github.com/slukits/nativeunit/cmd/nativeunit/controller"
	"github.com/slukits/nativeunit/pkg/report"
	"github.com/slukits/nativeunit/pkg/store"
)

// ErrTestsFailed is returned by a run with at least one failed test.
var ErrTestsFailed = errors.New("nativeunit: tests failed")

// env provides the dependencies of a nativeunit command.
type env struct {
	registry *nativeunit.Registry
	open     openPlugin
	lines    func(lines.Componenter) *lines.Lines
	logger   func(verbose bool) (*zap.Logger, error)
}

func defaultEnv() *env {
	return &env{
		registry: nativeunit.Default(),
		open:     openGoPlugin,
		lines:    lines.Term,
		logger:   newLogger,
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("nativeunit: logger: %w", err)
	}
	return logger, nil
}

func newRootCmd(e *env) *cobra.Command {
	var (
		flags      = &config{}
		configPath string
	)
	cmd := &cobra.Command{
		Use:   "nativeunit [flags] [plugin.so...]",
		Short: "run the nativeunit tests of Go plugins",
		Long: `nativeunit loads Go plugins registering nativeunit fixtures and
runs their tests.  It exits with status 1 if a test failed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			if err := cfg.merge(cmd, flags, args); err != nil {
				return err
			}
			return e.run(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}
	ff := cmd.Flags()
	ff.StringVar(&configPath, "config", DefaultConfig, "yaml config file")
	ff.BoolVar(&flags.List, "list", false,
		"enumerate the tests without running them")
	ff.StringVarP(&flags.Format, "format", "f", DefaultFormat,
		"report format: text or json")
	ff.StringVar(&flags.Database, "database", "",
		"SQLite database storing the reports")
	ff.BoolVar(&flags.TUI, "tui", false,
		"show the report in a terminal ui")
	ff.BoolVarP(&flags.Verbose, "verbose", "v", false,
		"log on debug level")
	cmd.AddCommand(newHistoryCmd())
	return cmd
}

func (e *env) run(ctx context.Context, out io.Writer, cfg *config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, err := e.logger(cfg.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	if err := loadPlugins(e.registry, e.open, logger, cfg.Plugins...); err != nil {
		return err
	}
	runner := &report.Runner{Logger: logger}

	if cfg.List {
		rpt, err := runner.Enumerate(e.registry)
		if err != nil {
			return err
		}
		return write(out, cfg.Format, rpt)
	}

	if cfg.TUI {
		var last *report.Report
		err := controller.New(title(cfg), func() (*report.Report, error) {
			rpt, err := runner.Run(e.registry)
			if err != nil {
				return nil, err
			}
			last = rpt
			return rpt, save(ctx, cfg.Database, rpt, logger)
		}, e.lines)
		if err != nil {
			return err
		}
		return verdict(last)
	}

	rpt, err := runner.Run(e.registry)
	if err != nil {
		return err
	}
	if err := save(ctx, cfg.Database, rpt, logger); err != nil {
		return err
	}
	if err := write(out, cfg.Format, rpt); err != nil {
		return err
	}
	return verdict(rpt)
}

func title(cfg *config) string {
	switch len(cfg.Plugins) {
	case 0:
		return "nativeunit"
	case 1:
		return "nativeunit: " + cfg.Plugins[0]
	}
	return fmt.Sprintf("nativeunit: %d plugins", len(cfg.Plugins))
}

func write(out io.Writer, format string, rpt *report.Report) error {
	if format == FormatJSON {
		if err := report.WriteJSON(out, rpt); err != nil {
			return err
		}
		_, err := fmt.Fprintln(out)
		return err
	}
	return report.WriteText(out, rpt)
}

func save(
	ctx context.Context, path string, rpt *report.Report, log *zap.Logger,
) error {
	if path == "" {
		return nil
	}
	s, err := store.Open(ctx, path)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.Save(ctx, rpt); err != nil {
		return err
	}
	log.Info("stored", zap.String("report", rpt.ID),
		zap.String("database", path))
	return nil
}

func verdict(rpt *report.Report) error {
	if rpt == nil || rpt.Passed() {
		return nil
	}
	return fmt.Errorf("%w: %d of %d", ErrTestsFailed,
		rpt.LenFailed(), rpt.Len())
}

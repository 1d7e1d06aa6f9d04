// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/slukits/nativeunit/pkg/store"
)

// ErrNoDatabase is returned by the history command if no database is
// given.
var ErrNoDatabase = errors.New("nativeunit: history: no database")

func newHistoryCmd() *cobra.Command {
	var database string
	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "list stored runs or the failures of a stored run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if database == "" {
				return ErrNoDatabase
			}
			s, err := store.Open(cmd.Context(), database)
			if err != nil {
				return err
			}
			defer s.Close()
			if len(args) == 0 {
				rr, err := s.Runs(cmd.Context())
				if err != nil {
					return err
				}
				return writeRuns(cmd.OutOrStdout(), rr)
			}
			ff, err := s.Failures(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeFailures(cmd.OutOrStdout(), ff)
		},
	}
	cmd.Flags().StringVar(&database, "database", "",
		"SQLite database storing the reports")
	return cmd
}

func writeRuns(w io.Writer, rr []store.Run) error {
	for _, r := range rr {
		if _, err := fmt.Fprintf(w, "%s %s %d/%d %v\n", r.ID,
			r.Start.Local().Format(time.DateTime), r.Tests, r.Failed,
			r.Duration); err != nil {
			return err
		}
	}
	return nil
}

func writeFailures(w io.Writer, ff []store.Failure) error {
	for _, f := range ff {
		name := fmt.Sprintf("%s/%s", f.Fixture, f.Test)
		if f.Row >= 0 {
			name = fmt.Sprintf("%s/row %d", name, f.Row)
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", name, f.Description); err != nil {
			return err
		}
		for _, l := range [][2]string{
			{"Message", f.Message}, {"Expected Value", f.Expected},
			{"Actual Value", f.Actual},
		} {
			if l[1] == "" {
				continue
			}
			if _, err := fmt.Fprintf(w, "    %s: %s\n", l[0], l[1]); err != nil {
				return err
			}
		}
	}
	return nil
}

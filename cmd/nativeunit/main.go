// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Nativeunit loads Go plugins registering nativeunit fixtures and runs
their tests.

Usage:

	nativeunit [flags] [plugin.so...]
	nativeunit history [run-id] --database path

A plugin registers its fixtures either in the package initialization of
its main package into nativeunit's default registry or by exporting a
function

	func Register(*nativeunit.Registry)

which is called with the default registry.  By default nativeunit runs
all tests and writes a text report to standard output:

	Arithmetic
	    FAIL AddsCorrectly 2 assertions 0ms
	        Expected values to be equal.
	        Expected Value: 5
	        Actual Value: 4
	    PASS Subtracts 1 assertion 0ms

	2 tests, 1 failed

--list enumerates the tests without running them, --format json writes
the canonical JSON rendering of a report, --database stores each report
in given SQLite database whose history is listed by the history
subcommand and --tui shows the report in a terminal ui.  Flags may be
defaulted by a yaml file (see --config):

	plugins: [./arith.so]
	format: text
	database: .nativeunit/history.db
	verbose: false
	tui: false

Nativeunit exits with status 1 if a test failed.
*/
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCmd(defaultEnv())
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, ErrTestsFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

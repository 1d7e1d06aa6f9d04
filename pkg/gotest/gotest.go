// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package gotest runs the tests of a nativeunit registry with go's
testing package.  Each fixture, test and row test becomes a sub-test
of given *testing.T* instance:

	func TestNative(t *testing.T) { gotest.Run(t, nativeunit.Default()) }

A failed nativeunit test fails its sub-test reporting the rendered
assertion failure, a test's log is logged to its sub-test.  A row
test's sub-test is named "row_" followed by the row's ordinal.
*/
package gotest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/slukits/nativeunit"
	"github.com/slukits/nativeunit/pkg/report"
)

// Logging implementation of a boundary overwrites the default logging
// of a test's log which defaults to a Log-call of the test's sub-test.
type Logging interface {
	Logger() func(args ...interface{})
}

// Errorer implementation of a boundary overwrites the default reporting
// of a failed test which defaults to an Error-call of the test's
// sub-test.
type Errorer interface {
	Error() func(args ...interface{})
}

// Run walks given boundary running each of its tests and row tests
// and reports them as sub-tests of given t.  Run fails t if the
// boundary can't be walked.
func Run(t *testing.T, b report.Boundary) {
	t.Helper()
	rpt, err := (&report.Runner{}).Run(b)
	if err != nil {
		t.Fatal(err)
		return
	}
	newSubTest := newSubTestFactory(b)
	rpt.For(func(f *report.FixtureResult) {
		t.Run(f.Name, func(t *testing.T) {
			f.For(func(r *report.Result) {
				if r.Kind != nativeunit.KindGroup {
					t.Run(r.Name, newSubTest(r))
					return
				}
				t.Run(r.Name, func(t *testing.T) {
					if r.Len() == 0 {
						t.Skip("no rows")
					}
					r.For(func(row *report.Result) {
						t.Run(fmt.Sprintf("row_%d", row.Index),
							newSubTest(row))
					})
				})
			})
		})
	})
}

// newSubTestFactory returns for given boundary a function wrapping a
// result into a function that can be passed to the Run-method of a
// *testing.T* instance.
func newSubTestFactory(
	b report.Boundary,
) func(*report.Result) func(*testing.T) {
	logging, hasLogger := b.(Logging)
	errorer, hasErrorer := b.(Errorer)
	return func(r *report.Result) func(*testing.T) {
		return func(t *testing.T) {
			logger, fail := t.Log, t.Error
			if hasLogger {
				logger = logging.Logger()
			}
			if hasErrorer {
				fail = errorer.Error()
			}
			if log := strings.TrimRight(r.Log, "\n"); log != "" {
				logger(log)
			}
			switch r.Outcome {
			case nativeunit.Failed:
				if r.Failure == nil {
					fail(location(r) + "failed")
					return
				}
				fail(location(r) + r.Failure.String())
			case nativeunit.Inconclusive:
				t.Skip("inconclusive")
			}
		}
	}
}

func location(r *report.Result) string {
	if r.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d:\n", r.File, r.Line)
}

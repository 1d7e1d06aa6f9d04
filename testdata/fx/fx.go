// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fx provides sample fixtures for the tests of nativeunit and
// its runners.  [Register] registers them to a given registry; the
// constants of this package describe what a runner should observe.
package fx

import (
	"fmt"

	"github.com/slukits/nativeunit"
)

// ParseError is the panic value expected by the Panics fixture.
type ParseError struct{ Offset int }

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d", e.Offset)
}

// Sum is the row type of the Rows fixture's data test.
type Sum struct{ A, B, Want int }

// Rows of the Rows fixture's Sums test; the last one is wrong.
var SumRows = []Sum{{1, 2, 3}, {2, 2, 4}, {2, 3, 6}}

// Register registers the sample fixtures to given registry:
//
//	Arithmetic (Category=Math, Author=Ann)
//	    AddsCorrectly   failed, 2 assertions
//	    Subtracts       passed, 1 assertion, logs
//	Empty
//	Rows
//	    Sums            group of three rows, the last one fails
//	    None            group without rows
//	Panics
//	    Expected        passed
//	    Unexpected      failed
//	    NotThrown       failed
func Register(reg *nativeunit.Registry) {
	arithmetic := reg.Fixture(Arithmetic,
		nativeunit.Category("Math"), nativeunit.Author("Ann"))
	arithmetic.Test(AddsCorrectly, func(t *nativeunit.T) {
		t.Assert.AreEqual(4, 2+2)
		t.Assert.AreEqual(5, 2+2)
	})
	arithmetic.Test(Subtracts, func(t *nativeunit.T) {
		t.Log.WriteLine(SubtractsLog)
		t.Assert.AreEqual(2, 4-2)
	}, nativeunit.Description("subtraction"))

	reg.Fixture(Empty)

	rows := reg.Fixture(Rows)
	nativeunit.DataTest(rows, Sums, nativeunit.NewRows(SumRows...),
		func(t *nativeunit.T, r Sum) {
			t.Log.WriteLinef("%d+%d", r.A, r.B)
			t.Assert.AreEqual(r.Want, r.A+r.B)
		})
	nativeunit.DataTest(rows, None, nativeunit.NewRows[Sum](),
		func(t *nativeunit.T, r Sum) {
			t.Assert.Fail("never runs")
		})

	panics := reg.Fixture(Panics)
	panics.Test(Expected, func(t *nativeunit.T) {
		panic(&ParseError{Offset: 7})
	}, nativeunit.ExpectedPanic[*ParseError]())
	panics.Test(Unexpected, func(t *nativeunit.T) {
		panic(UnexpectedMsg)
	})
	panics.Test(NotThrown, func(t *nativeunit.T) {
		t.Assert.IsTrue(true)
	}, nativeunit.ExpectedPanic[*ParseError]())
}

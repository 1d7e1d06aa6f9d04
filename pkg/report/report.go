// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package report is a runner of nativeunit's enumeration and execution
// protocol.  It walks a [Boundary], runs each test and row test and
// collects the pulled texts into a [Report]:
//
//	rpt, err := (&report.Runner{Logger: logger}).Run(nativeunit.Default())
//	if err != nil {
//	    panic(err)
//	}
//	rpt.For(func(f *report.FixtureResult) {
//	    fmt.Printf("%s passed: %v\n", f.Name, f.Passed())
//	})
//
// A Report may be written as text or as canonical JSON.
package report

import (
	"time"

	"github.com/slukits/ints"

	"github.com/slukits/nativeunit"
)

// Report is the outcome of walking a registry.  A report of an
// enumeration has only inconclusive results.
type Report struct {

	// ID identifies a report, e.g. in a result store.
	ID string

	// Version is the protocol version of the walked registry.
	Version int

	// Start of the walk.
	Start time.Time

	// Duration of the walk.
	Duration time.Duration

	fixtures []*FixtureResult
}

// Len returns the number of executed units, i.e. tests and row tests.
// Groups are not counted.
func (r *Report) Len() int {
	n := 0
	for _, f := range r.fixtures {
		n += f.Len()
	}
	return n
}

// LenFailed returns the number of failed tests and row tests.
func (r *Report) LenFailed() int {
	n := 0
	for _, f := range r.fixtures {
		n += f.LenFailed()
	}
	return n
}

// Passed returns true iff no test of a report has failed.
func (r *Report) Passed() bool { return r.LenFailed() == 0 }

// LenFixtures returns the number of reported fixtures.
func (r *Report) LenFixtures() int { return len(r.fixtures) }

// For calls back for each fixture result in enumeration order.
func (r *Report) For(cb func(*FixtureResult)) {
	for _, f := range r.fixtures {
		cb(f)
	}
}

// Fixture returns the result of the first fixture with given name.
func (r *Report) Fixture(name string) *FixtureResult {
	for _, f := range r.fixtures {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// FixtureResult reports the results of a fixture's tests.
type FixtureResult struct {
	Name     string
	Index    int
	Metadata string
	tests    []*Result
}

// Len returns the number of a fixture's tests and row tests.
func (f *FixtureResult) Len() int {
	n := 0
	for _, t := range f.tests {
		n += t.Len()
	}
	return n
}

// LenFailed returns the number of a fixture's failed tests and row
// tests.
func (f *FixtureResult) LenFailed() int {
	n := 0
	for _, t := range f.tests {
		n += t.LenFailed()
	}
	return n
}

// Passed returns true iff none of a fixture's tests failed.
func (f *FixtureResult) Passed() bool { return f.LenFailed() == 0 }

// For calls back for each test result of a fixture in registration
// order.
func (f *FixtureResult) For(cb func(*Result)) {
	for _, t := range f.tests {
		cb(t)
	}
}

// Test returns the result of the first test with given name.
func (f *FixtureResult) Test(name string) *Result {
	for _, t := range f.tests {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// Failed returns the indices of a fixture's failed tests.
func (f *FixtureResult) Failed() *ints.Set {
	ii := &ints.Set{}
	for _, t := range f.tests {
		if t.LenFailed() == 0 {
			continue
		}
		ii.Add(t.Index)
	}
	return ii
}

// Value is a resolved labeled value of a failure.
type Value struct {
	Label string
	Text  string
	Kind  nativeunit.ValueKind
}

// Failure is a resolved assertion failure.
type Failure struct {
	Description string
	Message     string
	Expected    *Value
	Actual      *Value
	Extras      []Value
}

// Result reports a test, a group or a row test.  The results of a
// group's row tests are the group's sub results.
type Result struct {
	Name        string
	Index       int
	Kind        nativeunit.TestKind
	File        string
	Line        int
	Metadata    string
	Outcome     nativeunit.Outcome
	AssertCount int
	Duration    time.Duration
	Log         string
	Failure     *Failure
	subs        []*Result
}

// Len is the number of executed units a result comprises, i.e. 1 for a
// test or row test and the number of rows for a group.
func (r *Result) Len() int {
	if r.Kind != nativeunit.KindGroup {
		return 1
	}
	return len(r.subs)
}

// LenFailed returns the number of failed units a result comprises.
func (r *Result) LenFailed() int {
	if r.Kind != nativeunit.KindGroup {
		if r.Outcome == nativeunit.Failed {
			return 1
		}
		return 0
	}
	n := 0
	for _, s := range r.subs {
		n += s.LenFailed()
	}
	return n
}

// Passed returns true iff a test passed or all rows of a group passed.
func (r *Result) Passed() bool {
	if r.Kind != nativeunit.KindGroup {
		return r.Outcome == nativeunit.Passed
	}
	return r.LenFailed() == 0
}

// For calls back for each row result of a group.
func (r *Result) For(cb func(*Result)) {
	for _, s := range r.subs {
		cb(s)
	}
}

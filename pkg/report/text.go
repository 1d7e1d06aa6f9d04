// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/slukits/nativeunit"
)

const indent = "    "

// default labels of unlabeled failure values.
const (
	expectedLabel = "Expected Value"
	actualLabel   = "Actual Value"
)

// Verdicts of reported units.
const (
	PASS = "PASS"
	FAIL = "FAIL"
	SKIP = "----"
)

func verdict(r *Result) string {
	switch {
	case r.Kind == nativeunit.KindGroup && r.Len() == 0:
		return SKIP
	case r.Kind == nativeunit.KindGroup:
		if r.Passed() {
			return PASS
		}
		return FAIL
	case r.Outcome == nativeunit.Passed:
		return PASS
	case r.Outcome == nativeunit.Failed:
		return FAIL
	}
	return SKIP
}

// WriteText writes a human readable rendering of given report to given
// writer:
//
//	Arithmetic
//	    FAIL AddsCorrectly 2 assertions 0ms
//	        Expected values to be equal.
//	        Expected Value: 5
//	        Actual Value: 4
//	    PASS Subtracts 1 assertion 0ms
//	        subtracting
//
//	2 tests, 1 failed
func WriteText(w io.Writer, rpt *Report) error {
	tw := &textWriter{w: w}
	rpt.For(func(f *FixtureResult) {
		tw.line(0, f.Name)
		f.For(func(r *Result) {
			tw.result(1, r)
			r.For(func(row *Result) { tw.result(2, row) })
		})
	})
	tw.line(0, "")
	tw.line(0, fmt.Sprintf("%d tests, %d failed", rpt.Len(), rpt.LenFailed()))
	return tw.err
}

type textWriter struct {
	w   io.Writer
	err error
}

func (tw *textWriter) line(depth int, s string) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, "%s%s\n", strings.Repeat(indent, depth), s)
}

func (tw *textWriter) result(depth int, r *Result) {
	name := r.Name
	if r.Kind == nativeunit.KindRowTest {
		name = fmt.Sprintf("row %d", r.Index)
	}
	if r.Kind == nativeunit.KindGroup || r.Outcome == nativeunit.Inconclusive {
		tw.line(depth, fmt.Sprintf("%s %s", verdict(r), name))
		return
	}
	tw.line(depth, fmt.Sprintf("%s %s %s %dms", verdict(r), name,
		plural(r.AssertCount, "assertion"), r.Duration.Milliseconds()))
	for _, l := range strings.Split(strings.TrimRight(r.Log, "\n"), "\n") {
		if l != "" {
			tw.line(depth+1, l)
		}
	}
	if r.Failure == nil {
		return
	}
	tw.failure(depth+1, r.Failure)
}

func (tw *textWriter) failure(depth int, f *Failure) {
	tw.line(depth, f.Description)
	if f.Message != "" {
		tw.line(depth, f.Message)
	}
	tw.value(depth, expectedLabel, f.Expected)
	tw.value(depth, actualLabel, f.Actual)
	for _, v := range f.Extras {
		v := v
		tw.value(depth, "", &v)
	}
}

// String renders a failure's description, message and labeled values
// line by line.
func (f *Failure) String() string {
	b := &strings.Builder{}
	(&textWriter{w: b}).failure(0, f)
	return strings.TrimRight(b.String(), "\n")
}

func (tw *textWriter) value(depth int, label string, v *Value) {
	if v == nil {
		return
	}
	if v.Label != "" {
		label = v.Label
	}
	if !strings.Contains(v.Text, "\n") {
		tw.line(depth, fmt.Sprintf("%s: %s", label, v.Text))
		return
	}
	tw.line(depth, label+":")
	for _, l := range strings.Split(strings.TrimRight(v.Text, "\n"), "\n") {
		tw.line(depth+1, l)
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

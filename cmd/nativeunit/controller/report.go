// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package controller

import (
	"fmt"
	"strings"

	"github.com/slukits/nativeunit"
	"github.com/slukits/nativeunit/cmd/nativeunit/view"
	"github.com/slukits/nativeunit/pkg/report"
)

const indent = "    "

// reporter implements view.Reporter by rendering a report's fixtures
// line by line.
type reporter struct {
	flags view.RprtMask
	ll    []string
	mm    map[uint]view.LineMask
}

func (r *reporter) Flags() view.RprtMask { return r.flags }

func (r *reporter) For(line func(uint, string)) {
	for idx, l := range r.ll {
		line(uint(idx), l)
	}
}

func (r *reporter) LineMask(idx uint) view.LineMask {
	return r.mm[idx]
}

func (r *reporter) add(failed bool, depth int, s string) {
	if failed {
		r.mm[uint(len(r.ll))] = view.Failed
	}
	r.ll = append(r.ll, strings.Repeat(indent, depth)+s)
}

// newReporter renders given report's fixtures.  Passed fixtures are
// omitted if failedOnly is set.
func newReporter(rpt *report.Report, failedOnly bool) *reporter {
	r := &reporter{flags: view.RpClearing, mm: map[uint]view.LineMask{}}
	rpt.For(func(f *report.FixtureResult) {
		if failedOnly && f.Passed() {
			return
		}
		if len(r.ll) > 0 {
			r.add(false, 0, "")
		}
		r.add(!f.Passed(), 0,
			fmt.Sprintf("%s %d/%d", f.Name, f.Len(), f.LenFailed()))
		f.For(func(t *report.Result) {
			r.result(1, t)
			t.For(func(row *report.Result) { r.result(2, row) })
		})
	})
	if len(r.ll) == 0 && failedOnly {
		r.add(false, 0, "no failed tests")
	}
	return r
}

func (r *reporter) result(depth int, t *report.Result) {
	name := t.Name
	if t.Kind == nativeunit.KindRowTest {
		name = fmt.Sprintf("row %d", t.Index)
	}
	if t.Kind == nativeunit.KindGroup {
		r.add(!t.Passed(), depth, fmt.Sprintf("%s %s %d/%d",
			verdict(t), name, t.Len(), t.LenFailed()))
		return
	}
	if t.Outcome == nativeunit.Inconclusive {
		r.add(false, depth, fmt.Sprintf("%s %s", verdict(t), name))
		return
	}
	assertions := fmt.Sprintf("%d assertions", t.AssertCount)
	if t.AssertCount == 1 {
		assertions = "1 assertion"
	}
	r.add(t.Outcome == nativeunit.Failed, depth, fmt.Sprintf(
		"%s %s %s %v", verdict(t), name, assertions, t.Duration))
	if t.Failure == nil {
		return
	}
	for _, l := range strings.Split(t.Failure.String(), "\n") {
		r.add(false, depth+1, l)
	}
}

func verdict(t *report.Result) string {
	switch {
	case t.Kind == nativeunit.KindGroup && t.Len() == 0:
		return report.SKIP
	case t.Passed():
		return report.PASS
	case t.Outcome == nativeunit.Inconclusive &&
		t.Kind != nativeunit.KindGroup:
		return report.SKIP
	}
	return report.FAIL
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/slukits/lines"
	"github.com/stretchr/testify/assert"
)

const (
	fxMsg       = "init fixture message"
	fxReporting = "init fixture reporting"
)

// reporterFX reports its lines marking the lines of given indices as
// failed.
type reporterFX struct {
	ll       []string
	failed   map[uint]bool
	clearing bool
}

func (r *reporterFX) Flags() RprtMask {
	if r.clearing {
		return RpClearing
	}
	return RpNoFlags
}

func (r *reporterFX) For(line func(uint, string)) {
	for i, l := range r.ll {
		line(uint(i), l)
	}
}

func (r *reporterFX) LineMask(idx uint) LineMask {
	if r.failed[idx] {
		return Failed
	}
	return ZeroLineMod
}

type fxInit struct {
	updateMessage   func(string)
	updateReporting func(Reporter)
	updateStatus    func(Statuser)
	runes           []rune
}

func (fx *fxInit) Message(upd func(string)) string {
	fx.updateMessage = upd
	return fxMsg
}

func (fx *fxInit) Reporting(upd func(Reporter)) Reporter {
	fx.updateReporting = upd
	return &reporterFX{ll: []string{fxReporting}}
}

func (fx *fxInit) Status(upd func(Statuser)) Statuser {
	fx.updateStatus = upd
	return Statuser{Fixtures: 1, Tests: 2}
}

func (fx *fxInit) OnRune(r rune) { fx.runes = append(fx.runes, r) }

// fx creates a new view on a simulation screen which is torn down
// with the test.
func fx(t *testing.T) (*fxInit, *Testing) {
	t.Helper()
	i := &fxInit{}
	c := New(i)
	return i, NewTesting(t, lines.TermFixture(t, 0, c), c)
}

func Test_a_new_view_displays_initially_given_content(t *testing.T) {
	t.Parallel()
	_, tt := fx(t)
	assert.Contains(t, tt.MessageBar().String(), fxMsg)
	assert.Contains(t, tt.Reporting().String(), fxReporting)
	assert.Contains(t, tt.StatusBar().String(),
		fmt.Sprintf(dfltStatus, 1, 2, 0, time.Duration(0)))
}

func Test_a_view_updates_and_resets_its_message_bar(t *testing.T) {
	t.Parallel()
	i, tt := fx(t)
	exp := "updated message"

	i.updateMessage(exp)
	assert.Contains(t, tt.MessageBar().String(), exp)
	assert.NotContains(t, tt.MessageBar().String(), fxMsg)

	i.updateMessage("")
	assert.Contains(t, tt.MessageBar().String(), fxMsg)
}

func Test_a_view_s_status_string_supersedes_its_counts(t *testing.T) {
	t.Parallel()
	i, tt := fx(t)

	i.updateStatus(Statuser{Fixtures: 3, Tests: 7, Failed: 2})
	assert.Contains(t, tt.StatusBar().String(), "fixtures: 3; tests: 7/2")

	i.updateStatus(Statuser{Str: "running", Tests: 7})
	assert.Contains(t, tt.StatusBar().String(), "running")
	assert.NotContains(t, tt.StatusBar().String(), "tests: 7")
}

func Test_a_view_updates_its_reporting(t *testing.T) {
	t.Parallel()
	i, tt := fx(t)

	i.updateReporting(&reporterFX{ll: []string{"first", "", "third"}})

	scr := tt.Trim(tt.Reporting()).String()
	assert.Contains(t, scr, "first")
	assert.Contains(t, scr, "third")
}

func Test_a_view_clears_unused_reporting_lines(t *testing.T) {
	t.Parallel()
	i, tt := fx(t)
	exp := "first line\nsecond\nthird\nforth\nfifth"
	i.updateReporting(&reporterFX{ll: strings.Split(exp, "\n")})
	assert.Contains(t, tt.Reporting().String(), "fifth")

	i.updateReporting(&reporterFX{
		ll: []string{"", "2nd", "3rd"}, clearing: true})

	scr := tt.Reporting().String()
	assert.Contains(t, scr, "3rd")
	assert.NotContains(t, scr, "first line")
	assert.NotContains(t, scr, "fifth")
}

func Test_a_view_s_reporting_is_scrollable(t *testing.T) {
	t.Parallel()
	_, tt := fx(t)
	rp := tt.CC[1].(*report)
	tt.Lines.Update(rp, nil, func(e *lines.Env) {
		assert.True(t, rp.FF.Has(lines.DownScrollable))
		assert.True(t, rp.FF.Has(lines.UpScrollable))
	})
}

func Test_a_view_scrolls_its_reporting_on_space(t *testing.T) {
	t.Parallel()
	i, tt := fx(t)
	ll := []string{}
	for n := 0; n < 60; n++ {
		ll = append(ll, fmt.Sprintf("line %02d", n))
	}
	i.updateReporting(&reporterFX{ll: ll})
	assert.Equal(t, "line 00", strings.TrimSpace(tt.Reporting()[0]))

	tt.FireRune(' ')
	assert.NotEqual(t, "line 00", strings.TrimSpace(tt.Reporting()[0]))
	assert.Empty(t, i.runes)
}

func Test_a_view_s_message_bar_shows_title_and_key_hints(t *testing.T) {
	t.Parallel()
	i, tt := fx(t)
	first := tt.MessageBar()[0]
	assert.True(t, strings.HasPrefix(first, fxMsg))
	assert.True(t, strings.HasSuffix(first, KeyHints))

	i.updateMessage("rerun: failed")
	first = tt.MessageBar()[0]
	assert.True(t, strings.HasPrefix(first, "rerun: failed"))
	assert.True(t, strings.HasSuffix(first, KeyHints))
}

func Test_a_view_colors_its_status_bar_by_the_failed_count(t *testing.T) {
	t.Parallel()
	i, tt := fx(t)
	assert.True(t, tt.StatusCells().HasBG(0, 1, lines.Green))

	i.updateStatus(Statuser{Fixtures: 1, Tests: 2, Failed: 1})
	assert.True(t, tt.StatusCells().HasBG(0, 1, lines.Red))
	assert.True(t, tt.StatusCells().HasFG(0, 1, lines.White))
}

func Test_a_view_reports_runes_to_its_initer(t *testing.T) {
	t.Parallel()
	i, tt := fx(t)
	tt.FireRune('f')
	tt.FireRune('r')
	assert.Equal(t, []rune{'f', 'r'}, i.runes)
}

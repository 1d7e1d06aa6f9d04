// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"
	"io"

	"github.com/slukits/ints"
	"github.com/slukits/lines"
)

// RprtMask types flags for Reporter-implementations.
type RprtMask uint

const (

	// RpClearing indicates that all lines of a view's reporting
	// component which are not updated by an Reporter-implementation are
	// cleared.
	RpClearing RprtMask = 1 << iota

	// RpNoFlags is the return value of an Reporter.Flags implementation
	// where no flags are set.
	RpNoFlags = 0
)

// LineMask provides formatting information for a reported line.
type LineMask uint

const (

	// Failed formats a line as failed.
	Failed LineMask = 1 << iota

	// ZeroLineMod is the zero line mask.
	ZeroLineMod LineMask = 0
)

// A Reporter implementation provides line-updates for the view's
// reporting area.
type Reporter interface {

	// Flags returns an optional combination of flags controlling how a
	// given Reporter implementation is processed.  See Rp*-constants.
	Flags() RprtMask

	// For calls back for each line which should be updated.  If
	// RpClearing is set all other lines of the reporting component are
	// reset.
	For(line func(idx uint, content string))

	// LineMask provides for an updated line additional formatting
	// information.
	LineMask(idx uint) LineMask
}

type report struct {
	lines.Component
	rr []Reporter
}

func (m *report) OnInit(e *lines.Env) {
	m.FF.Add(lines.UpScrollable | lines.DownScrollable)
	if len(m.rr) == 0 || m.rr[0] == nil {
		return
	}
	m.rr[0].For(func(idx uint, content string) {
		fmt.Fprint(m.wrt(m.rr[0], idx, e), content)
	})
}

func (m *report) OnUpdate(e *lines.Env, data interface{}) {
	r, ok := data.(Reporter)
	if !ok {
		return
	}
	clearing := r.Flags()&RpClearing == RpClearing
	ii := &ints.Set{}
	r.For(func(idx uint, content string) {
		ii.Add(int(idx))
		fmt.Fprint(m.wrt(r, idx, e), content)
	})
	if !clearing {
		return
	}
	for i := 0; i < m.Len(); i++ {
		if ii.Has(i) {
			continue
		}
		m.Reset(i)
	}
}

func (m *report) wrt(r Reporter, idx uint, e *lines.Env) io.Writer {
	if r.LineMask(idx)&Failed > 0 {
		return e.LL(int(idx)).BG(lines.Red).FG(lines.White)
	}
	return e.LL(int(idx))
}

// OnContext scrolls given reporting component down.  If at bottom it is
// scrolled to the top.
func (m *report) OnContext(_ *lines.Env, _, _ int) {
	m.scroll()
}

// scroll moves the report down by a page or back to the top if it is
// already at the bottom.
func (m *report) scroll() {
	if m.Scroll.IsAtBottom() {
		m.Scroll.ToTop()
		return
	}
	m.Scroll.Down()
}

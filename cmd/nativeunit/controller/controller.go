// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package controller connects the reports of a nativeunit run with the
terminal ui of package view.  A user may toggle between all and only
failed fixtures by pressing 'f' and rerun all tests by pressing 'r'.
The reporting component scrolls on space and 'q' quits.
*/
package controller

import (
	"fmt"
	"sync"

	"github.com/slukits/lines"

	"github.com/slukits/nativeunit/cmd/nativeunit/view"
	"github.com/slukits/nativeunit/pkg/report"
)

// Runes a user may press to control the ui.
const (
	FailedOnlyRune = 'f'
	RerunRune      = 'r'
)

// failedOnlySuffix is appended to the title while only failed fixtures
// are shown.
const failedOnlySuffix = " [failed only]"

// Runner runs all tests and reports their results.
type Runner func() (*report.Report, error)

// New runs given runner and displays its report in a view handed to
// given lines-factory ll.  New blocks until the user quits the ui.
// title is displayed in the view's message bar.
func New(
	title string, run Runner,
	ll func(lines.Componenter) *lines.Lines,
) error {
	rpt, err := run()
	if err != nil {
		return err
	}
	c := &controller{title: title, run: run, rpt: rpt,
		view: &viewUpdater{Mutex: &sync.Mutex{}}}
	ll(view.New(c)).WaitForQuit()
	return nil
}

// controller implements view.Initer, i.e. provides the initial data to
// a new view and collects the provided view modifiers.
type controller struct {
	title      string
	run        Runner
	rpt        *report.Report
	failedOnly bool
	view       *viewUpdater
}

func (c *controller) Message(upd func(string)) string {
	c.view.msg = upd
	return c.title
}

func (c *controller) Reporting(upd func(view.Reporter)) view.Reporter {
	c.view.rprUpd = upd
	return newReporter(c.rpt, c.failedOnly)
}

func (c *controller) Status(upd func(view.Statuser)) view.Statuser {
	c.view.sttUpd = upd
	return statuser(c.rpt)
}

func (c *controller) OnRune(r rune) {
	switch r {
	case FailedOnlyRune:
		c.failedOnly = !c.failedOnly
		msg := c.title
		if c.failedOnly {
			msg += failedOnlySuffix
		}
		c.view.Update(msg, newReporter(c.rpt, c.failedOnly))
	case RerunRune:
		rpt, err := c.run()
		if err != nil {
			c.view.Update(fmt.Sprintf("rerun: %v", err))
			return
		}
		c.rpt = rpt
		c.view.Update(newReporter(c.rpt, c.failedOnly), statuser(c.rpt))
	}
}

func statuser(rpt *report.Report) view.Statuser {
	return view.Statuser{
		Fixtures: rpt.LenFixtures(),
		Tests:    rpt.Len(),
		Failed:   rpt.LenFailed(),
		Duration: rpt.Duration,
	}
}

// viewUpdater collects the functions to update aspects of a view.
type viewUpdater struct {

	// Mutex avoids that the view is updated concurrently.
	*sync.Mutex

	// msg updates the view's message bar
	msg func(string)

	// sttUpd updates the view's status bar
	sttUpd func(view.Statuser)

	// rprUpd updates lines of a view's reporting component.
	rprUpd func(view.Reporter)
}

// Update updates the view and should be the only way the view is
// updated to avoid data races.
func (vw *viewUpdater) Update(dd ...interface{}) {
	vw.Lock()
	defer vw.Unlock()

	for _, d := range dd {
		switch updData := d.(type) {
		case string:
			vw.msg(updData)
		case view.Reporter:
			vw.rprUpd(updData)
		case view.Statuser:
			vw.sttUpd(updData)
		}
	}
}

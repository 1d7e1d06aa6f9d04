// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package view provides the terminal ui of the nativeunit command.  A view
stacks a message bar, a scrollable reporting component and a status
bar:

	nativeunit: 2 plugins                      space: scroll; q: quit

	Arithmetic 2/1
	    FAIL AddsCorrectly 2 assertions 0ms
	        Expected values to be equal.
	        Expected Value: 5
	        Actual Value: 4
	    PASS Subtracts 1 assertion 0ms

	fixtures: 4; tests: 8/4; 12ms

A view is initialized by an [Initer] implementation which in turn is
provided with the functions to update the view.
*/
package view

import (
	"github.com/slukits/lines"
)

// An Initer implementation initializes a new view provided to the
// [New] constructor and it is provided with the functionality to
// manipulate the view, i.e. the screen content.
type Initer interface {

	// Message returns the message bar's default content and is provided
	// by a view with a function to update or reset the message bar's
	// content.  Calling update with the empty string resets the message
	// bar's content.
	Message(update func(string)) string

	// Reporting returns the initial content of the reporting component
	// and is provided with a function to update it.
	Reporting(update func(Reporter)) Reporter

	// Status is provided with a function to update the status bar.
	Status(update func(Statuser)) Statuser

	// OnRune is informed about each rune event the view receives
	// except the space rune which scrolls the report.
	OnRune(rune)
}

// view implements the lines Componenter interface hence an instance of
// it can be used to initialize a lines terminal ui.  A view instance
// may be modified by the provided functions to an Initer
// implementation.
type view struct {
	lines.Component
	lines.Stacking
	ll     *lines.Lines
	onRune func(rune)
}

// New uses provided information of given Initer i implementation to
// initialize a new returned view instance.  New's return value
// implements the lines.Componenter interface and should be only ever
// used to initialize a lines instance, e.g.:
//
//	lines.Term(view.New(i)).WaitForQuit()
func New(i Initer) *view {
	new := &view{onRune: i.OnRune}
	new.CC = append(new.CC, &messageBar{
		title: i.Message(new.updateMessageBar)})
	new.CC = append(new.CC, &report{
		rr: []Reporter{i.Reporting(new.updateReporting)}})
	new.CC = append(new.CC, &statusBar{
		Statuser: i.Status(new.updateStatusBar)})
	return new
}

func (v *view) OnInit(e *lines.Env) {
	v.ll = e.Lines
}

// OnRune scrolls the report on space and passes every other rune on
// to the Initer.
func (v *view) OnRune(_ *lines.Env, r rune, _ lines.ModifierMask) {
	if r == ' ' {
		rp := v.CC[1].(*report)
		v.update(rp, nil, func(*lines.Env) { rp.scroll() })
		return
	}
	if v.onRune == nil {
		return
	}
	v.onRune(r)
}

func (v *view) updateMessageBar(s string) {
	v.update(v.CC[0], s, nil)
}

func (v *view) updateReporting(r Reporter) {
	v.update(v.CC[1], r, nil)
}

func (v *view) updateStatusBar(s Statuser) {
	v.update(v.CC[2], s, nil)
}

// update is a no-op until the view has been initialized.
func (v *view) update(
	c lines.Componenter, data interface{}, l lines.Listener,
) {
	if v.ll == nil {
		return
	}
	_ = v.ll.Update(c, data, l)
}

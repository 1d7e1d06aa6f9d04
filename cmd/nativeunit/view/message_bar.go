// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"

	"github.com/slukits/lines"
)

// KeyHints is right-aligned in the first line of the message bar and
// names the keys the view itself handles.
const KeyHints = "space: scroll; q: quit"

// messageBar shows the run's title or a transient message in bold on
// its first line next to the key hints.  Its second line separates it
// from the report.
type messageBar struct {
	lines.Component
	title string
}

func (mb *messageBar) OnInit(e *lines.Env) {
	mb.Dim().SetHeight(2)
	mb.show(e, "")
}

// OnUpdate shows given string; the empty string (or anything not a
// string) restores the title.
func (mb *messageBar) OnUpdate(e *lines.Env, data interface{}) {
	s, _ := data.(string)
	mb.show(e, s)
}

func (mb *messageBar) show(e *lines.Env, msg string) {
	if msg == "" {
		msg = mb.title
	}
	fmt.Fprint(e.LL(0).AA(lines.Bold), msg+lines.Filler+KeyHints)
}

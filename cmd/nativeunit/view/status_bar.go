// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"
	"time"

	"github.com/slukits/lines"
)

// Statuser instance is returned by an Initer's Status implementation
// and passed to the status bar updater.
type Statuser struct {

	// Str is a status-bar string superseding all other status
	// information.
	Str string

	// Fixtures is the number of fixtures
	Fixtures int

	// Tests is the number of tests and row tests
	Tests int

	// Failed is the number of failed tests and row tests
	Failed int

	// Duration of the reported run
	Duration time.Duration
}

type statusBar struct {
	lines.Component
	Statuser
}

func (sb *statusBar) OnInit(e *lines.Env) {
	sb.Dim().SetHeight(2)
	sb.write(e)
}

func (sb *statusBar) OnUpdate(e *lines.Env, data interface{}) {
	// type save because status bar update only allows a Statuser
	sb.Statuser, _ = data.(Statuser)
	sb.write(e)
}

func (sb *statusBar) write(e *lines.Env) {
	fmt.Fprint(e.LL(1).BG(sb.bg()).FG(sb.fg()), sb.str()+lines.Filler)
}

const dfltStatus = "fixtures: %d; tests: %d/%d; %v"

func (sb *statusBar) str() string {
	if sb.Str != "" {
		return sb.Str
	}
	return fmt.Sprintf(dfltStatus, sb.Fixtures, sb.Tests, sb.Failed,
		sb.Duration.Round(time.Millisecond))
}

func (sb *statusBar) bg() lines.Color {
	if sb.Failed > 0 {
		return lines.Red
	}
	return lines.Green
}

func (sb *statusBar) fg() lines.Color {
	if sb.Failed > 0 {
		return lines.White
	}
	return lines.Black
}

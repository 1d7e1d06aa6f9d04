// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package view

import (
	"testing"

	"github.com/slukits/lines"
)

// Testing augments a view-instance with functionality useful for
// testing but not meant for production.  A Testing-view instance may be
// initialized by
//
//	c := view.New(i)
//	vt := view.NewTesting(t, lines.TermFixture(t, 0, c), c)
//
// whereas t is an *testing.T and i and view.Initer implementation.
type Testing struct {
	T *testing.T
	*lines.Fixture
	*view
}

// NewTesting wraps given lines fixture and view component c which must
// have been created by [New].
func NewTesting(
	t *testing.T, fx *lines.Fixture, c lines.Componenter,
) *Testing {
	t.Helper()
	vw, ok := c.(*view)
	if !ok {
		t.Fatalf("given component must be a view; got %T", c)
		return nil
	}
	return &Testing{T: t, Fixture: fx, view: vw}
}

// MessageBar returns the test-screen portion of the message bar.
func (t *Testing) MessageBar() lines.StringScreen {
	return t.ScreenOf(t.component(0))
}

// Reporting returns the test-screen portion of the reporting component.
func (t *Testing) Reporting() lines.StringScreen {
	return t.ScreenOf(t.component(1))
}

// StatusBar returns the test-screen portion of the status bar.
func (t *Testing) StatusBar() lines.StringScreen {
	return t.ScreenOf(t.component(2))
}

// StatusCells returns the status bar's cells including their styles.
func (t *Testing) StatusCells() lines.CellsScreen {
	return t.CellsOf(t.component(2))
}

// Trim reduces given test-screen portion to its non-blank area.
func (t *Testing) Trim(ts lines.StringScreen) lines.StringScreen {
	return ts.Trimmed()
}

func (t *Testing) component(idx int) lines.Componenter {
	t.T.Helper()
	if len(t.CC) <= idx {
		t.T.Fatal("nativeunit: view: testing: not enough ui components")
		return nil
	}
	return t.CC[idx]
}

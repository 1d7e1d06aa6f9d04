// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nativeunit_test

import (
	"fmt"
	"testing"

	"go.uber.org/goleak"

	"github.com/slukits/nativeunit"
)

func TestMain(m *testing.M) { goleak.VerifyTestMain(m) }

// run registers given body as the only test of a new registry and runs
// it once.
func run(
	t *testing.T, body func(*nativeunit.T), dd ...nativeunit.Decorator,
) (*nativeunit.Registry, nativeunit.TestResultData) {
	t.Helper()
	reg := nativeunit.NewRegistry()
	reg.Fixture("fixture").Test("test", body, dd...)
	r, err := reg.RunTest(nativeunit.Position{Fixture: 1, Test: 1})
	if err != nil {
		t.Fatalf("run test: %v", err)
	}
	return reg, r
}

// text returns the text of given handle or the empty string for
// NoString.
func text(
	t *testing.T, reg *nativeunit.Registry, h nativeunit.Handle,
) string {
	t.Helper()
	if h == nativeunit.NoString {
		return ""
	}
	s, err := reg.GetString(h)
	if err != nil {
		t.Fatalf("get string %d: %v", h, err)
	}
	return s
}

type labeled struct {
	Label, Value string
	Kind         nativeunit.ValueKind
}

// failure is an AssertionFailure with its handles resolved.
type failure struct {
	Description, Message            string
	Expected, Actual, Extra0, Extra1 labeled
}

func resolve(
	t *testing.T, reg *nativeunit.Registry, f nativeunit.AssertionFailure,
) failure {
	t.Helper()
	lbl := func(lv nativeunit.LabeledValue) labeled {
		return labeled{
			Label: text(t, reg, lv.Label),
			Value: text(t, reg, lv.Value),
			Kind:  lv.Kind,
		}
	}
	return failure{
		Description: text(t, reg, f.Description),
		Message:     text(t, reg, f.Message),
		Expected:    lbl(f.Expected),
		Actual:      lbl(f.Actual),
		Extra0:      lbl(f.Extra0),
		Extra1:      lbl(f.Extra1),
	}
}

// failed runs given body expecting it to fail and returns the resolved
// failure.
func failed(
	t *testing.T, body func(*nativeunit.T), dd ...nativeunit.Decorator,
) failure {
	t.Helper()
	reg, r := run(t, body, dd...)
	if r.Outcome != nativeunit.Failed {
		t.Fatalf("expected outcome %v; got %v", nativeunit.Failed, r.Outcome)
	}
	return resolve(t, reg, r.Failure)
}

// passed runs given body expecting it to pass.
func passed(
	t *testing.T, body func(*nativeunit.T), dd ...nativeunit.Decorator,
) {
	t.Helper()
	reg, r := run(t, body, dd...)
	if r.Outcome != nativeunit.Passed {
		t.Fatalf("expected outcome %v; got %v: %+v", nativeunit.Passed,
			r.Outcome, resolve(t, reg, r.Failure))
	}
}

// node is an enumerated TestInfoData with its handles resolved.
type node struct {
	Name, File, Metadata string
	Index                int32
	Kind                 nativeunit.TestKind
	Line                 int32
	Position             nativeunit.Position
}

func (n node) String() string {
	return fmt.Sprintf("%v %s[%d]", n.Kind, n.Name, n.Index)
}

// walk enumerates all nodes of given registry.
func walk(t *testing.T, reg *nativeunit.Registry) []node {
	t.Helper()
	nn, p := []node{}, reg.GetHeadTest()
	for {
		info, ok, err := reg.GetNextTest(&p)
		if err != nil {
			t.Fatalf("get next test: %v", err)
		}
		if !ok {
			return nn
		}
		nn = append(nn, node{
			Name:     text(t, reg, info.Name),
			File:     text(t, reg, info.FileName),
			Metadata: text(t, reg, info.Metadata),
			Index:    info.Index,
			Kind:     info.Kind,
			Line:     info.LineNumber,
			Position: info.Position,
		})
		if len(nn) > 1000 {
			t.Fatal("enumeration doesn't terminate")
		}
	}
}

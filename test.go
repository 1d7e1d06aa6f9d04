// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nativeunit

import (
	"errors"
	"fmt"
	"reflect"
	"time"
)

// Descriptions of failures raised at a test's execution boundary.
const (
	unhandledDsc = "An unhandled exception was thrown."
	notThrownDsc = "Expected exception was not thrown."
	wrongTypeDsc = "Wrong exception type was thrown."
)

// T instances are passed to a test's body providing the test's
// assertions and its log:
//
//	var arithmetic = nativeunit.Fixture("Arithmetic")
//
//	var _ = arithmetic.Test("AddsCorrectly", func(t *nativeunit.T) {
//		t.Log.WriteLine("adding")
//		t.Assert.AreEqual(4, 2+2)
//	})
type T struct {
	Assert *Assert
	Log    *TestLog
	test   *Test
}

// Name returns the name of the executed test.
func (t *T) Name() string { return t.test.name }

// TestLog records text for the current run of a test.  The recorded
// text is reported by the TestLog handle of the run's result.
type TestLog struct{ test *Test }

// Write appends given arguments rendered by fmt.Sprint to the log.
func (l *TestLog) Write(args ...interface{}) {
	l.test.log = l.test.strings().Append(l.test.log, fmt.Sprint(args...))
}

// WriteLine appends given arguments rendered by fmt.Sprint and a line
// break to the log.
func (l *TestLog) WriteLine(args ...interface{}) {
	l.Write(fmt.Sprint(args...) + "\n")
}

// Writef appends given format string rendered by fmt.Sprintf to the
// log.
func (l *TestLog) Writef(format string, args ...interface{}) {
	l.Write(fmt.Sprintf(format, args...))
}

// WriteLinef appends given format string rendered by fmt.Sprintf and a
// line break to the log.
func (l *TestLog) WriteLinef(format string, args ...interface{}) {
	l.Write(fmt.Sprintf(format, args...) + "\n")
}

// Test is a registered runnable unit of a [TestFixture].  A test with a
// data source is a group of row tests whose body is executed once per
// row.
type Test struct {
	fixture  *TestFixture
	index    int32
	name     string
	file     string
	line     int32
	metadata string
	expected reflect.Type
	source   DataSource
	body     func(*T, RowRef)

	assertCount int32
	log         Handle
}

// Name returns the name a test was registered with.
func (t *Test) Name() string { return t.name }

// Index returns a test's zero-based registration index in its fixture.
func (t *Test) Index() int { return int(t.index) }

// Fixture returns the fixture a test is registered to.
func (t *Test) Fixture() *TestFixture { return t.fixture }

// Metadata returns the serialized metadata of a test including the
// metadata of its fixture, e.g. "Category={Math},Author={Ann},".
func (t *Test) Metadata() string { return t.metadata }

// Source returns the file and line a test was registered at.
func (t *Test) Source() (string, int) { return t.file, int(t.line) }

// IsGroup returns true iff a test runs once per row of a data source.
func (t *Test) IsGroup() bool { return t.source != nil }

func (t *Test) strings() *StringTable { return &t.fixture.registry.strings }

// run executes the body of a test binding given row.  It is the only
// place where a panic of a test body is recovered, i.e. run always
// returns a result.
func (t *Test) run(row RowRef) (r TestResultData) {
	t.assertCount, t.log = 0, NoString
	start := time.Now()
	func() {
		defer func() {
			r.Outcome, r.Failure = t.conclude(recover())
		}()
		t.body(&T{Assert: &Assert{test: t}, Log: &TestLog{test: t},
			test: t}, row)
	}()
	r.DurationMilliseconds = int32(time.Since(start).Milliseconds())
	r.AssertCount = t.assertCount
	r.TestLog = t.log
	return r
}

// conclude classifies what a test body's execution has recovered.
func (t *Test) conclude(p interface{}) (Outcome, AssertionFailure) {
	if f, ok := p.(AssertionFailure); ok {
		return Failed, f
	}
	if t.expected != nil {
		return t.concludeExpected(p)
	}
	if p == nil {
		return Passed, AssertionFailure{}
	}
	fb := &failure{st: t.strings()}
	fb.f.Description = fb.st.Add(unhandledDsc)
	fb.f.Message = fb.st.Add(panicText(p))
	return Failed, fb.f
}

func (t *Test) concludeExpected(p interface{}) (Outcome, AssertionFailure) {
	if p != nil && t.expects(p) {
		return Passed, AssertionFailure{}
	}
	fb := &failure{st: t.strings()}
	fb.f.Expected = fb.labeled("", t.expected.String(), KindRaw)
	if p == nil {
		fb.f.Description = fb.st.Add(notThrownDsc)
		return Failed, fb.f
	}
	fb.f.Description = fb.st.Add(wrongTypeDsc)
	fb.f.Actual = fb.labeled("", fmt.Sprintf("%T", p), KindRaw)
	fb.f.Message = fb.st.Add(panicText(p))
	return Failed, fb.f
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// expects returns true iff given recovered value is of the expected
// panic type, implements it or wraps an error of that type.  A value
// whose Unwrap panics only matches by its own type.
func (t *Test) expects(p interface{}) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	pt := reflect.TypeOf(p)
	if pt == t.expected {
		return true
	}
	if t.expected.Kind() == reflect.Interface && pt.Implements(t.expected) {
		return true
	}
	err, ok := p.(error)
	if !ok {
		return false
	}
	if t.expected.Kind() != reflect.Interface &&
		!t.expected.Implements(errorType) {
		return false
	}
	return errors.As(err, reflect.New(t.expected).Interface())
}

// panicText renders a recovered value.  If its Error or String method
// panics, e.g. on a nil receiver, the value's type name is used.
func panicText(p interface{}) (txt string) {
	defer func() {
		if recover() != nil {
			txt = fmt.Sprintf("%T", p)
		}
	}()
	switch p := p.(type) {
	case error:
		return p.Error()
	case string:
		return p
	case fmt.Stringer:
		return p.String()
	}
	return fmt.Sprintf("%v", p)
}

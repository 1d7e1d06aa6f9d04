// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nativeunit

import (
	"fmt"
	"reflect"
	"strings"
)

// Descriptions of failed assertions.
const (
	failDsc      = "An assertion failed."
	trueDsc      = "Expected value to be true."
	falseDsc     = "Expected value to be false."
	truthDsc     = "Expected a boolean or an integer value."
	equalDsc     = "Expected values to be equal."
	notEqualDsc  = "Expected values to be non-equal."
	typesDsc     = "Expected values to be of the same type."
	greaterDsc   = "Expected left to be greater than right."
	greaterEqDsc = "Expected left to be greater than or equal to right."
	lessDsc      = "Expected left to be less than right."
	lessEqDsc    = "Expected left to be less than or equal to right."
	orderedDsc   = "Expected values of an ordered type."
	approxDsc    = "Expected values to be approximately equal to within a delta."
	numericDsc   = "Expected values of a numeric type."
)

// Labels of reported values.
const (
	unexpectedLbl = "Unexpected Value"
	actualLbl     = "Actual Value"
	leftLbl       = "Left Value"
	rightLbl      = "Right Value"
	deltaLbl      = "Delta"
	diffLbl       = "Diff"
	typesLbl      = "Types"
)

// Assert is a test's assertion framework.  Every assertion increments
// the test's assertion count, whether it holds or not.  A failing
// assertion records its failure in the registry's string table and
// raises it, i.e. the test body is left immediately and nothing after
// the failing assertion is executed.  The optional message arguments
// are rendered by fmt.Sprint and reported as the user message.
type Assert struct{ test *Test }

// failure builds an AssertionFailure whose texts are added to the
// string table of the test's registry.
type failure struct {
	st *StringTable
	f  AssertionFailure
}

func (a *Assert) failure(description string, msg []interface{}) *failure {
	st := a.test.strings()
	fb := &failure{st: st}
	fb.f.Description = st.Add(description)
	if len(msg) > 0 {
		fb.f.Message = st.Add(fmt.Sprint(msg...))
	}
	return fb
}

func (fb *failure) labeled(label, text string, kind ValueKind) LabeledValue {
	lv := LabeledValue{Value: fb.st.Add(text), Kind: kind}
	if label != "" {
		lv.Label = fb.st.Add(label)
	}
	return lv
}

func (fb *failure) expected(label string, v interface{}) *failure {
	text, kind := describe(v)
	fb.f.Expected = fb.labeled(label, text, kind)
	return fb
}

func (fb *failure) actual(label string, v interface{}) *failure {
	text, kind := describe(v)
	fb.f.Actual = fb.labeled(label, text, kind)
	return fb
}

// extra sets the first unset extra value; a third extra value is
// dropped.
func (fb *failure) extra(label, text string, kind ValueKind) *failure {
	switch {
	case fb.f.Extra0.IsZero():
		fb.f.Extra0 = fb.labeled(label, text, kind)
	case fb.f.Extra1.IsZero():
		fb.f.Extra1 = fb.labeled(label, text, kind)
	}
	return fb
}

// types reports values of different types under given labels and
// their type names, including those of more, as extra value.
func (fb *failure) types(
	el, al string, a, b interface{}, more ...interface{},
) *failure {
	tt := []string{fmt.Sprintf("%T", a), fmt.Sprintf("%T", b)}
	for _, v := range more {
		tt = append(tt, fmt.Sprintf("%T", v))
	}
	return fb.expected(el, a).actual(al, b).
		extra(typesLbl, strings.Join(tt, ", "), KindRaw)
}

func (fb *failure) raise() { panic(fb.f) }

func (a *Assert) count() { a.test.assertCount++ }

// Fail fails the test unconditionally.
func (a *Assert) Fail(message ...interface{}) {
	a.count()
	a.failure(failDsc, message).raise()
}

// truth interprets booleans, including named boolean types, and
// integers whereas zero is false.
func truth(v interface{}) (value, ok bool) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Bool {
		return rv.Bool(), true
	}
	switch n := normalize(v); n.class {
	case signedClass:
		return n.i != 0, true
	case unsignedClass:
		return n.u != 0, true
	}
	return false, false
}

// IsTrue fails the test iff given value is false or a zero integer.
// Values which are neither booleans nor integers fail as well.
func (a *Assert) IsTrue(value interface{}, message ...interface{}) {
	a.count()
	b, ok := truth(value)
	if !ok {
		a.failure(truthDsc, message).actual("", value).raise()
	}
	if !b {
		a.failure(trueDsc, message).actual("", false).raise()
	}
}

// IsFalse fails the test iff given value is true or a non-zero integer.
// Values which are neither booleans nor integers fail as well.
func (a *Assert) IsFalse(value interface{}, message ...interface{}) {
	a.count()
	b, ok := truth(value)
	if !ok {
		a.failure(truthDsc, message).actual("", value).raise()
	}
	if b {
		a.failure(falseDsc, message).actual("", true).raise()
	}
}

// AreEqual fails the test iff given values are not of the same type or
// not equal.  Numbers, booleans and strings are compared by ==, floats
// without any epsilon (see [Assert.AreApproximatelyEqual]), pointers
// by identity, user types by their Equal method if they have one and
// by go-cmp otherwise.  Failures of strings and user types report a
// diff of the values.
func (a *Assert) AreEqual(expected, actual interface{}, message ...interface{}) {
	a.count()
	if !sameType(expected, actual) {
		a.failure(typesDsc, message).
			types("", "", expected, actual).raise()
	}
	if equal(expected, actual) {
		return
	}
	fb := a.failure(equalDsc, message).
		expected("", expected).actual("", actual)
	if d := diff(expected, actual); d != "" {
		fb.extra(diffLbl, d, KindRaw)
	}
	fb.raise()
}

// AreNotEqual fails the test iff given values are equal in the sense
// of [Assert.AreEqual].  Values of different types are never equal.
func (a *Assert) AreNotEqual(unexpected, actual interface{}, message ...interface{}) {
	a.count()
	if !sameType(unexpected, actual) || !equal(unexpected, actual) {
		return
	}
	a.failure(notEqualDsc, message).
		expected(unexpectedLbl, unexpected).actual(actualLbl, actual).
		raise()
}

// AreEqualValues is the generic AreEqual for user types defining their
// own equality by an Equal method.  The values are reported as
// [Formattable] or raw values.
func AreEqualValues[V Comparable[V]](
	a *Assert, expected, actual V, message ...interface{},
) {
	a.count()
	if expected.Equal(actual) {
		return
	}
	a.failure(equalDsc, message).
		expected("", expected).actual("", actual).raise()
}

// AreNotEqualValues is the generic AreNotEqual for user types defining
// their own equality by an Equal method.
func AreNotEqualValues[V Comparable[V]](
	a *Assert, unexpected, actual V, message ...interface{},
) {
	a.count()
	if !unexpected.Equal(actual) {
		return
	}
	a.failure(notEqualDsc, message).
		expected(unexpectedLbl, unexpected).actual(actualLbl, actual).
		raise()
}

// GreaterThan fails the test unless left > right.  Equal values fail.
func (a *Assert) GreaterThan(left, right interface{}, message ...interface{}) {
	a.order(greaterDsc, left, right, message, func(c int) bool {
		return c > 0
	})
}

// GreaterThanOrEqualTo fails the test unless left >= right.  Equal
// values pass.
func (a *Assert) GreaterThanOrEqualTo(
	left, right interface{}, message ...interface{},
) {
	a.order(greaterEqDsc, left, right, message, func(c int) bool {
		return c >= 0
	})
}

// LessThan fails the test unless left < right.  Equal values fail.
func (a *Assert) LessThan(left, right interface{}, message ...interface{}) {
	a.order(lessDsc, left, right, message, func(c int) bool {
		return c < 0
	})
}

// LessThanOrEqualTo fails the test unless left <= right.  Equal values
// pass.
func (a *Assert) LessThanOrEqualTo(
	left, right interface{}, message ...interface{},
) {
	a.order(lessEqDsc, left, right, message, func(c int) bool {
		return c <= 0
	})
}

// order checks given predicate against the comparison of two values of
// the same integer, float, character or string type.  NaN never
// passes.
func (a *Assert) order(
	dsc string, left, right interface{}, msg []interface{},
	holds func(int) bool,
) {
	a.count()
	if !sameType(left, right) {
		a.failure(typesDsc, msg).
			types(leftLbl, rightLbl, left, right).raise()
	}
	l := normalize(left)
	if l.class == notOrdered {
		a.failure(orderedDsc, msg).
			expected(leftLbl, left).actual(rightLbl, right).raise()
	}
	c, ok := l.compare(normalize(right))
	if ok && holds(c) {
		return
	}
	a.failure(dsc, msg).
		expected(leftLbl, left).actual(rightLbl, right).raise()
}

// AreApproximatelyEqual fails the test unless |expected-actual| <=
// delta whereas all three values must be of the same integer, float or
// character type.  A difference equal to delta passes.  Integer
// differences are computed without overflow for the whole range of
// their types.  The failure reports delta as extra value.
func (a *Assert) AreApproximatelyEqual(
	expected, actual, delta interface{}, message ...interface{},
) {
	a.count()
	if !sameType(expected, actual, delta) {
		a.failure(typesDsc, message).
			types("", "", expected, actual, delta).raise()
	}
	e := normalize(expected)
	if e.class == notOrdered || e.class == stringClass {
		a.failure(numericDsc, message).
			expected("", expected).actual("", actual).raise()
	}
	if e.within(normalize(actual), normalize(delta)) {
		return
	}
	text, kind := describe(delta)
	a.failure(approxDsc, message).
		expected("", expected).actual("", actual).
		extra(deltaLbl, text, kind).raise()
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nativeunit

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/constraints"
)

// Char is a single character.  Go has no distinct character type,
// i.e. runes are int32 values; Char values are rendered and reported as
// characters.
type Char rune

// Formattable is implemented by user types which want to control how
// they are reported in an assertion failure.  Without it a user value
// is rendered by its String method or fmt's %+v verb and reported as
// KindRaw.
type Formattable interface {
	ValueText() (text string, kind ValueKind)
}

// Comparable is implemented by user types which define their own
// equality.  AreEqual and AreNotEqual use an Equal method of this shape
// on their own, see also [AreEqualValues].
type Comparable[V any] interface {
	Equal(V) bool
}

// describe renders given value for a failure record.
func describe(v interface{}) (string, ValueKind) {
	switch v := v.(type) {
	case nil:
		return "<nil>", KindRaw
	case Formattable:
		return v.ValueText()
	case Char:
		return string(rune(v)), KindChar
	case bool:
		return strconv.FormatBool(v), KindBoolean
	case string:
		return v, KindString
	case uint8:
		return strconv.FormatUint(uint64(v), 10), KindByte
	case int8:
		return strconv.FormatInt(int64(v), 10), KindInt16
	case int16:
		return strconv.FormatInt(int64(v), 10), KindInt16
	case uint16:
		return strconv.FormatUint(uint64(v), 10), KindUInt16
	case int32:
		return strconv.FormatInt(int64(v), 10), KindInt32
	case uint32:
		return strconv.FormatUint(uint64(v), 10), KindUInt32
	case int:
		return strconv.FormatInt(int64(v), 10), KindInt64
	case int64:
		return strconv.FormatInt(v, 10), KindInt64
	case uint:
		return strconv.FormatUint(uint64(v), 10), KindUInt64
	case uint64:
		return strconv.FormatUint(v, 10), KindUInt64
	case uintptr:
		return strconv.FormatUint(uint64(v), 10), KindUInt64
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), KindSingle
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), KindDouble
	}
	if isReference(v) {
		return fmt.Sprintf("%p", v), KindRaw
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), KindRaw
	}
	return fmt.Sprintf("%+v", v), KindRaw
}

func isReference(v interface{}) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Pointer, reflect.UnsafePointer:
		return true
	}
	return false
}

func sameType(vv ...interface{}) bool {
	for _, v := range vv[1:] {
		if reflect.TypeOf(v) != reflect.TypeOf(vv[0]) {
			return false
		}
	}
	return true
}

// exportAll lets go-cmp compare unexported fields of user types.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// equal compares two values of the same type: pointers by identity,
// comparable values without Equal method by == (floats without any
// epsilon), everything else by go-cmp which honors Equal methods of
// user types.
func equal(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == b
	}
	if isReference(a) {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	if t := reflect.TypeOf(a); t.Comparable() {
		if _, hasEqual := t.MethodByName("Equal"); !hasEqual {
			return a == b
		}
	}
	return cmp.Equal(a, b, exportAll)
}

// diff returns go-cmp's report of the differences of two raw values or
// the empty string if they are primitives or strings.
func diff(a, b interface{}) string {
	if a == nil || b == nil || isReference(a) {
		return ""
	}
	if _, kind := describe(a); kind != KindRaw && kind != KindString {
		return ""
	}
	return cmp.Diff(a, b, exportAll)
}

// number is a value normalized for ordering and delta computations.
type number struct {
	class numberClass
	i     int64
	u     uint64
	f     float64
	s     string
}

type numberClass int

const (
	notOrdered numberClass = iota
	signedClass
	unsignedClass
	floatClass
	stringClass
)

// normalize maps a value of an ordered kind (including named types of
// such kinds like Char) to its number representation.
func normalize(v interface{}) number {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64:
		return number{class: signedClass, i: rv.Int()}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return number{class: unsignedClass, u: rv.Uint()}
	case reflect.Float32, reflect.Float64:
		return number{class: floatClass, f: rv.Float()}
	case reflect.String:
		return number{class: stringClass, s: rv.String()}
	}
	return number{}
}

// compare returns -1, 0 or 1 if a is less, equal or greater than b; ok
// is false if the values are not comparable, e.g. a NaN is involved.
func compare[N constraints.Ordered](a, b N) (int, bool) {
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	case a == b:
		return 0, true
	}
	return 0, false
}

func (n number) compare(o number) (int, bool) {
	switch n.class {
	case signedClass:
		return compare(n.i, o.i)
	case unsignedClass:
		return compare(n.u, o.u)
	case floatClass:
		return compare(n.f, o.f)
	case stringClass:
		return compare(n.s, o.s)
	}
	return 0, false
}

// absDiffSigned returns |a-b| without overflowing: for a >= b the
// unsigned wrap-around subtraction yields the exact difference.
func absDiffSigned[N constraints.Signed](a, b N) uint64 {
	if a >= b {
		return uint64(int64(a)) - uint64(int64(b))
	}
	return uint64(int64(b)) - uint64(int64(a))
}

func absDiffUnsigned[N constraints.Unsigned](a, b N) uint64 {
	if a >= b {
		return uint64(a - b)
	}
	return uint64(b - a)
}

func absDiffFloat[N constraints.Float](a, b N) float64 {
	return math.Abs(float64(a) - float64(b))
}

// within returns true iff |n-o| <= delta.  Equality to delta passes.
// A negative delta never passes.
func (n number) within(o, delta number) bool {
	switch n.class {
	case signedClass:
		if delta.i < 0 {
			return false
		}
		return absDiffSigned(n.i, o.i) <= uint64(delta.i)
	case unsignedClass:
		return absDiffUnsigned(n.u, o.u) <= delta.u
	case floatClass:
		return absDiffFloat(n.f, o.f) <= delta.f
	}
	return false
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nativeunit

// The records of this file cross the boundary to a registry's caller.
// They are fixed-layout structures of integers only: texts are
// referenced by [Handle]s, tests by 1-based slots of a [Position].

// ValueKind tells a caller how to parse the text of a labeled value.
type ValueKind int32

const (
	// KindRaw is a user type's textual representation which is
	// displayed as is.
	KindRaw ValueKind = iota

	// KindString is a string which may be diffed against its
	// counterpart.
	KindString

	// KindBoolean is "true" or "false".
	KindBoolean

	// KindChar is a single character.
	KindChar

	KindByte
	KindInt16
	KindUInt16
	KindInt32
	KindUInt32
	KindInt64
	KindUInt64
	KindSingle
	KindDouble
)

var kindNames = [...]string{
	"Raw", "String", "Boolean", "Char", "Byte", "Int16", "UInt16",
	"Int32", "UInt32", "Int64", "UInt64", "Single", "Double",
}

func (k ValueKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// LabeledValue is a value of an assertion failure.  A zero Label
// leaves the labeling to the caller, e.g. "Expected Value".
type LabeledValue struct {
	Label Handle
	Value Handle
	Kind  ValueKind
}

// IsZero returns true iff given labeled value carries no value.
func (lv LabeledValue) IsZero() bool { return lv.Value == NoString }

// AssertionFailure describes a check which didn't hold.  It is raised
// by the assertions of a test's [Assert] and recovered at the test's
// execution boundary.  All referenced texts are owned by the registry's
// string table.
type AssertionFailure struct {
	Description Handle
	Message     Handle
	Expected    LabeledValue
	Actual      LabeledValue
	Extra0      LabeledValue
	Extra1      LabeledValue
}

// Error makes an AssertionFailure an error, i.e. it may be raised by
// panic and matched by errors.As.
func (f AssertionFailure) Error() string {
	return "nativeunit: assertion failure"
}

// Outcome of a test run.
type Outcome int32

const (
	Inconclusive Outcome = iota
	Passed
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	default:
		return "inconclusive"
	}
}

// TestResultData is the result of a single test run.  Failure is only
// meaningful if the outcome is Failed.
type TestResultData struct {
	Outcome              Outcome
	AssertCount          int32
	Failure              AssertionFailure
	TestLog              Handle
	DurationMilliseconds int32
}

// TestKind classifies an enumerated node.
type TestKind int32

const (
	KindFixture TestKind = iota
	KindTest
	KindGroup
	KindRowTest
)

func (k TestKind) String() string {
	switch k {
	case KindFixture:
		return "fixture"
	case KindTest:
		return "test"
	case KindGroup:
		return "group"
	case KindRowTest:
		return "row"
	default:
		return "unknown"
	}
}

// Position is a caller's cursor into a registry's fixture, test and row
// nesting.  Its fields are 1-based slots whereas 0 is null.  A null
// Fixture marks the end of an enumeration.  A caller must preserve a
// Position between two protocol calls and must not alter it.
type Position struct {
	Fixture int32
	Test    int32
	Row     RowRef
}

// Done returns true iff given position is past the last node.
func (p Position) Done() bool { return p.Fixture == 0 }

// TestInfoData describes an enumerated node.  All handles are fresh
// copies owned by the caller who should release them.  Fixture nodes
// carry no file name and line number.  Position is the snapshot which
// can be passed to RunTest to execute the node.
type TestInfoData struct {
	Name       Handle
	Index      int32
	Kind       TestKind
	FileName   Handle
	LineNumber int32
	Position   Position
	Metadata   Handle
}

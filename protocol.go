// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nativeunit

// Version of the enumeration and execution protocol.
const Version = 1

// GetVersion returns the protocol version a registry's caller can check
// its compatibility against.
func (r *Registry) GetVersion() int { return Version }

// GetHeadTest returns the position of the first node of a registry's
// enumeration.  The position is done if no fixture is registered.
func (r *Registry) GetHeadTest() Position {
	if len(r.fixtures) == 0 {
		return Position{}
	}
	return Position{Fixture: 1}
}

// GetNextTest describes the node at given position and advances the
// position by one step of a pre-order walk: a fixture's node is
// followed by its tests' nodes.  A test without data source is a single
// test node while a data test is a group node followed by one row test
// node per row.  GetNextTest returns false iff given position is done.
// A [LookupError] is returned for a position which is not the result
// of GetHeadTest and subsequent GetNextTest calls.
//
// All handles of the returned info are fresh copies owned by the
// caller.  Fixture nodes have no source file and line.  Row test nodes
// have their test's name and source; their index is the zero-based
// ordinal of their row.  The returned info's position is the snapshot
// of the described node which can be passed to [Registry.RunTest].
//
// Nodes registered during an enumeration are enumerated if the walk
// has not yet passed their place.
func (r *Registry) GetNextTest(p *Position) (TestInfoData, bool, error) {
	if p.Done() {
		return TestInfoData{}, false, nil
	}
	f, t, err := r.resolve(*p)
	if err != nil {
		return TestInfoData{}, false, err
	}
	if t == nil {
		*p = r.following(*p)
		return TestInfoData{
			Name:     r.strings.Add(f.name),
			Index:    f.index,
			Kind:     KindFixture,
			Position: Position{Fixture: f.index + 1},
			Metadata: r.metadata(f.metadata),
		}, true, nil
	}
	info := TestInfoData{
		Name:       r.strings.Add(t.name),
		Index:      t.index,
		Kind:       KindTest,
		FileName:   r.strings.Add(t.file),
		LineNumber: t.line,
		Position:   *p,
		Metadata:   r.metadata(t.metadata),
	}
	switch {
	case t.source == nil:
		*p = r.following(*p)
	case p.Row == NoRow:
		info.Kind = KindGroup
		if head := t.source.Head(); head != NoRow {
			p.Row = head
		} else {
			*p = r.following(*p)
		}
	default:
		ordinal, ok := rowOrdinal(t.source, p.Row)
		if !ok {
			return TestInfoData{}, false, lookupErr(SubjectRow, p.Row)
		}
		info.Kind, info.Index = KindRowTest, ordinal
		if next := t.source.NextRow(p.Row); next != NoRow {
			p.Row = next
		} else {
			*p = r.following(*p)
		}
	}
	return info, true, nil
}

// following returns the position of the test after the test at given
// position or, if there is none, the position of the next fixture.  For
// a fixture's position it is the fixture's first test.  Empty fixtures
// are not descended into.
func (r *Registry) following(p Position) Position {
	f := r.fixtures[p.Fixture-1]
	if int(p.Test) < len(f.tests) {
		return Position{Fixture: p.Fixture, Test: p.Test + 1}
	}
	if int(p.Fixture) < len(r.fixtures) {
		return Position{Fixture: p.Fixture + 1}
	}
	return Position{}
}

// rowOrdinal returns the zero-based ordinal of given row in given
// source; ok is false if the row is not reachable from the source's
// head.
func rowOrdinal(src DataSource, row RowRef) (_ int32, ok bool) {
	var n int32
	for r := src.Head(); r != NoRow; r = src.NextRow(r) {
		if r == row {
			return n, true
		}
		n++
	}
	return 0, false
}

func (r *Registry) metadata(md string) Handle {
	if md == "" {
		return NoString
	}
	return r.strings.Add(md)
}

// resolve returns the fixture and the test a position references.  The
// test is nil for a fixture's position.
func (r *Registry) resolve(p Position) (*TestFixture, *Test, error) {
	if p.Fixture <= 0 || int(p.Fixture) > len(r.fixtures) {
		return nil, nil, lookupErr(SubjectPosition, p)
	}
	f := r.fixtures[p.Fixture-1]
	if p.Test == 0 {
		if p.Row != NoRow {
			return nil, nil, lookupErr(SubjectPosition, p)
		}
		return f, nil, nil
	}
	if p.Test < 0 || int(p.Test) > len(f.tests) {
		return nil, nil, lookupErr(SubjectPosition, p)
	}
	t := f.tests[p.Test-1]
	if p.Row != NoRow && t.source == nil {
		return nil, nil, lookupErr(SubjectPosition, p)
	}
	return f, t, nil
}

// RunTest executes the test at given position binding the position's
// row if the test is a data test.  Whatever the test's body does is
// reported by the returned result which references texts of the
// registry's string table.  A [LookupError] is returned if given
// position does not denote a test or a row test, e.g. a fixture's
// position or a row which is not in the test's data source.  A group's
// position is not executed: its result is Inconclusive.
func (r *Registry) RunTest(p Position) (TestResultData, error) {
	_, t, err := r.resolve(p)
	if err != nil {
		return TestResultData{}, err
	}
	if t == nil {
		return TestResultData{}, lookupErr(SubjectPosition, p)
	}
	if t.source != nil {
		if p.Row == NoRow {
			return TestResultData{Outcome: Inconclusive}, nil
		}
		if _, ok := rowOrdinal(t.source, p.Row); !ok {
			return TestResultData{}, lookupErr(SubjectRow, p.Row)
		}
	}
	return t.run(p.Row), nil
}

// GetString returns the text of given handle.  A [LookupError] is
// returned for a released or never issued handle.
func (r *Registry) GetString(h Handle) (string, error) {
	return r.strings.Get(h)
}

// ReleaseString releases the text of given handle.  Unknown handles
// are ignored.
func (r *Registry) ReleaseString(h Handle) { r.strings.Remove(h) }

// ReleaseAllStrings releases all texts handed out so far.  Registered
// fixtures and tests are not affected.
func (r *Registry) ReleaseAllStrings() { r.strings.RemoveAll() }

// GetVersion returns the protocol version of the default registry.
func GetVersion() int { return defaultRegistry.GetVersion() }

// GetHeadTest returns the head position of the default registry.
func GetHeadTest() Position { return defaultRegistry.GetHeadTest() }

// GetNextTest advances given position of the default registry, see
// [Registry.GetNextTest].
func GetNextTest(p *Position) (TestInfoData, bool, error) {
	return defaultRegistry.GetNextTest(p)
}

// RunTest executes the test at given position of the default registry,
// see [Registry.RunTest].
func RunTest(p Position) (TestResultData, error) {
	return defaultRegistry.RunTest(p)
}

// GetString returns the text of given handle of the default registry.
func GetString(h Handle) (string, error) { return defaultRegistry.GetString(h) }

// ReleaseString releases given handle of the default registry.
func ReleaseString(h Handle) { defaultRegistry.ReleaseString(h) }

// ReleaseAllStrings releases all handles of the default registry.
func ReleaseAllStrings() { defaultRegistry.ReleaseAllStrings() }

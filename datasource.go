// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nativeunit

import (
	"golang.org/x/exp/slices"
)

// RowRef references a row of a [DataSource].  The zero RowRef is the
// absent row.
type RowRef int32

// NoRow is the absent row.
const NoRow RowRef = 0

// DataSource is a sequence of rows driving a data test.  A data source
// is walked from its head row to the row whose next row is NoRow.
type DataSource interface {
	Head() RowRef
	NextRow(RowRef) RowRef
}

// RowSource is a DataSource whose rows are of type R.
type RowSource[R any] interface {
	DataSource

	// At returns the row referenced by given row reference; ok is
	// false if it references no row of the source.
	At(RowRef) (row R, ok bool)
}

// Rows is a RowSource holding its rows in declaration order.
type Rows[R any] struct{ rows []R }

// NewRows returns a row source holding a copy of given rows:
//
//	type sum struct{ a, b, want int }
//
//	var _ = nativeunit.DataTest(arithmetic, "Sums",
//		nativeunit.NewRows(sum{1, 2, 3}, sum{2, 2, 4}),
//		func(t *nativeunit.T, r sum) {
//			t.Assert.AreEqual(r.want, r.a+r.b)
//		})
func NewRows[R any](rows ...R) *Rows[R] {
	return &Rows[R]{rows: slices.Clone(rows)}
}

// Len returns the number of rows.
func (rr *Rows[R]) Len() int { return len(rr.rows) }

// Head returns the first row or NoRow if there are no rows.
func (rr *Rows[R]) Head() RowRef {
	if len(rr.rows) == 0 {
		return NoRow
	}
	return 1
}

// NextRow returns the row following given row or NoRow if given row is
// the last or not a row of rr.
func (rr *Rows[R]) NextRow(r RowRef) RowRef {
	if r <= NoRow || int(r) >= len(rr.rows) {
		return NoRow
	}
	return r + 1
}

// At returns a copy of the referenced row.
func (rr *Rows[R]) At(r RowRef) (R, bool) {
	if r <= NoRow || int(r) > len(rr.rows) {
		var zero R
		return zero, false
	}
	return rr.rows[r-1], true
}

// DataTest registers to given fixture a test whose body runs once per
// row of given source.  Before each run the referenced row is bound to
// the body's row argument.  The caller's source file and line are
// recorded as the test's source.  It panics if given source or body is
// nil.
func DataTest[R any](
	f *TestFixture, name string, src RowSource[R], body func(*T, R),
	dd ...Decorator,
) *Test {
	if src == nil || body == nil {
		panic("nativeunit: data test " + name + ": nil source or body")
	}
	return f.add(name, src, dd, func(t *T, r RowRef) {
		row, ok := src.At(r)
		if !ok {
			panic(lookupErr(SubjectRow, r))
		}
		body(t, row)
	})
}

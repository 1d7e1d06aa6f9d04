// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nativeunit

import (
	"fmt"
	"strings"
)

// Handle identifies a text of a [StringTable].  The zero Handle is the
// absent text.
type Handle int32

// NoString is the absent text.
const NoString Handle = 0

// StringTable owns texts which are handed out to a caller as handles.
// A caller pulls a text by its handle and releases it explicitly once
// it is done with it.  Handles are assigned monotonically increasing
// starting at 1 and are never reused during a table's lifetime, not
// even after [StringTable.RemoveAll].  A StringTable is not safe for
// concurrent use.  The zero value is ready to use.
type StringTable struct {
	entries map[Handle]*strings.Builder
	last    Handle
}

// Add copies given text into the table and returns its new handle.
// The empty string is a text like any other, i.e. Add never returns
// NoString.
func (st *StringTable) Add(text string) Handle {
	if st.entries == nil {
		st.entries = map[Handle]*strings.Builder{}
	}
	st.last++
	b := &strings.Builder{}
	b.WriteString(text)
	st.entries[st.last] = b
	return st.last
}

// Addf formats given arguments leveraging fmt.Sprintf and adds the
// result.
func (st *StringTable) Addf(format string, args ...interface{}) Handle {
	return st.Add(fmt.Sprintf(format, args...))
}

// Append appends given text to the text of given handle and returns
// the handle.  If given handle is NoString or unknown a new entry is
// added and its handle returned.
func (st *StringTable) Append(h Handle, text string) Handle {
	b, ok := st.entries[h]
	if h == NoString || !ok {
		return st.Add(text)
	}
	b.WriteString(text)
	return h
}

// Get returns the text of given handle.  A [LookupError] is returned
// for NoString, a released or a never issued handle.
func (st *StringTable) Get(h Handle) (string, error) {
	b, ok := st.entries[h]
	if !ok {
		return "", lookupErr(SubjectString, h)
	}
	return b.String(), nil
}

// Has returns true iff given handle is alive.
func (st *StringTable) Has(h Handle) bool {
	_, ok := st.entries[h]
	return ok
}

// Remove releases the text of given handle.  Unknown handles are
// ignored.
func (st *StringTable) Remove(h Handle) {
	delete(st.entries, h)
}

// RemoveAll releases all texts.  Previously issued handles become
// invalid while new handles continue the numbering.
func (st *StringTable) RemoveAll() {
	st.entries = nil
}

// Len returns the number of alive texts.
func (st *StringTable) Len() int { return len(st.entries) }

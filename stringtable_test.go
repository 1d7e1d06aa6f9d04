// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nativeunit_test

import (
	"errors"
	"testing"

	"github.com/slukits/nativeunit"
)

func Test_a_string_table_returns_added_text_by_its_handle(t *testing.T) {
	t.Parallel()
	st := &nativeunit.StringTable{}
	h := st.Add("hello")
	got, err := st.Get(h)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != "hello" {
		t.Errorf("expected text %q; got %q", "hello", got)
	}
}

func Test_a_string_table_issues_handles_monotonically_from_one(
	t *testing.T,
) {
	t.Parallel()
	st := &nativeunit.StringTable{}
	for i := 1; i <= 3; i++ {
		if h := st.Add(""); h != nativeunit.Handle(i) {
			t.Errorf("expected handle %d; got %d", i, h)
		}
	}
}

func Test_a_string_table_fails_to_get_a_removed_text(t *testing.T) {
	t.Parallel()
	st := &nativeunit.StringTable{}
	h := st.Add("hello")
	st.Remove(h)
	_, err := st.Get(h)
	if !errors.Is(err, nativeunit.ErrLookup) {
		t.Fatalf("expected lookup error; got %v", err)
	}
	var le *nativeunit.LookupError
	if !errors.As(err, &le) || le.Subject != nativeunit.SubjectString {
		t.Errorf("expected string handle lookup error; got %v", err)
	}
}

func Test_a_string_table_fails_to_get_the_absent_text(t *testing.T) {
	t.Parallel()
	st := &nativeunit.StringTable{}
	if _, err := st.Get(nativeunit.NoString); err == nil {
		t.Error("expected lookup error for absent text")
	}
}

func Test_a_string_table_ignores_the_removal_of_unknown_handles(
	t *testing.T,
) {
	t.Parallel()
	st := &nativeunit.StringTable{}
	h := st.Add("hello")
	st.Remove(h + 1)
	st.Remove(h)
	st.Remove(h)
	if st.Len() != 0 {
		t.Errorf("expected empty table; got %d entries", st.Len())
	}
}

func Test_a_string_table_invalidates_all_handles_on_remove_all(
	t *testing.T,
) {
	t.Parallel()
	st := &nativeunit.StringTable{}
	hh := []nativeunit.Handle{st.Add("a"), st.Add("b"), st.Add("c")}
	st.RemoveAll()
	for _, h := range hh {
		if st.Has(h) {
			t.Errorf("expected handle %d to be released", h)
		}
	}
	if h := st.Add("d"); h <= hh[len(hh)-1] {
		t.Errorf("expected handle greater than %d; got %d",
			hh[len(hh)-1], h)
	}
}

func Test_a_string_table_appends_to_an_existing_text(t *testing.T) {
	t.Parallel()
	st := &nativeunit.StringTable{}
	h := st.Append(nativeunit.NoString, "a")
	if h == nativeunit.NoString {
		t.Fatal("expected appending to the absent text to add a text")
	}
	if got := st.Append(h, "b"); got != h {
		t.Errorf("expected handle %d; got %d", h, got)
	}
	if got, _ := st.Get(h); got != "ab" {
		t.Errorf("expected text %q; got %q", "ab", got)
	}
}

func Test_a_string_table_formats_added_text(t *testing.T) {
	t.Parallel()
	st := &nativeunit.StringTable{}
	if got, _ := st.Get(st.Addf("%d=%s", 4, "four")); got != "4=four" {
		t.Errorf("expected text %q; got %q", "4=four", got)
	}
}

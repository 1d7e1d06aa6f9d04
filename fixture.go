// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nativeunit

import (
	"runtime"

	"golang.org/x/exp/slices"
)

// Registry holds the fixtures of a test binary in registration order
// together with the string table of the texts handed out to the
// registry's caller.  A Registry is not safe for concurrent use: it is
// populated by package initializers and then driven by a single caller
// through its enumeration and execution protocol.
type Registry struct {
	fixtures []*TestFixture
	strings  StringTable
}

// NewRegistry returns a new empty registry.  Most test binaries use the
// default registry instead, see [Default].
func NewRegistry() *Registry { return &Registry{} }

var defaultRegistry = NewRegistry()

// Default returns the process wide registry the package level
// [Fixture] function registers to.  It exists before any package
// initializer of an importing package runs.
func Default() *Registry { return defaultRegistry }

// Fixture registers a new fixture with given name and decorators to the
// default registry.  It is meant to initialize a package variable:
//
//	var arithmetic = nativeunit.Fixture("Arithmetic",
//		nativeunit.Category("Math"))
func Fixture(name string, dd ...Decorator) *TestFixture {
	return defaultRegistry.Fixture(name, dd...)
}

// Fixture appends a new fixture with given name and decorators to the
// registry.
func (r *Registry) Fixture(name string, dd ...Decorator) *TestFixture {
	f := &TestFixture{
		registry: r,
		index:    int32(len(r.fixtures)),
		name:     name,
		metadata: decorate("", dd).metadata.String(),
	}
	r.fixtures = append(r.fixtures, f)
	return f
}

// Len returns the number of registered fixtures.
func (r *Registry) Len() int { return len(r.fixtures) }

// Fixtures returns the registered fixtures in registration order.
func (r *Registry) Fixtures() []*TestFixture { return slices.Clone(r.fixtures) }

// Reset removes all fixtures and releases all texts of a registry.
// Handles issued before a reset are not reissued after it.
func (r *Registry) Reset() {
	r.fixtures = nil
	r.strings.RemoveAll()
}

// TestFixture is a named group of tests.  Its tests are kept in
// registration order.
type TestFixture struct {
	registry *Registry
	index    int32
	name     string
	metadata string
	tests    []*Test
}

// Name returns the name a fixture was registered with.
func (f *TestFixture) Name() string { return f.name }

// Index returns a fixture's zero-based registration index.
func (f *TestFixture) Index() int { return int(f.index) }

// Metadata returns the serialized metadata of a fixture.
func (f *TestFixture) Metadata() string { return f.metadata }

// Len returns the number of tests registered to a fixture.
func (f *TestFixture) Len() int { return len(f.tests) }

// Tests returns the tests of a fixture in registration order.
func (f *TestFixture) Tests() []*Test { return slices.Clone(f.tests) }

// Test registers a test with given name, body and decorators.  The
// caller's source file and line are recorded as the test's source.  It
// panics if given body is nil.
func (f *TestFixture) Test(
	name string, body func(*T), dd ...Decorator,
) *Test {
	if body == nil {
		panic("nativeunit: test " + name + ": nil body")
	}
	return f.add(name, nil, dd, func(t *T, _ RowRef) { body(t) })
}

// add must be called directly from a registering function to find the
// source of its caller.
func (f *TestFixture) add(
	name string, src DataSource, dd []Decorator, body func(*T, RowRef),
) *Test {
	_, file, line, _ := runtime.Caller(2)
	d := decorate(f.metadata, dd)
	t := &Test{
		fixture:  f,
		index:    int32(len(f.tests)),
		name:     name,
		file:     file,
		line:     int32(line),
		metadata: d.metadata.String(),
		expected: d.expected,
		source:   src,
		body:     body,
	}
	f.tests = append(f.tests, t)
	return t
}

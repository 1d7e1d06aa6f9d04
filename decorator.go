// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nativeunit

import (
	"fmt"
	"reflect"
	"strings"
)

// A Decorator annotates a fixture or a test at its registration.
type Decorator func(*decoration)

type decoration struct {
	metadata strings.Builder
	expected reflect.Type
}

func decorate(prototype string, dd []Decorator) *decoration {
	d := &decoration{}
	d.metadata.WriteString(prototype)
	for _, dec := range dd {
		dec(d)
	}
	return d
}

// Metadata attaches given key/value pair to a fixture or test.  The
// pairs are serialized in the order of their decorators as
// "key={value},".  A test's metadata starts with the metadata of its
// fixture.
func Metadata(key, value string) Decorator {
	return func(d *decoration) {
		fmt.Fprintf(&d.metadata, "%s={%s},", key, value)
	}
}

// Category attaches a category to a fixture or test.
func Category(name string) Decorator { return Metadata("Category", name) }

// Author attaches an author's name to a fixture or test.
func Author(name string) Decorator { return Metadata("Author", name) }

// Description attaches a description to a fixture or test.
func Description(text string) Decorator {
	return Metadata("Description", text)
}

// ExpectedPanic declares that a test's body is expected to panic with a
// value of type E.  The test passes iff it panics with a value of type
// E, a value implementing E if E is an interface or an error wrapping
// an E in the sense of errors.As.  It fails if the body returns
// normally or panics with a different type.  A failing assertion fails
// the test as usual.  ExpectedPanic is ignored on fixtures.
//
//	var _ = fx.Test("Rejects", func(t *nativeunit.T) {
//		parse("}")
//	}, nativeunit.ExpectedPanic[*SyntaxError]())
func ExpectedPanic[E any]() Decorator {
	return func(d *decoration) {
		d.expected = reflect.TypeOf((*E)(nil)).Elem()
	}
}

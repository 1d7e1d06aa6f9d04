// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package nativeunit is a unit-testing micro-framework whose tests are
// registered when a test binary or plugin is loaded and are walked and
// executed by an external runner one node at a time.
//
// Fixtures and tests register themselves from package variables:
//
//	import "github.com/slukits/nativeunit"
//
//	var arithmetic = nativeunit.Fixture("Arithmetic",
//		nativeunit.Category("Math"))
//
//	var _ = arithmetic.Test("AddsCorrectly", func(t *nativeunit.T) {
//		t.Assert.AreEqual(4, 2+2)
//		t.Assert.AreEqual(5, 2+2, "two and two make five")
//	})
//
// A data test runs its body once per row of a [DataSource], see
// [DataTest] and [NewRows].  A test decorated by [ExpectedPanic] passes
// iff its body panics with the expected type.
//
// A test's [Assert] counts each assertion and leaves the test body on
// the first failing one.  The test's execution boundary recovers the
// failure and any other panic of the body, i.e. running a test never
// crashes the runner.
//
// A runner walks a [Registry], [Default] by default, through its
// enumeration and execution protocol:
//
//	p := reg.GetHeadTest()
//	for {
//		info, ok, err := reg.GetNextTest(&p)
//		if err != nil || !ok {
//			break
//		}
//		if info.Kind == nativeunit.KindTest ||
//			info.Kind == nativeunit.KindRowTest {
//			result, _ := reg.RunTest(info.Position)
//			// evaluate result
//		}
//	}
//	reg.ReleaseAllStrings()
//
// The protocol's records are fixed-layout structures of integers which
// reference texts by [Handle]s of the registry's [StringTable].  A
// runner pulls a text by [Registry.GetString] and releases it by
// [Registry.ReleaseString] or all texts at once by
// [Registry.ReleaseAllStrings].  Neither registries nor string tables
// are safe for concurrent use and a test body which never returns
// blocks its runner forever.  The package
// github.com/slukits/nativeunit/pkg/report provides a complete runner.
package nativeunit

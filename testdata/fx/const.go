// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fx

// Names of the sample fixtures and tests.
const (
	Arithmetic    = "Arithmetic"
	AddsCorrectly = "AddsCorrectly"
	Subtracts     = "Subtracts"
	Empty         = "Empty"
	Rows          = "Rows"
	Sums          = "Sums"
	None          = "None"
	Panics        = "Panics"
	Expected      = "Expected"
	Unexpected    = "Unexpected"
	NotThrown     = "NotThrown"
)

// Texts the sample tests produce.
const (
	SubtractsLog  = "subtracting"
	UnexpectedMsg = "boom"
)

// What a runner observes running all sample tests.
const (
	// Nodes is the number of enumerated nodes.
	Nodes = 14

	// Runnable is the number of test and row test nodes.
	Runnable = 8

	// Failing is the number of failing runnable nodes.
	Failing = 4
)

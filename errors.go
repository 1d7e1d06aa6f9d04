// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nativeunit

import (
	"errors"
	"fmt"
)

// ErrLookup is wrapped by every [LookupError], i.e. errors.Is(err,
// ErrLookup) reports a protocol violation of a registry's caller.
var ErrLookup = errors.New("nativeunit: lookup")

// Subjects of a LookupError.
const (
	SubjectString   = "string handle"
	SubjectPosition = "position"
	SubjectRow      = "data row"
)

// A LookupError is returned if a caller of the enumeration and
// execution protocol asks for something which doesn't exist (anymore),
// e.g. the text of a released string handle or the execution of a
// position not denoting a test.  It indicates broken bookkeeping on the
// caller's side and is the only error class leaving the protocol.
type LookupError struct {
	Subject string
	Key     string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s: unknown %s: %s", ErrLookup, e.Subject, e.Key)
}

// Unwrap makes errors.Is(err, ErrLookup) true for any LookupError.
func (e *LookupError) Unwrap() error { return ErrLookup }

func lookupErr(subject string, key interface{}) *LookupError {
	return &LookupError{Subject: subject, Key: fmt.Sprint(key)}
}

// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nativeunit

// FailDsc is the description of an unconditional failure.
const FailDsc = failDsc

// TrueDsc is the description of a failed IsTrue assertion.
const TrueDsc = trueDsc

// FalseDsc is the description of a failed IsFalse assertion.
const FalseDsc = falseDsc

// TruthDsc is the description of a non boolean IsTrue/IsFalse value.
const TruthDsc = truthDsc

// EqualDsc is the description of a failed AreEqual assertion.
const EqualDsc = equalDsc

// NotEqualDsc is the description of a failed AreNotEqual assertion.
const NotEqualDsc = notEqualDsc

// TypesDsc is the description of values with different types.
const TypesDsc = typesDsc

// GreaterDsc is the description of a failed GreaterThan assertion.
const GreaterDsc = greaterDsc

// GreaterEqDsc is the description of a failed GreaterThanOrEqualTo.
const GreaterEqDsc = greaterEqDsc

// LessDsc is the description of a failed LessThan assertion.
const LessDsc = lessDsc

// LessEqDsc is the description of a failed LessThanOrEqualTo.
const LessEqDsc = lessEqDsc

// OrderedDsc is the description of values without ordering.
const OrderedDsc = orderedDsc

// ApproxDsc is the description of a failed AreApproximatelyEqual.
const ApproxDsc = approxDsc

// NumericDsc is the description of non numeric approximated values.
const NumericDsc = numericDsc

// UnhandledDsc is the description of an unexpected panic.
const UnhandledDsc = unhandledDsc

// NotThrownDsc is the description of a missing expected panic.
const NotThrownDsc = notThrownDsc

// WrongTypeDsc is the description of an expected panic's wrong type.
const WrongTypeDsc = wrongTypeDsc

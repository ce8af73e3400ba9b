// Copyright PolyLab Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package poly

import "fmt"

// Coefficient captures the minimal capability set a scalar type must provide
// for the polynomial machinery to operate on it.  The type parameter is
// self-referential, meaning concrete instances have the form "C Coefficient[C]"
// where C is the concrete scalar type.  Observe that the additive identity of
// the domain must coincide with the Go zero value of C, as polynomials rely on
// this when padding coefficient sequences.
type Coefficient[C any] interface {
	fmt.Stringer
	// Add y onto this coefficient, returning the result.
	Add(y C) C
	// Sub y from this coefficient, returning the result.
	Sub(y C) C
	// Mul this coefficient by y, returning the result.
	Mul(y C) C
	// Neg returns the additive inverse of this coefficient.
	Neg() C
	// Check whether this coefficient is the additive identity (or not).
	IsZero() bool
	// Check whether this coefficient is the multiplicative identity (or not).
	IsOne() bool
	// IsNegative determines whether the textual form of this coefficient
	// carries a leading minus sign.  Domains without a natural order (e.g.
	// complex numbers) always report false.
	IsNegative() bool
	// Equal determines whether this coefficient represents the same value as
	// another.
	Equal(y C) bool
	// One returns the multiplicative identity of the domain.  This must be
	// callable on the zero value of C.
	One() C
	// SetString parses the canonical textual form of a coefficient, returning
	// a fresh value.  The receiver is never modified.  This must accept
	// exactly those strings which String produces.
	SetString(s string) (C, error)
	// Compound indicates that the textual form of this value must be enclosed
	// in braces when embedded within a polynomial expression (e.g. because it
	// contains characters which would otherwise be lexed as operators).
	Compound() bool
}

// Field extends the coefficient capability set with division, as required for
// polynomial long division.  Division fails on a zero divisor and, for domains
// which are not fields (e.g. the integers), on operands which do not divide
// exactly.
type Field[C any] interface {
	Coefficient[C]
	// Div divides this coefficient by y, or fails.
	Div(y C) (C, error)
}

// Zero constructs the additive identity of a coefficient domain.
func Zero[C Coefficient[C]]() C {
	var zero C
	//
	return zero
}

// One constructs the multiplicative identity of a coefficient domain.
func One[C Coefficient[C]]() C {
	var zero C
	//
	return zero.One()
}

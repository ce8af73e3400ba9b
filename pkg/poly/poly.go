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

import "slices"

// Polynomial represents a univariate polynomial over a generic coefficient
// domain.  Coefficients are stored by ascending power, with index zero holding
// the constant term.  Invariant: the highest-index coefficient is never the
// additive identity, with the zero polynomial represented by an empty
// sequence.  An uninitialised Polynomial corresponds with zero.  Polynomials
// are immutable, with every operation producing a fresh value routed through
// the normaliser.
type Polynomial[C Coefficient[C]] struct {
	coeffs []C
}

// NewPolynomial constructs a polynomial from coefficients given in ascending
// power order (i.e. the constant term first).  Trailing zero coefficients are
// permitted and trimmed.
func NewPolynomial[C Coefficient[C]](coeffs ...C) Polynomial[C] {
	return normalize(slices.Clone(coeffs))
}

// ZeroPolynomial constructs the zero polynomial of a coefficient domain.
func ZeroPolynomial[C Coefficient[C]]() Polynomial[C] {
	return Polynomial[C]{}
}

// normalize installs the canonical form invariant by trimming highest-index
// coefficients equal to the additive identity.  Every constructor and every
// arithmetic operation routes its raw coefficient sequence through here, hence
// this is the single source of truth for canonical form.  The given slice is
// taken over and must not be aliased by the caller afterwards.
func normalize[C Coefficient[C]](coeffs []C) Polynomial[C] {
	end := len(coeffs)
	//
	for end > 0 && coeffs[end-1].IsZero() {
		end--
	}
	//
	return Polynomial[C]{coeffs[:end]}
}

// Degree returns the highest power with a non-zero coefficient, or -1 for the
// zero polynomial.
func (p Polynomial[C]) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero determines whether or not this is the zero polynomial.
func (p Polynomial[C]) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coefficient returns the coefficient of the term with the given power,
// returning the additive identity for powers beyond the degree.
func (p Polynomial[C]) Coefficient(power uint) C {
	if power >= uint(len(p.coeffs)) {
		return Zero[C]()
	}
	//
	return p.coeffs[power]
}

// Coefficients returns a copy of the coefficient sequence in ascending power
// order.  For the zero polynomial, this returns an empty slice.
func (p Polynomial[C]) Coefficients() []C {
	return slices.Clone(p.coeffs)
}

// LeadingCoefficient returns the coefficient of the highest-power term, or the
// additive identity for the zero polynomial.
func (p Polynomial[C]) LeadingCoefficient() C {
	if p.IsZero() {
		return Zero[C]()
	}
	//
	return p.coeffs[len(p.coeffs)-1]
}

// Set returns a copy of this polynomial with the coefficient at the given
// power replaced.  Setting a zero coefficient at the leading power shrinks the
// degree accordingly.
func (p Polynomial[C]) Set(power uint, coefficient C) Polynomial[C] {
	coeffs := make([]C, max(int(power)+1, len(p.coeffs)))
	copy(coeffs, p.coeffs)
	coeffs[power] = coefficient
	//
	return normalize(coeffs)
}

// AddAt returns a copy of this polynomial with the given value added onto the
// coefficient at the given power.
func (p Polynomial[C]) AddAt(power uint, coefficient C) Polynomial[C] {
	return p.Set(power, p.Coefficient(power).Add(coefficient))
}

// Equal determines whether two polynomials have identical canonical forms.
// Polynomials of differing degree are never equal.
func (p Polynomial[C]) Equal(q Polynomial[C]) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	//
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(q.coeffs[i]) {
			return false
		}
	}
	//
	return true
}

// String renders this polynomial under the default style.
func (p Polynomial[C]) String() string {
	return Format(p, DefaultStyle())
}

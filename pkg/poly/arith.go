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

// Add returns the sum of this polynomial and another.  Neither operand is
// modified.
func (p Polynomial[C]) Add(q Polynomial[C]) Polynomial[C] {
	coeffs := make([]C, max(len(p.coeffs), len(q.coeffs)))
	//
	for i := range coeffs {
		coeffs[i] = p.Coefficient(uint(i)).Add(q.Coefficient(uint(i)))
	}
	// Cancellation can reduce the degree
	return normalize(coeffs)
}

// Sub returns the difference of this polynomial and another.  Neither operand
// is modified.
func (p Polynomial[C]) Sub(q Polynomial[C]) Polynomial[C] {
	coeffs := make([]C, max(len(p.coeffs), len(q.coeffs)))
	//
	for i := range coeffs {
		coeffs[i] = p.Coefficient(uint(i)).Sub(q.Coefficient(uint(i)))
	}
	// Cancellation can reduce the degree
	return normalize(coeffs)
}

// Neg returns the additive inverse of this polynomial.
func (p Polynomial[C]) Neg() Polynomial[C] {
	coeffs := make([]C, len(p.coeffs))
	//
	for i := range coeffs {
		coeffs[i] = p.coeffs[i].Neg()
	}
	//
	return normalize(coeffs)
}

// Mul returns the product of this polynomial and another, computed as the
// convolution of their coefficient sequences.  Over domains with zero
// divisors, the naive degree bound deg(p)+deg(q) can overshoot; the result is
// normalised to account for this.
func (p Polynomial[C]) Mul(q Polynomial[C]) Polynomial[C] {
	if p.IsZero() || q.IsZero() {
		return Polynomial[C]{}
	}
	//
	coeffs := make([]C, len(p.coeffs)+len(q.coeffs)-1)
	//
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		//
		for j, b := range q.coeffs {
			coeffs[i+j] = coeffs[i+j].Add(a.Mul(b))
		}
	}
	//
	return normalize(coeffs)
}

// AddScalar returns this polynomial with a scalar added onto its constant
// term.
func (p Polynomial[C]) AddScalar(scalar C) Polynomial[C] {
	return p.AddAt(0, scalar)
}

// SubScalar returns this polynomial with a scalar subtracted from its constant
// term.
func (p Polynomial[C]) SubScalar(scalar C) Polynomial[C] {
	return p.AddAt(0, scalar.Neg())
}

// MulScalar returns this polynomial with every coefficient multiplied by a
// scalar.
func (p Polynomial[C]) MulScalar(scalar C) Polynomial[C] {
	coeffs := make([]C, len(p.coeffs))
	//
	for i := range coeffs {
		coeffs[i] = p.coeffs[i].Mul(scalar)
	}
	// A zero scalar collapses everything
	return normalize(coeffs)
}

// Eval evaluates this polynomial at a given point using Horner's method, which
// requires exactly deg(p) multiplications and additions.
func (p Polynomial[C]) Eval(point C) C {
	var acc C
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(point).Add(p.coeffs[i])
	}
	//
	return acc
}

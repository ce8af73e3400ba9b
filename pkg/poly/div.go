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

import (
	"errors"
	"fmt"
)

// ErrDivideByZero signals division by the zero polynomial (or a zero scalar).
var ErrDivideByZero = errors.New("division by zero")

// QuoRem performs polynomial long division, producing the unique quotient and
// remainder such that p = q*quotient + remainder with deg(remainder) < deg(q)
// (or the remainder zero).  Division requires the coefficient domain support
// it, and fails with ErrDivideByZero when q is the zero polynomial, or with
// the domain's own error when a coefficient division fails (e.g. a non-exact
// division over the integers).
func QuoRem[C Field[C]](p, q Polynomial[C]) (quotient, remainder Polynomial[C], err error) {
	if q.IsZero() {
		return quotient, remainder, ErrDivideByZero
	}
	//
	remainder = p
	// Each iteration eliminates the leading term of the remainder, hence its
	// degree strictly decreases and the loop terminates.
	for !remainder.IsZero() && remainder.Degree() >= q.Degree() {
		coefficient, cerr := remainder.LeadingCoefficient().Div(q.LeadingCoefficient())
		//
		if cerr != nil {
			return Polynomial[C]{}, Polynomial[C]{}, fmt.Errorf("coefficient division failed: %w", cerr)
		}
		//
		shift := uint(remainder.Degree() - q.Degree())
		term := ZeroPolynomial[C]().Set(shift, coefficient)
		//
		quotient = quotient.Add(term)
		remainder = remainder.Sub(term.Mul(q))
	}
	//
	return quotient, remainder, nil
}

// DivScalar returns this polynomial with every coefficient divided by a
// scalar, failing on a zero scalar or when any coefficient division fails.
func DivScalar[C Field[C]](p Polynomial[C], scalar C) (Polynomial[C], error) {
	if scalar.IsZero() {
		return Polynomial[C]{}, ErrDivideByZero
	}
	//
	coeffs := make([]C, len(p.coeffs))
	//
	for i := range coeffs {
		c, err := p.coeffs[i].Div(scalar)
		//
		if err != nil {
			return Polynomial[C]{}, fmt.Errorf("coefficient division failed: %w", err)
		}
		//
		coeffs[i] = c
	}
	//
	return normalize(coeffs), nil
}

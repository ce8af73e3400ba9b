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
	"testing"

	"github.com/polylab/go-poly/pkg/coeff"
)

func Test_Div_01(t *testing.T) {
	// (-4x^4 + 12x^3 - 21x^2 + 19x) / (2x^2 - 3x + 5)
	//   = -2x^2 + 3x - 1 remainder x + 5
	checkDiv(t, ints(0, 19, -21, 12, -4), ints(5, -3, 2), ints(-1, 3, -2), ints(5, 1))
}

func Test_Div_02(t *testing.T) {
	// Exact division: (x^2 - 1) / (x - 1) = x + 1
	checkDiv(t, ints(-1, 0, 1), ints(-1, 1), ints(1, 1), ZeroPolynomial[coeff.Int64]())
}

func Test_Div_03(t *testing.T) {
	// Dividing by a higher-degree divisor leaves everything in the remainder
	checkDiv(t, ints(1, 2), ints(0, 0, 1), ZeroPolynomial[coeff.Int64](), ints(1, 2))
}

func Test_Div_04(t *testing.T) {
	// Dividing zero gives zero
	checkDiv(t, ZeroPolynomial[coeff.Int64](), ints(-1, 1),
		ZeroPolynomial[coeff.Int64](), ZeroPolynomial[coeff.Int64]())
}

func Test_Div_05(t *testing.T) {
	// Division by the zero polynomial fails
	_, _, err := QuoRem(ints(1, 2), ZeroPolynomial[coeff.Int64]())
	//
	if !errors.Is(err, ErrDivideByZero) {
		t.Errorf("expected division by zero (was %v)", err)
	}
}

func Test_Div_06(t *testing.T) {
	// Leading coefficients which do not divide exactly fail over the integers
	_, _, err := QuoRem(ints(0, 0, 1), ints(0, 2))
	//
	if !errors.Is(err, coeff.ErrInexactDivision) {
		t.Errorf("expected inexact division (was %v)", err)
	}
}

func Test_Div_07(t *testing.T) {
	// ... but succeed over the rationals
	quo, rem, err := QuoRem(rats(0, 0, 1), rats(0, 2))
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	checkEqual(t, quo, NewPolynomial(coeff.NewRat(0, 1), coeff.NewRat(1, 2)))
	//
	if !rem.IsZero() {
		t.Errorf("expected zero remainder (was %s)", rem.String())
	}
}

func Test_Div_08(t *testing.T) {
	// Division law: p = q*quo + rem with deg(rem) < deg(q)
	var (
		p = rats(7, -2, 0, 5, 1)
		q = rats(-3, 0, 2)
	)
	//
	quo, rem, err := QuoRem(p, q)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	checkEqual(t, q.Mul(quo).Add(rem), p)
	//
	if !rem.IsZero() && rem.Degree() >= q.Degree() {
		t.Errorf("remainder degree too large (was %d)", rem.Degree())
	}
}

func Test_DivScalar_01(t *testing.T) {
	p, err := DivScalar(ints(2, 4, 6), 2)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	checkEqual(t, p, ints(1, 2, 3))
}

func Test_DivScalar_02(t *testing.T) {
	// Division by a zero scalar fails
	if _, err := DivScalar(ints(1, 2), 0); !errors.Is(err, ErrDivideByZero) {
		t.Errorf("expected division by zero (was %v)", err)
	}
	// Inexact coefficient division fails over the integers
	if _, err := DivScalar(ints(1, 2), 2); !errors.Is(err, coeff.ErrInexactDivision) {
		t.Errorf("expected inexact division (was %v)", err)
	}
}

// Check the quotient and remainder of a polynomial long division.
func checkDiv[C Field[C]](t *testing.T, p, q, quotient, remainder Polynomial[C]) {
	t.Helper()
	//
	quo, rem, err := QuoRem(p, q)
	//
	if err != nil {
		t.Fatal(err)
	}
	//
	checkEqual(t, quo, quotient)
	checkEqual(t, rem, remainder)
	// Cross-check the division law
	checkEqual(t, q.Mul(quo).Add(rem), p)
}

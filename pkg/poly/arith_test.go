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
	"testing"

	"github.com/polylab/go-poly/pkg/coeff"
)

func Test_Add_01(t *testing.T) {
	checkEqual(t, ints(-3, 2, 1).Add(ints(5, -3, 2)), ints(2, -1, 3))
}

func Test_Add_02(t *testing.T) {
	// Operands of differing degree
	checkEqual(t, ints(1, 1).Add(ints(0, 0, 0, 2)), ints(1, 1, 0, 2))
	checkEqual(t, ints(0, 0, 0, 2).Add(ints(1, 1)), ints(1, 1, 0, 2))
}

func Test_Add_03(t *testing.T) {
	// Cancellation reduces the degree
	checkEqual(t, ints(1, 2, 3).Add(ints(0, 0, -3)), ints(1, 2))
	// Complete cancellation gives zero
	if !ints(1, 2).Add(ints(-1, -2)).IsZero() {
		t.Error("expected zero polynomial")
	}
}

func Test_Add_04(t *testing.T) {
	p := ints(-3, 2, 1)
	// Zero is the additive identity
	checkEqual(t, p.Add(ZeroPolynomial[coeff.Int64]()), p)
	checkEqual(t, ZeroPolynomial[coeff.Int64]().Add(p), p)
}

func Test_Sub_01(t *testing.T) {
	checkEqual(t, ints(2, -1, 3).Sub(ints(5, -3, 2)), ints(-3, 2, 1))
}

func Test_Sub_02(t *testing.T) {
	p := ints(-3, 2, 1)
	// Subtracting a polynomial from itself gives zero
	if !p.Sub(p).IsZero() {
		t.Error("expected zero polynomial")
	}
}

func Test_Neg_01(t *testing.T) {
	checkEqual(t, ints(-3, 2, 1).Neg(), ints(3, -2, -1))
	// Negation is an involution
	checkEqual(t, ints(-3, 2, 1).Neg().Neg(), ints(-3, 2, 1))
	// Negation agrees with subtraction from zero
	checkEqual(t, ints(-3, 2, 1).Neg(), ZeroPolynomial[coeff.Int64]().Sub(ints(-3, 2, 1)))
}

func Test_Mul_01(t *testing.T) {
	// (x + 1)(x - 1) = x^2 - 1
	checkEqual(t, ints(1, 1).Mul(ints(-1, 1)), ints(-1, 0, 1))
}

func Test_Mul_02(t *testing.T) {
	checkEqual(t, ints(5, -3, 2).Mul(ints(-1, 3, -2)), ints(-5, 18, -21, 12, -4))
}

func Test_Mul_03(t *testing.T) {
	p := ints(-3, 2, 1)
	// Multiplication by zero annihilates
	if !p.Mul(ZeroPolynomial[coeff.Int64]()).IsZero() {
		t.Error("expected zero polynomial")
	}
	// One is the multiplicative identity
	checkEqual(t, p.Mul(ints(1)), p)
}

func Test_Mul_04(t *testing.T) {
	// Over an integral domain, degrees add under multiplication
	p, q := ints(1, 2, 3), ints(4, 5)
	//
	if d := p.Mul(q).Degree(); d != p.Degree()+q.Degree() {
		t.Errorf("incorrect product degree (was %d, expected %d)", d, p.Degree()+q.Degree())
	}
}

func Test_Mul_05(t *testing.T) {
	// Over a ring with zero divisors, the leading terms can cancel.  Here
	// (2x + 1)(3x + 1) = 5x + 1 modulo six.
	var (
		p = NewPolynomial[mod6](1, 2)
		q = NewPolynomial[mod6](1, 3)
	)
	//
	checkEqual(t, p.Mul(q), NewPolynomial[mod6](1, 5))
}

func Test_Arith_01(t *testing.T) {
	p, q := ints(1, 2, 3), ints(4, 5)
	// Addition and multiplication commute
	checkEqual(t, p.Add(q), q.Add(p))
	checkEqual(t, p.Mul(q), q.Mul(p))
}

func Test_Arith_02(t *testing.T) {
	p, q, r := ints(1, 2, 3), ints(4, 5), ints(-1, 0, 2)
	// Associativity
	checkEqual(t, p.Add(q).Add(r), p.Add(q.Add(r)))
	checkEqual(t, p.Mul(q).Mul(r), p.Mul(q.Mul(r)))
	// Distributivity
	checkEqual(t, p.Mul(q.Add(r)), p.Mul(q).Add(p.Mul(r)))
}

func Test_Scalar_01(t *testing.T) {
	checkEqual(t, ints(-3, 2, 1).AddScalar(5), ints(2, 2, 1))
	checkEqual(t, ints(-3, 2, 1).SubScalar(5), ints(-8, 2, 1))
	// Adding onto the zero polynomial
	checkEqual(t, ZeroPolynomial[coeff.Int64]().AddScalar(5), ints(5))
}

func Test_Scalar_02(t *testing.T) {
	checkEqual(t, ints(-3, 2, 1).MulScalar(2), ints(-6, 4, 2))
	// A zero scalar collapses everything
	if !ints(-3, 2, 1).MulScalar(0).IsZero() {
		t.Error("expected zero polynomial")
	}
}

func Test_Eval_01(t *testing.T) {
	// x^2 + 2x - 3 at x = 2
	checkEval(t, ints(-3, 2, 1), 2, 5)
	// ... and at x = 0, giving the constant term
	checkEval(t, ints(-3, 2, 1), 0, -3)
	// ... and at a negative point
	checkEval(t, ints(-3, 2, 1), -3, 0)
}

func Test_Eval_02(t *testing.T) {
	// The zero polynomial is zero everywhere
	checkEval(t, ZeroPolynomial[coeff.Int64](), 10, 0)
	// Constants are constant everywhere
	checkEval(t, ints(7), 10, 7)
}

func Test_Eval_03(t *testing.T) {
	// 2.5x^2 - 0.5x + 1 at x = -3
	p := floats(1, -0.5, 2.5)
	//
	if v := p.Eval(-3); v != 25 {
		t.Errorf("incorrect evaluation (was %s, expected 25)", v.String())
	}
}

func Test_Eval_04(t *testing.T) {
	// Evaluation is a ring homomorphism: (p*q)(a) = p(a) * q(a)
	var (
		a    = coeff.Int64(7)
		p, q = ints(1, 2, 3), ints(-4, 5)
	)
	//
	if p.Mul(q).Eval(a) != p.Eval(a).Mul(q.Eval(a)) {
		t.Error("evaluation does not distribute over multiplication")
	}
	//
	if p.Add(q).Eval(a) != p.Eval(a).Add(q.Eval(a)) {
		t.Error("evaluation does not distribute over addition")
	}
}

// Check the evaluation of a polynomial at a given point.
func checkEval(t *testing.T, p Polynomial[coeff.Int64], point, expected coeff.Int64) {
	t.Helper()
	//
	if actual := p.Eval(point); actual != expected {
		t.Errorf("incorrect evaluation at %s (was %s, expected %s)",
			point.String(), actual.String(), expected.String())
	}
}

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
package coeff_test

import (
	"testing"

	"github.com/polylab/go-poly/pkg/coeff"
	"github.com/polylab/go-poly/pkg/poly"
	"github.com/stretchr/testify/require"
)

// Every domain provides the full capability set, including division.
var (
	_ poly.Field[coeff.Int8]     = coeff.Int8(0)
	_ poly.Field[coeff.Int16]    = coeff.Int16(0)
	_ poly.Field[coeff.Int32]    = coeff.Int32(0)
	_ poly.Field[coeff.Int64]    = coeff.Int64(0)
	_ poly.Field[coeff.Float64]  = coeff.Float64(0)
	_ poly.Field[coeff.Rat]      = coeff.Rat{}
	_ poly.Field[coeff.Complex]  = coeff.Complex(0)
	_ poly.Field[coeff.BLS12377] = coeff.BLS12377{}
)

func TestIntArith(t *testing.T) {
	require.Equal(t, coeff.Int64(5), coeff.Int64(2).Add(3))
	require.Equal(t, coeff.Int64(-1), coeff.Int64(2).Sub(3))
	require.Equal(t, coeff.Int64(6), coeff.Int64(2).Mul(3))
	require.Equal(t, coeff.Int64(-2), coeff.Int64(2).Neg())
	require.True(t, coeff.Int64(0).IsZero())
	require.True(t, coeff.Int64(1).IsOne())
	require.True(t, coeff.Int64(-1).IsNegative())
	require.False(t, coeff.Int64(1).IsNegative())
}

func TestIntDiv(t *testing.T) {
	q, err := coeff.Int64(6).Div(2)
	require.NoError(t, err)
	require.Equal(t, coeff.Int64(3), q)
	// Division by zero fails
	_, err = coeff.Int64(6).Div(0)
	require.ErrorIs(t, err, coeff.ErrDivideByZero)
	// Inexact division fails
	_, err = coeff.Int64(5).Div(2)
	require.ErrorIs(t, err, coeff.ErrInexactDivision)
}

func TestIntString(t *testing.T) {
	val, err := coeff.Int64(0).SetString("-42")
	require.NoError(t, err)
	require.Equal(t, coeff.Int64(-42), val)
	require.Equal(t, "-42", val.String())
	// Garbage is rejected
	_, err = coeff.Int64(0).SetString("abc")
	require.Error(t, err)
	// Narrow domains reject out-of-range values
	_, err = coeff.Int8(0).SetString("1000")
	require.Error(t, err)
	// None of the integer domains are compound
	require.False(t, coeff.Int64(-42).Compound())
}

func TestFloatArith(t *testing.T) {
	require.Equal(t, coeff.Float64(2.5), coeff.Float64(2).Add(0.5))
	require.Equal(t, coeff.Float64(1.5), coeff.Float64(2).Sub(0.5))
	require.Equal(t, coeff.Float64(1), coeff.Float64(2).Mul(0.5))
	//
	q, err := coeff.Float64(1).Div(4)
	require.NoError(t, err)
	require.Equal(t, coeff.Float64(0.25), q)
	//
	_, err = coeff.Float64(1).Div(0)
	require.ErrorIs(t, err, coeff.ErrDivideByZero)
}

func TestFloatString(t *testing.T) {
	// Rendering never uses exponent notation
	require.Equal(t, "0.0000001", coeff.Float64(1e-7).String())
	require.Equal(t, "10000000", coeff.Float64(1e7).String())
	//
	val, err := coeff.Float64(0).SetString("-2.5")
	require.NoError(t, err)
	require.Equal(t, coeff.Float64(-2.5), val)
	require.False(t, val.Compound())
}

func TestRatArith(t *testing.T) {
	half, third := coeff.NewRat(1, 2), coeff.NewRat(1, 3)
	//
	require.True(t, half.Add(third).Equal(coeff.NewRat(5, 6)))
	require.True(t, half.Sub(third).Equal(coeff.NewRat(1, 6)))
	require.True(t, half.Mul(third).Equal(coeff.NewRat(1, 6)))
	require.True(t, half.Neg().Equal(coeff.NewRat(-1, 2)))
	//
	q, err := half.Div(third)
	require.NoError(t, err)
	require.True(t, q.Equal(coeff.NewRat(3, 2)))
	//
	_, err = half.Div(coeff.Rat{})
	require.ErrorIs(t, err, coeff.ErrDivideByZero)
}

func TestRatZeroValue(t *testing.T) {
	// The zero value is the additive identity
	var zero coeff.Rat
	//
	require.True(t, zero.IsZero())
	require.True(t, zero.Add(coeff.NewRat(1, 2)).Equal(coeff.NewRat(1, 2)))
	require.True(t, zero.One().IsOne())
}

func TestRatString(t *testing.T) {
	val, err := coeff.Rat{}.SetString("3/4")
	require.NoError(t, err)
	require.True(t, val.Equal(coeff.NewRat(3, 4)))
	require.Equal(t, "3/4", val.String())
	// Fractions are compound, integers are not
	require.True(t, val.Compound())
	require.False(t, coeff.NewRat(4, 2).Compound())
	require.Equal(t, "2", coeff.NewRat(4, 2).String())
	// Decimal notation is accepted
	val, err = coeff.Rat{}.SetString("0.75")
	require.NoError(t, err)
	require.True(t, val.Equal(coeff.NewRat(3, 4)))
	//
	_, err = coeff.Rat{}.SetString("a/b")
	require.Error(t, err)
}

func TestComplexArith(t *testing.T) {
	require.Equal(t, coeff.Complex(4+6i), coeff.Complex(1+2i).Add(3+4i))
	require.Equal(t, coeff.Complex(-5+10i), coeff.Complex(1+2i).Mul(3+4i))
	// i^2 = -1
	require.Equal(t, coeff.Complex(-1), coeff.Complex(1i).Mul(1i))
	// No natural order
	require.False(t, coeff.Complex(-1).IsNegative())
	//
	_, err := coeff.Complex(1).Div(0)
	require.ErrorIs(t, err, coeff.ErrDivideByZero)
}

func TestComplexString(t *testing.T) {
	val, err := coeff.Complex(0).SetString("(3+4i)")
	require.NoError(t, err)
	require.Equal(t, coeff.Complex(3+4i), val)
	require.Equal(t, "(3+4i)", val.String())
	// Complex values always require braces
	require.True(t, val.Compound())
	// Parentheses are optional on parsing
	val, err = coeff.Complex(0).SetString("3+4i")
	require.NoError(t, err)
	require.Equal(t, coeff.Complex(3+4i), val)
}

func TestBls12377Arith(t *testing.T) {
	var zero coeff.BLS12377
	//
	one := zero.One()
	two := one.Add(one)
	//
	require.True(t, zero.IsZero())
	require.True(t, one.IsOne())
	require.True(t, two.Sub(one).IsOne())
	require.True(t, one.Mul(two).Equal(two))
	// -1 lies in the upper half of the field
	require.True(t, one.Neg().IsNegative())
	require.False(t, one.IsNegative())
	// Negation wraps around to zero
	require.True(t, one.Add(one.Neg()).IsZero())
}

func TestBls12377Div(t *testing.T) {
	var zero coeff.BLS12377
	//
	two := zero.One().Add(zero.One())
	// Every non-zero element is invertible
	q, err := zero.One().Div(two)
	require.NoError(t, err)
	require.True(t, q.Mul(two).IsOne())
	//
	_, err = zero.One().Div(zero)
	require.ErrorIs(t, err, coeff.ErrDivideByZero)
}

func TestBls12377String(t *testing.T) {
	var zero coeff.BLS12377
	//
	val, err := zero.SetString("42")
	require.NoError(t, err)
	require.Equal(t, "42", val.String())
	// Negative values are reduced modulo the field order, and render with a
	// minus sign
	val, err = zero.SetString("-1")
	require.NoError(t, err)
	require.True(t, val.Equal(zero.One().Neg()))
	require.Equal(t, "-1", val.String())
	//
	_, err = zero.SetString("not a number")
	require.Error(t, err)
	//
	require.False(t, val.Compound())
}

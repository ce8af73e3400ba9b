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
package coeff

import (
	"fmt"
	"math/big"
)

// Rat is the coefficient domain of arbitrary-precision rationals.  The zero
// value represents zero.  Rat values are immutable, with every operation
// allocating a fresh underlying rational.
type Rat struct {
	v big.Rat
}

// NewRat constructs a rational with the given numerator and denominator.
func NewRat(num, den int64) Rat {
	return Rat{*big.NewRat(num, den)}
}

// Add x + y
func (x Rat) Add(y Rat) Rat {
	var r big.Rat
	//
	r.Add(&x.v, &y.v)
	//
	return Rat{r}
}

// Sub x - y
func (x Rat) Sub(y Rat) Rat {
	var r big.Rat
	//
	r.Sub(&x.v, &y.v)
	//
	return Rat{r}
}

// Mul x * y
func (x Rat) Mul(y Rat) Rat {
	var r big.Rat
	//
	r.Mul(&x.v, &y.v)
	//
	return Rat{r}
}

// Neg -x
func (x Rat) Neg() Rat {
	var r big.Rat
	//
	r.Neg(&x.v)
	//
	return Rat{r}
}

// Div x / y, failing on a zero divisor.
func (x Rat) Div(y Rat) (Rat, error) {
	if y.IsZero() {
		return Rat{}, ErrDivideByZero
	}
	//
	var r big.Rat
	//
	r.Quo(&x.v, &y.v)
	//
	return Rat{r}, nil
}

// IsZero implementation for the Coefficient interface.
func (x Rat) IsZero() bool {
	return x.v.Sign() == 0
}

// IsOne implementation for the Coefficient interface.
func (x Rat) IsOne() bool {
	return x.v.Cmp(big.NewRat(1, 1)) == 0
}

// IsNegative implementation for the Coefficient interface.
func (x Rat) IsNegative() bool {
	return x.v.Sign() < 0
}

// Equal implementation for the Coefficient interface.
func (x Rat) Equal(y Rat) bool {
	return x.v.Cmp(&y.v) == 0
}

// One returns the multiplicative identity.
func (x Rat) One() Rat {
	return NewRat(1, 1)
}

// SetString parses a rational in "a/b", integer or decimal notation.
func (x Rat) SetString(s string) (Rat, error) {
	var r big.Rat
	//
	if _, ok := r.SetString(s); !ok {
		return Rat{}, fmt.Errorf("invalid rational %q", s)
	}
	//
	return Rat{r}, nil
}

// String renders in lowest terms, e.g. "3/4" or "3".
func (x Rat) String() string {
	return x.v.RatString()
}

// Compound holds exactly when the textual form contains a fraction bar, which
// would otherwise not survive embedding in a polynomial expression.
func (x Rat) Compound() bool {
	return !x.v.IsInt()
}

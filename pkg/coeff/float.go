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

import "strconv"

// Float64 is the coefficient domain of IEEE-754 double-precision floats.
type Float64 float64

// Add x + y
func (x Float64) Add(y Float64) Float64 {
	return x + y
}

// Sub x - y
func (x Float64) Sub(y Float64) Float64 {
	return x - y
}

// Mul x * y
func (x Float64) Mul(y Float64) Float64 {
	return x * y
}

// Neg -x
func (x Float64) Neg() Float64 {
	return -x
}

// Div x / y, failing on a zero divisor.
func (x Float64) Div(y Float64) (Float64, error) {
	if y == 0 {
		return 0, ErrDivideByZero
	}
	//
	return x / y, nil
}

// IsZero implementation for the Coefficient interface.
func (x Float64) IsZero() bool {
	return x == 0
}

// IsOne implementation for the Coefficient interface.
func (x Float64) IsOne() bool {
	return x == 1
}

// IsNegative implementation for the Coefficient interface.
func (x Float64) IsNegative() bool {
	return x < 0
}

// Equal implementation for the Coefficient interface.
func (x Float64) Equal(y Float64) bool {
	return x == y
}

// One returns the multiplicative identity.
func (x Float64) One() Float64 {
	return 1
}

// SetString parses a decimal float.
func (x Float64) SetString(s string) (Float64, error) {
	val, err := strconv.ParseFloat(s, 64)
	//
	return Float64(val), err
}

// String renders without exponent notation, such that the result is always
// reparseable within a polynomial expression.
func (x Float64) String() string {
	return strconv.FormatFloat(float64(x), 'f', -1, 64)
}

// Compound implementation for the Coefficient interface.
func (x Float64) Compound() bool {
	return false
}

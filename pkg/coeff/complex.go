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

// Complex is the coefficient domain of complex numbers.  Its textual form is
// that of strconv.ParseComplex, e.g. "(3+4i)", and is always brace-delimited
// within polynomial expressions.
type Complex complex128

// Add x + y
func (x Complex) Add(y Complex) Complex {
	return x + y
}

// Sub x - y
func (x Complex) Sub(y Complex) Complex {
	return x - y
}

// Mul x * y
func (x Complex) Mul(y Complex) Complex {
	return x * y
}

// Neg -x
func (x Complex) Neg() Complex {
	return -x
}

// Div x / y, failing on a zero divisor.
func (x Complex) Div(y Complex) (Complex, error) {
	if y == 0 {
		return 0, ErrDivideByZero
	}
	//
	return x / y, nil
}

// IsZero implementation for the Coefficient interface.
func (x Complex) IsZero() bool {
	return x == 0
}

// IsOne implementation for the Coefficient interface.
func (x Complex) IsOne() bool {
	return x == 1
}

// IsNegative always reports false, as the complex numbers have no natural
// order.
func (x Complex) IsNegative() bool {
	return false
}

// Equal implementation for the Coefficient interface.
func (x Complex) Equal(y Complex) bool {
	return x == y
}

// One returns the multiplicative identity.
func (x Complex) One() Complex {
	return 1
}

// SetString parses a complex number of the form "N", "Ni" or "N±Ni", with or
// without surrounding parentheses.
func (x Complex) SetString(s string) (Complex, error) {
	val, err := strconv.ParseComplex(s, 128)
	//
	return Complex(val), err
}

// String renders in the form "(a+bi)".
func (x Complex) String() string {
	return strconv.FormatComplex(complex128(x), 'g', -1, 128)
}

// Compound implementation for the Coefficient interface.
func (x Complex) Compound() bool {
	return true
}

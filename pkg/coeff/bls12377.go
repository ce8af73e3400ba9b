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
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// BLS12377 is the coefficient domain of the BLS12-377 scalar field, wrapping
// fr.Element behind an immutable value interface.
type BLS12377 struct {
	fr.Element
}

// Add x + y
func (x BLS12377) Add(y BLS12377) BLS12377 {
	var elem fr.Element
	//
	elem.Add(&x.Element, &y.Element)
	//
	return BLS12377{elem}
}

// Sub x - y
func (x BLS12377) Sub(y BLS12377) BLS12377 {
	var elem fr.Element
	//
	elem.Sub(&x.Element, &y.Element)
	//
	return BLS12377{elem}
}

// Mul x * y
func (x BLS12377) Mul(y BLS12377) BLS12377 {
	var elem fr.Element
	//
	elem.Mul(&x.Element, &y.Element)
	//
	return BLS12377{elem}
}

// Neg -x
func (x BLS12377) Neg() BLS12377 {
	var elem fr.Element
	//
	elem.Neg(&x.Element)
	//
	return BLS12377{elem}
}

// Div x / y, failing on a zero divisor.  Every non-zero divisor is invertible
// in a prime field.
func (x BLS12377) Div(y BLS12377) (BLS12377, error) {
	if y.IsZero() {
		return BLS12377{}, ErrDivideByZero
	}
	//
	var elem fr.Element
	//
	elem.Div(&x.Element, &y.Element)
	//
	return BLS12377{elem}, nil
}

// IsZero implementation for the Coefficient interface.
func (x BLS12377) IsZero() bool {
	return x.Element.IsZero()
}

// IsOne implementation for the Coefficient interface.
func (x BLS12377) IsOne() bool {
	return x.Element.IsOne()
}

// IsNegative reports whether this element renders more compactly as the
// negation of its additive inverse (i.e. lies in the upper half of the field).
func (x BLS12377) IsNegative() bool {
	return x.Element.LexicographicallyLargest()
}

// Equal implementation for the Coefficient interface.
func (x BLS12377) Equal(y BLS12377) bool {
	return x.Element.Equal(&y.Element)
}

// One returns the multiplicative identity.
func (x BLS12377) One() BLS12377 {
	var elem fr.Element
	//
	elem.SetOne()
	//
	return BLS12377{elem}
}

// SetString parses a decimal field element, with negative values reduced
// modulo the field order.
func (x BLS12377) SetString(s string) (BLS12377, error) {
	var elem fr.Element
	//
	if _, err := elem.SetString(s); err != nil {
		return BLS12377{}, err
	}
	//
	return BLS12377{elem}, nil
}

func (x BLS12377) String() string {
	return x.Element.String()
}

// Compound implementation for the Coefficient interface.
func (x BLS12377) Compound() bool {
	return false
}

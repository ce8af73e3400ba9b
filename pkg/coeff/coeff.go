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

// Package coeff provides concrete coefficient domains over which polynomials
// can be instantiated: fixed-width integers, floats, arbitrary-precision
// rationals, complex numbers and BLS12-377 prime-field elements.
package coeff

import "errors"

// ErrDivideByZero signals a coefficient division by the additive identity.
var ErrDivideByZero = errors.New("division by zero")

// ErrInexactDivision signals an integer division whose operands do not divide
// exactly.  Integer domains only support exact division.
var ErrInexactDivision = errors.New("inexact division")

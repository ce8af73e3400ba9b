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
	"bytes"
	"fmt"
)

// TermOrder determines the order in which terms are emitted by the formatter.
type TermOrder uint

const (
	// Descending emits the highest-power term first.
	Descending TermOrder = iota
	// Ascending emits the constant term first.
	Ascending
)

// Spacing determines whether terms are separated by padded sign tokens (e.g.
// "x + 1") or packed together (e.g. "x+1").
type Spacing uint

const (
	// Spaced pads sign tokens with spaces.
	Spaced Spacing = iota
	// Compact omits all spacing.
	Compact
)

// Notation determines how exponents are written.
type Notation uint

const (
	// Standard uses a caret before the power (e.g. "x^10").
	Standard Notation = iota
	// Latex uses a caret with the power in curly braces (e.g. "x^{10}").
	Latex
	// Concise omits the caret entirely (e.g. "x10").
	Concise
)

// Style configures the textual rendering of a polynomial.  The zero value is
// the default style, except for the symbol which defaults to "x" when left
// empty.
type Style struct {
	// Symbol is the indeterminate to print.
	Symbol string
	// Order determines the term emission order.
	Order TermOrder
	// Spacing determines sign padding.
	Spacing Spacing
	// Notation determines exponent syntax.
	Notation Notation
}

// DefaultStyle returns the style under which Format is the semantic inverse of
// Parse: indeterminate "x", descending terms, spaced signs, caret exponents.
func DefaultStyle() Style {
	return Style{Symbol: DefaultSymbol}
}

// Format renders a polynomial under a given style.  Formatting is total: every
// canonical polynomial has a rendering, with the zero polynomial rendered as
// "0".  For the default style, the result parses back to an equal polynomial.
func Format[C Coefficient[C]](p Polynomial[C], style Style) string {
	if style.Symbol == "" {
		style.Symbol = DefaultSymbol
	}
	// Handle the zero polynomial
	if p.IsZero() {
		return "0"
	}
	//
	var (
		buf   bytes.Buffer
		first = true
	)
	//
	for i := range p.coeffs {
		power := len(p.coeffs) - 1 - i
		//
		if style.Order == Ascending {
			power = i
		}
		//
		coefficient := p.coeffs[power]
		//
		if coefficient.IsZero() {
			continue
		}
		//
		formatTerm(&buf, coefficient, uint(power), first, style)
		//
		first = false
	}
	//
	return buf.String()
}

// formatTerm emits a single sign-and-term pair.
func formatTerm[C Coefficient[C]](buf *bytes.Buffer, coefficient C, power uint, first bool, style Style) {
	magnitude := coefficient
	// Fold the sign of the coefficient into the sign token, such that a
	// negative coefficient never renders as "+ -c".
	if coefficient.IsNegative() {
		magnitude = coefficient.Neg()
		//
		writeSign(buf, "-", first, style.Spacing)
	} else {
		writeSign(buf, "+", first, style.Spacing)
	}
	// The multiplicative identity is elided for non-constant terms
	if power == 0 || !magnitude.IsOne() {
		if magnitude.Compound() {
			buf.WriteString("{")
			buf.WriteString(magnitude.String())
			buf.WriteString("}")
		} else {
			buf.WriteString(magnitude.String())
		}
	}
	// Write the indeterminate, unless this is a constant term
	if power == 0 {
		return
	}
	//
	buf.WriteString(style.Symbol)
	// The exponent one is elided
	if power == 1 {
		return
	}
	//
	switch style.Notation {
	case Latex:
		fmt.Fprintf(buf, "^{%d}", power)
	case Concise:
		fmt.Fprintf(buf, "%d", power)
	default:
		fmt.Fprintf(buf, "^%d", power)
	}
}

// writeSign emits a sign token with appropriate padding.  The sign of the
// leading term is omitted entirely when positive.
func writeSign(buf *bytes.Buffer, sign string, first bool, spacing Spacing) {
	switch {
	case first && sign == "+":
		// elided
	case first && spacing == Spaced:
		buf.WriteString(sign)
		buf.WriteString(" ")
	case first:
		buf.WriteString(sign)
	case spacing == Spaced:
		buf.WriteString(" ")
		buf.WriteString(sign)
		buf.WriteString(" ")
	default:
		buf.WriteString(sign)
	}
}

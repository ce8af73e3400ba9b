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
	"slices"
	"strconv"
	"strings"
)

// Parse a given input string into a polynomial over the default indeterminate
// "x".  The grammar is a sequence of signed terms, where each term is a
// coefficient, an indeterminate raised to some power, or both:
//
//	3x^2 + 2x - 1
//	2x5-x4+4x2-3
//	- 2 * x^2 -3*x + 5
//	{3/4}x^2 + {1/2}
//
// Coefficients are numbers, or brace-delimited text handed verbatim to the
// coefficient domain (e.g. "{3/4}" for rationals).  A missing coefficient
// defaults to one, a missing exponent on the indeterminate to one, and a term
// without an indeterminate is a constant.  Terms of the same degree may occur
// multiple times and are summed.  Whitespace between tokens is insignificant.
func Parse[C Coefficient[C]](input string) (Polynomial[C], *SyntaxError) {
	return NewParser[C](DefaultSymbol).Parse(input)
}

// DefaultSymbol is the indeterminate assumed when none is configured.
const DefaultSymbol = "x"

// Parser turns textual polynomial expressions over a fixed indeterminate into
// polynomials.  A Parser is stateless across calls and safe for concurrent
// use.
type Parser[C Coefficient[C]] struct {
	symbol string
}

// NewParser constructs a parser for a given indeterminate symbol (e.g. "x" or
// "theta").  An empty symbol selects the default.
func NewParser[C Coefficient[C]](symbol string) *Parser[C] {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	//
	return &Parser[C]{symbol}
}

// Parse a given input string into a polynomial, or produce a syntax error
// identifying where parsing failed.
func (p *Parser[C]) Parse(input string) (Polynomial[C], *SyntaxError) {
	var (
		empty Polynomial[C]
		runes = []rune(input)
	)
	// Tokenise the entire input
	tokens, stall := scan(runes)
	// Check whether anything was left (if so this is an error)
	if stall >= 0 {
		span := NewSpan(stall, stall+1)
		//
		if runes[stall] == '{' {
			return empty, syntaxError(MismatchedBraces, span, "unclosed brace")
		}
		//
		return empty, syntaxError(UnexpectedCharacter, span, "unexpected character")
	}
	// Remove any whitespace
	tokens = slices.DeleteFunc(tokens, func(t token) bool { return t.kind == WHITESPACE })
	// Check for empty (or whitespace only) input
	if tokens[0].kind == END_OF {
		return empty, syntaxError(EmptyInput, tokens[0].span, "empty input")
	}
	//
	scanner := &termScanner[C]{runes, tokens, 0, p.symbol}
	// Scan all terms
	terms, err := scanner.scanPolynomial()
	//
	if err != nil {
		return empty, err
	}
	// Fold terms, summing duplicate exponents
	return assemble(terms), nil
}

// term is a transient (coefficient, exponent) pair produced while scanning,
// before assembly into canonical form.
type term[C any] struct {
	coefficient C
	power       uint
}

// assemble folds scanned terms into a canonical polynomial, summing the
// coefficients of terms sharing an exponent.
func assemble[C Coefficient[C]](terms []term[C]) Polynomial[C] {
	var coeffs []C
	//
	for _, t := range terms {
		for uint(len(coeffs)) <= t.power {
			coeffs = append(coeffs, Zero[C]())
		}
		//
		coeffs[t.power] = coeffs[t.power].Add(t.coefficient)
	}
	//
	return normalize(coeffs)
}

// termScanner provides a cursor over the token sequence, from which terms are
// scanned one at a time.
type termScanner[C Coefficient[C]] struct {
	input  []rune
	tokens []token
	// Position within the tokens
	index  int
	symbol string
}

func (p *termScanner[C]) scanPolynomial() ([]term[C], *SyntaxError) {
	var terms []term[C]
	//
	for first := true; !p.follows(END_OF); first = false {
		negative := false
		// Scan sign, which is required between terms but optional on the
		// first.
		switch {
		case p.follows(MINUS):
			p.expect(MINUS)
			//
			negative = true
		case p.follows(PLUS):
			p.expect(PLUS)
		case !first:
			return nil, p.syntaxError(UnexpectedCharacter, p.lookahead(), "expected '+' or '-'")
		}
		// Sign must be followed by a term
		if p.follows(END_OF) {
			return nil, p.syntaxError(UnterminatedTerm, p.lookahead(), "expected term after sign")
		}
		//
		t, err := p.scanTerm(negative)
		//
		if err != nil {
			return nil, err
		}
		//
		terms = append(terms, t)
	}
	//
	return terms, nil
}

// scanTerm scans a single (already sign-stripped) term of the form
// "coefficient", "coefficient *? indeterminate exponent?" or "indeterminate
// exponent?".
func (p *termScanner[C]) scanTerm(negative bool) (term[C], *SyntaxError) {
	var (
		empty       term[C]
		coefficient C
		hasCoeff    bool
		err         *SyntaxError
	)
	// Scan optional coefficient
	switch {
	case p.follows(NUMBER):
		coefficient, err = p.scanCoefficient(p.expect(NUMBER), false)
		hasCoeff = true
	case p.follows(BRACED):
		coefficient, err = p.scanCoefficient(p.expect(BRACED), true)
		hasCoeff = true
	}
	//
	if err != nil {
		return empty, err
	}
	// Scan optional '*' between coefficient and indeterminate
	if hasCoeff && p.follows(STAR) {
		p.expect(STAR)
		// A '*' commits the term to an indeterminate
		if p.follows(END_OF) {
			return empty, p.syntaxError(UnterminatedTerm, p.lookahead(), "expected indeterminate after '*'")
		} else if !p.follows(SYMBOL) {
			return empty, p.syntaxError(UnexpectedCharacter, p.lookahead(), "expected indeterminate after '*'")
		}
	}
	// Scan optional indeterminate and exponent
	power := uint(0)
	//
	if p.follows(SYMBOL) {
		id := p.expect(SYMBOL)
		// Check symbol matches the configured indeterminate
		if p.text(id) != p.symbol {
			return empty, p.syntaxError(UnknownIndeterminate, id, "unknown indeterminate")
		}
		//
		if power, err = p.scanExponent(); err != nil {
			return empty, err
		}
	} else if !hasCoeff {
		// Neither coefficient nor indeterminate
		return empty, p.syntaxError(UnexpectedCharacter, p.lookahead(), "expected term")
	}
	// Default coefficient to the multiplicative identity
	if !hasCoeff {
		coefficient = One[C]()
	}
	//
	if negative {
		coefficient = coefficient.Neg()
	}
	//
	return term[C]{coefficient, power}, nil
}

// scanCoefficient delegates the text of a coefficient token to the coefficient
// domain.  For braced tokens, the enclosing braces are stripped and the inner
// grammar is entirely type-defined.
func (p *termScanner[C]) scanCoefficient(tok token, isBraced bool) (C, *SyntaxError) {
	var (
		zero C
		text = p.text(tok)
	)
	//
	if isBraced {
		text = strings.TrimSpace(text[1 : len(text)-1])
	}
	//
	coefficient, err := zero.SetString(text)
	//
	if err != nil {
		return zero, p.syntaxError(UnexpectedCharacter, tok, err.Error())
	}
	//
	return coefficient, nil
}

// scanExponent scans the (optional) exponent following an indeterminate,
// defaulting to one.  Both the caret form "x^2" and the concise form "x2" are
// accepted.
func (p *termScanner[C]) scanExponent() (uint, *SyntaxError) {
	var tok token
	//
	switch {
	case p.follows(CARET):
		p.expect(CARET)
		// Caret must be followed by an unsigned integer
		if p.follows(MINUS) {
			return 0, p.syntaxError(InvalidExponent, p.lookahead(), "negative exponent")
		} else if !p.follows(NUMBER) {
			return 0, p.syntaxError(InvalidExponent, p.lookahead(), "expected exponent")
		}
		//
		tok = p.expect(NUMBER)
	case p.follows(NUMBER):
		// Concise form, e.g. "3x2"
		tok = p.expect(NUMBER)
	default:
		// No exponent given
		return 1, nil
	}
	//
	exponent, err := strconv.ParseUint(p.text(tok), 10, 32)
	//
	if err != nil {
		return 0, p.syntaxError(InvalidExponent, tok, "invalid exponent")
	}
	//
	return uint(exponent), nil
}

// Get the text covered by the given token as a string.
func (p *termScanner[C]) text(tok token) string {
	return string(p.input[tok.span.Start():tok.span.End()])
}

// Follows checks whether one of the given token kinds is next.
func (p *termScanner[C]) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().kind)
}

// Lookahead returns the next token.  This must exist because END_OF is always
// appended at the end of the token stream.
func (p *termScanner[C]) lookahead() token {
	return p.tokens[p.index]
}

func (p *termScanner[C]) expect(kind uint) token {
	if p.lookahead().kind != kind {
		panic("internal failure")
	}
	//
	tok := p.tokens[p.index]
	p.index++
	//
	return tok
}

func (p *termScanner[C]) syntaxError(code ErrorCode, tok token, msg string) *SyntaxError {
	return syntaxError(code, tok.span, msg)
}

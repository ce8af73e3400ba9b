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

import "sync"

// END_OF signals "end of input".
const END_OF uint = 0

// WHITESPACE signals one or more whitespace characters.
const WHITESPACE uint = 1

// NUMBER signals an (unsigned) number, with an optional fractional part.
const NUMBER uint = 2

// SYMBOL signals a run of letters (i.e. a candidate indeterminate).
const SYMBOL uint = 3

// PLUS signals the sign "+".
const PLUS uint = 4

// MINUS signals the sign "-".
const MINUS uint = 5

// STAR signals an (optional) multiplication "*" between a coefficient and the
// indeterminate.
const STAR uint = 6

// CARET signals the exponentiation marker "^".
const CARET uint = 7

// BRACED signals an entire brace-delimited coefficient, including the braces.
const BRACED uint = 8

// token associates a token kind with a given range of characters in the string
// being scanned.
type token struct {
	kind uint
	span Span
}

// scanner is a function which accepts a prefix of the given items, returning
// the number of items matched (zero for no match).
type scanner func(items []rune) uint

// lexRule is simply a rule associating matched characters with a given kind.
type lexRule struct {
	scan scanner
	kind uint
}

// unit accepts a single given character.
func unit(char rune) scanner {
	return func(items []rune) uint {
		if len(items) != 0 && items[0] == char {
			return 1
		}
		// fail
		return 0
	}
}

// oneOf accepts any one of the given characters.
func oneOf(chars ...rune) scanner {
	return func(items []rune) uint {
		if len(items) != 0 {
			for _, c := range chars {
				if items[0] == c {
					return 1
				}
			}
		}
		// fail
		return 0
	}
}

// within accepts any character within a given range.
func within(lowest, highest rune) scanner {
	return func(items []rune) uint {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		// fail
		return 0
	}
}

// many matches zero or more of a given item.
func many(accept scanner) scanner {
	return func(items []rune) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			if n := accept(items[index:]); n != 0 {
				index += n
				continue
			}
			//
			break
		}
		// done
		return index
	}
}

// number matches digits with an optional fractional part (e.g. "12", "1.5").
// A leading digit is required, hence ".5" is not a number.
func number(items []rune) uint {
	var (
		digit = within('0', '9')
		index = many(digit)(items)
	)
	//
	if index == 0 {
		return 0
	}
	// Optional fractional part
	if index < uint(len(items)) && items[index] == '.' {
		index = index + 1 + many(digit)(items[index+1:])
	}
	//
	return index
}

// braced matches an entire brace-delimited coefficient, failing on an unclosed
// opening brace.
func braced(items []rune) uint {
	if len(items) == 0 || items[0] != '{' {
		return 0
	}
	//
	for i := 1; i < len(items); i++ {
		if items[i] == '}' {
			return uint(i + 1)
		}
	}
	// unclosed
	return 0
}

// lexRules returns the (immutable) lexing rule table.  The table is built
// exactly once, on first use, and never mutated thereafter; hence subsequent
// concurrent reads are safe without locking.
var lexRules = sync.OnceValue(func() []lexRule {
	var (
		whitespace = many(oneOf(' ', '\t', '\n', '\r'))
		symbol     = many(func(items []rune) uint {
			if n := within('a', 'z')(items); n != 0 {
				return n
			}
			//
			return within('A', 'Z')(items)
		})
	)
	//
	return []lexRule{
		{unit('+'), PLUS},
		{unit('-'), MINUS},
		{unit('*'), STAR},
		{unit('^'), CARET},
		{braced, BRACED},
		{whitespace, WHITESPACE},
		{number, NUMBER},
		{symbol, SYMBOL},
	}
})

// scan tokenises the entire input in a single left-to-right pass.  On success,
// the returned token sequence always ends with an END_OF token and the stall
// index is -1.  Otherwise, the stall index identifies the first character
// which no rule accepted (e.g. an unclosed brace, or a character outside the
// grammar).
func scan(items []rune) (tokens []token, stall int) {
	var (
		rules = lexRules()
		index = 0
	)
	//
outer:
	for index < len(items) {
		for _, r := range rules {
			if n := r.scan(items[index:]); n > 0 {
				tokens = append(tokens, token{r.kind, NewSpan(index, index+int(n))})
				index += int(n)
				//
				continue outer
			}
		}
		// No rule applies
		return tokens, index
	}
	// Append end-of-input marker
	tokens = append(tokens, token{END_OF, NewSpan(index, index)})
	// Done
	return tokens, -1
}

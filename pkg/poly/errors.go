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

import "fmt"

// Span identifies a contiguous range of runes within the string being parsed.
type Span struct {
	start int
	end   int
}

// NewSpan constructs a span from a given starting (inclusive) and ending
// (exclusive) rune offset.
func NewSpan(start, end int) Span {
	if start > end {
		panic("invalid span")
	}
	//
	return Span{start, end}
}

// Start returns the starting offset of this span.
func (p Span) Start() int {
	return p.start
}

// End returns the (exclusive) ending offset of this span.
func (p Span) End() int {
	return p.end
}

// Length returns the number of runes covered by this span.
func (p Span) Length() int {
	return p.end - p.start
}

// ErrorCode distinguishes the classes of syntax error which parsing can
// produce.
type ErrorCode uint

const (
	// EmptyInput signals an input which was empty, or contained only
	// whitespace.
	EmptyInput ErrorCode = iota
	// UnexpectedCharacter signals a character (or token) which cannot occur at
	// the given position.
	UnexpectedCharacter
	// InvalidExponent signals an exponent which was negative, non-numeric or
	// otherwise malformed.
	InvalidExponent
	// MismatchedBraces signals a braced coefficient which was never closed.
	MismatchedBraces
	// UnknownIndeterminate signals a symbol which does not match the
	// configured indeterminate.
	UnknownIndeterminate
	// UnterminatedTerm signals an input which ended part way through a term.
	UnterminatedTerm
)

// String returns a human-readable name for this error code.
func (c ErrorCode) String() string {
	switch c {
	case EmptyInput:
		return "empty input"
	case UnexpectedCharacter:
		return "unexpected character"
	case InvalidExponent:
		return "invalid exponent"
	case MismatchedBraces:
		return "mismatched braces"
	case UnknownIndeterminate:
		return "unknown indeterminate"
	case UnterminatedTerm:
		return "unterminated term"
	}
	//
	return "unknown error"
}

// SyntaxError is a structured error which retains the offset into the original
// string where the error was detected, along with an error code and message.
type SyntaxError struct {
	code ErrorCode
	span Span
	msg  string
}

// syntaxError constructs a syntax error covering a given span.
func syntaxError(code ErrorCode, span Span, msg string) *SyntaxError {
	return &SyntaxError{code, span, msg}
}

// Code returns the error code identifying the class of this error.
func (p *SyntaxError) Code() ErrorCode {
	return p.code
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", p.span.Start(), p.span.End(), p.msg)
}

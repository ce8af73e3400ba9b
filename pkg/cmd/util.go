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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/polylab/go-poly/pkg/poly"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// ParsePolynomial parses a polynomial expression over the given coefficient
// domain, or reports the syntax error and exits.
func ParsePolynomial[C poly.Coefficient[C]](cmd *cobra.Command, input string) poly.Polynomial[C] {
	parser := poly.NewParser[C](GetString(cmd, "symbol"))
	// Parse expression
	p, err := parser.Parse(input)
	// Check for errors
	if err != nil {
		printSyntaxError(input, err)
		// Fail
		os.Exit(4)
	}
	// Done
	return p
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(input string, err *poly.SyntaxError) {
	span := err.Span()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(len(input)-span.Start(), span.Length()))
	// Print error
	fmt.Printf("%d:%d: %s\n", 1+span.Start(), 1+span.End(), err.Message())
	// Print line
	fmt.Println(input)
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", span.Start()))
	// Print highlight
	fmt.Println(strings.Repeat("^", length))
}

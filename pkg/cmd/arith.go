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

	"github.com/polylab/go-poly/pkg/coeff"
	"github.com/polylab/go-poly/pkg/poly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [flags] poly1 poly2",
	Short: "add two polynomials.",
	Long:  `Add two polynomial expressions and print the sum.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCoeffAgnosticCmd(cmd, args, arithCmds)
	},
}

var subCmd = &cobra.Command{
	Use:   "sub [flags] poly1 poly2",
	Short: "subtract two polynomials.",
	Long:  `Subtract one polynomial expression from another and print the difference.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCoeffAgnosticCmd(cmd, args, arithCmds)
	},
}

var mulCmd = &cobra.Command{
	Use:   "mul [flags] poly1 poly2",
	Short: "multiply two polynomials.",
	Long:  `Multiply two polynomial expressions and print the product.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCoeffAgnosticCmd(cmd, args, arithCmds)
	},
}

var divCmd = &cobra.Command{
	Use:   "div [flags] poly1 poly2",
	Short: "divide two polynomials.",
	Long: `Divide one polynomial expression by another and print the quotient
and remainder of the long division.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCoeffAgnosticCmd(cmd, args, arithCmds)
	},
}

// Available instances
var arithCmds = []CoeffAgnosticCmd{
	{"int", runArithCmd[coeff.Int64]},
	{"float", runArithCmd[coeff.Float64]},
	{"rat", runArithCmd[coeff.Rat]},
	{"complex", runArithCmd[coeff.Complex]},
	{"bls12377", runArithCmd[coeff.BLS12377]},
}

func runArithCmd[C poly.Field[C]](cmd *cobra.Command, args []string) {
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	var (
		style = poly.Style{Symbol: GetString(cmd, "symbol")}
		lhs   = ParsePolynomial[C](cmd, args[0])
		rhs   = ParsePolynomial[C](cmd, args[1])
	)
	//
	log.Debugf("parsed operands of degree %d and %d", lhs.Degree(), rhs.Degree())
	// Dispatch on the command name
	switch cmd.Name() {
	case "add":
		fmt.Println(poly.Format(lhs.Add(rhs), style))
	case "sub":
		fmt.Println(poly.Format(lhs.Sub(rhs), style))
	case "mul":
		fmt.Println(poly.Format(lhs.Mul(rhs), style))
	case "div":
		quo, rem, err := poly.QuoRem(lhs, rhs)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		fmt.Println(poly.Format(quo, style))
		//
		if !rem.IsZero() {
			fmt.Printf("remainder %s\n", poly.Format(rem, style))
		}
	default:
		panic("unknown arithmetic command encountered")
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(divCmd)
}

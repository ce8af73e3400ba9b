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

var evalCmd = &cobra.Command{
	Use:   "eval [flags] poly point",
	Short: "evaluate a polynomial at a point.",
	Long: `Evaluate a polynomial expression at a given point of its coefficient
domain, using Horner's method.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCoeffAgnosticCmd(cmd, args, evalCmds)
	},
}

// Available instances
var evalCmds = []CoeffAgnosticCmd{
	{"int", runEvalCmd[coeff.Int64]},
	{"float", runEvalCmd[coeff.Float64]},
	{"rat", runEvalCmd[coeff.Rat]},
	{"complex", runEvalCmd[coeff.Complex]},
	{"bls12377", runEvalCmd[coeff.BLS12377]},
}

func runEvalCmd[C poly.Field[C]](cmd *cobra.Command, args []string) {
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	var point C
	// Parse polynomial
	p := ParsePolynomial[C](cmd, args[0])
	// Parse evaluation point
	point, err := point.SetString(args[1])
	//
	if err != nil {
		fmt.Printf("invalid evaluation point \"%s\": %s\n", args[1], err)
		os.Exit(2)
	}
	//
	log.Debugf("evaluating degree %d polynomial", p.Degree())
	//
	fmt.Println(p.Eval(point).String())
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

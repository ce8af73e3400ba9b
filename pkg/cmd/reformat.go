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

	"github.com/polylab/go-poly/pkg/coeff"
	"github.com/polylab/go-poly/pkg/poly"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] poly",
	Short: "reformat a polynomial expression.",
	Long: `Parse a polynomial expression, normalise it and print it back in a
configurable style (term order, spacing and exponent notation).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runCoeffAgnosticCmd(cmd, args, fmtCmds)
	},
}

// Available instances
var fmtCmds = []CoeffAgnosticCmd{
	{"int", runFmtCmd[coeff.Int64]},
	{"float", runFmtCmd[coeff.Float64]},
	{"rat", runFmtCmd[coeff.Rat]},
	{"complex", runFmtCmd[coeff.Complex]},
	{"bls12377", runFmtCmd[coeff.BLS12377]},
}

func runFmtCmd[C poly.Field[C]](cmd *cobra.Command, args []string) {
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	var (
		style = styleFromFlags(cmd)
		width = GetUint(cmd, "textwidth")
		p     = ParsePolynomial[C](cmd, args[0])
	)
	// Determine suitable terminal width (if requested)
	if width == 0 {
		width = maxWidth()
	}
	//
	for _, line := range wrapText(poly.Format(p, style), width) {
		fmt.Println(line)
	}
}

// Construct a formatting style from the command-line flags.
func styleFromFlags(cmd *cobra.Command) poly.Style {
	style := poly.Style{Symbol: GetString(cmd, "symbol")}
	//
	if GetString(cmd, "order") == "asc" {
		style.Order = poly.Ascending
	}
	//
	if GetFlag(cmd, "compact") {
		style.Spacing = poly.Compact
	}
	//
	switch notation := GetString(cmd, "notation"); notation {
	case "standard":
		style.Notation = poly.Standard
	case "latex":
		style.Notation = poly.Latex
	case "concise":
		style.Notation = poly.Concise
	default:
		fmt.Printf("unknown notation \"%s\"\n", notation)
		os.Exit(2)
	}
	//
	return style
}

// Determine the width of the enclosing terminal, giving up on line wrapping
// when stdout is not a terminal.
func maxWidth() uint {
	if term.IsTerminal(0) {
		if width, _, err := term.GetSize(0); err == nil && width > 0 {
			return uint(width)
		}
	}
	// Not a terminal
	return ^uint(0)
}

// Wrap a rendered polynomial into lines of at most the given width, breaking
// only at spaces between terms.
func wrapText(text string, width uint) []string {
	var (
		lines []string
		line  strings.Builder
	)
	//
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && uint(line.Len()+1+len(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		} else if line.Len() > 0 {
			line.WriteString(" ")
		}
		//
		line.WriteString(word)
	}
	//
	return append(lines, line.String())
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().String("order", "desc", "term order (desc or asc)")
	fmtCmd.Flags().Bool("compact", false, "omit spacing around term separators")
	fmtCmd.Flags().String("notation", "standard", "exponent notation (standard, latex or concise)")
	fmtCmd.Flags().Uint("textwidth", 0, "maximum line width (0 to match the terminal)")
}

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
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "go-poly",
	Short: "A toolbox for univariate polynomials.",
	Long:  "A toolbox for parsing, formatting and computing with univariate polynomials.",
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("go-poly ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// CoeffAgnosticCmd represents a command to be executed over a given coefficient
// domain.
type CoeffAgnosticCmd struct {
	Domain   string
	Function func(*cobra.Command, []string)
}

// Run a coefficient-agnostic top-level command.
func runCoeffAgnosticCmd(cmd *cobra.Command, args []string, cmds []CoeffAgnosticCmd) {
	domain := GetString(cmd, "coeff")
	// Find command to dispatch
	for _, c := range cmds {
		if c.Domain == domain {
			// Match
			c.Function(cmd, args)
			// Done
			return
		}
	}
	//
	fmt.Printf("unknown coefficient domain \"%s\"\n", domain)
	os.Exit(3)
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("coeff", "rat", "coefficient domain to use throughout")
	rootCmd.PersistentFlags().String("symbol", "x", "indeterminate symbol to parse and print")
}

package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "PolyLab Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2026, "go-poly/internal/generator")

	data := intsData{
		Ints: []intSpec{
			{Name: "Int8", Base: "int8", Bits: 8},
			{Name: "Int16", Base: "int16", Bits: 16},
			{Name: "Int32", Base: "int32", Bits: 32},
			{Name: "Int64", Base: "int64", Bits: 64},
		},
	}

	assertNoError(bgen.Generate(data, "coeff", "templates",
		bavard.Entry{
			File:      "../../pkg/coeff/ints.go",
			Templates: []string{"ints.go.tmpl"},
		},
	), "for the fixed-width integer coefficients")

	// run gofmt on the generated code
	runCmd("gofmt", "-w", "../../pkg/coeff")

	// run goimports on the generated code
	runCmd("goimports", "-w", "../../pkg/coeff")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

// intSpec describes one fixed-width integer coefficient domain.
type intSpec struct {
	Name string
	Base string
	Bits int
}

type intsData struct {
	Ints []intSpec
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Fprintln(os.Stderr, msg)
		os.Exit(1)
	}
}

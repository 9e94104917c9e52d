package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/temirov/iconcheck/cmd/cli"
	"github.com/temirov/iconcheck/internal/icons"
)

const (
	exitErrorTemplateConstant = "%v\n"
	generalFailureExitCode    = 1
)

// main executes the iconcheck command-line application.
func main() {
	executionError := cli.Execute()
	if executionError == nil {
		return
	}

	var checkFailure *icons.CheckFailedError
	if errors.As(executionError, &checkFailure) {
		os.Exit(checkFailure.ExitCode())
	}

	fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
	os.Exit(generalFailureExitCode)
}

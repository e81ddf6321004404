package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"quill/frontend-go/pkg/typechecker"
)

var (
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow)
	hintStyle    = color.New(color.Faint)
	typeStyle    = color.New(color.FgCyan)
	okLabel      = color.New(color.FgGreen)
)

// printDiagnostic renders one checker finding to stderr. Line 0 means
// the checker could not attribute a line, so the location shows the
// file alone.
func printDiagnostic(path string, diag typechecker.Diagnostic) {
	label := warningLabel
	if diag.Severity == typechecker.SeverityError {
		label = errorLabel
	}
	location := path
	if diag.Line > 0 {
		location = fmt.Sprintf("%s:%d", path, diag.Line)
	}
	fmt.Fprintf(os.Stderr, "%s: %s: %s\n", location, label.Sprint(string(diag.Severity)), diag.Message)
	if diag.Hint != "" {
		fmt.Fprintf(os.Stderr, "    %s\n", hintStyle.Sprintf("hint: %s", diag.Hint))
	}
}

package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  quill check [--strict] [target]")
	fmt.Fprintln(os.Stderr, "  quill check [--strict] <file.quill ...>")
	fmt.Fprintln(os.Stderr, "  quill <file.quill ...>")
	fmt.Fprintln(os.Stderr, "  quill repl")
	fmt.Fprintln(os.Stderr, "  quill deps install")
	fmt.Fprintln(os.Stderr, "  quill version")
}

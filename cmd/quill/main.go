package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const cliToolVersion = "quill-cli 0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// A project .env may carry QUILL_STRICT, QUILL_PATH, or QUILL_HOME.
	_ = godotenv.Load()

	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "check":
		return runCheck(args[1:])
	case "repl":
		return runRepl(args[1:])
	case "deps":
		return runDeps(args[1:])
	default:
		// Bare file arguments mean check, the front end's main verb.
		return runCheck(args)
	}
}

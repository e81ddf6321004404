package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"quill/frontend-go/pkg/ast"
	"quill/frontend-go/pkg/driver"
	"quill/frontend-go/pkg/parser"
	"quill/frontend-go/pkg/typechecker"
)

// runCheck parses and checks each requested file. Diagnostics go to
// stderr; the exit status stays 0 unless a file could not be read or
// parsed, or strict mode saw an error-severity diagnostic. Warnings
// never affect the exit status.
func runCheck(args []string) int {
	strict := strictFromEnv()
	files := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--strict" {
			strict = true
			continue
		}
		files = append(files, arg)
	}

	manifest, manifestErr := loadNearestManifest()
	if manifestErr != nil {
		if len(files) == 0 {
			fmt.Fprintf(os.Stderr, "failed to load manifest: %v\n", manifestErr)
			return 1
		}
		fmt.Fprintf(os.Stderr, "warning: unable to load manifest (%v); checking files directly\n", manifestErr)
	}

	if len(files) == 0 {
		if manifest == nil {
			fmt.Fprintln(os.Stderr, "quill check requires a target or source file (package.yml not found)")
			return 1
		}
		target, err := manifest.DefaultTarget()
		if err != nil {
			fmt.Fprintf(os.Stderr, "manifest error: %v\n", err)
			return 1
		}
		entry, err := manifest.EntryPath(target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to resolve target %q: %v\n", target.OriginalName, err)
			return 1
		}
		files = append(files, entry)
	} else if manifest != nil {
		// A bare argument may name a manifest target instead of a file.
		for i, candidate := range files {
			if strings.ContainsAny(candidate, `/\`) {
				continue
			}
			if target, ok := manifest.FindTarget(candidate); ok {
				entry, err := manifest.EntryPath(target)
				if err != nil {
					fmt.Fprintf(os.Stderr, "failed to resolve target %q: %v\n", target.OriginalName, err)
					return 1
				}
				files[i] = entry
			}
		}
	}

	checker := typechecker.New()
	checker.SetStrictLint(strict)
	checker.SetParseSource(parseAdapter)
	checker.SetSearchRoots(collectRoots(manifest))

	exit := 0
	errorCount, warningCount := 0, 0
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", errorLabel.Sprint("error"), err)
			exit = 1
			continue
		}
		source := string(data)
		mod, err := parser.ParseSource(source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s: %v\n", file, errorLabel.Sprint("error"), err)
			exit = 1
			continue
		}
		checker.SetSource(source)
		checker.SetFile(file)
		for _, diag := range checker.Check(mod) {
			printDiagnostic(file, diag)
			if diag.Severity == typechecker.SeverityError {
				errorCount++
			} else {
				warningCount++
			}
		}
	}

	if exit == 0 && errorCount == 0 && warningCount == 0 {
		fmt.Fprintf(os.Stdout, "%s %d file(s) clean\n", okLabel.Sprint("check:"), len(files))
	} else if errorCount > 0 || warningCount > 0 {
		fmt.Fprintf(os.Stdout, "check: %d error(s), %d warning(s)\n", errorCount, warningCount)
	}
	if strict && errorCount > 0 {
		exit = 1
	}
	return exit
}

func parseAdapter(source, _ string) (*ast.Module, error) {
	return parser.ParseSource(source)
}

func strictFromEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("QUILL_STRICT"))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

// loadNearestManifest ascends from the working directory. A missing
// manifest is not an error; a malformed one is.
func loadNearestManifest() (*driver.Manifest, error) {
	path, err := driver.FindManifest(".")
	if err != nil {
		if errors.Is(err, driver.ErrManifestNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return driver.LoadManifest(path)
}

// collectRoots merges QUILL_PATH roots with the manifest's dependency
// roots. Manifest entries win on collision since they are pinned.
func collectRoots(manifest *driver.Manifest) map[string]string {
	roots := driver.PathListRoots(os.Getenv("QUILL_PATH"))
	if manifest == nil {
		return roots
	}
	cache, err := driver.CacheDir()
	if err != nil {
		cache = ""
	}
	for name, dir := range driver.SearchRoots(manifest, cache) {
		roots[name] = dir
	}
	return roots
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"quill/frontend-go/pkg/driver"
	"quill/frontend-go/pkg/parser"
	"quill/frontend-go/pkg/typechecker"
)

const (
	historyFile = ".quill_history"
	promptMain  = "quill> "
	promptCont  = "  ...> "
	replBanner  = "Quill repl. Lines are checked, not run; expressions echo their inferred type. :help for commands."
)

const replHelp = `repl commands:
  :help            show this help
  :quit / :exit    leave the repl
  :load <file>     pull a file's declarations into the session
  :reset           drop the session's declarations and bindings
`

func runRepl(args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(os.Stderr, "quill repl does not take arguments (received %s)\n", strings.Join(args, " "))
		return 1
	}

	manifest, manifestErr := loadNearestManifest()
	if manifestErr != nil {
		fmt.Fprintf(os.Stderr, "warning: unable to load manifest (%v); continuing without it\n", manifestErr)
	}

	fmt.Fprintln(os.Stdout, replBanner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	session := newReplSession(manifest)

	for {
		code, ok := readInput(ln, promptMain, promptCont)
		if !ok {
			fmt.Fprintln(os.Stdout)
			break
		}
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if done := session.handleCommand(trimmed); done {
				break
			}
			continue
		}
		session.submit(code)
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}

// replSession accumulates accepted source so declarations and lets
// stay visible to later lines. Checking is whole-buffer each time;
// previously reported findings are filtered out of the output.
type replSession struct {
	manifest *driver.Manifest
	checker  *typechecker.Checker
	source   string
	prev     []typechecker.Diagnostic
}

func newReplSession(manifest *driver.Manifest) *replSession {
	s := &replSession{manifest: manifest}
	s.reset()
	return s
}

func (s *replSession) reset() {
	s.checker = typechecker.New()
	s.checker.SetParseSource(parseAdapter)
	s.checker.SetSearchRoots(collectRoots(s.manifest))
	if cwd, err := os.Getwd(); err == nil {
		// Anchors ./relative imports at the working directory.
		s.checker.SetFile(filepath.Join(cwd, "repl.quill"))
	}
	s.source = ""
	s.prev = nil
}

func (s *replSession) submit(code string) {
	candidate := code
	if s.source != "" {
		candidate = s.source + "\n" + code
	}
	mod, err := parser.ParseSource(candidate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", errorLabel.Sprint("error"), err)
		return
	}
	s.checker.SetSource(candidate)
	diags := s.checker.Check(mod)
	for _, diag := range newDiagnostics(s.prev, diags) {
		printDiagnostic("repl", diag)
	}
	if t := s.checker.TrailingType(); t != nil {
		fmt.Fprintln(os.Stdout, typeStyle.Sprint(t.Name()))
	}
	s.source = candidate
	s.prev = diags
}

func (s *replSession) handleCommand(line string) bool {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case ":help":
		fmt.Fprint(os.Stdout, replHelp)
	case ":quit", ":exit":
		return true
	case ":reset":
		s.reset()
		fmt.Fprintln(os.Stdout, "session reset.")
	case ":load":
		if len(fields) < 2 {
			fmt.Fprintln(os.Stdout, "usage: :load <file>")
			return false
		}
		path := fields[1]
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stdout, "cannot read %s: %v\n", path, err)
			return false
		}
		s.submit(string(data))
	default:
		fmt.Fprintln(os.Stdout, "unknown command. :help lists commands.")
	}
	return false
}

// newDiagnostics drops the findings already reported on an earlier
// submit. Earlier lines keep their line numbers as the buffer grows,
// so a plain multiset difference suffices.
func newDiagnostics(prev, cur []typechecker.Diagnostic) []typechecker.Diagnostic {
	if len(prev) == 0 {
		return cur
	}
	seen := make(map[typechecker.Diagnostic]int, len(prev))
	for _, diag := range prev {
		seen[diag]++
	}
	var fresh []typechecker.Diagnostic
	for _, diag := range cur {
		if seen[diag] > 0 {
			seen[diag]--
			continue
		}
		fresh = append(fresh, diag)
	}
	return fresh
}

// readInput keeps prompting while the buffer fails to parse because
// the input ran out, so blocks and match arms can span lines.
func readInput(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C abandons the partial input.
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, perr := parser.ParseSource(src); perr == nil || !looksIncomplete(perr) {
			return src, true
		}
	}
}

func looksIncomplete(err error) bool {
	return strings.Contains(err.Error(), "end of input")
}

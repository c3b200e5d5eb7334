package lox

import (
	"io"
)

// Session runs Lox source against one persistent global scope. A REPL
// keeps a single Session alive across lines so `var x = 1;` on one line
// is visible to the next; running a script file uses a Session for
// exactly one call to Run.
type Session struct {
	out         io.Writer
	report      *reporter
	interpreter *Interpreter
}

// NewSession returns a Session that writes program output and
// diagnostics to out, bounding call depth per cfg.MaxCallDepth.
func NewSession(out io.Writer, cfg Config) *Session {
	report := newReporter(out)
	return &Session{
		out:         out,
		report:      report,
		interpreter: NewInterpreter(out, report, cfg.MaxCallDepth),
	}
}

// HadError reports whether any Run since the session began, or since the
// last ResetError, saw a compile-time error.
func (s *Session) HadError() bool {
	return s.report.hadError
}

// HadRuntimeError reports whether any Run since the session began, or
// since the last ResetError, saw a runtime error.
func (s *Session) HadRuntimeError() bool {
	return s.report.hadRuntimeError
}

// ResetError clears both error flags. A REPL calls this between lines so
// a mistake on one line doesn't poison the exit status of the whole
// session.
func (s *Session) ResetError() {
	s.report.resetError()
}

// Run scans, parses, resolves and interprets source in order, stopping
// early if scanning/parsing or resolution reported an error — the
// interpreter never runs over a program known to be malformed.
func (s *Session) Run(source string) {
	scanner := NewScanner(source, s.report)
	tokens := scanner.ScanTokens()

	parser := NewParser(tokens, s.report)
	statements := parser.Parse()

	if s.report.hadError {
		return
	}

	resolver := NewResolver(s.interpreter, s.report)
	resolver.Resolve(statements)
	if s.report.hadError {
		return
	}

	s.interpreter.Interpret(statements)
}

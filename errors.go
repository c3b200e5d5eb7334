package lox

import (
	"fmt"
	"io"
	"strconv"
)

// reporter formats diagnostics in the stable shape spec.md §6 requires:
// "[line N] Error[ at '<lexeme>']: <message>" for compile-time errors
// and "[line N] <message>" for runtime errors, and tracks whether any
// compile-time or runtime error has been seen so the driver can decide
// what to run next and which exit code to use.
type reporter struct {
	out             io.Writer
	hadError        bool
	hadRuntimeError bool
}

func newReporter(out io.Writer) *reporter {
	return &reporter{out: out}
}

func (r *reporter) line(line int, message string) {
	r.report(line, "", message)
}

// token reports an error against a specific token, using the
// nearest-lexeme phrasing the parser and resolver both rely on.
func (r *reporter) token(tok *Token, message string) {
	if tok.Type == EOF {
		r.report(tok.Line, " at end", message)
	} else {
		r.report(tok.Line, " at '"+tok.Lexeme+"'", message)
	}
}

func (r *reporter) report(line int, where, message string) {
	r.hadError = true
	fmt.Fprintf(r.out, "[line %d] Error%s: %s\n", line, where, message)
}

func (r *reporter) runtime(err *RuntimeError) {
	r.hadRuntimeError = true
	fmt.Fprintf(r.out, "[line %d] %s\n", err.Token.Line, err.Message)
}

// scan reports a lexical error found while scanning.
func (r *reporter) scan(err *scanError) {
	r.line(err.line, err.message)
}

// resolve reports a static-analysis error found by the resolver.
func (r *reporter) resolve(err *resolveError) {
	r.token(err.token, err.message)
}

// resetError clears both the compile-error and the runtime-error flag
// between REPL lines, so an error on one line does not poison the next.
func (r *reporter) resetError() {
	r.hadError = false
	r.hadRuntimeError = false
}

// RuntimeError is the only error type that crosses the interpreter
// boundary as a panic value (besides the internal control-flow signals
// in control.go). It carries the culprit token so the reporter can print
// a line number.
type RuntimeError struct {
	Token   *Token
	Message string
}

// NewRuntimeError constructs a RuntimeError.
func NewRuntimeError(token *Token, message string) *RuntimeError {
	return &RuntimeError{Token: token, Message: message}
}

func (e *RuntimeError) Error() string {
	return e.Token.String() + " " + e.Message
}

// parseError is raised (via panic) by the parser on any statement-level
// or expression-level grammar violation. declaration() recovers it and
// synchronizes; it never escapes the parser.
type parseError struct {
	token   *Token
	message string
}

func newParseError(token *Token, message string) *parseError {
	return &parseError{token: token, message: message}
}

func (e *parseError) Error() string {
	return e.message
}

// scanError reports a lexical error found while scanning, e.g. an
// unterminated string or an unrecognized character. The scanner never
// panics on one: it keeps scanning so later errors on the same source
// are found in one pass, reporting each through reporter.scan.
type scanError struct {
	line    int
	message string
}

func newScanError(line int, message string) *scanError {
	return &scanError{line: line, message: message}
}

func (e *scanError) Error() string {
	return "[line " + strconv.Itoa(e.line) + "] " + e.message
}

// resolveError reports a static-analysis error found by the resolver,
// e.g. a duplicate local declaration or a top-level return. Like
// scanError, the resolver keeps walking after reporting one so it can
// surface more than a single mistake per pass.
type resolveError struct {
	token   *Token
	message string
}

func newResolveError(token *Token, message string) *resolveError {
	return &resolveError{token: token, message: message}
}

func (e *resolveError) Error() string {
	return e.token.String() + " " + e.message
}

// illegalIndexError reports an out-of-range array access or assignment.
type illegalIndexError struct {
	index   int
	message string
}

func newIllegalIndexError(index int, message string) *illegalIndexError {
	return &illegalIndexError{index: index, message: message}
}

func (e *illegalIndexError) Error() string {
	return "out of bound: " + strconv.Itoa(e.index) + ", " + e.message
}

// stackError reports an out-of-range access on the resolver's scope stack.
type stackError struct {
	top     int
	message string
}

func newStackError(top int, message string) *stackError {
	return &stackError{top: top, message: message}
}

func (e *stackError) Error() string {
	return "out of bound: " + strconv.Itoa(e.top) + ", " + e.message
}

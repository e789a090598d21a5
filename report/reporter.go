// Package report implements loxgo's shared diagnostic sink. A single
// Reporter is constructed by the CLI or REPL and passed by pointer into the
// lexer, parser, resolver, and interpreter, so every phase reports through
// the same place instead of each phase owning its own error state.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/loxgo/token"
)

// Reporter accumulates the two error flags the CLI needs to pick an exit
// code: a static error from lexing/parsing/resolving (exit 65) and a
// runtime error from evaluation (exit 70).
type Reporter struct {
	Out io.Writer // diagnostics are written here (stderr by default)

	HadError        bool
	HadRuntimeError bool

	errColor *color.Color
}

// New creates a Reporter that writes to stderr with color enabled only
// when stderr is a terminal.
func New() *Reporter {
	c := color.New(color.FgRed)
	if fi, err := os.Stderr.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return &Reporter{Out: os.Stderr, errColor: c}
}

// Reset clears both error flags. The REPL calls this between lines so an
// error on one line does not poison the next.
func (r *Reporter) Reset() {
	r.HadError = false
	r.HadRuntimeError = false
}

// Line reports a static diagnostic (lex, parse, or resolve error) located
// by a bare line number, with no "at X" context. This is the lexer's only
// reporting shape, since it has no token to point at when it finds an
// unexpected character.
func (r *Reporter) Line(line int, message string) {
	r.HadError = true
	r.report(line, "", message)
}

// Token reports a static diagnostic located at a specific token: "at end"
// for EOF, otherwise the token's lexeme.
func (r *Reporter) Token(tok token.Token, message string) {
	r.HadError = true
	if tok.Kind == token.EOF {
		r.report(tok.Line, "at end", message)
	} else {
		r.report(tok.Line, fmt.Sprintf("at '%s'", tok.Lexeme), message)
	}
}

// Runtime reports a runtime error raised by the evaluator. Unlike static
// errors, a runtime error carries no "where" clause — the original source
// (ErrorManager.runtimeError) prints just "[line N] message".
func (r *Reporter) Runtime(tok token.Token, message string) {
	r.HadRuntimeError = true
	r.errColor.Fprintf(r.Out, "[line %d] %s\n", tok.Line, message)
}

func (r *Reporter) report(line int, where, message string) {
	if where == "" {
		r.errColor.Fprintf(r.Out, "[line %d] Error: %s\n", line, message)
		return
	}
	r.errColor.Fprintf(r.Out, "[line %d] Error %s: %s\n", line, where, message)
}

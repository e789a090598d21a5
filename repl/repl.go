// Package repl implements the Read-Eval-Print Loop for loxgo.
//
// The REPL reads one logical statement at a time, feeds it through the same
// lex/parse/resolve/evaluate pipeline a script uses, and keeps a single
// Interpreter alive for the whole session so variable and function
// definitions persist across lines, exactly as spec.md's External
// Interfaces section describes.
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/loxgo/interpreter"
	"github.com/akashmaji946/loxgo/report"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Errors are colored by report.Reporter itself (it owns the error color),
// so the REPL only needs the colors for its own banner and prompt text.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session: the
// banner, version line, and prompt shown to the user.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl builds a Repl with the given banner, version, author, separator
// line, license, and prompt.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner and usage hints.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to loxgo!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop: read a line (continuing to read more lines
// while braces/parens are still open), run it against a session-wide
// Interpreter, and print any reported errors in red.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	reporter := report.New()
	reporter.Out = writer
	interp := interpreter.New(reporter)
	interp.SetStdout(writer)

	var pending strings.Builder
	depth := 0

	for {
		prompt := r.Prompt
		if depth > 0 {
			prompt = continuationPrompt(len(r.Prompt))
		}
		rl.SetPrompt(prompt)

		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		if depth == 0 {
			trimmed := strings.Trim(line, " \n\t\r")
			if trimmed == "" {
				continue
			}
			if trimmed == ".exit" {
				writer.Write([]byte("Good Bye!\n"))
				return
			}
		}

		rl.SaveHistory(line)
		pending.WriteString(line)
		pending.WriteByte('\n')
		depth += braceDelta(line)

		if depth > 0 {
			continue
		}

		source := pending.String()
		pending.Reset()
		depth = 0

		reporter.Reset()
		interpreter.Run(source, reporter, interp)
	}
}

// braceDelta counts net unclosed `{`/`(` nesting introduced by line,
// letting the REPL keep reading additional lines for a block or call
// spanning several lines instead of reporting "Expect expression." the
// moment the first line ends mid-construct.
func braceDelta(line string) int {
	delta := 0
	inString := false
	for _, ch := range line {
		switch {
		case inString:
			if ch == '"' {
				inString = false
			}
		case ch == '"':
			inString = true
		case ch == '{' || ch == '(':
			delta++
		case ch == '}' || ch == ')':
			delta--
		}
	}
	return delta
}

func continuationPrompt(width int) string {
	if width <= 1 {
		return "... "
	}
	return strings.Repeat(".", width-1) + " "
}

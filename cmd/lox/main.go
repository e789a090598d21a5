// Command lox is the loxgo interpreter's entry point: run a script file, or
// start an interactive REPL when invoked with no arguments.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/loxgo/astprint"
	"github.com/akashmaji946/loxgo/interpreter"
	"github.com/akashmaji946/loxgo/lexer"
	"github.com/akashmaji946/loxgo/parser"
	"github.com/akashmaji946/loxgo/report"
	"github.com/akashmaji946/loxgo/repl"
	"github.com/akashmaji946/loxgo/resolver"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	version = "v0.1.0"
	author  = "loxgo"
	license = "MIT"
	prompt  = "lox >>> "
	line    = "----------------------------------------------------------------"
)

var banner = `
  ██╗      ██████╗ ██╗  ██╗ ██████╗  ██████╗
  ██║     ██╔═══██╗╚██╗██╔╝██╔════╝ ██╔═══██╗
  ██║     ██║   ██║ ╚███╔╝ ██║  ███╗██║   ██║
  ██║     ██║   ██║ ██╔██╗ ██║   ██║██║   ██║
  ███████╗╚██████╔╝██╔╝ ██╗╚██████╔╝╚██████╔╝
  ╚══════╝ ╚═════╝ ╚═╝  ╚═╝ ╚═════╝  ╚═════╝
`

var redColor = color.New(color.FgRed)

var dumpAST bool

func main() {
	root := &cobra.Command{
		Use:     "lox [script]",
		Short:   "loxgo is a tree-walking interpreter for the Lox language",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				r := repl.NewRepl(banner, version, author, line, license, prompt)
				r.Start(os.Stdin, os.Stdout)
				return nil
			}
			runFile(args[0])
			return nil
		},
	}
	root.Flags().BoolVar(&dumpAST, "ast", false, "print the parsed AST instead of running the script")

	if err := root.Execute(); err != nil {
		redColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runFile reads source from path, runs it, and exits with the code
// spec.md's External Interfaces section assigns: 65 for a static error
// (lex/parse/resolve), 70 for a runtime error, 0 on success.
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		os.Exit(1)
	}

	reporter := report.New()

	if dumpAST {
		toks := lexer.New(string(source), reporter).ScanTokens()
		if reporter.HadError {
			os.Exit(65)
		}
		stmts := parser.New(toks, reporter).Parse()
		if reporter.HadError {
			os.Exit(65)
		}
		fmt.Print(astprint.Print(stmts))
		return
	}

	toks := lexer.New(string(source), reporter).ScanTokens()
	if reporter.HadError {
		os.Exit(65)
	}

	stmts := parser.New(toks, reporter).Parse()
	if reporter.HadError {
		os.Exit(65)
	}

	locals := resolver.New(reporter).Resolve(stmts)
	if reporter.HadError {
		os.Exit(65)
	}

	interp := interpreter.New(reporter)
	interp.SetLocals(locals)
	interp.Interpret(stmts)

	if reporter.HadRuntimeError {
		os.Exit(70)
	}
}

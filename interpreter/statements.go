package interpreter

import (
	"fmt"

	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/environment"
	"github.com/akashmaji946/loxgo/value"
)

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evaluate(s.Expr)
		return err

	case *ast.PrintStmt:
		v, err := in.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.stdout, toDisplayString(v))
		return nil

	case *ast.VarStmt:
		var v value.Value = value.Nil{}
		if s.Initializer != nil {
			var err error
			v, err = in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		in.environment.Define(s.Name.Lexeme, v)
		return nil

	case *ast.BlockStmt:
		return in.executeBlock(s.Stmts, environment.New(in.environment))

	case *ast.IfStmt:
		cond, err := in.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if value.Truthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *ast.WhileStmt:
		return in.execWhile(s)

	case *ast.ForStmt:
		return in.execFor(s)

	case *ast.FunctionStmt:
		fn := &Function{declaration: s, closure: in.environment}
		in.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.ReturnStmt:
		var v value.Value = value.Nil{}
		if s.Value != nil {
			var err error
			v, err = in.evaluate(s.Value)
			if err != nil {
				return err
			}
		}
		return returnSignal{value: v}

	case *ast.BreakStmt:
		return breakSignal{}

	case *ast.ContinueStmt:
		return continueSignal{}

	default:
		panic("interpreter: unhandled statement node")
	}
}

// executeBlock runs stmts under env, always restoring the previous
// environment on the way out — including when a statement returns a
// control-flow signal or a runtime error. This finalize-on-all-paths shape
// is what keeps `break`/`continue`/`return` from leaking a stale
// environment into the caller's frame.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range stmts {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// execWhile loops while Cond is truthy, absorbing continueSignal (just
// re-tests Cond) and breakSignal (exits the loop, consuming the signal so
// it doesn't propagate further).
func (in *Interpreter) execWhile(s *ast.WhileStmt) error {
	for {
		cond, err := in.evaluate(s.Cond)
		if err != nil {
			return err
		}
		if !value.Truthy(cond) {
			return nil
		}
		err = in.execute(s.Body)
		if err == nil {
			continue
		}
		switch err.(type) {
		case breakSignal:
			return nil
		case continueSignal:
			continue
		default:
			return err
		}
	}
}

// execFor runs Init once in a fresh child environment, then behaves like
// execWhile except that Incr always runs before re-testing Cond — even
// when the body signaled continue. This is exactly the semantic spec.md's
// Open Questions calls out as the reason a desugared-to-While for loop
// isn't sufficient.
func (in *Interpreter) execFor(s *ast.ForStmt) error {
	previous := in.environment
	in.environment = environment.New(previous)
	defer func() { in.environment = previous }()

	if s.Init != nil {
		if err := in.execute(s.Init); err != nil {
			return err
		}
	}

	for {
		if s.Cond != nil {
			cond, err := in.evaluate(s.Cond)
			if err != nil {
				return err
			}
			if !value.Truthy(cond) {
				return nil
			}
		}

		switch err := in.execute(s.Body).(type) {
		case nil:
			// fall through to increment
		case breakSignal:
			return nil
		case continueSignal:
			// fall through to increment
		default:
			return err
		}

		if s.Incr != nil {
			if _, err := in.evaluate(s.Incr); err != nil {
				return err
			}
		}
	}
}

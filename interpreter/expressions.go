package interpreter

import (
	"math"

	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/token"
	"github.com/akashmaji946/loxgo/value"
)

func (in *Interpreter) evaluate(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return e.Value, nil

	case *ast.GroupingExpr:
		return in.evaluate(e.Inner)

	case *ast.VariableExpr:
		return in.lookUpVariable(e.Tok, e)

	case *ast.AssignExpr:
		v, err := in.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[e]; ok {
			in.environment.AssignAt(distance, e.Tok.Lexeme, v)
		} else if err := in.Globals.Assign(e.Tok, v); err != nil {
			return nil, in.runtimeErr(e.Tok, "%s", err.Error())
		}
		return v, nil

	case *ast.UnaryExpr:
		return in.evalUnary(e)

	case *ast.BinaryExpr:
		return in.evalBinary(e)

	case *ast.LogicalExpr:
		return in.evalLogical(e)

	case *ast.TernaryExpr:
		cond, err := in.evaluate(e.Cond)
		if err != nil {
			return nil, err
		}
		if value.Truthy(cond) {
			return in.evaluate(e.Then)
		}
		return in.evaluate(e.Else)

	case *ast.CallExpr:
		return in.evalCall(e)

	default:
		panic("interpreter: unhandled expression node")
	}
}

// lookUpVariable consults the resolver's side table: a recorded distance
// uses the fast GetAt path, absence means the name resolves against
// globals directly.
func (in *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (value.Value, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.environment.GetAt(distance, name.Lexeme), nil
	}
	v, err := in.Globals.Get(name)
	if err != nil {
		return nil, in.runtimeErr(name, "%s", err.Error())
	}
	return v, nil
}

func (in *Interpreter) evalUnary(e *ast.UnaryExpr) (value.Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.Bang:
		return value.Bool(!value.Truthy(right)), nil
	case token.Minus:
		n, ok := right.(value.Number)
		if !ok {
			return nil, in.runtimeErr(e.Op, "Operand must be a number.")
		}
		return -n, nil
	default:
		panic("interpreter: unhandled unary operator")
	}
}

func (in *Interpreter) evalLogical(e *ast.LogicalExpr) (value.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.Or {
		if value.Truthy(left) {
			return left, nil
		}
	} else {
		if !value.Truthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evalCall(e *ast.CallExpr) (value.Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(value.Callable)
	if !ok {
		return nil, in.runtimeErr(e.ClosingParen, "Can only call functions.")
	}
	if len(args) != fn.Arity() {
		return nil, in.runtimeErr(e.ClosingParen, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(in, args)
}

// asNumber returns v as a Number, or a runtime error located at op with the
// same "Operand must be a number." message for every operator.
func (in *Interpreter) asNumber(op token.Token, v value.Value) (value.Number, error) {
	n, ok := v.(value.Number)
	if !ok {
		return 0, in.runtimeErr(op, "Operand must be a number.")
	}
	return n, nil
}

func (in *Interpreter) asIntegral(op token.Token, v value.Value) (int64, error) {
	n, err := in.asNumber(op, v)
	if err != nil {
		return 0, err
	}
	if !value.IsIntegral(n) {
		return 0, in.runtimeErr(op, "Operand must be an integer.")
	}
	return int64(n), nil
}

func (in *Interpreter) evalBinary(e *ast.BinaryExpr) (value.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.Plus:
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(value.String); ok {
			if rs, ok := right.(value.String); ok {
				return ls + rs, nil
			}
		}
		return nil, in.runtimeErr(e.Op, "Operands must be two numbers or two strings.")

	case token.Minus, token.Star, token.Slash, token.StarStar,
		token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		ln, err := in.asNumber(e.Op, left)
		if err != nil {
			return nil, err
		}
		rn, err := in.asNumber(e.Op, right)
		if err != nil {
			return nil, err
		}
		return in.numericBinary(e.Op, ln, rn)

	case token.Amp, token.Pipe, token.Caret, token.LessLess, token.GreaterGreat:
		li, err := in.asIntegral(e.Op, left)
		if err != nil {
			return nil, err
		}
		ri, err := in.asIntegral(e.Op, right)
		if err != nil {
			return nil, err
		}
		return in.bitwiseBinary(e.Op, li, ri)

	case token.BangEqual:
		return value.Bool(!value.Equal(left, right)), nil
	case token.EqualEqual:
		return value.Bool(value.Equal(left, right)), nil

	default:
		panic("interpreter: unhandled binary operator")
	}
}

func (in *Interpreter) numericBinary(op token.Token, l, r value.Number) (value.Value, error) {
	switch op.Kind {
	case token.Minus:
		return l - r, nil
	case token.Star:
		return l * r, nil
	case token.Slash:
		if r == 0 {
			return nil, in.runtimeErr(op, "Division by zero.")
		}
		return l / r, nil
	case token.StarStar:
		return value.Number(math.Pow(float64(l), float64(r))), nil
	case token.Greater:
		return value.Bool(l > r), nil
	case token.GreaterEqual:
		return value.Bool(l >= r), nil
	case token.Less:
		return value.Bool(l < r), nil
	case token.LessEqual:
		return value.Bool(l <= r), nil
	default:
		panic("interpreter: unhandled numeric operator")
	}
}

func (in *Interpreter) bitwiseBinary(op token.Token, l, r int64) (value.Value, error) {
	switch op.Kind {
	case token.Amp:
		return value.Number(l & r), nil
	case token.Pipe:
		return value.Number(l | r), nil
	case token.Caret:
		return value.Number(l ^ r), nil
	case token.LessLess:
		return value.Number(l << uint(r)), nil
	case token.GreaterGreat:
		return value.Number(l >> uint(r)), nil
	default:
		panic("interpreter: unhandled bitwise operator")
	}
}

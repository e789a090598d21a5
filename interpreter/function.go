package interpreter

import (
	"fmt"

	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/environment"
	"github.com/akashmaji946/loxgo/value"
)

// Function is a user-defined Lox function: its declaration plus the
// environment that was current when it was declared. Capturing that
// environment by reference (not by copy) is exactly what gives Lox
// closures their semantics — see DESIGN.md's grounding on the teacher's
// function.Function and the original source's LoxFunction.
type Function struct {
	declaration *ast.FunctionStmt
	closure     *environment.Environment
}

func (f *Function) Type() string { return "function" }

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}

func (f *Function) Arity() int { return len(f.declaration.Params) }

// Call creates a frame off the closure, binds each parameter to its
// argument, and executes the body as a block inside that frame. A return
// signal yields its value; falling off the end of the body yields nil.
func (f *Function) Call(interp interface{}, args []value.Value) (value.Value, error) {
	in := interp.(*Interpreter)

	env := environment.New(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := in.executeBlock(f.declaration.Body, env)
	if ret, ok := err.(returnSignal); ok {
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	return value.Nil{}, nil
}

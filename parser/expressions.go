package parser

import (
	"github.com/akashmaji946/loxgo/ast"
	"github.com/akashmaji946/loxgo/token"
	"github.com/akashmaji946/loxgo/value"
)

// expression is the grammar's entry point: assignment → ternary → ... The
// whole ladder from spec.md §4.2 is climbed by one method per precedence
// level, lowest first.
func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment parses the right-associative `=` by first parsing the
// left-hand side as a general expression, then rewriting a bare Variable
// into an Assign if `=` follows. Any other left-hand side is a reported
// "invalid assignment target" error that does not abort parsing (the
// statement still parses; only the target is wrong).
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.ternary()
	if err != nil {
		return nil, err
	}

	if p.match(token.Equal) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if v, ok := expr.(*ast.VariableExpr); ok {
			return &ast.AssignExpr{Tok: v.Tok, Value: value}, nil
		}
		p.reporter.Token(equals, "Invalid assignment target.")
		return expr, nil
	}

	return expr, nil
}

// ternary is right-associative: `a ? b : c ? d : e` parses as
// `a ? b : (c ? d : e)`, achieved by recursing into ternary for the else
// branch.
func (p *Parser) ternary() (ast.Expr, error) {
	cond, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.match(token.Question) {
		then, err := p.or()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.Colon, "Expect ':' in ternary expression."); err != nil {
			return nil, err
		}
		elseExpr, err := p.ternary()
		if err != nil {
			return nil, err
		}
		return &ast.TernaryExpr{Cond: cond, Then: then, Else: elseExpr}, nil
	}
	return cond, nil
}

func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(token.Or) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(token.And) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.LogicalExpr{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.leftAssocBinary(p.comparison, token.BangEqual, token.EqualEqual)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.leftAssocBinary(p.bitOr, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *Parser) bitOr() (ast.Expr, error) {
	return p.leftAssocBinary(p.bitXor, token.Pipe)
}

func (p *Parser) bitXor() (ast.Expr, error) {
	return p.leftAssocBinary(p.bitAnd, token.Caret)
}

func (p *Parser) bitAnd() (ast.Expr, error) {
	return p.leftAssocBinary(p.shift, token.Amp)
}

func (p *Parser) shift() (ast.Expr, error) {
	return p.leftAssocBinary(p.term, token.LessLess, token.GreaterGreat)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.leftAssocBinary(p.factor, token.Plus, token.Minus)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.leftAssocBinary(p.exp, token.Star, token.Slash)
}

// exp is `**`, right-associative: it recurses on the right side rather
// than looping, so `2 ** 3 ** 2` parses as `2 ** (3 ** 2)`.
func (p *Parser) exp() (ast.Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	if p.match(token.StarStar) {
		op := p.previous()
		right, err := p.exp()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Left: left, Op: op, Right: right}, nil
	}
	return left, nil
}

// leftAssocBinary factors the common "one level of the precedence ladder"
// shape: parse the next-higher level, then fold in a left-associative chain
// of any of the given operator kinds.
func (p *Parser) leftAssocBinary(next func() (ast.Expr, error), kinds ...token.Kind) (ast.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(kinds...) {
		op := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, Right: right}, nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(token.LeftParen) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				p.errorAt(p.peek(), "Can't have more than 255 arguments.")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren, err := p.consume(token.RightParen, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &ast.CallExpr{Callee: callee, ClosingParen: paren, Args: args}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.False):
		return &ast.LiteralExpr{Value: value.Bool(false)}, nil
	case p.match(token.True):
		return &ast.LiteralExpr{Value: value.Bool(true)}, nil
	case p.match(token.Nil):
		return &ast.LiteralExpr{Value: value.Nil{}}, nil
	case p.match(token.Number, token.String):
		return &ast.LiteralExpr{Value: p.previous().Literal}, nil
	case p.match(token.Identifier):
		return &ast.VariableExpr{Tok: p.previous()}, nil
	case p.match(token.LeftParen):
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.GroupingExpr{Inner: inner}, nil
	default:
		return nil, p.errorAt(p.peek(), "Expect expression.")
	}
}

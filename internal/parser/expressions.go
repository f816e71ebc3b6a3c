package parser

import (
	"strconv"
	"strings"

	"github.com/clartelang/clarte/internal/ast"
	"github.com/clartelang/clarte/internal/diag"
	"github.com/clartelang/clarte/internal/token"
)

// parseExpression is the Pratt precedence-climbing core. It parses a
// prefix expression, then repeatedly folds in infix binary operators
// whose precedence exceeds minPrec, recursing on the operator's own
// precedence for the right operand — which yields left-associativity
// for same-precedence chains, since a following operator of equal
// precedence fails the "> minPrec" test in the recursive call and the
// loop unwinds back to the caller instead.
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for precedenceOf(p.cur.Kind) > minPrec {
		opTok := p.cur
		opPos := opTok.Loc.Pos()
		prec := precedenceOf(opTok.Kind)
		p.nextToken()

		right := p.parseExpression(prec)
		if right == nil {
			return nil
		}
		left = &ast.BinaryExpression{
			OpPos:    opPos,
			Left:     left,
			Operator: binaryOperatorFor(opTok.Kind),
			Right:    right,
		}
	}
	return left
}

func binaryOperatorFor(k token.Kind) ast.BinaryOperator {
	switch k {
	case token.Plus:
		return ast.Plus
	case token.Minus:
		return ast.Min
	case token.Star:
		return ast.Mul
	case token.Slash:
		return ast.Div
	case token.Percent:
		return ast.Mod
	case token.Caret:
		return ast.Pow
	case token.EqEq:
		return ast.EqEq
	case token.NotEq:
		return ast.NE
	case token.Lt:
		return ast.Lt
	case token.LtEq:
		return ast.LtEq
	case token.Gt:
		return ast.Gt
	case token.GtEq:
		return ast.GtEq
	case token.OrOr:
		return ast.Or
	case token.AndAnd:
		return ast.And
	default:
		return ast.Plus
	}
}

// parsePrefix dispatches on the current token to produce the left-hand
// side of an expression: a literal, a grouped expression, an identifier
// or call, or a unary prefix operator.
func (p *Parser) parsePrefix() ast.Expression {
	switch p.cur.Kind {
	case token.Number:
		return p.parseNumberLiteral()

	case token.Boolean:
		lit := &ast.BooleanLiteral{LitPos: p.curPos(), Value: p.cur.Bool}
		p.nextToken()
		return lit

	case token.StringLiteral:
		lit := &ast.StringLiteral{LitPos: p.curPos(), Raw: p.cur.Text}
		p.nextToken()
		return lit

	case token.LBracket:
		return p.parseArrayLiteral()

	case token.LParen:
		p.nextToken() // consume (
		expr := p.parseExpression(LOWEST)
		if expr == nil {
			return nil
		}
		p.expect(token.RParen)
		return expr

	case token.Bang:
		pos := p.curPos()
		p.nextToken() // consume !
		operand := p.parseExpression(UNARY)
		if operand == nil {
			return nil
		}
		return &ast.UnaryExpression{OpPos: pos, Operator: ast.Not, Operand: operand}

	case token.Identifier:
		if p.peekIs(token.LParen) {
			return p.parseFunCall()
		}
		id := &ast.Identifier{NamePos: p.curPos(), Name: p.cur.Text}
		p.nextToken()
		return id

	default:
		p.addError(diag.Newf(diag.UnexpectedToken, p.cur.Loc, p.cur.Kind.String()))
		return nil
	}
}

// parseNumberLiteral converts a Number token's digit text, trying
// int32, then int64, then (decimal literals only) float64, and taking
// the first conversion that succeeds.
func (p *Parser) parseNumberLiteral() ast.Expression {
	pos := p.curPos()
	raw := p.cur.Text
	base := p.cur.Base
	clean := strings.ReplaceAll(raw, "_", "")

	bitBase := 10
	switch base {
	case token.Binary:
		bitBase = 2
	case token.Octal:
		bitBase = 8
	case token.Hexadecimal:
		bitBase = 16
	}

	lit := &ast.NumberLiteral{LitPos: pos, Raw: raw}

	if i32, err := strconv.ParseInt(clean, bitBase, 32); err == nil {
		lit.Kind = ast.NumberInt32
		lit.I32 = int32(i32)
		p.nextToken()
		return lit
	}
	if i64, err := strconv.ParseInt(clean, bitBase, 64); err == nil {
		lit.Kind = ast.NumberInt64
		lit.I64 = i64
		p.nextToken()
		return lit
	}
	if base == token.Decimal {
		if f64, err := strconv.ParseFloat(clean, 64); err == nil {
			lit.Kind = ast.NumberFloat64
			lit.F64 = f64
			p.nextToken()
			return lit
		}
	}

	p.addError(diag.Newf(diag.InvalidNumber, p.cur.Loc, raw))
	p.nextToken()
	return nil
}

// parseArrayLiteral parses a bracketed, comma-separated expression list.
// A trailing comma is accepted; an empty list is allowed.
func (p *Parser) parseArrayLiteral() ast.Expression {
	pos := p.curPos()
	p.nextToken() // consume [

	var elems []ast.Expression
	for !p.curIs(token.RBracket) && !p.curIs(token.EOF) {
		if len(elems) > 0 {
			if !p.expect(token.Comma) {
				break
			}
			if p.curIs(token.RBracket) {
				break
			}
		}
		e := p.parseExpression(LOWEST)
		if e == nil {
			return nil
		}
		elems = append(elems, e)
	}
	p.expect(token.RBracket)
	return &ast.ArrayLiteral{LBracket: pos, Elements: elems}
}

// parseFunCall parses `name(arg, arg, ...)`. The caller has already
// confirmed the current token is an Identifier followed by `(`.
func (p *Parser) parseFunCall() ast.Expression {
	pos := p.curPos()
	name := p.cur.Text
	p.nextToken() // consume identifier
	p.nextToken() // consume (

	var args []ast.Expression
	for !p.curIs(token.RParen) && !p.curIs(token.EOF) {
		if len(args) > 0 {
			if !p.expect(token.Comma) {
				break
			}
			if p.curIs(token.RParen) {
				break
			}
		}
		a := p.parseExpression(LOWEST)
		if a == nil {
			return nil
		}
		args = append(args, a)
	}
	p.expect(token.RParen)
	return &ast.FunCall{NamePos: pos, Name: name, Arguments: args}
}

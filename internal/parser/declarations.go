package parser

import (
	"github.com/clartelang/clarte/internal/ast"
	"github.com/clartelang/clarte/internal/diag"
	"github.com/clartelang/clarte/internal/token"
)

// parseVariableDeclaration parses `let name[: type] = expr;` or the
// `const` equivalent. The keyword has already been confirmed by the
// caller but not yet consumed.
func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	kwPos := p.curPos()
	kind := ast.DeclLet
	if p.cur.Keyword == token.Const {
		kind = ast.DeclConst
	}
	p.nextToken() // consume let/const

	variable, ok := p.parseVariable()
	if !ok {
		return nil
	}

	if !p.expect(token.Assign) {
		return nil
	}

	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	p.expect(token.Semicolon)

	return &ast.VariableDeclaration{
		KeywordPos: kwPos,
		Kind:       kind,
		Variable:   variable,
		Value:      value,
	}
}

// parseVariable parses `name` or `name: Type`.
func (p *Parser) parseVariable() (ast.Variable, bool) {
	if !p.curIs(token.Identifier) {
		p.addError(diag.Newf(diag.UnexpectedToken, p.cur.Loc, p.cur.Kind.String()))
		return ast.Variable{}, false
	}
	v := ast.Variable{NamePos: p.curPos(), Name: p.cur.Text}
	p.nextToken()

	if p.curIs(token.Colon) {
		p.nextToken()
		if !p.curIs(token.Identifier) {
			p.addError(diag.Newf(diag.ExpectedToken, p.cur.Loc, "Identifier (type)"))
			return v, false
		}
		v.Category = p.cur.Text
		p.nextToken()
	}
	return v, true
}

// parseFunDeclaration parses `fun name(param: type, ...) [-> type] { ... }`.
func (p *Parser) parseFunDeclaration() *ast.FunDeclaration {
	kwPos := p.curPos()
	p.nextToken() // consume fun

	if !p.curIs(token.Identifier) {
		p.addError(diag.Newf(diag.ExpectedToken, p.cur.Loc, "Identifier (nom de fonction)"))
		return nil
	}
	name := p.cur.Text
	p.nextToken()

	if !p.expect(token.LParen) {
		return nil
	}

	var params []ast.Parameter
	for !p.curIs(token.RParen) && !p.curIs(token.EOF) {
		if len(params) > 0 && !p.expect(token.Comma) {
			break
		}
		if p.curIs(token.RParen) {
			break // trailing comma
		}
		if !p.curIs(token.Identifier) {
			p.addError(diag.Newf(diag.ExpectedToken, p.cur.Loc, "Identifier (paramètre)"))
			return nil
		}
		param := ast.Parameter{NamePos: p.curPos(), Name: p.cur.Text}
		p.nextToken()
		if !p.expect(token.Colon) {
			return nil
		}
		if !p.curIs(token.Identifier) {
			p.addError(diag.Newf(diag.ExpectedToken, p.cur.Loc, "Identifier (type)"))
			return nil
		}
		param.Type = p.cur.Text
		p.nextToken()
		params = append(params, param)
	}
	if !p.expect(token.RParen) {
		return nil
	}

	var returnType string
	if p.curIs(token.Arrow) {
		p.nextToken()
		if !p.curIs(token.Identifier) {
			p.addError(diag.Newf(diag.ExpectedToken, p.cur.Loc, "Identifier (type de retour)"))
			return nil
		}
		returnType = p.cur.Text
		p.nextToken()
	}

	body := p.parseBlock()

	return &ast.FunDeclaration{
		KeywordPos: kwPos,
		Name:       name,
		Parameters: params,
		ReturnType: returnType,
		Body:       body,
	}
}

// parseReturn parses `return [expr];`.
func (p *Parser) parseReturn() *ast.Return {
	kwPos := p.curPos()
	p.nextToken() // consume return

	if p.curIs(token.Semicolon) {
		p.nextToken()
		return &ast.Return{KeywordPos: kwPos}
	}

	value := p.parseExpression(LOWEST)
	p.expect(token.Semicolon)
	return &ast.Return{KeywordPos: kwPos, Value: value}
}

// parseExpressionStatement parses either an assignment (`name = expr;`)
// or a bare expression used in statement position, disambiguated by
// whether the identifier currently under the cursor is followed by `=`.
func (p *Parser) parseExpressionStatement() ast.Statement {
	if p.curIs(token.Identifier) && p.peekIs(token.Assign) {
		v := ast.Variable{NamePos: p.curPos(), Name: p.cur.Text}
		p.nextToken() // consume identifier
		p.nextToken() // consume =
		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}
		p.expect(token.Semicolon)
		return &ast.Assignment{Variable: v, Value: value}
	}

	start := p.curPos()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	p.expect(token.Semicolon)
	return &ast.ExpressionStatement{StartPos: start, Expression: expr}
}

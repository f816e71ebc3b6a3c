package parser

import (
	"github.com/clartelang/clarte/internal/ast"
	"github.com/clartelang/clarte/internal/token"
)

// parseConditionalChain parses a leading `if`/`unless` clause together
// with any immediately-following `else if`/`elseif`/`else` clauses,
// returning them as a flat sequence of sibling Conditional statements
// (each tagged with its own branch keyword) rather than a nested tree —
// the shape the AST's single-clause Conditional node implies.
func (p *Parser) parseConditionalChain() []ast.Statement {
	var chain []ast.Statement

	first := p.parseSingleConditional(leadingKeyword(p.cur.Keyword))
	if first == nil {
		return chain
	}
	chain = append(chain, first)

	for p.curIsKeyword(token.Else) || p.curIsKeyword(token.ElseIf) {
		// The single-keyword spelling `elseif` needs no `else` token
		// consumed first; the two-keyword spelling `else if` does.
		if p.curIsKeyword(token.ElseIf) {
			clausePos := p.curPos()
			p.nextToken() // consume elseif
			clause := p.finishConditional(clausePos, ast.CondElseIf)
			if clause == nil {
				break
			}
			chain = append(chain, clause)
			continue
		}

		elsePos := p.curPos()
		p.nextToken() // consume else

		if p.curIsKeyword(token.If) {
			p.nextToken() // consume if; `else if` is else+if collapsed into one clause
			clause := p.finishConditional(elsePos, ast.CondElseIf)
			if clause == nil {
				break
			}
			chain = append(chain, clause)
			continue
		}

		// Bare else: no condition, terminates the chain.
		body := p.parseBlock()
		chain = append(chain, &ast.Conditional{
			KeywordPos: elsePos,
			Keyword:    ast.CondElse,
			Body:       body,
		})
		break
	}

	return chain
}

func leadingKeyword(kw token.Keyword) ast.ConditionalKeyword {
	if kw == token.Unless {
		return ast.CondUnless
	}
	return ast.CondIf
}

// parseSingleConditional parses `if cond { ... }` / `unless cond { ... }`,
// consuming the leading keyword itself.
func (p *Parser) parseSingleConditional(kw ast.ConditionalKeyword) *ast.Conditional {
	kwPos := p.curPos()
	p.nextToken() // consume if/unless
	return p.finishConditional(kwPos, kw)
}

// finishConditional parses `cond { ... }` assuming any leading keyword
// token(s) have already been consumed by the caller.
func (p *Parser) finishConditional(kwPos token.Position, kw ast.ConditionalKeyword) *ast.Conditional {
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	body := p.parseBlock()
	return &ast.Conditional{KeywordPos: kwPos, Keyword: kw, Condition: cond, Body: body}
}

// parseLoop parses `while cond { ... }`.
func (p *Parser) parseLoop() *ast.Loop {
	kwPos := p.curPos()
	p.nextToken() // consume while

	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	body := p.parseBlock()
	return &ast.Loop{KeywordPos: kwPos, Condition: cond, Body: body}
}

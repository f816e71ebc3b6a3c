// Package parser implements the recursive-descent, Pratt-style expression
// parser that turns a token stream into an AST.
package parser

import (
	"fmt"
	"io"

	"github.com/clartelang/clarte/internal/ast"
	"github.com/clartelang/clarte/internal/diag"
	"github.com/clartelang/clarte/internal/lexer"
	"github.com/clartelang/clarte/internal/token"
)

// Precedence levels, per spec: comparisons share the equality tier (a
// noted, intentionally-preserved ambiguity).
const (
	LOWEST     = 0
	EQUALITY   = 5
	UNARY      = 10
	ADDITIVE   = 20
	MULTIPLICATIVE = 25
	POWER      = 30
)

func precedenceOf(kind token.Kind) int {
	switch kind {
	case token.EqEq, token.NotEq, token.OrOr, token.AndAnd,
		token.Lt, token.LtEq, token.Gt, token.GtEq:
		return EQUALITY
	case token.Plus, token.Minus:
		return ADDITIVE
	case token.Star, token.Slash, token.Percent:
		return MULTIPLICATIVE
	case token.Caret:
		return POWER
	default:
		return LOWEST
	}
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithTracing writes one line per statement boundary to w, for debugging.
func WithTracing(w io.Writer) Option {
	return func(p *Parser) { p.trace = w }
}

// Parser drives a Lexer with one-token look-ahead and produces an AST.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token
	peek token.Token

	lexDrained int
	errs       diag.List

	trace io.Writer
}

// New constructs a Parser over an already-constructed Lexer.
func New(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{lex: l}
	for _, opt := range opts {
		opt(p)
	}
	p.nextToken()
	p.nextToken()
	return p
}

// Parse lexes and parses src in one call, returning the Program or the
// ordered list of diagnostics encountered (never both non-empty: a
// non-empty diagnostic list is returned instead of a partial AST).
func Parse(src string, opts ...Option) (*ast.Program, diag.List) {
	p := New(lexer.New(src), opts...)
	return p.ParseProgram()
}

// nextToken advances cur to peek and reads a new peek token from the
// lexer. Illegal tokens are converted to UnexpectedCharacter diagnostics
// and transparently skipped (the effect the spec describes as storing
// None at that slot: the garbage token never reaches statement parsing).
// Any diagnostics the lexer itself raised while producing that token
// (e.g. scanning a malformed string) are drained into the accumulator in
// the same order they occurred, ahead of whatever the parser does next.
func (p *Parser) nextToken() {
	p.cur = p.peek
	for {
		tok := p.lex.NextToken()
		p.drainLexErrors()
		if tok.Kind == token.Illegal {
			p.errs = append(p.errs, diag.Newf(diag.UnexpectedCharacter, tok.Loc, tok.Text))
			continue
		}
		p.peek = tok
		return
	}
}

func (p *Parser) drainLexErrors() {
	all := p.lex.Errors()
	if len(all) > p.lexDrained {
		p.errs = append(p.errs, all[p.lexDrained:]...)
		p.lexDrained = len(all)
	}
}

func (p *Parser) curPos() token.Position  { return p.cur.Loc.Pos() }
func (p *Parser) peekIs(k token.Kind) bool { return p.peek.Kind == k }
func (p *Parser) curIs(k token.Kind) bool  { return p.cur.Kind == k }

func (p *Parser) curIsKeyword(kw token.Keyword) bool {
	return p.cur.Kind == token.KeywordTok && p.cur.Keyword == kw
}

func (p *Parser) addError(e *diag.Error) {
	p.errs = append(p.errs, e)
}

// expect requires the current token to have kind k, consuming it on
// success; on failure it records an ExpectedToken diagnostic and leaves
// the cursor where it is.
func (p *Parser) expect(k token.Kind) bool {
	if p.curIs(k) {
		p.nextToken()
		return true
	}
	p.addError(diag.Newf(diag.ExpectedToken, p.cur.Loc, fmt.Sprintf("%s (obtenu %s)", k, p.cur.Kind)))
	return false
}

func (p *Parser) traceStmt(label string) {
	if p.trace != nil {
		fmt.Fprintf(p.trace, "stmt %s at %s\n", label, p.curPos())
	}
}

// ParseProgram drives the parser to exhaustion.
func (p *Parser) ParseProgram() (*ast.Program, diag.List) {
	prog := &ast.Program{}
	for !p.curIs(token.EOF) {
		before := p.curPos()
		stmts := p.parseStatementOrChain()
		prog.Statements = append(prog.Statements, stmts...)
		if len(stmts) == 0 && p.curPos() == before {
			// No progress was made (a production failed before consuming
			// anything): resynchronize to the next plausible boundary. A
			// stray `}` can never be valid here (there is no enclosing
			// block to hand it back to), so treat it as forward progress
			// too rather than leaving it for a caller that doesn't exist.
			p.synchronize(false)
		}
	}
	if len(p.errs) > 0 {
		return nil, p.errs
	}
	return prog, nil
}

func (p *Parser) parseBlock() *ast.Block {
	start := p.curPos()
	if !p.expect(token.LBrace) {
		return &ast.Block{LBrace: start}
	}
	block := &ast.Block{LBrace: start}
	for !p.curIs(token.RBrace) && !p.curIs(token.EOF) {
		before := p.curPos()
		stmts := p.parseStatementOrChain()
		block.Statements = append(block.Statements, stmts...)
		if len(stmts) == 0 && p.curPos() == before {
			// Here a `}` genuinely closes this block: leave it for the
			// expect(RBrace) below instead of consuming it.
			p.synchronize(true)
		}
	}
	p.expect(token.RBrace)
	return block
}

// parseStatementOrChain dispatches one statement. It returns a slice
// because an if/elseif/else chain is represented as consecutive sibling
// Conditional statements rather than a nested tree (see control_flow.go).
func (p *Parser) parseStatementOrChain() []ast.Statement {
	switch {
	case p.curIsKeyword(token.Let), p.curIsKeyword(token.Const):
		p.traceStmt("var-decl")
		if s := p.parseVariableDeclaration(); s != nil {
			return []ast.Statement{s}
		}
		return nil

	case p.curIsKeyword(token.Fun):
		p.traceStmt("fun-decl")
		if s := p.parseFunDeclaration(); s != nil {
			return []ast.Statement{s}
		}
		return nil

	case p.curIsKeyword(token.Return):
		p.traceStmt("return")
		if s := p.parseReturn(); s != nil {
			return []ast.Statement{s}
		}
		return nil

	case p.curIsKeyword(token.If), p.curIsKeyword(token.Unless):
		p.traceStmt("conditional")
		return p.parseConditionalChain()

	case p.curIsKeyword(token.While):
		p.traceStmt("while")
		if s := p.parseLoop(); s != nil {
			return []ast.Statement{s}
		}
		return nil

	case p.cur.Kind == token.KeywordTok && p.cur.Keyword.IsReserved():
		p.addError(diag.Newf(diag.ReservedKeyword, p.cur.Loc, p.cur.Keyword.String()))
		p.nextToken()
		return nil

	default:
		p.traceStmt("expr")
		if s := p.parseExpressionStatement(); s != nil {
			return []ast.Statement{s}
		}
		return nil
	}
}

// synchronize discards tokens until a plausible statement boundary, the
// outer driver's best-effort panic-mode recovery. When stopAtRBrace is
// true, a `}` is left untouched for the enclosing parseBlock's own
// expect(RBrace) to consume. When false (the top-level ParseProgram
// driver, which has no enclosing block to hand a `}` back to), a stray
// `}` is reported as unexpected and consumed instead of left in place —
// leaving it would stall the caller's progress check forever, since
// nothing at that level is ever going to consume it.
func (p *Parser) synchronize(stopAtRBrace bool) {
	for !p.curIs(token.EOF) {
		if p.curIs(token.Semicolon) {
			p.nextToken()
			return
		}
		if p.curIs(token.RBrace) {
			if stopAtRBrace {
				return
			}
			p.addError(diag.Newf(diag.UnexpectedToken, p.cur.Loc, p.cur.Kind.String()))
			p.nextToken()
			return
		}
		switch {
		case p.curIsKeyword(token.Let), p.curIsKeyword(token.Const),
			p.curIsKeyword(token.Fun), p.curIsKeyword(token.If),
			p.curIsKeyword(token.Unless), p.curIsKeyword(token.While),
			p.curIsKeyword(token.Return):
			return
		}
		p.nextToken()
	}
}

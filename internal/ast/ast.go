// Package ast defines the abstract syntax tree produced by the parser.
//
// The AST is a pure data model: a contract between the parser and the
// outside world. It carries no behavior beyond position reporting and a
// String method kept for debugging and test readability — a pretty-printer
// is an explicit non-goal of this package.
package ast

import (
	"strings"

	"github.com/clartelang/clarte/internal/token"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	// Pos returns the node's starting position, for diagnostics.
	Pos() token.Position
	// String renders the node for debugging and test output, not for any
	// user-facing pretty-printing contract.
	String() string
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a node that performs an action.
type Statement interface {
	Node
	statementNode()
}

// Program is the AST root: an ordered sequence of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 0}
}

func (p *Program) String() string {
	var b strings.Builder
	for i, s := range p.Statements {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// Block is an ordered sequence of statements delimited by `{` `}`.
type Block struct {
	LBrace     token.Position
	Statements []Statement
}

func (b *Block) Pos() token.Position { return b.LBrace }

func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, s := range b.Statements {
		sb.WriteString("  ")
		sb.WriteString(strings.ReplaceAll(s.String(), "\n", "\n  "))
		sb.WriteByte('\n')
	}
	sb.WriteString("}")
	return sb.String()
}

// Variable is a name optionally annotated with a bare type name.
// Category is the empty string when the annotation was elided.
type Variable struct {
	NamePos  token.Position
	Name     string
	Category string
}

func (v Variable) String() string {
	if v.Category == "" {
		return v.Name
	}
	return v.Name + ": " + v.Category
}

package ast

import (
	"strings"

	"github.com/clartelang/clarte/internal/token"
)

// DeclKind distinguishes `let` from `const` declarations.
type DeclKind int

const (
	DeclLet DeclKind = iota
	DeclConst
)

func (k DeclKind) String() string {
	if k == DeclConst {
		return "const"
	}
	return "let"
}

// VariableDeclaration is a `let`/`const` statement.
type VariableDeclaration struct {
	KeywordPos token.Position
	Kind       DeclKind
	Variable   Variable
	Value      Expression
}

func (v *VariableDeclaration) statementNode()     {}
func (v *VariableDeclaration) Pos() token.Position { return v.KeywordPos }
func (v *VariableDeclaration) String() string {
	return v.Kind.String() + " " + v.Variable.String() + " = " + v.Value.String() + ";"
}

// Assignment is `name = expr;`.
type Assignment struct {
	Variable Variable
	Value    Expression
}

func (a *Assignment) statementNode()     {}
func (a *Assignment) Pos() token.Position { return a.Variable.NamePos }
func (a *Assignment) String() string {
	return a.Variable.String() + " = " + a.Value.String() + ";"
}

// ConditionalKeyword tags which branch keyword introduced a Conditional.
type ConditionalKeyword int

const (
	CondIf ConditionalKeyword = iota
	CondElseIf
	CondElse
	CondUnless
)

func (k ConditionalKeyword) String() string {
	switch k {
	case CondElseIf:
		return "elseif"
	case CondElse:
		return "else"
	case CondUnless:
		return "unless"
	default:
		return "if"
	}
}

// Conditional is an if/elseif/else/unless branch. Condition is nil for
// CondElse (spec.md invariant c: "a Conditional with keyword else has no
// condition, all others do").
type Conditional struct {
	KeywordPos token.Position
	Keyword    ConditionalKeyword
	Condition  Expression
	Body       *Block
}

func (c *Conditional) statementNode()     {}
func (c *Conditional) Pos() token.Position { return c.KeywordPos }
func (c *Conditional) String() string {
	var sb strings.Builder
	sb.WriteString(c.Keyword.String())
	if c.Condition != nil {
		sb.WriteByte(' ')
		sb.WriteString(c.Condition.String())
	}
	sb.WriteByte(' ')
	sb.WriteString(c.Body.String())
	return sb.String()
}

// Loop is a `while` loop; spec.md invariant d: a Loop always has a
// condition.
type Loop struct {
	KeywordPos token.Position
	Condition  Expression
	Body       *Block
}

func (l *Loop) statementNode()     {}
func (l *Loop) Pos() token.Position { return l.KeywordPos }
func (l *Loop) String() string {
	return "while " + l.Condition.String() + " " + l.Body.String()
}

// Parameter is one FunDeclaration parameter: `name: type`.
type Parameter struct {
	NamePos token.Position
	Name    string
	Type    string
}

func (p Parameter) String() string { return p.Name + ": " + p.Type }

// FunDeclaration is a `fun` declaration.
type FunDeclaration struct {
	KeywordPos token.Position
	Name       string
	Parameters []Parameter
	ReturnType string // empty when elided
	Body       *Block
}

func (f *FunDeclaration) statementNode()     {}
func (f *FunDeclaration) Pos() token.Position { return f.KeywordPos }
func (f *FunDeclaration) String() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.String()
	}
	var sb strings.Builder
	sb.WriteString("fun ")
	sb.WriteString(f.Name)
	sb.WriteByte('(')
	sb.WriteString(strings.Join(params, ", "))
	sb.WriteByte(')')
	if f.ReturnType != "" {
		sb.WriteString(" -> ")
		sb.WriteString(f.ReturnType)
	}
	sb.WriteByte(' ')
	sb.WriteString(f.Body.String())
	return sb.String()
}

// Return is a `return` statement; Value is nil when the return carries no
// expression.
type Return struct {
	KeywordPos token.Position
	Value      Expression
}

func (r *Return) statementNode()     {}
func (r *Return) Pos() token.Position { return r.KeywordPos }
func (r *Return) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}

// ExpressionStatement wraps a bare expression used in statement position.
type ExpressionStatement struct {
	StartPos   token.Position
	Expression Expression
}

func (e *ExpressionStatement) statementNode()     {}
func (e *ExpressionStatement) Pos() token.Position { return e.StartPos }
func (e *ExpressionStatement) String() string {
	return e.Expression.String() + ";"
}

package ast

import (
	"strconv"
	"strings"

	"github.com/clartelang/clarte/internal/token"
)

// Identifier is a bare name reference.
type Identifier struct {
	NamePos token.Position
	Name    string
}

func (i *Identifier) expressionNode()       {}
func (i *Identifier) Pos() token.Position   { return i.NamePos }
func (i *Identifier) String() string        { return i.Name }

// BinaryOperator enumerates the binary operators spec.md §3 names.
type BinaryOperator int

const (
	Plus BinaryOperator = iota
	Min
	Mul
	Div
	Mod
	Pow
	EqEq
	NE
	Lt
	LtEq
	Gt
	GtEq
	Or
	And
)

var binaryOperatorText = map[BinaryOperator]string{
	Plus: "+", Min: "-", Mul: "*", Div: "/", Mod: "%", Pow: "^",
	EqEq: "==", NE: "!=", Lt: "<", LtEq: "<=", Gt: ">", GtEq: ">=",
	Or: "||", And: "&&",
}

func (op BinaryOperator) String() string {
	if s, ok := binaryOperatorText[op]; ok {
		return s
	}
	return "?"
}

// UnaryOperator enumerates the unary operators spec.md §3 names.
type UnaryOperator int

const (
	Not UnaryOperator = iota
)

func (op UnaryOperator) String() string {
	return "!"
}

// BinaryExpression is a binary operation, e.g. `a + b`.
type BinaryExpression struct {
	OpPos    token.Position
	Left     Expression
	Operator BinaryOperator
	Right    Expression
}

func (b *BinaryExpression) expressionNode()     {}
func (b *BinaryExpression) Pos() token.Position { return b.Left.Pos() }
func (b *BinaryExpression) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(b.Left.String())
	sb.WriteByte(' ')
	sb.WriteString(b.Operator.String())
	sb.WriteByte(' ')
	sb.WriteString(b.Right.String())
	sb.WriteByte(')')
	return sb.String()
}

// UnaryExpression is a unary operation, e.g. `!b`.
type UnaryExpression struct {
	OpPos    token.Position
	Operator UnaryOperator
	Operand  Expression
}

func (u *UnaryExpression) expressionNode()     {}
func (u *UnaryExpression) Pos() token.Position { return u.OpPos }
func (u *UnaryExpression) String() string {
	return "(" + u.Operator.String() + u.Operand.String() + ")"
}

// FunCall is a function-call expression.
type FunCall struct {
	NamePos   token.Position
	Name      string
	Arguments []Expression
}

func (f *FunCall) expressionNode()     {}
func (f *FunCall) Pos() token.Position { return f.NamePos }
func (f *FunCall) String() string {
	args := make([]string, len(f.Arguments))
	for i, a := range f.Arguments {
		args[i] = a.String()
	}
	return f.Name + "(" + strings.Join(args, ", ") + ")"
}

// NumberKind tags which concrete Go type a Number literal holds.
type NumberKind int

const (
	NumberInt32 NumberKind = iota
	NumberInt64
	NumberFloat64
)

// NumberLiteral is a successfully-converted numeric literal; spec.md §3
// requires it to hold whichever of Int32/Int64/Float64 conversion
// succeeded first (see parser number conversion order).
type NumberLiteral struct {
	LitPos token.Position
	Kind   NumberKind
	I32    int32
	I64    int64
	F64    float64
	Raw    string // original digit text as lexed; String() formats the value instead
}

func (n *NumberLiteral) expressionNode()     {}
func (n *NumberLiteral) Pos() token.Position { return n.LitPos }
func (n *NumberLiteral) String() string {
	switch n.Kind {
	case NumberInt32:
		return strconv.FormatInt(int64(n.I32), 10)
	case NumberInt64:
		return strconv.FormatInt(n.I64, 10)
	default:
		return strconv.FormatFloat(n.F64, 'g', -1, 64)
	}
}

// StringLiteral is a string literal holding the raw quoted source text
// (including quotes and escapes); interpretation is deferred.
type StringLiteral struct {
	LitPos token.Position
	Raw    string
}

func (s *StringLiteral) expressionNode()     {}
func (s *StringLiteral) Pos() token.Position { return s.LitPos }
func (s *StringLiteral) String() string      { return s.Raw }

// BooleanLiteral is a boolean literal.
type BooleanLiteral struct {
	LitPos token.Position
	Value  bool
}

func (b *BooleanLiteral) expressionNode()     {}
func (b *BooleanLiteral) Pos() token.Position { return b.LitPos }
func (b *BooleanLiteral) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// ArrayLiteral is a bracketed, comma-separated expression list.
type ArrayLiteral struct {
	LBracket token.Position
	Elements []Expression
}

func (a *ArrayLiteral) expressionNode()     {}
func (a *ArrayLiteral) Pos() token.Position { return a.LBracket }
func (a *ArrayLiteral) String() string {
	elems := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		elems[i] = e.String()
	}
	return "[" + strings.Join(elems, ", ") + "]"
}

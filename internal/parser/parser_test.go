package parser

import (
	"testing"
	"time"

	"github.com/clartelang/clarte/internal/ast"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, errs := Parse(src)
	if len(errs) > 0 {
		t.Fatalf("unexpected errors parsing %q: %v", src, errs)
	}
	return prog
}

func TestParse_VariableDeclaration(t *testing.T) {
	prog := mustParse(t, "let x: Int32 = 1 + 2;")
	if len(prog.Statements) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.Statements))
	}
	decl, ok := prog.Statements[0].(*ast.VariableDeclaration)
	if !ok {
		t.Fatalf("got %T, want *ast.VariableDeclaration", prog.Statements[0])
	}
	if decl.Kind != ast.DeclLet || decl.Variable.Name != "x" || decl.Variable.Category != "Int32" {
		t.Fatalf("unexpected declaration: %+v", decl)
	}
	bin, ok := decl.Value.(*ast.BinaryExpression)
	if !ok || bin.Operator != ast.Plus {
		t.Fatalf("got %+v, want 1 + 2", decl.Value)
	}
}

// S6-style: operator precedence should bind * tighter than +.
func TestParse_PrecedenceMultiplicationOverAddition(t *testing.T) {
	prog := mustParse(t, "1 + 2 * 3;")
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	bin := stmt.Expression.(*ast.BinaryExpression)
	if bin.Operator != ast.Plus {
		t.Fatalf("top-level operator: got %s, want +", bin.Operator)
	}
	right, ok := bin.Right.(*ast.BinaryExpression)
	if !ok || right.Operator != ast.Mul {
		t.Fatalf("right operand: got %+v, want 2 * 3", bin.Right)
	}
}

// Left-associativity: `1 - 2 - 3` parses as `(1 - 2) - 3`.
func TestParse_LeftAssociativity(t *testing.T) {
	prog := mustParse(t, "1 - 2 - 3;")
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	bin := stmt.Expression.(*ast.BinaryExpression)
	if bin.Operator != ast.Min {
		t.Fatalf("got %s, want -", bin.Operator)
	}
	left, ok := bin.Left.(*ast.BinaryExpression)
	if !ok || left.Operator != ast.Min {
		t.Fatalf("left operand: got %+v, want 1 - 2", bin.Left)
	}
	if _, ok := bin.Right.(*ast.NumberLiteral); !ok {
		t.Fatalf("right operand: got %+v, want literal 3", bin.Right)
	}
}

func TestParse_FunDeclaration(t *testing.T) {
	prog := mustParse(t, "fun add(a: Int32, b: Int32) -> Int32 { return a + b; }")
	fn := prog.Statements[0].(*ast.FunDeclaration)
	if fn.Name != "add" || len(fn.Parameters) != 2 || fn.ReturnType != "Int32" {
		t.Fatalf("unexpected declaration: %+v", fn)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("got %d body statements, want 1", len(fn.Body.Statements))
	}
	if _, ok := fn.Body.Statements[0].(*ast.Return); !ok {
		t.Fatalf("got %T, want *ast.Return", fn.Body.Statements[0])
	}
}

func TestParse_IfElseIfElseChain(t *testing.T) {
	prog := mustParse(t, `
		if a {
			x = 1;
		} else if b {
			x = 2;
		} else {
			x = 3;
		}
	`)
	if len(prog.Statements) != 3 {
		t.Fatalf("got %d statements, want 3 (if/elseif/else flattened)", len(prog.Statements))
	}
	first := prog.Statements[0].(*ast.Conditional)
	second := prog.Statements[1].(*ast.Conditional)
	third := prog.Statements[2].(*ast.Conditional)

	if first.Keyword != ast.CondIf || first.Condition == nil {
		t.Fatalf("first clause: %+v", first)
	}
	if second.Keyword != ast.CondElseIf || second.Condition == nil {
		t.Fatalf("second clause: %+v", second)
	}
	if third.Keyword != ast.CondElse || third.Condition != nil {
		t.Fatalf("third clause: %+v, want nil condition", third)
	}
}

// The lexer produces a single KeywordTok{Keyword: token.ElseIf} for the
// one-word spelling `elseif`, distinct from the two-token `else if`
// spelling exercised by TestParse_IfElseIfElseChain; both must flatten
// into the same CondElseIf clause shape.
func TestParse_ElseIfSingleKeywordSpelling(t *testing.T) {
	prog := mustParse(t, `
		if a {
			x = 1;
		} elseif b {
			x = 2;
		}
	`)
	if len(prog.Statements) != 2 {
		t.Fatalf("got %d statements, want 2 (if/elseif flattened)", len(prog.Statements))
	}
	second := prog.Statements[1].(*ast.Conditional)
	if second.Keyword != ast.CondElseIf || second.Condition == nil {
		t.Fatalf("second clause: %+v", second)
	}
}

// A stray `}` at the top level can never be valid (there is no
// enclosing block to hand it back to); ParseProgram must still
// terminate instead of spinning forever re-synchronizing on it.
func TestParse_StrayClosingBraceTerminates(t *testing.T) {
	done := make(chan struct{})
	var prog *ast.Program
	var errs int
	go func() {
		p, errList := Parse("}")
		prog = p
		errs = len(errList)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Parse(\"}\") did not terminate")
	}
	if prog != nil {
		t.Fatalf("expected a nil program given a stray brace, got %+v", prog)
	}
	if errs == 0 {
		t.Fatal("expected at least one diagnostic for the stray brace")
	}
}

func TestParse_UnlessAndWhile(t *testing.T) {
	prog := mustParse(t, `
		unless done {
			x = 1;
		}
		while x < 10 {
			x = x + 1;
		}
	`)
	cond := prog.Statements[0].(*ast.Conditional)
	if cond.Keyword != ast.CondUnless {
		t.Fatalf("got %s, want unless", cond.Keyword)
	}
	loop := prog.Statements[1].(*ast.Loop)
	if loop.Condition == nil {
		t.Fatal("loop must have a condition")
	}
}

func TestParse_FunCallArguments(t *testing.T) {
	prog := mustParse(t, "foo(1, 2, bar());")
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	call := stmt.Expression.(*ast.FunCall)
	if call.Name != "foo" || len(call.Arguments) != 3 {
		t.Fatalf("unexpected call: %+v", call)
	}
	if _, ok := call.Arguments[2].(*ast.FunCall); !ok {
		t.Fatalf("third argument: got %+v, want nested call", call.Arguments[2])
	}
}

func TestParse_ArrayLiteral(t *testing.T) {
	prog := mustParse(t, "let xs = [1, 2, 3];")
	decl := prog.Statements[0].(*ast.VariableDeclaration)
	arr := decl.Value.(*ast.ArrayLiteral)
	if len(arr.Elements) != 3 {
		t.Fatalf("got %d elements, want 3", len(arr.Elements))
	}
}

func TestParse_UnaryNot(t *testing.T) {
	prog := mustParse(t, "!a == b;")
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	bin := stmt.Expression.(*ast.BinaryExpression)
	if bin.Operator != ast.EqEq {
		t.Fatalf("got %s, want ==", bin.Operator)
	}
	if _, ok := bin.Left.(*ast.UnaryExpression); !ok {
		t.Fatalf("left operand: got %+v, want unary !a", bin.Left)
	}
}

func TestParse_Assignment(t *testing.T) {
	prog := mustParse(t, "x = 5;")
	assign := prog.Statements[0].(*ast.Assignment)
	if assign.Variable.Name != "x" {
		t.Fatalf("got %+v", assign)
	}
}

func TestParse_ReservedKeywordRejected(t *testing.T) {
	_, errs := Parse("class Foo {}")
	if len(errs) == 0 {
		t.Fatal("expected a ReservedKeyword diagnostic")
	}
}

func TestParse_GroupedExpressionControlsPrecedence(t *testing.T) {
	prog := mustParse(t, "(1 + 2) * 3;")
	stmt := prog.Statements[0].(*ast.ExpressionStatement)
	bin := stmt.Expression.(*ast.BinaryExpression)
	if bin.Operator != ast.Mul {
		t.Fatalf("got %s, want *", bin.Operator)
	}
	if _, ok := bin.Left.(*ast.BinaryExpression); !ok {
		t.Fatalf("left operand: got %+v, want grouped 1 + 2", bin.Left)
	}
}

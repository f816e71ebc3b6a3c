package lexer

import (
	"testing"

	"github.com/clartelang/clarte/internal/token"
)

func TestNextToken_Operators(t *testing.T) {
	src := "+ - * / % ^ ! == != < <= > >= || && = ->"
	want := []token.Kind{
		token.Plus, token.Minus, token.Star, token.Slash, token.Percent, token.Caret,
		token.Bang, token.EqEq, token.NotEq, token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.OrOr, token.AndAnd, token.Assign, token.Arrow, token.EOF,
	}
	l := New(src)
	for i, k := range want {
		tok := l.NextToken()
		if tok.Kind != k {
			t.Fatalf("token %d: got %s, want %s", i, tok.Kind, k)
		}
	}
}

func TestNextToken_KeywordsAndIdentifiers(t *testing.T) {
	l := New("let x fun class true false")

	tok := l.NextToken()
	if tok.Kind != token.KeywordTok || tok.Keyword != token.Let {
		t.Fatalf("got %s, want keyword let", tok)
	}

	tok = l.NextToken()
	if tok.Kind != token.Identifier || tok.Text != "x" {
		t.Fatalf("got %s, want identifier x", tok)
	}

	tok = l.NextToken()
	if tok.Kind != token.KeywordTok || tok.Keyword != token.Fun {
		t.Fatalf("got %s, want keyword fun", tok)
	}

	tok = l.NextToken()
	if tok.Kind != token.KeywordTok || !tok.Keyword.IsReserved() {
		t.Fatalf("got %s, want reserved keyword class", tok)
	}

	tok = l.NextToken()
	if tok.Kind != token.Boolean || tok.Bool != true {
		t.Fatalf("got %s, want true", tok)
	}

	tok = l.NextToken()
	if tok.Kind != token.Boolean || tok.Bool != false {
		t.Fatalf("got %s, want false", tok)
	}
}

func TestNextToken_Numbers(t *testing.T) {
	cases := []struct {
		src  string
		base token.NumberBase
		text string
	}{
		{"123", token.Decimal, "123"},
		{"1_000", token.Decimal, "1_000"},
		{"0xFF", token.Hexadecimal, "FF"},
		{"0b1010", token.Binary, "1010"},
		{"0o17", token.Octal, "17"},
	}
	for _, c := range cases {
		l := New(c.src)
		tok := l.NextToken()
		if tok.Kind != token.Number || tok.Base != c.base || tok.Text != c.text {
			t.Errorf("%q: got %s base=%s text=%q, want base=%s text=%q", c.src, tok, tok.Base, tok.Text, c.base, c.text)
		}
	}
}

// S1: "1G" lexes a bare decimal run only up to the first non-decimal
// character — 1 is decimal, G is neither decimal nor a hex-run
// continuation under this grammar since unprefixed numbers stop at the
// first non-decimal-digit, non-underscore rune.
func TestNextToken_BareNumberStopsAtNonDecimal(t *testing.T) {
	l := New("1G")
	tok := l.NextToken()
	if tok.Kind != token.Number || tok.Base != token.Decimal || tok.Text != "1" {
		t.Fatalf("got %s text=%q, want decimal \"1\"", tok, tok.Text)
	}
	tok = l.NextToken()
	if tok.Kind != token.Identifier || tok.Text != "G" {
		t.Fatalf("got %s, want identifier G", tok)
	}
}

// S1, literal scenario: a bare numeric literal consumes a decimal-only
// digit run, stopping at the first letter — here "0123456789_" — even
// though takeLeadingOctal's narrower octal-only rule would stop sooner,
// at the first non-octal digit "8".
func TestNextToken_S1BareNumberDecimalRun(t *testing.T) {
	l := New("0123456789_aaasdsad")
	tok := l.NextToken()
	if tok.Kind != token.Number || tok.Base != token.Decimal || tok.Text != "0123456789_" {
		t.Fatalf("got %s text=%q, want decimal \"0123456789_\"", tok, tok.Text)
	}
	tok = l.NextToken()
	if tok.Kind != token.Identifier || tok.Text != "aaasdsad" {
		t.Fatalf("got %s, want identifier aaasdsad", tok)
	}
}

func TestTakeLeadingOctal(t *testing.T) {
	got := takeLeadingOctal("0123456789_aaasdsad")
	if got != "01234567" {
		t.Fatalf("got %q, want \"01234567\"", got)
	}
}

func TestNextToken_String(t *testing.T) {
	l := New(`"hello \" world"`)
	tok := l.NextToken()
	if tok.Kind != token.StringLiteral {
		t.Fatalf("got %s, want StringLiteral", tok)
	}
	if tok.Text != `"hello \" world"` {
		t.Fatalf("got text %q", tok.Text)
	}
}

func TestNextToken_UnterminatedString(t *testing.T) {
	l := New("\"abc\ndef\"")
	_ = l.NextToken()
	if len(l.Errors()) == 0 {
		t.Fatal("expected an UnterminatedString diagnostic")
	}
}

func TestNextToken_CommentsSkippedByDefault(t *testing.T) {
	l := New("1 // a comment\n2 /* block */ 3")
	for _, want := range []string{"1", "2", "3"} {
		tok := l.NextToken()
		if tok.Kind != token.Number || tok.Text != want {
			t.Fatalf("got %s, want number %s", tok, want)
		}
	}
}

func TestNextToken_PreservedComments(t *testing.T) {
	l := New("// line\n1", WithPreserveComments())
	tok := l.NextToken()
	if tok.Kind != token.Comment {
		t.Fatalf("got %s, want Comment", tok)
	}
}

func TestNextToken_EmptyInputReturnsEOF(t *testing.T) {
	l := New("")
	tok := l.NextToken()
	if tok.Kind != token.EOF {
		t.Fatalf("got %s, want EOF on empty input", tok)
	}
	tok = l.NextToken()
	if tok.Kind != token.EOF {
		t.Fatalf("got %s, want EOF on repeated call", tok)
	}
}

// S2: "\r\n\r\n" folds each CRLF pair onto a single line increment.
func TestAdvance_CRLFFold(t *testing.T) {
	l := New("\r\n\r\nx")
	tok := l.NextToken()
	if tok.Kind != token.Identifier || tok.Text != "x" {
		t.Fatalf("got %s, want identifier x", tok)
	}
	pos := tok.Loc.Pos()
	if pos.Line != 3 || pos.Column != 1 {
		t.Fatalf("got %s, want 3:1", pos)
	}
}

func TestNextToken_IllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Kind != token.Illegal || tok.Text != "@" {
		t.Fatalf("got %s, want Illegal(@)", tok)
	}
}

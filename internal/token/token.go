package token

import "fmt"

// Kind tags the syntactic category of a Token. Token equality is defined
// over Kind alone; Location and any payload fields are metadata.
type Kind int

const (
	EOF Kind = iota
	Illegal

	// Structural.
	Underscore
	Arrow // ->

	// Arithmetic/logical operators.
	Assign // =
	Plus
	Minus
	Slash
	Star
	Percent
	Caret
	Bang // !

	// Comparisons.
	EqEq
	NotEq
	Lt
	Gt
	LtEq
	GtEq

	// Bitwise/boolean.
	Pipe
	Amp
	OrOr
	AndAnd

	// Punctuation.
	Comma
	Colon
	Semicolon
	LParen
	RParen
	LBracket
	RBracket
	LBrace
	RBrace

	// Payloaded.
	Identifier
	Comment
	StringLiteral
	Number
	Boolean
	KeywordTok
)

var kindNames = map[Kind]string{
	EOF:           "EOF",
	Illegal:       "Illegal",
	Underscore:    "Underscore",
	Arrow:         "Arrow",
	Assign:        "Assign",
	Plus:          "Plus",
	Minus:         "Minus",
	Slash:         "Slash",
	Star:          "Star",
	Percent:       "Percent",
	Caret:         "Caret",
	Bang:          "Bang",
	EqEq:          "EqEq",
	NotEq:         "NotEq",
	Lt:            "Lt",
	Gt:            "Gt",
	LtEq:          "LtEq",
	GtEq:          "GtEq",
	Pipe:          "Pipe",
	Amp:           "Amp",
	OrOr:          "OrOr",
	AndAnd:        "AndAnd",
	Comma:         "Comma",
	Colon:         "Colon",
	Semicolon:     "Semicolon",
	LParen:        "LParen",
	RParen:        "RParen",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	Identifier:    "Identifier",
	Comment:       "Comment",
	StringLiteral: "StringLiteral",
	Number:        "Number",
	Boolean:       "Boolean",
	KeywordTok:    "Keyword",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "<unknown kind>"
}

// NumberBase tags the radix a Number token's digit text was lexed in.
type NumberBase int

const (
	Decimal NumberBase = iota
	Binary
	Octal
	Hexadecimal
)

func (b NumberBase) String() string {
	switch b {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Hexadecimal:
		return "hexadecimal"
	default:
		return "decimal"
	}
}

// Token is a located, kind-tagged lexeme. Payload fields are only
// meaningful for the Kind they're documented against; Equal ignores all of
// them, including Location, by design (spec: "Equality is over kind only").
type Token struct {
	Kind Kind
	Loc  Location

	Text    string     // Identifier, Comment, StringLiteral (raw incl. quotes), Number (digits), Illegal
	Base    NumberBase // meaningful only when Kind == Number
	Bool    bool       // meaningful only when Kind == Boolean
	Keyword Keyword    // meaningful only when Kind == KeywordTok
}

// Equal reports whether two tokens share a Kind. Location and payload are
// deliberately excluded.
func (t Token) Equal(o Token) bool {
	return t.Kind == o.Kind
}

func (t Token) String() string {
	switch t.Kind {
	case Identifier, Comment, Illegal:
		return fmt.Sprintf("%s(%q) at %s", t.Kind, t.Text, t.Loc)
	case StringLiteral:
		return fmt.Sprintf("%s(%s) at %s", t.Kind, t.Text, t.Loc)
	case Number:
		return fmt.Sprintf("Number[%s](%s) at %s", t.Base, t.Text, t.Loc)
	case Boolean:
		return fmt.Sprintf("Boolean(%t) at %s", t.Bool, t.Loc)
	case KeywordTok:
		return fmt.Sprintf("Keyword(%s) at %s", t.Keyword, t.Loc)
	default:
		return fmt.Sprintf("%s at %s", t.Kind, t.Loc)
	}
}

// New builds a Token of the given kind at the given location, with no
// payload set. Use the Token literal directly when a payload is needed.
func New(kind Kind, loc Location) Token {
	return Token{Kind: kind, Loc: loc}
}

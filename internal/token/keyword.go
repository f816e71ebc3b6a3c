package token

// Keyword enumerates every recognized keyword, active and reserved.
type Keyword int

const (
	NoKeyword Keyword = iota

	// Active keywords — recognized and implemented by the parser.
	Const
	Else
	ElseIf
	Fun
	If
	Let
	Return
	Unless
	While

	// Reserved keywords — lexed but rejected by the parser as reserved.
	Alias
	Array
	Break
	Case
	Class
	Continue
	Do
	Export
	Final
	Import
	In
	Macro
	Of
	Override
	Private
	Protected
	Pub
	Public
	Pure
	Static
	Struct
	Switch
	This
	Trait
	Use
	Virtual
	Yield
)

var keywordNames = map[Keyword]string{
	Const:  "const",
	Else:   "else",
	ElseIf: "elseif",
	Fun:    "fun",
	If:     "if",
	Let:    "let",
	Return: "return",
	Unless: "unless",
	While:  "while",

	Alias:     "alias",
	Array:     "array",
	Break:     "break",
	Case:      "case",
	Class:     "class",
	Continue:  "continue",
	Do:        "do",
	Export:    "export",
	Final:     "final",
	Import:    "import",
	In:        "in",
	Macro:     "macro",
	Of:        "of",
	Override:  "override",
	Private:   "private",
	Protected: "protected",
	Pub:       "pub",
	Public:    "public",
	Pure:      "pure",
	Static:    "static",
	Struct:    "struct",
	Switch:    "switch",
	This:      "this",
	Trait:     "trait",
	Use:       "use",
	Virtual:   "virtual",
	Yield:     "yield",
}

// reservedKeywords is the set of keywords recognized by the lexer but
// rejected by the parser at statement position.
var reservedKeywords = map[Keyword]bool{
	Alias: true, Array: true, Break: true, Case: true, Class: true,
	Continue: true, Do: true, Export: true, Final: true, Import: true,
	In: true, Macro: true, Of: true, Override: true, Private: true,
	Protected: true, Pub: true, Public: true, Pure: true, Static: true,
	Struct: true, Switch: true, This: true, Trait: true, Use: true,
	Virtual: true, Yield: true,
}

var keywordTable map[string]Keyword

func init() {
	keywordTable = make(map[string]Keyword, len(keywordNames))
	for kw, name := range keywordNames {
		keywordTable[name] = kw
	}
}

// String returns the keyword's source spelling.
func (k Keyword) String() string {
	if name, ok := keywordNames[k]; ok {
		return name
	}
	return "<unknown keyword>"
}

// IsReserved reports whether k is recognized but not implemented by the
// parser.
func (k Keyword) IsReserved() bool {
	return reservedKeywords[k]
}

// LookupKeyword returns the Keyword matching text exactly (case-sensitive),
// and false if text is not a keyword.
func LookupKeyword(text string) (Keyword, bool) {
	kw, ok := keywordTable[text]
	return kw, ok
}

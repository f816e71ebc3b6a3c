// Package diag implements the diagnostic taxonomy and French-localized
// message formatting shared by the lexer and parser.
package diag

import (
	"fmt"

	"github.com/clartelang/clarte/internal/token"
)

// Kind enumerates the diagnostic taxonomy.
type Kind int

const (
	InvalidIdentifier Kind = iota
	InvalidNumber
	InvalidString
	MissingStringBeginning
	UnterminatedString
	UnexpectedEOF
	UnexpectedCharacter
	UnexpectedToken
	ExpectedToken
	ReservedKeyword
)

var descriptions = map[Kind]string{
	InvalidIdentifier:      "identifiant invalide",
	InvalidNumber:          "nombre invalide",
	InvalidString:          "chaîne invalide",
	MissingStringBeginning: "début de chaîne manquant",
	UnterminatedString:     "chaîne non terminée",
	UnexpectedEOF:          "fin de fichier inattendue",
	UnexpectedCharacter:    "caractère inattendu",
	UnexpectedToken:        "jeton inattendu",
	ExpectedToken:          "jeton attendu",
	ReservedKeyword:        "mot-clé réservé",
}

func (k Kind) String() string {
	if d, ok := descriptions[k]; ok {
		return d
	}
	return "erreur inconnue"
}

// Error is the single diagnostic type produced by the lexer and the
// parser. It carries the kind, a French description, the offending
// payload text (if any), and a source location.
type Error struct {
	Kind    Kind
	Payload string
	Loc     token.Location
}

// New builds a diagnostic of the given kind at loc, with no payload.
func New(kind Kind, loc token.Location) *Error {
	return &Error{Kind: kind, Loc: loc}
}

// Newf builds a diagnostic of the given kind at loc, carrying payload.
func Newf(kind Kind, loc token.Location, payload string) *Error {
	return &Error{Kind: kind, Payload: payload, Loc: loc}
}

// Error implements the error interface, rendering the French-localized
// message form: "<description>: '<payload>' à <line>:<column>", or
// "<description> à <line>:<column>" when there is no payload.
func (e *Error) Error() string {
	pos := e.Loc.Pos()
	if e.Payload == "" {
		return fmt.Sprintf("%s à %s", e.Kind, pos)
	}
	return fmt.Sprintf("%s: '%s' à %s", e.Kind, e.Payload, pos)
}

// Location returns the diagnostic's source location.
func (e *Error) Location() token.Location {
	return e.Loc
}

// Is lets errors.Is match diagnostics by Kind alone, e.g.
// errors.Is(err, &diag.Error{Kind: diag.UnexpectedEOF}).
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// List is an ordered collection of diagnostics, the parser's accumulator.
type List []*Error

func (l List) Error() string {
	if len(l) == 0 {
		return "aucune erreur"
	}
	if len(l) == 1 {
		return l[0].Error()
	}
	s := fmt.Sprintf("%d erreurs:", len(l))
	for _, e := range l {
		s += "\n  " + e.Error()
	}
	return s
}

// Package token defines the position, span and token model shared by the
// lexer and parser.
package token

import "fmt"

// Position is a 1-indexed (line, column) pair. Positions are never byte
// offsets; column resets on every newline.
type Position struct {
	Line   int
	Column int
}

// String renders a position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Less reports whether p sorts strictly before q in lexicographic order.
func (p Position) Less(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// LessEq reports whether p sorts at or before q in lexicographic order.
func (p Position) LessEq(q Position) bool {
	return p == q || p.Less(q)
}

// Span is a contiguous range [Begin, End) of source positions.
type Span struct {
	Begin Position
	End   Position
}

// String renders a span as "begin-end".
func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Begin, s.End)
}

// Extend returns a span widened to include q, never narrowed.
func (s Span) Extend(q Position) Span {
	if q.Less(s.Begin) {
		s.Begin = q
	}
	if s.End.Less(q) {
		s.End = q
	}
	return s
}

// Location is the tagged union of Position or Span that every token and
// every diagnostic carries. Exactly one of IsSpan's two readings applies:
// when IsSpan is false, Begin is the sole position and End equals Begin.
type Location struct {
	Span   Span
	IsSpan bool
}

// AtPosition builds a point Location from a single Position.
func AtPosition(p Position) Location {
	return Location{Span: Span{Begin: p, End: p}}
}

// AtSpan builds a range Location from begin and end positions.
func AtSpan(begin, end Position) Location {
	return Location{Span: Span{Begin: begin, End: end}, IsSpan: true}
}

// Pos returns the location's starting position, valid for both variants.
func (l Location) Pos() Position {
	return l.Span.Begin
}

// End returns the location's end position. For a point location this
// equals Pos.
func (l Location) End() Position {
	return l.Span.End
}

func (l Location) String() string {
	if l.IsSpan {
		return l.Span.String()
	}
	return l.Span.Begin.String()
}

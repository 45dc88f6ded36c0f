package srparse

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to applications to define them.
type TokType int

// TokTypeStringer is a type to be provided by a scanner/parser combination to be able
// to print out token categories.
type TokTypeStringer func(TokType) string

// Tokens represent input tokens. They are produced by a scanner and
// reflect terminals in a language.
//
// An example would be a token for an identifier:
//
//    TokType = Ident       // identifier for this kind of tokens (application specific)
//    Lexeme  = "count"     // lexeme how it appeared in the input stream
//    Value   = nil         // no value has been attached
//    Span    = 4…9         // occured from position 4 in the input stream
//
// The shift-reduce parser only looks at a token's type, which a scanner maps
// to the name of a terminal symbol (see TokTypeStringer).
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run.
// A span denotes a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// String prints a span as "(x…y)".
func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

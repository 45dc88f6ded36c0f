/*
Package scanner defines scanners to be used with the parser of package sr.

The parser consumes the complete input as a sequence of terminals before it
starts. Scanners therefore implement the Lexer interface, which tokenizes a
whole input text at once and names the terminal symbol for each token type.

A default lexer for arithmetic expressions is provided by ArithmeticLexer.
It is built on lexmachine, using the adapter type LMAdapter, which clients
may use to build lexers for other alphabets.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"errors"
	"fmt"
	"text/scanner"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/srparse"
)

// tracer traces with key 'srparse.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("srparse.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF   = scanner.EOF
	Ident = scanner.Ident
	Int   = scanner.Int
)

// Lexer is the interface the shift-reduce parser uses to split input text
// into terminals.
//
// Tokenize either returns all tokens of the input, in order, or an error.
// It never returns partial results. TerminalName maps a token type to the
// name of the grammar terminal it represents.
type Lexer interface {
	Tokenize(input string) ([]srparse.Token, error)
	TerminalName(srparse.TokType) string
}

// Tokenizer is a scanner interface for scanners delivering one token at a time.
type Tokenizer interface {
	NextToken() srparse.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Errors ----------------------------------------------------------------

// ErrLex is the error category for input a lexer cannot recognize.
var ErrLex = errors.New("lexical error")

// LexError is returned for an unrecognized character in the input.
// It wraps ErrLex.
type LexError struct {
	Pos  int    // byte offset of the unrecognized input
	Text string // the unrecognized character
	err  error  // underlying scanner error, if any
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lexical error at position %d: unrecognized input %q", e.Pos, e.Text)
}

// Unwrap makes errors.Is(err, ErrLex) work.
func (e *LexError) Unwrap() []error {
	if e.err == nil {
		return []error{ErrLex}
	}
	return []error{ErrLex, e.err}
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   srparse.TokType
	lexeme string
	Val    interface{}
	span   srparse.Span
}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ srparse.TokType, lexeme string, span srparse.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() srparse.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() srparse.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("%q%v", t.lexeme, t.span)
}

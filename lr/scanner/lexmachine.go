package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/srparse"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('(', '+', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	if init != nil {
		init(adapter.Lexer)
	}
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, input: input, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	input   string
	Error   func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Next returns the next token, or an error if the input at the current
// position cannot be matched. At the end of input, a token of type EOF is
// returned. After an error, the scanner is still positioned on the
// unmatched input.
func (lms *LMScanner) Next() (srparse.Token, error) {
	tok, err, eof := lms.scanner.Next()
	if err != nil {
		return nil, lms.lexError(err)
	}
	if eof {
		end := uint64(len(lms.input))
		return MakeDefaultToken(EOF, "", srparse.Span{end, end}), nil
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	return MakeDefaultToken(
		srparse.TokType(token.Type),
		string(token.Lexeme),
		srparse.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	), nil
}

// NextToken is part of the Tokenizer interface. Unmatched input is reported
// to the error handler and skipped.
func (lms *LMScanner) NextToken() srparse.Token {
	token, err := lms.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := errorCause(err).(*machines.UnconsumedInput); is && ui.FailTC > lms.scanner.TC {
			lms.scanner.TC = ui.FailTC
		} else {
			lms.scanner.TC++ // skip at least one byte
		}
		token, err = lms.Next()
	}
	return token
}

func (lms *LMScanner) lexError(err error) error {
	ui, is := err.(*machines.UnconsumedInput)
	if !is {
		return &LexError{Pos: lms.scanner.TC, Text: "", err: err}
	}
	lerr := &LexError{Pos: ui.StartTC, err: err}
	if ui.StartTC < len(lms.input) {
		r, _ := utf8.DecodeRuneInString(lms.input[ui.StartTC:])
		lerr.Text = string(r)
	}
	return lerr
}

func errorCause(err error) error {
	if lerr, ok := err.(*LexError); ok && lerr.err != nil {
		return lerr.err
	}
	return err
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

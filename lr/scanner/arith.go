package scanner

import (
	"fmt"
	"sync"

	"github.com/npillmayer/srparse"
	"github.com/timtadh/lexmachine"
)

// IdentTerminal is the terminal name for operands (identifiers and numbers)
// of arithmetic expressions.
const IdentTerminal = "id"

// The tokens representing literal one-char lexemes
var arithLiterals = []string{"+", "-", "*", "/", "(", ")"}

// arithTokenIds maps token names to token types. Literals use their rune value.
var arithTokenIds map[string]int

var arithOnce sync.Once // monitors one-time initialization
var arithAdapter *LMAdapter
var arithErr error

func initArithTokens() {
	arithTokenIds = map[string]int{
		"ID":  Ident,
		"NUM": Int,
	}
	for _, lit := range arithLiterals {
		arithTokenIds[lit] = int(lit[0])
	}
}

// ArithLexer tokenizes arithmetic expressions. Its alphabet consists of
// identifiers and unsigned integers (both are operands and map to terminal
// "id"), the operators + - * /, and parentheses. White space is skipped.
// Anything else is a lexical error.
type ArithLexer struct {
	adapter *LMAdapter
}

var _ Lexer = (*ArithLexer)(nil)

// ArithmeticLexer returns a lexer for arithmetic expressions. The underlying
// DFA is compiled once and shared.
func ArithmeticLexer() (*ArithLexer, error) {
	arithOnce.Do(func() {
		initArithTokens()
		setup := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), MakeToken("ID", arithTokenIds["ID"]))
			lexer.Add([]byte(`[0-9]+`), MakeToken("NUM", arithTokenIds["NUM"]))
			lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
		}
		arithAdapter, arithErr = NewLMAdapter(setup, arithLiterals, nil, arithTokenIds)
	})
	if arithErr != nil {
		return nil, arithErr
	}
	return &ArithLexer{adapter: arithAdapter}, nil
}

// Scanner returns a token-by-token scanner for input. Other than Tokenize,
// it skips unrecognized characters and reports them to its error handler.
func (al *ArithLexer) Scanner(input string) (*LMScanner, error) {
	return al.adapter.Scanner(input)
}

// Tokenize splits input into tokens. The first unrecognized character
// stops tokenization with a *LexError.
func (al *ArithLexer) Tokenize(input string) ([]srparse.Token, error) {
	sc, err := al.adapter.Scanner(input)
	if err != nil {
		return nil, err
	}
	var tokens []srparse.Token
	for {
		token, err := sc.Next()
		if err != nil {
			tracer().Infof("tokenizing %q: %v", input, err)
			return nil, err
		}
		if token.TokType() == EOF {
			break
		}
		tokens = append(tokens, token)
	}
	tracer().Debugf("tokenized %q into %d tokens", input, len(tokens))
	return tokens, nil
}

// TerminalName returns the grammar terminal for a token type.
func (al *ArithLexer) TerminalName(typ srparse.TokType) string {
	switch typ {
	case Ident, Int:
		return IdentTerminal
	case EOF:
		return "$"
	}
	if typ > 0 {
		return string(rune(typ))
	}
	return fmt.Sprintf("<%d>", typ)
}

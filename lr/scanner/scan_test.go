package scanner

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/timtadh/lexmachine"
)

var inputStrings = []string{
	"id",
	"id*id",
	"id + id * id",
	"(a1+b_2) / 17 - x",
	"",
}

var terminals = []string{
	"id",
	"id * id",
	"id + id * id",
	"( id + id ) / id - id",
	"",
}

func TestArithmeticLexer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "srparse.scanner")
	defer teardown()
	//
	lexer, err := ArithmeticLexer()
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		t.Logf("------+-----------------+--------")
		tokens, err := lexer.Tokenize(input)
		if err != nil {
			t.Errorf("input #%d: %v", i, err)
			continue
		}
		s := ""
		for j, token := range tokens {
			t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
			if j > 0 {
				s += " "
			}
			s += lexer.TerminalName(token.TokType())
		}
		if s != terminals[i] {
			t.Errorf("expected terminals for #%d to be %q, are %q", i, terminals[i], s)
		}
	}
	t.Logf("------+-----------------+--------")
}

func TestLexError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "srparse.scanner")
	defer teardown()
	//
	lexer, err := ArithmeticLexer()
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []struct {
		input string
		pos   int
		text  string
	}{
		{"id$$", 2, "$"},
		{"id + ?", 5, "?"},
		{"§", 0, "§"},
	} {
		tokens, err := lexer.Tokenize(x.input)
		if err == nil {
			t.Errorf("expected %q to fail with a lexical error", x.input)
			continue
		}
		if tokens != nil {
			t.Errorf("expected no tokens for %q, got %d", x.input, len(tokens))
		}
		if !errors.Is(err, ErrLex) {
			t.Errorf("expected error to be a lexical error, is %v", err)
		}
		var lerr *LexError
		if !errors.As(err, &lerr) {
			t.Fatalf("expected error to be of type *LexError, is %T", err)
		}
		if lerr.Pos != x.pos || lerr.Text != x.text {
			t.Errorf("expected error at %d for %q, have %d/%q", x.pos, x.text, lerr.Pos, lerr.Text)
		}
	}
}

func TestTokenSpans(t *testing.T) {
	lexer, err := ArithmeticLexer()
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := lexer.Tokenize("ab + 42")
	if err != nil {
		t.Fatal(err)
	}
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
	if tokens[2].Lexeme() != "42" || tokens[2].Span().From() != 5 || tokens[2].Span().To() != 7 {
		t.Errorf("unexpected token %v", tokens[2])
	}
	if tokens[0].TokType() != Ident || tokens[2].TokType() != Int {
		t.Errorf("unexpected token types %d and %d", tokens[0].TokType(), tokens[2].TokType())
	}
}

func TestLMScannerSkipsErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "srparse.scanner")
	defer teardown()
	//
	setup := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`[a-z]+`), MakeToken("WORD", 1))
		lexer.Add([]byte(`( |\t)+`), Skip)
	}
	LM, err := NewLMAdapter(setup, nil, []string{"let"}, map[string]int{"let": 2})
	if err != nil {
		t.Fatal(err)
	}
	sc, err := LM.Scanner("let x # y")
	if err != nil {
		t.Fatal(err)
	}
	errcnt := 0
	sc.SetErrorHandler(func(e error) {
		errcnt++
	})
	count := 0
	token := sc.NextToken()
	for token.TokType() != EOF {
		t.Logf(" %4d | %15s | @%5d", token.TokType(), token.Lexeme(), token.Span().From())
		token = sc.NextToken()
		count++
	}
	if count != 3 {
		t.Errorf("expected 3 tokens, got %d", count)
	}
	if errcnt != 1 {
		t.Errorf("expected 1 error to be reported, got %d", errcnt)
	}
}

func TestArithScannerSkipsErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "srparse.scanner")
	defer teardown()
	//
	lexer, err := ArithmeticLexer()
	if err != nil {
		t.Fatal(err)
	}
	var tz Tokenizer
	if tz, err = lexer.Scanner("a + $ 7"); err != nil {
		t.Fatal(err)
	}
	var errs []error
	tz.SetErrorHandler(func(e error) {
		errs = append(errs, e)
	})
	s := ""
	for token := tz.NextToken(); token.TokType() != EOF; token = tz.NextToken() {
		s += lexer.TerminalName(token.TokType())
	}
	if s != "id+id" {
		t.Errorf("expected terminals id+id, have %q", s)
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error to be reported, got %d", len(errs))
	}
	var lexerr *LexError
	if !errors.As(errs[0], &lexerr) || lexerr.Pos != 4 || lexerr.Text != "$" {
		t.Errorf("expected lexical error for '$' at position 4, have %v", errs[0])
	}
}

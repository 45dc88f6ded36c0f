package lr

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func names(syms []Symbol) string {
	s := ""
	for _, A := range syms {
		s += A.Name + " "
	}
	return s
}

func TestFirstAndFollow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "srparse.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	ga, err := Analysis(g, "E")
	if err != nil {
		t.Fatal(err)
	}
	for _, x := range []struct {
		name, first, follow string
	}{
		{"E", "( id ", "$ ) + "},
		{"T", "( id ", "$ ) * + "},
		{"F", "( id ", "$ ) * + "},
	} {
		A, _ := g.SymbolByName(x.name)
		if f := names(ga.First(A)); f != x.first {
			t.Errorf("expected FIRST(%s) = %q, is %q", x.name, x.first, f)
		}
		if f := names(ga.Follow(A)); f != x.follow {
			t.Errorf("expected FOLLOW(%s) = %q, is %q", x.name, x.follow, f)
		}
	}
	E, _ := g.SymbolByName("E")
	if ga.InFollow(E, Term("*")) {
		t.Errorf("expected * not to follow E")
	}
	if !ga.InFollow(E, EndMarker) {
		t.Errorf("expected end marker to follow E")
	}
	if ga.InFollow(Term("id"), EndMarker) {
		t.Errorf("expected terminals to have no FOLLOW set")
	}
	if names(ga.First(Term("id"))) != "id " {
		t.Errorf("expected FIRST of a terminal to be the terminal itself")
	}
	if ga.Start() != E || ga.Grammar() != g {
		t.Errorf("analysis does not report its grammar and start symbol")
	}
}

func TestAnalysisStartSymbol(t *testing.T) {
	g := makeExprGrammar(t)
	if _, err := Analysis(g, "id"); !errors.Is(err, ErrInvalidGrammar) {
		t.Errorf("expected terminal start symbol to be rejected, got %v", err)
	}
	if _, err := Analysis(g, "X"); !errors.Is(err, ErrInvalidGrammar) {
		t.Errorf("expected unknown start symbol to be rejected, got %v", err)
	}
	if _, err := Analysis(nil, "E"); !errors.Is(err, ErrInvalidGrammar) {
		t.Errorf("expected missing grammar to be rejected, got %v", err)
	}
}

package lr

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func makeExprGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Expressions")
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("T").T("*").N("F").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("id").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestGrammarBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "srparse.lr")
	defer teardown()
	//
	g := makeExprGrammar(t)
	g.Dump()
	if g.Size() != 6 {
		t.Errorf("expected grammar to have 6 rules, has %d", g.Size())
	}
	nts := g.NonTerminals()
	if len(nts) != 3 || nts[0].Name != "E" || nts[1].Name != "T" || nts[2].Name != "F" {
		t.Errorf("expected non-terminals [E T F], have %v", nts)
	}
	ts := g.Terminals()
	if len(ts) != 5 {
		t.Errorf("expected 5 terminals, have %v", ts)
	}
	if r := g.Rule(2); r.String() != "T -> T * F" {
		t.Errorf("expected rule 2 to be T -> T * F, is %s", r)
	}
	if g.Rule(6) != nil || g.Rule(-1) != nil {
		t.Errorf("expected out of range rules to be nil")
	}
	F, ok := g.SymbolByName("F")
	if !ok || F.IsTerminal() {
		t.Fatalf("expected F to be a non-terminal")
	}
	prods := g.Productions(F)
	if len(prods) != 2 || prods[0].String() != "F -> ( E )" || prods[1].String() != "F -> id" {
		t.Errorf("unexpected productions for F: %v", prods)
	}
	if id, ok := g.SymbolByName("id"); !ok || !id.IsTerminal() {
		t.Errorf("expected id to be a terminal")
	}
}

func TestRulesInTieBreakOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "srparse.lr")
	defer teardown()
	//
	b := NewGrammarBuilder("Interleaved")
	b.LHS("S").N("A").End()
	b.LHS("A").T("a").End()
	b.LHS("S").N("B").End()
	b.LHS("B").T("b").End()
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"S -> A", "S -> B", "A -> a", "B -> b"}
	rules := g.Rules()
	for i, r := range rules {
		if r.String() != expected[i] {
			t.Errorf("expected rule #%d to be %s, is %s", i, expected[i], r)
		}
	}
	if rules[1].Serial != 2 {
		t.Errorf("expected S -> B to keep serial 2, has %d", rules[1].Serial)
	}
	count := 0
	g.EachNonTerminal(func(A Symbol, rules []*Rule) {
		count += len(rules)
	})
	if count != 4 {
		t.Errorf("expected EachNonTerminal to visit 4 rules, visited %d", count)
	}
}

func TestInvalidGrammars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "srparse.lr")
	defer teardown()
	//
	for i, build := range []func(b *GrammarBuilder){
		func(b *GrammarBuilder) { b.LHS("S").End() },              // empty rhs
		func(b *GrammarBuilder) { b.LHS("S").Epsilon() },          // epsilon
		func(b *GrammarBuilder) { b.LHS("S").N("X").End() },       // undefined non-terminal
		func(b *GrammarBuilder) { b.LHS("S").T("S").End() },       // terminal used as LHS
		func(b *GrammarBuilder) { b.LHS("S").T("$").End() },       // reserved name
		func(b *GrammarBuilder) { b.LHS("$").T("a").End() },       // reserved LHS
		func(b *GrammarBuilder) {},                                // no rules
		func(b *GrammarBuilder) { b.LHS("S").T("a").T("").End() }, // empty symbol name
	} {
		b := NewGrammarBuilder("G")
		build(b)
		g, err := b.Grammar()
		if err == nil || g != nil {
			t.Errorf("test #%d: expected grammar to be rejected", i)
			continue
		}
		if !errors.Is(err, ErrInvalidGrammar) {
			t.Errorf("test #%d: expected ErrInvalidGrammar, got %v", i, err)
		}
	}
}

func TestMatchesSuffix(t *testing.T) {
	g := makeExprGrammar(t)
	r := g.Rule(0) // E -> E + T
	stack := []Symbol{BottomMarker, NonTerm("E"), Term("+"), NonTerm("T")}
	if !r.MatchesSuffix(stack) {
		t.Errorf("expected %s to match %s", r, SymbolsString(stack))
	}
	if r.MatchesSuffix(stack[:3]) {
		t.Errorf("expected %s not to match %s", r, SymbolsString(stack[:3]))
	}
	// a terminal never equals a non-terminal of the same name
	if r.MatchesSuffix([]Symbol{BottomMarker, Term("E"), Term("+"), NonTerm("T")}) {
		t.Errorf("expected terminal E not to match non-terminal E")
	}
	if g.Rule(1).MatchesSuffix([]Symbol{BottomMarker}) {
		t.Errorf("expected no rule to match the bottom marker")
	}
	if SymbolsString(stack) != "$E+T" {
		t.Errorf("unexpected stack rendering %q", SymbolsString(stack))
	}
}

func TestFingerprint(t *testing.T) {
	g1 := makeExprGrammar(t)
	g2 := makeExprGrammar(t)
	if g1.Fingerprint() == "" || g1.Fingerprint() != g2.Fingerprint() {
		t.Errorf("expected equal fingerprints for equal grammars")
	}
	b := NewGrammarBuilder("Expressions")
	b.LHS("E").N("T").End()
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("T").T("id").End()
	g3, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g3.Fingerprint() == g1.Fingerprint() {
		t.Errorf("expected different fingerprints for different rule tables")
	}
}

package lr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cnf/structhash"
)

// ErrInvalidGrammar is returned (wrapped) for every malformed grammar.
var ErrInvalidGrammar = errors.New("invalid grammar")

// --- Symbols ---------------------------------------------------------------

// SymbolKind tells terminals from non-terminals. Marker is reserved for the
// bottom-of-stack and end-of-input markers.
type SymbolKind int8

// Kinds of grammar symbols.
const (
	Terminal SymbolKind = iota
	NonTerminal
	Marker
)

func (k SymbolKind) String() string {
	switch k {
	case Terminal:
		return "T"
	case NonTerminal:
		return "N"
	case Marker:
		return "M"
	}
	return "?"
}

// Symbol is a grammar symbol. Symbols are small comparable values; two
// symbols are the same if they have the same name and kind.
type Symbol struct {
	Name string
	Kind SymbolKind
}

// Term creates a terminal symbol.
func Term(name string) Symbol {
	return Symbol{Name: name, Kind: Terminal}
}

// NonTerm creates a non-terminal symbol.
func NonTerm(name string) Symbol {
	return Symbol{Name: name, Kind: NonTerminal}
}

// MarkerName is the name of the bottom-of-stack and end-of-input markers.
// It may not be used as a name for grammar symbols.
const MarkerName = "$"

// BottomMarker is always the first symbol on a parse stack.
var BottomMarker = Symbol{Name: MarkerName, Kind: Marker}

// EndMarker is always the last symbol of a parser's input buffer.
var EndMarker = Symbol{Name: MarkerName, Kind: Marker}

// IsTerminal is true for terminal symbols.
func (A Symbol) IsTerminal() bool {
	return A.Kind == Terminal
}

// IsMarker is true for the bottom and end markers.
func (A Symbol) IsMarker() bool {
	return A.Kind == Marker
}

func (A Symbol) String() string {
	return A.Name
}

// SymbolsString concatenates the names of a sequence of symbols without
// separator, e.g. "$E+T".
func SymbolsString(syms []Symbol) string {
	var b strings.Builder
	for _, A := range syms {
		b.WriteString(A.Name)
	}
	return b.String()
}

// --- Rules -----------------------------------------------------------------

// Rule is a production of a grammar. Its right-hand side is never empty.
type Rule struct {
	Serial int    // order of declaration, starting with 0
	LHS    Symbol // a non-terminal
	rhs    []Symbol
}

// RHS returns a copy of the right-hand side symbols of a rule.
func (r *Rule) RHS() []Symbol {
	return append([]Symbol(nil), r.rhs...)
}

// Len is the number of symbols of the right-hand side.
func (r *Rule) Len() int {
	return len(r.rhs)
}

// MatchesSuffix is true if the right-hand side of r equals the trailing
// r.Len() symbols of stack.
func (r *Rule) MatchesSuffix(stack []Symbol) bool {
	if len(r.rhs) == 0 || len(r.rhs) > len(stack) {
		return false
	}
	suffix := stack[len(stack)-len(r.rhs):]
	for i, A := range r.rhs {
		if suffix[i] != A {
			return false
		}
	}
	return true
}

// String returns a rule in the form "E -> E + T".
func (r *Rule) String() string {
	names := make([]string, len(r.rhs))
	for i, A := range r.rhs {
		names[i] = A.Name
	}
	return fmt.Sprintf("%s -> %s", r.LHS.Name, strings.Join(names, " "))
}

// --- Grammar ---------------------------------------------------------------

// Grammar is an ordered production table. It is immutable once it has been
// returned by a GrammarBuilder and may be shared between parsers and
// goroutines.
type Grammar struct {
	Name         string
	nonterminals []Symbol           // in order of first appearance as LHS
	terminals    []Symbol           // in order of first appearance within a RHS
	rules        []*Rule            // in order of declaration
	byLHS        map[Symbol][]*Rule // rules grouped by LHS, order preserved
}

// NonTerminals returns the non-terminals of g in declaration order.
func (g *Grammar) NonTerminals() []Symbol {
	return append([]Symbol(nil), g.nonterminals...)
}

// Terminals returns the terminals of g in order of first appearance.
func (g *Grammar) Terminals() []Symbol {
	return append([]Symbol(nil), g.terminals...)
}

// Size returns the number of rules.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Rule returns rule number i.
func (g *Grammar) Rule(i int) *Rule {
	if i < 0 || i >= len(g.rules) {
		return nil
	}
	return g.rules[i]
}

// Rules enumerates all rules in tie-break order: non-terminals in
// declaration order, and for each non-terminal its rules in declaration
// order.
//
// This is not necessarily the order of Serial numbers, as rules for a
// non-terminal may be declared interleaved with rules for other non-terminals.
func (g *Grammar) Rules() []*Rule {
	rules := make([]*Rule, 0, len(g.rules))
	for _, A := range g.nonterminals {
		rules = append(rules, g.byLHS[A]...)
	}
	return rules
}

// Productions returns the rules for non-terminal A, in declaration order.
func (g *Grammar) Productions(A Symbol) []*Rule {
	return append([]*Rule(nil), g.byLHS[A]...)
}

// SymbolByName finds a grammar symbol.
func (g *Grammar) SymbolByName(name string) (Symbol, bool) {
	for _, A := range g.nonterminals {
		if A.Name == name {
			return A, true
		}
	}
	for _, A := range g.terminals {
		if A.Name == name {
			return A, true
		}
	}
	return Symbol{}, false
}

// EachNonTerminal iterates over all non-terminals of g, in declaration order.
func (g *Grammar) EachNonTerminal(mapper func(A Symbol, rules []*Rule)) {
	for _, A := range g.nonterminals {
		mapper(A, g.byLHS[A])
	}
}

// Dump is a debugging helper, tracing all rules at debug level.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	for _, r := range g.Rules() {
		tracer().Debugf("%3d: %s", r.Serial, r)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// ruleSignature is the exported view of a rule we hash for fingerprints.
type ruleSignature struct {
	LHS string
	RHS []string
}

// Fingerprint returns a hash over the ordered rule table of g. Grammars
// built from the same rules in the same order have equal fingerprints.
// The name of the grammar does not contribute.
func (g *Grammar) Fingerprint() string {
	sigs := make([]ruleSignature, 0, len(g.rules))
	for _, r := range g.Rules() {
		sig := ruleSignature{LHS: r.LHS.Name, RHS: make([]string, len(r.rhs))}
		for i, A := range r.rhs {
			sig.RHS[i] = A.Kind.String() + ":" + A.Name
		}
		sigs = append(sigs, sig)
	}
	h, err := structhash.Hash(sigs, 1)
	if err != nil { // cannot happen for slices of plain structs
		tracer().Errorf("cannot compute fingerprint for grammar %q: %v", g.Name, err)
		return ""
	}
	return h
}

// --- Grammar Builder -------------------------------------------------------

// GrammarBuilder is used to construct a Grammar.
//
//    b := NewGrammarBuilder("G")
//    b.LHS("S").N("A").T("a").End()  // S  ->  A a
//    b.LHS("A").T("b").End()         // A  ->  b
//    g, err := b.Grammar()
//
// Errors are collected and reported by Grammar().
type GrammarBuilder struct {
	name  string
	rules []*pendingRule
}

// RuleBuilder is a builder type for a single rule. It is created by
// GrammarBuilder.LHS(...).
type RuleBuilder struct {
	gb   *GrammarBuilder
	rule *pendingRule
}

type pendingSymbol struct {
	name     string
	terminal bool
}

type pendingRule struct {
	lhs     string
	rhs     []pendingSymbol
	epsilon bool
	done    bool
}

// NewGrammarBuilder gets a new grammar builder, given the name of the grammar to build.
func NewGrammarBuilder(gname string) *GrammarBuilder {
	return &GrammarBuilder{name: gname}
}

// LHS starts a rule given the left hand side symbol (non-terminal).
func (gb *GrammarBuilder) LHS(s string) *RuleBuilder {
	r := &pendingRule{lhs: s}
	gb.rules = append(gb.rules, r)
	return &RuleBuilder{gb: gb, rule: r}
}

// N appends a non-terminal to the builder.
func (rb *RuleBuilder) N(s string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, pendingSymbol{name: s})
	return rb
}

// T appends a terminal to the builder.
func (rb *RuleBuilder) T(s string) *RuleBuilder {
	rb.rule.rhs = append(rb.rule.rhs, pendingSymbol{name: s, terminal: true})
	return rb
}

// End closes a rule.
func (rb *RuleBuilder) End() {
	rb.rule.done = true
}

// Epsilon declares an epsilon-production. These are not supported, and
// Grammar() will report an error for it.
func (rb *RuleBuilder) Epsilon() {
	rb.rule.epsilon = true
	rb.rule.done = true
}

// Grammar returns the (completed) grammar. If any rule is malformed, an
// error wrapping ErrInvalidGrammar is returned, reporting all problems found.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	g := &Grammar{
		Name:  gb.name,
		byLHS: make(map[Symbol][]*Rule),
	}
	var errs []error
	invalid := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%w: grammar %q: %s", ErrInvalidGrammar, gb.name,
			fmt.Sprintf(format, args...)))
	}
	if len(gb.rules) == 0 {
		invalid("grammar has no rules")
	}
	lhs := make(map[string]bool)
	for _, pr := range gb.rules {
		if !lhs[pr.lhs] {
			lhs[pr.lhs] = true
			g.nonterminals = append(g.nonterminals, NonTerm(pr.lhs))
		}
	}
	seenT := make(map[string]bool)
	for serial, pr := range gb.rules {
		if pr.lhs == "" || pr.lhs == MarkerName {
			invalid("rule %d: illegal left-hand side %q", serial, pr.lhs)
		}
		if pr.epsilon || len(pr.rhs) == 0 {
			invalid("rule %d: %s has an empty right-hand side", serial, pr.lhs)
		}
		if !pr.done {
			tracer().Infof("rule %d for %s not closed with End()", serial, pr.lhs)
		}
		r := &Rule{Serial: serial, LHS: NonTerm(pr.lhs), rhs: make([]Symbol, 0, len(pr.rhs))}
		for _, ps := range pr.rhs {
			switch {
			case ps.name == "" || ps.name == MarkerName:
				invalid("rule %d: illegal symbol name %q", serial, ps.name)
			case ps.terminal && lhs[ps.name]:
				invalid("rule %d: terminal %q is a left-hand side of another rule", serial, ps.name)
			case !ps.terminal && !lhs[ps.name]:
				invalid("rule %d: non-terminal %q has no rules", serial, ps.name)
			}
			if ps.terminal {
				r.rhs = append(r.rhs, Term(ps.name))
				if !seenT[ps.name] {
					seenT[ps.name] = true
					g.terminals = append(g.terminals, Term(ps.name))
				}
			} else {
				r.rhs = append(r.rhs, NonTerm(ps.name))
			}
		}
		g.rules = append(g.rules, r)
		g.byLHS[r.LHS] = append(g.byLHS[r.LHS], r)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return g, nil
}

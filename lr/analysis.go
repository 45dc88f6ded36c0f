package lr

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/hashset"
)

// LRAnalysis is an object for grammar analysis (computing FIRST- and
// FOLLOW-sets) of a grammar with respect to a start symbol.
// As grammars cannot contain epsilon-productions, FIRST(A) is just the
// set of terminals A's derivations may start with.
//
// An LRAnalysis is immutable after creation.
type LRAnalysis struct {
	g      *Grammar
	start  Symbol
	first  map[Symbol]*hashset.Set
	follow map[Symbol]*hashset.Set
}

// Analysis creates an analysis for grammar g and start symbol start.
// FOLLOW(start) contains the end marker.
//
// Analysis will return an error wrapping ErrInvalidGrammar if start is not
// a non-terminal of g.
func Analysis(g *Grammar, start string) (*LRAnalysis, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: no grammar given", ErrInvalidGrammar)
	}
	S := NonTerm(start)
	if _, ok := g.byLHS[S]; !ok {
		return nil, fmt.Errorf("%w: grammar %q: start symbol %q is not a non-terminal",
			ErrInvalidGrammar, g.Name, start)
	}
	ga := &LRAnalysis{
		g:      g,
		start:  S,
		first:  make(map[Symbol]*hashset.Set, len(g.nonterminals)),
		follow: make(map[Symbol]*hashset.Set, len(g.nonterminals)),
	}
	for _, A := range g.nonterminals {
		ga.first[A] = hashset.New()
		ga.follow[A] = hashset.New()
	}
	ga.computeFirst()
	ga.computeFollow()
	return ga, nil
}

// Grammar returns the grammar this analysis is about.
func (ga *LRAnalysis) Grammar() *Grammar {
	return ga.g
}

// Start returns the start symbol.
func (ga *LRAnalysis) Start() Symbol {
	return ga.start
}

func (ga *LRAnalysis) computeFirst() {
	changed := true
	for changed {
		changed = false
		for _, r := range ga.g.rules {
			if grow(ga.first[r.LHS], ga.firstOf(r.rhs[0])) {
				changed = true
			}
		}
	}
}

func (ga *LRAnalysis) computeFollow() {
	ga.follow[ga.start].Add(EndMarker)
	changed := true
	for changed {
		changed = false
		for _, r := range ga.g.rules {
			for i, B := range r.rhs {
				if B.IsTerminal() {
					continue
				}
				var add *hashset.Set
				if i+1 < len(r.rhs) {
					add = ga.firstOf(r.rhs[i+1])
				} else {
					add = ga.follow[r.LHS]
				}
				if grow(ga.follow[B], add) {
					changed = true
				}
			}
		}
	}
}

// firstOf returns FIRST(A) for non-terminals and {A} for terminals.
func (ga *LRAnalysis) firstOf(A Symbol) *hashset.Set {
	if A.IsTerminal() {
		return hashset.New(A)
	}
	return ga.first[A]
}

// grow adds all elements of src to dest and reports if dest changed.
func grow(dest, src *hashset.Set) bool {
	n := dest.Size()
	dest.Add(src.Values()...)
	return dest.Size() > n
}

// First returns FIRST(A), sorted by name. For terminals this is A itself.
func (ga *LRAnalysis) First(A Symbol) []Symbol {
	if A.IsTerminal() {
		return []Symbol{A}
	}
	return sortedSymbols(ga.first[A])
}

// Follow returns FOLLOW(A), sorted by name. The end marker is included if
// A may appear at the end of a sentence.
func (ga *LRAnalysis) Follow(A Symbol) []Symbol {
	return sortedSymbols(ga.follow[A])
}

// InFollow is true if lookahead la may follow non-terminal A.
func (ga *LRAnalysis) InFollow(A Symbol, la Symbol) bool {
	set, ok := ga.follow[A]
	return ok && set.Contains(la)
}

func sortedSymbols(set *hashset.Set) []Symbol {
	if set == nil {
		return nil
	}
	syms := make([]Symbol, 0, set.Size())
	for _, x := range set.Values() {
		syms = append(syms, x.(Symbol))
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i].Name < syms[j].Name
	})
	return syms
}

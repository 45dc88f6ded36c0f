/*
Package lr implements grammars for the shift-reduce parser of package sr.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals. The order in
which rules are added is significant: it is the order the parser tries
reductions in. Non-terminals are ordered by their first appearance as a
left-hand side, rules of a non-terminal by their declaration.

Example:

    b := lr.NewGrammarBuilder("Expressions")
    b.LHS("E").N("E").T("+").N("T").End()  // E  ->  E + T
    b.LHS("E").N("T").End()                // E  ->  T
    b.LHS("T").N("T").T("*").N("F").End()  // T  ->  T * F
    b.LHS("T").N("F").End()                // T  ->  F
    b.LHS("F").T("(").N("E").T(")").End()  // F  ->  ( E )
    b.LHS("F").T("id").End()               // F  ->  id
    g, err := b.Grammar()

This results in the following grammar:

   g.Dump()

   0: E -> E + T
   1: E -> T
   2: T -> T * F
   3: T -> F
   4: F -> ( E )
   5: F -> id

Epsilon-productions are not supported. A rule without right-hand side
symbols makes b.Grammar() fail with an error wrapping ErrInvalidGrammar.

Static Grammar Analysis

For a given start symbol, a grammar may be subjected to an analysis, which
computes FIRST and FOLLOW sets. The shift-reduce parser uses FOLLOW sets
to refuse reductions which cannot possibly be followed by the current
lookahead.

    ga, err := lr.Analysis(g, "E")
    T, _ := g.SymbolByName("T")
    ga.Follow(T)                    // => [$ ) * +]

Grammar Files

Grammars may be read from YAML files, see ReadGrammar.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'srparse.lr'.
func tracer() tracing.Trace {
	return tracing.Select("srparse.lr")
}

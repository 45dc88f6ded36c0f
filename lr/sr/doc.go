/*
Package sr provides a naive shift-reduce parser with single-level
backtracking.

The parser does not use parser tables. It works directly on the ordered
rules of a grammar: after every shift, it reduces the stack as long as
the right-hand side of some rule matches the top of the stack. If more than
one rule matches, the first one in tie-break order wins: non-terminals in
the order of their declaration, and for each non-terminal its rules in the
order of their declaration. Re-ordering the rules of a grammar therefore
changes the parser's behaviour.

By default a reduction is only done if the lookahead may follow the
rule's left-hand side (GuardFollow). Without this guard (GuardNone) the
parser reduces greedily, which for the usual left-recursive expression
grammar reduces operands to the start symbol too early. Backtracking will
then repair the parse, at the cost of additional steps.

When all input has been shifted, no rule matches and the stack is not in
its accepting configuration, the parser backtracks: it rewinds to the state
right after the most recent successful reduction and shifts the next
terminal, instead of reducing further. If no terminal is left at the rewind
point, it backtracks again. Rewinding thus cuts a chain of reductions short,
e.g. keeping T on the stack instead of reducing it to E before a '*' arrives.
It does not try an alternative rule at the rewind point. If the history log
is exhausted, the input is rejected. A step bound protects against excessive
backtracking.

Usage

	p, err := sr.NewParser(g, "E")
	rec := &sr.Recorder{}
	result, err := p.Parse("id*id", rec)
	for _, step := range rec.Steps {
	    fmt.Println(step)
	}

This prints

	$              id*id$              Shifting
	$id            *id$                Reducing (F -> id)
	$F             *id$                Reducing (T -> F)
	$T             *id$                Shifting
	$T*            id$                 Shifting
	$T*id          $                   Reducing (F -> id)
	$T*F           $                   Reducing (T -> T * F)
	$T             $                   Reducing (E -> T)
	$E             $                   Accept

Every step is reported before its operation is applied.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'srparse.sr'.
func tracer() tracing.Trace {
	return tracing.Select("srparse.sr")
}

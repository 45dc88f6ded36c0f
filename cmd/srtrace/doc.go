/*
Command srtrace traces shift-reduce parses on the command line.

srtrace parses expressions with a grammar and prints every step of the
parser: the stack, the remaining input and the operation. It is intended
for experiments with the naive shift-reduce parser of package sr, e.g. to
observe how the order of rules influences reductions, or how backtracking
behaves.

Usage:

	srtrace [flags] [input]

If input is given on the command line, it is parsed and srtrace exits.
Otherwise srtrace starts an interactive session, where every line entered
is parsed. Lines starting with ':' are commands:

	:grammar   show the rules of the grammar in tie-break order
	:follow    show the FOLLOW sets of all non-terminals
	:tokens x  show the tokens of input x, skipping unrecognized characters
	:quit      leave srtrace (as does <ctrl>D)

Flags:

	-config file     TOML configuration file
	-grammar file    YAML grammar file (default: expression grammar)
	-start symbol    start symbol (overrides the grammar file)
	-guard name      reduce guard, "follow" or "none"
	-max-steps n     step bound for a single parse, 0 means unbounded
	-trace level     trace level [Debug|Info|Error]
	-table           render traces as tables

Flags take precedence over values from the configuration file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'srparse.cli'
func tracer() tracing.Trace {
	return tracing.Select("srparse.cli")
}

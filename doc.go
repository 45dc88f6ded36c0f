/*
Package srparse is a small shift-reduce parsing toolbox.

It drives a naive bottom-up parser directly from an ordered production
table, without constructing LR item sets or parser tables. Whenever the
stack can be reduced, it is reduced; when the parse runs into a dead end,
the parser rewinds to the most recent successful reduction. This makes
srparse a tool for teaching and for experiments with small grammars, not
for production languages. Package structure is as follows:

■ lr: Package lr holds grammars, the grammar builder and the static
grammar analysis (FIRST and FOLLOW sets).

■ lr/scanner: Package scanner defines tokenizers for the parser, backed by
lexmachine.

■ lr/sr: Package sr implements the shift-reduce engine with its history
log, backtracking and step tracing.

■ cmd/srtrace: A command line tool to trace parses interactively.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package srparse

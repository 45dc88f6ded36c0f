package sr

import (
	"github.com/npillmayer/srparse/lr"
)

// MachineState is a state of the parser's control automaton.
//
//    Init ──▶ Shifting ──▶ Reducing ──▶ Accepted
//                ▲  ▲         │
//                │  └─────────┤
//                │            ▼
//                └──────  Backtracking ──▶ Failed
//                            ▲   │
//                            └───┘
//
type MachineState int8

// States of the parser automaton.
const (
	Init MachineState = iota
	Shifting
	Reducing
	Accepted
	Failed
	Backtracking
)

func (s MachineState) String() string {
	switch s {
	case Init:
		return "Init"
	case Shifting:
		return "Shifting"
	case Reducing:
		return "Reducing"
	case Accepted:
		return "Accepted"
	case Failed:
		return "Failed"
	case Backtracking:
		return "Backtracking"
	}
	return "<unknown>"
}

// Operation is the kind of a parse step.
type Operation int8

// Operations of the parser. Only Shift and Reduce are recorded in the
// history log.
const (
	Shift Operation = iota
	Reduce
	Accept
	Backtrack
	Fail
)

func (op Operation) String() string {
	switch op {
	case Shift:
		return "Shift"
	case Reduce:
		return "Reduce"
	case Accept:
		return "Accept"
	case Backtrack:
		return "Backtrack"
	case Fail:
		return "Fail"
	}
	return "<unknown>"
}

// ParseState is the stack and the remaining input of a parse.
// Stack[0] is always lr.BottomMarker, and the last symbol of Input is
// always lr.EndMarker.
type ParseState struct {
	Stack []lr.Symbol
	Input []lr.Symbol
}

func newParseState(terminals []lr.Symbol) ParseState {
	input := make([]lr.Symbol, 0, len(terminals)+1)
	input = append(input, terminals...)
	input = append(input, lr.EndMarker)
	return ParseState{
		Stack: []lr.Symbol{lr.BottomMarker},
		Input: input,
	}
}

// Clone returns a deep copy of st.
func (st ParseState) Clone() ParseState {
	return ParseState{
		Stack: append([]lr.Symbol(nil), st.Stack...),
		Input: append([]lr.Symbol(nil), st.Input...),
	}
}

// Lookahead is the front symbol of the input buffer (possibly the end marker).
func (st ParseState) Lookahead() lr.Symbol {
	if len(st.Input) == 0 {
		return lr.EndMarker
	}
	return st.Input[0]
}

// pending is true if a terminal is waiting in front of the end marker.
func (st ParseState) pending() bool {
	return len(st.Input) > 1
}

// isAccepting is true for stack [$ S] and input [$].
func (st ParseState) isAccepting(S lr.Symbol) bool {
	return len(st.Stack) == 2 && st.Stack[0] == lr.BottomMarker && st.Stack[1] == S &&
		len(st.Input) == 1 && st.Input[0] == lr.EndMarker
}

func (st ParseState) String() string {
	return lr.SymbolsString(st.Stack) + " | " + lr.SymbolsString(st.Input)
}

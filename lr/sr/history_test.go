package sr

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/srparse/lr"
)

func TestHistoryLog(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "srparse.sr")
	defer teardown()
	//
	h := NewHistoryLog()
	if _, ok := h.Last(); ok {
		t.Errorf("expected empty history log to have no last entry")
	}
	st := newParseState(symbols("id", "*", "id"))
	st.Stack = append(st.Stack, st.Input[0])
	st.Input = st.Input[1:]
	h.Record(Shift, st) // $id | *id$
	st.Stack[1] = lr.NonTerm("F")
	h.Record(Reduce, st) // $F | *id$
	st.Stack[1] = lr.NonTerm("T")
	h.Record(Reduce, st) // $T | *id$
	st.Stack = append(st.Stack, st.Input[0])
	st.Input = st.Input[1:]
	h.Record(Shift, st) // $T* | id$
	h.Record(Accept, st)
	h.Record(Backtrack, st)
	if h.Len() != 4 {
		t.Fatalf("expected history to contain 4 snapshots, has %d", h.Len())
	}
	if last, _ := h.Last(); last.Op != Shift || last.State.String() != "$T* | id$" {
		t.Errorf("unexpected last snapshot %v %v", last.Op, last.State)
	}
	st.Stack[1] = lr.NonTerm("X") // must not change recorded snapshots
	restored, ok := h.Backtrack()
	if !ok {
		t.Fatalf("expected backtracking to succeed")
	}
	if restored.String() != "$T | *id$" {
		t.Errorf("expected to backtrack to $T | *id$, got %v", restored)
	}
	if h.Len() != 2 {
		t.Errorf("expected 2 snapshots to remain, have %d", h.Len())
	}
	restored, ok = h.Backtrack()
	if !ok || restored.String() != "$F | *id$" {
		t.Errorf("expected to backtrack to $F | *id$, got %v", restored)
	}
	if _, ok = h.Backtrack(); ok {
		t.Errorf("expected backtracking to fail without reduce snapshots")
	}
	if h.Len() != 0 {
		t.Errorf("expected history to be exhausted, has %d snapshots", h.Len())
	}
}

func TestParseStateClone(t *testing.T) {
	st := newParseState(symbols("id"))
	c := st.Clone()
	c.Stack = append(c.Stack, lr.Term("x"))
	c.Input[0] = lr.Term("y")
	if st.String() != "$ | id$" {
		t.Errorf("clone is not independent of original: %v", st)
	}
	if st.Lookahead() != lr.Term("id") {
		t.Errorf("expected lookahead id, have %v", st.Lookahead())
	}
	if (ParseState{}).Lookahead() != lr.EndMarker {
		t.Errorf("expected lookahead of empty input to be the end marker")
	}
}

func TestMachineStateNames(t *testing.T) {
	names := []string{}
	for s := Init; s <= Backtracking; s++ {
		names = append(names, s.String())
	}
	if strings.Join(names, ",") != "Init,Shifting,Reducing,Accepted,Failed,Backtracking" {
		t.Errorf("unexpected state names %v", names)
	}
	if Reduce.String() != "Reduce" || Operation(42).String() != "<unknown>" {
		t.Errorf("unexpected operation names")
	}
}

func TestPrinter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "srparse.sr")
	defer teardown()
	//
	p := makeParser(t)
	var buf bytes.Buffer
	if _, err := p.Parse("id", NewPrinter(&buf)); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Parse("id", NewPrinter(&buf)); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	t.Logf("\n%s", buf.String())
	if len(lines) != 2*(2+5) {
		t.Fatalf("expected 14 lines of output, have %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Stack") || lines[0] != Header() {
		t.Errorf("expected header line, have %q", lines[0])
	}
	if lines[2] != "$              id$                 Shifting" {
		t.Errorf("unexpected first step %q", lines[2])
	}
	if lines[6] != "$E             $                   Accept" {
		t.Errorf("unexpected last step %q", lines[6])
	}
	if lines[7] != Header() {
		t.Errorf("expected header for second parse, have %q", lines[7])
	}
}

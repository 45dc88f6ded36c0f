package sr

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// Snapshot is an entry of the history log. Stack and Input are copies
// taken at the time of recording.
type Snapshot struct {
	Op    Operation
	State ParseState
}

// HistoryLog is an append-only log of parse states, taken after each shift
// and after each successful reduce. It is consumed by backtracking only.
//
// A HistoryLog belongs to a single parse and is not safe for concurrent use.
type HistoryLog struct {
	entries *arraylist.List
}

// NewHistoryLog creates an empty history log.
func NewHistoryLog() *HistoryLog {
	return &HistoryLog{entries: arraylist.New()}
}

// Record appends a snapshot of st. Only Shift and Reduce operations are
// recorded; other operations are ignored.
func (h *HistoryLog) Record(op Operation, st ParseState) {
	if op != Shift && op != Reduce {
		tracer().Errorf("history log: refusing to record operation %s", op)
		return
	}
	h.entries.Add(Snapshot{Op: op, State: st.Clone()})
}

// Len returns the number of snapshots in the log.
func (h *HistoryLog) Len() int {
	return h.entries.Size()
}

// Last returns the most recent snapshot, if any.
func (h *HistoryLog) Last() (Snapshot, bool) {
	x, ok := h.entries.Get(h.entries.Size() - 1)
	if !ok {
		return Snapshot{}, false
	}
	return x.(Snapshot), true
}

// Backtrack pops snapshots from the end of the log until it finds one
// recorded after a reduce. That snapshot is removed as well and its state
// returned. If there is no such snapshot, the log is left empty and
// Backtrack returns false.
//
// Backtrack will not consider alternatives at the rewind point: the state
// returned is the state right after the reduction, not before it.
func (h *HistoryLog) Backtrack() (ParseState, bool) {
	for h.entries.Size() > 0 {
		last := h.entries.Size() - 1
		x, _ := h.entries.Get(last)
		h.entries.Remove(last)
		if snap := x.(Snapshot); snap.Op == Reduce {
			tracer().Debugf("backtracking to %v", snap.State)
			return snap.State.Clone(), true
		}
	}
	return ParseState{}, false
}

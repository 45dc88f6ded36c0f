package sr

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/srparse/lr"
)

// Step is a record of a single parse step, taken before the step's operation
// is applied. For Reduce steps, Rule is the rule about to be applied.
type Step struct {
	N     int       // serial number of the step within its parse, starting at 0
	Op    Operation // operation of this step
	Rule  *lr.Rule  // rule for Reduce steps, nil otherwise
	Stack []lr.Symbol
	Input []lr.Symbol
}

// Label is the operation column of a trace line.
func (s Step) Label() string {
	switch s.Op {
	case Shift:
		return "Shifting"
	case Reduce:
		if s.Rule == nil {
			return "Reducing"
		}
		return "Reducing (" + s.Rule.String() + ")"
	case Accept:
		return "Accept"
	case Backtrack:
		return "Backtracking"
	case Fail:
		return "Parsing failed!"
	}
	return s.Op.String()
}

// StackString renders the stack, e.g. "$E+T".
func (s Step) StackString() string {
	return lr.SymbolsString(s.Stack)
}

// InputString renders the remaining input, e.g. "*id$".
func (s Step) InputString() string {
	return lr.SymbolsString(s.Input)
}

// String renders a step as a line with fixed-width columns.
func (s Step) String() string {
	return fmt.Sprintf("%-15s%-20s%s", s.StackString(), s.InputString(), s.Label())
}

// Reporter receives parse steps. Reporters are pure observers: they cannot
// influence the parser.
type Reporter interface {
	Report(Step)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Step)

// Report calls f(step).
func (f ReporterFunc) Report(step Step) {
	f(step)
}

// Recorder is a reporter collecting all steps.
type Recorder struct {
	Steps []Step
}

// Report is part of interface Reporter.
func (r *Recorder) Report(step Step) {
	r.Steps = append(r.Steps, step)
}

// Labels returns the labels of all recorded steps.
func (r *Recorder) Labels() []string {
	labels := make([]string, len(r.Steps))
	for i, step := range r.Steps {
		labels[i] = step.Label()
	}
	return labels
}

// Last returns the most recent step, if any.
func (r *Recorder) Last() (Step, bool) {
	if len(r.Steps) == 0 {
		return Step{}, false
	}
	return r.Steps[len(r.Steps)-1], true
}

// Printer writes steps as fixed-width lines. A header is written before the
// first step of every parse.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a printer reporting to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Header returns the header line of a trace.
func Header() string {
	return fmt.Sprintf("%-15s%-20s%s", "Stack", "Input", "Operation")
}

// Report is part of interface Reporter.
func (p *Printer) Report(step Step) {
	if step.N == 0 {
		fmt.Fprintln(p.w, Header())
		fmt.Fprintln(p.w, strings.Repeat("-", 60))
	}
	fmt.Fprintln(p.w, step.String())
}

// TraceReporter returns a reporter which logs steps to the tracer of this
// package, at debug level.
func TraceReporter() Reporter {
	return ReporterFunc(func(step Step) {
		tracer().Debugf("[%3d] %s", step.N, step)
	})
}

// Reporters combines reporters. Nil reporters are skipped.
func Reporters(reporters ...Reporter) Reporter {
	var rs []Reporter
	for _, r := range reporters {
		if r != nil {
			rs = append(rs, r)
		}
	}
	return ReporterFunc(func(step Step) {
		for _, r := range rs {
			r.Report(step)
		}
	})
}

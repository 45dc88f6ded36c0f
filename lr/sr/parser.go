package sr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/srparse/lr"
	"github.com/npillmayer/srparse/lr/scanner"
)

// Errors returned by the parser. Errors for rejected input always wrap
// ErrParseRejected.
var (
	ErrParseRejected = errors.New("parse rejected")
	ErrStepLimit     = errors.New("step limit exceeded")
	ErrIllegalInput  = errors.New("illegal input symbol")
)

// DefaultMaxSteps is the default step bound of a parser.
const DefaultMaxSteps = 10000

// Guard selects which rules qualify for a reduction.
type Guard int8

const (
	// GuardFollow allows a reduction by rule A -> … only if the lookahead
	// is in FOLLOW(A).
	GuardFollow Guard = iota
	// GuardNone reduces greedily whenever a right-hand side matches.
	GuardNone
)

func (g Guard) String() string {
	switch g {
	case GuardFollow:
		return "follow"
	case GuardNone:
		return "none"
	}
	return "<unknown>"
}

// ParseGuard reads a guard from its name ("follow" or "none").
func ParseGuard(s string) (Guard, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "follow", "":
		return GuardFollow, nil
	case "none", "greedy":
		return GuardNone, nil
	}
	return GuardFollow, fmt.Errorf("unknown reduce guard: %q", s)
}

// Parser is a shift-reduce parser for a grammar. Create one with NewParser.
//
// A Parser holds no state of a parse in progress; every call to Parse works
// on its own stack, input buffer and history log. It is therefore safe to
// use a Parser from multiple goroutines.
type Parser struct {
	ga       *lr.LRAnalysis
	rules    []*lr.Rule // all rules in tie-break order
	lexer    scanner.Lexer
	guard    Guard
	maxSteps int
}

// Option configures a parser.
type Option func(p *Parser)

// MaxSteps sets the maximum number of shift, reduce and backtrack operations
// of a single parse. A value <= 0 removes the bound.
func MaxSteps(n int) Option {
	return func(p *Parser) {
		p.maxSteps = n
	}
}

// ReduceGuard selects the reduction guard. The default is GuardFollow.
func ReduceGuard(g Guard) Option {
	return func(p *Parser) {
		p.guard = g
	}
}

// WithLexer sets the lexer used by Parse. The default is
// scanner.ArithmeticLexer().
func WithLexer(lexer scanner.Lexer) Option {
	return func(p *Parser) {
		p.lexer = lexer
	}
}

// NewParser creates a parser for grammar g and start symbol start.
// It returns an error wrapping lr.ErrInvalidGrammar if start is not a
// non-terminal of g, or an error from creating the default lexer.
func NewParser(g *lr.Grammar, start string, opts ...Option) (*Parser, error) {
	ga, err := lr.Analysis(g, start)
	if err != nil {
		return nil, err
	}
	p := &Parser{
		ga:       ga,
		rules:    g.Rules(),
		guard:    GuardFollow,
		maxSteps: DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.lexer == nil {
		if p.lexer, err = scanner.ArithmeticLexer(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Grammar returns the grammar of p.
func (p *Parser) Grammar() *lr.Grammar {
	return p.ga.Grammar()
}

// Analysis returns the grammar analysis p uses for its reduce guard.
func (p *Parser) Analysis() *lr.LRAnalysis {
	return p.ga
}

// Result is the outcome of a parse.
type Result struct {
	Accepted   bool
	Stack      []lr.Symbol // final stack
	Input      []lr.Symbol // final input buffer
	Steps      int         // number of shift, reduce and backtrack operations
	Backtracks int         // number of backtrack operations
}

// Parse tokenizes input and parses it. rep receives every step of the parse
// and may be nil.
//
// If the input cannot be tokenized, the lexer's error is returned (see
// scanner.ErrLex) and no step is performed. If the parser cannot accept the
// input, it returns a Result together with an error wrapping ErrParseRejected.
func (p *Parser) Parse(input string, rep Reporter) (*Result, error) {
	tokens, err := p.lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	terminals := make([]lr.Symbol, len(tokens))
	for i, token := range tokens {
		terminals[i] = lr.Term(p.lexer.TerminalName(token.TokType()))
	}
	return p.ParseSymbols(terminals, rep)
}

// ParseSymbols parses a sequence of terminals. See Parse.
func (p *Parser) ParseSymbols(terminals []lr.Symbol, rep Reporter) (*Result, error) {
	for i, A := range terminals {
		if !A.IsTerminal() {
			return nil, fmt.Errorf("%w: input symbol #%d %q is not a terminal", ErrIllegalInput, i, A.Name)
		}
	}
	m := &machine{
		p:       p,
		state:   Init,
		history: NewHistoryLog(),
		rep:     rep,
	}
	m.run(terminals)
	result := &Result{
		Accepted:   m.state == Accepted,
		Stack:      m.ps.Stack,
		Input:      m.ps.Input,
		Steps:      m.steps,
		Backtracks: m.backtracks,
	}
	if m.err != nil {
		tracer().Infof("parse rejected after %d steps: %v", m.steps, m.err)
		return result, m.err
	}
	tracer().Infof("input accepted after %d steps", m.steps)
	return result, nil
}

// --- Parser automaton ------------------------------------------------------

// machine holds the state of a single parse.
type machine struct {
	p          *Parser
	state      MachineState
	ps         ParseState
	history    *HistoryLog
	rep        Reporter
	n          int // serial number for the next reported step
	steps      int // operations performed
	backtracks int
	err        error
}

// run drives the automaton until it is either Accepted or Failed.
func (m *machine) run(terminals []lr.Symbol) {
	for m.state != Accepted && m.state != Failed {
		next := m.transition(terminals)
		tracer().P("state", m.state.String()).Debugf("%v ──▶ %v", m.ps, next)
		m.state = next
	}
}

// transition performs the work of the current state and returns the next state.
func (m *machine) transition(terminals []lr.Symbol) MachineState {
	switch m.state {
	case Init:
		m.ps = newParseState(terminals)
		return Shifting
	case Shifting:
		return m.shift()
	case Reducing:
		return m.reduce()
	case Backtracking:
		return m.backtrack()
	}
	return m.state
}

// shift moves the front terminal of the input onto the stack.
func (m *machine) shift() MachineState {
	if !m.ps.pending() {
		return Reducing
	}
	if !m.tick() {
		return Failed
	}
	m.report(Shift, nil)
	m.ps.Stack = append(m.ps.Stack, m.ps.Input[0])
	m.ps.Input = m.ps.Input[1:]
	m.history.Record(Shift, m.ps)
	return Reducing
}

// reduce performs a single reduction, if possible. If no rule applies, the
// stack has reached its fixpoint, and reduce decides how to go on.
func (m *machine) reduce() MachineState {
	rule := m.p.findHandle(m.ps)
	if rule == nil {
		return m.decide()
	}
	if !m.tick() {
		return Failed
	}
	m.report(Reduce, rule)
	depth := len(m.ps.Stack) - rule.Len()
	m.ps.Stack = append(m.ps.Stack[:depth:depth], rule.LHS)
	m.history.Record(Reduce, m.ps)
	return Reducing
}

// decide is called whenever no more reductions are possible.
func (m *machine) decide() MachineState {
	if m.ps.isAccepting(m.p.ga.Start()) {
		m.report(Accept, nil)
		return Accepted
	}
	if m.ps.pending() {
		return Shifting
	}
	return Backtracking
}

// backtrack rewinds to the most recent successful reduction. The restored
// state lies within a reduce fixpoint which already led to a dead end, so
// reducing it again would repeat that path. Instead the parser shifts the
// next terminal. With no terminal pending, there is nothing to try from the
// restored state and backtracking continues.
func (m *machine) backtrack() MachineState {
	if !m.tick() {
		return Failed
	}
	m.backtracks++
	m.report(Backtrack, nil)
	st, ok := m.history.Backtrack()
	if !ok {
		m.err = fmt.Errorf("%w: no more reductions to backtrack to", ErrParseRejected)
		m.report(Fail, nil)
		return Failed
	}
	m.ps = st
	if m.ps.pending() {
		return Shifting
	}
	return Backtracking
}

// tick counts an operation. If the step bound is exhausted, tick fails
// the parse and returns false.
func (m *machine) tick() bool {
	if m.p.maxSteps > 0 && m.steps >= m.p.maxSteps {
		m.err = fmt.Errorf("%w: %w: %d operations", ErrParseRejected, ErrStepLimit, m.steps)
		m.report(Fail, nil)
		return false
	}
	m.steps++
	return true
}

func (m *machine) report(op Operation, rule *lr.Rule) {
	if m.rep == nil {
		m.n++
		return
	}
	m.rep.Report(Step{
		N:     m.n,
		Op:    op,
		Rule:  rule,
		Stack: append([]lr.Symbol(nil), m.ps.Stack...),
		Input: append([]lr.Symbol(nil), m.ps.Input...),
	})
	m.n++
}

// findHandle returns the first rule in tie-break order whose right-hand side
// matches the top of the stack, or nil. The bottom marker never takes part
// in a match.
func (p *Parser) findHandle(ps ParseState) *lr.Rule {
	stack := ps.Stack[1:]
	la := ps.Lookahead()
	for _, r := range p.rules {
		if !r.MatchesSuffix(stack) {
			continue
		}
		if p.guard == GuardFollow && !p.ga.InFollow(r.LHS, la) {
			tracer().Debugf("%s matches, but %s not in FOLLOW(%s)", r, la, r.LHS)
			continue
		}
		return r
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/srparse/lr"
	"github.com/npillmayer/srparse/lr/scanner"
	"github.com/npillmayer/srparse/lr/sr"
)

// Intp is our interpreter object.
type Intp struct {
	parser *sr.Parser
	lexer  *scanner.ArithLexer
	repl   *readline.Instance
	table  bool // render traces as pterm tables
}

// newIntp creates an interpreter for parser. The lexer for :tokens is the
// one the parser uses by default.
func newIntp(parser *sr.Parser, table bool) (*Intp, error) {
	lexer, err := scanner.ArithmeticLexer()
	if err != nil {
		return nil, err
	}
	return &Intp{parser: parser, lexer: lexer, table: table}, nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			continue // already displayed
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval parses a line of input and displays the trace. Lines starting with
// ':' are commands. Eval returns true if the user asked to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	if strings.HasPrefix(line, ":") {
		return intp.execute(line)
	}
	rec := &sr.Recorder{}
	var rep sr.Reporter = rec
	if !intp.table {
		rep = sr.NewPrinter(os.Stdout)
	}
	result, err := intp.parser.Parse(line, sr.Reporters(rep, sr.TraceReporter()))
	if intp.table && len(rec.Steps) > 0 {
		pterm.DefaultTable.WithHasHeader().WithData(traceData(rec.Steps)).Render()
	}
	if err != nil {
		switch {
		case errors.Is(err, sr.ErrStepLimit):
			pterm.Error.Println(fmt.Sprintf("%v (raise the bound with -max-steps)", err))
		case result != nil:
			pterm.Error.Println(fmt.Sprintf("%v (%d steps, %d backtracks)", err, result.Steps, result.Backtracks))
		default:
			pterm.Error.Println(err.Error())
		}
		return false, err
	}
	pterm.Info.Println(fmt.Sprintf("accepted after %d steps, %d backtracks", result.Steps, result.Backtracks))
	return false, nil
}

func (intp *Intp) execute(cmd string) (bool, error) {
	if rest, ok := strings.CutPrefix(cmd, ":tokens"); ok {
		return false, intp.showTokens(strings.TrimSpace(rest))
	}
	switch strings.TrimSpace(cmd) {
	case ":quit", ":q":
		return true, nil
	case ":grammar":
		g := intp.parser.Grammar()
		pterm.Println(g.Name)
		pterm.DefaultTree.WithRoot(grammarTree(g)).Render()
		return false, nil
	case ":follow":
		pterm.DefaultTable.WithHasHeader().WithData(followData(intp.parser.Analysis())).Render()
		return false, nil
	}
	err := errors.New("unknown command " + cmd)
	pterm.Error.Println(err.Error())
	pterm.Info.Println(usage())
	return false, err
}

// showTokens displays the tokens of input. Unrecognized characters are
// reported and skipped.
func (intp *Intp) showTokens(input string) error {
	sc, err := intp.lexer.Scanner(input)
	if err != nil {
		pterm.Error.Println(err.Error())
		return err
	}
	data, errs := tokenData(sc, intp.lexer)
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	for _, e := range errs {
		pterm.Error.Println(e.Error())
	}
	return errors.Join(errs...)
}

// tokenData reads all tokens from tz and arranges them as rows of a table,
// together with the terminal each token stands for. Errors of the tokenizer
// are collected and returned.
func tokenData(tz scanner.Tokenizer, lexer scanner.Lexer) (pterm.TableData, []error) {
	var errs []error
	tz.SetErrorHandler(func(err error) {
		tracer().Debugf("tokenizer: %v", err)
		errs = append(errs, err)
	})
	data := pterm.TableData{{"Lexeme", "Terminal", "Span"}}
	for token := tz.NextToken(); token.TokType() != scanner.EOF; token = tz.NextToken() {
		data = append(data, []string{
			token.Lexeme(),
			lexer.TerminalName(token.TokType()),
			token.Span().String(),
		})
	}
	return data, errs
}

// traceData arranges the steps of a parse as rows of a table.
func traceData(steps []sr.Step) pterm.TableData {
	data := pterm.TableData{{"#", "Stack", "Input", "Operation"}}
	for _, step := range steps {
		data = append(data, []string{
			strconv.Itoa(step.N),
			step.StackString(),
			step.InputString(),
			step.Label(),
		})
	}
	return data
}

// followData arranges the FOLLOW sets of all non-terminals as rows of a table.
func followData(ga *lr.LRAnalysis) pterm.TableData {
	data := pterm.TableData{{"Non-terminal", "FOLLOW"}}
	for _, A := range ga.Grammar().NonTerminals() {
		follow := []string{}
		for _, la := range ga.Follow(A) {
			follow = append(follow, la.Name)
		}
		data = append(data, []string{A.Name, strings.Join(follow, " ")})
	}
	return data
}

// grammarTree shows the rules of a grammar in tie-break order, grouped by
// their left-hand side.
func grammarTree(g *lr.Grammar) pterm.TreeNode {
	ll := pterm.LeveledList{}
	g.EachNonTerminal(func(A lr.Symbol, rules []*lr.Rule) {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: A.Name})
		for _, r := range rules {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: r.String()})
		}
	})
	return pterm.NewTreeFromLeveledList(ll)
}

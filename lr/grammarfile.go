package lr

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// GrammarFile is the content of a grammar file: a grammar and the start
// symbol to use with it.
type GrammarFile struct {
	Grammar *Grammar
	Start   string
}

// ReadGrammar reads a grammar in YAML format. The format is
//
//    name: Expressions
//    start: E
//    rules:
//      E: [[E, "+", T], [T]]
//      T: [[T, "*", F], [F]]
//      F: [["(", E, ")"], [id]]
//
// Every key of 'rules' is a non-terminal, and keys are taken in the order
// they appear in the file. Each value is the list of right-hand sides for
// that non-terminal. Symbols on a right-hand side which are keys of 'rules'
// are non-terminals, all others are terminals.
// If 'start' is missing, the first non-terminal is the start symbol.
//
// Malformed files result in an error wrapping ErrInvalidGrammar.
func ReadGrammar(r io.Reader) (*GrammarFile, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGrammar, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: grammar file must contain a mapping", ErrInvalidGrammar)
	}
	var name, start string
	var rules *yaml.Node
	top := doc.Content[0]
	for i := 0; i+1 < len(top.Content); i += 2 {
		key, val := top.Content[i], top.Content[i+1]
		switch key.Value {
		case "name":
			name = val.Value
		case "start":
			start = val.Value
		case "rules":
			rules = val
		default:
			tracer().Infof("grammar file: ignoring unknown key %q at line %d", key.Value, key.Line)
		}
	}
	if rules == nil || rules.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: grammar file has no rules mapping", ErrInvalidGrammar)
	}
	lhs := make(map[string]bool)
	for i := 0; i+1 < len(rules.Content); i += 2 {
		lhs[rules.Content[i].Value] = true
	}
	b := NewGrammarBuilder(name)
	for i := 0; i+1 < len(rules.Content); i += 2 {
		key, val := rules.Content[i], rules.Content[i+1]
		if val.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("%w: line %d: rules for %q must be a list",
				ErrInvalidGrammar, val.Line, key.Value)
		}
		for _, rhs := range val.Content {
			var syms []string
			if err := rhs.Decode(&syms); err != nil {
				return nil, fmt.Errorf("%w: line %d: right-hand side for %q: %v",
					ErrInvalidGrammar, rhs.Line, key.Value, err)
			}
			rb := b.LHS(key.Value)
			for _, s := range syms {
				if lhs[s] {
					rb.N(s)
				} else {
					rb.T(s)
				}
			}
			rb.End()
		}
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	if start == "" {
		start = g.nonterminals[0].Name
	}
	if _, ok := g.byLHS[NonTerm(start)]; !ok {
		return nil, fmt.Errorf("%w: start symbol %q is not a non-terminal", ErrInvalidGrammar, start)
	}
	return &GrammarFile{Grammar: g, Start: start}, nil
}

// LoadGrammar reads a grammar file from disk. See ReadGrammar.
func LoadGrammar(path string) (*GrammarFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	gf, err := ReadGrammar(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracer().Infof("loaded grammar %q from %s", gf.Grammar.Name, path)
	return gf, nil
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/npillmayer/srparse/lr"
	"github.com/npillmayer/srparse/lr/sr"
)

// Config holds the settings of srtrace. Values are read from an optional
// TOML file and may be overridden by command line flags.
type Config struct {
	Grammar  string `toml:"grammar"`   // YAML grammar file, empty for the built-in grammar
	Start    string `toml:"start"`     // start symbol, overrides the grammar file
	Guard    string `toml:"guard"`     // reduce guard, see sr.ParseGuard
	MaxSteps int    `toml:"max-steps"` // step bound
	Trace    string `toml:"trace"`     // trace level
	Table    bool   `toml:"table"`     // render traces as tables
}

func defaultConfig() Config {
	return Config{
		Guard:    sr.GuardFollow.String(),
		MaxSteps: sr.DefaultMaxSteps,
		Trace:    "Info",
		Table:    true,
	}
}

// loadConfig reads a TOML file into cfg. Keys missing in the file leave
// cfg untouched.
func loadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

// parseArgs evaluates the command line. It returns the configuration and
// the remaining (non-flag) arguments.
func parseArgs(args []string) (Config, []string, error) {
	cfg := defaultConfig()
	fs := flag.NewFlagSet("srtrace", flag.ContinueOnError)
	configFile := fs.String("config", "", "TOML configuration file")
	grammar := fs.String("grammar", cfg.Grammar, "YAML grammar file")
	start := fs.String("start", cfg.Start, "Start symbol")
	guard := fs.String("guard", cfg.Guard, "Reduce guard [follow|none]")
	maxSteps := fs.Int("max-steps", cfg.MaxSteps, "Step bound for a single parse")
	tlevel := fs.String("trace", cfg.Trace, "Trace level [Debug|Info|Error]")
	table := fs.Bool("table", cfg.Table, "Render traces as tables")
	if err := fs.Parse(args); err != nil {
		return cfg, nil, err
	}
	if *configFile != "" {
		if err := loadConfig(*configFile, &cfg); err != nil {
			return cfg, nil, err
		}
	}
	fs.Visit(func(f *flag.Flag) { // flags set explicitly win over the config file
		switch f.Name {
		case "grammar":
			cfg.Grammar = *grammar
		case "start":
			cfg.Start = *start
		case "guard":
			cfg.Guard = *guard
		case "max-steps":
			cfg.MaxSteps = *maxSteps
		case "trace":
			cfg.Trace = *tlevel
		case "table":
			cfg.Table = *table
		}
	})
	return cfg, fs.Args(), nil
}

// We provide a simple expression grammar as a default.
//
//  E  ➞ E + T  |  T
//  T  ➞ T * F  |  F
//  F  ➞ ( E )  |  id
//
func makeExprGrammar() *lr.Grammar {
	b := lr.NewGrammarBuilder("Expressions")
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("T").T("*").N("F").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("id").End()
	g, err := b.Grammar()
	if err != nil {
		panic(fmt.Errorf("error creating grammar: %s", err.Error()))
	}
	return g
}

// makeParser creates a parser from the configuration.
func makeParser(cfg Config) (*sr.Parser, error) {
	g, start := makeExprGrammar(), "E"
	if cfg.Grammar != "" {
		gf, err := lr.LoadGrammar(cfg.Grammar)
		if err != nil {
			return nil, err
		}
		g, start = gf.Grammar, gf.Start
	}
	if cfg.Start != "" {
		start = cfg.Start
	}
	guard, err := sr.ParseGuard(cfg.Guard)
	if err != nil {
		return nil, err
	}
	tracer().Infof("grammar %q, start symbol %s, reduce guard %s", g.Name, start, guard)
	return sr.NewParser(g, start, sr.ReduceGuard(guard), sr.MaxSteps(cfg.MaxSteps))
}

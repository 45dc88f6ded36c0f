package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// tracekeys are the tracers of srparse which follow the -trace flag.
var tracekeys = []string{"srparse.cli", "srparse.lr", "srparse.scanner", "srparse.sr"}

// main() parses the input given as arguments, or starts an interactive CLI
// where users may enter one input per line. Every parse is printed step by
// step.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	cfg, args, err := parseArgs(os.Args[1:])
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to srtrace")
	tracer().Infof("Trace level is %s", cfg.Trace)
	//
	// set up grammar and parser
	parser, err := makeParser(cfg)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	for _, key := range tracekeys {
		tracing.Select(key).SetTraceLevel(traceLevel(cfg.Trace))
	}
	parser.Grammar().Dump() // only visible in debug mode
	intp, err := newIntp(parser, cfg.Table)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	input := strings.TrimSpace(strings.Join(args, " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if _, err = intp.Eval(input); err != nil {
			os.Exit(2)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("srtrace> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

func usage() string {
	return fmt.Sprintf("commands: %s", strings.Join([]string{":grammar", ":follow", ":tokens <input>", ":quit"}, " "))
}

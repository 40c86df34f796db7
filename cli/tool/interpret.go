/*
 * vex
 *
 * Copyright 2026 The Vex Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package tool wires the lexer, parser and evaluator together into the
command-line driver: flag parsing, source loading, and the
-dump-tokens/-dump-ast/-dump-vars-on-error debug surface.
*/
package tool

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"devt.de/krotik/common/fileutil"

	"github.com/vexlang/vex/config"
	"github.com/vexlang/vex/interpreter"
	"github.com/vexlang/vex/parser"
	"github.com/vexlang/vex/util"
)

/*
CLIInterpreter is the command-line driver: it parses flags, loads a
source file, and runs it through the lex/parse/evaluate pipeline. The
dump flags and the call-depth bound are not kept as struct fields —
ParseArgs writes them into config.Config, and every later stage reads
them back from there, so config is the single live store rather than a
parallel copy.
*/
type CLIInterpreter struct {
	EntryFile string // Source file to interpret

	LogFile  *string // Logfile (blank for the standard log output, stderr)
	LogLevel *string // Log level string (Debug, Info, Error)

	// memLog backs -dump-vars-on-error: a ring of recent log entries
	// dumped alongside the variable scope when a run fails.
	memLog *util.MemoryLogger

	// Out is where runtime output (built-in print/puts/...) goes;
	// LogOut is where diagnostics and dump output go.
	Out    io.Writer
	LogOut io.Writer
}

/*
NewCLIInterpreter creates a new command-line driver writing program
output to stdout and diagnostics to stderr.
*/
func NewCLIInterpreter() *CLIInterpreter {
	return &CLIInterpreter{Out: os.Stdout, LogOut: os.Stderr}
}

/*
ParseArgs parses the command line arguments. Returns true if the
program should exit without running anything (e.g. -help was given).
*/
func (i *CLIInterpreter) ParseArgs() bool {
	// Flag defaults come from config.DefaultConfig, not the live
	// config.Config map: ParseArgs may run more than once per process
	// (tests construct a fresh CLIInterpreter per case), and a prior
	// run's flags must not leak in as the next run's defaults.
	i.LogFile = flag.String("logfile", "", "Log to a file instead of stderr")
	i.LogLevel = flag.String("loglevel", "Info", "Logging level (Debug, Info, Error)")
	dumpTokens := flag.Bool("dump-tokens", config.DefaultConfig[config.DumpTokens].(bool), "Print the token stream and exit")
	dumpAST := flag.Bool("dump-ast", config.DefaultConfig[config.DumpAST].(bool), "Print the parsed AST and exit")
	dumpVarsOnError := flag.Bool("dump-vars-on-error", config.DefaultConfig[config.DumpVarsOnError].(bool), "Print the variable scope and recent log on a runtime error")
	maxCallDepth := flag.Int("max-call-depth", config.DefaultConfig[config.MaxCallDepth].(int), "Maximum function call recursion depth")
	showHelp := flag.Bool("help", false, "Show this help message")

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s [options] <source-file>\n", osArgs[0])
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output())
	}

	flag.CommandLine.Parse(osArgs[1:])

	if *showHelp {
		flag.Usage()
		return true
	}

	// Route the parsed flags into config.Config, the single live store
	// the interpreter and the rest of Interpret read back from.
	config.Config[config.DumpTokens] = *dumpTokens
	config.Config[config.DumpAST] = *dumpAST
	config.Config[config.DumpVarsOnError] = *dumpVarsOnError
	config.Config[config.MaxCallDepth] = *maxCallDepth

	if len(flag.Args()) > 0 {
		i.EntryFile = flag.Args()[0]
	}

	return false
}

/*
teeLogger forwards every call to both of its backing loggers, used to
keep the requested -logfile/-loglevel logger live while also feeding a
MemoryLogger for -dump-vars-on-error.
*/
type teeLogger struct {
	a, b util.Logger
}

func (t *teeLogger) LogError(m ...interface{}) { t.a.LogError(m...); t.b.LogError(m...) }
func (t *teeLogger) LogInfo(m ...interface{})  { t.a.LogInfo(m...); t.b.LogInfo(m...) }
func (t *teeLogger) LogDebug(m ...interface{}) { t.a.LogDebug(m...); t.b.LogDebug(m...) }

/*
newLogger builds the logger requested by -logfile/-loglevel. When
-dump-vars-on-error is set, it also tees into a MemoryLogger whose
recent entries get printed alongside the variable scope on failure.
*/
func (i *CLIInterpreter) newLogger() (util.Logger, error) {
	var logger util.Logger = util.NewStdOutLogger()

	if i.LogFile != nil && *i.LogFile != "" {
		f, err := os.Create(*i.LogFile)
		if err != nil {
			return nil, err
		}
		logger = util.NewBufferLogger(f)
	}

	if i.LogLevel != nil && *i.LogLevel != "" {
		llogger, err := util.NewLogLevelLogger(logger, *i.LogLevel)
		if err != nil {
			return nil, err
		}
		logger = llogger
	}

	if config.Bool(config.DumpVarsOnError) {
		i.memLog = util.NewMemoryLogger(32)
		logger = &teeLogger{logger, i.memLog}
	}

	return logger, nil
}

/*
Interpret runs the full pipeline over the entry file: lex, parse,
validate, evaluate. Returns the process exit code.
*/
func (i *CLIInterpreter) Interpret() int {
	if i.ParseArgs() {
		return 0
	}

	if i.EntryFile == "" {
		fmt.Fprintln(i.LogOut, fmt.Sprintf("vex %v: no source file given", config.ProductVersion))
		flag.Usage()
		return 1
	}

	if ok, _ := fileutil.PathExists(i.EntryFile); !ok {
		fmt.Fprintf(i.LogOut, "vex: cannot find source file %s\n", i.EntryFile)
		return 1
	}

	src, err := ioutil.ReadFile(i.EntryFile)
	if err != nil {
		fmt.Fprintf(i.LogOut, "vex: %v\n", err)
		return 1
	}

	if config.Bool(config.DumpTokens) {
		for _, t := range parser.LexToList(string(src)) {
			fmt.Fprintln(i.Out, t.String())
		}
		return 0
	}

	logger, err := i.newLogger()
	if err != nil {
		fmt.Fprintf(i.LogOut, "vex: %v\n", err)
		return 1
	}

	p := interpreter.NewProvider(i.EntryFile)
	p.Logger = logger
	p.Stdout = i.Out

	logger.LogInfo("parsing ", i.EntryFile)

	root, err := parser.ParseWithRuntime(i.EntryFile, string(src), p)
	if err != nil {
		logger.LogError(err)
		fmt.Fprintf(i.LogOut, "vex: %v\n", err)
		return 1
	}

	if config.Bool(config.DumpAST) {
		fmt.Fprint(i.Out, root.String())
		return 0
	}

	logger.LogDebug("validating ", i.EntryFile)

	if err := root.Runtime.Validate(); err != nil {
		logger.LogError(err)
		fmt.Fprintf(i.LogOut, "vex: %v\n", err)
		return 1
	}

	if _, err := root.Runtime.Eval(p.Global); err != nil {
		if config.Bool(config.DumpVarsOnError) {
			fmt.Fprintln(i.LogOut, p.Global)
			if i.memLog != nil {
				for _, entry := range i.memLog.Slice() {
					fmt.Fprintln(i.LogOut, entry)
				}
			}
		}
		fmt.Fprintf(i.LogOut, "vex: %v\n", err)
		return 1
	}

	return 0
}

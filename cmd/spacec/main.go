// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package main implements the command-line driver: reads a single
// source file, runs it through the lexer/parser/analyzer pipeline, and
// reports diagnostics (spec §4.7).
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"

	"github.com/spacelang/spacec/cerrs"
	"github.com/spacelang/spacec/cmd/spacec/cache"
	"github.com/spacelang/spacec/internal/ast"
	"github.com/spacelang/spacec/internal/config"
	"github.com/spacelang/spacec/internal/diagnostics"
	"github.com/spacelang/spacec/internal/lexer"
	"github.com/spacelang/spacec/internal/parser"
	"github.com/spacelang/spacec/internal/semantics"
	"github.com/spacelang/spacec/internal/source"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
	globalConfig *config.Config
)

func main() {
	for _, arg := range os.Args {
		if arg == "-version" || arg == "--version" {
			fmt.Printf("%s\n", version.Short())
			return
		} else if arg == "-build-info" || arg == "--build-info" {
			fmt.Printf("%s\n", version.String())
			return
		}
	}
	log.SetFlags(log.Lshortfile | log.Ltime)

	const configFileName = "spacec.json"
	debugConfigFile := false
	if sb, err := os.Stat(configFileName); err == nil && sb.Mode().IsRegular() {
		debugConfigFile = true
	}
	cfg, err := config.Load(configFileName, debugConfigFile)
	if err != nil && debugConfigFile {
		log.Printf("[config] %q: %v\n", configFileName, err)
	}
	globalConfig = cfg

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

var argsRoot struct {
	logFile struct {
		name string
		fd   *os.File
	}
	showVersion   bool
	lexerDebug    bool
	parserDebug   bool
	analyzerDebug bool
	cachePath     string
}

var cmdRoot = &cobra.Command{
	Use:           "spacec",
	Short:         "Root command for the compiler front end",
	Long:          `Lex, parse, and semantically analyze a single source file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if argsRoot.logFile.name != "" {
			fd, err := os.OpenFile(argsRoot.logFile.name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
			if err != nil {
				return err
			}
			argsRoot.logFile.fd = fd
			log.SetOutput(argsRoot.logFile.fd)
			argsRoot.showVersion = true
		}
		if argsRoot.showVersion {
			log.Printf("version: %s\n", version)
		}
		if argsRoot.lexerDebug {
			globalConfig.DebugFlags.Lexer = true
		}
		if argsRoot.parserDebug {
			globalConfig.DebugFlags.Parser = true
		}
		if argsRoot.analyzerDebug {
			globalConfig.DebugFlags.Analyzer = true
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if argsRoot.logFile.fd != nil {
			if err := argsRoot.logFile.fd.Close(); err != nil {
				return err
			}
		}
		return nil
	},
}

var cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of this application",
	Long:  `All software has versions. This is our application's version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s\n", version.String())
	},
}

func Execute() error {
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.showVersion, "show-version", false, "show version")
	cmdRoot.PersistentFlags().StringVar(&argsRoot.logFile.name, "log-file", "", "set log file")
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.lexerDebug, "lexer-debug", false, "enable lexer debug logging")
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.parserDebug, "parser-debug", false, "enable parser debug logging")
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.analyzerDebug, "analyzer-debug", false, "enable analyzer debug logging")
	cmdRoot.PersistentFlags().StringVar(&argsRoot.cachePath, "cache", "", "path to a sqlite database recording compilation runs")

	cmdRoot.Args = cobra.ExactArgs(1)
	cmdRoot.RunE = func(cmd *cobra.Command, args []string) error {
		return runCompile(args[0], argsRoot.cachePath)
	}

	cmdRoot.AddCommand(cmdVersion)

	return cmdRoot.Execute()
}

// runCompile runs one file through the lex/parse/analyze pipeline,
// renders any diagnostics to stderr, and optionally records the run in
// a sqlite-backed cache. It returns an error when the run could not be
// attempted (bad path, unreadable or rejected empty source) and
// cerrs.ErrFatalDiagnostic when the run recorded a fatal diagnostic,
// so the process exits non-zero in both cases.
func runCompile(path, cachePath string) error {
	if path == "" {
		return cerrs.ErrInvalidInputPath
	}
	sb, err := os.Stat(path)
	if err != nil {
		log.Printf("[compile] %q: %v\n", path, err)
		return err
	}
	if sb.IsDir() {
		log.Printf("[compile] %q: %v\n", path, cerrs.ErrNotAFile)
		return cerrs.ErrNotAFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[compile] %q: %v\n", path, err)
		return err
	}
	if len(data) == 0 && globalConfig.Parser.RejectEmptySource {
		log.Printf("[compile] %q: %v\n", path, cerrs.ErrEmptySource)
		return cerrs.ErrEmptySource
	}

	buf := source.New(path, data)
	diags := diagnostics.Bag{}

	if globalConfig.DebugFlags.Lexer {
		toks, lexDiags := lexer.New(buf).Tokenize()
		for _, tok := range toks {
			log.Printf("[lexer-debug] %s\n", tok)
		}
		for _, d := range lexDiags.All() {
			log.Printf("[lexer-debug] diagnostic: %s\n", d.Message)
		}
	}

	root, parseDiags := parser.Parse(buf)
	for _, d := range parseDiags.All() {
		diags.Add(d)
	}
	if globalConfig.DebugFlags.Parser {
		log.Printf("[parser-debug] %q: root=%s\n", path, root.String())
		root.Walk(func(n *ast.Node) {
			log.Printf("[parser-debug]   %s\n", n)
		})
	}

	ok := !diags.HasFatal()
	if ok {
		result := semantics.Analyze(root, buf)
		for _, d := range result.Diagnostics.All() {
			diags.Add(d)
		}
		ok = !diags.HasFatal()
		if globalConfig.DebugFlags.Analyzer {
			for name, entry := range result.Main.Symbols {
				log.Printf("[analyzer-debug] MAIN.%s: %s\n", name, entry.Type)
			}
		}
	}

	if err := diags.Render(os.Stderr, buf); err != nil {
		log.Printf("[compile] render: %v\n", err)
	}

	if cachePath != "" {
		if err := recordRun(cachePath, path, diags.Len(), ok); err != nil {
			log.Printf("[cache] %v\n", err)
		}
	}

	if !ok {
		return cerrs.ErrFatalDiagnostic
	}
	return nil
}

func recordRun(cachePath, sourcePath string, diagCount int, ok bool) error {
	store, err := cache.Open(cachePath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	return store.Record(cache.Run{
		ID:          uuid.New(),
		Path:        sourcePath,
		Diagnostics: diagCount,
		OK:          ok,
	})
}

// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package config

import (
	"encoding/json"
	"os"

	"github.com/spacelang/spacec/cerrs"
)

// Config allows each invocation of the driver to tune the compiler's
// debug verbosity and a handful of parser policy knobs without
// recompiling. It mirrors the reference project's JSON config shape.
type Config struct {
	DebugFlags DebugFlags_t `json:"DebugFlags"`
	Parser     Parser_t     `json:"Parser"`
}

// DebugFlags_t holds the debug switches, per spec §6 (LEXER_DEBUG,
// PARSER_DEBUG, ...). These were compile-time flags in the source; here
// they are runtime flags. Lexer, Parser and Analyzer gate the driver's
// token-stream, AST and MAIN-scope dumps and are also set by CLI flags;
// Timing is loaded from the file but nothing reads it.
type DebugFlags_t struct {
	Lexer    bool `json:"Lexer,omitempty"`
	Parser   bool `json:"Parser,omitempty"`
	Analyzer bool `json:"Analyzer,omitempty"`
	Timing   bool `json:"Timing,omitempty"`
}

// Parser_t holds parser/analyzer policy knobs that are not part of the
// language grammar itself.
type Parser_t struct {
	RejectEmptySource bool `json:"RejectEmptySource,omitempty"`
	MaxDiagnostics    int  `json:"MaxDiagnostics,omitempty"`
}

const (
	ErrIsDirectory = cerrs.Error("is directory")
	ErrIsNotAFile  = cerrs.Error("is not a file")
)

// Default returns a Config with every debug flag off and a generous
// diagnostic budget; it is always valid on its own.
func Default() *Config {
	return &Config{
		Parser: Parser_t{
			RejectEmptySource: true,
			MaxDiagnostics:    100,
		},
	}
}

// Load reads a JSON configuration file at path. If the file does not
// exist, it returns Default() with no error. Any other read or parse
// failure is returned to the caller; debug controls whether that
// failure is worth reporting (the driver only cares when the caller
// explicitly pointed at a config file).
func Load(path string, debug bool) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if sb, statErr := os.Stat(path); statErr == nil && sb.IsDir() {
		return cfg, ErrIsDirectory
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}
	if cfg.Parser.MaxDiagnostics <= 0 {
		cfg.Parser.MaxDiagnostics = Default().Parser.MaxDiagnostics
	}
	_ = debug
	return cfg, nil
}

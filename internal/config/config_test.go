// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spacelang/spacec/internal/config"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	if cfg.Parser.MaxDiagnostics <= 0 {
		t.Fatalf("default MaxDiagnostics must be positive, got %d", cfg.Parser.MaxDiagnostics)
	}
}

func TestLoadMissingFileFallsBackToDefault(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.json"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Parser.MaxDiagnostics != config.Default().Parser.MaxDiagnostics {
		t.Fatalf("expected default config")
	}
}

func TestLoadOverridesDebugFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spacec.json")
	if err := os.WriteFile(path, []byte(`{"DebugFlags":{"Lexer":true}}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.DebugFlags.Lexer {
		t.Fatalf("expected Lexer debug flag to be set")
	}
}

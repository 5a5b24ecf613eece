// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package cache implements the CLI driver's optional compilation
// record store: a tiny SQLite-backed log of "what did we compile and
// did it succeed", modeled on the reference project's
// stores/sqlite init/schema pattern. It is bookkeeping only — nothing
// in internal/ imports it, and it never feeds back into lex/parse/
// analyze decisions (SPEC_FULL.md §4.7).
package cache

import (
	"database/sql"
	"errors"
	"log"
	"os"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/spacelang/spacec/cerrs"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS compilation_run (
	id          TEXT PRIMARY KEY,
	path        TEXT NOT NULL,
	diagnostics INTEGER NOT NULL,
	ok          INTEGER NOT NULL,
	created_at  TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
);
`

// Run is one recorded compilation: what was compiled, how many
// diagnostics it produced, and whether the pipeline ended fatally.
type Run struct {
	ID          uuid.UUID
	Path        string
	Diagnostics int
	OK          bool
}

// Store is a handle to the SQLite-backed compilation log.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and
// ensures its schema exists.
func Open(path string) (*Store, error) {
	if sb, err := os.Stat(path); err == nil && sb.IsDir() {
		return nil, cerrs.ErrNotAFile
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		log.Printf("[cache] error: foreign keys are disabled\n")
		_ = db.Close()
		return nil, cerrs.ErrForeignKeysDisabled
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		_ = db.Close()
		return nil, errors.Join(cerrs.ErrCreateSchema, err)
	}
	return &Store{db: db}, nil
}

// Record inserts one row describing a completed compilation.
func (s *Store) Record(run Run) error {
	_, err := s.db.Exec(
		"INSERT INTO compilation_run (id, path, diagnostics, ok) VALUES (?, ?, ?, ?)",
		run.ID.String(), run.Path, run.Diagnostics, run.OK,
	)
	return err
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

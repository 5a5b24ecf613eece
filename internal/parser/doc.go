// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package parser implements a recursive-descent parser that turns a
// SPACE token vector into an AST. It never recovers from a grammar
// violation: the first mismatch aborts the parse for the enclosing
// statement and the compilation, matching spec §4.2's failure model.
package parser

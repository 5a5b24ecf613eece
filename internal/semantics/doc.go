// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package semantics walks a parsed AST to build a hierarchy of scope
// tables, resolve identifiers, check types, enforce visibility
// modifiers, and emit diagnostics with source-aligned messages (spec
// §4.3). It is the last stage of the compiler frontend; its output
// feeds a code generator this repository does not implement.
package semantics

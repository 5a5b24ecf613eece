// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package source implements the read-only source buffer shared by the
// lexer, parser, and diagnostics renderer.
package source

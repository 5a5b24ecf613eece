// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package diagnostics implements the structured error reports shared by
// the lexer, parser, and semantic analyzer: a category, a source
// position, a message, and a caret-underlined source snippet.
package diagnostics

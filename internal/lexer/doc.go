// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package lexer implements the SPACE tokenizer: a two-pass scanner that
// converts a source buffer into a vector of classified tokens.
package lexer

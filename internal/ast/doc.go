// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package ast implements the SPACE abstract syntax tree: a single
// tagged Node type with generic construction helpers (New, NewLeaf,
// NewBinary).
package ast

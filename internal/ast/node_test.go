// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package ast_test

import (
	"testing"

	"github.com/spacelang/spacec/internal/ast"
)

func TestWalkVisitsEveryNodeExactlyOnce(t *testing.T) {
	three := ast.NewLeaf(ast.Number, "3", 1, 13)
	four := ast.NewLeaf(ast.Number, "4", 1, 17)
	five := ast.NewLeaf(ast.Number, "5", 1, 21)
	mul := ast.NewBinary(ast.Multiply, four, five, 1, 18)
	plus := ast.NewBinary(ast.Plus, three, mul, 1, 15)

	varType := ast.NewLeaf(ast.VarType, "int", 1, 7)
	decl := &ast.Node{Kind: ast.Var, Value: "x", Line: 1, Column: 5, Details: []*ast.Node{varType}, Right: plus}

	seen := map[*ast.Node]int{}
	decl.Walk(func(n *ast.Node) { seen[n]++ })

	for _, n := range []*ast.Node{decl, varType, plus, three, mul, four, five} {
		if seen[n] != 1 {
			t.Errorf("node %s visited %d times, want 1", n, seen[n])
		}
	}
	if len(seen) != 7 {
		t.Errorf("want 7 distinct nodes reachable, got %d", len(seen))
	}
}

func TestTypeAnnotationAndModifierHelpers(t *testing.T) {
	mod := ast.NewLeaf(ast.Modifier, "private", 1, 1)
	typ := ast.NewLeaf(ast.VarType, "int", 1, 10)
	decl := &ast.Node{Kind: ast.Var, Value: "x", Left: mod, Details: []*ast.Node{typ}}

	if decl.ModifierValue() != "private" {
		t.Errorf("want modifier private, got %q", decl.ModifierValue())
	}
	if got := decl.TypeAnnotation(); got == nil || got.Value != "int" {
		t.Errorf("want type annotation int, got %v", got)
	}

	bare := &ast.Node{Kind: ast.Var, Value: "y"}
	if bare.ModifierValue() != "" {
		t.Errorf("want no modifier, got %q", bare.ModifierValue())
	}
	if bare.TypeAnnotation() != nil {
		t.Errorf("want no type annotation")
	}
}

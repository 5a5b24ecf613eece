// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parser_test

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/spacelang/spacec/internal/ast"
	"github.com/spacelang/spacec/internal/parser"
	"github.com/spacelang/spacec/internal/source"
)

func parse(t *testing.T, src string) *ast.Node {
	t.Helper()
	buf := source.New("test.sp", []byte(src))
	root, diags := parser.Parse(buf)
	if diags.HasFatal() {
		t.Fatalf("unexpected fatal diagnostic for %q: %v", src, diags.All())
	}
	return root
}

func TestSimpleVarDeclShape(t *testing.T) {
	root := parse(t, `var x:int = 1 + 2;`)
	want := &ast.Node{
		Kind: ast.Runnable, Line: 1, Column: 1,
		Details: []*ast.Node{
			{
				Kind: ast.Var, Value: "x", Line: 1, Column: 1,
				Details: []*ast.Node{
					{Kind: ast.VarType, Value: "int", Line: 1, Column: 7},
				},
				Right: &ast.Node{
					Kind: ast.Plus, Line: 1, Column: 15,
					Left:  &ast.Node{Kind: ast.Number, Value: "1", Line: 1, Column: 13},
					Right: &ast.Node{Kind: ast.Number, Value: "2", Line: 1, Column: 17},
				},
			},
		},
	}
	if diff := deep.Equal(root, want); diff != nil {
		t.Error(diff)
	}
}

func TestArrayVarTypeCarriesDimension(t *testing.T) {
	root := parse(t, `var xs:int[] = new int[3];`)
	if len(root.Details) != 1 {
		t.Fatalf("want one statement, got %d", len(root.Details))
	}
	decl := root.Details[0]
	if decl.Kind != ast.ArrayVar {
		t.Fatalf("want ARRAY_VAR, got %s", decl.Kind)
	}
	typ := decl.TypeAnnotation()
	if typ == nil || typ.Left == nil || typ.Left.Kind != ast.VarDim || typ.Left.Value != "1" {
		t.Fatalf("want VAR_TYPE with VAR_DIM(1), got %+v", typ)
	}
	if decl.Right == nil || decl.Right.Kind != ast.ArrayCreation || decl.Right.Value != "int" {
		t.Fatalf("want ARRAY_CREATION(int), got %+v", decl.Right)
	}
}

func TestAccessChainBuildsMemClassAccSpine(t *testing.T) {
	root := parse(t, `a->b.c();`)
	if len(root.Details) != 1 {
		t.Fatalf("want one statement, got %d", len(root.Details))
	}
	outer := root.Details[0]
	if outer.Kind != ast.MemClassAcc || outer.Value != "." {
		t.Fatalf("want outer MEM_CLASS_ACC('.'), got %s(%q)", outer.Kind, outer.Value)
	}
	inner := outer.Left
	if inner == nil || inner.Kind != ast.MemClassAcc || inner.Value != "->" {
		t.Fatalf("want inner MEM_CLASS_ACC('->'), got %+v", inner)
	}
	call := outer.Right
	if call == nil || call.Kind != ast.FunctionCall || call.Value != "c" {
		t.Fatalf("want FUNCTION_CALL(c), got %+v", call)
	}
}

func TestConditionalAssignmentShape(t *testing.T) {
	root := parse(t, `var x:int = a == 1 ? 2 : 3;`)
	decl := root.Details[0]
	if decl.Kind != ast.ConditionalVar {
		t.Fatalf("want CONDITIONAL_VAR, got %s", decl.Kind)
	}
	ca := decl.Right
	if ca == nil || ca.Kind != ast.ConditionalAssignment {
		t.Fatalf("want CONDITIONAL_ASSIGNMENT, got %+v", ca)
	}
	if ca.Left == nil || ca.Left.Kind != ast.CmpEq {
		t.Fatalf("want EQ condition, got %+v", ca.Left)
	}
	if len(ca.Details) != 2 {
		t.Fatalf("want two arms, got %d", len(ca.Details))
	}
}

func TestBreakInsideWhileParses(t *testing.T) {
	root := parse(t, `
var x:int = 1;
while (x < 10) { break; }
`)
	if len(root.Details) != 2 {
		t.Fatalf("want two statements, got %d", len(root.Details))
	}
	loop := root.Details[1]
	if loop.Kind != ast.While {
		t.Fatalf("want WHILE, got %s", loop.Kind)
	}
	if len(loop.Right.Details) != 1 || loop.Right.Details[0].Kind != ast.Break {
		t.Fatalf("want one BREAK statement in body, got %+v", loop.Right.Details)
	}
}

func TestEnumAutoIncrementsUnspecifiedValues(t *testing.T) {
	root := parse(t, `enum Color { RED, GREEN: 5, BLUE }`)
	e := root.Details[0]
	if e.Kind != ast.Enum || e.Value != "Color" {
		t.Fatalf("want ENUM(Color), got %s(%q)", e.Kind, e.Value)
	}
	wantValues := []string{"0", "5", "6"}
	if len(e.Details) != len(wantValues) {
		t.Fatalf("want %d enumerators, got %d", len(wantValues), len(e.Details))
	}
	for i, want := range wantValues {
		got := e.Details[i].Details[0].Value
		if got != want {
			t.Errorf("enumerator %d: want value %s, got %s", i, want, got)
		}
	}
}

func TestSyntaxMismatchIsFatal(t *testing.T) {
	buf := source.New("test.sp", []byte(`var x: = 1;`))
	root, diags := parser.Parse(buf)
	if root != nil {
		t.Fatalf("want nil root on fatal mismatch, got %+v", root)
	}
	if !diags.HasFatal() {
		t.Fatal("want a fatal diagnostic")
	}
}

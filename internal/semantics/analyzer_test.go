// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package semantics_test

import (
	"testing"

	"github.com/spacelang/spacec/internal/diagnostics"
	"github.com/spacelang/spacec/internal/parser"
	"github.com/spacelang/spacec/internal/semantics"
	"github.com/spacelang/spacec/internal/source"
)

func analyze(t *testing.T, src string) *semantics.Result {
	t.Helper()
	buf := source.New("test.sp", []byte(src))
	root, diags := parser.Parse(buf)
	if diags.HasFatal() {
		t.Fatalf("unexpected parse failure for %q: %v", src, diags.All())
	}
	return semantics.Analyze(root, buf)
}

func categories(diags []diagnostics.Diagnostic) []diagnostics.Category {
	cats := make([]diagnostics.Category, len(diags))
	for i, d := range diags {
		cats[i] = d.Category
	}
	return cats
}

func TestSimpleVarDeclHasNoDiagnostics(t *testing.T) {
	res := analyze(t, `var x:int = 3 + 4 * 5;`)
	if res.Diagnostics.Len() != 0 {
		t.Fatalf("want no diagnostics, got %v", categories(res.Diagnostics.All()))
	}
	entry, _, ok := res.Main.Lookup("x")
	if !ok {
		t.Fatal("want x defined in MAIN")
	}
	if entry.Type.Base != semantics.Integer {
		t.Errorf("want x:INTEGER, got %s", entry.Type.Base)
	}
}

func TestClassArrowCallResolvesReturnType(t *testing.T) {
	src := `
class A { global function:int f(y:int) { return y; } }
var a = new A();
a->f(1);
`
	res := analyze(t, src)
	if res.Diagnostics.Len() != 0 {
		t.Fatalf("want no diagnostics, got %v", categories(res.Diagnostics.All()))
	}
	aEntry, _, ok := res.Main.Lookup("a")
	if !ok || aEntry.Type.Base != semantics.ClassRef || aEntry.Type.ClassName != "A" {
		t.Fatalf("want a:CLASS_REF(A), got %+v ok=%v", aEntry, ok)
	}
}

func TestPrivateMemberAccessFromOutsideIsModifierViolation(t *testing.T) {
	src := `
class A { private function:int g() { return 0; } }
var a = new A();
a->g();
`
	res := analyze(t, src)
	cats := categories(res.Diagnostics.All())
	found := false
	for _, c := range cats {
		if c == diagnostics.ModifierException {
			found = true
		}
	}
	if !found {
		t.Fatalf("want a ModifierException, got %v", cats)
	}
}

func TestDuplicateConstructorSignatureIsAlreadyDefined(t *testing.T) {
	src := `
class B {
	this::constructor(p:int) {}
	this::constructor(p:int) {}
}
`
	res := analyze(t, src)
	cats := categories(res.Diagnostics.All())
	if len(cats) != 1 || cats[0] != diagnostics.AlreadyDefinedException {
		t.Fatalf("want exactly one AlreadyDefinedException, got %v", cats)
	}
}

func TestDistinctConstructorSignaturesAreNotDuplicates(t *testing.T) {
	src := `
class B {
	this::constructor(p:int) {}
	this::constructor(p:string) {}
}
`
	res := analyze(t, src)
	if res.Diagnostics.Len() != 0 {
		t.Fatalf("want no diagnostics, got %v", categories(res.Diagnostics.All()))
	}
}

func TestBreakAtMainScopeIsMisplaced(t *testing.T) {
	res := analyze(t, `break;`)
	cats := categories(res.Diagnostics.All())
	if len(cats) != 1 || cats[0] != diagnostics.StatementMisplacement {
		t.Fatalf("want exactly one StatementMisplacementException, got %v", cats)
	}
}

func TestBreakInsideWhileIsValid(t *testing.T) {
	res := analyze(t, `
var x:int = 1;
while (x < 10) { break; }
`)
	if res.Diagnostics.Len() != 0 {
		t.Fatalf("want no diagnostics, got %v", categories(res.Diagnostics.All()))
	}
}

func TestBreakBridgesThroughIfInsideFor(t *testing.T) {
	res := analyze(t, `
for (var i:int = 0; i < 10; i++) {
	if (i == 5) { break; }
}
`)
	if res.Diagnostics.Len() != 0 {
		t.Fatalf("want no diagnostics, got %v", categories(res.Diagnostics.All()))
	}
}

func TestElseIfChainAfterIfIsAccepted(t *testing.T) {
	res := analyze(t, `
var a:int = 1;
if (a == 1) { } else if (a == 2) { } else { }
`)
	if res.Diagnostics.Len() != 0 {
		t.Fatalf("want no diagnostics, got %v", categories(res.Diagnostics.All()))
	}
}

func TestArrayAccessBeyondDeclaredDimensionIsNoSuchArrayDimension(t *testing.T) {
	src := `
var xs:int[] = new int[3];
var y:int = xs[0][1];
`
	res := analyze(t, src)
	cats := categories(res.Diagnostics.All())
	count := 0
	for _, c := range cats {
		if c == diagnostics.NoSuchArrayDimException {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("want exactly one NoSuchArrayDimensionException, got %v", cats)
	}
}

func TestUndefinedIdentifierIsNotDefined(t *testing.T) {
	res := analyze(t, `var x:int = y + 1;`)
	cats := categories(res.Diagnostics.All())
	if len(cats) != 1 || cats[0] != diagnostics.NotDefinedException {
		t.Fatalf("want exactly one NotDefinedException, got %v", cats)
	}
}

func TestArithmeticTypeMismatch(t *testing.T) {
	res := analyze(t, `var x:int = "hello" + 1;`)
	cats := categories(res.Diagnostics.All())
	found := false
	for _, c := range cats {
		if c == diagnostics.TypeMismatchException {
			found = true
		}
	}
	if !found {
		t.Fatalf("want a TypeMismatchException, got %v", cats)
	}
}

func TestIncludeIsRecordedAsExternal(t *testing.T) {
	res := analyze(t, `include "lib/math.sp";`)
	if len(res.Externals) != 1 || res.Externals[0] != "lib/math.sp" {
		t.Fatalf("want one external lib/math.sp, got %v", res.Externals)
	}
}

func TestConditionalVarBothArmsMustAgreeInType(t *testing.T) {
	res := analyze(t, `
var a:int = 1;
var x:int = a == 1 ? 2 : "no";
`)
	cats := categories(res.Diagnostics.All())
	if len(cats) != 1 || cats[0] != diagnostics.TypeMismatchException {
		t.Fatalf("want exactly one TypeMismatchException, got %v", cats)
	}
}

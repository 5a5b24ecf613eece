// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package diagnostics_test

import (
	"strings"
	"testing"

	"github.com/spacelang/spacec/internal/diagnostics"
	"github.com/spacelang/spacec/internal/source"
)

func TestFormatIncludesCaret(t *testing.T) {
	buf := source.New("t.space", []byte("var x:int = 3 + ;\n"))
	d := diagnostics.Diagnostic{
		Category: diagnostics.SyntaxMismatchException,
		Severity: diagnostics.SeverityError,
		File:     "t.space",
		Line:     1,
		Column:   18,
		Message:  `expected expression, got ";"`,
	}
	out := d.Format(buf)
	if !strings.Contains(out, `SyntaxMismatchException: at line 1:18 from "t.space"`) {
		t.Errorf("missing header line: %s", out)
	}
	if !strings.Contains(out, "^^^") {
		t.Errorf("missing caret: %s", out)
	}
}

func TestBagHasFatal(t *testing.T) {
	var bag diagnostics.Bag
	if bag.HasFatal() {
		t.Fatalf("empty bag should not be fatal")
	}
	bag.Errorf(diagnostics.NotDefinedException, "t.space", 1, 1, "not defined: %s", "x")
	if !bag.HasFatal() {
		t.Fatalf("bag with an error diagnostic should be fatal")
	}
	if bag.Len() != 1 {
		t.Fatalf("want 1 diagnostic, got %d", bag.Len())
	}
}

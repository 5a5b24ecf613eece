// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package source_test

import (
	"testing"

	"github.com/spacelang/spacec/internal/source"
)

func TestLineText(t *testing.T) {
	b := source.New("t.space", []byte("var x:int = 1;\nvar y:int = 2;\n"))
	for _, tc := range []struct {
		line int
		want string
		ok   bool
	}{
		{1, "var x:int = 1;", true},
		{2, "var y:int = 2;", true},
		{3, "", true},
		{4, "", false},
	} {
		got, ok := b.LineText(tc.line)
		if ok != tc.ok {
			t.Errorf("line %d: ok: want %v, got %v", tc.line, tc.ok, ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("line %d: want %q, got %q", tc.line, tc.want, got)
		}
	}
}

func TestResolve(t *testing.T) {
	b := source.New("t.space", []byte("abc\ndef\n"))
	for _, tc := range []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{3, 1, 4},
		{4, 2, 1},
		{7, 2, 4},
	} {
		line, col := b.Resolve(tc.offset)
		if line != tc.wantLine || col != tc.wantCol {
			t.Errorf("offset %d: want %d:%d, got %d:%d", tc.offset, tc.wantLine, tc.wantCol, line, col)
		}
	}
}

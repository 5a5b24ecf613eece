// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexer_test

import (
	"testing"

	"github.com/spacelang/spacec/internal/lexer"
	"github.com/spacelang/spacec/internal/source"
)

func tokenize(t *testing.T, text string) []lexer.Token {
	t.Helper()
	buf := source.New("t.space", []byte(text))
	toks, diags := lexer.New(buf).Tokenize()
	if diags.HasFatal() {
		t.Fatalf("unexpected lexical diagnostics for %q: %v", text, diags.All())
	}
	return toks
}

func TestWhitespaceOnlyProducesSingleEOF(t *testing.T) {
	toks := tokenize(t, "   \n\t // a comment\n /* block */  ")
	if len(toks) != 1 || toks[0].Kind != lexer.EOF {
		t.Fatalf("want exactly one EOF token, got %v", toks)
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := tokenize(t, "var x class Foo")
	wantKinds := []lexer.Kind{lexer.KwVar, lexer.Identifier, lexer.KwClass, lexer.Identifier, lexer.EOF}
	if len(toks) != len(wantKinds) {
		t.Fatalf("want %d tokens, got %d: %v", len(wantKinds), len(toks), toks)
	}
	for i, want := range wantKinds {
		if toks[i].Kind != want {
			t.Errorf("token %d: want %s, got %s", i, want, toks[i].Kind)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	toks := tokenize(t, "3 + 4 * 5")
	wantKinds := []lexer.Kind{lexer.Integer, lexer.Plus, lexer.Integer, lexer.Star, lexer.Integer, lexer.EOF}
	for i, want := range wantKinds {
		if toks[i].Kind != want {
			t.Errorf("token %d: want %s, got %s", i, want, toks[i].Kind)
		}
	}
	if toks[2].Lexeme != "4" {
		t.Errorf("lexeme: want 4, got %q", toks[2].Lexeme)
	}
}

func TestFloatLiteralKeepsDotAsOneToken(t *testing.T) {
	toks := tokenize(t, "3.14")
	if len(toks) != 2 || toks[0].Kind != lexer.Float || toks[0].Lexeme != "3.14" {
		t.Fatalf("want single Float token 3.14, got %v", toks)
	}
}

func TestTwoCharOperatorsUpgrade(t *testing.T) {
	toks := tokenize(t, "a += 1; b == 2; c -> d; e => f;")
	var kinds []lexer.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	mustContain := []lexer.Kind{lexer.PlusEq, lexer.Eq, lexer.Arrow, lexer.FatArrow}
	for _, want := range mustContain {
		found := false
		for _, k := range kinds {
			if k == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected a %s token among %v", want, kinds)
		}
	}
}

func TestStringLiteralWithEscape(t *testing.T) {
	toks := tokenize(t, `"hello \"world\""`)
	if len(toks) != 2 || toks[0].Kind != lexer.String {
		t.Fatalf("want single String token, got %v", toks)
	}
	if toks[0].Lexeme != `"hello \"world\""` {
		t.Errorf("lexeme mismatch: %q", toks[0].Lexeme)
	}
}

func TestUnterminatedStringIsFatal(t *testing.T) {
	buf := source.New("t.space", []byte(`"unterminated`))
	_, diags := lexer.New(buf).Tokenize()
	if !diags.HasFatal() {
		t.Fatalf("expected a fatal diagnostic")
	}
}

func TestPointerSigil(t *testing.T) {
	toks := tokenize(t, "**ptr = &(*ptr);")
	if toks[0].Kind != lexer.Pointer || toks[0].Lexeme != "**ptr" {
		t.Fatalf("want Pointer token **ptr, got %v", toks[0])
	}
	foundRefPointer := false
	for _, tok := range toks {
		if tok.Kind == lexer.Pointer && tok.Lexeme == "&(*ptr)" {
			foundRefPointer = true
		}
	}
	if !foundRefPointer {
		t.Fatalf("want a reference-to-pointer token &(*ptr), got %v", toks)
	}
}

func TestEveryTokenSpanMatchesLexeme(t *testing.T) {
	text := "var x:int = 3 + 4 * 5;"
	buf := source.New("t.space", []byte(text))
	toks, diags := lexer.New(buf).Tokenize()
	if diags.HasFatal() {
		t.Fatalf("unexpected diagnostics: %v", diags.All())
	}
	eofCount := 0
	for _, tok := range toks {
		if tok.Kind == lexer.EOF {
			eofCount++
			continue
		}
		if tok.Size != len(tok.Lexeme) {
			t.Errorf("token %v: size %d != len(lexeme) %d", tok, tok.Size, len(tok.Lexeme))
		}
	}
	if eofCount != 1 {
		t.Fatalf("want exactly one EOF token, got %d", eofCount)
	}
}

// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package lexer

import "fmt"

// Kind classifies a Token.
type Kind int

const (
	EOF Kind = iota
	Unknown

	Identifier
	Integer
	Float
	String
	CharArray
	Pointer

	// reserved words
	KwClass
	KwFunction
	KwVar
	KwConst
	KwIf
	KwElse
	KwWhile
	KwDo
	KwFor
	KwTry
	KwCatch
	KwCheck
	KwIs
	KwBreak
	KwContinue
	KwReturn
	KwNew
	KwThis
	KwGlobal
	KwPrivate
	KwSecure
	KwWith
	KwExtends
	KwInclude
	KwExport
	KwEnum
	KwAnd
	KwOr
	KwTrue
	KwFalse
	KwNull

	// operators and punctuation
	Plus
	Minus
	Star
	Slash
	Percent
	Inc
	Dec
	PlusEq
	MinusEq
	StarEq
	SlashEq
	Assign
	Eq
	NotEq
	Lt
	Gt
	LtEq
	GtEq
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Comma
	Semicolon
	Colon
	Dot
	Arrow
	FatArrow
	Question
	Hash
)

var kindNames = map[Kind]string{
	EOF:        "EOF",
	Unknown:    "Unknown",
	Identifier: "Identifier",
	Integer:    "Integer",
	Float:      "Float",
	String:     "String",
	CharArray:  "CharArray",
	Pointer:    "Pointer",
	KwClass:    "class",
	KwFunction: "function",
	KwVar:      "var",
	KwConst:    "const",
	KwIf:       "if",
	KwElse:     "else",
	KwWhile:    "while",
	KwDo:       "do",
	KwFor:      "for",
	KwTry:      "try",
	KwCatch:    "catch",
	KwCheck:    "check",
	KwIs:       "is",
	KwBreak:    "break",
	KwContinue: "continue",
	KwReturn:   "return",
	KwNew:      "new",
	KwThis:     "this",
	KwGlobal:   "global",
	KwPrivate:  "private",
	KwSecure:   "secure",
	KwWith:     "with",
	KwExtends:  "extends",
	KwInclude:  "include",
	KwExport:   "export",
	KwEnum:     "enum",
	KwAnd:      "and",
	KwOr:       "or",
	KwTrue:     "true",
	KwFalse:    "false",
	KwNull:     "null",
	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Percent:    "%",
	Inc:        "++",
	Dec:        "--",
	PlusEq:     "+=",
	MinusEq:    "-=",
	StarEq:     "*=",
	SlashEq:    "/=",
	Assign:     "=",
	Eq:         "==",
	NotEq:      "!=",
	Lt:         "<",
	Gt:         ">",
	LtEq:       "<=",
	GtEq:       ">=",
	LParen:     "(",
	RParen:     ")",
	LBrace:     "{",
	RBrace:     "}",
	LBracket:   "[",
	RBracket:   "]",
	Comma:      ",",
	Semicolon:  ";",
	Colon:      ":",
	Dot:        ".",
	Arrow:      "->",
	FatArrow:   "=>",
	Question:   "?",
	Hash:       "#",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps a reserved word's text to its Kind. Built once from
// kindNames's keyword entries would require a reverse lookup by value;
// spelling it out explicitly keeps the lexer's hot path a single map
// lookup.
var keywords = map[string]Kind{
	"class": KwClass, "function": KwFunction, "var": KwVar, "const": KwConst,
	"if": KwIf, "else": KwElse, "while": KwWhile, "do": KwDo, "for": KwFor,
	"try": KwTry, "catch": KwCatch, "check": KwCheck, "is": KwIs,
	"break": KwBreak, "continue": KwContinue, "return": KwReturn,
	"new": KwNew, "this": KwThis, "global": KwGlobal, "private": KwPrivate,
	"secure": KwSecure, "with": KwWith, "extends": KwExtends,
	"include": KwInclude, "export": KwExport, "enum": KwEnum,
	"and": KwAnd, "or": KwOr, "true": KwTrue, "false": KwFalse, "null": KwNull,
}

// Token is a single classified lexeme plus its source position. Lexeme
// is a copy of the source bytes it spans, so a Token stays valid
// independently of the buffer that produced it.
type Token struct {
	Kind   Kind
	Lexeme string
	Size   int
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) at %d:%d", t.Kind, t.Lexeme, t.Line, t.Column)
}

// IsKeyword reports whether k is one of the reserved words.
func (k Kind) IsKeyword() bool {
	return k >= KwClass && k <= KwNull
}

// IsModifier reports whether k is a visibility modifier keyword.
func (k Kind) IsModifier() bool {
	return k == KwGlobal || k == KwPrivate || k == KwSecure
}

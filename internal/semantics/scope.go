// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package semantics

import "github.com/spacelang/spacec/cerrs"

// ScopeKind classifies a Scope by the construct that introduced it
// (spec §3 "Scope Table").
type ScopeKind int

const (
	MainScope ScopeKind = iota
	ClassScope
	FunctionScope
	ConstructorScope
	IfScope
	ElseIfScope
	ElseScope
	WhileScope
	DoScope
	ForScope
	TryScope
	CatchScope
	CheckScope
	IsScope
	EnumScope
)

var scopeKindNames = [...]string{
	MainScope: "MAIN", ClassScope: "CLASS", FunctionScope: "FUNCTION",
	ConstructorScope: "CONSTRUCTOR", IfScope: "IF", ElseIfScope: "ELSE_IF", ElseScope: "ELSE",
	WhileScope: "WHILE", DoScope: "DO", ForScope: "FOR", TryScope: "TRY", CatchScope: "CATCH",
	CheckScope: "CHECK", IsScope: "IS", EnumScope: "ENUM",
}

func (k ScopeKind) String() string { return scopeKindNames[k] }

// Scope is a named container of declarations linked to a parent scope
// by a non-owning back-reference (spec §3 "Scope Table", DESIGN NOTES
// "Scope tree ownership"). The scope tree itself is owned top-down
// through each Entry.Ref; Parent exists solely to support upward name
// resolution walks and is never used to free anything.
type Scope struct {
	Kind    ScopeKind
	Name    string
	Parent  *Scope
	Symbols map[string]*Entry
	Params  []*Entry
	Line    int
	Column  int
}

// NewScope allocates an empty scope of the given kind, linked to
// parent (nil only for the root MAIN scope).
func NewScope(kind ScopeKind, name string, parent *Scope, line, col int) *Scope {
	return &Scope{
		Kind:    kind,
		Name:    name,
		Parent:  parent,
		Symbols: make(map[string]*Entry),
		Line:    line,
		Column:  col,
	}
}

// Define records e in s's symbol map. It fails with ErrAlreadyDefined
// if the name is already taken in this scope; constructors bypass this
// path entirely and are appended to Params instead (spec §4.3
// "Statement placement rules").
func (s *Scope) Define(e *Entry) error {
	if _, exists := s.Symbols[e.Name]; exists {
		return cerrs.ErrAlreadyDefined
	}
	s.Symbols[e.Name] = e
	return nil
}

// DefineConstructor appends a constructor entry to Params after
// checking for a strict-equality duplicate signature among existing
// constructors (spec §4.3, DESIGN NOTES "Constructor overloading").
func (s *Scope) DefineConstructor(e *Entry, sig []VarDec) error {
	for _, existing := range s.Params {
		if existing.Kind != ConstructorEntry {
			continue
		}
		existingSig := existing.Ref.paramSignature()
		if sameSignature(existingSig, sig) {
			return cerrs.ErrAlreadyDefined
		}
	}
	s.Params = append(s.Params, e)
	return nil
}

func (s *Scope) paramSignature() []VarDec {
	sig := make([]VarDec, len(s.Params))
	for i, p := range s.Params {
		sig[i] = p.Type
	}
	return sig
}

func sameSignature(a, b []VarDec) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Lookup searches s's symbol map and parameter list, then walks parent
// pointers up to MAIN (spec §4.3 "Name resolution"). It returns the
// entry and the scope that actually owns it.
func (s *Scope) Lookup(name string) (*Entry, *Scope, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if e, ok := cur.Symbols[name]; ok {
			return e, cur, true
		}
		for _, p := range cur.Params {
			if p.Name == name {
				return p, cur, true
			}
		}
	}
	return nil, nil, false
}

// LookupLocal searches only s's own symbol map and parameter list,
// without walking to the parent. Used to resolve the non-leftmost
// segments of a member/class access chain, which must resolve inside
// the previously resolved entry's child scope exclusively.
func (s *Scope) LookupLocal(name string) (*Entry, bool) {
	if e, ok := s.Symbols[name]; ok {
		return e, true
	}
	for _, p := range s.Params {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// EnclosingClass walks the parent chain and returns the nearest CLASS
// scope, or nil if s is not lexically inside one. Used by modifier
// enforcement to decide whether an access "originates from the same
// class" (spec §4.3 "Modifier enforcement").
func (s *Scope) EnclosingClass() *Scope {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.Kind == ClassScope {
			return cur
		}
	}
	return nil
}

// loopBridge reports whether kind is one of the scope kinds that a
// break/continue search is allowed to pass through without resolving
// (IF/ELSE*/TRY/CATCH bridge; spec §4.3 "Statement placement rules").
func loopBridge(kind ScopeKind) bool {
	switch kind {
	case IfScope, ElseIfScope, ElseScope, TryScope, CatchScope:
		return true
	default:
		return false
	}
}

// loopTarget reports whether kind is a scope that legitimizes an
// enclosed break/continue (FOR/WHILE/DO/IS; spec §4.3).
func loopTarget(kind ScopeKind) bool {
	switch kind {
	case ForScope, WhileScope, DoScope, IsScope:
		return true
	default:
		return false
	}
}

// InLoop reports whether a break/continue appearing directly in s is
// valid: s itself is a loop-ish scope, or s is reached by bridging
// through only IF/ELSE*/TRY/CATCH scopes from one.
func (s *Scope) InLoop() bool {
	for cur := s; cur != nil; cur = cur.Parent {
		if loopTarget(cur.Kind) {
			return true
		}
		if !loopBridge(cur.Kind) {
			return false
		}
	}
	return false
}

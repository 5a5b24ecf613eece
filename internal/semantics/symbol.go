// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package semantics

import "fmt"

// BaseType enumerates VarDec's base-type alphabet (spec §3 "VarDec").
type BaseType int

const (
	Integer BaseType = iota
	Double
	Float
	Short
	Long
	Char
	Boolean
	String
	Void
	Custom
	ClassRef
	ConstructorParam
	ExtClassOrInterface
	ExternalRet
	Null
	EFunctionCall
	ENonFunctionCall
)

var baseTypeNames = [...]string{
	Integer: "INTEGER", Double: "DOUBLE", Float: "FLOAT", Short: "SHORT", Long: "LONG",
	Char: "CHAR", Boolean: "BOOLEAN", String: "STRING", Void: "VOID", Custom: "CUSTOM",
	ClassRef: "CLASS_REF", ConstructorParam: "CONSTRUCTOR_PARAM",
	ExtClassOrInterface: "EXT_CLASS_OR_INTERFACE", ExternalRet: "EXTERNAL_RET",
	Null: "NULL", EFunctionCall: "E_FUNCTION_CALL", ENonFunctionCall: "E_NON_FUNCTION_CALL",
}

func (b BaseType) String() string {
	if int(b) >= 0 && int(b) < len(baseTypeNames) && baseTypeNames[b] != "" {
		return baseTypeNames[b]
	}
	return fmt.Sprintf("BaseType(%d)", int(b))
}

// builtinTypes maps a VAR_TYPE node's textual name to its base type.
// Anything absent from this table (and not "void") is CUSTOM — a
// reference to a class or enum resolved later by name.
var builtinTypes = map[string]BaseType{
	"int": Integer, "double": Double, "float": Float, "short": Short,
	"long": Long, "char": Char, "boolean": Boolean, "string": String,
}

// ResolveBuiltin returns the base type for a VAR_TYPE name, and
// whether it was one of the built-in scalar types (as opposed to a
// class/enum reference resolved as CUSTOM).
func ResolveBuiltin(name string) (BaseType, bool) {
	if name == "void" {
		return Void, true
	}
	bt, ok := builtinTypes[name]
	return bt, ok
}

// VarDec is the declared type of a value: base kind, array dimension,
// optional class name, constness (spec §3 "VarDec").
type VarDec struct {
	Base      BaseType
	Dimension int
	ClassName string
	Constant  bool
}

func (v VarDec) String() string {
	if v.Base == ClassRef && v.ClassName != "" {
		return fmt.Sprintf("%s(%q)[%d]", v.Base, v.ClassName, v.Dimension)
	}
	return fmt.Sprintf("%s[%d]", v.Base, v.Dimension)
}

// Equal is strict VarDec equality: used to detect duplicate
// constructor signatures at declaration time (spec §4.3 "Statement
// placement rules"). Dimension and class-name both matter, and no
// base-type substitutions are permitted.
func (v VarDec) Equal(o VarDec) bool {
	return v.Base == o.Base && v.Dimension == o.Dimension && v.ClassName == o.ClassName
}

// EqualNonStrict is the relaxed equality used for call-site argument
// checking and arithmetic operand checking (spec §4.3 "Type
// checking", DESIGN NOTES "Constructor overloading"):
//   - FLOAT and DOUBLE are interchangeable.
//   - CUSTOM on either side matches any base type of the same
//     dimension (the compiler defers to a later link stage to
//     confirm the class actually matches).
//   - EXTERNAL_RET on either side matches unconditionally — the real
//     type is only known once the include is resolved.
func (v VarDec) EqualNonStrict(o VarDec) bool {
	if v.Dimension != o.Dimension {
		return false
	}
	if v.Base == ExternalRet || o.Base == ExternalRet {
		return true
	}
	if v.Base == Custom || o.Base == Custom {
		return true
	}
	if isFloaty(v.Base) && isFloaty(o.Base) {
		return true
	}
	if v.Base != o.Base {
		return false
	}
	return v.Base != ClassRef || v.ClassName == o.ClassName
}

func isFloaty(b BaseType) bool { return b == Float || b == Double }

// Visibility is the declared access modifier of an entry (spec §3
// "Semantic Entry"). PGlobal is the implicit default when no modifier
// keyword is present.
type Visibility int

const (
	PGlobal Visibility = iota
	GlobalVisibility
	Private
	Secure
)

var visibilityNames = [...]string{
	PGlobal: "P_GLOBAL", GlobalVisibility: "GLOBAL", Private: "PRIVATE", Secure: "SECURE",
}

func (v Visibility) String() string { return visibilityNames[v] }

// VisibilityFromModifier maps a MODIFIER node's lexeme to a
// Visibility; an empty modifier (no keyword present) is P_GLOBAL.
func VisibilityFromModifier(mod string) Visibility {
	switch mod {
	case "global":
		return GlobalVisibility
	case "private":
		return Private
	case "secure":
		return Secure
	default:
		return PGlobal
	}
}

// EntryKind classifies what a Entry introduces, matching a subset of
// ScopeKind values that actually create entries (spec §3).
type EntryKind int

const (
	VariableEntry EntryKind = iota
	FunctionEntry
	ClassEntry
	ConstructorEntry
	EnumEntry
	EnumeratorEntry
	ExternalEntry
)

var entryKindNames = [...]string{
	VariableEntry: "VARIABLE", FunctionEntry: "FUNCTION", ClassEntry: "CLASS",
	ConstructorEntry: "CONSTRUCTOR", EnumEntry: "ENUM", EnumeratorEntry: "ENUMERATOR",
	ExternalEntry: "EXTERNAL",
}

func (k EntryKind) String() string { return entryKindNames[k] }

// Entry is a single named declaration recorded in a Scope's symbol map
// or parameter list (spec §3 "Semantic Entry").
type Entry struct {
	Name       string
	Type       VarDec
	Visibility Visibility
	Kind       EntryKind
	Ref        *Scope // non-nil iff Kind introduces a nested scope
	Owner      *Scope // scope the entry was declared directly within, for modifier checks
	Line       int
	Column     int
}

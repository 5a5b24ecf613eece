// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package semantics

import (
	"strconv"

	"github.com/spacelang/spacec/internal/ast"
	"github.com/spacelang/spacec/internal/diagnostics"
	"github.com/spacelang/spacec/internal/source"
)

// Result is everything semantic analysis produces: the root scope
// table, the diagnostics recorded along the way, and the ordered list
// of unresolved external references collected from "include" entries
// (spec §4.3 "External access queue").
type Result struct {
	Main        *Scope
	Diagnostics *diagnostics.Bag
	Externals   []string
}

// Analyzer walks an AST top-down from a synthetic MAIN scope,
// resolving names, checking types, and enforcing modifier and
// access-operator rules (spec §4.3).
type Analyzer struct {
	buf       *source.Buffer
	diags     diagnostics.Bag
	classes   map[string]*Scope
	externals []string
}

// Analyze runs semantic analysis over root, which must be the RUNNABLE
// node returned by parser.Parse. buf supplies diagnostic source text.
func Analyze(root *ast.Node, buf *source.Buffer) *Result {
	a := &Analyzer{buf: buf, classes: make(map[string]*Scope)}
	main := NewScope(MainScope, "main", nil, 1, 1)
	a.analyzeRunnable(root, main)
	return &Result{Main: main, Diagnostics: &a.diags, Externals: a.externals}
}

// ====== statement-list walking ======

func (a *Analyzer) analyzeRunnable(block *ast.Node, scope *Scope) {
	if block == nil {
		return
	}
	stmts := block.Details
	for i, stmt := range stmts {
		var prev, next *ast.Node
		if i > 0 {
			prev = stmts[i-1]
		}
		if i+1 < len(stmts) {
			next = stmts[i+1]
		}
		a.analyzeStatement(stmt, scope, prev, next)
	}
}

func (a *Analyzer) analyzeStatement(stmt *ast.Node, scope *Scope, prev, next *ast.Node) {
	if stmt == nil {
		return
	}
	switch stmt.Kind {
	case ast.Var, ast.Const, ast.ArrayVar, ast.ConditionalVar, ast.ClassInstanceVar:
		a.analyzeVarDecl(stmt, scope)
	case ast.Function:
		if scope.Kind != MainScope && scope.Kind != ClassScope {
			a.misplaced(stmt, "functions are only permitted in MAIN or CLASS scopes")
		}
		a.analyzeFunction(stmt, scope)
	case ast.Class:
		if scope.Kind != MainScope {
			a.misplaced(stmt, "class declarations are only permitted in MAIN")
		}
		a.analyzeClass(stmt, scope)
	case ast.Enum:
		if scope.Kind != MainScope {
			a.misplaced(stmt, "enum declarations are only permitted in MAIN")
		}
		a.analyzeEnum(stmt, scope)
	case ast.Include:
		if scope.Kind != MainScope {
			a.misplaced(stmt, "include is only permitted in MAIN")
		}
		path := stmt.Value
		if unq, err := strconv.Unquote(path); err == nil {
			path = unq
		}
		a.externals = append(a.externals, path)
	case ast.Export:
		// no further obligation: export marks a MAIN-level name as
		// visible to the (external) include resolver.
	case ast.ClassConstructor:
		if scope.Kind != ClassScope {
			a.misplaced(stmt, "constructors are only permitted in CLASS scopes")
			return
		}
		a.analyzeConstructor(stmt, scope)
	case ast.If:
		a.analyzeIf(stmt, scope)
	case ast.ElseIf, ast.Else:
		if prev == nil || (prev.Kind != ast.If && prev.Kind != ast.ElseIf) {
			a.misplaced(stmt, "'else'/'else if' must be preceded by 'if' or 'else if'")
		}
		a.analyzeElseBranch(stmt, scope)
	case ast.While:
		a.analyzeConditionalBlock(stmt, scope, WhileScope, "while")
	case ast.Do:
		a.analyzeConditionalBlock(stmt, scope, DoScope, "do")
	case ast.For:
		a.analyzeFor(stmt, scope)
	case ast.Check:
		a.analyzeCheck(stmt, scope)
	case ast.Try:
		if next == nil || next.Kind != ast.Catch {
			a.misplaced(stmt, "'try' must be immediately followed by 'catch'")
		}
		a.analyzeConditionalBlock(stmt, scope, TryScope, "try")
	case ast.Catch:
		if prev == nil || prev.Kind != ast.Try {
			a.misplaced(stmt, "'catch' must be immediately preceded by 'try'")
		}
		a.analyzeCatch(stmt, scope)
	case ast.Return:
		if stmt.Right != nil {
			a.typeOfExpr(stmt.Right, scope)
		}
	case ast.Break, ast.Continue:
		if !scope.InLoop() {
			a.misplaced(stmt, "'break'/'continue' is only valid inside a FOR/WHILE/DO/IS scope")
		}
	default:
		a.typeOfExpr(stmt, scope)
	}
}

// ====== declarations ======

func (a *Analyzer) analyzeVarDecl(stmt *ast.Node, scope *Scope) {
	if stmt == nil {
		return
	}
	vis := VisibilityFromModifier(stmt.ModifierValue())
	if vis != PGlobal && scope.Kind == MainScope {
		a.modifierViolation(stmt, "modifiers are forbidden on declarations directly in MAIN")
	}

	var vd VarDec
	switch stmt.Kind {
	case ast.Var, ast.Const:
		vd = a.varDecFromAnnotation(stmt.TypeAnnotation(), scope)
		vd.Constant = stmt.Kind == ast.Const
		if stmt.Right != nil {
			rhs := a.typeOfExpr(stmt.Right, scope)
			a.checkAssignable(stmt, vd, rhs)
		}
	case ast.ArrayVar:
		vd = a.varDecFromAnnotation(stmt.TypeAnnotation(), scope)
		a.analyzeArrayInitializer(stmt.Right, vd, scope)
	case ast.ConditionalVar:
		vd = a.varDecFromAnnotation(stmt.TypeAnnotation(), scope)
		if cond := stmt.Right; cond != nil {
			a.typeOfExpr(cond.Left, scope)
			if len(cond.Details) == 2 {
				a.checkAssignable(stmt, vd, a.typeOfExpr(cond.Details[0], scope))
				a.checkAssignable(stmt, vd, a.typeOfExpr(cond.Details[1], scope))
			}
		}
	case ast.ClassInstanceVar:
		vd = a.resolveConstructorCall(stmt.Right, scope)
	}

	entry := &Entry{Name: stmt.Value, Type: vd, Visibility: vis, Kind: VariableEntry, Owner: scope, Line: stmt.Line, Column: stmt.Column}
	if err := scope.Define(entry); err != nil {
		a.alreadyDefined(stmt, stmt.Value)
	}
}

func (a *Analyzer) analyzeArrayInitializer(rhs *ast.Node, declared VarDec, scope *Scope) {
	if rhs == nil {
		return
	}
	elem := declared
	elem.Dimension--
	switch rhs.Kind {
	case ast.ArrayCreation:
		for _, dim := range rhs.Details {
			if dim.Right == nil {
				continue
			}
			idxType := a.typeOfExpr(dim.Right, scope)
			if idxType.Base != Integer && idxType.Base != Custom && idxType.Base != ExternalRet {
				a.typeMismatch(dim, VarDec{Base: Integer}, idxType)
			}
		}
	case ast.ArrayAssignment:
		if rhs.Right != nil {
			a.typeOfExpr(rhs.Right, scope)
			return
		}
		for _, el := range rhs.Details {
			elType := a.typeOfExpr(el, scope)
			if !elem.EqualNonStrict(elType) {
				a.typeMismatch(el, elem, elType)
			}
		}
	}
}

func (a *Analyzer) analyzeFunction(stmt *ast.Node, scope *Scope) {
	vis := VisibilityFromModifier(stmt.ModifierValue())
	if vis != PGlobal && scope.Kind == MainScope {
		a.modifierViolation(stmt, "modifiers are forbidden on declarations directly in MAIN")
	}

	retType := VarDec{Base: Void}
	params := stmt.Details
	if len(params) > 0 && params[0] != nil && params[0].Kind == ast.VarType {
		retType = a.varDecFromAnnotation(params[0], scope)
		params = params[1:]
	}

	fnScope := NewScope(FunctionScope, stmt.Value, scope, stmt.Line, stmt.Column)
	for _, p := range params {
		ptype := a.varDecFromAnnotation(p.TypeAnnotation(), scope)
		fnScope.Params = append(fnScope.Params, &Entry{Name: p.Value, Type: ptype, Kind: VariableEntry, Owner: fnScope, Line: p.Line, Column: p.Column})
	}

	entry := &Entry{Name: stmt.Value, Type: retType, Visibility: vis, Kind: FunctionEntry, Ref: fnScope, Owner: scope, Line: stmt.Line, Column: stmt.Column}
	if err := scope.Define(entry); err != nil {
		a.alreadyDefined(stmt, stmt.Value)
	}
	a.analyzeRunnable(stmt.Right, fnScope)
}

func (a *Analyzer) analyzeClass(stmt *ast.Node, scope *Scope) {
	vis := VisibilityFromModifier(stmt.ModifierValue())
	classScope := NewScope(ClassScope, stmt.Value, scope, stmt.Line, stmt.Column)
	entry := &Entry{Name: stmt.Value, Type: VarDec{Base: ClassRef, ClassName: stmt.Value}, Visibility: vis, Kind: ClassEntry, Ref: classScope, Owner: scope, Line: stmt.Line, Column: stmt.Column}
	if err := scope.Define(entry); err != nil {
		a.alreadyDefined(stmt, stmt.Value)
	}
	a.classes[stmt.Value] = classScope

	for _, d := range stmt.Details {
		if d.Kind == ast.Inheritance {
			if _, ok := a.classes[d.Value]; !ok {
				a.notDefined(d, d.Value)
			}
		}
	}
	a.analyzeRunnable(stmt.Right, classScope)
}

func (a *Analyzer) analyzeConstructor(stmt *ast.Node, classScope *Scope) {
	ctorScope := NewScope(ConstructorScope, "constructor", classScope, stmt.Line, stmt.Column)
	sig := make([]VarDec, 0, len(stmt.Details))
	for _, p := range stmt.Details {
		ptype := a.varDecFromAnnotation(p.TypeAnnotation(), classScope)
		ctorScope.Params = append(ctorScope.Params, &Entry{Name: p.Value, Type: ptype, Kind: VariableEntry, Owner: ctorScope, Line: p.Line, Column: p.Column})
		sig = append(sig, ptype)
	}
	entry := &Entry{Name: "constructor", Kind: ConstructorEntry, Ref: ctorScope, Owner: classScope, Line: stmt.Line, Column: stmt.Column}
	if err := classScope.DefineConstructor(entry, sig); err != nil {
		a.alreadyDefined(stmt, "constructor")
	}
	a.analyzeRunnable(stmt.Right, ctorScope)
}

func (a *Analyzer) analyzeEnum(stmt *ast.Node, scope *Scope) {
	enumScope := NewScope(EnumScope, stmt.Value, scope, stmt.Line, stmt.Column)
	entry := &Entry{Name: stmt.Value, Type: VarDec{Base: Custom, ClassName: stmt.Value}, Kind: EnumEntry, Ref: enumScope, Owner: scope, Line: stmt.Line, Column: stmt.Column}
	if err := scope.Define(entry); err != nil {
		a.alreadyDefined(stmt, stmt.Value)
	}
	for _, enumr := range stmt.Details {
		eentry := &Entry{Name: enumr.Value, Type: VarDec{Base: Integer}, Kind: EnumeratorEntry, Owner: enumScope, Line: enumr.Line, Column: enumr.Column}
		if err := enumScope.Define(eentry); err != nil {
			a.alreadyDefined(enumr, enumr.Value)
		}
	}
}

// ====== control flow ======

func (a *Analyzer) analyzeIf(stmt *ast.Node, scope *Scope) {
	a.typeOfExpr(stmt.Left, scope)
	ifScope := NewScope(IfScope, "if", scope, stmt.Line, stmt.Column)
	a.analyzeRunnable(stmt.Right, ifScope)
}

func (a *Analyzer) analyzeElseBranch(stmt *ast.Node, scope *Scope) {
	kind := ElseScope
	if stmt.Kind == ast.ElseIf {
		kind = ElseIfScope
		a.typeOfExpr(stmt.Left, scope)
	}
	branchScope := NewScope(kind, "else", scope, stmt.Line, stmt.Column)
	a.analyzeRunnable(stmt.Right, branchScope)
}

func (a *Analyzer) analyzeConditionalBlock(stmt *ast.Node, scope *Scope, kind ScopeKind, name string) {
	if stmt.Left != nil {
		a.typeOfExpr(stmt.Left, scope)
	}
	blockScope := NewScope(kind, name, scope, stmt.Line, stmt.Column)
	a.analyzeRunnable(stmt.Right, blockScope)
}

func (a *Analyzer) analyzeFor(stmt *ast.Node, scope *Scope) {
	forScope := NewScope(ForScope, "for", scope, stmt.Line, stmt.Column)
	a.analyzeVarDecl(stmt.Left, forScope)
	if len(stmt.Details) > 0 && stmt.Details[0] != nil {
		a.typeOfExpr(stmt.Details[0], forScope)
	}
	if len(stmt.Details) > 1 && stmt.Details[1] != nil {
		a.typeOfExpr(stmt.Details[1], forScope)
	}
	a.analyzeRunnable(stmt.Right, forScope)
}

func (a *Analyzer) analyzeCheck(stmt *ast.Node, scope *Scope) {
	discType := a.typeOfExpr(stmt.Left, scope)
	checkScope := NewScope(CheckScope, "check", scope, stmt.Line, stmt.Column)
	if stmt.Right == nil {
		return
	}
	for _, isNode := range stmt.Right.Details {
		a.analyzeIs(isNode, checkScope, discType)
	}
}

func (a *Analyzer) analyzeIs(stmt *ast.Node, checkScope *Scope, discType VarDec) {
	valType := a.typeOfExpr(stmt.Left, checkScope)
	if !discType.EqualNonStrict(valType) {
		a.typeMismatch(stmt, discType, valType)
	}
	isScope := NewScope(IsScope, "is", checkScope, stmt.Line, stmt.Column)
	a.analyzeRunnable(stmt.Right, isScope)
}

func (a *Analyzer) analyzeCatch(stmt *ast.Node, scope *Scope) {
	catchScope := NewScope(CatchScope, "catch", scope, stmt.Line, stmt.Column)
	if param := stmt.Left; param != nil {
		ptype := a.varDecFromAnnotation(param.TypeAnnotation(), scope)
		catchScope.Symbols[param.Value] = &Entry{Name: param.Value, Type: ptype, Kind: VariableEntry, Owner: catchScope, Line: param.Line, Column: param.Column}
	}
	a.analyzeRunnable(stmt.Right, catchScope)
}

// ====== type checking / name resolution ======

func (a *Analyzer) varDecFromAnnotation(typ *ast.Node, scope *Scope) VarDec {
	if typ == nil {
		return VarDec{Base: Custom}
	}
	dim := varTypeDimension(typ)
	if bt, ok := ResolveBuiltin(typ.Value); ok {
		return VarDec{Base: bt, Dimension: dim}
	}
	if entry, _, ok := scope.Lookup(typ.Value); ok && entry.Kind == ClassEntry {
		return VarDec{Base: ClassRef, ClassName: typ.Value, Dimension: dim}
	}
	return VarDec{Base: Custom, ClassName: typ.Value, Dimension: dim}
}

func varTypeDimension(typ *ast.Node) int {
	if typ == nil || typ.Left == nil || typ.Left.Kind != ast.VarDim {
		return 0
	}
	dims, err := strconv.Atoi(typ.Left.Value)
	if err != nil {
		return 0
	}
	return dims
}

func (a *Analyzer) checkAssignable(n *ast.Node, declared, actual VarDec) {
	if !declared.EqualNonStrict(actual) {
		a.typeMismatch(n, declared, actual)
	}
}

// typeOfExpr computes the VarDec of an expression subtree, resolving
// names and recording diagnostics along the way (spec §4.3 "Name
// resolution" and "Type checking").
func (a *Analyzer) typeOfExpr(n *ast.Node, scope *Scope) VarDec {
	if n == nil {
		return VarDec{Base: Void}
	}
	switch n.Kind {
	case ast.Number:
		return VarDec{Base: Integer}
	case ast.Float:
		return VarDec{Base: Float}
	case ast.String:
		return VarDec{Base: String}
	case ast.CharArray:
		return VarDec{Base: Char, Dimension: 1}
	case ast.Bool:
		return VarDec{Base: Boolean}
	case ast.Null:
		return VarDec{Base: Null}
	case ast.This:
		if cls := scope.EnclosingClass(); cls != nil {
			return VarDec{Base: ClassRef, ClassName: cls.Name}
		}
		return VarDec{Base: Custom}
	case ast.Iden:
		return a.resolveIdenAccess(n, scope)
	case ast.FunctionCall:
		vd, _, _, _ := a.resolveSegment(n, scope, false, scope)
		return vd
	case ast.MemClassAcc:
		return a.resolveChain(n, scope)
	case ast.Plus, ast.Minus, ast.Multiply, ast.Divide, ast.Modulo:
		lt := a.typeOfExpr(n.Left, scope)
		rt := a.typeOfExpr(n.Right, scope)
		if !lt.EqualNonStrict(rt) {
			a.typeMismatch(n, lt, rt)
		}
		if lt.Base == Custom {
			return rt
		}
		return lt
	case ast.CmpEq, ast.CmpNotEq, ast.CmpLt, ast.CmpGt, ast.CmpLe, ast.CmpGe:
		lt := a.typeOfExpr(n.Left, scope)
		rt := a.typeOfExpr(n.Right, scope)
		if !lt.EqualNonStrict(rt) {
			a.typeMismatch(n, lt, rt)
		}
		return VarDec{Base: Boolean}
	case ast.And, ast.Or:
		a.typeOfExpr(n.Left, scope)
		a.typeOfExpr(n.Right, scope)
		return VarDec{Base: Boolean}
	case ast.Assign:
		lt := a.typeOfExpr(n.Left, scope)
		rt := a.typeOfExpr(n.Right, scope)
		a.checkAssignable(n, lt, rt)
		return lt
	case ast.SimpleIncDecAss:
		lt := a.typeOfExpr(n.Left, scope)
		if n.Right != nil {
			rt := a.typeOfExpr(n.Right, scope)
			a.checkAssignable(n, lt, rt)
		}
		return lt
	case ast.ConditionalAssignment:
		a.typeOfExpr(n.Left, scope)
		if len(n.Details) != 2 {
			return VarDec{Base: Custom}
		}
		t1 := a.typeOfExpr(n.Details[0], scope)
		t2 := a.typeOfExpr(n.Details[1], scope)
		if !t1.EqualNonStrict(t2) {
			a.typeMismatch(n, t1, t2)
		}
		return t1
	case ast.ClassInstanceVar:
		return a.resolveConstructorCall(n.Right, scope)
	case ast.VarType:
		return a.typeOfExpr(n.Right, scope)
	default:
		return VarDec{Base: Custom}
	}
}

func (a *Analyzer) resolveIdenAccess(n *ast.Node, scope *Scope) VarDec {
	vd, _, _, _ := a.resolveSegment(n, scope, false, scope)
	return vd
}

// resolveSegment resolves one link of an access chain: an identifier
// or function call, with any attached array access. lookupScope is
// where the name is searched; localOnly restricts that search to
// lookupScope itself (for non-leftmost chain segments), vs. walking
// the full parent chain (for the leftmost segment). callerScope is
// always the scope the overall expression appears in, used for
// modifier checks and evaluating call arguments.
func (a *Analyzer) resolveSegment(seg *ast.Node, lookupScope *Scope, localOnly bool, callerScope *Scope) (VarDec, *Entry, *Scope, bool) {
	var entry *Entry
	var ok bool
	if localOnly {
		entry, ok = lookupScope.LookupLocal(seg.Value)
	} else {
		entry, _, ok = lookupScope.Lookup(seg.Value)
	}
	if !ok {
		a.notDefined(seg, seg.Value)
		return VarDec{Base: Custom}, nil, nil, false
	}
	if entry.Kind == ExternalEntry {
		return VarDec{Base: ExternalRet}, entry, nil, true
	}
	a.checkModifier(seg, entry, callerScope)

	vd := entry.Type
	if seg.Kind == ast.FunctionCall && entry.Kind == FunctionEntry {
		a.checkCallArguments(seg, entry, callerScope)
	}
	if seg.Left != nil {
		vd = a.resolveArrayAccess(seg.Left, vd, callerScope)
	}

	nextScope := entry.Ref
	if nextScope == nil && vd.Base == ClassRef {
		nextScope = a.classes[vd.ClassName]
	}
	return vd, entry, nextScope, false
}

// resolveChain walks a MEM_CLASS_ACC spine left to right, checking
// access-operator correctness at each link (spec §4.3 "Access-operator
// correctness") and short-circuiting once an EXTERNAL entry is hit.
func (a *Analyzer) resolveChain(n *ast.Node, scope *Scope) VarDec {
	segs, ops := flattenChain(n)
	vd, entry, nextScope, external := a.resolveSegment(segs[0], scope, false, scope)
	for i := 1; i < len(segs); i++ {
		if external {
			vd = VarDec{Base: ExternalRet}
			continue
		}
		leftIsClassScoped := entry != nil && (entry.Kind == ClassEntry || vd.Base == ClassRef)
		leftIsEnumScoped := entry != nil && entry.Kind == EnumEntry
		switch ops[i-1] {
		case "->":
			if !leftIsClassScoped {
				a.wrongAccessor(segs[i], "'->' requires a class-scoped left operand")
			}
		case ".":
			if leftIsClassScoped && !leftIsEnumScoped {
				a.wrongAccessor(segs[i], "'.' requires a non-class member")
			}
		}
		if nextScope == nil {
			a.notDefined(segs[i], segs[i].Value)
			vd, entry, nextScope = VarDec{Base: Custom}, nil, nil
			continue
		}
		vd, entry, nextScope, external = a.resolveSegment(segs[i], nextScope, true, scope)
	}
	return vd
}

// flattenChain unwinds the left-associative MEM_CLASS_ACC spine built
// by the parser into an ordered segment list and the operator
// preceding each non-leading segment.
func flattenChain(n *ast.Node) ([]*ast.Node, []string) {
	if n.Kind != ast.MemClassAcc {
		return []*ast.Node{n}, nil
	}
	segs, ops := flattenChain(n.Left)
	segs = append(segs, n.Right)
	ops = append(ops, n.Value)
	return segs, ops
}

func (a *Analyzer) resolveArrayAccess(chain *ast.Node, base VarDec, scope *Scope) VarDec {
	dim := base.Dimension
	for cur := chain; cur != nil; cur = cur.Right {
		if cur.Left != nil {
			idxType := a.typeOfExpr(cur.Left, scope)
			if idxType.Base != Integer && idxType.Base != Custom && idxType.Base != ExternalRet {
				a.typeMismatch(cur, VarDec{Base: Integer}, idxType)
			}
		}
		dim--
		if dim < 0 {
			a.noSuchArrayDim(cur, base)
			break
		}
	}
	result := base
	if dim < 0 {
		dim = 0
	}
	result.Dimension = dim
	return result
}

func (a *Analyzer) resolveConstructorCall(path *ast.Node, scope *Scope) VarDec {
	if path == nil {
		return VarDec{Base: Custom}
	}
	segs, _ := flattenChain(path)
	last := segs[len(segs)-1]
	className := last.Value

	classScope, ok := a.classes[className]
	if !ok {
		a.notDefined(last, className)
		return VarDec{Base: ClassRef, ClassName: className}
	}

	args := last.Details
	matched := len(classScope.Params) == 0 && len(args) == 0
	for _, ctor := range classScope.Params {
		if ctor.Kind != ConstructorEntry || len(ctor.Ref.Params) != len(args) {
			continue
		}
		allMatch := true
		for i, p := range ctor.Ref.Params {
			if !p.Type.EqualNonStrict(a.typeOfExpr(args[i], scope)) {
				allMatch = false
				break
			}
		}
		if allMatch {
			matched = true
			break
		}
	}
	if !matched {
		a.wrongArgument(last, "no constructor of %q matches the given arguments", className)
	}
	return VarDec{Base: ClassRef, ClassName: className}
}

func (a *Analyzer) checkCallArguments(call *ast.Node, entry *Entry, callerScope *Scope) {
	params := entry.Ref.Params
	args := call.Details
	if len(params) != len(args) {
		a.wrongArgument(call, "%q expects %d argument(s), got %d", entry.Name, len(params), len(args))
		return
	}
	for i, arg := range args {
		argType := a.typeOfExpr(arg, callerScope)
		if !params[i].Type.EqualNonStrict(argType) {
			a.typeMismatch(arg, params[i].Type, argType)
			return
		}
	}
}

// checkModifier enforces spec §4.3 "Modifier enforcement": PRIVATE and
// SECURE entries are only reachable from inside their own class.
func (a *Analyzer) checkModifier(seg *ast.Node, entry *Entry, callerScope *Scope) {
	if entry.Visibility != Private && entry.Visibility != Secure {
		return
	}
	var ownerClass *Scope
	if entry.Owner != nil {
		ownerClass = entry.Owner.EnclosingClass()
	}
	callerClass := callerScope.EnclosingClass()
	if ownerClass == nil || callerClass == nil || ownerClass != callerClass {
		a.modifierViolation(seg, entry.Name)
	}
}

// ====== diagnostic helpers ======

func (a *Analyzer) notDefined(n *ast.Node, name string) {
	a.diags.Errorf(diagnostics.NotDefinedException, a.buf.Name(), n.Line, n.Column, "%q is not defined", name)
}

func (a *Analyzer) alreadyDefined(n *ast.Node, name string) {
	a.diags.Errorf(diagnostics.AlreadyDefinedException, a.buf.Name(), n.Line, n.Column, "%q is already defined in this scope", name)
}

func (a *Analyzer) typeMismatch(n *ast.Node, expected, got VarDec) {
	a.diags.Errorf(diagnostics.TypeMismatchException, a.buf.Name(), n.Line, n.Column, "expected %s, got %s", expected, got)
}

func (a *Analyzer) misplaced(n *ast.Node, msg string) {
	a.diags.Errorf(diagnostics.StatementMisplacement, a.buf.Name(), n.Line, n.Column, "%s", msg)
}

func (a *Analyzer) wrongAccessor(n *ast.Node, msg string) {
	a.diags.Errorf(diagnostics.WrongAccessorException, a.buf.Name(), n.Line, n.Column, "%s", msg)
}

func (a *Analyzer) wrongArgument(n *ast.Node, format string, args ...any) {
	a.diags.Errorf(diagnostics.WrongArgumentException, a.buf.Name(), n.Line, n.Column, format, args...)
}

func (a *Analyzer) modifierViolation(n *ast.Node, name string) {
	a.diags.Errorf(diagnostics.ModifierException, a.buf.Name(), n.Line, n.Column, "%q is not accessible here", name)
}

func (a *Analyzer) noSuchArrayDim(n *ast.Node, base VarDec) {
	a.diags.Errorf(diagnostics.NoSuchArrayDimException, a.buf.Name(), n.Line, n.Column, "array of dimension %d has no further dimension to index", base.Dimension)
}

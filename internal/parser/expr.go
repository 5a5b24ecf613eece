// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parser

import (
	"github.com/spacelang/spacec/internal/ast"
	"github.com/spacelang/spacec/internal/lexer"
)

// ====== arithmetic precedence (spec §4.2 "Expressions") ======
//
// Precedence climbing, recursing directly into the higher-precedence
// sub-term instead of the source's ad-hoc "waitingToEndPlusOrMinus"
// state (DESIGN NOTES, "Operator precedence").

// parseExpression parses an additive-precedence expression: the entry
// point for contexts that are never a full chained condition (array
// indices and creation dimensions, array-literal elements, check
// discriminators, and is-values).
func (p *Parser) parseExpression() *ast.Node {
	return p.parseAdditive()
}

func (p *Parser) parseAdditive() *ast.Node {
	left := p.parseMultiplicative()
	for p.atAny(lexer.Plus, lexer.Minus) {
		tok := p.advance()
		kind := ast.Plus
		if tok.Kind == lexer.Minus {
			kind = ast.Minus
		}
		right := p.parseMultiplicative()
		left = ast.NewBinary(kind, left, right, tok.Line, tok.Column)
	}
	return left
}

func (p *Parser) parseMultiplicative() *ast.Node {
	left := p.parsePrimary()
	for p.atAny(lexer.Star, lexer.Slash, lexer.Percent) {
		tok := p.advance()
		var kind ast.Kind
		switch tok.Kind {
		case lexer.Star:
			kind = ast.Multiply
		case lexer.Slash:
			kind = ast.Divide
		default:
			kind = ast.Modulo
		}
		right := p.parsePrimary()
		left = ast.NewBinary(kind, left, right, tok.Line, tok.Column)
	}
	return left
}

// ====== chained conditions (spec §4.2 "Conditions and conditional assignment") ======

var comparisonKinds = map[lexer.Kind]ast.Kind{
	lexer.Eq: ast.CmpEq, lexer.NotEq: ast.CmpNotEq,
	lexer.Lt: ast.CmpLt, lexer.Gt: ast.CmpGt,
	lexer.LtEq: ast.CmpLe, lexer.GtEq: ast.CmpGe,
}

// parseChainedCondition parses comparisons combined left-associatively
// with "and"/"or"; parenthesized groups recurse through parsePrimary's
// paren case back into this same grammar.
func (p *Parser) parseChainedCondition() *ast.Node {
	return p.parseOr()
}

// parseChainedConditionOrExpr is the entry point for any
// right-hand-side value that might be plain arithmetic, a chained
// condition, or (per DESIGN NOTES) a lone boolean literal standing in
// for a full condition. All three fall out of the same grammar because
// parseOr bottoms out at parseAdditive when no "and"/"or"/comparison
// operator is present.
func (p *Parser) parseChainedConditionOrExpr() *ast.Node {
	return p.parseOr()
}

func (p *Parser) parseOr() *ast.Node {
	left := p.parseAnd()
	for p.at(lexer.KwOr) {
		tok := p.advance()
		right := p.parseAnd()
		left = ast.NewBinary(ast.Or, left, right, tok.Line, tok.Column)
	}
	return left
}

func (p *Parser) parseAnd() *ast.Node {
	left := p.parseComparison()
	for p.at(lexer.KwAnd) {
		tok := p.advance()
		right := p.parseComparison()
		left = ast.NewBinary(ast.And, left, right, tok.Line, tok.Column)
	}
	return left
}

func (p *Parser) parseComparison() *ast.Node {
	left := p.parseAdditive()
	if kind, ok := comparisonKinds[p.cur().Kind]; ok {
		tok := p.advance()
		right := p.parseAdditive()
		return ast.NewBinary(kind, left, right, tok.Line, tok.Column)
	}
	return left
}

// finishConditionalAssignment builds the ternary "cond ? a : b" node
// given the already-parsed condition. Both arms may themselves be
// conditional assignments (right-nested), per spec §4.2.
func (p *Parser) finishConditionalAssignment(cond *ast.Node) *ast.Node {
	qTok, ok := p.expect(lexer.Question)
	if !ok {
		return nil
	}
	trueVal := p.parseExpressionOrConditional()
	p.expect(lexer.Colon)
	falseVal := p.parseExpressionOrConditional()
	if p.fatal {
		return nil
	}
	n := ast.New(ast.ConditionalAssignment, qTok.Line, qTok.Column)
	n.Left = cond
	n.Details = []*ast.Node{trueVal, falseVal}
	return n
}

// ====== primaries, access chains, array access, calls ======

func (p *Parser) parsePrimary() *ast.Node {
	tok := p.cur()
	switch tok.Kind {
	case lexer.Integer:
		p.advance()
		return ast.NewLeaf(ast.Number, tok.Lexeme, tok.Line, tok.Column)
	case lexer.Float:
		p.advance()
		return ast.NewLeaf(ast.Float, tok.Lexeme, tok.Line, tok.Column)
	case lexer.String:
		p.advance()
		return ast.NewLeaf(ast.String, tok.Lexeme, tok.Line, tok.Column)
	case lexer.CharArray:
		p.advance()
		return ast.NewLeaf(ast.CharArray, tok.Lexeme, tok.Line, tok.Column)
	case lexer.KwTrue, lexer.KwFalse:
		p.advance()
		return ast.NewLeaf(ast.Bool, tok.Lexeme, tok.Line, tok.Column)
	case lexer.KwNull:
		p.advance()
		return ast.New(ast.Null, tok.Line, tok.Column)
	case lexer.Pointer:
		p.advance()
		return ast.NewLeaf(ast.Iden, tok.Lexeme, tok.Line, tok.Column)
	case lexer.LParen:
		p.advance()
		inner := p.parseOr()
		p.expect(lexer.RParen)
		return inner
	case lexer.KwNew:
		return p.parseInlineNew()
	case lexer.Identifier, lexer.KwThis:
		return p.parseAccessChain()
	default:
		p.mismatch("expression")
		return nil
	}
}

// parseInlineNew parses a "new ClassPath(args)" instantiation used as
// an expression value (as opposed to a CLASS_INSTANCE_VAR
// declaration). It reuses the CLASS_INSTANCE_VAR kind; Right carries
// the constructor access path.
func (p *Parser) parseInlineNew() *ast.Node {
	tok := p.advance() // 'new'
	path := p.parseAccessChain()
	if p.fatal {
		return nil
	}
	n := ast.New(ast.ClassInstanceVar, tok.Line, tok.Column)
	n.Right = path
	return n
}

// parseAccessChain parses a dotted ('.') or arrowed ('->') chain of
// identifiers and function calls, rewriting chains longer than one
// segment into a spine of MEM_CLASS_ACC nodes (spec §4.2 "Member/class
// access"). A trailing ++/-- wraps the whole chain.
func (p *Parser) parseAccessChain() *ast.Node {
	node := p.parseAccessSegment()
	if p.fatal {
		return nil
	}
	for p.at(lexer.Dot) || p.at(lexer.Arrow) {
		opTok := p.advance()
		next := p.parseAccessSegment()
		if p.fatal {
			return nil
		}
		combined := ast.NewBinary(ast.MemClassAcc, node, next, opTok.Line, opTok.Column)
		combined.Value = opTok.Lexeme
		node = combined
	}
	if p.atAny(lexer.Inc, lexer.Dec) {
		tok := p.advance()
		wrapped := ast.New(ast.SimpleIncDecAss, tok.Line, tok.Column)
		wrapped.Value = tok.Lexeme
		wrapped.Left = node
		node = wrapped
	}
	return node
}

// parseAccessSegment parses one element of an access chain: an
// identifier or "this", optionally called, optionally indexed.
func (p *Parser) parseAccessSegment() *ast.Node {
	tok := p.cur()
	var base *ast.Node
	if tok.Kind == lexer.KwThis {
		p.advance()
		base = ast.New(ast.This, tok.Line, tok.Column)
	} else {
		nameTok, ok := p.expect(lexer.Identifier)
		if !ok {
			return nil
		}
		base = ast.NewLeaf(ast.Iden, nameTok.Lexeme, nameTok.Line, nameTok.Column)
	}
	if p.at(lexer.LParen) {
		base = p.finishFunctionCall(base)
	}
	if p.at(lexer.LBracket) {
		base.Left = p.finishArrayAccess()
	}
	return base
}

// finishFunctionCall parses "( args )" given the already-parsed callee
// name node.
func (p *Parser) finishFunctionCall(nameNode *ast.Node) *ast.Node {
	p.advance() // '('
	call := ast.New(ast.FunctionCall, nameNode.Line, nameNode.Column)
	call.Value = nameNode.Value
	for !p.fatal && !p.at(lexer.RParen) {
		call.Details = append(call.Details, p.parseCallArgument())
		if p.at(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lexer.RParen)
	return call
}

// parseCallArgument parses one comma-separated argument, optionally
// followed by a ": Type" annotation.
func (p *Parser) parseCallArgument() *ast.Node {
	expr := p.parseExpressionOrConditional()
	if !p.at(lexer.Colon) {
		return expr
	}
	p.advance()
	typ := p.parseVarType()
	wrapper := ast.New(ast.VarType, typ.Line, typ.Column)
	wrapper.Value = typ.Value
	wrapper.Left = typ.Left
	wrapper.Right = expr
	return wrapper
}

// finishArrayAccess parses a run of "[expr]" groups, nesting them
// right-to-left: each ARRAY_ACCESS node holds its index expression on
// Left and the next access on Right.
func (p *Parser) finishArrayAccess() *ast.Node {
	var head, tail *ast.Node
	for p.at(lexer.LBracket) {
		tok := p.advance()
		node := ast.New(ast.ArrayAccess, tok.Line, tok.Column)
		if !p.at(lexer.RBracket) {
			node.Left = p.parseExpression()
		}
		p.expect(lexer.RBracket)
		if p.fatal {
			return nil
		}
		if head == nil {
			head = node
		} else {
			tail.Right = node
		}
		tail = node
	}
	return head
}

// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parser

import (
	"strconv"

	"github.com/spacelang/spacec/internal/ast"
	"github.com/spacelang/spacec/internal/lexer"
)

// parseVarDecl parses a variable declaration, classifying it by
// lookahead into NORMAL, ARRAY, CONDITIONAL, or INSTANCE before
// committing (spec §4.2 "Declarations"). mod is the already-consumed
// modifier node, or nil.
func (p *Parser) parseVarDecl(mod *ast.Node) *ast.Node {
	kwTok := p.advance() // 'var' or 'const'
	kind := ast.Var
	if kwTok.Kind == lexer.KwConst {
		kind = ast.Const
	}
	nameTok, ok := p.expect(lexer.Identifier)
	if !ok {
		return nil
	}

	if p.at(lexer.Colon) {
		return p.finishTypedVarDecl(kind, mod, kwTok, nameTok)
	}
	if p.at(lexer.Assign) {
		return p.finishInstanceVarDecl(mod, kwTok, nameTok)
	}
	p.mismatch("':' or '='")
	return nil
}

func (p *Parser) finishTypedVarDecl(kind ast.Kind, mod *ast.Node, kwTok, nameTok lexer.Token) *ast.Node {
	p.advance() // ':'
	typ := p.parseVarType()
	n := &ast.Node{Kind: kind, Value: nameTok.Lexeme, Line: kwTok.Line, Column: kwTok.Column, Left: mod}
	n.Details = []*ast.Node{typ}
	if !p.at(lexer.Assign) {
		p.expect(lexer.Semicolon)
		return n
	}
	p.advance() // '='
	if varTypeDimension(typ) > 0 {
		n.Kind = ast.ArrayVar
		n.Right = p.parseArrayInitializer()
		p.expect(lexer.Semicolon)
		return n
	}
	rhs := p.parseChainedConditionOrExpr()
	if p.at(lexer.Question) {
		n.Kind = ast.ConditionalVar
		n.Right = p.finishConditionalAssignment(rhs)
	} else {
		n.Right = rhs
	}
	p.expect(lexer.Semicolon)
	return n
}

func (p *Parser) finishInstanceVarDecl(mod *ast.Node, kwTok, nameTok lexer.Token) *ast.Node {
	p.advance() // '='
	if _, ok := p.expect(lexer.KwNew); !ok {
		return nil
	}
	path := p.parseAccessChain()
	p.expect(lexer.Semicolon)
	if p.fatal {
		return nil
	}
	n := &ast.Node{Kind: ast.ClassInstanceVar, Value: nameTok.Lexeme, Line: kwTok.Line, Column: kwTok.Column, Left: mod, Right: path}
	return n
}

// parseArrayInitializer parses either an array creation ("new
// Type[expr]...") or a bracketed array literal assignment.
func (p *Parser) parseArrayInitializer() *ast.Node {
	if p.at(lexer.KwNew) {
		tok := p.advance()
		elemTok, ok := p.expect(lexer.Identifier)
		if !ok {
			return nil
		}
		n := ast.New(ast.ArrayCreation, tok.Line, tok.Column)
		n.Value = elemTok.Lexeme
		for p.at(lexer.LBracket) {
			p.advance()
			dim := ast.New(ast.ArrayDim, p.cur().Line, p.cur().Column)
			if !p.at(lexer.RBracket) {
				dim.Right = p.parseExpression()
			}
			p.expect(lexer.RBracket)
			n.Details = append(n.Details, dim)
		}
		return n
	}
	tok := p.cur()
	n := ast.New(ast.ArrayAssignment, tok.Line, tok.Column)
	if p.at(lexer.LBrace) {
		p.advance()
		for !p.fatal && !p.at(lexer.RBrace) {
			n.Details = append(n.Details, p.parseExpression())
			if p.at(lexer.Comma) {
				p.advance()
			} else {
				break
			}
		}
		p.expect(lexer.RBrace)
		return n
	}
	n.Right = p.parseExpression()
	return n
}

// parseVarType parses a "Name[]...[]" type annotation, where the
// bracket run is the array dimension suffix. The dimension count is
// stored textually on a VAR_DIM left-child, per spec §3's VAR_TYPE /
// VAR_DIM convention.
func (p *Parser) parseVarType() *ast.Node {
	nameTok, ok := p.expect(lexer.Identifier)
	if !ok {
		nameTok = p.tryBuiltinTypeName()
	}
	n := ast.NewLeaf(ast.VarType, nameTok.Lexeme, nameTok.Line, nameTok.Column)
	dims := 0
	for p.at(lexer.LBracket) && p.peek(1).Kind == lexer.RBracket {
		p.advance()
		p.advance()
		dims++
	}
	if dims > 0 {
		n.Left = ast.NewLeaf(ast.VarDim, strconv.Itoa(dims), nameTok.Line, nameTok.Column)
	}
	return n
}

// varTypeDimension returns the array dimension recorded on a VAR_TYPE
// node's VAR_DIM left-child, or 0 if the type is scalar.
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

// tryBuiltinTypeName recovers from the (common) case of a type
// annotation spelled as a keyword-shaped identifier; since p.expect
// already recorded a fatal mismatch when this is called, this simply
// returns the offending token so callers keep producing a node.
func (p *Parser) tryBuiltinTypeName() lexer.Token {
	return p.cur()
}

func (p *Parser) parseParameterList() []*ast.Node {
	if _, ok := p.expect(lexer.LParen); !ok {
		return nil
	}
	var params []*ast.Node
	for !p.fatal && !p.at(lexer.RParen) {
		nameTok, ok := p.expect(lexer.Identifier)
		if !ok {
			return nil
		}
		p.expect(lexer.Colon)
		typ := p.parseVarType()
		param := &ast.Node{Kind: ast.Var, Value: nameTok.Lexeme, Line: nameTok.Line, Column: nameTok.Column}
		param.Details = []*ast.Node{typ}
		params = append(params, param)
		if p.at(lexer.Comma) {
			p.advance()
		} else {
			break
		}
	}
	p.expect(lexer.RParen)
	return params
}

// parseFunction parses: [modifier] function [: ReturnType] Name (
// params ) { body }.
func (p *Parser) parseFunction(mod *ast.Node) *ast.Node {
	tok := p.advance() // 'function'
	var retType *ast.Node
	if p.at(lexer.Colon) {
		p.advance()
		retType = p.parseVarType()
	}
	nameTok, ok := p.expect(lexer.Identifier)
	if !ok {
		return nil
	}
	params := p.parseParameterList()
	if p.fatal {
		return nil
	}
	body := p.parseRunnable(true)
	if p.fatal {
		return nil
	}
	n := &ast.Node{Kind: ast.Function, Value: nameTok.Lexeme, Line: tok.Line, Column: tok.Column, Left: mod, Right: body}
	if retType != nil {
		n.Details = append(n.Details, retType)
	}
	n.Details = append(n.Details, params...)
	return n
}

// parseConstructor parses "this :: constructor ( params ) { body }".
func (p *Parser) parseConstructor() *ast.Node {
	tok := p.advance() // 'this'
	p.advance()         // ':'
	p.advance()         // ':'
	ctorTok, ok := p.expect(lexer.Identifier)
	if !ok || ctorTok.Lexeme != "constructor" {
		p.mismatch("'constructor'")
		return nil
	}
	params := p.parseParameterList()
	if p.fatal {
		return nil
	}
	body := p.parseRunnable(true)
	if p.fatal {
		return nil
	}
	n := &ast.Node{Kind: ast.ClassConstructor, Line: tok.Line, Column: tok.Column, Right: body, Details: params}
	return n
}

// parseClass parses: [modifier] class Name [extends Base] [with
// Iface1, Iface2, ...] { body }.
func (p *Parser) parseClass(mod *ast.Node) *ast.Node {
	tok := p.advance() // 'class'
	nameTok, ok := p.expect(lexer.Identifier)
	if !ok {
		return nil
	}
	n := &ast.Node{Kind: ast.Class, Value: nameTok.Lexeme, Line: tok.Line, Column: tok.Column, Left: mod}
	if p.at(lexer.KwExtends) {
		p.advance()
		baseTok, ok := p.expect(lexer.Identifier)
		if !ok {
			return nil
		}
		n.Details = append(n.Details, ast.NewLeaf(ast.Inheritance, baseTok.Lexeme, baseTok.Line, baseTok.Column))
	}
	if p.at(lexer.KwWith) {
		p.advance()
		for {
			ifaceTok, ok := p.expect(lexer.Identifier)
			if !ok {
				return nil
			}
			n.Details = append(n.Details, ast.NewLeaf(ast.Interface, ifaceTok.Lexeme, ifaceTok.Line, ifaceTok.Column))
			if p.at(lexer.Comma) {
				p.advance()
				continue
			}
			break
		}
	}
	body := p.parseRunnable(true)
	if p.fatal {
		return nil
	}
	n.Right = body
	return n
}

// parseEnum parses: enum Name { Entry [: Integer], ... }. Unspecified
// values auto-increment from the last explicit value, or zero.
func (p *Parser) parseEnum() *ast.Node {
	tok := p.advance()
	nameTok, ok := p.expect(lexer.Identifier)
	if !ok {
		return nil
	}
	if _, ok := p.expect(lexer.LBrace); !ok {
		return nil
	}
	n := &ast.Node{Kind: ast.Enum, Value: nameTok.Lexeme, Line: tok.Line, Column: tok.Column}
	next := 0
	for !p.fatal && !p.at(lexer.RBrace) {
		entryTok, ok := p.expect(lexer.Identifier)
		if !ok {
			return nil
		}
		value := next
		if p.at(lexer.Colon) {
			p.advance()
			numTok, ok := p.expect(lexer.Integer)
			if !ok {
				return nil
			}
			v, err := strconv.Atoi(numTok.Lexeme)
			if err == nil {
				value = v
			}
		}
		e := ast.NewLeaf(ast.Enumerator, entryTok.Lexeme, entryTok.Line, entryTok.Column)
		e.Details = []*ast.Node{ast.NewLeaf(ast.Number, strconv.Itoa(value), entryTok.Line, entryTok.Column)}
		n.Details = append(n.Details, e)
		next = value + 1
		if p.at(lexer.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lexer.RBrace)
	return n
}

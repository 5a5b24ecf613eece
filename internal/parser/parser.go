// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package parser

import (
	"github.com/spacelang/spacec/internal/ast"
	"github.com/spacelang/spacec/internal/diagnostics"
	"github.com/spacelang/spacec/internal/lexer"
	"github.com/spacelang/spacec/internal/source"
)

// Parser builds an AST from a token vector with local lookahead. Every
// construction routine returns the subtree it produced; the parser's
// position in the token vector is the only state shared between
// routines besides the vector itself.
type Parser struct {
	buf    *source.Buffer
	toks   []lexer.Token
	pos    int
	diags  diagnostics.Bag
	fatal  bool // set once a grammar mismatch has been reported
	inLoop int  // not read or updated by any parse routine; break/continue placement is checked by the analyzer
}

// Parse tokenizes and parses buf, returning the MAIN-level RUNNABLE
// root node and any diagnostics. A nil root always means a fatal
// diagnostic was recorded, either lexical or syntactic.
func Parse(buf *source.Buffer) (*ast.Node, *diagnostics.Bag) {
	toks, lexDiags := lexer.New(buf).Tokenize()
	if lexDiags.HasFatal() {
		return nil, lexDiags
	}
	p := &Parser{buf: buf, toks: toks}
	root := p.parseRunnable(false)
	if p.fatal {
		return nil, &p.diags
	}
	return root, &p.diags
}

// ====== token stream helpers ======

func (p *Parser) cur() lexer.Token { return p.toks[p.pos] }

func (p *Parser) peek(n int) lexer.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[i]
}

func (p *Parser) at(k lexer.Kind) bool { return p.cur().Kind == k }

func (p *Parser) atAny(ks ...lexer.Kind) bool {
	for _, k := range ks {
		if p.at(k) {
			return true
		}
	}
	return false
}

func (p *Parser) atDoubleColon() bool {
	return p.at(lexer.Colon) && p.peek(1).Kind == lexer.Colon
}

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// expect consumes the current token if it matches k, else records a
// SyntaxMismatchException and marks the parse fatal.
func (p *Parser) expect(k lexer.Kind) (lexer.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.mismatch(k.String())
	return lexer.Token{}, false
}

func (p *Parser) mismatch(expected string) {
	if p.fatal {
		return
	}
	got := p.cur()
	p.diags.Errorf(diagnostics.SyntaxMismatchException, p.buf.Name(), got.Line, got.Column,
		"expected %s, got %q", expected, got.Lexeme)
	p.fatal = true
}

// ====== top level / runnable ======

// parseRunnable parses a block of statements. If inBrace is true, it
// consumes a leading '{' and stops at the matching '}'; otherwise it
// runs to EOF (file-level runnable).
func (p *Parser) parseRunnable(inBrace bool) *ast.Node {
	startTok := p.cur()
	if inBrace {
		if _, ok := p.expect(lexer.LBrace); !ok {
			return nil
		}
	}
	block := ast.New(ast.Runnable, startTok.Line, startTok.Column)
	for !p.fatal {
		if inBrace && p.at(lexer.RBrace) {
			p.advance()
			return block
		}
		if !inBrace && p.at(lexer.EOF) {
			return block
		}
		stmt := p.parseStatement()
		if p.fatal {
			return nil
		}
		if stmt != nil {
			block.Details = append(block.Details, stmt)
		}
	}
	return nil
}

// parseStatement dispatches on the leading token kind (spec §4.2 "top
// level").
func (p *Parser) parseStatement() *ast.Node {
	if p.at(lexer.KwThis) && p.peek(1).Kind == lexer.Colon && p.peek(2).Kind == lexer.Colon {
		return p.parseConstructor()
	}
	switch p.cur().Kind {
	case lexer.KwGlobal, lexer.KwPrivate, lexer.KwSecure:
		return p.parseModified()
	case lexer.KwVar, lexer.KwConst:
		return p.parseVarDecl(nil)
	case lexer.KwFunction:
		return p.parseFunction(nil)
	case lexer.KwClass:
		return p.parseClass(nil)
	case lexer.KwEnum:
		return p.parseEnum()
	case lexer.KwInclude:
		return p.parseIncludeOrExport(ast.Include)
	case lexer.KwExport:
		return p.parseIncludeOrExport(ast.Export)
	case lexer.KwIf:
		return p.parseIf()
	case lexer.KwElse:
		return p.parseElse()
	case lexer.KwWhile:
		return p.parseWhile()
	case lexer.KwDo:
		return p.parseDo()
	case lexer.KwFor:
		return p.parseFor()
	case lexer.KwCheck:
		return p.parseCheck()
	case lexer.KwIs:
		return p.parseIs()
	case lexer.KwTry:
		return p.parseTry()
	case lexer.KwCatch:
		return p.parseCatch()
	case lexer.KwReturn:
		return p.parseReturn()
	case lexer.KwBreak:
		return p.parseSimpleKeywordStatement(ast.Break)
	case lexer.KwContinue:
		return p.parseSimpleKeywordStatement(ast.Continue)
	default:
		return p.parseExpressionStatement()
	}
}

// parseModified handles a leading visibility modifier shared by class,
// function, and variable declarations.
func (p *Parser) parseModified() *ast.Node {
	tok := p.advance()
	mod := ast.NewLeaf(ast.Modifier, tok.Lexeme, tok.Line, tok.Column)
	switch p.cur().Kind {
	case lexer.KwVar, lexer.KwConst:
		return p.parseVarDecl(mod)
	case lexer.KwFunction:
		return p.parseFunction(mod)
	case lexer.KwClass:
		return p.parseClass(mod)
	default:
		p.mismatch("'var', 'const', 'function', or 'class' after modifier")
		return nil
	}
}

func (p *Parser) parseSimpleKeywordStatement(kind ast.Kind) *ast.Node {
	tok := p.advance()
	n := ast.New(kind, tok.Line, tok.Column)
	p.expect(lexer.Semicolon)
	return n
}

func (p *Parser) parseReturn() *ast.Node {
	tok := p.advance()
	n := ast.New(ast.Return, tok.Line, tok.Column)
	if !p.at(lexer.Semicolon) {
		n.Right = p.parseExpressionOrConditional()
	}
	p.expect(lexer.Semicolon)
	return n
}

// ====== include / export ======

func (p *Parser) parseIncludeOrExport(kind ast.Kind) *ast.Node {
	tok := p.advance()
	n := ast.New(kind, tok.Line, tok.Column)
	path, ok := p.expect(lexer.String)
	if !ok {
		return nil
	}
	n.Value = path.Lexeme
	p.expect(lexer.Semicolon)
	return n
}

// ====== control flow ======

func (p *Parser) parseIf() *ast.Node {
	tok := p.advance()
	p.expect(lexer.LParen)
	cond := p.parseChainedCondition()
	p.expect(lexer.RParen)
	body := p.parseRunnable(true)
	if p.fatal {
		return nil
	}
	n := ast.New(ast.If, tok.Line, tok.Column)
	n.Left = cond
	n.Right = body
	return n
}

func (p *Parser) parseElse() *ast.Node {
	tok := p.advance()
	if p.at(lexer.KwIf) {
		ifTok := p.advance()
		p.expect(lexer.LParen)
		cond := p.parseChainedCondition()
		p.expect(lexer.RParen)
		body := p.parseRunnable(true)
		if p.fatal {
			return nil
		}
		n := ast.New(ast.ElseIf, ifTok.Line, ifTok.Column)
		n.Left = cond
		n.Right = body
		return n
	}
	body := p.parseRunnable(true)
	if p.fatal {
		return nil
	}
	n := ast.New(ast.Else, tok.Line, tok.Column)
	n.Right = body
	return n
}

func (p *Parser) parseWhile() *ast.Node {
	tok := p.advance()
	p.expect(lexer.LParen)
	cond := p.parseChainedCondition()
	p.expect(lexer.RParen)
	body := p.parseRunnable(true)
	if p.fatal {
		return nil
	}
	n := ast.New(ast.While, tok.Line, tok.Column)
	n.Left = cond
	n.Right = body
	return n
}

func (p *Parser) parseDo() *ast.Node {
	tok := p.advance()
	body := p.parseRunnable(true)
	if p.fatal {
		return nil
	}
	if _, ok := p.expect(lexer.KwWhile); !ok {
		return nil
	}
	p.expect(lexer.LParen)
	cond := p.parseChainedCondition()
	p.expect(lexer.RParen)
	p.expect(lexer.Semicolon)
	if p.fatal {
		return nil
	}
	n := ast.New(ast.Do, tok.Line, tok.Column)
	n.Left = cond
	n.Right = body
	return n
}

func (p *Parser) parseFor() *ast.Node {
	tok := p.advance()
	p.expect(lexer.LParen)
	init := p.parseVarDecl(nil)
	if p.fatal {
		return nil
	}
	cond := p.parseChainedCondition()
	p.expect(lexer.Semicolon)
	action := p.parseAssignmentOrIncDec()
	p.expect(lexer.RParen)
	body := p.parseRunnable(true)
	if p.fatal {
		return nil
	}
	n := ast.New(ast.For, tok.Line, tok.Column)
	n.Left = init
	n.Right = body
	n.Details = []*ast.Node{cond, action}
	return n
}

func (p *Parser) parseCheck() *ast.Node {
	tok := p.advance()
	p.expect(lexer.LParen)
	disc := p.parseExpression()
	p.expect(lexer.RParen)
	body := p.parseCheckBody()
	if p.fatal {
		return nil
	}
	n := ast.New(ast.Check, tok.Line, tok.Column)
	n.Left = disc
	n.Right = body
	return n
}

// parseCheckBody parses the brace-delimited body of a check statement,
// which in CheckStatement mode only accepts "is" entries.
func (p *Parser) parseCheckBody() *ast.Node {
	startTok := p.cur()
	if _, ok := p.expect(lexer.LBrace); !ok {
		return nil
	}
	block := ast.New(ast.Runnable, startTok.Line, startTok.Column)
	for !p.fatal && !p.at(lexer.RBrace) {
		if !p.at(lexer.KwIs) {
			p.mismatch("'is'")
			return nil
		}
		is := p.parseIs()
		if p.fatal {
			return nil
		}
		block.Details = append(block.Details, is)
	}
	p.expect(lexer.RBrace)
	return block
}

func (p *Parser) parseIs() *ast.Node {
	tok := p.advance()
	value := p.parseExpression()
	p.expect(lexer.Colon)
	body := p.parseRunnable(true)
	if p.fatal {
		return nil
	}
	n := ast.New(ast.Is, tok.Line, tok.Column)
	n.Left = value
	n.Right = body
	return n
}

func (p *Parser) parseTry() *ast.Node {
	tok := p.advance()
	body := p.parseRunnable(true)
	if p.fatal {
		return nil
	}
	n := ast.New(ast.Try, tok.Line, tok.Column)
	n.Right = body
	return n
}

func (p *Parser) parseCatch() *ast.Node {
	tok := p.advance()
	p.expect(lexer.LParen)
	typeTok, ok := p.expect(lexer.Identifier)
	if !ok {
		return nil
	}
	nameTok, ok := p.expect(lexer.Identifier)
	if !ok {
		return nil
	}
	p.expect(lexer.RParen)
	body := p.parseRunnable(true)
	if p.fatal {
		return nil
	}
	param := ast.NewLeaf(ast.Var, nameTok.Lexeme, nameTok.Line, nameTok.Column)
	param.Details = []*ast.Node{ast.NewLeaf(ast.VarType, typeTok.Lexeme, typeTok.Line, typeTok.Column)}
	n := ast.New(ast.Catch, tok.Line, tok.Column)
	n.Left = param
	n.Right = body
	return n
}

// ====== expression statement (assignment or bare call) ======

func (p *Parser) parseExpressionStatement() *ast.Node {
	n := p.parseAssignmentOrIncDec()
	p.expect(lexer.Semicolon)
	return n
}

// parseAssignmentOrIncDec parses one of: a plain "lhs = expr", a
// compound "lhs += expr" (folded to SIMPLE_INC_DEC_ASS), a bare
// "lhs++"/"lhs--", or a standalone function/member-access expression
// used for its side effects.
func (p *Parser) parseAssignmentOrIncDec() *ast.Node {
	lhs := p.parsePrimary()
	if p.fatal {
		return nil
	}
	switch p.cur().Kind {
	case lexer.Assign:
		tok := p.advance()
		rhs := p.parseExpressionOrConditional()
		return ast.NewBinary(ast.Assign, lhs, rhs, tok.Line, tok.Column)
	case lexer.PlusEq, lexer.MinusEq, lexer.StarEq, lexer.SlashEq:
		tok := p.advance()
		rhs := p.parseExpressionOrConditional()
		n := ast.NewBinary(ast.SimpleIncDecAss, lhs, rhs, tok.Line, tok.Column)
		n.Value = tok.Lexeme
		return n
	case lexer.Inc, lexer.Dec:
		tok := p.advance()
		n := ast.New(ast.SimpleIncDecAss, tok.Line, tok.Column)
		n.Value = tok.Lexeme
		n.Left = lhs
		return n
	default:
		return lhs
	}
}

// parseExpressionOrConditional parses a right-hand-side value that may
// itself be a conditional assignment (ternary), per spec §4.2.
func (p *Parser) parseExpressionOrConditional() *ast.Node {
	expr := p.parseChainedConditionOrExpr()
	if p.at(lexer.Question) {
		return p.finishConditionalAssignment(expr)
	}
	return expr
}

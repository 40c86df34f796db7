/*
 * vex
 *
 * Copyright 2026 The Vex Authors. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import "fmt"

/*
MaxParams bounds the number of parameters a function definition may
declare and the number of arguments a call site may pass. Grounded in
the reference tokenizer's own MAX_PARAMS_PER_FUNC limit.
*/
const MaxParams = 100

/*
nodeTable maps each binary-operator token kind to a Node template
carrying its NodeKind and binding power. Binding powers follow the
precedence table: 10 for assignment (right-assoc), 20 for
comparisons, 30 for bitwise/shift operators, 40 for additive, 50 for
multiplicative. Only entries here participate in the precedence-
climbing loop in parseExpr; every other grammar form is handled
directly by parseFactor.
*/
var nodeTable map[TokenKind]*Node

func init() {
	nodeTable = map[TokenKind]*Node{
		TokenASSIGN: {Kind: NodeAssign, bindingPower: 10},

		TokenEQUAL:   {Kind: NodeEqual, bindingPower: 20},
		TokenLESS:    {Kind: NodeLess, bindingPower: 20},
		TokenLEQUAL:  {Kind: NodeLessEqual, bindingPower: 20},
		TokenGREATER: {Kind: NodeGreater, bindingPower: 20},
		TokenGEQUAL:  {Kind: NodeGreaterEqual, bindingPower: 20},

		TokenAMPERSAND:  {Kind: NodeBitAnd, bindingPower: 30},
		TokenPIPE:       {Kind: NodeBitOr, bindingPower: 30},
		TokenDBLLESS:    {Kind: NodeShl, bindingPower: 30},
		TokenDBLGREATER: {Kind: NodeShr, bindingPower: 30},

		TokenPLUS:  {Kind: NodeAdd, bindingPower: 40},
		TokenMINUS: {Kind: NodeSub, bindingPower: 40},

		TokenASTERISK: {Kind: NodeMul, bindingPower: 50},
		TokenSLASH:    {Kind: NodeDiv, bindingPower: 50},
	}
}

/*
parser holds the state of a single pass over a token stream.
*/
type parser struct {
	name string // source label; ParseError and LexError do not include it
	tok  Token
	next func() Token
	rp   RuntimeProvider
}

/*
Parse parses a source string and returns the Root AST node.
*/
func Parse(name, input string) (*Node, error) {
	return ParseWithRuntime(name, input, nil)
}

/*
ParseWithRuntime parses a source string, attaching Runtime components
supplied by rp to every node (nil skips attachment, used by tests that
only check tree shape).
*/
func ParseWithRuntime(name, input string, rp RuntimeProvider) (*Node, error) {
	ch := Lex(input)

	p := &parser{
		name: name,
		rp:   rp,
		next: func() Token { return <-ch },
	}

	if err := p.advance(); err != nil {
		return nil, err
	}

	root := p.newNode(NodeRoot, Token{Line: 1})

	for p.tok.Kind != TokenEOF {
		def, err := p.parseTopLevelDef()
		if err != nil {
			return nil, err
		}
		root.Children = append(root.Children, def)
	}

	return root, nil
}

func (p *parser) advance() error {
	t := p.next()
	if t.Kind == TokenError {
		return &LexError{Line: t.Line, Char: errChar(t.Text)}
	}
	p.tok = t
	return nil
}

func errChar(text string) byte {
	if len(text) == 0 {
		return 0
	}
	return text[0]
}

func (p *parser) newNode(kind NodeKind, tok Token) *Node {
	n := &Node{Kind: kind, Token: tok, Children: make([]*Node, 0, 2)}
	if p.rp != nil {
		n.Runtime = p.rp.Runtime(n)
	}
	return n
}

func (p *parser) expect(k TokenKind, what string) (Token, error) {
	if p.tok.Kind != k {
		return Token{}, newParseError(what, p.tok)
	}
	t := p.tok
	if err := p.advance(); err != nil {
		return Token{}, err
	}
	return t, nil
}

func (p *parser) isKeyword(kw Keyword) bool {
	return p.tok.Kind == TokenKEYWORD && p.tok.Keyword() == kw
}

/*
parseTopLevelDef parses a func_def or var_def, per:

	program := (func_def | var_def)*
*/
func (p *parser) parseTopLevelDef() (*Node, error) {
	switch {
	case p.isKeyword(KwFunc):
		return p.parseFuncDef()
	case p.isKeyword(KwVar):
		return p.parseVarDef()
	}
	return nil, newParseError("'func' or 'var'", p.tok)
}

/*
parseFuncDef parses:

	func_def := 'func' IDENT '(' params? ')' compound
	params   := IDENT (',' IDENT)*
*/
func (p *parser) parseFuncDef() (*Node, error) {
	kwTok := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}

	name, err := p.expect(TokenIDENTIFIER, "function name")
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenLPAREN, "'('"); err != nil {
		return nil, err
	}

	params := p.newNode(NodeParamList, kwTok)
	if p.tok.Kind != TokenRPAREN {
		for {
			if len(params.Children) >= MaxParams {
				return nil, newParseError("", Token{Line: p.tok.Line, Text: fmt.Sprintf("too many parameters (max %d)", MaxParams)})
			}
			id, err := p.expect(TokenIDENTIFIER, "parameter name")
			if err != nil {
				return nil, err
			}
			params.Children = append(params.Children, p.newNode(NodeIdentifier, id))

			if p.tok.Kind != TokenCOMMA {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	if _, err := p.expect(TokenRPAREN, "')'"); err != nil {
		return nil, err
	}

	body, err := p.parseCompound()
	if err != nil {
		return nil, err
	}

	fd := p.newNode(NodeFuncDef, name)
	fd.Children = append(fd.Children, params, body)
	return fd, nil
}

/*
parseVarDef parses:

	var_def := 'var' IDENT ( '[' expr ']' | ('=' expr)? ) ';'
*/
func (p *parser) parseVarDef() (*Node, error) {
	if err := p.advance(); err != nil { // consume 'var'
		return nil, err
	}

	name, err := p.expect(TokenIDENTIFIER, "variable name")
	if err != nil {
		return nil, err
	}

	if p.tok.Kind == TokenLSQUARE {
		if err := p.advance(); err != nil {
			return nil, err
		}
		size, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRSQUARE, "']'"); err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenSEMICOLON, "';'"); err != nil {
			return nil, err
		}

		ad := p.newNode(NodeArrDef, name)
		ad.Children = append(ad.Children, size)
		return ad, nil
	}

	vd := p.newNode(NodeVarDef, name)

	if p.tok.Kind == TokenASSIGN {
		if err := p.advance(); err != nil {
			return nil, err
		}
		init, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		vd.Children = append(vd.Children, init)
	}

	if _, err := p.expect(TokenSEMICOLON, "';'"); err != nil {
		return nil, err
	}

	return vd, nil
}

/*
parseStatement parses:

	statement := var_def
	           | 'if' '(' expr ')' statement ('else' statement)?
	           | 'while' '(' expr ')' statement
	           | 'return' expr? ';'
	           | compound
	           | expr ';'
*/
func (p *parser) parseStatement() (*Node, error) {
	switch {
	case p.isKeyword(KwVar):
		return p.parseVarDef()

	case p.isKeyword(KwIf):
		return p.parseIf()

	case p.isKeyword(KwWhile):
		return p.parseWhile()

	case p.isKeyword(KwReturn):
		return p.parseReturn()

	case p.tok.Kind == TokenLBRACE:
		return p.parseCompound()
	}

	expr, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenSEMICOLON, "';'"); err != nil {
		return nil, err
	}
	return expr, nil
}

/*
parseIf implements the dangling-else rule: an 'else' always attaches
to the nearest still-unmatched 'if', which falls out naturally here
because the else-check happens immediately after parsing the
then-statement of the innermost recursive call.
*/
func (p *parser) parseIf() (*Node, error) {
	tok := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenLPAREN, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRPAREN, "')'"); err != nil {
		return nil, err
	}

	then, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	n := p.newNode(NodeIf, tok)
	n.Children = append(n.Children, cond, then)

	if p.isKeyword(KwElse) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		els, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, els)
	}

	return n, nil
}

func (p *parser) parseWhile() (*Node, error) {
	tok := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenLPAREN, "'('"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRPAREN, "')'"); err != nil {
		return nil, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}

	n := p.newNode(NodeWhile, tok)
	n.Children = append(n.Children, cond, body)
	return n, nil
}

func (p *parser) parseReturn() (*Node, error) {
	tok := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}

	n := p.newNode(NodeReturn, tok)

	if p.tok.Kind != TokenSEMICOLON {
		val, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, val)
	} else {
		// Synthetic zero return value (§3 Return payload note).
		zero := p.newNode(NodeNumber, Token{Kind: TokenNUMBER, Line: tok.Line, Num: 0})
		n.Children = append(n.Children, zero)
	}

	if _, err := p.expect(TokenSEMICOLON, "';'"); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *parser) parseCompound() (*Node, error) {
	tok, err := p.expect(TokenLBRACE, "'{'")
	if err != nil {
		return nil, err
	}

	n := p.newNode(NodeCompound, tok)
	for p.tok.Kind != TokenRBRACE {
		if p.tok.Kind == TokenEOF {
			return nil, newParseError("'}'", p.tok)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, stmt)
	}

	if _, err := p.expect(TokenRBRACE, "'}'"); err != nil {
		return nil, err
	}
	return n, nil
}

/*
parseExpr is the precedence-climbing loop: parse one factor, then
repeatedly fold in led operators whose binding power exceeds the
floor passed in by the caller.
*/
func (p *parser) parseExpr(minBinding int) (*Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		tmpl, ok := nodeTable[p.tok.Kind]
		if !ok || tmpl.bindingPower <= minBinding {
			break
		}

		opTok := p.tok
		if err := p.advance(); err != nil {
			return nil, err
		}

		// '=' is right-associative: recurse at one less than its own
		// binding power so a chain `a = b = 5` nests as
		// Assign(a, Assign(b, 5)) instead of folding left. All other
		// operators recurse at their own binding power, which makes
		// them left-associative.
		nextFloor := tmpl.bindingPower
		if tmpl.Kind == NodeAssign {
			nextFloor--
		}

		right, err := p.parseExpr(nextFloor)
		if err != nil {
			return nil, err
		}

		n := p.newNode(tmpl.Kind, opTok)
		n.Children = append(n.Children, left, right)
		left = n
	}

	return left, nil
}

/*
parseFactor parses the irregular unary/primary grammar that a uniform
binding-power table cannot express cleanly: unary minus, the `@`/`&`
prefix operators (each with their own special-cased operand grammar),
parenthesized expressions, literals, and the identifier-led forms
(bare variable, call, index).
*/
func (p *parser) parseFactor() (*Node, error) {
	tok := p.tok

	switch {
	case tok.Kind == TokenMINUS:
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		n := p.newNode(NodeNegate, tok)
		n.Children = append(n.Children, operand)
		return n, nil

	case tok.Kind == TokenAMPERSAND:
		if err := p.advance(); err != nil {
			return nil, err
		}
		id, err := p.expect(TokenIDENTIFIER, "variable name after '&'")
		if err != nil {
			return nil, err
		}
		n := p.newNode(NodeAddr, tok)
		n.Children = append(n.Children, p.newNode(NodeIdentifier, id))
		return n, nil

	case tok.Kind == TokenAT:
		return p.parseDeref(tok)

	case tok.Kind == TokenLPAREN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRPAREN, "')'"); err != nil {
			return nil, err
		}
		return inner, nil

	case tok.Kind == TokenNUMBER:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.newNode(NodeNumber, tok), nil

	case tok.Kind == TokenSTRING:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return p.newNode(NodeString, tok), nil

	case tok.Kind == TokenIDENTIFIER:
		return p.parseIdentifierLed(tok)
	}

	return nil, newParseError("expression", tok)
}

/*
parseDeref implements the `@ expr-or-ident` factor rule: `@(` opens a
full parenthesized expression to dereference, anything else must be a
bare identifier, so that `@a = 10` parses as `(@a) = 10` rather than
`@(a = 10)`.
*/
func (p *parser) parseDeref(tok Token) (*Node, error) {
	if err := p.advance(); err != nil { // consume '@'
		return nil, err
	}

	var operand *Node
	if p.tok.Kind == TokenLPAREN {
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRPAREN, "')'"); err != nil {
			return nil, err
		}
		operand = inner
	} else {
		id, err := p.expect(TokenIDENTIFIER, "identifier or '(' after '@'")
		if err != nil {
			return nil, err
		}
		operand = p.newNode(NodeIdentifier, id)
	}

	n := p.newNode(NodeDeref, tok)
	n.Children = append(n.Children, operand)
	return n, nil
}

/*
parseIdentifierLed handles the three identifier-started factor forms:
bare variable reference, call `f(args)`, and index `a[i]` — the
latter desugared at parse time into `@(a + i*8)` per the grammar.
*/
func (p *parser) parseIdentifierLed(tok Token) (*Node, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}

	switch p.tok.Kind {
	case TokenLPAREN:
		return p.parseCall(tok)
	case TokenLSQUARE:
		return p.parseIndex(tok)
	}

	return p.newNode(NodeIdentifier, tok), nil
}

func (p *parser) parseCall(nameTok Token) (*Node, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}

	args := p.newNode(NodeArgList, nameTok)
	if p.tok.Kind != TokenRPAREN {
		for {
			if len(args.Children) >= MaxParams {
				return nil, newParseError("", Token{Line: p.tok.Line, Text: fmt.Sprintf("too many arguments (max %d)", MaxParams)})
			}
			arg, err := p.parseExpr(0)
			if err != nil {
				return nil, err
			}
			args.Children = append(args.Children, arg)

			if p.tok.Kind != TokenCOMMA {
				break
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}

	if _, err := p.expect(TokenRPAREN, "')'"); err != nil {
		return nil, err
	}

	call := p.newNode(NodeFuncCall, nameTok)
	call.Children = append(call.Children, args)
	return call, nil
}

/*
parseIndex desugars IDENT '[' expr ']' into @(IDENT + expr * 8): the
only way an index expression is ever represented in the tree.
*/
func (p *parser) parseIndex(nameTok Token) (*Node, error) {
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}

	idx, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenRSQUARE, "']'"); err != nil {
		return nil, err
	}

	eight := p.newNode(NodeNumber, Token{Kind: TokenNUMBER, Line: nameTok.Line, Num: 8})
	mul := p.newNode(NodeMul, Token{Line: nameTok.Line})
	mul.Children = append(mul.Children, idx, eight)

	add := p.newNode(NodeAdd, Token{Line: nameTok.Line})
	add.Children = append(add.Children, p.newNode(NodeIdentifier, nameTok), mul)

	deref := p.newNode(NodeDeref, Token{Line: nameTok.Line})
	deref.Children = append(deref.Children, add)
	return deref, nil
}

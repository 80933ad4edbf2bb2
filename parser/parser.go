package parser

import (
	"strconv"

	"github.com/pontaoski/monkey/ast"
	"github.com/pontaoski/monkey/errors"
	"github.com/pontaoski/monkey/lexer"
	"github.com/pontaoski/monkey/types"
)

type Precedence int

const (
	_ Precedence = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x
	CALL        // f(x)
	INDEX       // no token binds this tightly yet
)

// DefaultMaxDepth bounds how deeply expressions may nest.
const DefaultMaxDepth = 256

// MaxDepthLimit is the largest nesting limit WithMaxDepth accepts.
const MaxDepthLimit = 10000

var precedences = [types.KindCount]Precedence{
	types.EQ:       EQUALS,
	types.NOT_EQ:   EQUALS,
	types.LT:       LESSGREATER,
	types.GT:       LESSGREATER,
	types.PLUS:     SUM,
	types.MINUS:    SUM,
	types.SLASH:    PRODUCT,
	types.ASTERISK: PRODUCT,
	types.LPAREN:   CALL,
}

func precedenceOf(kind types.TokenKind) Precedence {
	if kind < 0 || kind >= types.KindCount || precedences[kind] == 0 {
		return LOWEST
	}
	return precedences[kind]
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	l *lexer.Lexer

	cur  types.Token
	peek types.Token

	diagnostics []error

	prefixParseFns [types.KindCount]prefixParseFn
	infixParseFns  [types.KindCount]infixParseFn

	depth    int
	maxDepth int
	blocks   int

	// closed is the location of the last brace that ended a block.
	closed types.Span
}

type Option func(*Parser)

// WithMaxDepth overrides DefaultMaxDepth. Values below 1 are ignored and
// values above MaxDepthLimit are clamped to it.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		switch {
		case n > MaxDepthLimit:
			p.maxDepth = MaxDepthLimit
		case n > 0:
			p.maxDepth = n
		}
	}
}

func New(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{
		l:        l,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.registerPrefix(types.IDENT, p.parseIdentifier)
	p.registerPrefix(types.INT, p.parseIntegerLiteral)
	p.registerPrefix(types.TRUE, p.parseBoolean)
	p.registerPrefix(types.FALSE, p.parseBoolean)
	p.registerPrefix(types.BANG, p.parsePrefixExpression)
	p.registerPrefix(types.MINUS, p.parsePrefixExpression)
	p.registerPrefix(types.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(types.IF, p.parseIfExpression)
	p.registerPrefix(types.FUNCTION, p.parseFunctionLiteral)

	for _, kind := range []types.TokenKind{
		types.PLUS, types.MINUS, types.SLASH, types.ASTERISK,
		types.EQ, types.NOT_EQ, types.LT, types.GT,
	} {
		p.registerInfix(kind, p.parseInfixExpression)
	}
	p.registerInfix(types.LPAREN, p.parseCallExpression)

	p.advance()
	p.advance()

	return p
}

func (p *Parser) registerPrefix(kind types.TokenKind, fn prefixParseFn) {
	p.prefixParseFns[kind] = fn
}

func (p *Parser) registerInfix(kind types.TokenKind, fn infixParseFn) {
	p.infixParseFns[kind] = fn
}

// Errors returns the diagnostics collected so far, in order.
func (p *Parser) Errors() []string {
	msgs := make([]string, 0, len(p.diagnostics))
	for _, d := range p.diagnostics {
		msgs = append(msgs, d.Error())
	}
	return msgs
}

// Diagnostics returns the typed values behind Errors.
func (p *Parser) Diagnostics() []error {
	return p.diagnostics
}

func (p *Parser) report(err error) {
	p.diagnostics = append(p.diagnostics, err)
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(kind types.TokenKind) bool {
	return p.cur.Kind == kind
}

func (p *Parser) peekIs(kind types.TokenKind) bool {
	return p.peek.Kind == kind
}

func (p *Parser) expectPeek(kind types.TokenKind) bool {
	if p.peekIs(kind) {
		p.advance()
		return true
	}

	p.report(errors.ExpectedKindGotKind{
		Expected: kind,
		Got:      p.peek.Kind,
		Location: p.peek.Location,
	})
	return false
}

func (p *Parser) peekPrecedence() Precedence {
	return precedenceOf(p.peek.Kind)
}

func (p *Parser) curPrecedence() Precedence {
	return precedenceOf(p.cur.Kind)
}

func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curIs(types.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.advance()
	}

	return program
}

// atBlockEnd reports whether cur is a closing brace that no nested block
// has consumed yet.
func (p *Parser) atBlockEnd() bool {
	return p.blocks > 0 && p.curIs(types.RBRACE) && p.cur.Location != p.closed
}

// synchronize skips the rest of a statement that failed to parse. It stops
// on the statement's last token so the caller's advance moves past it: a
// semicolon, the token before EOF, or inside a block the token before the
// closing brace. A statement that failed on the closing brace itself stops
// right there.
func (p *Parser) synchronize() {
	if p.atBlockEnd() {
		return
	}
	for !p.curIs(types.SEMICOLON) && !p.curIs(types.EOF) && !p.peekIs(types.EOF) {
		if p.blocks > 0 && p.peekIs(types.RBRACE) {
			return
		}
		p.advance()
	}
}

func (p *Parser) parseStatement() ast.Statement {
	var stmt ast.Statement

	switch p.cur.Kind {
	case types.LET:
		stmt = p.parseLetStatement()
	case types.RETURN:
		stmt = p.parseReturnStatement()
	default:
		stmt = p.parseExpressionStatement()
	}

	if stmt == nil {
		p.synchronize()
	}
	return stmt
}

// The statement parsers return a nil interface, never a nil pointer, on
// failure.

func (p *Parser) parseLetStatement() ast.Statement {
	stmt := &ast.LetStatement{Token: p.cur}

	if !p.expectPeek(types.IDENT) {
		return nil
	}
	stmt.Name = &ast.Identifier{Token: p.cur, Value: p.cur.Literal}

	if !p.expectPeek(types.ASSIGN) {
		return nil
	}
	p.advance()

	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	if p.peekIs(types.SEMICOLON) {
		p.advance()
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Token: p.cur}
	p.advance()

	stmt.ReturnValue = p.parseExpression(LOWEST)
	if stmt.ReturnValue == nil {
		return nil
	}

	if p.peekIs(types.SEMICOLON) {
		p.advance()
	}
	return stmt
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.cur}

	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}

	if p.peekIs(types.SEMICOLON) {
		p.advance()
	}
	return stmt
}

// parseBlockStatement expects cur to be the opening brace and leaves cur on
// the closing one.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.cur}
	p.advance()

	p.blocks++
	defer func() { p.blocks-- }()

	for !p.curIs(types.RBRACE) && !p.curIs(types.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else if p.atBlockEnd() {
			break
		}
		p.advance()
	}

	if !p.curIs(types.RBRACE) {
		p.report(errors.ExpectedKindGotKind{
			Expected: types.RBRACE,
			Got:      p.cur.Kind,
			Location: p.cur.Location,
		})
		return nil
	}
	p.closed = p.cur.Location
	return block
}

func (p *Parser) parseExpression(precedence Precedence) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > p.maxDepth {
		p.report(errors.NestingTooDeep{Limit: p.maxDepth, Location: p.cur.Location})
		return nil
	}

	prefix := p.prefixParseFns[p.cur.Kind]
	if prefix == nil {
		p.report(errors.NoPrefixParseFn{Kind: p.cur.Kind, Location: p.cur.Location})
		return nil
	}

	left := prefix()
	for left != nil && !p.peekIs(types.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peek.Kind]
		if infix == nil {
			return left
		}

		p.advance()
		left = infix(left)
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.cur, Value: p.cur.Literal}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.cur.Literal, 10, 64)
	if err != nil {
		p.report(errors.InvalidInteger{Literal: p.cur.Literal, Location: p.cur.Location})
		return nil
	}

	return &ast.IntegerLiteral{Token: p.cur, Value: value}
}

func (p *Parser) parseBoolean() ast.Expression {
	return &ast.Boolean{Token: p.cur, Value: p.curIs(types.TRUE)}
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	expr := &ast.PrefixExpression{Token: p.cur, Operator: p.cur.Literal}
	p.advance()

	expr.Right = p.parseExpression(PREFIX)
	if expr.Right == nil {
		return nil
	}
	return expr
}

// parseInfixExpression parses the right operand at the operator's own
// precedence, so operators of equal precedence associate to the left.
func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpression{Token: p.cur, Operator: p.cur.Literal, Left: left}

	precedence := p.curPrecedence()
	p.advance()

	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.advance()

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	if !p.expectPeek(types.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseIfExpression() ast.Expression {
	expr := &ast.IfExpression{Token: p.cur}

	if !p.expectPeek(types.LPAREN) {
		return nil
	}
	p.advance()

	expr.Condition = p.parseExpression(LOWEST)
	if expr.Condition == nil {
		return nil
	}

	if !p.expectPeek(types.RPAREN) || !p.expectPeek(types.LBRACE) {
		return nil
	}

	expr.Consequence = p.parseBlockStatement()
	if expr.Consequence == nil {
		return nil
	}

	if p.peekIs(types.ELSE) {
		p.advance()

		if !p.expectPeek(types.LBRACE) {
			return nil
		}

		expr.Alternative = p.parseBlockStatement()
		if expr.Alternative == nil {
			return nil
		}
	}

	return expr
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	fn := &ast.FunctionLiteral{Token: p.cur}

	if !p.expectPeek(types.LPAREN) {
		return nil
	}

	params, ok := p.parseFunctionParameters()
	if !ok {
		return nil
	}
	fn.Parameters = params

	if !p.expectPeek(types.LBRACE) {
		return nil
	}

	fn.Body = p.parseBlockStatement()
	if fn.Body == nil {
		return nil
	}
	return fn
}

func (p *Parser) parseFunctionParameters() ([]*ast.Identifier, bool) {
	var params []*ast.Identifier

	if p.peekIs(types.RPAREN) {
		p.advance()
		return params, true
	}

	if !p.expectPeek(types.IDENT) {
		return nil, false
	}
	params = append(params, &ast.Identifier{Token: p.cur, Value: p.cur.Literal})

	for p.peekIs(types.COMMA) {
		p.advance()
		if !p.expectPeek(types.IDENT) {
			return nil, false
		}
		params = append(params, &ast.Identifier{Token: p.cur, Value: p.cur.Literal})
	}

	if !p.expectPeek(types.RPAREN) {
		return nil, false
	}
	return params, true
}

func (p *Parser) parseCallExpression(function ast.Expression) ast.Expression {
	expr := &ast.CallExpression{Token: p.cur, Function: function}

	args, ok := p.parseCallArguments()
	if !ok {
		return nil
	}
	expr.Arguments = args
	return expr
}

func (p *Parser) parseCallArguments() ([]ast.Expression, bool) {
	var args []ast.Expression

	if p.peekIs(types.RPAREN) {
		p.advance()
		return args, true
	}

	p.advance()
	arg := p.parseExpression(LOWEST)
	if arg == nil {
		return nil, false
	}
	args = append(args, arg)

	for p.peekIs(types.COMMA) {
		p.advance()
		p.advance()

		arg := p.parseExpression(LOWEST)
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)
	}

	if !p.expectPeek(types.RPAREN) {
		return nil, false
	}
	return args, true
}

package ast

//go:generate sh -c "cd ../tool && go run . ../ast/nodes.adt ../ast/sumtypes_gen.go ast"

import (
	"github.com/pontaoski/monkey/types"
)

type Node interface {
	TokenLiteral() string
	String() string
}

// Statement and Expression are closed: the marker methods are generated from
// nodes.adt, so only the variants listed there satisfy them.
type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

type LetStatement struct {
	Token types.Token
	Name  *Identifier
	Value Expression
}

func (ls *LetStatement) TokenLiteral() string { return ls.Token.Literal }

type ReturnStatement struct {
	Token       types.Token
	ReturnValue Expression
}

func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }

type ExpressionStatement struct {
	Token      types.Token
	Expression Expression
}

func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }

// BlockStatement is the braced body of an if expression or function literal.
type BlockStatement struct {
	Token      types.Token
	Statements []Statement
}

func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }

type Identifier struct {
	Token types.Token
	Value string
}

func (i *Identifier) TokenLiteral() string { return i.Token.Literal }

type IntegerLiteral struct {
	Token types.Token
	Value int64
}

func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }

type Boolean struct {
	Token types.Token
	Value bool
}

func (b *Boolean) TokenLiteral() string { return b.Token.Literal }

type PrefixExpression struct {
	Token    types.Token
	Operator string
	Right    Expression
}

func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal }

type InfixExpression struct {
	Token    types.Token
	Left     Expression
	Operator string
	Right    Expression
}

func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal }

type IfExpression struct {
	Token       types.Token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement
}

func (ie *IfExpression) TokenLiteral() string { return ie.Token.Literal }

type FunctionLiteral struct {
	Token      types.Token
	Parameters []*Identifier
	Body       *BlockStatement
}

func (fl *FunctionLiteral) TokenLiteral() string { return fl.Token.Literal }

type CallExpression struct {
	Token     types.Token
	Function  Expression
	Arguments []Expression
}

func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }

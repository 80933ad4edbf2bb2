package ast

import (
	"strings"
)

func (p *Program) String() string {
	var out strings.Builder
	for _, s := range p.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

// str renders a possibly absent child. Children are only absent on nodes
// built by hand; the parser never returns a partial node.
func str(n Node) string {
	if n == nil {
		return ""
	}
	return n.String()
}

func (ls *LetStatement) String() string {
	var out strings.Builder
	out.WriteString(ls.TokenLiteral() + " ")
	if ls.Name != nil {
		out.WriteString(ls.Name.String())
	}
	out.WriteString(" = ")
	out.WriteString(str(ls.Value))
	out.WriteString(";")
	return out.String()
}

func (rs *ReturnStatement) String() string {
	var out strings.Builder
	out.WriteString(rs.TokenLiteral() + " ")
	out.WriteString(str(rs.ReturnValue))
	out.WriteString(";")
	return out.String()
}

func (es *ExpressionStatement) String() string {
	return str(es.Expression)
}

func (bs *BlockStatement) String() string {
	var out strings.Builder
	for _, s := range bs.Statements {
		out.WriteString(s.String())
	}
	return out.String()
}

func (i *Identifier) String() string { return i.Value }

func (il *IntegerLiteral) String() string { return il.Token.Literal }

func (b *Boolean) String() string { return b.Token.Literal }

func (pe *PrefixExpression) String() string {
	return "(" + pe.Operator + str(pe.Right) + ")"
}

func (ie *InfixExpression) String() string {
	return "(" + str(ie.Left) + " " + ie.Operator + " " + str(ie.Right) + ")"
}

func (ie *IfExpression) String() string {
	var out strings.Builder
	out.WriteString("if")
	out.WriteString(str(ie.Condition))
	out.WriteString(" ")
	if ie.Consequence != nil {
		out.WriteString(ie.Consequence.String())
	}
	if ie.Alternative != nil {
		out.WriteString("else ")
		out.WriteString(ie.Alternative.String())
	}
	return out.String()
}

func (fl *FunctionLiteral) String() string {
	params := make([]string, 0, len(fl.Parameters))
	for _, p := range fl.Parameters {
		params = append(params, p.String())
	}

	var out strings.Builder
	out.WriteString(fl.TokenLiteral())
	out.WriteString("(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	if fl.Body != nil {
		out.WriteString(fl.Body.String())
	}
	return out.String()
}

func (ce *CallExpression) String() string {
	args := make([]string, 0, len(ce.Arguments))
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}
	return str(ce.Function) + "(" + strings.Join(args, ", ") + ")"
}

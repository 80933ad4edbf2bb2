package lexer

import (
	"unicode/utf8"

	"github.com/pontaoski/monkey/types"
)

// Lexer turns a source string into tokens, one NextToken call at a time.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte

	pos types.Position
}

func New(input string, filename string) *Lexer {
	l := &Lexer{
		input: input,
		pos:   types.Position{Line: 1, Column: 0, Filename: filename},
	}
	l.readChar()
	return l
}

// readChar moves to the next byte. ch is 0 once the input is exhausted.
func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.pos.Line++
		l.pos.Column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.pos.Column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) exhausted() bool {
	return l.position >= len(l.input)
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// skipWhitespace only skips spaces and newlines. Tabs and carriage returns
// are not whitespace in Monkey and come out as ILLEGAL tokens.
func (l *Lexer) skipWhitespace() {
	for !l.exhausted() && (l.ch == ' ' || l.ch == '\n') {
		l.readChar()
	}
}

func (l *Lexer) kinded(kind types.TokenKind, literal string) types.Token {
	return types.Token{
		Kind:     kind,
		Literal:  literal,
		Location: types.SingleCharSpan(l.pos),
	}
}

func (l *Lexer) readWhile(pred func(byte) bool) (string, types.Span) {
	start := l.position
	from := l.pos
	to := l.pos
	for !l.exhausted() && pred(l.ch) {
		to = l.pos
		l.readChar()
	}
	return l.input[start:l.position], types.Span{From: from, To: to}
}

func (l *Lexer) NextToken() types.Token {
	l.skipWhitespace()

	if l.exhausted() {
		return l.kinded(types.EOF, "")
	}

	var tok types.Token

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			tok = l.twoChar(types.EQ)
		} else {
			tok = l.kinded(types.ASSIGN, "=")
		}
	case '!':
		if l.peekChar() == '=' {
			tok = l.twoChar(types.NOT_EQ)
		} else {
			tok = l.kinded(types.BANG, "!")
		}
	default:
		if kind, ok := singleChar[l.ch]; ok {
			tok = l.kinded(kind, string(l.ch))
			break
		}

		switch {
		case isLetter(l.ch):
			lit, span := l.readWhile(isLetter)
			return types.Token{Kind: types.LookupIdent(lit), Literal: lit, Location: span}
		case isDigit(l.ch):
			lit, span := l.readWhile(isDigit)
			return types.Token{Kind: types.INT, Literal: lit, Location: span}
		}

		tok = l.illegal()
	}

	l.readChar()
	return tok
}

// illegal takes the whole UTF-8 sequence starting at the current byte, so a
// character outside ASCII is one token and one column. Bytes that do not
// start a valid sequence are taken one at a time.
func (l *Lexer) illegal() types.Token {
	_, size := utf8.DecodeRuneInString(l.input[l.position:])
	tok := l.kinded(types.ILLEGAL, l.input[l.position:l.position+size])
	for i := 1; i < size; i++ {
		l.readChar()
		l.pos.Column--
	}
	return tok
}

// twoChar consumes the current byte and the one after it.
func (l *Lexer) twoChar(kind types.TokenKind) types.Token {
	from := l.pos
	first := l.ch
	l.readChar()
	return types.Token{
		Kind:     kind,
		Literal:  string([]byte{first, l.ch}),
		Location: types.Span{From: from, To: l.pos},
	}
}

var singleChar = map[byte]types.TokenKind{
	'+': types.PLUS,
	'-': types.MINUS,
	'/': types.SLASH,
	'*': types.ASTERISK,
	'<': types.LT,
	'>': types.GT,
	',': types.COMMA,
	';': types.SEMICOLON,
	'(': types.LPAREN,
	')': types.RPAREN,
	'{': types.LBRACE,
	'}': types.RBRACE,
}

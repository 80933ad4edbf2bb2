package lexer

import (
	"strings"
	"testing"

	"github.com/pontaoski/monkey/types"
)

type testToken struct {
	kind    types.TokenKind
	literal string
}

func lexToEOF(l *Lexer) (ret []testToken) {
	t := l.NextToken()
	for t.Kind != types.EOF {
		ret = append(ret, testToken{t.Kind, t.Literal})
		t = l.NextToken()
	}
	return append(ret, testToken{t.Kind, t.Literal})
}

func checkTokens(t *testing.T, input string, expected []testToken) {
	t.Helper()

	got := lexToEOF(New(input, "test"))
	if len(got) != len(expected) {
		t.Fatalf("%q: expected %d tokens, got %d: %v", input, len(expected), len(got), got)
	}
	for i, exp := range expected {
		if got[i] != exp {
			t.Errorf("%q: token %d: expected %s/%q, got %s/%q", input, i, exp.kind, exp.literal, got[i].kind, got[i].literal)
		}
	}
}

func TestLetFive(t *testing.T) {
	checkTokens(t, "let five = 5;", []testToken{
		{types.LET, "let"},
		{types.IDENT, "five"},
		{types.ASSIGN, "="},
		{types.INT, "5"},
		{types.SEMICOLON, ";"},
		{types.EOF, ""},
	})
}

func TestProgram(t *testing.T) {
	input := `let five = 5;
let ten = 10;
let add = fn(x, y) {
x + y;
};
let result = add(five, ten);
!-/*5;
5 < 10 > 5;
if (5 < 10) {
return true;
} else {
return false;
}
10 == 10;
10 != 9;
`
	checkTokens(t, input, []testToken{
		{types.LET, "let"}, {types.IDENT, "five"}, {types.ASSIGN, "="}, {types.INT, "5"}, {types.SEMICOLON, ";"},
		{types.LET, "let"}, {types.IDENT, "ten"}, {types.ASSIGN, "="}, {types.INT, "10"}, {types.SEMICOLON, ";"},
		{types.LET, "let"}, {types.IDENT, "add"}, {types.ASSIGN, "="}, {types.FUNCTION, "fn"},
		{types.LPAREN, "("}, {types.IDENT, "x"}, {types.COMMA, ","}, {types.IDENT, "y"}, {types.RPAREN, ")"},
		{types.LBRACE, "{"}, {types.IDENT, "x"}, {types.PLUS, "+"}, {types.IDENT, "y"}, {types.SEMICOLON, ";"},
		{types.RBRACE, "}"}, {types.SEMICOLON, ";"},
		{types.LET, "let"}, {types.IDENT, "result"}, {types.ASSIGN, "="}, {types.IDENT, "add"},
		{types.LPAREN, "("}, {types.IDENT, "five"}, {types.COMMA, ","}, {types.IDENT, "ten"}, {types.RPAREN, ")"}, {types.SEMICOLON, ";"},
		{types.BANG, "!"}, {types.MINUS, "-"}, {types.SLASH, "/"}, {types.ASTERISK, "*"}, {types.INT, "5"}, {types.SEMICOLON, ";"},
		{types.INT, "5"}, {types.LT, "<"}, {types.INT, "10"}, {types.GT, ">"}, {types.INT, "5"}, {types.SEMICOLON, ";"},
		{types.IF, "if"}, {types.LPAREN, "("}, {types.INT, "5"}, {types.LT, "<"}, {types.INT, "10"}, {types.RPAREN, ")"},
		{types.LBRACE, "{"}, {types.RETURN, "return"}, {types.TRUE, "true"}, {types.SEMICOLON, ";"},
		{types.RBRACE, "}"}, {types.ELSE, "else"}, {types.LBRACE, "{"},
		{types.RETURN, "return"}, {types.FALSE, "false"}, {types.SEMICOLON, ";"}, {types.RBRACE, "}"},
		{types.INT, "10"}, {types.EQ, "=="}, {types.INT, "10"}, {types.SEMICOLON, ";"},
		{types.INT, "10"}, {types.NOT_EQ, "!="}, {types.INT, "9"}, {types.SEMICOLON, ";"},
		{types.EOF, ""},
	})
}

func TestWords(t *testing.T) {
	tests := map[string]types.TokenKind{
		"fn":         types.FUNCTION,
		"let":        types.LET,
		"true":       types.TRUE,
		"false":      types.FALSE,
		"if":         types.IF,
		"else":       types.ELSE,
		"return":     types.RETURN,
		"foobar":     types.IDENT,
		"_":          types.IDENT,
		"snake_case": types.IDENT,
		"Let":        types.IDENT,
		"lets":       types.IDENT,
		"returnfn":   types.IDENT,
	}

	for input, kind := range tests {
		checkTokens(t, input, []testToken{{kind, input}, {types.EOF, ""}})
	}
}

func TestDigits(t *testing.T) {
	for _, input := range []string{"0", "5", "007", "838383", "99999999999999999999999999"} {
		checkTokens(t, input, []testToken{{types.INT, input}, {types.EOF, ""}})
	}
}

func TestIdentifiersStopAtDigits(t *testing.T) {
	checkTokens(t, "x1", []testToken{{types.IDENT, "x"}, {types.INT, "1"}, {types.EOF, ""}})
}

func TestTwoCharOperators(t *testing.T) {
	checkTokens(t, "== != = ! =!", []testToken{
		{types.EQ, "=="},
		{types.NOT_EQ, "!="},
		{types.ASSIGN, "="},
		{types.BANG, "!"},
		{types.ASSIGN, "="},
		{types.BANG, "!"},
		{types.EOF, ""},
	})
	checkTokens(t, "!", []testToken{{types.BANG, "!"}, {types.EOF, ""}})
	checkTokens(t, "=", []testToken{{types.ASSIGN, "="}, {types.EOF, ""}})
}

func TestIllegal(t *testing.T) {
	checkTokens(t, "a\tb\r@", []testToken{
		{types.IDENT, "a"},
		{types.ILLEGAL, "\t"},
		{types.IDENT, "b"},
		{types.ILLEGAL, "\r"},
		{types.ILLEGAL, "@"},
		{types.EOF, ""},
	})
}

func TestIllegalNonASCII(t *testing.T) {
	checkTokens(t, "é+日\xffx", []testToken{
		{types.ILLEGAL, "é"},
		{types.PLUS, "+"},
		{types.ILLEGAL, "日"},
		{types.ILLEGAL, "\xff"},
		{types.IDENT, "x"},
		{types.EOF, ""},
	})

	l := New("é + 1", "test")
	l.NextToken()
	if tok := l.NextToken(); tok.Location.From.Column != 3 {
		t.Errorf("expected + at column 3, got %s", tok.Location)
	}
}

func TestEOFIsIdempotent(t *testing.T) {
	for _, input := range []string{"", "   \n ", "let", "x == y"} {
		l := New(input, "test")
		for l.NextToken().Kind != types.EOF {
		}

		for i := 0; i < 5; i++ {
			tok := l.NextToken()
			if tok.Kind != types.EOF || tok.Literal != "" {
				t.Fatalf("%q: call %d after EOF returned %s", input, i, tok)
			}
		}
	}
}

func TestLocations(t *testing.T) {
	l := New("let x\n  == 10", "loc.mk")

	expected := []types.Span{
		{From: types.Position{Line: 1, Column: 1, Filename: "loc.mk"}, To: types.Position{Line: 1, Column: 3, Filename: "loc.mk"}},
		{From: types.Position{Line: 1, Column: 5, Filename: "loc.mk"}, To: types.Position{Line: 1, Column: 5, Filename: "loc.mk"}},
		{From: types.Position{Line: 2, Column: 3, Filename: "loc.mk"}, To: types.Position{Line: 2, Column: 4, Filename: "loc.mk"}},
		{From: types.Position{Line: 2, Column: 6, Filename: "loc.mk"}, To: types.Position{Line: 2, Column: 7, Filename: "loc.mk"}},
	}

	for i, exp := range expected {
		tok := l.NextToken()
		if tok.Location != exp {
			t.Errorf("token %d (%s): expected location %s, got %s", i, tok, exp, tok.Location)
		}
	}

	if got := l.NextToken().Location.String(); !strings.HasPrefix(got, "loc.mk:2:") {
		t.Errorf("unexpected EOF location %s", got)
	}
}

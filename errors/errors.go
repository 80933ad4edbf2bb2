package errors

import (
	"fmt"

	"github.com/pontaoski/monkey/types"
)

type ExpectedKindGotKind struct {
	Expected types.TokenKind
	Got      types.TokenKind
	Location types.Span
}

func (e ExpectedKindGotKind) Error() string {
	return fmt.Sprintf("expected next token to be %s, got %s instead. %s", e.Expected, e.Got, e.Location)
}

type NoPrefixParseFn struct {
	Kind     types.TokenKind
	Location types.Span
}

func (e NoPrefixParseFn) Error() string {
	return fmt.Sprintf("no prefix parse function for %s found. %s", e.Kind, e.Location)
}

type InvalidInteger struct {
	Literal  string
	Location types.Span
}

func (e InvalidInteger) Error() string {
	return fmt.Sprintf("could not parse %q as integer. %s", e.Literal, e.Location)
}

// NestingTooDeep is reported once when expressions nest past the parser's
// depth limit.
type NestingTooDeep struct {
	Limit    int
	Location types.Span
}

func (e NestingTooDeep) Error() string {
	return fmt.Sprintf("expression nested too deeply (limit %d). %s", e.Limit, e.Location)
}

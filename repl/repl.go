package repl

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/peterh/liner"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/monkey/config"
	"github.com/pontaoski/monkey/lexer"
	"github.com/pontaoski/monkey/parser"
	"github.com/pontaoski/monkey/types"
)

// LineReader is the part of *liner.State the REPL uses.
type LineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Start reads lines until the quit sentinel or end of input. Each line is
// handled with a fresh lexer and parser.
func Start(in LineReader, out io.Writer, s config.Settings) error {
	for {
		line, err := in.Prompt(s.Prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return tracerr.Wrap(err)
		}

		if line == s.Quit {
			return nil
		}
		in.AppendHistory(line)

		switch s.Mode {
		case config.ModeTokens:
			PrintTokens(out, lexer.New(line, "stdin"))
		default:
			PrintProgram(out, line, s.MaxDepth)
		}
	}
}

// PrintTokens writes one row per token until EOF.
func PrintTokens(out io.Writer, l *lexer.Lexer) {
	for tok := l.NextToken(); tok.Kind != types.EOF; tok = l.NextToken() {
		fmt.Fprintf(out, "%12s | %s\n", tok.Literal, tok.Kind)
	}
}

// PrintProgram parses line and writes either its diagnostics or the
// rendered program. It reports whether the line parsed cleanly.
func PrintProgram(out io.Writer, line string, maxDepth int) bool {
	p := parser.New(lexer.New(line, "stdin"), parser.WithMaxDepth(maxDepth))
	program := p.ParseProgram()

	if errs := p.Errors(); len(errs) != 0 {
		PrintErrors(out, errs)
		return false
	}

	fmt.Fprintln(out, program.String())
	return true
}

func PrintErrors(out io.Writer, errs []string) {
	fmt.Fprintln(out, "parser errors:")
	for _, msg := range errs {
		fmt.Fprintf(out, "\t%s\n", msg)
	}
}

// Terminal is a liner session that saves its history on Close.
type Terminal struct {
	*liner.State
	history string
}

func NewTerminal(history string) *Terminal {
	t := &Terminal{State: liner.NewLiner(), history: history}
	t.SetCtrlCAborts(true)

	if history != "" {
		if err := t.loadHistory(); err != nil {
			log.Printf("reading history: %v", err)
		}
	}
	return t
}

// loadHistory reads the history file. A file that does not exist yet is
// not an error.
func (t *Terminal) loadHistory() error {
	f, err := os.Open(t.history)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = t.ReadHistory(f)
	return err
}

func (t *Terminal) saveHistory() error {
	f, err := os.Create(t.history)
	if err != nil {
		return err
	}

	if _, err := t.WriteHistory(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (t *Terminal) Close() error {
	if t.history != "" {
		if err := t.saveHistory(); err != nil {
			log.Printf("writing history: %v", err)
		}
	}
	return t.State.Close()
}

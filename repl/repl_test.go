package repl

import (
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/peterh/liner"

	"github.com/pontaoski/monkey/config"
)

type scriptedReader struct {
	lines   []string
	errs    map[int]error
	prompts []string
	history []string
}

func (r *scriptedReader) Prompt(prompt string) (string, error) {
	n := len(r.prompts)
	r.prompts = append(r.prompts, prompt)

	if err, ok := r.errs[n]; ok {
		return "", err
	}
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) AppendHistory(item string) {
	r.history = append(r.history, item)
}

func run(t *testing.T, s config.Settings, lines ...string) (string, *scriptedReader) {
	t.Helper()

	in := &scriptedReader{lines: lines}
	var out strings.Builder
	if err := Start(in, &out, s); err != nil {
		t.Fatal(err)
	}
	return out.String(), in
}

func TestTokensMode(t *testing.T) {
	s := config.Default()
	s.Mode = config.ModeTokens

	out, _ := run(t, s, "let five = 5;")

	expected := "" +
		"         let | LET\n" +
		"        five | IDENT\n" +
		"           = | ASSIGN\n" +
		"           5 | INT\n" +
		"           ; | SEMICOLON\n"
	if out != expected {
		t.Errorf("expected\n%s\ngot\n%s", expected, out)
	}
}

func TestASTMode(t *testing.T) {
	out, in := run(t, config.Default(), "let x = 1 + 2 * 3;", "let = 5;", "foobar")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("unexpected output %q", out)
	}
	if lines[0] != "let x = (1 + (2 * 3));" {
		t.Errorf("unexpected rendering %q", lines[0])
	}
	if lines[1] != "parser errors:" || !strings.HasPrefix(lines[2], "\texpected next token to be IDENT, got ASSIGN instead.") {
		t.Errorf("unexpected diagnostics %q", lines[1:3])
	}
	if lines[3] != "foobar" {
		t.Errorf("unexpected rendering %q", lines[3])
	}

	if len(in.history) != 3 {
		t.Errorf("expected 3 history entries, got %q", in.history)
	}
}

func TestQuitSentinel(t *testing.T) {
	out, in := run(t, config.Default(), "1", "q", "2")

	if out != "1\n" {
		t.Errorf("lines after q were handled: %q", out)
	}
	if len(in.lines) != 1 {
		t.Errorf("expected the line after q to stay unread, got %q", in.lines)
	}
	for _, p := range in.prompts {
		if p != ">> " {
			t.Errorf("unexpected prompt %q", p)
		}
	}
}

func TestAbortedPromptContinues(t *testing.T) {
	in := &scriptedReader{
		lines: []string{"x"},
		errs:  map[int]error{0: liner.ErrPromptAborted},
	}
	var out strings.Builder
	if err := Start(in, &out, config.Default()); err != nil {
		t.Fatal(err)
	}
	if out.String() != "x\n" {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestReadErrorIsReturned(t *testing.T) {
	in := &scriptedReader{errs: map[int]error{0: io.ErrUnexpectedEOF}}
	if err := Start(in, io.Discard, config.Default()); err == nil {
		t.Fatal("expected an error")
	}
}

func TestHistoryErrorsAreLogged(t *testing.T) {
	var logged strings.Builder
	log.SetOutput(&logged)
	defer log.SetOutput(os.Stderr)

	missing := filepath.Join(t.TempDir(), "no-such-dir", "history")
	term := NewTerminal(missing)
	if logged.Len() != 0 {
		t.Errorf("a missing history file should not be reported, got %q", logged.String())
	}

	term.AppendHistory("let x = 1;")
	term.Close()
	if !strings.Contains(logged.String(), "writing history") {
		t.Errorf("expected the failed write to be logged, got %q", logged.String())
	}
}

func TestHistoryIsSaved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	term := NewTerminal(path)
	term.AppendHistory("let x = 1;")
	if err := term.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "let x = 1;\n" {
		t.Errorf("unexpected history file %q", data)
	}
}

package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/alecthomas/repr"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/monkey/config"
	"github.com/pontaoski/monkey/lexer"
	"github.com/pontaoski/monkey/parser"
	"github.com/pontaoski/monkey/repl"
)

func settings(c *cli.Context) (config.Settings, error) {
	path := c.String("config")
	if c.IsSet("config") {
		return config.Load(path)
	}
	return config.LoadOrDefault(path)
}

func readSource(c *cli.Context) (string, string, error) {
	file := c.Args().First()
	if file == "" {
		return "", "", cli.Exit("no file provided", 2)
	}

	data, err := ioutil.ReadFile(file)
	if err != nil {
		return "", "", tracerr.Wrap(err)
	}
	return string(data), filepath.Base(file), nil
}

func runRepl(c *cli.Context) error {
	s, err := settings(c)
	if err != nil {
		return err
	}
	if mode := c.String("mode"); mode != "" {
		s.Mode = config.Mode(mode)
		if err := s.Validate(); err != nil {
			return cli.Exit(err, 2)
		}
	}

	term := repl.NewTerminal(s.History)
	defer term.Close()

	fmt.Fprintln(c.App.Writer, "Hello! Welcome to the Monkey Programming Language REPL.")
	fmt.Fprintf(c.App.Writer, "enter '%s' to exit\n", s.Quit)

	return repl.Start(term, c.App.Writer, s)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "monkey",
		Usage:     "monkey lexer and parser",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "settings file (YAML, or TOML with a .toml extension)",
				Value: config.DefaultPath,
			},
		},
		Action: runRepl,
		Commands: []*cli.Command{
			{
				Name:  "repl",
				Usage: "read lines from the terminal and print their tokens or syntax tree",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "mode",
						Usage: "tokens or ast",
					},
				},
				Action: runRepl,
			},
			{
				Name:      "lex",
				Usage:     "print the tokens of a file",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					src, name, err := readSource(c)
					if err != nil {
						return err
					}

					repl.PrintTokens(c.App.Writer, lexer.New(src, name))
					return nil
				},
			},
			{
				Name:      "parse",
				Usage:     "parse a file and print its syntax tree",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "dump",
						Usage: "dump the AST structure instead of rendering it",
						Value: false,
					},
					&cli.IntFlag{
						Name:  "max-depth",
						Usage: "maximum expression nesting",
					},
				},
				Action: func(c *cli.Context) error {
					s, err := settings(c)
					if err != nil {
						return err
					}
					if c.IsSet("max-depth") {
						s.MaxDepth = c.Int("max-depth")
						if err := s.Validate(); err != nil {
							return cli.Exit(err, 2)
						}
					}

					src, name, err := readSource(c)
					if err != nil {
						return err
					}

					p := parser.New(lexer.New(src, name), parser.WithMaxDepth(s.MaxDepth))
					program := p.ParseProgram()

					if errs := p.Errors(); len(errs) != 0 {
						repl.PrintErrors(c.App.ErrWriter, errs)
						return cli.Exit("", 1)
					}

					if c.Bool("dump") {
						repr.New(c.App.Writer).Println(program)
						return nil
					}
					fmt.Fprintln(c.App.Writer, program.String())
					return nil
				},
			},
			{
				Name:      "init",
				Usage:     "write a default settings file",
				ArgsUsage: "[PATH]",
				Action: func(c *cli.Context) error {
					path := c.Args().First()
					if path == "" {
						path = config.DefaultPath
					}
					if _, err := os.Stat(path); err == nil {
						return cli.Exit(fmt.Sprintf("%s already exists", path), 1)
					}

					if err := config.Write(path, config.Default()); err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "wrote %s\n", path)
					return nil
				},
			},
		},
	}
}

// exitOnError ends the process for any error a command returns. Exit codes
// carried by cli.Exit are kept, everything else exits 1 with a trace.
func exitOnError(c *cli.Context, err error) {
	if err == nil {
		return
	}
	if coder, ok := err.(cli.ExitCoder); ok {
		if msg := coder.Error(); msg != "" {
			fmt.Fprintln(c.App.ErrWriter, msg)
		}
		os.Exit(coder.ExitCode())
	}
	tracerr.PrintSourceColor(err)
	os.Exit(1)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("monkey: ")

	app := newApp(os.Stdout, os.Stderr)
	app.ExitErrHandler = exitOnError

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

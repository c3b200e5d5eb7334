// Command glox runs Lox source: interactively as a REPL, or as a
// one-shot script when given a file path.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/loxscript/glox"
)

var (
	errorColor  = color.New(color.FgRed)
	bannerColor = color.New(color.FgGreen)
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("glox", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to glox.yaml (default: ./glox.yaml, then $HOME/.glox.yaml)")
	if err := fs.Parse(args); err != nil {
		return 64
	}

	cfg, err := lox.LoadConfig(*configPath)
	if err != nil {
		errorColor.Fprintln(os.Stderr, err.Error())
		return 74
	}

	positional := fs.Args()
	switch len(positional) {
	case 0:
		return runPrompt(cfg)
	case 1:
		return runFile(positional[0], cfg)
	default:
		fmt.Fprintln(os.Stderr, "Usage: glox [script]")
		return 64
	}
}

func runFile(path string, cfg lox.Config) int {
	source, err := os.ReadFile(path)
	if err != nil {
		errorColor.Fprintln(os.Stderr, err.Error())
		return 74
	}

	session := lox.NewSession(os.Stdout, cfg)
	session.Run(string(source))

	if session.HadError() {
		return 64
	}
	if session.HadRuntimeError() {
		return 70
	}
	return 0
}

func runPrompt(cfg lox.Config) int {
	bannerColor.Println("glox — press Ctrl-D to exit")

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(cfg.HistoryFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	session := lox.NewSession(os.Stdout, cfg)

	for {
		source, ok := readStatement(line, cfg)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(source) == "" {
			continue
		}

		line.AppendHistory(strings.ReplaceAll(source, "\n", " "))
		session.Run(source)
		if session.HadError() || session.HadRuntimeError() {
			session.ResetError()
		}
	}
}

// readStatement reads lines until the source has a balanced number of
// braces, so a multi-line function or class body can be entered as one
// unit instead of failing to parse line by line.
func readStatement(line *liner.State, cfg lox.Config) (string, bool) {
	var b strings.Builder
	depth := 0

	for {
		prompt := cfg.Prompt
		if b.Len() > 0 {
			prompt = cfg.ContinuationPrompt
		}
		text, err := line.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(text)
		depth += strings.Count(text, "{") - strings.Count(text, "}")

		if depth <= 0 {
			return b.String(), true
		}
	}
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/peterh/liner"

	"github.com/deosjr/twig/config"
	"github.com/deosjr/twig/lisp"
)

const helpText = `REPL commands:
  exit, :quit       Exit the REPL
  :listing [name]   Show user functions, or what name is bound to
  :dump <expr>      Show the structure of the term read from expr
  :help             Show this text
`

var errQuit = errors.New("quit")

// dumper shows the term structure instead of its String rendering.
var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true}

func startREPL(l lisp.Lisp, cfg config.Config) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := historyPath(cfg.HistoryFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		src, ok := readForm(ln, l, cfg.Prompt, cfg.ContinuationPrompt)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if err := handle(os.Stdout, l, src); err != nil {
			if errors.Is(err, errQuit) {
				return 0
			}
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

// readForm keeps prompting while the input so far is an unclosed list.
func readForm(ln *liner.State, l lisp.Lisp, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, err := l.Read(src); lisp.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

// handle evaluates one REPL entry and writes its result to w.
func handle(w io.Writer, l lisp.Lisp, src string) error {
	line := strings.TrimSpace(src)
	if line == "exit" || line == ":quit" {
		return errQuit
	}
	if !strings.HasPrefix(line, ":") {
		e, err := l.Eval(src)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, e)
		return nil
	}
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case ":listing":
		if arg == "" {
			for _, f := range l.Env.Functions() {
				fmt.Fprintln(w, f)
			}
			return nil
		}
		s, ok := l.Env.Listing(lisp.Atom(arg))
		if !ok {
			return fmt.Errorf("%w: %s", lisp.ErrUnboundOperator, arg)
		}
		fmt.Fprintln(w, s)
	case ":dump":
		t, err := l.Read(arg)
		if err != nil {
			return err
		}
		fmt.Fprint(w, dumper.Sdump(t))
	case ":help":
		fmt.Fprint(w, helpText)
	default:
		return fmt.Errorf("unknown command %s, type :help", cmd)
	}
	return nil
}

func historyPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, name)
}

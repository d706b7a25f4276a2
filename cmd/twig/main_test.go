package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/deosjr/twig/lisp"
	"github.com/deosjr/twig/prelude"
)

func TestHandle(t *testing.T) {
	l := lisp.New()
	if err := prelude.Load(l); err != nil {
		t.Fatal(err)
	}
	for i, tt := range []struct {
		input string
		want  string
	}{
		{input: "(defun double (x) (cons x (cons x ())))", want: "( )\n"},
		{input: "(double a)", want: "( a a )\n"},
		{input: "(reverse (double\n  b))", want: "( b b )\n"},
		{input: ":listing double", want: "( defun double ( x ) ( cons x ( cons x ( ) ) ) )\n"},
		{input: ":listing cond", want: "special form cond\n"},
		{input: ":help", want: helpText},
	} {
		var out bytes.Buffer
		if err := handle(&out, l, tt.input); err != nil {
			t.Errorf("%d) error %v", i, err)
			continue
		}
		if got := out.String(); got != tt.want {
			t.Errorf("%d) got %q want %q", i, got, tt.want)
		}
	}
}

func TestHandleCommands(t *testing.T) {
	l := lisp.New()
	var out bytes.Buffer
	if err := handle(&out, l, ":dump (a (b))"); err != nil {
		t.Fatal(err)
	}
	dump := out.String()
	for _, want := range []string{"(lisp.List) (len=2", "(lisp.Atom) (len=1) \"a\"", "(lisp.Atom) (len=1) \"b\""} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump %q does not contain %q", dump, want)
		}
	}
	// the structure, not the String rendering
	if strings.Contains(dump, "( a ( b ) )") {
		t.Errorf("dump used the String method: %q", dump)
	}
	for i, tt := range []struct {
		input string
		want  error
	}{
		{input: "exit", want: errQuit},
		{input: "  :quit ", want: errQuit},
		{input: ":listing nosuch", want: lisp.ErrUnboundOperator},
		{input: ":dump (a", want: lisp.ErrUnbalancedParentheses},
		{input: "(a))", want: lisp.ErrUnbalancedParentheses},
	} {
		if err := handle(&out, l, tt.input); !errors.Is(err, tt.want) {
			t.Errorf("%d) got %v want %v", i, err, tt.want)
		}
	}
	if err := handle(&out, l, ":frobnicate"); err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.lisp")
	if err := os.WriteFile(good, []byte("(defun id (x) x)\n(id a)\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := lisp.New(lisp.WithStrict())
	if code := runFile(l, good); code != 0 {
		t.Errorf("got exit code %d want 0", code)
	}
	if _, ok := l.Env.Listing("id"); !ok {
		t.Error("id was not defined")
	}
	bad := filepath.Join(dir, "bad.lisp")
	if err := os.WriteFile(bad, []byte("(cons a b)"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code := runFile(l, bad); code != 1 {
		t.Errorf("got exit code %d want 1", code)
	}
	if code := runFile(l, filepath.Join(dir, "missing.lisp")); code != 1 {
		t.Errorf("got exit code %d want 1", code)
	}
}

func TestHistoryPath(t *testing.T) {
	if got := historyPath("/tmp/h"); got != "/tmp/h" {
		t.Errorf("got %s want /tmp/h", got)
	}
	if got := historyPath(".h"); filepath.Base(got) != ".h" {
		t.Errorf("got %s", got)
	}
}

func TestParseFlags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "twig.yml")
	if err := os.WriteFile(cfgPath, []byte("strict: true\ntrace: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	for i, tt := range []struct {
		args    []string
		strict  bool
		literal bool
		prelude bool
		trace   bool
		rest    []string
	}{
		{args: nil, prelude: true},
		{args: []string{"prog.lisp"}, prelude: true, rest: []string{"prog.lisp"}},
		{args: []string{"-literal"}, literal: true},
		{args: []string{"-literal", "-no-prelude=false"}, literal: true},
		{args: []string{"-no-prelude=false", "-literal"}, literal: true},
		{args: []string{"-no-prelude"}},
		{args: []string{"-config", cfgPath}, strict: true, prelude: true, trace: true},
		{args: []string{"-config", cfgPath, "-strict=false"}, prelude: true, trace: true},
	} {
		cfg, rest, err := parseFlags(flag.NewFlagSet("twig", flag.ContinueOnError), tt.args)
		if err != nil {
			t.Errorf("%d) error %v", i, err)
			continue
		}
		if cfg.Strict != tt.strict || cfg.LiteralTextBlocks != tt.literal || cfg.Prelude != tt.prelude || cfg.Trace != tt.trace {
			t.Errorf("%d) got %+v", i, cfg)
		}
		if len(rest) != len(tt.rest) || (len(rest) > 0 && rest[0] != tt.rest[0]) {
			t.Errorf("%d) got args %v want %v", i, rest, tt.rest)
		}
	}
	if _, _, err := parseFlags(flag.NewFlagSet("twig", flag.ContinueOnError), []string{"-config", filepath.Join(dir, "missing.yml")}); err == nil {
		t.Error("expected error for missing config file")
	}
}

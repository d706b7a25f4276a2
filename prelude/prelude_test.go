package prelude

import (
	"testing"

	"github.com/deosjr/twig/lisp"
)

func TestPrelude(t *testing.T) {
	l := lisp.New(lisp.WithStrict())
	if err := Load(l); err != nil {
		t.Fatal(err)
	}
	for i, tt := range []struct {
		input string
		want  string
	}{
		{input: "(null ())", want: "true"},
		{input: "(null a)", want: "( )"},
		{input: "(not ())", want: "true"},
		{input: "(not (quote (a)))", want: "( )"},
		{input: "(and a b)", want: "true"},
		{input: "(and a ())", want: "( )"},
		{input: "(or () b)", want: "true"},
		{input: "(or () ())", want: "( )"},
		{input: "(cadr (quote (a b c)))", want: "b"},
		{input: "(caddr (quote (a b c)))", want: "c"},
		{input: "(last (quote (a b c)))", want: "c"},
		{input: "(last (quote (a)))", want: "a"},
		{input: "(member b (quote (a b c)))", want: "true"},
		{input: "(member d (quote (a b c)))", want: "( )"},
		{input: "(member d ())", want: "( )"},
		{input: "(append (quote (a b)) (quote (c)))", want: "( a b c )"},
		{input: "(reverse (quote (a b c)))", want: "( c b a )"},
		{input: "(reverse ())", want: "( )"},
	} {
		e, err := l.Eval(tt.input)
		if err != nil {
			t.Errorf("%d) eval error %v", i, err)
			continue
		}
		got := e.String()
		if got != tt.want {
			t.Errorf("%d) got %s want %s", i, got, tt.want)
		}
	}
}

func TestPreludeDefinesEveryFunction(t *testing.T) {
	l := lisp.New()
	if err := Load(l); err != nil {
		t.Fatal(err)
	}
	if got, want := len(l.Env.Functions()), len(prelude); got != want {
		t.Errorf("got %d functions want %d", got, want)
	}
}

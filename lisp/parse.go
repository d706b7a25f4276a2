package lisp

import (
	"fmt"
	"os"
	"strings"
	"unicode"
)

// ParseFile slurps in the entire file and returns its top-level forms.
func ParseFile(filename string) ([]Term, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Multiparse(string(b))
}

// Multiparse reads every top-level form in program.
func Multiparse(program string) ([]Term, error) {
	return reader{maxDepth: defaultMaxDepth}.multiparse(program)
}

// Read reads exactly one form. Empty input reads as the empty list.
func Read(program string) (Term, error) {
	return reader{maxDepth: defaultMaxDepth}.read(program)
}

func mustParse(program string) Term {
	t, err := Read(program)
	if err != nil {
		panic(err)
	}
	return t
}

type tokenKind uint8

const (
	textBlock tokenKind = iota
	openParen
	closeParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type reader struct {
	// literal keeps every text block as one atom, whitespace included
	literal  bool
	maxDepth int
}

func (r reader) read(program string) (Term, error) {
	forms, err := r.multiparse(program)
	if err != nil {
		return nil, err
	}
	switch len(forms) {
	case 0:
		return Nil(), nil
	case 1:
		return forms[0], nil
	}
	return nil, fmt.Errorf("%w: read %d top-level forms", ErrTrailingForms, len(forms))
}

func (r reader) multiparse(program string) ([]Term, error) {
	p := &parser{tokens: r.tokenize(program), maxDepth: r.maxDepth}
	forms := []Term{}
	for p.i < len(p.tokens) {
		t, err := p.form(0)
		if err != nil {
			return nil, err
		}
		forms = append(forms, t)
	}
	return forms, nil
}

// tokenize classifies every character as '(', ')' or part of a text block.
// A pending text block is flushed before each parenthesis and at the end.
func (r reader) tokenize(program string) []token {
	var tokens []token
	var text strings.Builder
	start := 0
	flush := func() {
		if text.Len() == 0 {
			return
		}
		s := text.String()
		text.Reset()
		if r.literal {
			tokens = append(tokens, token{kind: textBlock, text: s, pos: start})
			return
		}
		off := 0
		for _, f := range strings.FieldsFunc(s, unicode.IsSpace) {
			idx := strings.Index(s[off:], f)
			tokens = append(tokens, token{kind: textBlock, text: f, pos: start + off + idx})
			off += idx + len(f)
		}
	}
	for i, c := range program {
		switch c {
		case '(':
			flush()
			tokens = append(tokens, token{kind: openParen, pos: i})
		case ')':
			flush()
			tokens = append(tokens, token{kind: closeParen, pos: i})
		default:
			if text.Len() == 0 {
				start = i
			}
			text.WriteRune(c)
		}
	}
	flush()
	return tokens
}

type parser struct {
	tokens   []token
	i        int
	maxDepth int
}

// form consumes one complete form, recursing into lists depth-first.
func (p *parser) form(depth int) (Term, error) {
	if p.maxDepth > 0 && depth > p.maxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrDepthExceeded, p.maxDepth)
	}
	t := p.tokens[p.i]
	p.i++
	switch t.kind {
	case textBlock:
		return Atom(t.text), nil
	case closeParen:
		return nil, fmt.Errorf("%w: unexpected ')' at offset %d", ErrUnbalancedParentheses, t.pos)
	}
	list := List{}
	for p.i < len(p.tokens) {
		if p.tokens[p.i].kind == closeParen {
			p.i++
			return list, nil
		}
		child, err := p.form(depth + 1)
		if err != nil {
			return nil, err
		}
		list = append(list, child)
	}
	return nil, fmt.Errorf("%w opened at offset %d", ErrUnclosedList, t.pos)
}

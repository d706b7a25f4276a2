package lisp

import "strings"

// Term is either an Atom or a List. There are no other implementations.
type Term interface {
	IsAtom() bool
	IsList() bool
	AsAtom() Atom
	AsList() List
	String() string
}

// Atom is an opaque symbolic token. Numbers are atoms too.
type Atom string

// List is an ordered sequence of terms. The empty list doubles as false.
type List []Term

// True is what predicates return on success.
const True = Atom("true")

func (a Atom) IsAtom() bool { return true }
func (a Atom) IsList() bool { return false }
func (a Atom) AsAtom() Atom { return a }
func (a Atom) AsList() List {
	panic("not a list: " + string(a))
}
func (a Atom) String() string { return string(a) }

func (l List) IsAtom() bool { return false }
func (l List) IsList() bool { return true }
func (l List) AsAtom() Atom {
	panic("not an atom: " + l.String())
}
func (l List) AsList() List { return l }

func (l List) String() string {
	var sb strings.Builder
	l.render(&sb)
	return sb.String()
}

func (l List) render(sb *strings.Builder) {
	sb.WriteString("( ")
	for _, t := range l {
		if sub, ok := t.(List); ok {
			sub.render(sb)
		} else {
			sb.WriteString(t.String())
		}
		sb.WriteByte(' ')
	}
	sb.WriteByte(')')
}

func NewList(items ...Term) List {
	l := make(List, len(items))
	copy(l, items)
	return l
}

// Nil returns the empty list.
func Nil() List {
	return List{}
}

func IsNil(t Term) bool {
	l, ok := t.(List)
	return ok && len(l) == 0
}

// Equal reports deep structural equality.
func Equal(a, b Term) bool {
	switch x := a.(type) {
	case Atom:
		y, ok := b.(Atom)
		return ok && x == y
	case List:
		y, ok := b.(List)
		if !ok || len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	}
	return false
}

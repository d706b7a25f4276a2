package lisp

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
)

// Locals binds formal parameter names to actual arguments by position.
type Locals struct {
	Names  []Term
	Values []Term
}

func NewLocals(names, values []Term) *Locals {
	return &Locals{Names: names, Values: values}
}

func (l *Locals) resolve(a Atom) Term {
	if l == nil {
		return a
	}
	for i, n := range l.Names {
		if Equal(n, a) && i < len(l.Values) {
			return l.Values[i]
		}
	}
	return a
}

// DefinedFunc is a function registered by defun.
type DefinedFunc struct {
	Name   Atom
	Params List
	Body   Term
}

func (f DefinedFunc) String() string {
	return NewList(Atom("defun"), f.Name, f.Params, f.Body).String()
}

// Env holds the two function tables consulted by the evaluator.
// The builtin table is shared and never written; defun is the only writer
// of the user table.
type Env struct {
	builtins map[Atom]builtin

	mu   sync.RWMutex
	user map[Atom]DefinedFunc

	out io.Writer
}

func GlobalEnv() *Env {
	return &Env{
		builtins: globalBuiltins,
		user:     map[Atom]DefinedFunc{},
		out:      os.Stdout,
	}
}

func (e *Env) define(f DefinedFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.user[f.Name] = f
}

func (e *Env) isSpecial(name Atom) bool {
	return e.builtins[name].special
}

// lookup finds the operator for name; user functions shadow builtins.
func (e *Env) lookup(name Atom) (operator, bool) {
	e.mu.RLock()
	f, ok := e.user[name]
	e.mu.RUnlock()
	if ok {
		return f.apply, true
	}
	b, ok := e.builtins[name]
	if !ok || b.proc == nil {
		return nil, false
	}
	return b.proc, true
}

// Functions returns every user function, sorted by name.
func (e *Env) Functions() []DefinedFunc {
	e.mu.RLock()
	defer e.mu.RUnlock()
	fs := make([]DefinedFunc, 0, len(e.user))
	for _, f := range e.user {
		fs = append(fs, f)
	}
	sort.Slice(fs, func(i, j int) bool { return fs[i].Name < fs[j].Name })
	return fs
}

// Listing describes what name is bound to.
func (e *Env) Listing(name Atom) (string, bool) {
	e.mu.RLock()
	f, ok := e.user[name]
	e.mu.RUnlock()
	if ok {
		return f.String(), true
	}
	if b, ok := e.builtins[name]; ok {
		if b.special {
			return fmt.Sprintf("special form %s", name), true
		}
		return fmt.Sprintf("builtin func %s", name), true
	}
	return "", false
}

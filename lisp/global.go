package lisp

import "fmt"

type builtin struct {
	// special forms receive their arguments unevaluated
	special bool
	proc    operator
}

var globalBuiltins = map[Atom]builtin{
	"quote":   {special: true, proc: quote},
	"cond":    {special: true, proc: cond},
	"defun":   {special: true, proc: defun},
	"lambda":  {special: true},
	"car":     {proc: car},
	"cdr":     {proc: cdr},
	"cons":    {proc: cons},
	"equal":   {proc: equal},
	"atom":    {proc: atom},
	"list":    {proc: list},
	"println": {proc: printlnFunc},
	"eval":    {proc: eval},
}

func quote(ev *evaluator, form List, locals *Locals) (Term, error) {
	if len(form) != 2 {
		return ev.fail(arity(form, "1"))
	}
	return form[1], nil
}

func car(ev *evaluator, form List, locals *Locals) (Term, error) {
	if len(form) != 2 {
		return ev.fail(arity(form, "1"))
	}
	if !form[1].IsList() || len(form[1].AsList()) == 0 {
		return ev.fail(malformed(form, "car of empty list or atom"))
	}
	return form[1].AsList()[0], nil
}

func cdr(ev *evaluator, form List, locals *Locals) (Term, error) {
	if len(form) != 2 {
		return ev.fail(arity(form, "1"))
	}
	if !form[1].IsList() {
		return ev.fail(malformed(form, "cdr of atom"))
	}
	elems := form[1].AsList()
	if len(elems) < 2 {
		return Nil(), nil
	}
	return NewList(elems[1:]...), nil
}

// (cons a l) re-evaluates a, which must yield an atom.
func cons(ev *evaluator, form List, locals *Locals) (Term, error) {
	if len(form) != 3 {
		return ev.fail(arity(form, "2"))
	}
	if !form[2].IsList() {
		return ev.fail(malformed(form, "second argument is not a list"))
	}
	head, err := ev.eval(form[1], locals)
	if err != nil {
		return nil, err
	}
	if !head.IsAtom() {
		return ev.fail(malformed(form, "first argument is not an atom"))
	}
	return append(List{head}, form[2].AsList()...), nil
}

// (cond (test result) ...) evaluates tests until one is not the empty list.
func cond(ev *evaluator, form List, locals *Locals) (Term, error) {
	if len(form) < 2 {
		return ev.fail(arity(form, "at least 1"))
	}
	for _, clause := range form[1:] {
		if !clause.IsList() || len(clause.AsList()) != 2 {
			return ev.fail(malformed(form, fmt.Sprintf("clause %s is not (test result)", clause)))
		}
		c := clause.AsList()
		test, err := ev.eval(c[0], locals)
		if err != nil {
			return nil, err
		}
		if !IsNil(test) {
			return ev.eval(c[1], locals)
		}
	}
	return Nil(), nil
}

// (defun name (params ...) body)
func defun(ev *evaluator, form List, locals *Locals) (Term, error) {
	if len(form) != 4 {
		return ev.fail(arity(form, "3"))
	}
	if !form[1].IsAtom() {
		return ev.fail(malformed(form, "function name is not an atom"))
	}
	if !form[2].IsList() {
		return ev.fail(malformed(form, "parameters are not a list"))
	}
	f := DefinedFunc{
		Name:   form[1].AsAtom(),
		Params: form[2].AsList(),
		Body:   form[3],
	}
	ev.env.define(f)
	ev.logger.Printf("defun %s %s", f.Name, f.Params)
	return Nil(), nil
}

func equal(ev *evaluator, form List, locals *Locals) (Term, error) {
	if len(form) != 3 {
		return ev.fail(arity(form, "2"))
	}
	a, err := ev.eval(form[1], locals)
	if err != nil {
		return nil, err
	}
	b, err := ev.eval(form[2], locals)
	if err != nil {
		return nil, err
	}
	return boolean(Equal(a, b)), nil
}

func atom(ev *evaluator, form List, locals *Locals) (Term, error) {
	if len(form) != 2 {
		return ev.fail(arity(form, "1"))
	}
	x, err := ev.eval(form[1], locals)
	if err != nil {
		return nil, err
	}
	return boolean(x.IsAtom()), nil
}

// list splats list arguments and keeps atoms as they are.
func list(ev *evaluator, form List, locals *Locals) (Term, error) {
	res := List{}
	for _, e := range form[1:] {
		if e.IsList() {
			res = append(res, e.AsList()...)
			continue
		}
		res = append(res, e)
	}
	return res, nil
}

func printlnFunc(ev *evaluator, form List, locals *Locals) (Term, error) {
	if len(form) < 2 {
		return ev.fail(arity(form, "1"))
	}
	x, err := ev.eval(form[1], locals)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(ev.env.out, x)
	return Nil(), nil
}

func eval(ev *evaluator, form List, locals *Locals) (Term, error) {
	if len(form) != 2 {
		return ev.fail(arity(form, "1"))
	}
	return ev.eval(form[1], locals)
}

func boolean(b bool) Term {
	if b {
		return True
	}
	return Nil()
}

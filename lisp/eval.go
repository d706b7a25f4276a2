package lisp

import (
	"fmt"
	"log"
	"strconv"
)

type operator func(ev *evaluator, form List, locals *Locals) (Term, error)

// evaluator carries the state of a single evaluation call.
// The Env it points to may be shared between evaluators.
type evaluator struct {
	env      *Env
	strict   bool
	maxDepth int
	depth    int
	logger   *log.Logger
}

func (ev *evaluator) eval(t Term, locals *Locals) (Term, error) {
	ev.depth++
	defer func() { ev.depth-- }()
	if ev.maxDepth > 0 && ev.depth > ev.maxDepth {
		return nil, fmt.Errorf("%w: evaluating %s", ErrDepthExceeded, t)
	}
	if t.IsAtom() {
		return locals.resolve(t.AsAtom()), nil
	}
	elems := t.AsList()
	form := elems
	// special forms get their arguments as written
	if len(elems) < 2 || !elems[0].IsAtom() || !ev.env.isSpecial(elems[0].AsAtom()) {
		form = make(List, len(elems))
		for i, e := range elems {
			v, err := ev.eval(e, locals)
			if err != nil {
				return nil, err
			}
			form[i] = v
		}
	}
	if len(form) == 0 || !form[0].IsAtom() {
		return form, nil
	}
	op, ok := ev.env.lookup(form[0].AsAtom())
	if !ok {
		return form, nil
	}
	return op(ev, form, locals)
}

// fail applies the error policy: strict evaluators return err,
// soft ones degrade to the empty list.
func (ev *evaluator) fail(err error) (Term, error) {
	if ev.strict {
		return nil, err
	}
	ev.logger.Printf("soft failure: %v", err)
	return Nil(), nil
}

// apply evaluates the body with the parameters bound to the arguments.
// The caller's locals are not visible inside the body.
func (f DefinedFunc) apply(ev *evaluator, form List, _ *Locals) (Term, error) {
	args := form[1:]
	if len(args) != len(f.Params) {
		return ev.fail(arity(form, strconv.Itoa(len(f.Params))))
	}
	return ev.eval(f.Body, NewLocals(f.Params, args))
}

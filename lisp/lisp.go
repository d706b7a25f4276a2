package lisp

import (
	"fmt"
	"io"
	"log"
)

const defaultMaxDepth = 10000

type Lisp struct {
	Env    *Env
	reader reader
	strict bool
	logger *log.Logger
}

type Option func(*Lisp)

// WithOutput sets where println writes.
func WithOutput(w io.Writer) Option {
	return func(l *Lisp) { l.Env.out = w }
}

// WithStrict makes malformed forms return typed errors instead of the empty list.
func WithStrict() Option {
	return func(l *Lisp) { l.strict = true }
}

// WithLiteralTextBlocks stops the reader from splitting text blocks on whitespace.
func WithLiteralTextBlocks() Option {
	return func(l *Lisp) { l.reader.literal = true }
}

// WithMaxDepth caps nesting for both reading and evaluation. Zero means no cap.
func WithMaxDepth(n int) Option {
	return func(l *Lisp) { l.reader.maxDepth = n }
}

func WithLogger(logger *log.Logger) Option {
	return func(l *Lisp) {
		if logger != nil {
			l.logger = logger
		}
	}
}

func New(opts ...Option) Lisp {
	l := Lisp{
		Env:    GlobalEnv(),
		reader: reader{maxDepth: defaultMaxDepth},
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l
}

func (l Lisp) Strict() bool {
	return l.strict
}

func (l Lisp) Read(input string) (Term, error) {
	return l.reader.read(input)
}

func (l Lisp) Multiparse(input string) ([]Term, error) {
	return l.reader.multiparse(input)
}

func (l Lisp) Eval(input string) (Term, error) {
	t, err := l.Read(input)
	if err != nil {
		return nil, err
	}
	return l.EvalExpr(t)
}

func (l Lisp) EvalExpr(t Term) (Term, error) {
	return l.EvalWith(t, nil)
}

// EvalWith evaluates t with the given parameter bindings in scope.
func (l Lisp) EvalWith(t Term, locals *Locals) (Term, error) {
	return l.evaluator().eval(t, locals)
}

// Call applies the operator bound to name to already evaluated arguments.
func (l Lisp) Call(name string, args ...Term) (Term, error) {
	op, ok := l.Env.lookup(Atom(name))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnboundOperator, name)
	}
	form := append(List{Atom(name)}, args...)
	return op(l.evaluator(), form, nil)
}

func (l Lisp) evaluator() *evaluator {
	return &evaluator{
		env:      l.Env,
		strict:   l.strict,
		maxDepth: l.reader.maxDepth,
		logger:   l.logger,
	}
}

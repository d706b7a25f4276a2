package lisp

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedForm         = errors.New("malformed form")
	ErrArityMismatch         = errors.New("arity mismatch")
	ErrUnboundOperator       = errors.New("unbound operator")
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")
	ErrDepthExceeded         = errors.New("maximum depth exceeded")
	ErrTrailingForms         = errors.New("more than one form")

	// ErrUnclosedList is the unbalanced case where input ended inside a list.
	ErrUnclosedList = fmt.Errorf("%w: missing ')'", ErrUnbalancedParentheses)
)

// IsIncomplete reports whether err means more input could complete the form.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrUnclosedList)
}

func malformed(form Term, reason string) error {
	return fmt.Errorf("%w %s: %s", ErrMalformedForm, form, reason)
}

func arity(form List, want string) error {
	return fmt.Errorf("%w %s: want %s argument(s), got %d", ErrArityMismatch, form, want, len(form)-1)
}

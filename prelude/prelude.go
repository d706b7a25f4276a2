// Package prelude defines a small library of list functions on top of the
// builtins, written as defun forms.
package prelude

import (
	"strings"

	"github.com/deosjr/twig/lisp"
)

var prelude = []string{
	// cond evaluates its test once, so x is never evaluated a second time
	// the way equal and atom would
	"(defun not (x) (cond (x ()) (true true)))",
	"(defun null (x) (cond (x ()) (true true)))",

	"(defun and (a b) (cond (a (cond (b true) (true ()))) (true ())))",
	"(defun or (a b) (cond (a true) (b true) (true ())))",

	"(defun cadr (l) (car (cdr l)))",
	"(defun caddr (l) (car (cdr (cdr l))))",

	`(defun last (l) (cond
       ((cdr l) (last (cdr l)))
       (true (car l))))`,

	// NOTE: equal evaluates its arguments again, so members that look like
	// calls to a builtin are compared by their result
	`(defun member (x l) (cond
       ((null l) ())
       ((equal x (car l)) true)
       (true (member x (cdr l)))))`,

	// list splats its list arguments, so this concatenates
	"(defun append (a b) (list a b))",

	// list elements that are lists themselves get flattened one level
	`(defun reverse (l) (cond
       ((null l) ())
       (true (list (reverse (cdr l)) (car l)))))`,
}

// Source returns the prelude as a single loadable text.
func Source() string {
	return strings.Join(prelude, "\n")
}

// Load defines the prelude functions in l's environment.
func Load(l lisp.Lisp) error {
	return l.Load(Source())
}

package lisp

import "fmt"

// Load evaluates every top-level form of data in order, stopping at the
// first error.
func (l Lisp) Load(data string) error {
	forms, err := l.Multiparse(data)
	if err != nil {
		return err
	}
	for i, form := range forms {
		if _, err := l.EvalExpr(form); err != nil {
			return fmt.Errorf("form %d %s: %w", i, form, err)
		}
	}
	return nil
}

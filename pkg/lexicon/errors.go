package lexicon

import "fmt"

// UnboundVariableError reports a sentence body referencing a variable no
// enclosing quantifier binds.
type UnboundVariableError struct {
	Variable Variable
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %s", e.Variable)
}

// BoundVariableError reports a quantifier re-binding a variable already
// bound by a surrounding quantifier (shadowing is disallowed).
type BoundVariableError struct {
	Variable Variable
}

func (e *BoundVariableError) Error() string {
	return fmt.Sprintf("variable %s already bound by an enclosing quantifier", e.Variable)
}

// ArityMismatchError reports predicating with the wrong number of parameters.
type ArityMismatchError struct {
	Predicate Predicate
	Got       int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("predicate %s has arity %d, got %d parameters", e.Predicate, e.Predicate.Arity, e.Got)
}

// Common error message formats, exposed as sentinel format strings
// alongside the error types above.
const (
	ErrUnboundVariable = "unbound variable %s in quantified sentence"
	ErrArityMismatch   = "predicate %s expects %d parameters, got %d"
)

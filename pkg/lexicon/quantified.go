package lexicon

import "fmt"

// Quantified binds Var in Body with Quant. Invariant: Var occurs free in
// Body, and no Quantified within Body re-binds Var (no shadowing).
type Quantified struct {
	Quant Quantifier
	Var   Variable
	Body  Sentence
}

// NewQuantified validates the binding invariants and constructs the
// sentence.
func NewQuantified(q Quantifier, v Variable, body Sentence) (Quantified, error) {
	if !freeVarSet(body)[v] {
		return Quantified{}, &UnboundVariableError{Variable: v}
	}
	if shadows(body, v) {
		return Quantified{}, &BoundVariableError{Variable: v}
	}
	return Quantified{Quant: q, Var: v, Body: body}, nil
}

// shadows reports whether body contains a nested Quantified that re-binds v.
func shadows(body Sentence, v Variable) bool {
	found := false
	walk(body, func(n Sentence) {
		if q, ok := n.(Quantified); ok && q.Var == v {
			found = true
		}
	})
	return found
}

func (Quantified) sentenceNode() {}

func (q Quantified) SortTuple() []int {
	out := []int{rankQuantified, int(q.Quant)}
	out = append(out, q.Var.SortTuple()...)
	out = append(out, q.Body.SortTuple()...)
	return out
}

func (q Quantified) String() string {
	symbol := "∃"
	if q.Quant == Universal {
		symbol = "∀"
	}
	return fmt.Sprintf("%s%s%s", symbol, q.Var, q.Body)
}

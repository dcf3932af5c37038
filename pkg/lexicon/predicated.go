package lexicon

import "strings"

// Predicated is a predicate applied to an ordered tuple of parameters.
type Predicated struct {
	Pred   Predicate
	Params []Parameter
}

// NewPredicated validates len(params) == pred.Arity and constructs the
// sentence.
func NewPredicated(pred Predicate, params []Parameter) (Predicated, error) {
	if len(params) != pred.Arity {
		return Predicated{}, &ArityMismatchError{Predicate: pred, Got: len(params)}
	}
	cp := make([]Parameter, len(params))
	copy(cp, params)
	return Predicated{Pred: pred, Params: cp}, nil
}

func (Predicated) sentenceNode() {}

func (p Predicated) SortTuple() []int {
	out := []int{rankPredicated}
	out = append(out, p.Pred.SortTuple()...)
	for _, param := range p.Params {
		out = append(out, param.SortTuple()...)
	}
	return out
}

func (p Predicated) String() string {
	var b strings.Builder
	b.WriteString(p.Pred.String())
	b.WriteByte('(')
	for i, param := range p.Params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(param.String())
	}
	b.WriteByte(')')
	return b.String()
}

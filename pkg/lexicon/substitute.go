package lexicon

// Substitute returns s with every free occurrence of v replaced by p. Since
// NewQuantified forbids shadowing, v can never be re-bound inside s, so the
// substitution is a straightforward structural recursion.
func Substitute(s Sentence, v Variable, p Parameter) Sentence {
	switch n := s.(type) {
	case Atomic:
		return n
	case Predicated:
		params := make([]Parameter, len(n.Params))
		for i, param := range n.Params {
			if vv, ok := param.(Variable); ok && vv == v {
				params[i] = p
			} else {
				params[i] = param
			}
		}
		out, _ := NewPredicated(n.Pred, params)
		return out
	case Quantified:
		body := Substitute(n.Body, v, p)
		out, _ := NewQuantified(n.Quant, n.Var, body)
		return out
	case Operated:
		operands := make([]Sentence, len(n.Operands))
		for i, o := range n.Operands {
			operands[i] = Substitute(o, v, p)
		}
		out, _ := NewOperated(n.Op, operands)
		return out
	default:
		return s
	}
}

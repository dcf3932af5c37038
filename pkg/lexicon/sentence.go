package lexicon

// Sentence is the sum type of the language: exactly one of Atomic,
// Predicated, Quantified, or Operated implements it. The set of concrete
// variants is closed; dispatch over Sentence is always a type switch, never
// a registered-handler lookup.
type Sentence interface {
	sentenceNode()
	SortTuple() []int
	String() string
}

const (
	rankAtomic     = 10
	rankPredicated = 11
	rankQuantified = 12
	rankOperated   = 13
)

// Negate wraps s in a Negation operator. It never simplifies a double
// negation; callers that want that do it themselves via a type switch.
func Negate(s Sentence) Sentence {
	return Operated{Op: Negation, Operands: []Sentence{s}}
}

// Unnegate strips one leading Negation, returning (s, true) if op was
// Negation(s), or (s, false) unchanged otherwise.
func Unnegate(s Sentence) (Sentence, bool) {
	if op, ok := s.(Operated); ok && op.Op == Negation {
		return op.Operands[0], true
	}
	return s, false
}

// IsNegated reports whether s is a Negation.
func IsNegated(s Sentence) bool {
	op, ok := s.(Operated)
	return ok && op.Op == Negation
}

// Predicates returns the set of predicates occurring in s, sorted and
// deduplicated.
func Predicates(s Sentence) []Predicate {
	seen := map[Predicate]bool{}
	var out []Predicate
	walkPredicated(s, func(p Predicated) {
		if !seen[p.Pred] {
			seen[p.Pred] = true
			out = append(out, p.Pred)
		}
	})
	sortSlice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// Constants returns the set of constants occurring in s.
func Constants(s Sentence) []Constant {
	seen := map[Constant]bool{}
	var out []Constant
	walkParams(s, func(p Parameter) {
		if c, ok := p.(Constant); ok && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	})
	sortSlice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// Variables returns the set of variables occurring anywhere in s (bound or
// free).
func Variables(s Sentence) []Variable {
	seen := map[Variable]bool{}
	var out []Variable
	walkParams(s, func(p Parameter) {
		if v, ok := p.(Variable); ok && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	})
	sortSlice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// FreeVariables returns the variables of s that are not bound by an
// enclosing Quantified within s.
func FreeVariables(s Sentence) []Variable {
	free := freeVarSet(s)
	out := make([]Variable, 0, len(free))
	for v := range free {
		out = append(out, v)
	}
	sortSlice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

func freeVarSet(s Sentence) map[Variable]bool {
	switch t := s.(type) {
	case Atomic:
		return map[Variable]bool{}
	case Predicated:
		out := map[Variable]bool{}
		for _, p := range t.Params {
			if v, ok := p.(Variable); ok {
				out[v] = true
			}
		}
		return out
	case Quantified:
		out := freeVarSet(t.Body)
		delete(out, t.Var)
		return out
	case Operated:
		out := map[Variable]bool{}
		for _, o := range t.Operands {
			for v := range freeVarSet(o) {
				out[v] = true
			}
		}
		return out
	default:
		return map[Variable]bool{}
	}
}

// Atomics returns the set of atomic sentences occurring in s.
func Atomics(s Sentence) []Atomic {
	seen := map[Atomic]bool{}
	var out []Atomic
	walk(s, func(n Sentence) {
		if a, ok := n.(Atomic); ok && !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	})
	sortSlice(out, func(i, j int) bool { return Less(out[i], out[j]) })
	return out
}

// Operators returns the sequence of operators occurring in s, in prefix
// (pre-order) traversal order, NOT deduplicated, unlike the set-valued
// derivations above.
func Operators(s Sentence) []Operator {
	var out []Operator
	walk(s, func(n Sentence) {
		if o, ok := n.(Operated); ok {
			out = append(out, o.Op)
		}
	})
	return out
}

// Quantifiers returns the sequence of quantifiers occurring in s, in
// pre-order traversal order.
func Quantifiers(s Sentence) []Quantifier {
	var out []Quantifier
	walk(s, func(n Sentence) {
		if q, ok := n.(Quantified); ok {
			out = append(out, q.Quant)
		}
	})
	return out
}

// walk visits every Sentence node in s, pre-order.
func walk(s Sentence, visit func(Sentence)) {
	visit(s)
	switch t := s.(type) {
	case Quantified:
		walk(t.Body, visit)
	case Operated:
		for _, o := range t.Operands {
			walk(o, visit)
		}
	}
}

func walkPredicated(s Sentence, visit func(Predicated)) {
	walk(s, func(n Sentence) {
		if p, ok := n.(Predicated); ok {
			visit(p)
		}
	})
}

func walkParams(s Sentence, visit func(Parameter)) {
	walkPredicated(s, func(p Predicated) {
		for _, param := range p.Params {
			visit(param)
		}
	})
}

// sortSlice is a tiny insertion-sort helper kept local to avoid pulling in
// sort.Slice's reflection-based comparator for these small, hot collections.
func sortSlice[T any](s []T, less func(i, j int) bool) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

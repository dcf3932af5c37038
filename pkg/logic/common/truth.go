package common

import (
	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/logic"
)

// kleeneOrder gives the F < mid < T ordering strong/weak Kleene conjunction
// and disjunction are defined over (min and max respectively).
func kleeneOrder(mid logic.TruthValue) map[logic.TruthValue]int {
	return map[logic.TruthValue]int{logic.FalseValue: 0, mid: 1, logic.TrueValue: 2}
}

func fromOrder(order map[logic.TruthValue]int, n int) logic.TruthValue {
	for v, ord := range order {
		if ord == n {
			return v
		}
	}
	return logic.GapValue
}

// StrongKleeneModel implements the Strong Kleene truth tables, parameterized
// by which label ("N" or "B") occupies the middle truth value — shared by
// K3 (mid=N), LP (mid=B), and RM3 (mid=B) (see the
// grounding ledger's documented simplification: these logics are
// distinguished at the Meta/closure level, not by bespoke per-operator
// tables).
type StrongKleeneModel struct {
	LogicName string
	Mid       logic.TruthValue
}

func (m StrongKleeneModel) TruthFunction(op lexicon.Operator, vals ...logic.TruthValue) logic.TruthValue {
	order := kleeneOrder(m.Mid)
	switch op {
	case lexicon.Negation:
		switch vals[0] {
		case logic.TrueValue:
			return logic.FalseValue
		case logic.FalseValue:
			return logic.TrueValue
		default:
			return m.Mid
		}
	case lexicon.Conjunction:
		if order[vals[0]] < order[vals[1]] {
			return vals[0]
		}
		return vals[1]
	case lexicon.Disjunction, lexicon.Conditional, lexicon.Biconditional, lexicon.MaterialConditional, lexicon.MaterialBiconditional:
		return strongDerived(m, op, vals)
	case lexicon.Assertion:
		return vals[0]
	default:
		return m.Mid
	}
}

func strongDerived(m StrongKleeneModel, op lexicon.Operator, vals []logic.TruthValue) logic.TruthValue {
	order := kleeneOrder(m.Mid)
	max2 := func(a, b logic.TruthValue) logic.TruthValue {
		if order[a] > order[b] {
			return a
		}
		return b
	}
	not := func(v logic.TruthValue) logic.TruthValue { return m.TruthFunction(lexicon.Negation, v) }
	switch op {
	case lexicon.Disjunction:
		return max2(vals[0], vals[1])
	case lexicon.MaterialConditional, lexicon.Conditional:
		return max2(not(vals[0]), vals[1])
	case lexicon.MaterialBiconditional, lexicon.Biconditional:
		return m.TruthFunction(lexicon.Conjunction,
			max2(not(vals[0]), vals[1]), max2(not(vals[1]), vals[0]))
	}
	return m.Mid
}

func (m StrongKleeneModel) Quantify(q lexicon.Quantifier, values []logic.TruthValue) logic.TruthValue {
	return quantifyByOrder(kleeneOrder(m.Mid), q, values)
}

// WeakKleeneModel implements the weak (fully contagious) Kleene tables:
// any operand at the middle value makes the whole expression the middle
// value (used by K3W, K3WQ, B3E, L3, G3, GO, MH, P3, NH).
type WeakKleeneModel struct {
	LogicName string
	Mid       logic.TruthValue
}

func (m WeakKleeneModel) TruthFunction(op lexicon.Operator, vals ...logic.TruthValue) logic.TruthValue {
	for _, v := range vals {
		if v == m.Mid {
			return m.Mid
		}
	}
	strong := StrongKleeneModel(m)
	return strong.TruthFunction(op, vals...)
}

func (m WeakKleeneModel) Quantify(q lexicon.Quantifier, values []logic.TruthValue) logic.TruthValue {
	for _, v := range values {
		if v == m.Mid {
			return m.Mid
		}
	}
	return StrongKleeneModel(m).Quantify(q, values)
}

func quantifyByOrder(order map[logic.TruthValue]int, q lexicon.Quantifier, values []logic.TruthValue) logic.TruthValue {
	if len(values) == 0 {
		if q == lexicon.Universal {
			return logic.TrueValue
		}
		return logic.FalseValue
	}
	best := values[0]
	for _, v := range values[1:] {
		if q == lexicon.Existential && order[v] > order[best] {
			best = v
		}
		if q == lexicon.Universal && order[v] < order[best] {
			best = v
		}
	}
	return best
}

// FDEModel implements the four-valued First Degree Entailment bilattice via
// the standard (hasTrue, hasFalse) evidence-pair encoding: T=(true,false),
// F=(false,true), N=(false,false), B=(true,true). Conjunction/disjunction
// are the pair's meet/join; negation swaps the pair.
type FDEModel struct{}

func fdePair(v logic.TruthValue) (hasTrue, hasFalse bool) {
	switch v {
	case logic.TrueValue:
		return true, false
	case logic.FalseValue:
		return false, true
	case logic.GlutValue:
		return true, true
	default:
		return false, false
	}
}

func fdeValue(hasTrue, hasFalse bool) logic.TruthValue {
	switch {
	case hasTrue && hasFalse:
		return logic.GlutValue
	case hasTrue:
		return logic.TrueValue
	case hasFalse:
		return logic.FalseValue
	default:
		return logic.GapValue
	}
}

func (FDEModel) TruthFunction(op lexicon.Operator, vals ...logic.TruthValue) logic.TruthValue {
	t0, f0 := fdePair(vals[0])
	switch op {
	case lexicon.Negation:
		return fdeValue(f0, t0)
	case lexicon.Assertion:
		return vals[0]
	}
	t1, f1 := fdePair(vals[1])
	switch op {
	case lexicon.Conjunction:
		return fdeValue(t0 && t1, f0 || f1)
	case lexicon.Disjunction:
		return fdeValue(t0 || t1, f0 && f1)
	case lexicon.MaterialConditional, lexicon.Conditional:
		nt0, nf0 := f0, t0
		return fdeValue(nt0 || t1, nf0 && f1)
	case lexicon.MaterialBiconditional, lexicon.Biconditional:
		left := FDEModel{}.TruthFunction(lexicon.MaterialConditional, vals[0], vals[1])
		right := FDEModel{}.TruthFunction(lexicon.MaterialConditional, vals[1], vals[0])
		return FDEModel{}.TruthFunction(lexicon.Conjunction, left, right)
	}
	return logic.GapValue
}

func (FDEModel) Quantify(q lexicon.Quantifier, values []logic.TruthValue) logic.TruthValue {
	if len(values) == 0 {
		if q == lexicon.Universal {
			return logic.TrueValue
		}
		return logic.FalseValue
	}
	if q == lexicon.Existential {
		hasTrue, hasFalse := false, true
		for _, v := range values {
			t, f := fdePair(v)
			hasTrue = hasTrue || t
			hasFalse = hasFalse && f
		}
		return fdeValue(hasTrue, hasFalse)
	}
	hasTrue, hasFalse := true, false
	for _, v := range values {
		t, f := fdePair(v)
		hasTrue = hasTrue && t
		hasFalse = hasFalse || f
	}
	return fdeValue(hasTrue, hasFalse)
}

package common

import (
	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/rule"
	"github.com/owings1/pytableaux/pkg/tableau"
)

// Possibility introduces a fresh world w', adds an access node from the
// source world to w', and stamps its operand's content at w'. Non-ticking
// is wrong here: a possibility node is consumed once, so ticking is true.
func Possibility() rule.Rule {
	return &genericRule{name: "Possibility", ticking: true, branching: 0,
		match: rule.SentenceFilter(func(s lexicon.Sentence) bool { return IsOp(s, lexicon.Possibility) }),
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			o, _ := AsOperated(n.Sentence)
			w := *n.World
			wPrime := tb.FreshWorld(b)
			return ApplyLinear(tb, b, n, true,
				tableau.AccessSpec(w, wPrime),
				tableau.SentenceSpec(o.Operands[0]).AtWorld(wPrime))
		}}
}

// Necessity adds its operand's content stamped at every world w'
// accessible from w on the branch, bookkept per (node, world) pair.
// Idempotent and non-ticking, since new accessible worlds may appear later
// in the build.
func Necessity(h *rule.Helpers) rule.Rule {
	return &genericRule{name: "Necessity", ticking: false, branching: 0,
		match:     rule.SentenceFilter(func(s lexicon.Sentence) bool { return IsOp(s, lexicon.Necessity) }),
		exhausted: necessityExhausted(h),
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			o, _ := AsOperated(n.Sentence)
			w := *n.World
			var specs []tableau.NodeSpec
			for _, wPrime := range h.AccessibleWorlds(b, w) {
				c := lexicon.Constant{Index: wPrime}
				if h.HasFired(b, n, c) {
					continue
				}
				h.MarkFired(b, n, c)
				specs = append(specs, tableau.SentenceSpec(o.Operands[0]).AtWorld(wPrime))
			}
			return ApplyLinear(tb, b, n, false, specs...)
		}}
}

// necessityExhausted reports whether n has already fired for every world
// currently accessible from its own world. No accessible worlds yet also
// counts as exhausted: Necessity has nothing to contribute until a
// Possibility or frame-constraint rule introduces one, and a fresh
// accessible world makes the node a candidate again.
func necessityExhausted(h *rule.Helpers) func(b *tableau.Branch, n *tableau.Node) bool {
	return func(b *tableau.Branch, n *tableau.Node) bool {
		w := *n.World
		for _, wPrime := range h.AccessibleWorlds(b, w) {
			c := lexicon.Constant{Index: wPrime}
			if !h.HasFired(b, n, c) {
				return false
			}
		}
		return true
	}
}

// NegatedPossibility rewrites ¬◇A as □¬A at the source world, the De
// Morgan dual of Possibility. Ticking: the source node is consumed once.
func NegatedPossibility() rule.Rule {
	return &genericRule{name: "NegatedPossibility", ticking: true, branching: 0,
		match: rule.SentenceFilter(func(s lexicon.Sentence) bool { return IsNegatedOp(s, lexicon.Possibility) }),
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			inner, _ := NegatedOperand(n.Sentence)
			o, _ := AsOperated(inner)
			necessity := lexicon.Operated{Op: lexicon.Necessity, Operands: []lexicon.Sentence{lexicon.Negate(o.Operands[0])}}
			return ApplyLinear(tb, b, n, true, Carry(n, tableau.SentenceSpec(necessity)))
		}}
}

// NegatedNecessity rewrites ¬□A as ◇¬A at the source world, the De Morgan
// dual of Necessity. Ticking: the source node is consumed once.
func NegatedNecessity() rule.Rule {
	return &genericRule{name: "NegatedNecessity", ticking: true, branching: 0,
		match: rule.SentenceFilter(func(s lexicon.Sentence) bool { return IsNegatedOp(s, lexicon.Necessity) }),
		apply: func(tb *tableau.Tableau, b *tableau.Branch, n *tableau.Node) ([]*tableau.Branch, error) {
			inner, _ := NegatedOperand(n.Sentence)
			o, _ := AsOperated(inner)
			possibility := lexicon.Operated{Op: lexicon.Possibility, Operands: []lexicon.Sentence{lexicon.Negate(o.Operands[0])}}
			return ApplyLinear(tb, b, n, true, Carry(n, tableau.SentenceSpec(possibility)))
		}}
}

// Serial implements the D frame constraint: if a branch has w and no
// wRw', introduce one (a fresh world).
func Serial(h *rule.Helpers) rule.Rule {
	return newFrameRule("Serial", h, func(b *tableau.Branch, h *rule.Helpers) *tableau.NodeSpec {
		for _, w := range b.Worlds() {
			if len(h.AccessibleWorlds(b, w)) == 0 {
				spec := tableau.AccessSpec(w, -1) // placeholder; filled in by caller
				return &spec
			}
		}
		return nil
	})
}

func newFrameRule(name string, h *rule.Helpers, propose func(b *tableau.Branch, h *rule.Helpers) *tableau.NodeSpec) rule.Rule {
	return &frameRule{name: name, h: h, propose: propose}
}

type frameRule struct {
	rule.BaseRule
	name    string
	h       *rule.Helpers
	propose func(b *tableau.Branch, h *rule.Helpers) *tableau.NodeSpec
}

func (r *frameRule) Name() string   { return r.name }
func (r *frameRule) Branching() int { return 0 }
func (r *frameRule) Ticking() bool  { return false }

func (r *frameRule) SearchTargets(b *tableau.Branch) []*rule.Target {
	if r.propose(b, r.h) == nil {
		return nil
	}
	return []*rule.Target{{Rule: r, Branch: b}}
}

func (r *frameRule) Apply(t *rule.Target, tb *tableau.Tableau) ([]*tableau.Branch, error) {
	b := t.Branch
	switch r.name {
	case "Serial":
		for _, w := range b.Worlds() {
			if len(r.h.AccessibleWorlds(b, w)) == 0 {
				wPrime := tb.FreshWorld(b)
				if _, err := tb.AppendNode(b, tableau.AccessSpec(w, wPrime)); err != nil {
					return nil, err
				}
				r.h.InvalidateAccess(b, w)
				return []*tableau.Branch{b}, nil
			}
		}
	case "Reflexive":
		for _, w := range b.Worlds() {
			if !contains(r.h.AccessibleWorlds(b, w), w) {
				if _, err := tb.AppendNode(b, tableau.AccessSpec(w, w)); err != nil {
					return nil, err
				}
				r.h.InvalidateAccess(b, w)
				return []*tableau.Branch{b}, nil
			}
		}
	case "Symmetric":
		for _, w1 := range b.Worlds() {
			for _, w2 := range r.h.AccessibleWorlds(b, w1) {
				if !contains(r.h.AccessibleWorlds(b, w2), w1) {
					if _, err := tb.AppendNode(b, tableau.AccessSpec(w2, w1)); err != nil {
						return nil, err
					}
					r.h.InvalidateAccess(b, w2)
					return []*tableau.Branch{b}, nil
				}
			}
		}
	case "Transitive":
		for _, w1 := range b.Worlds() {
			for _, w2 := range r.h.AccessibleWorlds(b, w1) {
				for _, w3 := range r.h.AccessibleWorlds(b, w2) {
					if !contains(r.h.AccessibleWorlds(b, w1), w3) {
						if _, err := tb.AppendNode(b, tableau.AccessSpec(w1, w3)); err != nil {
							return nil, err
						}
						r.h.InvalidateAccess(b, w1)
						return []*tableau.Branch{b}, nil
					}
				}
			}
		}
	}
	return []*tableau.Branch{b}, nil
}

// Reflexive implements the T frame constraint: for every world on the
// branch, ensure wRw.
func Reflexive(h *rule.Helpers) rule.Rule {
	return newFrameRule("Reflexive", h, func(b *tableau.Branch, h *rule.Helpers) *tableau.NodeSpec {
		for _, w := range b.Worlds() {
			if !contains(h.AccessibleWorlds(b, w), w) {
				spec := tableau.AccessSpec(w, w)
				return &spec
			}
		}
		return nil
	})
}

// Transitive implements the S4 frame constraint: close the access
// relation on the branch.
func Transitive(h *rule.Helpers) rule.Rule {
	return newFrameRule("Transitive", h, func(b *tableau.Branch, h *rule.Helpers) *tableau.NodeSpec {
		for _, w1 := range b.Worlds() {
			for _, w2 := range h.AccessibleWorlds(b, w1) {
				for _, w3 := range h.AccessibleWorlds(b, w2) {
					if !contains(h.AccessibleWorlds(b, w1), w3) {
						spec := tableau.AccessSpec(w1, w3)
						return &spec
					}
				}
			}
		}
		return nil
	})
}

// Symmetric implements the S5 frame constraint: add w'Rw whenever wRw'
// is present.
func Symmetric(h *rule.Helpers) rule.Rule {
	return newFrameRule("Symmetric", h, func(b *tableau.Branch, h *rule.Helpers) *tableau.NodeSpec {
		for _, w1 := range b.Worlds() {
			for _, w2 := range h.AccessibleWorlds(b, w1) {
				if !contains(h.AccessibleWorlds(b, w2), w1) {
					spec := tableau.AccessSpec(w2, w1)
					return &spec
				}
			}
		}
		return nil
	})
}

func contains(ws []int, w int) bool {
	for _, x := range ws {
		if x == w {
			return true
		}
	}
	return false
}

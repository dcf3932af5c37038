package tableau

import "github.com/owings1/pytableaux/pkg/lexicon"

// NodeSpec describes a node to append; Tableau.AppendNode assigns the id and
// step-added bookkeeping. Rule implementations build NodeSpecs rather than
// Nodes directly, since the tableau-unique id is an arena concern.
type NodeSpec struct {
	Sentence   lexicon.Sentence
	Designated *bool
	World      *int
	World1     *int
	World2     *int
	Flag       string
	Ellipsis   bool
}

// SentenceSpec is a convenience constructor for the common case of a plain
// sentence node with no world/designation.
func SentenceSpec(s lexicon.Sentence) NodeSpec {
	return NodeSpec{Sentence: s}
}

// Designate returns a copy of spec with Designated set.
func (spec NodeSpec) Designate(d bool) NodeSpec {
	spec.Designated = BoolPtr(d)
	return spec
}

// AtWorld returns a copy of spec with World set.
func (spec NodeSpec) AtWorld(w int) NodeSpec {
	spec.World = IntPtr(w)
	return spec
}

// AccessSpec builds an access-relation node spec ⟨w1,w2⟩.
func AccessSpec(w1, w2 int) NodeSpec {
	return NodeSpec{World1: IntPtr(w1), World2: IntPtr(w2)}
}

// FlagSpec builds a flagged node spec (e.g. closure, quit).
func FlagSpec(flag string) NodeSpec {
	return NodeSpec{Flag: flag}
}

package tableau

import (
	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/predstore"
)

// HistoryEntry records one rule application as a (rule, target, step)
// triple.
type HistoryEntry struct {
	Step     int
	Rule     string
	BranchID BranchID
	NodeIDs  []NodeID
}

// Model is the marker interface a counter-model must satisfy to be attached
// to a finished Tableau. Kept minimal here to avoid pkg/tableau depending on
// pkg/model (which depends on pkg/tableau to read branches).
type Model interface {
	String() string
}

// Tableau owns all Branches and Nodes created in its lifetime exclusively;
// rules and the engine mutate it only through the Append/Branch/Tick API
// below: Tableau owns all branches exclusively.
type Tableau struct {
	Argument  predstore.Argument
	LogicName string

	branches []*Branch
	nextNode NodeID

	step    int
	History []HistoryEntry

	Finished  bool
	Valid     bool
	Invalid   bool
	Completed bool
	Premature bool
	Models    []Model
}

// New constructs an empty Tableau with a single empty root branch.
func New(arg predstore.Argument, logicName string) *Tableau {
	t := &Tableau{Argument: arg, LogicName: logicName}
	root := newBranch(0)
	t.branches = append(t.branches, root)
	return t
}

// RootBranch returns the tableau's initial branch.
func (t *Tableau) RootBranch() *Branch { return t.branches[0] }

// Branches returns every branch, open and closed, in creation order.
func (t *Tableau) Branches() []*Branch { return t.branches }

// OpenBranches returns the branches not yet closed.
func (t *Tableau) OpenBranches() []*Branch {
	var out []*Branch
	for _, b := range t.branches {
		if !b.closed {
			out = append(out, b)
		}
	}
	return out
}

// AllClosed reports whether every branch is closed.
func (t *Tableau) AllClosed() bool {
	for _, b := range t.branches {
		if !b.closed {
			return false
		}
	}
	return true
}

// Step returns the current step counter.
func (t *Tableau) Step() int { return t.step }

// AdvanceStep increments and returns the new step counter. Called once per
// applied rule by the engine driver.
func (t *Tableau) AdvanceStep() int {
	t.step++
	return t.step
}

// NewBranch forks parent: the new branch inherits parent's full node
// sequence (shared *Node pointers — the nodes themselves are immutable) and
// an independent copy of parent's ticked/constant/world bookkeeping, so
// later mutation of one sibling never affects another. The (node,constant)
// firing-history a rule helper caches separately
// (pkg/rule) must be copied the same way by the caller.
func (t *Tableau) NewBranch(parent *Branch) (*Branch, error) {
	if parent.closed {
		return nil, &IllegalTableauStateError{Op: "branch a closed branch"}
	}
	id := BranchID(len(t.branches))
	nb := newBranch(id)
	nb.originID, nb.hasOrigin = parent.id, true

	nb.nodes = append(nb.nodes, parent.nodes...)
	for k, v := range parent.index {
		nb.index[k] = v
	}
	for k, v := range parent.stats {
		cp := *v
		nb.stats[k] = &cp
	}
	for k, v := range parent.constants {
		nb.constants[k] = v
	}
	for k, v := range parent.worlds {
		nb.worlds[k] = v
	}
	t.branches = append(t.branches, nb)
	return nb, nil
}

// AppendNode appends a new node built from spec to b, updating the branch's
// constants/worlds sets incrementally. It is an error to append to a closed
// branch.
func (t *Tableau) AppendNode(b *Branch, spec NodeSpec) (*Node, error) {
	if b.closed {
		return nil, &IllegalTableauStateError{Op: "append to a closed branch"}
	}
	n := &Node{
		id:         t.nextNode,
		Sentence:   spec.Sentence,
		Designated: spec.Designated,
		World:      spec.World,
		World1:     spec.World1,
		World2:     spec.World2,
		Flag:       spec.Flag,
		Ellipsis:   spec.Ellipsis,
	}
	t.nextNode++

	b.index[n.id] = len(b.nodes)
	b.nodes = append(b.nodes, n)
	b.stats[n.id] = &nodeStats{stepAdded: t.step}

	if n.Sentence != nil {
		for _, c := range lexicon.Constants(n.Sentence) {
			b.constants[c] = true
		}
	}
	if n.World != nil {
		b.worlds[*n.World] = true
	}
	if n.World1 != nil {
		b.worlds[*n.World1] = true
	}
	if n.World2 != nil {
		b.worlds[*n.World2] = true
	}
	return n, nil
}

// Tick marks n ticked on b. Monotone: ticking an already-ticked node is a
// no-op, never an error: once ticked, a node stays ticked.
func (t *Tableau) Tick(b *Branch, n *Node) error {
	if b.closed {
		return &IllegalTableauStateError{Op: "tick a node on a closed branch"}
	}
	st, ok := b.stats[n.id]
	if !ok {
		return &IllegalTableauStateError{Op: "tick a node not on this branch"}
	}
	if st.ticked {
		return nil
	}
	st.ticked = true
	step := t.step
	st.stepTicked = &step
	return nil
}

// CloseBranch marks b closed at the given step. A closed branch can never
// be extended or unclosed again.
func (t *Tableau) CloseBranch(b *Branch, atStep int) error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.closedStep = atStep
	return nil
}

// RecordHistory appends one (rule, target, step) triple.
func (t *Tableau) RecordHistory(rule string, branchID BranchID, nodeIDs []NodeID) {
	t.History = append(t.History, HistoryEntry{
		Step: t.step, Rule: rule, BranchID: branchID, NodeIDs: nodeIDs,
	})
}

// FreshConstant returns a constant with an index beyond every constant on b
// so a quantifier rule can introduce a fresh constant beyond any already
// on the branch.
func (t *Tableau) FreshConstant(b *Branch) lexicon.Constant {
	max, any := -1, false
	for c := range b.constants {
		if !any || c.Index > max {
			max, any = c.Index, true
		}
	}
	return lexicon.Constant{Index: max + 1}
}

// FreshWorld returns a world index beyond every world on b: the successor
// of max(worlds), or 0 if b has no worlds yet.
func (t *Tableau) FreshWorld(b *Branch) int {
	max, ok := b.MaxWorld()
	if !ok {
		return 0
	}
	return max + 1
}

package tableau

import "github.com/owings1/pytableaux/pkg/lexicon"

// BranchID uniquely identifies a Branch within one Tableau.
type BranchID int

type nodeStats struct {
	ticked     bool
	stepAdded  int
	stepTicked *int
}

// Branch is an ordered sequence of Nodes. Nodes are never
// removed; once ticked a node stays ticked; a closed branch is never
// extended or unclosed.
type Branch struct {
	id        BranchID
	originID  BranchID // -1 for the root branch
	hasOrigin bool

	nodes []*Node
	index map[NodeID]int // node id -> position in nodes, for O(1) stats lookup

	stats map[NodeID]*nodeStats

	constants map[lexicon.Constant]bool
	worlds    map[int]bool

	closed     bool
	closedStep int
}

func newBranch(id BranchID) *Branch {
	return &Branch{
		id:        id,
		stats:     make(map[NodeID]*nodeStats),
		index:     make(map[NodeID]int),
		constants: make(map[lexicon.Constant]bool),
		worlds:    make(map[int]bool),
	}
}

// ID returns the branch's tableau-unique id.
func (b *Branch) ID() BranchID { return b.id }

// Origin returns the parent branch id and whether this branch has a parent
// (the root branch does not).
func (b *Branch) Origin() (BranchID, bool) { return b.originID, b.hasOrigin }

// Closed reports whether a closure rule has flagged this branch.
func (b *Branch) Closed() bool { return b.closed }

// ClosedStep returns the step at which the branch closed, valid only if
// Closed() is true.
func (b *Branch) ClosedStep() int { return b.closedStep }

// Nodes returns the branch's ordered node sequence. Callers must not mutate
// the returned slice.
func (b *Branch) Nodes() []*Node { return b.nodes }

// Leaf returns the last node on the branch, or nil if empty.
func (b *Branch) Leaf() *Node {
	if len(b.nodes) == 0 {
		return nil
	}
	return b.nodes[len(b.nodes)-1]
}

// Len returns the number of nodes on the branch.
func (b *Branch) Len() int { return len(b.nodes) }

// HasNode reports whether n is on this branch.
func (b *Branch) HasNode(n *Node) bool {
	_, ok := b.index[n.id]
	return ok
}

// Ticked reports whether n is ticked on this branch.
func (b *Branch) Ticked(n *Node) bool {
	st, ok := b.stats[n.id]
	return ok && st.ticked
}

// StepAdded returns the step at which n was appended to this branch.
func (b *Branch) StepAdded(n *Node) int {
	if st, ok := b.stats[n.id]; ok {
		return st.stepAdded
	}
	return -1
}

// StepTicked returns the step at which n was ticked on this branch, if any.
func (b *Branch) StepTicked(n *Node) (int, bool) {
	if st, ok := b.stats[n.id]; ok && st.stepTicked != nil {
		return *st.stepTicked, true
	}
	return 0, false
}

// Constants returns the set of constants appearing in sentence nodes on the
// branch (maintained incrementally as nodes are added).
func (b *Branch) Constants() []lexicon.Constant {
	out := make([]lexicon.Constant, 0, len(b.constants))
	for c := range b.constants {
		out = append(out, c)
	}
	sortParams(out)
	return out
}

// HasConstant reports whether c appears on the branch.
func (b *Branch) HasConstant(c lexicon.Constant) bool { return b.constants[c] }

// Worlds returns the set of world indices appearing on the branch.
func (b *Branch) Worlds() []int {
	out := make([]int, 0, len(b.worlds))
	for w := range b.worlds {
		out = append(out, w)
	}
	sortInts(out)
	return out
}

// HasWorld reports whether w appears on the branch.
func (b *Branch) HasWorld(w int) bool { return b.worlds[w] }

// MaxWorld returns the highest world index on the branch, and ok=false if
// the branch carries no worlds (the trunk seeds world 0 for modal logics).
func (b *Branch) MaxWorld() (int, bool) {
	max, ok := 0, false
	for w := range b.worlds {
		if !ok || w > max {
			max, ok = w, true
		}
	}
	return max, ok
}

// NodesWithSentence returns every node on the branch whose Sentence equals s
// by structural comparison (via sort-tuple equality, since Sentence is a
// closed set of comparable structs once fully concrete).
func (b *Branch) NodesWithSentence(s lexicon.Sentence) []*Node {
	var out []*Node
	for _, n := range b.nodes {
		if n.Sentence != nil && lexicon.Compare(n.Sentence, s) == 0 {
			out = append(out, n)
		}
	}
	return out
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

func sortParams[T lexicon.Parameter](s []T) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && lexicon.Less(s[j], s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

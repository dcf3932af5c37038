// Package tableau implements the core data model: Tableau, Branch, and
// Node, with per-(branch,node) stats and step history. It is
// logic-agnostic: nothing here knows about rules, operators, or truth
// values — pkg/rule and pkg/logic build on top of this arena.
//
// Branch and Node live in flat owned slices referenced by small integer
// ids, an arena discipline that lets rule helpers cache by
// (branchID, nodeID) instead of pointer identity.
package tableau

import "github.com/owings1/pytableaux/pkg/lexicon"

// NodeID uniquely identifies a Node within one Tableau.
type NodeID int

// Node is an associative record over a small fixed key set.
// Node equality is identity-based within a tableau: every node has a
// tableau-unique ID, and two Nodes with the same field values but different
// IDs are distinct tableau objects.
type Node struct {
	id NodeID

	Sentence   lexicon.Sentence // nil if absent
	Designated *bool    // nil if absent (many-valued logics only)
	World      *int     // nil if absent (modal logics only)
	World1     *int     // nil if absent (access-relation nodes)
	World2     *int     // nil if absent (access-relation nodes)
	Flag       string   // "" if absent, e.g. "closure", "quit"
	Ellipsis   bool
}

// ID returns the node's tableau-unique identifier.
func (n *Node) ID() NodeID { return n.id }

// HasWorld reports whether the node carries a world stamp.
func (n *Node) HasWorld() bool { return n.World != nil }

// HasAccess reports whether the node is an access-relation node (carries a
// ⟨w1,w2⟩ pair).
func (n *Node) HasAccess() bool { return n.World1 != nil && n.World2 != nil }

// IsDesignated reports the designation marker, defaulting to false when
// absent (classical/modal-only tableaux never set it).
func (n *Node) IsDesignated() bool { return n.Designated != nil && *n.Designated }

// HasDesignation reports whether the designation key is present at all.
func (n *Node) HasDesignation() bool { return n.Designated != nil }

// IsClosureFlag reports whether this node flags branch closure.
func (n *Node) IsClosureFlag() bool { return n.Flag == FlagClosure }

// Flags used in the Flag key.
const (
	FlagClosure = "closure"
	FlagQuit    = "quit"
)

// boolPtr and intPtr are tiny constructors for the optional Node fields,
// used throughout rule implementations that build NodeSpecs.
func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

// BoolPtr exports boolPtr for callers outside the package (rule kits).
func BoolPtr(b bool) *bool { return boolPtr(b) }

// IntPtr exports intPtr for callers outside the package (rule kits).
func IntPtr(i int) *int { return intPtr(i) }

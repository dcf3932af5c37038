package service

import (
	"github.com/owings1/pytableaux/pkg/model"
	"github.com/owings1/pytableaux/pkg/tableau"
	"github.com/owings1/pytableaux/pkg/writer"
)

// buildTree serializes a finished Tableau into the Prove API's tree shape: one
// TreeNode per Branch, nested by fork point, carrying only the node
// segment a branch added beyond its parent (the shared prefix is rendered
// once, by the ancestor that owns it). Left/right/width follow the
// convention of a horizontal layout: each leaf claims one column, an
// interior node's span is the union of its children's spans.
func buildTree(tb *tableau.Tableau, rs writer.RenderSet) TreeNode {
	children := map[tableau.BranchID][]*tableau.Branch{}
	var root *tableau.Branch
	for _, b := range tb.Branches() {
		if parentID, ok := b.Origin(); ok {
			children[parentID] = append(children[parentID], b)
		} else {
			root = b
		}
	}
	openIndex := map[tableau.BranchID]int{}
	for i, b := range tb.OpenBranches() {
		openIndex[b.ID()] = i
	}
	nextColumn := 0

	var walk func(b *tableau.Branch, parentLen, depth int) TreeNode
	walk = func(b *tableau.Branch, parentLen, depth int) TreeNode {
		nodes := b.Nodes()
		t := TreeNode{
			ID:          int(b.ID()),
			Depth:       depth,
			HasOpen:     !b.Closed(),
			HasClosed:   b.Closed(),
			Closed:      b.Closed(),
			NodeSegment: renderSegment(nodes[parentLen:], b, rs),
		}
		if len(nodes) > 0 {
			t.Step = b.StepAdded(nodes[len(nodes)-1])
		}
		if b.Closed() {
			step := b.ClosedStep()
			t.ClosedStep = &step
		} else if idx, ok := openIndex[b.ID()]; ok && idx < len(tb.Models) {
			if _, isModel := tb.Models[idx].(*model.Model); isModel {
				mid := idx
				t.ModelID = &mid
			}
		}

		kids := children[b.ID()]
		if len(kids) == 0 {
			t.Leaf = true
			t.Width = 1
			t.Left = nextColumn
			t.Right = nextColumn
			nextColumn++
			return t
		}
		t.Children = make([]TreeNode, 0, len(kids))
		for _, k := range kids {
			ct := walk(k, len(nodes), depth+1)
			t.HasOpen = t.HasOpen || ct.HasOpen
			t.HasClosed = t.HasClosed || ct.HasClosed
			t.Width += ct.Width
			t.Children = append(t.Children, ct)
		}
		t.Left = t.Children[0].Left
		t.Right = t.Children[len(t.Children)-1].Right
		return t
	}

	if root == nil {
		return TreeNode{}
	}
	return walk(root, 0, 0)
}

func renderSegment(nodes []*tableau.Node, b *tableau.Branch, rs writer.RenderSet) []NodeView {
	out := make([]NodeView, 0, len(nodes))
	for _, n := range nodes {
		v := NodeView{ID: int(n.ID()), Step: b.StepAdded(n), Ticked: b.Ticked(n), Flag: n.Flag, Ellipsis: n.Ellipsis}
		if step, ok := b.StepTicked(n); ok {
			v.TickStep = &step
		}
		if n.Sentence != nil {
			s := writer.Write(n.Sentence, rs)
			v.Sentence = &s
		}
		if n.World != nil {
			v.World = n.World
		}
		if n.HasDesignation() {
			d := n.IsDesignated()
			v.Designation = &d
		}
		if n.HasAccess() {
			v.Access = &Access{World1: *n.World1, World2: *n.World2}
		}
		out = append(out, v)
	}
	return out
}

func modelViews(tb *tableau.Tableau) []ModelView {
	out := make([]ModelView, 0, len(tb.Models))
	for i, m := range tb.Models {
		cm, ok := m.(*model.Model)
		if !ok {
			continue
		}
		lits := make(map[int][]string, len(cm.Literals))
		for w, ls := range cm.Literals {
			for _, l := range ls {
				lits[w] = append(lits[w], literalString(l))
			}
		}
		out = append(out, ModelView{
			ID: i, LogicName: cm.LogicName, IsCounterModel: cm.IsCounterModel,
			Worlds: cm.Worlds, Access: cm.Access, Literals: lits,
		})
	}
	return out
}

func literalString(l model.Literal) string {
	return writer.Write(l.Sentence, writer.ASCIIStandard) + "=" + string(l.Value)
}

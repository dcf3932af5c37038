package writer

import (
	"context"
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/owings1/pytableaux/pkg/tableau"
)

// WriteProof renders a finished Tableau as an indented branch-by-branch
// proof tree under rs (used for text/unicode/latex output formats). Each
// branch's shared prefix with its parent is rendered once, by the
// ancestor; a branch contributes only the nodes it added.
func WriteProof(tb *tableau.Tableau, rs RenderSet) string {
	var b strings.Builder
	children := childrenByOrigin(tb)
	var walk func(br *tableau.Branch, parentLen, depth int)
	walk = func(br *tableau.Branch, parentLen, depth int) {
		indent := strings.Repeat("  ", depth)
		for _, n := range br.Nodes()[parentLen:] {
			b.WriteString(indent)
			writeProofNode(&b, br, n, rs)
			b.WriteByte('\n')
		}
		if br.Closed() {
			b.WriteString(indent)
			b.WriteString("(x)\n")
		}
		for _, k := range children[br.ID()] {
			walk(k, br.Len(), depth+1)
		}
	}
	if root := tb.RootBranch(); root != nil {
		walk(root, 0, 0)
	}
	return b.String()
}

func writeProofNode(b *strings.Builder, br *tableau.Branch, n *tableau.Node, rs RenderSet) {
	if n.Sentence != nil {
		if n.HasDesignation() {
			if n.IsDesignated() {
				b.WriteByte('+')
			} else {
				b.WriteByte('-')
			}
		}
		b.WriteString(Write(n.Sentence, rs))
		if n.World != nil {
			b.WriteString(", w")
			b.WriteString(strconv.Itoa(*n.World))
		}
	} else if n.HasAccess() {
		fmt.Fprintf(b, "w%d R w%d", *n.World1, *n.World2)
	} else if n.Flag != "" {
		b.WriteString("[" + n.Flag + "]")
	}
	if br.Ticked(n) {
		b.WriteString(" ✓")
	}
}

func childrenByOrigin(tb *tableau.Tableau) map[tableau.BranchID][]*tableau.Branch {
	out := map[tableau.BranchID][]*tableau.Branch{}
	for _, br := range tb.Branches() {
		if parentID, ok := br.Origin(); ok {
			out[parentID] = append(out[parentID], br)
		}
	}
	return out
}

// HTMLProof returns a templ.Component rendering the same proof tree as
// nested <ul>/<li> markup, one list item per node and one nested list per
// branch fork, so it can be composed into a larger templ page the way the
// teacher composes generated components in internal/ui.
func HTMLProof(tb *tableau.Tableau, rs RenderSet) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := childrenByOrigin(tb)
		var walk func(br *tableau.Branch, parentLen int) error
		walk = func(br *tableau.Branch, parentLen int) error {
			if _, err := io.WriteString(w, "<ul class=\"branch\">"); err != nil {
				return err
			}
			for _, n := range br.Nodes()[parentLen:] {
				var sb strings.Builder
				writeProofNode(&sb, br, n, rs)
				if _, err := fmt.Fprintf(w, "<li>%s</li>", html.EscapeString(sb.String())); err != nil {
					return err
				}
			}
			if br.Closed() {
				if _, err := io.WriteString(w, "<li class=\"closed\">&times;</li>"); err != nil {
					return err
				}
			}
			for _, k := range children[br.ID()] {
				if err := walk(k, br.Len()); err != nil {
					return err
				}
			}
			_, err := io.WriteString(w, "</ul>")
			return err
		}
		root := tb.RootBranch()
		if root == nil {
			return nil
		}
		return walk(root, 0)
	})
}

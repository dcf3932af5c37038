// Package docsgen extracts a rendered HTML proof tree into a Markdown
// document without building a dedicated front-end: it calls
// htmltomarkdown.ConvertString on HTML produced by pkg/writer.HTMLProof and
// returns the result.
package docsgen

import (
	"bytes"
	"context"
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/owings1/pytableaux/pkg/tableau"
	"github.com/owings1/pytableaux/pkg/writer"
)

// ExtractMarkdown renders tb's proof tree as HTML via pkg/writer and
// converts it to a Markdown document, titled by the logic name and the
// verdict (valid, invalid, or premature).
func ExtractMarkdown(tb *tableau.Tableau, rs writer.RenderSet) (string, error) {
	var html bytes.Buffer
	if err := writer.HTMLProof(tb, rs).Render(context.Background(), &html); err != nil {
		return "", fmt.Errorf("docsgen: render proof HTML: %w", err)
	}
	md, err := htmltomarkdown.ConvertString(html.String())
	if err != nil {
		return "", fmt.Errorf("docsgen: convert to markdown: %w", err)
	}
	title := fmt.Sprintf("# %s proof (%s)\n\n", tb.LogicName, verdict(tb))
	return title + md, nil
}

func verdict(tb *tableau.Tableau) string {
	switch {
	case !tb.Completed:
		return "premature"
	case tb.Valid:
		return "valid"
	default:
		return "invalid"
	}
}

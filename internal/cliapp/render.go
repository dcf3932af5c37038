package cliapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/owings1/pytableaux/pkg/engine"
	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/logic"
	"github.com/owings1/pytableaux/pkg/notation"
	"github.com/owings1/pytableaux/pkg/parser"
	"github.com/owings1/pytableaux/pkg/predstore"
	"github.com/owings1/pytableaux/pkg/writer"
)

func newRenderCmd() *cobra.Command {
	var (
		premises []string
		logicArg string
		notArg   string
		fmtArg   string
	)

	cmd := &cobra.Command{
		Use:   "render <conclusion>",
		Short: "Build a tableau and render its proof in text, html, or latex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ConfigFromContext(cmd.Context())
			if logicArg == "" {
				logicArg = cfg.DefaultLogic
			}
			if notArg == "" {
				notArg = cfg.DefaultNotation
			}
			if fmtArg == "" {
				fmtArg = cfg.OutputFormat
			}

			n, err := parseNotationFlag(notArg)
			if err != nil {
				return err
			}
			if _, ok := logic.Get(logicArg); !ok {
				return fmt.Errorf("unknown logic %q", logicArg)
			}

			store := predstore.New()
			conclusion, err := parser.Parse(args[0], n, store)
			if err != nil {
				return fmt.Errorf("conclusion: %w", err)
			}
			sentences := make([]lexicon.Sentence, 0, len(premises))
			for i, p := range premises {
				s, err := parser.Parse(p, n, store)
				if err != nil {
					return fmt.Errorf("premise[%d]: %w", i, err)
				}
				sentences = append(sentences, s)
			}
			arg := predstore.NewArgument(conclusion, sentences...)

			tb, err := engine.Build(arg, logicArg, engine.DefaultOptions())
			if err != nil {
				return err
			}

			rs := writer.RenderSet{Notation: n, CharSet: notation.ASCII}
			switch fmtArg {
			case "html":
				var sb strings.Builder
				if err := writer.HTMLProof(tb, rs).Render(context.Background(), &sb); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), sb.String())
			case "latex":
				fmt.Fprintln(cmd.OutOrStdout(), writer.WriteProof(tb, writer.RenderSet{Notation: n, CharSet: notation.LaTeX}))
			default:
				fmt.Fprintln(cmd.OutOrStdout(), writer.WriteProof(tb, rs))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&premises, "premise", "p", nil, "a premise sentence (repeatable)")
	cmd.Flags().StringVarP(&logicArg, "logic", "l", "", "logic name (default from config)")
	cmd.Flags().StringVarP(&notArg, "notation", "n", "", "sentence notation (standard|polish)")
	cmd.Flags().StringVarP(&fmtArg, "format", "f", "", "output format (text|html|latex)")
	return cmd
}

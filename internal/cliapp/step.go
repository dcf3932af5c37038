package cliapp

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/owings1/pytableaux/pkg/engine"
	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/logic"
	"github.com/owings1/pytableaux/pkg/notation"
	"github.com/owings1/pytableaux/pkg/parser"
	"github.com/owings1/pytableaux/pkg/predstore"
	"github.com/owings1/pytableaux/pkg/rule"
	"github.com/owings1/pytableaux/pkg/tableau"
)

func newStepCmd() *cobra.Command {
	var (
		premises []string
		logicArg string
		notArg   string
		count    int
	)

	cmd := &cobra.Command{
		Use:   "step <conclusion>",
		Short: "Apply one or more engine steps and print each applied rule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ConfigFromContext(cmd.Context())
			if logicArg == "" {
				logicArg = cfg.DefaultLogic
			}
			if notArg == "" {
				notArg = cfg.DefaultNotation
			}

			n, err := parseNotationFlag(notArg)
			if err != nil {
				return err
			}
			l, ok := logic.Get(logicArg)
			if !ok {
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

			tb := tableau.New(arg, logicArg)
			opts := engine.DefaultOptions()
			l.BuildTrunk(tb, tb.RootBranch(), arg)

			helpers := rule.NewHelpers()
			root := l.Rules(helpers)

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"step", "applied", "rule", "branch"})

			for i := 0; i < count; i++ {
				res, err := engine.Step(tb, root, opts)
				if err != nil {
					return err
				}
				t.AppendRow(table.Row{tb.Step(), res.Applied, res.Rule, res.Branch})
				if !res.Applied {
					break
				}
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&premises, "premise", "p", nil, "a premise sentence (repeatable)")
	cmd.Flags().StringVarP(&logicArg, "logic", "l", "", "logic name (default from config)")
	cmd.Flags().StringVarP(&notArg, "notation", "n", "", "sentence notation (standard|polish)")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of steps to apply")
	return cmd
}

func parseNotationFlag(name string) (notation.Notation, error) {
	switch name {
	case "", "standard":
		return notation.Standard, nil
	case "polish":
		return notation.Polish, nil
	default:
		return 0, fmt.Errorf("unknown notation %q", name)
	}
}

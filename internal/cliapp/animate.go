package cliapp

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/owings1/pytableaux/internal/tui"
	"github.com/owings1/pytableaux/pkg/engine"
	"github.com/owings1/pytableaux/pkg/lexicon"
	"github.com/owings1/pytableaux/pkg/logic"
	"github.com/owings1/pytableaux/pkg/parser"
	"github.com/owings1/pytableaux/pkg/predstore"
)

func newAnimateCmd() *cobra.Command {
	var (
		premises []string
		logicArg string
		notArg   string
	)

	cmd := &cobra.Command{
		Use:   "animate <conclusion>",
		Short: "Step through a tableau build interactively, one rule at a time",
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

			return tui.Run(arg, logicArg, engine.DefaultOptions())
		},
	}

	cmd.Flags().StringArrayVarP(&premises, "premise", "p", nil, "a premise sentence (repeatable)")
	cmd.Flags().StringVarP(&logicArg, "logic", "l", "", "logic name (default from config)")
	cmd.Flags().StringVarP(&notArg, "notation", "n", "", "sentence notation (standard|polish)")
	return cmd
}

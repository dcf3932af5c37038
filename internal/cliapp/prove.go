package cliapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/owings1/pytableaux/pkg/engine"
	"github.com/owings1/pytableaux/pkg/fixtures"
	"github.com/owings1/pytableaux/pkg/notation"
	"github.com/owings1/pytableaux/pkg/service"
	"github.com/owings1/pytableaux/pkg/writer"
)

func newProveCmd() *cobra.Command {
	var (
		premises   []string
		logicArg   string
		notArg     string
		fmtArg     string
		fixtureArg string
	)

	cmd := &cobra.Command{
		Use:   "prove [conclusion]",
		Short: "Build a tableau to completion and print its verdict and tree",
		Args:  cobra.MaximumNArgs(1),
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

			if fixtureArg != "" {
				return proveFixture(cmd, fixtureArg, notArg, fmtArg)
			}
			if len(args) != 1 {
				return fmt.Errorf("prove requires a conclusion argument, or --fixture")
			}

			svc := service.New(nil)
			req := service.ProveRequest{
				Logic: logicArg,
				Argument: service.ArgumentSpec{
					Conclusion: args[0],
					Premises:   premises,
					Notation:   notArg,
				},
				Output: service.OutputSpec{Format: fmtArg, Notation: notArg},
			}

			resp, status, err := svc.Prove(req)
			if err != nil {
				return err
			}

			verdict := "invalid"
			if resp.Result.Valid {
				verdict = "valid"
			}
			if resp.Result.Premature {
				verdict = "premature"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s), http status %d\n\n", logicArg, verdict, status)

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"steps", "branches", "elapsed"})
			t.AppendRow(table.Row{resp.Result.Stats["steps"], resp.Result.Stats["branches"], resp.Result.Stats["elapsed"]})
			t.Render()

			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), resp.Writer.Output)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&premises, "premise", "p", nil, "a premise sentence (repeatable)")
	cmd.Flags().StringVarP(&logicArg, "logic", "l", "", "logic name (default from config)")
	cmd.Flags().StringVarP(&notArg, "notation", "n", "", "sentence notation (standard|polish)")
	cmd.Flags().StringVarP(&fmtArg, "format", "f", "", "output format (text|html|latex)")
	cmd.Flags().StringVar(&fixtureArg, "fixture", "", "run a named fixture from pkg/fixtures instead of a conclusion/premises")
	return cmd
}

// proveFixture builds a named fixture argument directly through pkg/engine,
// bypassing pkg/service's string parsing since a fixture is already parsed.
func proveFixture(cmd *cobra.Command, name, notArg, fmtArg string) error {
	f, ok := fixtures.Get(name)
	if !ok {
		return fmt.Errorf("unknown fixture %q (available: %s)", name, strings.Join(fixtures.Names(), ", "))
	}

	tb, err := engine.Build(f.Argument, f.LogicName, engine.DefaultOptions())
	if err != nil {
		return err
	}

	verdict := "invalid"
	if tb.Valid {
		verdict = "valid"
	}
	if tb.Premature {
		verdict = "premature"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%s)\n\n", f.Name, f.LogicName, verdict)

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"steps", "branches"})
	t.AppendRow(table.Row{tb.Step(), len(tb.Branches())})
	t.Render()

	n, err := parseNotationFlag(notArg)
	if err != nil {
		return err
	}
	rs := writer.RenderSet{Notation: n, CharSet: notation.ASCII}
	fmt.Fprintln(cmd.OutOrStdout())
	if fmtArg == "html" {
		var sb strings.Builder
		if err := writer.HTMLProof(tb, rs).Render(context.Background(), &sb); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), sb.String())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), writer.WriteProof(tb, rs))
	return nil
}

package cliapp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/owings1/pytableaux/pkg/logic"
	"github.com/owings1/pytableaux/pkg/service"
)

func newReplCmd() *cobra.Command {
	var logicArg string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive prover shell",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := ConfigFromContext(cmd.Context())
			if logicArg == "" {
				logicArg = cfg.DefaultLogic
			}
			return runREPL(cmd, logicArg, cfg.DefaultNotation)
		},
	}

	cmd.Flags().StringVarP(&logicArg, "logic", "l", "", "logic to prove arguments under (default from config, changeable with .logic)")
	return cmd
}

// runREPL accumulates lines of the form "premise1; premise2 |- conclusion"
// until a line ends in ";", then runs the accumulated argument through
// pkg/service and prints the verdict and tree: a chzyer/readline loop with
// a history file, dot-commands, and a multi-line buffer that flushes on a
// trailing semicolon.
func runREPL(cmd *cobra.Command, logicName, notationName string) error {
	historyFile := replHistoryPath()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "pytableaux> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("cliapp: initialize repl: %w", err)
	}
	defer func() { _ = rl.Close() }()

	fmt.Fprintf(cmd.OutOrStdout(), "pytableaux prover REPL (logic: %s)\n", logicName)
	fmt.Fprintln(cmd.OutOrStdout(), "Enter premises and a conclusion as 'p1; p2 |- c;' (terminate with ';'). Type .help for commands, .quit to exit.")
	fmt.Fprintln(cmd.OutOrStdout())

	svc := service.New(nil)

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buf.Reset()
			rl.SetPrompt("pytableaux> ")
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			switch fields := strings.Fields(line); fields[0] {
			case ".quit", ".exit":
				return nil
			case ".help":
				printREPLHelp(cmd.OutOrStdout())
				continue
			case ".logics":
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(logic.Names(), ", "))
				continue
			case ".logic":
				if len(fields) < 2 {
					fmt.Fprintln(cmd.ErrOrStderr(), "usage: .logic <name>")
					continue
				}
				if _, ok := logic.Get(fields[1]); !ok {
					fmt.Fprintf(cmd.ErrOrStderr(), "unknown logic %q\n", fields[1])
					continue
				}
				logicName = fields[1]
				fmt.Fprintf(cmd.OutOrStdout(), "logic set to %s\n", logicName)
				continue
			}
		}

		buf.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			buf.WriteString(" ")
			rl.SetPrompt("        ...> ")
			continue
		}
		rl.SetPrompt("pytableaux> ")

		argument := strings.TrimSuffix(buf.String(), ";")
		buf.Reset()

		if err := proveAndPrint(cmd, svc, logicName, notationName, argument); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %v\n", err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

func proveAndPrint(cmd *cobra.Command, svc *service.Service, logicName, notationName, argument string) error {
	conclusion := argument
	var premises []string
	if i := strings.Index(argument, "|-"); i >= 0 {
		premiseText := strings.TrimSpace(argument[:i])
		conclusion = strings.TrimSpace(argument[i+2:])
		if premiseText != "" {
			for _, p := range strings.Split(premiseText, ";") {
				if p = strings.TrimSpace(p); p != "" {
					premises = append(premises, p)
				}
			}
		}
	}
	if conclusion == "" {
		return fmt.Errorf("no conclusion given")
	}

	resp, status, err := svc.Prove(service.ProveRequest{
		Logic: logicName,
		Argument: service.ArgumentSpec{
			Conclusion: conclusion,
			Premises:   premises,
			Notation:   notationName,
		},
		Output: service.OutputSpec{Format: "text", Notation: notationName},
	})
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
	fmt.Fprintf(cmd.OutOrStdout(), "%s (status %d)\n", verdict, status)
	fmt.Fprint(cmd.OutOrStdout(), resp.Writer.Output)
	return nil
}

func printREPLHelp(w io.Writer) {
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  .help           show this message")
	fmt.Fprintln(w, "  .logics         list registered logic names")
	fmt.Fprintln(w, "  .logic <name>   switch the active logic")
	fmt.Fprintln(w, "  .quit, .exit    leave the REPL")
	fmt.Fprintln(w, "Enter an argument as 'p1; p2 |- c;' ending with a semicolon to prove it.")
}

func replHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pytableaux_history"
	}
	return filepath.Join(home, ".pytableaux_history")
}

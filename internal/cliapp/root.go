// Package cliapp builds pytableaux's cobra command tree: prove, step,
// render, serve, repl, animate. A package-level NewRootCmd, a
// PersistentPreRunE that loads configuration into the command context, and
// package-level Version/BuildDate/GitCommit variables set at build time
// via -ldflags.
package cliapp

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/owings1/pytableaux/internal/config"
)

// Version information, set at build time.
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

var cfgFile string

type configKey struct{}

// ConfigFromContext returns the Config loaded by the root command's
// PersistentPreRunE.
func ConfigFromContext(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return nil
}

// NewRootCmd builds the pytableaux command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "pytableaux",
		Short:   "Build and inspect analytic tableaux across many logics",
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			if cfg.Verbose {
				if used := config.GetConfigFileUsed(); used != "" {
					fmt.Fprintf(os.Stderr, "using config file: %s\n", used)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./pytableaux.yaml)")
	root.PersistentFlags().String("default-logic", "", "logic to use when none is given")
	root.PersistentFlags().String("default-notation", "", "notation to parse/render in when none is given")
	root.PersistentFlags().Int("max-steps", 0, "maximum engine steps before a build is premature")
	root.PersistentFlags().String("output-format", "", "default output format (text|html|latex)")
	root.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	root.PersistentFlags().String("listen-addr", "", "address the serve command listens on")

	root.AddCommand(newProveCmd())
	root.AddCommand(newStepCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newReplCmd())
	root.AddCommand(newAnimateCmd())

	return root
}

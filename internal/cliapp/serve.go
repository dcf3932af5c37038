package cliapp

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/owings1/pytableaux/internal/httpapi"
	"github.com/owings1/pytableaux/pkg/service"
)

func newServeCmd() *cobra.Command {
	var (
		addr      string
		watchDir  string
		verboseFl bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Prove API HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := ConfigFromContext(cmd.Context())
			if addr == "" {
				addr = cfg.ListenAddr
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
			if !verboseFl && !cfg.Verbose {
				logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
			}

			svc := service.New(logger)
			srv := httpapi.NewServer(addr, svc, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if watchDir != "" {
				stopWatch, err := watchFixtures(ctx, watchDir, logger)
				if err != nil {
					return err
				}
				defer stopWatch()
			}

			return srv.Serve(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "address to listen on (default from config)")
	cmd.Flags().StringVar(&watchDir, "watch", "", "fixture directory to watch for changes and log reload events")
	cmd.Flags().BoolVarP(&verboseFl, "verbose", "v", false, "verbose server logs")
	return cmd
}

// watchFixtures logs a reload notice whenever a file under dir changes, so
// an operator editing fixtures on disk can see pytableaux noticed without
// restarting the server. It does not itself reload any in-process state;
// pkg/fixtures is read once at process start.
func watchFixtures(ctx context.Context, dir string, logger *slog.Logger) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
					logger.Info("fixture file changed, restart to pick up new fixtures", "path", ev.Name, "op", ev.Op.String())
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("fixture watcher error", "error", err)
			}
		}
	}()

	return func() { _ = watcher.Close() }, nil
}

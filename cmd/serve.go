package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/docsrv/docsrv/internal/catalog"
	"github.com/docsrv/docsrv/internal/config"
	"github.com/docsrv/docsrv/internal/logging"
	"github.com/docsrv/docsrv/internal/metrics"
	"github.com/docsrv/docsrv/internal/resolver"
	"github.com/docsrv/docsrv/internal/scanner"
	"github.com/docsrv/docsrv/internal/server"
	"github.com/docsrv/docsrv/internal/store"
	"github.com/docsrv/docsrv/internal/version"
	"github.com/docsrv/docsrv/internal/watcher"
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the page server",
	Long: `Serve builds the template catalog synchronously, then starts the HTTP
server and the background reload loop. The initial build is fatal on
error: the service cannot serve a single page without one valid
catalog. Later rebuilds are not: a broken edit is logged and the
previous catalog keeps serving.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 3000, "port to serve on")
	serveCmd.Flags().String("host", "localhost", "host to bind to")
	serveCmd.Flags().String("templates", "templates", "template root directory")
	serveCmd.Flags().Bool("no-watch", false, "disable template reloading")
	bindFlags(serveCmd.Flags(), map[string]string{
		"server.port":    "port",
		"server.host":    "host",
		"templates.root": "templates",
	})

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if noWatch, _ := cmd.Flags().GetBool("no-watch"); noWatch {
		cfg.Templates.Watch = false
	}
	if cmd.Flags().Changed("templates") {
		cfg.Templates.Root, _ = cmd.Flags().GetString("templates")
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host, _ = cmd.Flags().GetString("host")
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:      logging.ParseLevel(cfg.Logging.Level),
		Format:     cfg.Logging.Format,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	alert, err := cfg.GlobalAlert()
	if err != nil {
		return err
	}

	var source resolver.ConfigSource
	if cfg.Database.URL != "" {
		pg, err := resolver.OpenPG(cfg.Database.URL)
		if err != nil {
			return err
		}
		defer pg.Close()
		source = pg
	}

	res := resolver.New(source, alert, version.BuildVersion(), logger)

	// The startup build is synchronous and fatal on error.
	files, err := scanner.Scan(cfg.Templates.Root)
	if err != nil {
		return err
	}
	vals := res.Resolve(ctx)
	cat, err := catalog.Build(files, catalog.DefaultRegistrations(vals, logger))
	if err != nil {
		return err
	}
	logger.Info(ctx, "built template catalog", "templates", cat.Len())

	catalogStore := store.New(cat)
	m := metrics.New()
	m.ReloadSucceeded(cat.Len())

	srv := server.New(catalogStore, cfg, logger, m)

	if cfg.Templates.Watch {
		reloader := watcher.NewReloader(catalogStore, res, cfg.Templates.Root, logger,
			watcher.WithDebounce(cfg.Templates.Debounce),
			watcher.WithMetrics(m),
			watcher.WithSwapHook(srv.LiveReload().NotifyReload),
		)
		defer reloader.Stop()

		// A failed watch is degraded mode, not a startup failure: the
		// catalog we just built keeps serving.
		_ = reloader.StartWatching(ctx)
	}

	return srv.ListenAndServe(ctx)
}

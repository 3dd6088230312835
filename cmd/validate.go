package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docsrv/docsrv/internal/catalog"
	"github.com/docsrv/docsrv/internal/config"
	"github.com/docsrv/docsrv/internal/logging"
	"github.com/docsrv/docsrv/internal/resolver"
	"github.com/docsrv/docsrv/internal/scanner"
	"github.com/docsrv/docsrv/internal/version"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Scan and compile the template catalog once",
	Long: `Validate performs one scan-and-build cycle and reports the result
without starting the server. Useful in CI to catch template syntax
errors before deploying.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().String("templates", "templates", "template root directory")
	bindFlags(validateCmd.Flags(), map[string]string{"templates.root": "templates"})

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("templates") {
		cfg.Templates.Root, _ = cmd.Flags().GetString("templates")
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
	})

	files, err := scanner.Scan(cfg.Templates.Root)
	if err != nil {
		return err
	}

	alert, err := cfg.GlobalAlert()
	if err != nil {
		return err
	}

	// Validation runs without a config store; externally-sourced
	// values resolve to their fallbacks.
	res := resolver.New(nil, alert, version.BuildVersion(), logger)
	vals := res.Resolve(cmd.Context())

	cat, err := catalog.Build(files, catalog.DefaultRegistrations(vals, logger))
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "catalog ok: %d templates\n", cat.Len())
	for _, name := range cat.Names() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
	}
	return nil
}

// Package cmd provides the docsrv command-line interface.
//
// Configuration is layered: command-line flags take precedence over
// DOCSRV_-prefixed environment variables, which take precedence over
// the configuration file (.docsrv.yml by default, overridable with
// --config or DOCSRV_CONFIG_FILE).
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "docsrv",
	Short: "Documentation page server with hot-reloading templates",
	Long: `docsrv renders documentation pages from a catalog of templates on
disk. The catalog stays hot: it is rebuilt in the background whenever a
template file changes and swapped in atomically, so in-flight renders
finish against the snapshot they started with and a broken edit never
takes the service down.

Quick Start:
  docsrv serve                    Start the page server
  docsrv validate                 Scan and compile templates once
  docsrv version                  Print build information`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .docsrv.yml, can also use DOCSRV_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")
	bindFlags(rootCmd.PersistentFlags(), map[string]string{
		"logging.level":  "log-level",
		"logging.format": "log-format",
	})
}

// initConfig wires viper's config sources: --config flag first, then
// the DOCSRV_CONFIG_FILE environment variable, then .docsrv.yml in the
// working directory. A missing config file is not an error; defaults
// apply.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("DOCSRV_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".docsrv")
	}

	viper.SetEnvPrefix("DOCSRV")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

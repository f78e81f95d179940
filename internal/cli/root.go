// Package cli implements the wbscli command tree.
package cli

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	wbs "github.com/stfnandersen/go-wbs"
	"github.com/stfnandersen/go-wbs/internal/config"
	"github.com/stfnandersen/go-wbs/logging"
)

var (
	cfgFile string
	apiHost string
	timeout time.Duration
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "wbscli",
	Short: "Query the Withings Body Scale services API",
	Long: `wbscli talks to the legacy Withings Body Scale (WBS) web services API:
it lists users who share their measurement data and prints their body
measures (weight, height, fat ratio, ...).

Credentials are asked for interactively; the password is never echoed.`,
	SilenceUsage: true,
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&apiHost, "host", "", "API host (overrides config)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "request timeout (overrides config)")
}

// newClient builds a wbs.Client from config, flags and environment.
func newClient() (*wbs.Client, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if apiHost != "" {
		cfg.APIHost = apiHost
	}
	if timeout > 0 {
		cfg.RequestTimeout = timeout
	}

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(cfg.LogLevel),
	})))

	return wbs.New(
		wbs.WithHost(cfg.APIHost),
		wbs.WithScheme(cfg.Scheme),
		wbs.WithTimeout(cfg.RequestTimeout),
		wbs.WithLogger(log),
	), nil
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/reoring/rpcbase/i18n"
	"github.com/reoring/rpcbase/internal/config"
)

var (
	cfgFile string

	cfg     *config.Config
	logger  zerolog.Logger
	metrics *prometheus.Registry
)

var rootCmd = &cobra.Command{
	Use:   "rpcbind",
	Short: "Bind, validate, and encode RPC interface messages",
	Long: `rpcbind binds JSON or YAML payloads to the messages of the test RPC
interface, reports validation issues, and prints canonical JSON.

Functions are named either by name (AddSubMenu) or by numeric id (7).`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) { reportMetrics() },
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (defaults and RPCBIND_* env when empty)")
}

func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.LoadWithFallback(cfgFile)
	if err != nil {
		return err
	}
	i18n.SetLanguage(cfg.Language)
	logger = newLogger(cmd.ErrOrStderr(), cfg)
	if cfg.Metrics.Enabled {
		metrics = prometheus.NewRegistry()
	}
	return nil
}

func newLogger(w io.Writer, cfg *config.Config) zerolog.Logger {
	if cfg.Logging.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	return zerolog.New(w).Level(cfg.Level()).With().Timestamp().Logger()
}

// reportMetrics logs every counter sample gathered during the run.
func reportMetrics() {
	if metrics == nil {
		return
	}
	families, err := metrics.Gather()
	if err != nil {
		logger.Error().Err(err).Msg("gather metrics")
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			ev := logger.Info().Str("metric", mf.GetName()).Float64("value", m.GetCounter().GetValue())
			for _, lp := range m.GetLabel() {
				ev = ev.Str(lp.GetName(), lp.GetValue())
			}
			ev.Msg("counter")
		}
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dnspurge/dnspurge/config/dnspurgecfg"
	"github.com/dnspurge/dnspurge/internal/logging"
	"github.com/spf13/cobra"
)

// rootConfig holds the configuration resolved in PersistentPreRunE.
var rootConfig *dnspurgecfg.Config

// logFile holds the log sink opened in PersistentPreRunE so main can close it.
var logFile *logging.LogFile

// getConfig returns the resolved configuration, or an empty one when the
// root command has not run yet.
func getConfig() *dnspurgecfg.Config {
	if rootConfig != nil {
		return rootConfig
	}
	return &dnspurgecfg.Config{}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dnspurge",
		Short:   "Purge cached DNS records from the 1.1.1.1 public resolver",
		Long:    "dnspurge asks the Cloudflare 1.1.1.1 purge API to drop cached records for a domain, one request per record type.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags, env values act as defaults
	cmd.PersistentFlags().String("config", os.Getenv(dnspurgecfg.ConfigEnvKey), "Config file path (env DNSPURGE_CONFIG) (default: ./dnspurge.yml if present)")
	cmd.PersistentFlags().String("db-url", os.Getenv("DNSPURGE_DB_URL"), "Run history database URL (env DNSPURGE_DB_URL) (sqlite:/path/to.db), empty disables history")
	cmd.PersistentFlags().String("log-format", "human", "Log format (human|text|json) (env DNSPURGE_LOG_FORMAT)")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().String("log-output", "", "Log output (stderr if empty, none, auto, or a file path)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		cfgPath, _ := c.Flags().GetString("config")
		cfg, err := dnspurgecfg.Resolve(cfgPath, ".")
		if err != nil {
			return err
		}
		rootConfig = cfg

		format, _ := c.Flags().GetString("log-format")
		if !c.Flags().Changed("log-format") && cfg.Logging.Format != "" {
			format = cfg.Logging.Format
		}
		if env := os.Getenv(dnspurgecfg.LogFormatEnvKey); env != "" { // env overrides flag
			format = env
		}
		levelName, _ := c.Flags().GetString("log-level")
		if !c.Flags().Changed("log-level") && cfg.Logging.Level != "" {
			levelName = cfg.Logging.Level
		}
		level, err := logging.ParseLevel(levelName)
		if err != nil {
			return err
		}

		output, _ := c.Flags().GetString("log-output")
		if !c.Flags().Changed("log-output") && cfg.Logging.Output != "" {
			output = cfg.Logging.Output
		}
		lf, err := logging.NewLogFile(&logging.LogConfig{
			Output:        output,
			Dir:           cfg.Logging.Dir,
			RetentionDays: cfg.Logging.RetentionDays,
		})
		if err != nil {
			return err
		}
		logFile = lf
		if lf.Path != "" {
			// Best-effort retention sweep alongside the file just opened.
			_ = logging.CleanupOldLogFiles(filepath.Dir(lf.Path), cfg.Logging.RetentionDays)
		}

		l, err := logging.NewWithWriter(format, level, lf.Writer())
		if err != nil {
			return err
		}
		ctx := logging.WithLogger(c.Context(), l)
		c.SetContext(ctx)
		return nil
	}

	// Add subcommands
	cmd.AddCommand(newCmdPurge())
	cmd.AddCommand(newCmdTypes())
	cmd.AddCommand(newCmdHistory())
	cmd.AddCommand(newCmdVersion())
	return cmd
}

func main() {
	// Ctrl-C stops submissions, the partial summary still prints.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd()
	root.SetContext(ctx)
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
	}
	if logFile != nil {
		_ = logFile.Close()
	}
	if err != nil {
		stop()
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/five82/pocsum/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("pocsum failed")
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var (
		opts     app.Options
		logLevel = "info"
	)

	cmd := &cobra.Command{
		Use:   "pocsum [logfile]",
		Short: "Summarize a PoC environment log",
		Long: `pocsum reads a log captured from the PoC container stack, picks out
passed, failed, warning and error lines plus poc1_* container states, and
prints a summary report.

The log file defaults to log_path from the config file, then logs.txt.
Arguments after the first are ignored.
A missing log file still produces a report (status UNKNOWN).`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureLogging(cmd, logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.LogPath = args[0]
			}
			opts.Stdout = cmd.OutOrStdout()
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default ~/.config/pocsum/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/pocsum/prefs.toml)")
	flags.IntVarP(&opts.TailLines, "tail", "n", 0, "only summarize the last N lines of the log (0 = all)")
	flags.BoolVar(&opts.View, "view", false, "browse the report in an interactive pager")
	flags.BoolVar(&opts.Plain, "no-color", false, "disable colored output")
	flags.StringVar(&logLevel, "log-level", logLevel, "diagnostic log level (debug, info, warn, error)")

	return cmd
}

func configureLogging(cmd *cobra.Command, level string) error {
	logger := logrus.StandardLogger()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return nil
}

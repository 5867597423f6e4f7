package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/five82/pocsum/internal/config"
	"github.com/five82/pocsum/internal/logfile"
	"github.com/five82/pocsum/internal/prefs"
	"github.com/five82/pocsum/internal/report"
	"github.com/five82/pocsum/internal/summary"
	"github.com/five82/pocsum/internal/ui"
)

// Options configure a pocsum run.
type Options struct {
	LogPath    string // empty uses config log_path
	ConfigPath string // empty uses ~/.config/pocsum/config.toml
	PrefsPath  string // empty uses ~/.config/pocsum/prefs.toml
	TailLines  int    // zero reads the whole log
	View       bool   // open the interactive pager instead of printing
	Plain      bool   // never emit color sequences

	Stdout io.Writer        // nil uses os.Stdout
	Logger *logrus.Logger   // nil uses the standard logger
	Now    func() time.Time // nil uses time.Now
}

// Run produces one report.
func Run(ctx context.Context, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		log.WithError(err).Warn("Config unusable, using defaults")
		cfg = config.Default()
	}
	userPrefs := prefs.Load(opts.PrefsPath)

	logPath := strings.TrimSpace(opts.LogPath)
	if logPath == "" {
		logPath = cfg.LogPath
	}

	data := summary.Analyze(loadLog(log, logPath, opts.TailLines))
	log.WithFields(logrus.Fields{
		"path":       logPath,
		"passed":     len(data.Passed),
		"failed":     len(data.Failed),
		"warnings":   len(data.Warnings),
		"errors":     len(data.Errors),
		"containers": data.Containers.Len(),
	}).Debug("Log analyzed")

	reportOpts := report.Options{
		Now:       opts.Now,
		Endpoints: cfg.Endpoints,
		Theme:     report.GetTheme(userPrefs.Theme),
		Plain:     opts.Plain,
	}

	if opts.View {
		return ui.Run(ui.Options{
			Context:   ctx,
			Data:      data,
			Report:    reportOpts,
			Source:    logPath,
			ThemeName: userPrefs.Theme,
			PrefsPath: opts.PrefsPath,
		})
	}

	if err := report.Render(out, data, reportOpts); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// loadLog returns the log text, or "" after a warning when it cannot be read.
func loadLog(log *logrus.Logger, path string, tail int) string {
	text, err := logfile.Tail(path, tail)
	if err == nil {
		return text
	}
	entry := log.WithField("path", path)
	if errors.Is(err, os.ErrNotExist) {
		entry.Warnf("Log file '%s' not found. Generating empty report.", path)
	} else {
		entry.WithError(err).Warn("Log file unreadable. Generating empty report.")
	}
	return ""
}

package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, opts Options) (string, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	var out bytes.Buffer
	opts.Stdout = &out
	opts.Logger = logger
	opts.Plain = true
	opts.Now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.Local) }
	if opts.ConfigPath == "" {
		opts.ConfigPath = filepath.Join(t.TempDir(), "missing.toml")
	}
	if opts.PrefsPath == "" {
		opts.PrefsPath = filepath.Join(t.TempDir(), "prefs.toml")
	}
	require.NoError(t, Run(context.Background(), opts))
	return out.String(), hook
}

func TestRun_MissingLogProducesUnknownReport(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")

	out, hook := runApp(t, Options{LogPath: missing})

	assert.Contains(t, out, "Status: ⚠️  UNKNOWN")
	assert.Contains(t, out, "Generated: 2025-06-01 12:00:00")
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, missing, hook.LastEntry().Data["path"])
	assert.Contains(t, hook.LastEntry().Message, "not found")
}

func TestRun_ReadsLogArgument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.txt")
	require.NoError(t, os.WriteFile(path, []byte("[PASS] a\n[FAIL] b\npoc1_web  up  running\n"), 0o644))

	out, hook := runApp(t, Options{LogPath: path})

	assert.Contains(t, out, "Status: ❌ FAILED")
	assert.Contains(t, out, "✅ web: RUNNING")
	assert.Empty(t, hook.Entries)
}

func TestRun_UsesConfigLogPathAndEndpoints(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "poc.log")
	require.NoError(t, os.WriteFile(logPath, []byte("[PASS] only\n"), 0o644))
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`log_path = "`+filepath.ToSlash(logPath)+`"

[[endpoints]]
name = "Grafana"
url = "http://localhost:3000"
`), 0o644))

	out, _ := runApp(t, Options{ConfigPath: cfgPath})

	assert.Contains(t, out, "Status: ✅ PASSED")
	assert.Contains(t, out, "  • Grafana:  http://localhost:3000")
}

func TestRun_BrokenConfigFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_path = ["), 0o644))

	out, hook := runApp(t, Options{ConfigPath: cfgPath, LogPath: filepath.Join(dir, "none.log")})

	assert.Contains(t, out, "Authentik:   http://localhost:9000")
	require.Len(t, hook.Entries, 2)
	assert.Contains(t, hook.Entries[0].Message, "Config unusable")
}

func TestRun_TailLimitsInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.txt")
	require.NoError(t, os.WriteFile(path, []byte("[FAIL] old\n[PASS] new\n"), 0o644))

	out, _ := runApp(t, Options{LogPath: path, TailLines: 1})

	assert.Contains(t, out, "Status: ✅ PASSED")
	assert.NotContains(t, out, "[FAIL] old")
}

func TestRun_TailLargerThanLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.txt")
	require.NoError(t, os.WriteFile(path, []byte("[PASS] only\n"), 0o644))

	out, hook := runApp(t, Options{LogPath: path, TailLines: 1 << 62})

	assert.Contains(t, out, "Status: ✅ PASSED")
	assert.Empty(t, hook.Entries)
}

func TestRun_TailKeepsLongLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.txt")
	body := "[FAIL] a\n[PASS] " + strings.Repeat("x", 2*1024*1024) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	full, _ := runApp(t, Options{LogPath: path})
	tailed, hook := runApp(t, Options{LogPath: path, TailLines: 5})

	assert.Contains(t, full, "Status: ❌ FAILED")
	assert.Contains(t, tailed, "Status: ❌ FAILED")
	assert.Empty(t, hook.Entries)
}

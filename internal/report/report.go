// Package report renders a summary.Data as the PoC environment report.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/five82/pocsum/internal/config"
	"github.com/five82/pocsum/internal/summary"
)

const (
	ruleWidth   = 60
	passedLimit = 10
	errorLimit  = 5
)

// Options configures rendering.
type Options struct {
	Now       func() time.Time  // nil uses time.Now
	Endpoints []config.Endpoint // nil uses config.DefaultEndpoints
	Theme     Theme             // zero value uses the default theme
	// Renderer decides the color profile; nil builds one for the writer.
	Renderer *lipgloss.Renderer
	// Plain forces output without escape sequences. Renderer is left untouched.
	Plain bool
}

// Render writes the report for data to w.
func Render(w io.Writer, data summary.Data, opts Options) error {
	_, err := io.WriteString(w, String(w, data, opts))
	return err
}

// String builds the report text. w is only used to detect the color profile
// when opts.Renderer is nil and may be nil itself.
func String(w io.Writer, data summary.Data, opts Options) string {
	r := opts.Renderer
	switch {
	case opts.Plain:
		r = lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.Ascii)
	case r == nil:
		if w == nil {
			w = io.Discard
		}
		r = lipgloss.NewRenderer(w)
	}
	theme := opts.Theme
	if theme.Name == "" {
		theme = GetTheme("")
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	endpoints := opts.Endpoints
	if endpoints == nil {
		endpoints = config.DefaultEndpoints()
	}

	b := &builder{styles: theme.Styles(r), color: r.ColorProfile() != termenv.Ascii}
	b.banner("  PoC1 ENVIRONMENT SUMMARY REPORT")
	b.add(fmt.Sprintf("Generated: %s", now().Format("2006-01-02 15:04:05")))
	b.blank()

	writeOverall(b, data)
	writeContainers(b, data.Containers.List())
	writePassed(b, data.Passed)
	writeFailed(b, data.Failed)
	writeWarnings(b, data.Warnings)
	writeErrors(b, data.Errors)
	writeEndpoints(b, endpoints)
	writeRecommendations(b, len(data.Failed) > 0)

	b.banner("End of Report")
	return b.String()
}

func writeOverall(b *builder, data summary.Data) {
	b.section("📊 OVERALL STATUS")
	switch data.Overall() {
	case summary.StatusFailed:
		b.add(b.paint(b.styles.Danger, "Status: ❌ FAILED"))
		b.add(fmt.Sprintf("Some checks did not pass (%d failures)", len(data.Failed)))
	case summary.StatusPassed:
		b.add(b.paint(b.styles.Success, "Status: ✅ PASSED"))
		b.add(fmt.Sprintf("All checks completed successfully (%d passed)", len(data.Passed)))
	default:
		b.add(b.paint(b.styles.Warning, "Status: ⚠️  UNKNOWN"))
		b.add("No check results found in logs")
	}
	b.blank()
}

func writeContainers(b *builder, containers []summary.ContainerStatus) {
	if len(containers) == 0 {
		return
	}
	b.section("🐳 CONTAINER STATUS")
	for _, c := range containers {
		icon := "❌"
		if c.Running() {
			icon = "✅"
		}
		b.add(fmt.Sprintf("%s %s: %s", icon, c.Name, strings.ToUpper(c.State)))
	}
	b.blank()
}

func writePassed(b *builder, passed []string) {
	if len(passed) == 0 {
		return
	}
	b.section(fmt.Sprintf("✅ PASSED CHECKS (%d)", len(passed)))
	for _, check := range head(passed, passedLimit) {
		b.add("  ✓ " + check)
	}
	if extra := len(passed) - passedLimit; extra > 0 {
		b.add(b.paint(b.styles.Muted, fmt.Sprintf("  ... and %d more", extra)))
	}
	b.blank()
}

func writeFailed(b *builder, failed []string) {
	if len(failed) == 0 {
		return
	}
	b.section(fmt.Sprintf("❌ FAILED CHECKS (%d)", len(failed)))
	for _, check := range failed {
		b.add("  ✗ " + check)
	}
	b.blank()
}

func writeWarnings(b *builder, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	b.section(fmt.Sprintf("⚠️  WARNINGS (%d)", len(warnings)))
	for _, warning := range warnings {
		b.add("  ⚠ " + warning)
	}
	b.blank()
}

func writeErrors(b *builder, errs []string) {
	if len(errs) == 0 {
		return
	}
	b.section(fmt.Sprintf("🔥 ERRORS DETECTED (%d)", len(errs)))
	for _, e := range head(errs, errorLimit) {
		b.add("  • " + e)
	}
	if extra := len(errs) - errorLimit; extra > 0 {
		b.add(b.paint(b.styles.Muted, fmt.Sprintf("  ... and %d more errors", extra)))
	}
	b.blank()
}

func writeEndpoints(b *builder, endpoints []config.Endpoint) {
	b.section("🌐 SERVICE ENDPOINTS")
	width := 0
	for _, ep := range endpoints {
		width = max(width, len([]rune(ep.Name))+1)
	}
	for _, ep := range endpoints {
		b.add(fmt.Sprintf("  • %-*s%s", width+2, ep.Name+":", ep.URL))
	}
	b.blank()
}

func writeRecommendations(b *builder, failed bool) {
	b.section("💡 RECOMMENDATIONS")
	if failed {
		b.add("  1. Review failed checks above")
		b.add("  2. Check container logs: docker compose logs <service>")
		b.add("  3. Verify .env configuration in config/.env")
		b.add("  4. Ensure all required ports are available")
	} else {
		b.add("  • Environment is ready for testing")
		b.add("  • Access services using URLs above")
		b.add("  • Check config/.env for credentials")
	}
	b.blank()
}

func head(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}

type builder struct {
	lines  []string
	styles Styles
	color  bool
}

func (b *builder) add(line string) {
	b.lines = append(b.lines, line)
}

func (b *builder) blank() {
	b.add("")
}

// paint styles a single line. Plain output bypasses lipgloss entirely so
// tabs and padding in log lines are never rewritten.
func (b *builder) paint(style lipgloss.Style, text string) string {
	if !b.color {
		return text
	}
	return style.Render(text)
}

func (b *builder) banner(title string) {
	rule := b.paint(b.styles.Rule, strings.Repeat("=", ruleWidth))
	b.add(rule)
	b.add(b.paint(b.styles.Title, title))
	b.add(rule)
}

func (b *builder) section(title string) {
	b.add(b.paint(b.styles.Heading, title))
	b.add(b.paint(b.styles.Rule, strings.Repeat("-", ruleWidth)))
}

func (b *builder) String() string {
	return strings.Join(b.lines, "\n") + "\n"
}

// Package ui provides a Bubble Tea pager for browsing a rendered report.
package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/five82/pocsum/internal/prefs"
	"github.com/five82/pocsum/internal/report"
	"github.com/five82/pocsum/internal/summary"
)

// footerHeight is the number of rows reserved below the viewport.
const footerHeight = 1

// Options configures the pager.
type Options struct {
	Context   context.Context
	Data      summary.Data
	Report    report.Options
	Source    string // log path shown in the footer
	ThemeName string
	PrefsPath string
	// Renderer overrides the color profile detection (tests).
	Renderer *lipgloss.Renderer
}

// Model is the root application state for Bubble Tea.
type Model struct {
	data      summary.Data
	reportOpt report.Options
	source    string
	prefsPath string
	renderer  *lipgloss.Renderer

	theme    report.Theme
	styles   report.Styles
	keys     keyMap
	help     help.Model
	viewport viewport.Model
	width    int
	height   int
	ready    bool
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	theme := report.GetTheme(opts.ThemeName)
	return Model{
		data:      opts.Data,
		reportOpt: opts.Report,
		source:    opts.Source,
		prefsPath: prefsPath,
		renderer:  r,
		theme:     theme,
		styles:    theme.Styles(r),
		keys:      DefaultKeyMap(),
		help:      help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		height := max(msg.Height-footerHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.help.Width = msg.Width
		m.refreshContent()
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.help.FullHelpView(m.keys.FullHelp())
	}
	return m.viewport.View() + "\n" + m.renderFooter()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
	}
	return m, nil
}

func (m *Model) cycleTheme() {
	m.theme = report.GetTheme(report.NextTheme(m.theme.Name))
	m.styles = m.theme.Styles(m.renderer)
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
		logrus.WithError(err).Debug("save prefs")
	}
	m.refreshContent()
}

func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	opts := m.reportOpt
	opts.Theme = m.theme
	opts.Renderer = m.renderer
	offset := m.viewport.YOffset
	m.viewport.SetContent(report.String(nil, m.data, opts))
	m.viewport.SetYOffset(offset)
}

func (m Model) renderFooter() string {
	status := m.data.Overall().String()
	text := fmt.Sprintf("%s · %s · %s · %3.0f%%", m.source, status, m.theme.Name, m.viewport.ScrollPercent()*100)
	text += "  " + m.help.ShortHelpView(m.keys.ShortHelp())
	return m.styles.Footer.Width(m.width).MaxHeight(footerHeight).Render(text)
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

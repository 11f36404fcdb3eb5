package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/steamtail/internal/monitor"
	"github.com/five82/steamtail/internal/prefs"
)

const maxBarWidth = 60

// Options configure the live view.
type Options struct {
	Driver *monitor.Driver
	Theme  string
	// Format renders the line printed above the view for each cycle. Nil
	// uses monitor.FormatLine with the current theme's status colours.
	Format func(monitor.Report) string
	// Prefs, when set, receives the theme chosen with the t key.
	Prefs *prefs.Store
}

type cycleMsg struct {
	state  monitor.DriverState
	report monitor.Report
}

type nextCycleMsg struct{}

// Model is the bubbletea model for the live view. Each cycle runs in a
// command so log reads never block rendering.
type Model struct {
	driver *monitor.Driver
	format func(monitor.Report) string
	prefs  *prefs.Store
	theme  Theme
	styles Styles

	state    monitor.DriverState
	last     *monitor.Report
	spinner  spinner.Model
	bar      progress.Model
	quitting bool
}

// NewModel builds the live view model.
func NewModel(opts Options) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		driver:  opts.Driver,
		format:  opts.Format,
		prefs:   opts.Prefs,
		spinner: sp,
	}
	m.applyTheme(GetTheme(opts.Theme), 40)
	return m
}

func (m *Model) applyTheme(theme Theme, barWidth int) {
	m.theme = theme
	m.styles = theme.Styles()
	m.spinner.Style = m.styles.AccentText
	m.bar = progress.New(
		progress.WithSolidFill(theme.Success),
		progress.WithoutPercentage(),
		progress.WithWidth(barWidth),
	)
}

func (m Model) formatLine(r monitor.Report) string {
	if m.format != nil {
		return m.format(r)
	}
	return monitor.FormatLine(r, m.styles.StatusText)
}

// Init starts the spinner and the first cycle.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runCycle())
}

func (m Model) runCycle() tea.Cmd {
	driver, st := m.driver, m.state
	return func() tea.Msg {
		next, rep := driver.Cycle(st)
		return cycleMsg{state: next, report: rep}
	}
}

// Update handles cycle results, spinner ticks and quit keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "t":
			m.applyTheme(GetTheme(NextTheme(m.theme.Name)), m.bar.Width)
			if m.prefs != nil {
				_ = m.prefs.Save(prefs.Prefs{Theme: m.theme.Name})
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > maxBarWidth {
			width = maxBarWidth
		}
		if width > 0 {
			m.bar.Width = width
		}
		return m, nil

	case cycleMsg:
		m.state = msg.state
		rep := msg.report
		m.last = &rep
		printLine := tea.Println(m.formatLine(rep))
		if m.driver.Finished(m.state) {
			m.quitting = true
			return m, tea.Sequence(printLine, tea.Quit)
		}
		wait := tea.Tick(m.driver.Interval(), func(time.Time) tea.Msg { return nextCycleMsg{} })
		return m, tea.Batch(printLine, wait)

	case nextCycleMsg:
		return m, m.runCycle()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the current cycle.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	if m.last == nil {
		fmt.Fprintf(&b, "%s %s\n", m.spinner.View(), m.styles.MutedText.Render("Reading content log…"))
		b.WriteString(m.styles.Footer.Render("q quit · t theme"))
		return b.String()
	}

	rep := *m.last
	next := m.driver.Interval().Round(time.Second)
	header := fmt.Sprintf("%s %s", m.spinner.View(),
		m.styles.MutedText.Render(fmt.Sprintf("cycle %d/%d · next poll in %s", rep.Cycle, rep.Total, next)))
	b.WriteString(header + "\n\n")

	switch rep.Kind {
	case monitor.ReportNoActive:
		b.WriteString(m.styles.Text.Render("No active Steam download/update detected") + "\n")
	default:
		status := rep.Status()
		fmt.Fprintf(&b, "%s %s\n", m.styles.StatusStyle(status).Render(status), m.styles.Title.Render(rep.Name))
		if rep.Kind == monitor.ReportLive {
			b.WriteString(m.liveDetails(rep))
		}
	}

	b.WriteString("\n" + m.styles.Footer.Render("q quit · t theme"))
	return b.String()
}

func (m Model) liveDetails(rep monitor.Report) string {
	var b strings.Builder
	if pct, ok := rep.Snapshot.Percent(); ok {
		fmt.Fprintf(&b, "%s %s\n", m.bar.ViewAs(pct/100), m.styles.Text.Render(monitor.FormatProgress(rep.Snapshot)))
	} else {
		b.WriteString(m.styles.FaintText.Render(monitor.FormatProgress(rep.Snapshot)) + "\n")
	}
	b.WriteString(m.styles.MutedText.Render("speed ") + m.styles.Text.Render(monitor.FormatSpeed(rep.Snapshot.RateMbps)) + "\n")
	return b.String()
}

// Run shows the live view until every cycle has run, the user quits, or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Driver == nil {
		return errors.New("ui requires a driver")
	}
	p := tea.NewProgram(NewModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run live view: %w", err)
	}
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/promotrack/internal/cli/formatter"
	"github.com/alexanderramin/promotrack/internal/domain"
	"github.com/alexanderramin/promotrack/internal/promotion"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// ── messages ─────────────────────────────────────────────────────────────────

// facultyLoadedMsg signals that the record has been (re)loaded.
type facultyLoadedMsg struct {
	faculty *promotion.Faculty
	err     error
}

// dashboardActionMsg reports the outcome of a delete or apply.
type dashboardActionMsg struct {
	notice  string
	faculty *promotion.Faculty
	err     error
}

// ── keys ─────────────────────────────────────────────────────────────────────

type dashboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Delete  key.Binding
	Apply   key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Apply:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "apply")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Delete, k.Apply, k.Refresh, k.Quit}
}

func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ── model ────────────────────────────────────────────────────────────────────

// dashboardModel shows the points breakdown, eligibility and a selectable
// achievement table.
type dashboardModel struct {
	app     *App
	ctx     context.Context
	keys    dashboardKeyMap
	help    help.Model
	table   table.Model
	ids     []string
	faculty *promotion.Faculty
	loading bool
	notice  string
	err     error
}

func newDashboardModel(ctx context.Context, app *App) dashboardModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 8},
			{Title: "Category", Width: 12},
			{Title: "Title", Width: 32},
			{Title: "Detail", Width: 18},
			{Title: "Pts", Width: 4},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(formatter.ColorDim).
		BorderBottom(true).
		Foreground(formatter.ColorHeader).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(formatter.ColorFg).
		Background(formatter.ColorBlue).
		Bold(false)
	t.SetStyles(styles)

	return dashboardModel{
		app:     app,
		ctx:     ctx,
		keys:    newDashboardKeyMap(),
		help:    help.New(),
		table:   t,
		loading: true,
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.load()
}

func (m dashboardModel) load() tea.Cmd {
	svc, ctx := m.app.Faculty, m.ctx
	return func() tea.Msg {
		f, err := svc.Get(ctx)
		return facultyLoadedMsg{faculty: f, err: err}
	}
}

func (m dashboardModel) deleteSelected() tea.Cmd {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.ids) {
		return nil
	}
	id := m.ids[cursor]
	svc, ctx := m.app.Faculty, m.ctx
	return func() tea.Msg {
		res, err := svc.DeleteAchievement(ctx, id)
		if err != nil {
			return dashboardActionMsg{err: err}
		}
		return dashboardActionMsg{
			notice:  fmt.Sprintf("Deleted %q (%d pts)", res.Achievement.Label(), -res.Achievement.Points),
			faculty: res.Faculty,
		}
	}
}

func (m dashboardModel) apply() tea.Cmd {
	svc, ctx := m.app.Faculty, m.ctx
	return func() tea.Msg {
		f, err := svc.Apply(ctx)
		if err != nil {
			return dashboardActionMsg{err: err}
		}
		return dashboardActionMsg{notice: "Application submitted", faculty: f}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-14, 3))
		return m, nil

	case facultyLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.setFaculty(msg.faculty)
		}
		return m, nil

	case dashboardActionMsg:
		m.err = msg.err
		m.notice = msg.notice
		if msg.err == nil {
			m.setFaculty(msg.faculty)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			m.notice = ""
			return m, m.load()
		case key.Matches(msg, m.keys.Delete):
			return m, m.deleteSelected()
		case key.Matches(msg, m.keys.Apply):
			return m, m.apply()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *dashboardModel) setFaculty(f *promotion.Faculty) {
	m.faculty = f
	items := f.Achievements.All()
	rows := make([]table.Row, 0, len(items))
	ids := make([]string, 0, len(items))
	for _, a := range items {
		short := a.ID
		if len(short) > 8 {
			short = short[:8]
		}
		rows = append(rows, table.Row{
			short,
			formatter.CategoryLabel(a.Category()),
			a.Label(),
			a.Meta(),
			strconv.Itoa(a.Points),
		})
		ids = append(ids, a.ID)
	}
	m.table.SetRows(rows)
	m.ids = ids
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func (m dashboardModel) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Promotion Dashboard") + "\n\n")

	switch {
	case m.loading && m.faculty == nil:
		b.WriteString(formatter.Dim("Loading...") + "\n")
	case m.faculty == nil:
		b.WriteString(formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
	default:
		b.WriteString(m.summaryView())
		b.WriteString("\n")
		b.WriteString(m.table.View() + "\n")
	}

	if m.faculty != nil && m.err != nil {
		b.WriteString("\n" + formatter.StyleRed.Render(dashboardErrorText(m.err)) + "\n")
	} else if m.notice != "" {
		b.WriteString("\n" + formatter.StyleGreen.Render(m.notice) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m dashboardModel) summaryView() string {
	f := m.faculty
	e := f.Eligibility()
	name := f.Profile.Name
	if name == "" {
		name = "--"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", formatter.Bold(name), formatter.Dim(formatter.PositionLabel(f.Profile.CurrentPosition)))
	fmt.Fprintf(&b, "%s %d  %s  %s\n",
		formatter.Dim("Total:"), f.Points.Total,
		formatter.EligibilityIndicator(e.Eligible),
		formatter.ApplicationPill(f.Promotion.Status),
	)
	if e.Configured {
		fmt.Fprintf(&b, "%s %s\n", formatter.Dim("Threshold:"), formatter.RenderThresholdBar(e.ThresholdProgress(), 24))
	}
	if !f.WizardCompleted {
		b.WriteString(formatter.StyleYellow.Render("Onboarding not completed. Run `promotrack wizard` first.") + "\n")
	}
	return b.String()
}

func dashboardErrorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrIneligibleApplication):
		return "Not eligible yet: keep adding achievements."
	case errors.Is(err, domain.ErrAlreadyPending):
		return "An application is already pending."
	case errors.Is(err, domain.ErrWizardIncomplete):
		return "Complete the onboarding wizard first."
	}
	return "Error: " + err.Error()
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive dashboard of points and achievements",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("dashboard requires an interactive terminal")
			}
			p := tea.NewProgram(newDashboardModel(cmd.Context(), app), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
}

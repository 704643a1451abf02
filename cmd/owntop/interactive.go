package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ownkit/ownkit/alloc"
	"github.com/ownkit/ownkit/registry"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	releasedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	liveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type topModel struct {
	reg      *registry.Table
	tracking *alloc.Tracking
	work     *workload
	tbl      table.Model
	paused   bool
	interval time.Duration
}

type tickMsg time.Time

func newTopModel(reg *registry.Table, tracking *alloc.Tracking, work *workload, interval time.Duration) *topModel {
	columns := []table.Column{
		{Title: "FAMILY", Width: 8},
		{Title: "KIND", Width: 14},
		{Title: "STRONG", Width: 8},
		{Title: "WEAK", Width: 8},
		{Title: "STATE", Width: 10},
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(16),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4"))
	tbl.SetStyles(s)

	return &topModel{
		reg:      reg,
		tracking: tracking,
		work:     work,
		tbl:      tbl,
		interval: interval,
	}
}

func (m *topModel) Init() tea.Cmd {
	return m.tick()
}

func (m *topModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *topModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.work.stop()
			return m, tea.Quit

		case "p":
			m.paused = !m.paused

		case "s":
			m.reg.Sweep()
			m.refresh()
		}

	case tickMsg:
		if !m.paused {
			m.refresh()
		}
		return m, m.tick()
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m *topModel) refresh() {
	families := m.reg.Snapshot()
	rows := make([]table.Row, 0, len(families))
	for _, f := range families {
		state := "live"
		switch {
		case f.Freed:
			state = "freed"
		case f.Released:
			state = "released"
		}
		rows = append(rows, table.Row{
			strconv.FormatUint(uint64(f.Handle), 10),
			f.Kind,
			strconv.FormatInt(f.Strong, 10),
			strconv.FormatInt(f.Weak, 10),
			state,
		})
	}
	m.tbl.SetRows(rows)
}

func (m *topModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("owntop"))
	b.WriteString(" live ownership families\n\n")

	b.WriteString(m.tbl.View())
	b.WriteString("\n\n")

	released := 0
	live := 0
	for _, f := range m.reg.Snapshot() {
		if f.Freed {
			continue
		}
		if f.Released {
			released++
		} else {
			live++
		}
	}
	b.WriteString(liveStyle.Render(fmt.Sprintf("live %d", live)))
	b.WriteString("  ")
	b.WriteString(releasedStyle.Render(fmt.Sprintf("released %d", released)))
	b.WriteString("  ")
	b.WriteString(statStyle.Render(fmt.Sprintf(
		"allocs %d  frees %d  outstanding %d  bytes %d",
		m.tracking.Allocs(), m.tracking.Frees(), m.tracking.Live(), m.tracking.LiveBytes())))
	b.WriteString("\n\n")

	pause := "p pause"
	if m.paused {
		pause = "p resume"
	}
	b.WriteString(helpStyle.Render("↑/↓ scroll • " + pause + " • s sweep freed • q quit"))
	b.WriteString("\n")

	return b.String()
}

func runInteractive(reg *registry.Table, tracking *alloc.Tracking, workers int, churn time.Duration) error {
	w := newWorkload(tracking, workers, churn)
	w.start()

	model := newTopModel(reg, tracking, w, 250*time.Millisecond)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package now

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/stride/internal/engine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2).
			Align(lipgloss.Center)

	goalCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true).
			Padding(1, 0).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(40).
			Align(lipgloss.Center)

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Padding(0, 1)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)
)

// Model renders the focus view: the active goal plus the top of the
// ranked queue.
type Model struct {
	Result engine.Result
	Time   time.Time
	width  int
	height int
}

func New() Model {
	return Model{Time: time.Now()}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetResult(result engine.Result) {
	m.Result = result
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.Time = time.Time(msg)
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	var sections []string

	sections = append(sections,
		titleStyle.Render(fmt.Sprintf("Now: %02d:%02d", m.Time.Hour(), m.Time.Minute())))

	if m.Result.ActiveGoal != nil {
		sections = append(sections, goalCardStyle.Render(m.Result.ActiveGoal.DisplayLabel()))
	} else {
		sections = append(sections, goalCardStyle.Render("Nothing in progress"))
	}

	if m.Result.Meta.HasMultipleActive {
		sections = append(sections, warnStyle.Render("⚠ multiple goals marked active"))
	}

	if len(m.Result.NextGoals) > 0 {
		sections = append(sections, dimStyle.Render("Up next:"))
		for i, entry := range m.Result.NextGoals {
			line := fmt.Sprintf("%d. %s", i+1, entry.Goal.DisplayLabel())
			if entry.NextPlannedAt != nil {
				line += dimStyle.Render(entry.NextPlannedAt.Format(" (Mon 15:04)"))
			}
			sections = append(sections, lipgloss.NewStyle().Padding(0, 2).Render(line))
		}
	} else {
		sections = append(sections, dimStyle.Render("Queue is empty."))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

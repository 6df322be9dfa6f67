package goallist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/stride/internal/models"
)

type AddGoalMsg struct{}

type StartGoalMsg struct {
	ID string
}

type DoneGoalMsg struct {
	ID string
}

type DeleteGoalMsg struct {
	ID string
}

type RestoreGoalMsg struct {
	ID string
}

type Item struct {
	Goal models.Goal
}

func (i Item) Title() string {
	label := i.Goal.DisplayLabel()
	if i.Goal.DeletedAt != nil {
		return "👻 " + label + " (deleted)"
	}
	switch models.NormalizeStatus(i.Goal.Status) {
	case models.StatusActive:
		return "▶ " + label
	case models.StatusDone:
		return "✓ " + label
	case models.StatusInvalid:
		return "✗ " + label
	}
	return label
}

func (i Item) Description() string {
	var parts []string
	parts = append(parts, string(models.NormalizeStatus(i.Goal.Status)))
	if i.Goal.Schedule != nil && len(i.Goal.Schedule.TimeSlots) > 0 {
		parts = append(parts, fmt.Sprintf("%d slot(s)/week", len(i.Goal.Schedule.DaysOfWeek)*len(i.Goal.Schedule.TimeSlots)))
	}
	if i.Goal.Deadline != "" {
		parts = append(parts, "due "+i.Goal.Deadline)
	}
	if i.Goal.DeletedAt != nil {
		parts = append(parts, "can restore with 'r'")
	}
	return strings.Join(parts, " | ")
}

func (i Item) FilterValue() string { return i.Goal.DisplayLabel() }

type KeyMap struct {
	Add     key.Binding
	Start   key.Binding
	Done    key.Binding
	Delete  key.Binding
	Restore key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Done: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(goals []models.Goal, width, height int) Model {
	items := make([]list.Item, len(goals))
	for i, g := range goals {
		items[i] = Item{Goal: g}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Goals"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // Help is rendered globally by the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Start, keys.Done, keys.Delete, keys.Restore}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Start, keys.Done, keys.Delete, keys.Restore}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetGoals(goals []models.Goal) {
	items := make([]list.Item, len(goals))
	for i, g := range goals {
		items[i] = Item{Goal: g}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddGoalMsg{} }
		case key.Matches(msg, m.keys.Start):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Goal.DeletedAt == nil && !models.NormalizeStatus(i.Goal.Status).Terminal() {
					return m, func() tea.Msg { return StartGoalMsg{ID: i.Goal.ID} }
				}
			}
		case key.Matches(msg, m.keys.Done):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Goal.DeletedAt == nil && !models.NormalizeStatus(i.Goal.Status).Terminal() {
					return m, func() tea.Msg { return DoneGoalMsg{ID: i.Goal.ID} }
				}
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Goal.DeletedAt == nil {
					return m, func() tea.Msg { return DeleteGoalMsg{ID: i.Goal.ID} }
				}
			}
		case key.Matches(msg, m.keys.Restore):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Goal.DeletedAt != nil {
					return m, func() tea.Msg { return RestoreGoalMsg{ID: i.Goal.ID} }
				}
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No goals yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

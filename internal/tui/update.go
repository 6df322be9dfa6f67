package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/stride/internal/models"
	"github.com/julianstephens/stride/internal/tui/components/goallist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// Handle the add-goal form
	if m.state == StateAdding {
		if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
			m.state = StateGoals
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}
		cmds = append(cmds, cmd)

		switch m.form.State {
		case huh.StateCompleted:
			goal, err := m.goalFromForm()
			if err != nil {
				// Keep the user in the form so the value can be corrected
				m.formError = err.Error()
				m.form.State = huh.StateNormal
				return m, tea.Batch(cmds...)
			}
			m.formError = ""
			if err := m.store.AddGoal(goal); err == nil {
				m.refresh()
				m.state = StateGoals
			} else {
				m.formError = err.Error()
				m.form.State = huh.StateNormal
			}
		case huh.StateAborted:
			m.state = StateGoals
		}
		return m, tea.Batch(cmds...)
	}

	// Handle delete confirmation
	if m.state == StateConfirmDelete {
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch msg.String() {
			case "y", "Y":
				if err := m.store.DeleteGoal(m.goalToDeleteID); err == nil {
					m.refresh()
				}
				m.state = StateGoals
				m.goalToDeleteID = ""
			case "n", "N", "esc", "q":
				m.state = StateGoals
				m.goalToDeleteID = ""
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Leave room for the tab row and help line
		listHeight := msg.Height - 4

		h, v := docStyle.GetFrameSize()
		m.goalList.SetSize(msg.Width-h, listHeight-v)
		m.nowModel.SetSize(msg.Width, listHeight)

	case goallist.AddGoalMsg:
		m.goalForm = &GoalFormModel{}
		m.form = NewGoalForm(m.goalForm)
		m.state = StateAdding
		return m, m.form.Init()

	case goallist.StartGoalMsg:
		if goal, err := m.store.GetGoal(msg.ID); err == nil {
			if !models.NormalizeStatus(goal.Status).Terminal() {
				goal.Status = string(models.StatusActive)
				if err := m.store.UpdateGoal(goal); err == nil {
					m.store.SetActiveGoalID(goal.ID)
					m.refresh()
				}
			}
		}
		return m, nil

	case goallist.DoneGoalMsg:
		if goal, err := m.store.GetGoal(msg.ID); err == nil {
			goal.Status = string(models.StatusDone)
			if err := m.store.UpdateGoal(goal); err == nil {
				// Unpin the finished goal
				if state, err := m.store.GetState(); err == nil && state.UI.ActiveGoalID == msg.ID {
					m.store.SetActiveGoalID("")
				}
				m.refresh()
			}
		}
		return m, nil

	case goallist.DeleteGoalMsg:
		m.goalToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case goallist.RestoreGoalMsg:
		if err := m.store.RestoreGoal(msg.ID); err == nil {
			m.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab, m.keys.Right):
			m.state = (m.state + 1) % mainTabs
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab, m.keys.Left):
			m.state = (m.state - 1 + mainTabs) % mainTabs
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	// The clock ticks regardless of the focused tab
	var cmd tea.Cmd
	m.nowModel, cmd = m.nowModel.Update(msg)
	cmds = append(cmds, cmd)

	if m.state == StateGoals {
		m.goalList, cmd = m.goalList.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// goalFromForm parses the completed add-goal form into a Goal.
func (m *Model) goalFromForm() (models.Goal, error) {
	fm := m.goalForm

	goal := models.Goal{
		ID:        uuid.New().String(),
		Title:     strings.TrimSpace(fm.Title),
		Status:    string(models.StatusQueued),
		Deadline:  strings.TrimSpace(fm.Deadline),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if s := strings.TrimSpace(fm.Order); s != "" {
		order, err := strconv.Atoi(s)
		if err != nil {
			return models.Goal{}, err
		}
		goal.Order = &order
	}
	if s := strings.TrimSpace(fm.WhyLink); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return models.Goal{}, err
		}
		goal.WhyLink = v
	}
	if s := strings.TrimSpace(fm.Impact); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return models.Goal{}, err
		}
		goal.Impact = v
	}

	days := strings.TrimSpace(fm.Days)
	slots := strings.TrimSpace(fm.Slots)
	if days != "" || slots != "" {
		sched, err := parseScheduleInput(days, slots)
		if err != nil {
			return models.Goal{}, err
		}
		goal.Schedule = sched
	}

	return goal, nil
}

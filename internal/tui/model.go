package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/stride/internal/engine"
	"github.com/julianstephens/stride/internal/models"
	"github.com/julianstephens/stride/internal/storage"
	"github.com/julianstephens/stride/internal/tui/components/goallist"
	"github.com/julianstephens/stride/internal/tui/components/now"
	"github.com/julianstephens/stride/internal/validation"
)

type SessionState int

// The first mainTabs states double as tab indices.
const (
	StateNow SessionState = iota
	StateGoals
	StateAdding
	StateConfirmDelete
)

const mainTabs = 2

// GoalFormModel backs the huh add-goal form. Everything is a string
// until the form completes; parsing happens on submit.
type GoalFormModel struct {
	Title    string
	Days     string
	Slots    string
	Deadline string
	Order    string
	WhyLink  string
	Impact   string
}

type Model struct {
	store               storage.Provider
	engine              *engine.Engine
	state               SessionState
	keys                KeyMap
	help                help.Model
	goalList            goallist.Model
	nowModel            now.Model
	form                *huh.Form
	goalForm            *GoalFormModel
	quitting            bool
	width               int
	height              int
	goalToDeleteID      string
	formError           string
	validationWarning   string
	validationConflicts []validation.Conflict
}

func NewModel(store storage.Provider, eng *engine.Engine) Model {
	goals, err := store.GetAllGoalsIncludingDeleted()
	if err != nil {
		goals = []models.Goal{}
	}

	nm := now.New()
	if state, err := store.GetState(); err == nil {
		settings, _ := store.GetSettings()
		nm.SetResult(eng.Compute(state, time.Now(), settings.DefaultTopN))
	}

	m := Model{
		store:    store,
		engine:   eng,
		state:    StateNow,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		goalList: goallist.New(goals, 0, 0),
		nowModel: nm,
	}

	m.updateValidationStatus()

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateGoals {
		keys = append(keys, m.keys.Add, m.keys.Start, m.keys.Done, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}

	var actions []key.Binding
	if m.state == StateGoals {
		actions = []key.Binding{m.keys.Add, m.keys.Start, m.keys.Done, m.keys.Delete, m.keys.Restore}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return m.nowModel.Init()
}

// refresh reloads the goal list and recomputes the ranking after any
// mutation.
func (m *Model) refresh() {
	if goals, err := m.store.GetAllGoalsIncludingDeleted(); err == nil {
		m.goalList.SetGoals(goals)
	}
	if state, err := m.store.GetState(); err == nil {
		settings, _ := m.store.GetSettings()
		m.nowModel.SetResult(m.engine.Compute(state, time.Now(), settings.DefaultTopN))
	}
	m.updateValidationStatus()
}

// updateValidationStatus runs the data lint and updates the warning line
func (m *Model) updateValidationStatus() {
	state, err := m.store.GetState()
	if err != nil {
		m.validationWarning = "⚠ Validation unavailable"
		m.validationConflicts = nil
		return
	}

	result := validation.New().ValidateState(state)
	m.validationConflicts = result.Conflicts

	if len(result.Conflicts) > 0 {
		m.validationWarning = fmt.Sprintf("⚠ %d validation warning(s)", len(result.Conflicts))
	} else {
		m.validationWarning = ""
	}
}

// NewGoalForm creates the add-goal form
func NewGoalForm(fm *GoalFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Scheduled days").
				Description("Comma-separated, e.g. mon,wed,fri (optional)").
				Value(&fm.Days),
			huh.NewInput().
				Title("Time slots").
				Description("Comma-separated HH:MM, e.g. 07:00,18:30 (optional)").
				Value(&fm.Slots),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD)").
				Value(&fm.Deadline).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					if _, err := time.Parse("2006-01-02", s); err != nil {
						return fmt.Errorf("deadline must be YYYY-MM-DD")
					}
					return nil
				}),
			huh.NewInput().
				Title("Order").
				Description("Manual rank position; lower ranks first (optional)").
				Value(&fm.Order).
				Validate(optionalNumber("order")),
			huh.NewInput().
				Title("Why-link (0-1)").
				Description("How strongly this connects to your deeper why").
				Value(&fm.WhyLink).
				Validate(optionalNumber("why-link")),
			huh.NewInput().
				Title("Impact (0-10)").
				Value(&fm.Impact).
				Validate(optionalNumber("impact")),
		),
	).WithTheme(huh.ThemeDracula())
}

func optionalNumber(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return fmt.Errorf("%s must be a number", name)
		}
		return nil
	}
}

package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/julianstephens/stride/internal/models"
)

type Store struct {
	Version  int                    `json:"version"`
	Settings Settings               `json:"settings"`
	Goals    map[string]models.Goal `json:"goals"`
	UI       models.UIState         `json:"ui"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:  1,
		Settings: DefaultSettings(),
		Goals:    make(map[string]models.Goal),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'stride init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure maps are initialized
	if s.store.Goals == nil {
		s.store.Goals = make(map[string]models.Goal)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (Settings, error) {
	if s.store == nil {
		return Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) AddGoal(goal models.Goal) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Goals[goal.ID] = goal
	return s.save()
}

func (s *JSONStore) GetGoal(id string) (models.Goal, error) {
	if s.store == nil {
		return models.Goal{}, fmt.Errorf("storage not loaded")
	}

	goal, ok := s.store.Goals[id]
	if !ok || goal.DeletedAt != nil {
		return models.Goal{}, fmt.Errorf("goal not found: %s", id)
	}

	return goal, nil
}

func (s *JSONStore) GetAllGoals() ([]models.Goal, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	goals := make([]models.Goal, 0, len(s.store.Goals))
	for _, goal := range s.store.Goals {
		if goal.DeletedAt == nil {
			goals = append(goals, goal)
		}
	}

	// The backing map has no order; return a deterministic sequence so
	// the engine's stable ranking sees the same input every call.
	sort.Slice(goals, func(i, j int) bool {
		if goals[i].CreatedAt != goals[j].CreatedAt {
			return goals[i].CreatedAt < goals[j].CreatedAt
		}
		return goals[i].ID < goals[j].ID
	})

	return goals, nil
}

// GetAllGoalsIncludingDeleted also returns soft-deleted goals, for the
// TUI's restore flow.
func (s *JSONStore) GetAllGoalsIncludingDeleted() ([]models.Goal, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	goals := make([]models.Goal, 0, len(s.store.Goals))
	for _, goal := range s.store.Goals {
		goals = append(goals, goal)
	}

	sort.Slice(goals, func(i, j int) bool {
		if goals[i].CreatedAt != goals[j].CreatedAt {
			return goals[i].CreatedAt < goals[j].CreatedAt
		}
		return goals[i].ID < goals[j].ID
	})

	return goals, nil
}

func (s *JSONStore) UpdateGoal(goal models.Goal) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, ok := s.store.Goals[goal.ID]; !ok {
		return fmt.Errorf("goal not found: %s", goal.ID)
	}

	s.store.Goals[goal.ID] = goal
	return s.save()
}

func (s *JSONStore) DeleteGoal(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	goal, ok := s.store.Goals[id]
	if !ok {
		return fmt.Errorf("goal not found: %s", id)
	}

	// Soft delete: set deleted_at timestamp
	now := time.Now().UTC().Format(time.RFC3339)
	goal.DeletedAt = &now
	s.store.Goals[id] = goal

	// Drop a now-dangling active hint; the engine tolerates it, but
	// there is no reason to persist a reference to a deleted goal.
	if s.store.UI.ActiveGoalID == id {
		s.store.UI.ActiveGoalID = ""
	}

	return s.save()
}

func (s *JSONStore) RestoreGoal(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	goal, ok := s.store.Goals[id]
	if !ok {
		return fmt.Errorf("goal not found: %s", id)
	}

	// Only allow restoring goals that are currently soft-deleted
	if goal.DeletedAt == nil {
		return fmt.Errorf("cannot restore a goal that is not deleted: %s", id)
	}

	goal.DeletedAt = nil
	s.store.Goals[id] = goal
	return s.save()
}

func (s *JSONStore) GetState() (models.State, error) {
	goals, err := s.GetAllGoals()
	if err != nil {
		return models.State{}, err
	}

	return models.State{
		Goals: goals,
		UI:    s.store.UI,
	}, nil
}

func (s *JSONStore) SetActiveGoalID(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if id != "" {
		if _, ok := s.store.Goals[id]; !ok {
			return fmt.Errorf("goal not found: %s", id)
		}
	}

	s.store.UI.ActiveGoalID = id
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

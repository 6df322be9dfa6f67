package storage

import "github.com/julianstephens/stride/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Goals
	AddGoal(models.Goal) error
	GetGoal(id string) (models.Goal, error)
	GetAllGoals() ([]models.Goal, error)
	GetAllGoalsIncludingDeleted() ([]models.Goal, error)
	UpdateGoal(models.Goal) error
	DeleteGoal(id string) error
	RestoreGoal(id string) error

	// Snapshot assembly for the priorities engine
	GetState() (models.State, error)
	SetActiveGoalID(id string) error

	// Utils
	GetConfigPath() string
}

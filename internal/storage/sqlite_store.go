package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/stride/internal/models"
	_ "modernc.org/sqlite"
)

// schemaVersion is bumped whenever schema below changes shape.
const schemaVersion = 1

// "order" is an SQL keyword, so the column is named sort_order. The
// schedule is stored as two JSON array columns rather than a child table;
// it is read-modify-written as a unit and never queried by day or slot.
const schema = `
CREATE TABLE IF NOT EXISTS goals (
	id             TEXT PRIMARY KEY,
	title          TEXT NOT NULL DEFAULT '',
	name           TEXT NOT NULL DEFAULT '',
	label          TEXT NOT NULL DEFAULT '',
	status         TEXT NOT NULL DEFAULT '',
	sort_order     INTEGER,
	schedule_days  TEXT NOT NULL DEFAULT '',
	schedule_slots TEXT NOT NULL DEFAULT '',
	deadline       TEXT NOT NULL DEFAULT '',
	why_link       REAL NOT NULL DEFAULT 0,
	impact         REAL NOT NULL DEFAULT 0,
	created_at     TEXT NOT NULL DEFAULT '',
	deleted_at     TEXT
);

CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS app_state (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

const activeGoalKey = "active_goal_id"

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.ensureSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'stride init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.ensureSchema()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetDB exposes the raw connection for diagnostics (stride doctor).
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}

// SchemaVersion reports the stored schema version and the version this
// build writes.
func (s *SQLiteStore) SchemaVersion() (stored int, supported int, err error) {
	if s.db == nil {
		return 0, schemaVersion, fmt.Errorf("database not open")
	}
	var raw string
	err = s.db.QueryRow("SELECT value FROM app_state WHERE key = 'schema_version'").Scan(&raw)
	if err == sql.ErrNoRows {
		return 0, schemaVersion, fmt.Errorf("schema version not recorded")
	}
	if err != nil {
		return 0, schemaVersion, err
	}
	if _, err := fmt.Sscanf(raw, "%d", &stored); err != nil {
		return 0, schemaVersion, fmt.Errorf("unreadable schema version %q: %w", raw, err)
	}
	return stored, schemaVersion, nil
}

func (s *SQLiteStore) ensureSchema() error {
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	var stored string
	err := s.db.QueryRow("SELECT value FROM app_state WHERE key = 'schema_version'").Scan(&stored)
	switch {
	case err == sql.ErrNoRows:
		_, err = s.db.Exec("INSERT INTO app_state (key, value) VALUES ('schema_version', ?)",
			fmt.Sprintf("%d", schemaVersion))
		return err
	case err != nil:
		return err
	}

	var version int
	if _, err := fmt.Sscanf(stored, "%d", &version); err != nil {
		return fmt.Errorf("unreadable schema version %q: %w", stored, err)
	}
	if version > schemaVersion {
		return fmt.Errorf("database schema version %d is newer than this build supports (%d)", version, schemaVersion)
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return Settings{}, err
	}
	defer rows.Close()

	settings := Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, err
		}
		switch key {
		case "default_top_n":
			if _, err := fmt.Sscanf(value, "%d", &settings.DefaultTopN); err != nil {
				return Settings{}, fmt.Errorf("parsing default_top_n: %w", err)
			}
		}
		count++
	}

	if count == 0 {
		return Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings Settings) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)",
		"default_top_n", fmt.Sprintf("%d", settings.DefaultTopN))
	return err
}

func (s *SQLiteStore) AddGoal(goal models.Goal) error {
	return s.writeGoal(goal)
}

func (s *SQLiteStore) UpdateGoal(goal models.Goal) error {
	return s.writeGoal(goal)
}

func (s *SQLiteStore) writeGoal(goal models.Goal) error {
	var days, slots string
	if goal.Schedule != nil {
		daysJSON, err := json.Marshal(goal.Schedule.DaysOfWeek)
		if err != nil {
			return fmt.Errorf("failed to marshal schedule days: %w", err)
		}
		slotsJSON, err := json.Marshal(goal.Schedule.TimeSlots)
		if err != nil {
			return fmt.Errorf("failed to marshal schedule slots: %w", err)
		}
		days, slots = string(daysJSON), string(slotsJSON)
	}

	var sortOrder sql.NullInt64
	if goal.Order != nil {
		sortOrder = sql.NullInt64{Int64: int64(*goal.Order), Valid: true}
	}
	var deletedAt sql.NullString
	if goal.DeletedAt != nil {
		deletedAt = sql.NullString{String: *goal.DeletedAt, Valid: true}
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO goals (
			id, title, name, label, status, sort_order, schedule_days, schedule_slots,
			deadline, why_link, impact, created_at, deleted_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		goal.ID, goal.Title, goal.Name, goal.Label, goal.Status, sortOrder, days, slots,
		goal.Deadline, goal.WhyLink, goal.Impact, goal.CreatedAt, deletedAt,
	)
	return err
}

func (s *SQLiteStore) GetGoal(id string) (models.Goal, error) {
	row := s.db.QueryRow(`
		SELECT id, title, name, label, status, sort_order, schedule_days, schedule_slots,
		       deadline, why_link, impact, created_at, deleted_at
		FROM goals WHERE id = ? AND deleted_at IS NULL`, id)

	goal, err := scanGoal(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Goal{}, fmt.Errorf("goal not found: %s", id)
		}
		return models.Goal{}, err
	}
	return goal, nil
}

func (s *SQLiteStore) GetAllGoals() ([]models.Goal, error) {
	rows, err := s.db.Query(`
		SELECT id, title, name, label, status, sort_order, schedule_days, schedule_slots,
		       deadline, why_link, impact, created_at, deleted_at
		FROM goals WHERE deleted_at IS NULL
		ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

// GetAllGoalsIncludingDeleted also returns soft-deleted goals, for the
// TUI's restore flow.
func (s *SQLiteStore) GetAllGoalsIncludingDeleted() ([]models.Goal, error) {
	rows, err := s.db.Query(`
		SELECT id, title, name, label, status, sort_order, schedule_days, schedule_slots,
		       deadline, why_link, impact, created_at, deleted_at
		FROM goals
		ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGoal(row rowScanner) (models.Goal, error) {
	var g models.Goal
	var sortOrder sql.NullInt64
	var days, slots string
	var deletedAt sql.NullString

	err := row.Scan(
		&g.ID, &g.Title, &g.Name, &g.Label, &g.Status, &sortOrder, &days, &slots,
		&g.Deadline, &g.WhyLink, &g.Impact, &g.CreatedAt, &deletedAt,
	)
	if err != nil {
		return models.Goal{}, err
	}

	if sortOrder.Valid {
		order := int(sortOrder.Int64)
		g.Order = &order
	}
	if deletedAt.Valid {
		g.DeletedAt = &deletedAt.String
	}

	if days != "" || slots != "" {
		sched := &models.Schedule{}
		if days != "" {
			if err := json.Unmarshal([]byte(days), &sched.DaysOfWeek); err != nil {
				return models.Goal{}, fmt.Errorf("failed to decode schedule days for %s: %w", g.ID, err)
			}
		}
		if slots != "" {
			if err := json.Unmarshal([]byte(slots), &sched.TimeSlots); err != nil {
				return models.Goal{}, fmt.Errorf("failed to decode schedule slots for %s: %w", g.ID, err)
			}
		}
		if len(sched.DaysOfWeek) > 0 || len(sched.TimeSlots) > 0 {
			g.Schedule = sched
		}
	}

	return g, nil
}

func (s *SQLiteStore) DeleteGoal(id string) error {
	// Soft delete: set deleted_at instead of removing the record
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM goals WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("goal with id %s not found", id)
		}
		return fmt.Errorf("failed to check goal existence: %w", err)
	}

	if deletedAt.Valid {
		return fmt.Errorf("goal with id %s is already deleted", id)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.Exec("UPDATE goals SET deleted_at = ? WHERE id = ?", now, id); err != nil {
		return err
	}

	// Clear a now-dangling active hint.
	_, err = s.db.Exec("DELETE FROM app_state WHERE key = ? AND value = ?", activeGoalKey, id)
	return err
}

func (s *SQLiteStore) RestoreGoal(id string) error {
	var deletedAt sql.NullString
	err := s.db.QueryRow("SELECT deleted_at FROM goals WHERE id = ?", id).Scan(&deletedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("goal with id %s not found", id)
		}
		return fmt.Errorf("failed to check goal existence: %w", err)
	}

	if !deletedAt.Valid {
		return fmt.Errorf("cannot restore a goal that is not deleted: %s", id)
	}

	_, err = s.db.Exec("UPDATE goals SET deleted_at = NULL WHERE id = ?", id)
	return err
}

func (s *SQLiteStore) GetState() (models.State, error) {
	goals, err := s.GetAllGoals()
	if err != nil {
		return models.State{}, err
	}

	var activeID string
	err = s.db.QueryRow("SELECT value FROM app_state WHERE key = ?", activeGoalKey).Scan(&activeID)
	if err != nil && err != sql.ErrNoRows {
		return models.State{}, err
	}

	return models.State{
		Goals: goals,
		UI:    models.UIState{ActiveGoalID: activeID},
	}, nil
}

func (s *SQLiteStore) SetActiveGoalID(id string) error {
	if id == "" {
		_, err := s.db.Exec("DELETE FROM app_state WHERE key = ?", activeGoalKey)
		return err
	}

	if _, err := s.GetGoal(id); err != nil {
		return err
	}

	_, err := s.db.Exec("INSERT OR REPLACE INTO app_state (key, value) VALUES (?, ?)", activeGoalKey, id)
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

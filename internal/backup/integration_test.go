package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// TestIntegrationBackupRestoreWorkflow tests the complete backup and restore workflow
func TestIntegrationBackupRestoreWorkflow(t *testing.T) {
	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "stride.db")

	// Step 1: create a store with sample data
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		title TEXT,
		status TEXT
	)`)
	if err != nil {
		t.Fatalf("failed to create goals table: %v", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS app_state (
		key TEXT PRIMARY KEY,
		value TEXT
	)`)
	if err != nil {
		t.Fatalf("failed to create app_state table: %v", err)
	}

	_, err = db.Exec("INSERT INTO goals (id, title, status) VALUES (?, ?, ?)", "g1", "Learn piano", "queued")
	if err != nil {
		t.Fatalf("failed to insert goal: %v", err)
	}
	_, err = db.Exec("INSERT INTO app_state (key, value) VALUES (?, ?)", "active_goal_id", "g1")
	if err != nil {
		t.Fatalf("failed to insert app state: %v", err)
	}
	db.Close()

	// Step 2: create a backup
	mgr := NewManager(dbPath)
	backup1Path, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	// Step 3: modify the store
	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	_, err = db.Exec("INSERT INTO goals (id, title, status) VALUES (?, ?, ?)", "g2", "Run a 10k", "queued")
	if err != nil {
		t.Fatalf("failed to insert second goal: %v", err)
	}
	db.Close()

	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM goals").Scan(&count)
	if err != nil {
		t.Fatalf("failed to count goals: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 goals after modification, got %d", count)
	}
	db.Close()

	// Step 4: restore from backup
	err = mgr.RestoreBackup(backup1Path)
	if err != nil {
		t.Fatalf("failed to restore backup: %v", err)
	}

	// Step 5: store is back to its original state
	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database after restore: %v", err)
	}
	defer db.Close()

	err = db.QueryRow("SELECT COUNT(*) FROM goals").Scan(&count)
	if err != nil {
		t.Fatalf("failed to count goals after restore: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 goal after restore, got %d", count)
	}

	var id, title, status string
	err = db.QueryRow("SELECT id, title, status FROM goals WHERE id = ?", "g1").Scan(&id, &title, &status)
	if err != nil {
		t.Fatalf("failed to query goal after restore: %v", err)
	}
	if title != "Learn piano" || status != "queued" {
		t.Errorf("goal data mismatch after restore: got title=%s, status=%s", title, status)
	}

	// A pre-restore safety backup was created on top of the original
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("expected at least 2 backups after restore, got %d", len(backups))
	}
}

// TestBackupWithNoStore tests that backup fails gracefully when the store doesn't exist
func TestBackupWithNoStore(t *testing.T) {
	tempDir := t.TempDir()
	nonExistent := filepath.Join(tempDir, "nonexistent.db")

	mgr := NewManager(nonExistent)
	_, err := mgr.CreateBackup()
	if err == nil {
		t.Error("expected error when backing up non-existent store")
	}
}

// TestRestoreWithCorruptedBackup tests restore fails for corrupted backup
func TestRestoreWithCorruptedBackup(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)

	corruptedPath := filepath.Join(mgr.GetBackupDir(), "corrupted.db")
	err := os.MkdirAll(mgr.GetBackupDir(), 0700)
	if err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	err = os.WriteFile(corruptedPath, []byte("not a valid sqlite database"), 0600)
	if err != nil {
		t.Fatalf("failed to create corrupted file: %v", err)
	}

	err = mgr.RestoreBackup(corruptedPath)
	if err == nil {
		t.Error("expected error when restoring from corrupted backup")
	}
}

// TestBackupDirectoryCreation tests that the backup directory is created on demand
func TestBackupDirectoryCreation(t *testing.T) {
	dbPath := setupTestDB(t)

	mgr := NewManager(dbPath)

	os.RemoveAll(mgr.GetBackupDir())

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(mgr.GetBackupDir()); os.IsNotExist(err) {
		t.Error("backup directory was not created")
	}

	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		t.Error("backup file was not created")
	}
}

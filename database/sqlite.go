package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // Import the SQLite3 driver
)

// SQLiteStore keeps the approval ledger in a SQLite database. Compared to the
// JSON document it survives partial writes and supports inspection with
// standard tooling.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) the database and ensures the approvals
// table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	// Ensure the directory for the database file exists.
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := createApprovalsTable(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create approvals table: %w", err)
	}

	log.Println("Successfully connected to the database at", dbPath)
	return &SQLiteStore{db: db, path: dbPath}, nil
}

func createApprovalsTable(db *sql.DB) error {
	query := `
    CREATE TABLE IF NOT EXISTS approvals (
        message_id TEXT PRIMARY KEY,
        publication_id TEXT NOT NULL,
        recorded_at INTEGER NOT NULL
    );`
	_, err := db.Exec(query)
	return err
}

// Load reads all approvals. Query failures yield an empty map with a logged
// warning so a broken store never blocks startup.
func (s *SQLiteStore) Load() map[string]string {
	entries := make(map[string]string)

	rows, err := s.db.Query("SELECT message_id, publication_id FROM approvals")
	if err != nil {
		log.Printf("Failed to read approvals from %s: %v. Starting with an empty ledger.", s.path, err)
		return entries
	}
	defer rows.Close()

	for rows.Next() {
		var messageID, publicationID string
		if err := rows.Scan(&messageID, &publicationID); err != nil {
			log.Printf("Failed to scan approval row: %v. Skipping.", err)
			continue
		}
		entries[messageID] = publicationID
	}
	if err := rows.Err(); err != nil {
		log.Printf("Error iterating approvals from %s: %v", s.path, err)
	}

	log.Printf("Loaded %d approved messages from %s", len(entries), s.path)
	return entries
}

// Save replaces the stored approvals with the given mapping inside one
// transaction.
func (s *SQLiteStore) Save(entries map[string]string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin save transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM approvals"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear approvals: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO approvals (message_id, publication_id, recorded_at) VALUES (?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare approval insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for messageID, publicationID := range entries {
		if _, err := stmt.Exec(messageID, publicationID, now); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert approval for message %s: %w", messageID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit approvals: %w", err)
	}

	log.Printf("Saved %d approved messages to %s", len(entries), s.path)
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Package state remembers the carousel position per deck across runs.
package state

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName      = "carousel"
	dbFileName   = "carousel.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager owns the position database. Saves are debounced so that paging
// quickly through a deck writes once, not once per press.
type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   map[string]int
	debounce  time.Duration
}

// Open opens the database under the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("resolve state path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return OpenPath(dbPath, saveDebounce)
}

// OpenPath opens the database at dsn, which may be ":memory:".
func OpenPath(dsn string, debounce time.Duration) (*Manager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across calls.
	db.SetMaxOpenConns(1)

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init state schema: %w", err)
	}
	return &Manager{db: db, pending: make(map[string]int), debounce: debounce}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS positions (
			deck TEXT PRIMARY KEY,
			item_index INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);
	`)
	return err
}

// Position returns the saved index for deck. ok is false when nothing has
// been saved yet.
func (m *Manager) Position(deck string) (index int, ok bool, err error) {
	m.saveMu.Lock()
	if idx, found := m.pending[deck]; found {
		m.saveMu.Unlock()
		return idx, true, nil
	}
	m.saveMu.Unlock()

	row := m.db.QueryRow(`SELECT item_index FROM positions WHERE deck = ?`, deck)
	if err := row.Scan(&index); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return index, true, nil
}

// SavePosition records index for deck after the debounce window.
func (m *Manager) SavePosition(deck string, index int) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending[deck] = index

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveTimer = time.AfterFunc(m.debounce, func() {
		if err := m.Flush(); err != nil {
			log.Printf("state: %v", err)
		}
	})
}

// Flush writes any pending positions immediately. Positions that could not
// be written stay pending for the next flush.
func (m *Manager) Flush() error {
	m.saveMu.Lock()
	pending := m.pending
	m.pending = make(map[string]int)
	m.saveMu.Unlock()

	for deck, idx := range pending {
		if err := savePosition(m.db, deck, idx); err != nil {
			m.requeue(pending)
			return fmt.Errorf("save position for %s: %w", deck, err)
		}
		delete(pending, deck)
	}
	return nil
}

// requeue puts unwritten positions back unless a newer save replaced them.
func (m *Manager) requeue(unwritten map[string]int) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	for deck, idx := range unwritten {
		if _, newer := m.pending[deck]; !newer {
			m.pending[deck] = idx
		}
	}
}

// Close flushes pending saves and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveMu.Unlock()

	flushErr := m.Flush()
	if err := m.db.Close(); err != nil {
		return err
	}
	return flushErr
}

func savePosition(db *sql.DB, deck string, index int) error {
	_, err := db.Exec(`
		INSERT INTO positions (deck, item_index, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(deck) DO UPDATE SET
			item_index = excluded.item_index,
			updated_at = excluded.updated_at
	`, deck, index, time.Now().Unix())
	return err
}

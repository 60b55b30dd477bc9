// Package sqlite implements the SQLite storage backend for Corkboard.
// Slots are stored as rows in a single table and mirrored to JSON
// snapshot files in the data directory.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// DatabaseFile is the SQLite database file name inside DataDir.
const DatabaseFile = "corkboard.db"

var _ types.Store = (*Backend)(nil)

// Backend implements the Store interface using SQLite as the slot
// engine and JSON snapshot files as an inspectable mirror.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if needed, opens the database, applies the schema, and seeds
// any slot missing from the database from its snapshot file.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, DatabaseFile))
	if err != nil {
		return err
	}
	if _, err := db.Exec(createSlots); err != nil {
		db.Close()
		return err
	}

	b.db = db
	b.config = config
	b.config.DataDir = dataDir
	b.attached = true

	if err := b.seedFromSnapshots(); err != nil {
		db.Close()
		b.db = nil
		b.attached = false
		return fmt.Errorf("seed snapshots: %w", err)
	}

	return nil
}

// Detach releases all resources held by the backend. After Detach, slot
// operations return ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil // idempotent
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	return nil
}

// GetSlot returns the serialized value of the named slot.
// Returns ErrSlotNotFound if the slot has never been written.
func (b *Backend) GetSlot(name string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}
	if name == "" {
		return nil, types.ErrInvalidID
	}

	var value string
	err := b.db.QueryRow("SELECT value FROM slots WHERE slot = ?", name).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, types.ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting slot %s: %w", name, err)
	}
	return []byte(value), nil
}

// SetSlot writes the serialized value of the named slot, bumping the
// slot's version counter, and mirrors it to the slot's snapshot file.
func (b *Backend) SetSlot(name string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	if name == "" {
		return types.ErrInvalidID
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := b.db.Exec(
		`INSERT INTO slots (slot, value, version, updated_at) VALUES (?, ?, 1, ?)
		 ON CONFLICT(slot) DO UPDATE SET value = excluded.value,
		 version = slots.version + 1, updated_at = excluded.updated_at`,
		name, string(value), now,
	)
	if err != nil {
		return fmt.Errorf("persisting slot %s: %w", name, err)
	}

	if err := writeSnapshot(b.config.DataDir, name, value); err != nil {
		return fmt.Errorf("snapshot slot %s: %w", name, err)
	}
	return nil
}

// SlotVersion returns the write counter of the named slot, or zero when
// the slot has never been written.
func (b *Backend) SlotVersion(name string) (int64, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return 0, types.ErrStoreDetached
	}

	var version int64
	err := b.db.QueryRow("SELECT version FROM slots WHERE slot = ?", name).Scan(&version)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("getting slot version %s: %w", name, err)
	}
	return version, nil
}

// seedFromSnapshots loads snapshot files for slots absent from the
// database. The database wins when both exist; snapshots only fill
// gaps, so a data dir carrying only JSON files still opens as a full
// board. The caller must hold b.mu.
func (b *Backend) seedFromSnapshots() error {
	for _, name := range types.StandardSlotNames {
		var exists int
		err := b.db.QueryRow("SELECT 1 FROM slots WHERE slot = ?", name).Scan(&exists)
		if err == nil {
			continue
		}
		if err != sql.ErrNoRows {
			return fmt.Errorf("checking slot %s: %w", name, err)
		}

		value, err := readSnapshot(b.config.DataDir, name)
		if err != nil {
			return err
		}
		if value == nil {
			continue
		}

		now := time.Now().UTC().Format(time.RFC3339)
		if _, err := b.db.Exec(
			"INSERT INTO slots (slot, value, version, updated_at) VALUES (?, ?, 1, ?)",
			name, string(value), now,
		); err != nil {
			return fmt.Errorf("seeding slot %s: %w", name, err)
		}
	}
	return nil
}

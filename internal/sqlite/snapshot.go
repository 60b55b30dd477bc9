// Snapshot file helpers with atomic persistence. Each slot mirrors to
// <slot>.json in the data directory so the board state stays
// inspectable and diffable next to the database.
package sqlite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// snapshotPath returns the snapshot file path for a slot.
func snapshotPath(dataDir, slot string) string {
	return filepath.Join(dataDir, slot+".json")
}

// readSnapshot reads a slot's snapshot file. A missing file or a file
// holding invalid JSON yields nil with no error; the slot simply has no
// snapshot to seed from.
func readSnapshot(dataDir, slot string) ([]byte, error) {
	data, err := os.ReadFile(snapshotPath(dataDir, slot))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading snapshot %s: %w", slot, err)
	}
	if !json.Valid(data) {
		return nil, nil
	}
	return data, nil
}

// writeSnapshot atomically writes a slot's snapshot file using the
// temp-file, fsync, rename pattern.
func writeSnapshot(dataDir, slot string, value []byte) error {
	path := snapshotPath(dataDir, slot)
	tmp, err := os.CreateTemp(dataDir, ".snapshot-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

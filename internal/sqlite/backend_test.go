// Tests for the SQLite slot store backend.
package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

func newAttached(t *testing.T) (*Backend, string) {
	t.Helper()
	dir := t.TempDir()
	b := NewBackend()
	err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir})
	if err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	return b, dir
}

func TestBackendAttach(t *testing.T) {
	b, dir := newAttached(t)
	defer b.Detach()

	if _, err := os.Stat(filepath.Join(dir, DatabaseFile)); os.IsNotExist(err) {
		t.Error("database file not created")
	}

	err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir})
	if err != types.ErrAlreadyAttached {
		t.Errorf("double attach error = %v, want ErrAlreadyAttached", err)
	}
}

func TestBackendAttachRejectsBadConfig(t *testing.T) {
	b := NewBackend()
	if err := b.Attach(types.Config{}); err != types.ErrBackendEmpty {
		t.Errorf("Attach({}) error = %v, want ErrBackendEmpty", err)
	}
	if err := b.Attach(types.Config{Backend: "postgres"}); err != types.ErrBackendUnknown {
		t.Errorf("Attach(postgres) error = %v, want ErrBackendUnknown", err)
	}
}

func TestBackendDetachIdempotent(t *testing.T) {
	b, _ := newAttached(t)

	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}
	if err := b.Detach(); err != nil {
		t.Errorf("second Detach failed: %v", err)
	}
	if _, err := b.GetSlot(types.SlotSchema); err != types.ErrStoreDetached {
		t.Errorf("GetSlot after Detach error = %v, want ErrStoreDetached", err)
	}
	if err := b.SetSlot(types.SlotSchema, []byte("[]")); err != types.ErrStoreDetached {
		t.Errorf("SetSlot after Detach error = %v, want ErrStoreDetached", err)
	}
}

func TestSlotRoundTrip(t *testing.T) {
	b, _ := newAttached(t)
	defer b.Detach()

	if _, err := b.GetSlot(types.SlotSchema); err != types.ErrSlotNotFound {
		t.Errorf("GetSlot on unwritten slot error = %v, want ErrSlotNotFound", err)
	}

	want := `[{"property_id":"p1"}]`
	if err := b.SetSlot(types.SlotSchema, []byte(want)); err != nil {
		t.Fatalf("SetSlot failed: %v", err)
	}
	got, err := b.GetSlot(types.SlotSchema)
	if err != nil {
		t.Fatalf("GetSlot failed: %v", err)
	}
	if string(got) != want {
		t.Errorf("GetSlot = %s, want %s", got, want)
	}
}

func TestSlotVersionBumpsPerWrite(t *testing.T) {
	b, _ := newAttached(t)
	defer b.Detach()

	if v, _ := b.SlotVersion(types.SlotCards); v != 0 {
		t.Errorf("version before first write = %d, want 0", v)
	}
	b.SetSlot(types.SlotCards, []byte("[]"))
	b.SetSlot(types.SlotCards, []byte(`[{"card_id":"c1"}]`))
	v, err := b.SlotVersion(types.SlotCards)
	if err != nil {
		t.Fatalf("SlotVersion failed: %v", err)
	}
	if v != 2 {
		t.Errorf("version after two writes = %d, want 2", v)
	}
}

func TestSlotsPersistAcrossReattach(t *testing.T) {
	b, dir := newAttached(t)
	if err := b.SetSlot(types.SlotTheme, []byte(`"dark"`)); err != nil {
		t.Fatalf("SetSlot failed: %v", err)
	}
	b.Detach()

	b2 := NewBackend()
	if err := b2.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("re-attach failed: %v", err)
	}
	defer b2.Detach()

	got, err := b2.GetSlot(types.SlotTheme)
	if err != nil {
		t.Fatalf("GetSlot failed: %v", err)
	}
	if string(got) != `"dark"` {
		t.Errorf("GetSlot = %s, want \"dark\"", got)
	}
}

func TestSnapshotFilesMirrorSlots(t *testing.T) {
	b, dir := newAttached(t)
	defer b.Detach()

	value := `{"group_by":null}`
	if err := b.SetSlot(types.SlotViewState, []byte(value)); err != nil {
		t.Fatalf("SetSlot failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, types.SlotViewState+".json"))
	if err != nil {
		t.Fatalf("snapshot file missing: %v", err)
	}
	if string(data) != value {
		t.Errorf("snapshot = %s, want %s", data, value)
	}
}

func TestAttachSeedsFromSnapshots(t *testing.T) {
	dir := t.TempDir()
	value := `[{"card_id":"c1"}]`
	if err := os.WriteFile(filepath.Join(dir, types.SlotCards+".json"), []byte(value), 0o644); err != nil {
		t.Fatal(err)
	}

	b := NewBackend()
	if err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	got, err := b.GetSlot(types.SlotCards)
	if err != nil {
		t.Fatalf("GetSlot failed: %v", err)
	}
	if string(got) != value {
		t.Errorf("seeded slot = %s, want %s", got, value)
	}
}

func TestAttachIgnoresMalformedSnapshot(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, types.SlotCards+".json"), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	b := NewBackend()
	if err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: dir}); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	if _, err := b.GetSlot(types.SlotCards); err != types.ErrSlotNotFound {
		t.Errorf("GetSlot error = %v, want ErrSlotNotFound", err)
	}
}

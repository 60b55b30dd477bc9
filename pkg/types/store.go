package types

import "errors"

// Store defines the interface for backend-agnostic slot persistence.
// Callers attach to a backend, read and write named slots as opaque
// serialized blobs, and detach when done.
type Store interface {
	// GetSlot returns the serialized value of the named slot.
	// Returns ErrSlotNotFound if the slot has never been written;
	// callers fall back to their defined default.
	GetSlot(name string) ([]byte, error)

	// SetSlot writes the serialized value of the named slot,
	// replacing any previous value.
	SetSlot(name string, value []byte) error

	// Attach connects the Store to the backend described by config.
	// Creates the DataDir if it does not exist. Returns
	// ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, slot operations return ErrStoreDetached.
	Detach() error
}

// Standard slot names for Store.GetSlot and Store.SetSlot.
const (
	SlotSchema    = "schema"
	SlotCards     = "records"
	SlotViewState = "viewstate"
	SlotTheme     = "theme"
)

// StandardSlotNames lists all standard slot names for enumeration.
var StandardSlotNames = []string{
	SlotSchema,
	SlotCards,
	SlotViewState,
	SlotTheme,
}

// Store lifecycle errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrSlotNotFound    = errors.New("slot not found")
)

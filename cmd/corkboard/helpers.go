// Shared helpers for corkboard CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/corkboard/internal/sqlite"
	"github.com/mesh-intelligence/corkboard/pkg/board"
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// attachBackend resolves the data directory, creates a SQLite backend,
// and attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// openBoard attaches the backend and loads the board from it. The
// caller must defer backend.Detach().
func openBoard() (*board.Board, *sqlite.Backend, error) {
	backend, err := attachBackend()
	if err != nil {
		return nil, nil, err
	}
	b := board.New(backend)
	if err := b.Load(); err != nil {
		backend.Detach()
		return nil, nil, fmt.Errorf("load board: %w", err)
	}
	return b, backend, nil
}

// mustOpenBoard is openBoard with CLI error handling; it exits with a
// system error code on failure.
func mustOpenBoard(context string) (*board.Board, *sqlite.Backend) {
	b, backend, err := openBoard()
	if err != nil {
		fmt.Fprintln(os.Stderr, context+":", err)
		os.Exit(exitSysError)
	}
	return b, backend
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "marshal JSON:", err)
		os.Exit(exitSysError)
	}
	fmt.Println(string(out))
}

// shortID returns the display prefix of an entity ID. Imported
// documents may carry IDs shorter than the prefix length.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// findPropertyByRef resolves a property by ID or, failing that, by
// name. Name matching is case-insensitive.
func findPropertyByRef(b *board.Board, ref string) *types.Property {
	for _, p := range b.Schema() {
		if p.PropertyID == ref {
			return p
		}
	}
	for _, p := range b.Schema() {
		if strings.EqualFold(p.Name, ref) {
			return p
		}
	}
	return nil
}

// parseValueFlag interprets a raw --value string against the property's
// declared type: comma-split for multiselect, parsed number and bool
// for number and checkbox, the raw string otherwise. Parsing never
// fails; an unparseable value is stored raw, matching the board's
// tolerant value handling.
func parseValueFlag(prop *types.Property, raw string) any {
	switch prop.Type {
	case types.TypeMultiSelect:
		parts := strings.Split(raw, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	case types.TypeNumber:
		if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			return n
		}
		return raw
	case types.TypeCheckbox:
		if v, err := strconv.ParseBool(strings.TrimSpace(raw)); err == nil {
			return v
		}
		return raw
	default:
		return raw
	}
}

// splitCommaList splits a comma-separated flag into trimmed entries,
// dropping empties.
func splitCommaList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

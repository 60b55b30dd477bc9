// CLI integration tests for corkboard. Each test runs the built binary
// against a fresh config/data directory pair.
package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mesh-intelligence/corkboard/pkg/board"
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// TestMain builds the corkboard binary once before running tests.
func TestMain(m *testing.M) {
	projectRoot, err := FindProjectRoot()
	if err != nil {
		buildErr = err
		os.Exit(1)
	}

	tmpDir, err := os.MkdirTemp("", "corkboard-test-*")
	if err != nil {
		buildErr = err
		os.Exit(1)
	}
	corkboardBin = filepath.Join(tmpDir, "corkboard")

	cmd := exec.Command("go", "build", "-o", corkboardBin, "./cmd/corkboard")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		buildErr = &BuildError{Err: err, Output: string(output)}
		os.Exit(1)
	}

	code := m.Run()

	os.RemoveAll(tmpDir)
	os.Exit(code)
}

func TestCLIInit(t *testing.T) {
	env := NewTestEnv(t)

	result := env.MustRun("init")
	if result.Stdout == "" {
		t.Error("expected init output message")
	}

	if _, err := os.Stat(env.DataDir); os.IsNotExist(err) {
		t.Error("data directory not created")
	}
	dbFile := filepath.Join(env.DataDir, "corkboard.db")
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		t.Error("corkboard.db not created")
	}
}

func TestCLIPropertyAndCardLifecycle(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRun("init")

	addResult := env.MustRun("--json", "property", "add", "Status",
		"--type", "select", "--options", "todo,doing,done")
	status := ParseJSON[types.Property](t, addResult.Stdout)
	if status.PropertyID == "" {
		t.Fatal("property ID not generated")
	}
	if status.Type != types.TypeSelect {
		t.Errorf("expected select type, got %q", status.Type)
	}
	if len(status.Options) != 3 {
		t.Errorf("expected 3 options, got %d", len(status.Options))
	}

	createResult := env.MustRun("--json", "card", "create", "Ship the release")
	card := ParseJSON[types.Card](t, createResult.Stdout)
	if card.CardID == "" {
		t.Fatal("card ID not generated")
	}
	if card.Title != "Ship the release" {
		t.Errorf("card title mismatch: got %q", card.Title)
	}

	// Untitled cards get the default title.
	untitledResult := env.MustRun("--json", "card", "create")
	untitled := ParseJSON[types.Card](t, untitledResult.Stdout)
	if untitled.Title != types.DefaultTitle {
		t.Errorf("expected default title, got %q", untitled.Title)
	}

	env.MustRun("card", "set", card.CardID, "Status", "--value", "doing")

	listResult := env.MustRun("--json", "card", "list")
	cards := ParseJSON[[]types.Card](t, listResult.Stdout)
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	for _, c := range cards {
		if c.CardID == card.CardID && c.Values[status.PropertyID] != "doing" {
			t.Errorf("expected Status=doing, got %v", c.Values[status.PropertyID])
		}
	}
}

func TestCLIBoardProjection(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRun("init")

	env.MustRun("property", "add", "Status", "--type", "select", "--options", "todo,done")
	cardResult := env.MustRun("--json", "card", "create", "Only card")
	card := ParseJSON[types.Card](t, cardResult.Stdout)
	env.MustRun("card", "set", card.CardID, "Status", "--value", "todo")

	boardResult := env.MustRun("--json", "board", "--group-by", "Status")
	set := ParseJSON[board.ColumnSet](t, boardResult.Stdout)

	// Both declared options plus the sentinel column, even when empty.
	if len(set.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(set.Columns))
	}
	if set.Columns[0].Key != "todo" || len(set.Columns[0].Records) != 1 {
		t.Errorf("expected the card in todo, got %+v", set.Columns[0])
	}
	if set.Columns[2].Key != board.NoValueKey {
		t.Errorf("expected sentinel column last, got %q", set.Columns[2].Key)
	}

	// The grouping choice persists across invocations.
	again := env.MustRun("--json", "board")
	set2 := ParseJSON[board.ColumnSet](t, again.Stdout)
	if set2.Property == nil || set2.Property.Name != "Status" {
		t.Error("grouping did not persist across invocations")
	}
}

func TestCLIMoveCard(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRun("init")

	env.MustRun("property", "add", "Status", "--type", "select", "--options", "todo,done")
	cardResult := env.MustRun("--json", "card", "create", "Movable")
	card := ParseJSON[types.Card](t, cardResult.Stdout)
	env.MustRun("card", "set", card.CardID, "Status", "--value", "todo")
	env.MustRun("board", "--group-by", "Status")

	env.MustRun("move", "card", card.CardID, "--to", "done")

	boardResult := env.MustRun("--json", "board")
	set := ParseJSON[board.ColumnSet](t, boardResult.Stdout)
	var done *board.Column
	for _, col := range set.Columns {
		if col.Key == "done" {
			done = col
		}
	}
	if done == nil || len(done.Records) != 1 {
		t.Fatal("card not moved to done column")
	}
	if done.Records[0].CardID != card.CardID {
		t.Errorf("wrong card in done column: %q", done.Records[0].CardID)
	}
}

func TestCLIExportImport(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRun("init")
	env.MustRun("property", "add", "Status", "--type", "select", "--options", "todo")
	env.MustRun("card", "create", "Exported card")

	exportFile := filepath.Join(env.t.TempDir(), "board.json")
	env.MustRun("export", exportFile)

	doc := ParseJSON[types.Document](t, readFile(t, exportFile))
	if doc.Version != types.DocumentVersion {
		t.Errorf("expected document version %q, got %q", types.DocumentVersion, doc.Version)
	}
	if len(doc.Schema) != 2 || len(doc.Records) != 1 {
		t.Errorf("unexpected document shape: %d properties, %d records",
			len(doc.Schema), len(doc.Records))
	}

	// Import into a brand new environment.
	env2 := NewTestEnv(t)
	env2.MustRun("init")
	importResult := env2.MustRun("import", exportFile)
	if !strings.Contains(importResult.Stdout, "2 properties and 1 cards") {
		t.Errorf("unexpected import output: %q", importResult.Stdout)
	}

	listResult := env2.MustRun("--json", "card", "list")
	cards := ParseJSON[[]types.Card](t, listResult.Stdout)
	if len(cards) != 1 || cards[0].Title != "Exported card" {
		t.Errorf("imported cards mismatch: %+v", cards)
	}
}

func TestCLIListHandlesShortImportedIDs(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRun("init")

	// Import accepts documents as-is, including IDs shorter than the
	// display prefix the list commands print.
	doc := `{
		"version": "1.0",
		"schema": [{"property_id":"p1","name":"Status","type":"select","visible":true,"order":1,"options":["todo"]}],
		"records": [{"card_id":"c1","title":"Imported","values":{"p1":"todo"},"position":0}]
	}`
	docFile := filepath.Join(env.t.TempDir(), "doc.json")
	if err := os.WriteFile(docFile, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	env.MustRun("import", docFile)

	cardList := env.MustRun("card", "list")
	if !strings.Contains(cardList.Stdout, "c1") || !strings.Contains(cardList.Stdout, "Imported") {
		t.Errorf("card list missing imported card: %q", cardList.Stdout)
	}
	propList := env.MustRun("property", "list")
	if !strings.Contains(propList.Stdout, "Status") {
		t.Errorf("property list missing imported property: %q", propList.Stdout)
	}
	boardOut := env.MustRun("board", "--group-by", "Status")
	if !strings.Contains(boardOut.Stdout, "Imported") {
		t.Errorf("board output missing imported card: %q", boardOut.Stdout)
	}
}

func TestCLIImportRejectsBadDocument(t *testing.T) {
	env := NewTestEnv(t)
	env.MustRun("init")
	env.MustRun("card", "create", "Keep me")

	badFile := filepath.Join(env.t.TempDir(), "bad.json")
	if err := os.WriteFile(badFile, []byte(`{"version":"1.0"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	result, err := env.Run("import", badFile)
	if err == nil {
		t.Fatal("expected import to fail")
	}
	if !strings.Contains(result.Stderr, "invalid format") {
		t.Errorf("expected invalid format error, got %q", result.Stderr)
	}

	// Existing state untouched.
	listResult := env.MustRun("--json", "card", "list")
	cards := ParseJSON[[]types.Card](t, listResult.Stdout)
	if len(cards) != 1 || cards[0].Title != "Keep me" {
		t.Errorf("state changed after rejected import: %+v", cards)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

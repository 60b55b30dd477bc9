package board

import (
	"encoding/json"
	"time"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// Export builds the interchange document for the whole board, stamped
// with the format version and export timestamp. The document carries
// deep copies; later board mutations do not leak into it.
func (b *Board) Export() *types.Document {
	schema := make([]*types.Property, len(b.schema))
	for i, p := range b.schema {
		schema[i] = p.Clone()
	}
	cards := make([]*types.Card, len(b.cards))
	for i, c := range b.cards {
		cards[i] = c.Clone()
	}
	view := b.view
	return &types.Document{
		Version:    types.DocumentVersion,
		Schema:     schema,
		Records:    cards,
		ViewState:  &view,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// ExportJSON returns the export document serialized with indentation.
func (b *Board) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(b.Export(), "", "  ")
}

// Import validates the document and replaces the board's schema, cards,
// and view state entirely. Slot contents beyond the top-level shape are
// accepted as-is. On validation failure the board is left untouched.
func (b *Board) Import(doc *types.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	b.schema = doc.Schema
	b.cards = doc.Records
	if doc.ViewState != nil {
		b.view = *doc.ViewState
	} else {
		b.view = types.ViewState{}
	}

	if err := b.persistSchema(); err != nil {
		return err
	}
	if err := b.persistCards(); err != nil {
		return err
	}
	return b.persistView()
}

// ImportJSON parses, validates, and imports a serialized document.
func (b *Board) ImportJSON(data []byte) error {
	doc, err := types.ParseDocument(data)
	if err != nil {
		return err
	}
	return b.Import(doc)
}

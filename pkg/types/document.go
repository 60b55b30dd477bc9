package types

import "encoding/json"

// DocumentVersion is stamped on every exported document. It is recorded
// for forward compatibility and not validated on import.
const DocumentVersion = "1.0"

// Document is the export/import interchange shape for a whole board.
// Import also accepts any document carrying at least schema and records.
type Document struct {
	Version    string      `json:"version,omitempty"`
	Schema     []*Property `json:"schema"`
	Records    []*Card     `json:"records"`
	ViewState  *ViewState  `json:"viewState,omitempty"`
	ExportedAt string      `json:"exportedAt,omitempty"`
}

// Validate checks that the document has the minimal shape required to
// replace current state: schema and records both present. The contents
// of either are not further validated; malformed entries are accepted
// as-is, consistent with the card store's tolerant value handling.
// Returns ErrFormat on failure.
func (d *Document) Validate() error {
	if d.Schema == nil || d.Records == nil {
		return ErrFormat
	}
	return nil
}

// ParseDocument unmarshals and validates a candidate import document.
// Absent viewState defaults to no grouping.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ErrFormat
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if doc.ViewState == nil {
		doc.ViewState = &ViewState{}
	}
	return &doc, nil
}

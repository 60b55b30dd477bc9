package board

import (
	"sort"
	"strconv"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// NoValueKey is the synthetic trailing column for cards lacking a value
// for the grouping property. It is never persisted in a property's
// columnOrder.
const NoValueKey = "__no_value__"

// NoValueLabel is the display label of the synthetic column.
const NoValueLabel = "No value"

// Column is a derived bucket of cards sharing a grouping-key value.
// Columns are recomputed from scratch on every projection and never
// mutated in place.
type Column struct {
	Key     string        `json:"key"`
	Label   string        `json:"label"`
	Records []*types.Card `json:"records"` // Ordered by ascending position.
}

// ColumnSet is the full projection of a board under one grouping
// property.
type ColumnSet struct {
	Property *types.Property `json:"property"`
	Columns  []*Column       `json:"columns"`
}

// Project derives the ordered column view for the given grouping
// property. It is a pure function of the board's current schema and
// cards: for fixed inputs the column order, membership, and per-column
// card order are fully reproducible, and no input is mutated.
//
// Returns nil when groupByID is nil or does not resolve to a property;
// callers render a placeholder state.
//
// The key universe is collected from live card values (a multiselect
// property contributes every element of each set) plus, for select
// properties only, every declared option, so an option with zero cards
// still yields an empty column. Keys follow the property's persisted
// columnOrder with stale entries dropped; keys absent from columnOrder
// are sorted (numerically for number properties, lexicographically
// otherwise) and appended. The synthetic "No value" column always
// trails.
//
// Each card lands in exactly one column. A multiselect card goes to the
// column of the first element of its set only; it is not fanned into
// the columns of its other values. Cards with nil values, empty sets,
// or keys matching no column fall into the "No value" column.
func (b *Board) Project(groupByID *string) *ColumnSet {
	if groupByID == nil {
		return nil
	}
	prop := b.findProperty(*groupByID)
	if prop == nil {
		return nil
	}

	universe := map[string]bool{}
	for _, c := range b.cards {
		value := c.Values[prop.PropertyID]
		if value == nil {
			continue
		}
		if prop.Type == types.TypeMultiSelect {
			for _, key := range multiSelectKeys(value) {
				universe[key] = true
			}
			continue
		}
		universe[types.Stringify(value)] = true
	}
	if prop.Type == types.TypeSelect {
		for _, opt := range prop.Options {
			universe[opt] = true
		}
	}

	keys := orderKeys(universe, prop)
	keys = append(keys, NoValueKey)

	columns := make([]*Column, len(keys))
	index := make(map[string]*Column, len(keys))
	for i, key := range keys {
		label := key
		if key == NoValueKey {
			label = NoValueLabel
		}
		columns[i] = &Column{Key: key, Label: label, Records: []*types.Card{}}
		index[key] = columns[i]
	}

	for _, c := range b.cards {
		col, ok := index[cardKey(c, prop)]
		if !ok {
			col = index[NoValueKey]
		}
		col.Records = append(col.Records, c)
	}

	for _, col := range columns {
		records := col.Records
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Position < records[j].Position
		})
	}

	return &ColumnSet{Property: prop, Columns: columns}
}

// ProjectActive projects under the view state's active grouping
// property, or returns nil when no grouping is active.
func (b *Board) ProjectActive() *ColumnSet {
	return b.Project(b.view.GroupBy)
}

// cardKey returns the column key a card belongs under, or NoValueKey.
// For multiselect properties only the first element of the set counts.
func cardKey(c *types.Card, prop *types.Property) string {
	value, ok := c.Values[prop.PropertyID]
	if !ok || value == nil {
		return NoValueKey
	}
	if prop.Type == types.TypeMultiSelect {
		keys := multiSelectKeys(value)
		if len(keys) == 0 {
			return NoValueKey
		}
		return keys[0]
	}
	return types.Stringify(value)
}

// multiSelectKeys returns the elements of a stored multiselect value.
// A value of any other shape contributes its string form, matching the
// tolerance for transient type mismatches elsewhere.
func multiSelectKeys(value any) []string {
	switch v := value.(type) {
	case []string:
		return v
	case []any:
		keys := make([]string, 0, len(v))
		for _, e := range v {
			keys = append(keys, types.Stringify(e))
		}
		return keys
	case string:
		return []string{v}
	default:
		return []string{types.Stringify(value)}
	}
}

// orderKeys merges the property's persisted columnOrder with the live
// key universe: the columnOrder prefix keeps only keys still present
// (stale entries drop silently), and remaining keys are sorted and
// appended.
func orderKeys(universe map[string]bool, prop *types.Property) []string {
	ordered := make([]string, 0, len(universe))
	used := make(map[string]bool, len(universe))
	for _, key := range prop.ColumnOrder {
		if universe[key] && !used[key] {
			ordered = append(ordered, key)
			used[key] = true
		}
	}

	rest := make([]string, 0, len(universe))
	for key := range universe {
		if !used[key] {
			rest = append(rest, key)
		}
	}
	if prop.Type == types.TypeNumber {
		sort.Slice(rest, func(i, j int) bool {
			return numericLess(rest[i], rest[j])
		})
	} else {
		sort.Strings(rest)
	}

	return append(ordered, rest...)
}

// numericLess compares two keys by numeric value, falling back to
// string comparison when either side does not parse. Non-numeric keys
// sort after numeric ones so corrupted values stay visible at the end.
func numericLess(a, b string) bool {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

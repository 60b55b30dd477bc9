package types

// DefaultTitle is used when a card is created with an empty title.
const DefaultTitle = "Untitled"

// Card represents one user-visible item on the board.
type Card struct {
	CardID      string `json:"card_id"` // UUID v7, generated on creation.
	Title       string `json:"title"`
	Description string `json:"description"`

	// Values maps non-title property IDs to that card's value. The value
	// shape follows the property's current declared type: string for
	// text/date/select, float64 or nil for number, bool for checkbox,
	// []string for multiselect, or nil meaning unset. Values are stored
	// as-is with no type checking; mismatches are tolerated until
	// conversion or projection time.
	Values map[string]any `json:"values"`

	// Position orders the card among cards sharing a column. Positions
	// are column-local in effect and rewritten on every card move.
	Position int `json:"position"`
}

// Clone returns a deep copy of the card. Multiselect value slices are
// copied; other value kinds are immutable.
func (c *Card) Clone() *Card {
	cp := *c
	cp.Values = make(map[string]any, len(c.Values))
	for k, v := range c.Values {
		if set, ok := toStringSlice(v); ok {
			cp.Values[k] = append([]string(nil), set...)
			continue
		}
		cp.Values[k] = v
	}
	return &cp
}

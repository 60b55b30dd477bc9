package types

// Property value types determine what values a property accepts and how
// cards group under it.
const (
	TypeText        = "text"
	TypeNumber      = "number"
	TypeDate        = "date"
	TypeCheckbox    = "checkbox"
	TypeSelect      = "select"
	TypeMultiSelect = "multiselect"
)

// validTypes is the set of recognized property value types.
var validTypes = map[string]bool{
	TypeText:        true,
	TypeNumber:      true,
	TypeDate:        true,
	TypeCheckbox:    true,
	TypeSelect:      true,
	TypeMultiSelect: true,
}

// groupableTypes is the set of types with a finite or orderable value
// space suitable for column grouping. Text and date are excluded: their
// cardinality is unbounded.
var groupableTypes = map[string]bool{
	TypeSelect:      true,
	TypeMultiSelect: true,
	TypeCheckbox:    true,
	TypeNumber:      true,
}

// Property defines a named, typed attribute shared by all cards on a board.
type Property struct {
	PropertyID string `json:"property_id"` // UUID v7, generated on creation.
	Name       string `json:"name"`
	Type       string `json:"type"`     // One of the Type constants.
	Visible    bool   `json:"visible"`  // Whether the property is shown on cards.
	Order      int    `json:"order"`    // Display rank; lower orders first.
	IsTitle    bool   `json:"is_title"` // Exactly one per schema; never deleted or retyped.

	// Select and multiselect properties only.
	Options      []string          `json:"options,omitempty"`       // Legal option values, ordered, unique.
	OptionColors map[string]string `json:"option_colors,omitempty"` // Option value to color token. Stale keys are tolerated.
	ColumnOrder  []string          `json:"column_order,omitempty"`  // Custom ordering of grouping keys when active.
}

// IsValidType reports whether the given string is a recognized value type.
func IsValidType(t string) bool {
	return validTypes[t]
}

// IsGroupableType reports whether cards can be grouped into columns by a
// property of the given type.
func IsGroupableType(t string) bool {
	return groupableTypes[t]
}

// IsSelectLike reports whether the type carries declared options.
func IsSelectLike(t string) bool {
	return t == TypeSelect || t == TypeMultiSelect
}

// Clone returns a deep copy of the property.
func (p *Property) Clone() *Property {
	cp := *p
	if p.Options != nil {
		cp.Options = append([]string(nil), p.Options...)
	}
	if p.OptionColors != nil {
		cp.OptionColors = make(map[string]string, len(p.OptionColors))
		for k, v := range p.OptionColors {
			cp.OptionColors[k] = v
		}
	}
	if p.ColumnOrder != nil {
		cp.ColumnOrder = append([]string(nil), p.ColumnOrder...)
	}
	return &cp
}

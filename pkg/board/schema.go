package board

import (
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// PropertyUpdate carries the fields of UpdateProperty. Nil fields are
// left untouched; non-nil fields replace the current value wholesale,
// never merge.
type PropertyUpdate struct {
	Name         *string
	Type         *string
	Visible      *bool
	Order        *int
	Options      *[]string
	OptionColors *map[string]string
	ColumnOrder  *[]string
}

// AddProperty appends a property at the end of display order with
// type-appropriate defaults and pre-populates a nil value for it on
// every existing card. Options apply to select-like types only and are
// ignored otherwise.
// Returns ErrInvalidName for an empty name and ErrInvalidType for an
// unrecognized type.
func (b *Board) AddProperty(name, propType string, options []string) (*types.Property, error) {
	if name == "" {
		return nil, types.ErrInvalidName
	}
	if !types.IsValidType(propType) {
		return nil, types.ErrInvalidType
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}
	prop := &types.Property{
		PropertyID: id,
		Name:       name,
		Type:       propType,
		Visible:    true,
		Order:      len(b.schema),
	}
	if types.IsSelectLike(propType) {
		prop.Options = []string{}
		if len(options) > 0 {
			prop.Options = append(prop.Options, options...)
		}
		prop.OptionColors = map[string]string{}
		prop.ColumnOrder = []string{}
	}

	b.schema = append(b.schema, prop)
	for _, c := range b.cards {
		if c.Values == nil {
			c.Values = map[string]any{}
		}
		c.Values[prop.PropertyID] = nil
	}

	if err := b.persistSchema(); err != nil {
		return nil, err
	}
	if err := b.persistCards(); err != nil {
		return nil, err
	}
	return prop, nil
}

// DeleteProperty removes a property and purges its key from every
// card's value map. Deleting the title property or an unknown ID is a
// no-op.
func (b *Board) DeleteProperty(id string) error {
	prop := b.findProperty(id)
	if prop == nil || prop.IsTitle {
		return nil
	}

	kept := make([]*types.Property, 0, len(b.schema)-1)
	for _, p := range b.schema {
		if p.PropertyID != id {
			kept = append(kept, p)
		}
	}
	b.schema = kept

	for _, c := range b.cards {
		delete(c.Values, id)
	}

	if b.view.GroupBy != nil && *b.view.GroupBy == id {
		b.view.GroupBy = nil
		if err := b.persistView(); err != nil {
			return err
		}
	}

	if err := b.persistSchema(); err != nil {
		return err
	}
	return b.persistCards()
}

// UpdateProperty applies an update to a property. The entire update is
// validated before anything is applied, so a rejected update leaves
// both the schema and card values untouched. When the update changes
// the declared type, every card's value for the property is converted
// through the type system first, before the rest of the update is
// applied. Returns ErrNotFound for an unknown ID, ErrTitleImmutable
// when the update would retype the title property, and ErrInvalidType
// for an unrecognized type.
func (b *Board) UpdateProperty(id string, update PropertyUpdate) error {
	prop := b.findProperty(id)
	if prop == nil {
		return types.ErrNotFound
	}

	typeChanged := update.Type != nil && *update.Type != prop.Type
	if typeChanged {
		if prop.IsTitle {
			return types.ErrTitleImmutable
		}
		if !types.IsValidType(*update.Type) {
			return types.ErrInvalidType
		}
	}
	if update.Name != nil && *update.Name == "" {
		return types.ErrInvalidName
	}

	if typeChanged {
		for _, c := range b.cards {
			if v, ok := c.Values[id]; ok {
				c.Values[id] = types.Convert(v, prop.Type, *update.Type)
			}
		}
		prop.Type = *update.Type
		if types.IsSelectLike(prop.Type) && prop.Options == nil {
			prop.Options = []string{}
			prop.OptionColors = map[string]string{}
			prop.ColumnOrder = []string{}
		}
		if err := b.persistCards(); err != nil {
			return err
		}
	}

	if update.Name != nil {
		prop.Name = *update.Name
	}
	if update.Visible != nil {
		prop.Visible = *update.Visible
	}
	if update.Order != nil {
		prop.Order = *update.Order
	}
	if update.Options != nil {
		prop.Options = *update.Options
	}
	if update.OptionColors != nil {
		prop.OptionColors = *update.OptionColors
	}
	if update.ColumnOrder != nil {
		prop.ColumnOrder = *update.ColumnOrder
	}

	return b.persistSchema()
}

// RenameOption renames a select-like property's option in place,
// carrying its color and any columnOrder entry over to the new value,
// and rewrites the old value on every card holding it.
func (b *Board) RenameOption(propertyID, oldValue, newValue string) error {
	prop := b.findProperty(propertyID)
	if prop == nil || !types.IsSelectLike(prop.Type) {
		return types.ErrNotFound
	}
	if newValue == "" {
		return types.ErrInvalidName
	}
	for _, opt := range prop.Options {
		if opt == newValue {
			return types.ErrDuplicateOption
		}
	}

	found := false
	for i, opt := range prop.Options {
		if opt == oldValue {
			prop.Options[i] = newValue
			found = true
		}
	}
	if !found {
		return types.ErrNotFound
	}

	if color, ok := prop.OptionColors[oldValue]; ok {
		delete(prop.OptionColors, oldValue)
		prop.OptionColors[newValue] = color
	}
	for i, key := range prop.ColumnOrder {
		if key == oldValue {
			prop.ColumnOrder[i] = newValue
		}
	}

	for _, c := range b.cards {
		switch v := c.Values[propertyID].(type) {
		case string:
			if v == oldValue {
				c.Values[propertyID] = newValue
			}
		case []string:
			for i, e := range v {
				if e == oldValue {
					v[i] = newValue
				}
			}
		case []any:
			// Multiselect values decode from the store as []any.
			for i, e := range v {
				if s, ok := e.(string); ok && s == oldValue {
					v[i] = newValue
				}
			}
		}
	}

	if err := b.persistSchema(); err != nil {
		return err
	}
	return b.persistCards()
}

// GroupableProperties returns the non-title properties whose type can
// partition cards into columns, in display order.
func (b *Board) GroupableProperties() []*types.Property {
	var out []*types.Property
	for _, p := range b.schema {
		if !p.IsTitle && types.IsGroupableType(p.Type) {
			out = append(out, p)
		}
	}
	return out
}

// TitleProperty returns the schema's title property.
func (b *Board) TitleProperty() *types.Property {
	for _, p := range b.schema {
		if p.IsTitle {
			return p
		}
	}
	return nil
}

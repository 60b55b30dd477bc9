package board

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// Board holds the live schema, cards, and view state, and writes every
// mutation through to the attached persistence store.
type Board struct {
	schema []*types.Property
	cards  []*types.Card
	view   types.ViewState
	theme  string
	store  types.Store
}

// New creates a Board backed by the given store. The board starts empty;
// call Load to populate it from the store's slots.
func New(store types.Store) *Board {
	return &Board{store: store, theme: types.ThemeLight}
}

// Load reads all slots from the store. An absent slot falls back to its
// defined default: schema to a single title property, cards to empty,
// view state to no grouping, theme to light.
func (b *Board) Load() error {
	schema, err := loadSlot[[]*types.Property](b.store, types.SlotSchema)
	if err != nil {
		return err
	}
	if schema == nil {
		title, err := newTitleProperty()
		if err != nil {
			return err
		}
		schema = []*types.Property{title}
		b.schema = schema
		if err := b.persistSchema(); err != nil {
			return err
		}
	} else {
		b.schema = schema
	}

	cards, err := loadSlot[[]*types.Card](b.store, types.SlotCards)
	if err != nil {
		return err
	}
	if cards == nil {
		cards = []*types.Card{}
	}
	b.cards = cards

	view, err := loadSlot[*types.ViewState](b.store, types.SlotViewState)
	if err != nil {
		return err
	}
	if view != nil {
		b.view = *view
	} else {
		b.view = types.ViewState{}
	}

	theme, err := loadSlot[string](b.store, types.SlotTheme)
	if err != nil {
		return err
	}
	if theme == "" {
		theme = types.ThemeLight
	}
	b.theme = theme

	return nil
}

// Schema returns the properties in display order. The returned slice is
// shared with the board; callers must not mutate it.
func (b *Board) Schema() []*types.Property {
	return b.schema
}

// Cards returns all cards. The returned slice is shared with the board;
// callers must not mutate it.
func (b *Board) Cards() []*types.Card {
	return b.cards
}

// View returns the current view state.
func (b *Board) View() types.ViewState {
	return b.view
}

// Theme returns the current theme name.
func (b *Board) Theme() string {
	return b.theme
}

// SetGroupBy sets the active grouping property. A nil id deactivates
// grouping. Returns ErrNotFound for an unknown property and
// ErrNotGroupable when the property's type cannot group cards.
func (b *Board) SetGroupBy(propertyID *string) error {
	if propertyID != nil {
		prop := b.findProperty(*propertyID)
		if prop == nil {
			return types.ErrNotFound
		}
		if prop.IsTitle || !types.IsGroupableType(prop.Type) {
			return types.ErrNotGroupable
		}
	}
	b.view.GroupBy = propertyID
	return b.persistView()
}

// SetTheme sets and persists the theme name.
func (b *Board) SetTheme(theme string) error {
	b.theme = theme
	return b.persistTheme()
}

// findProperty returns the property with the given ID, or nil.
func (b *Board) findProperty(id string) *types.Property {
	for _, p := range b.schema {
		if p.PropertyID == id {
			return p
		}
	}
	return nil
}

// findCard returns the card with the given ID, or nil.
func (b *Board) findCard(id string) *types.Card {
	for _, c := range b.cards {
		if c.CardID == id {
			return c
		}
	}
	return nil
}

// newTitleProperty builds the default title property every schema
// carries from creation.
func newTitleProperty() (*types.Property, error) {
	id, err := newID()
	if err != nil {
		return nil, err
	}
	return &types.Property{
		PropertyID: id,
		Name:       "Title",
		Type:       types.TypeText,
		Visible:    true,
		Order:      0,
		IsTitle:    true,
	}, nil
}

// newID generates a UUID v7 for entity IDs, falling back to v4 if v7
// generation fails.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String(), nil
	}
	return id.String(), nil
}

// loadSlot reads and unmarshals one slot. A missing slot yields the
// zero value and no error.
func loadSlot[T any](store types.Store, name string) (T, error) {
	var out T
	data, err := store.GetSlot(name)
	if err != nil {
		if errors.Is(err, types.ErrSlotNotFound) {
			return out, nil
		}
		return out, fmt.Errorf("get slot %s: %w", name, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode slot %s: %w", name, err)
	}
	return out, nil
}

// saveSlot marshals and writes one slot.
func saveSlot(store types.Store, name string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", name, err)
	}
	if err := store.SetSlot(name, data); err != nil {
		return fmt.Errorf("set slot %s: %w", name, err)
	}
	return nil
}

func (b *Board) persistSchema() error {
	return saveSlot(b.store, types.SlotSchema, b.schema)
}

func (b *Board) persistCards() error {
	return saveSlot(b.store, types.SlotCards, b.cards)
}

func (b *Board) persistView() error {
	return saveSlot(b.store, types.SlotViewState, b.view)
}

func (b *Board) persistTheme() error {
	return saveSlot(b.store, types.SlotTheme, b.theme)
}

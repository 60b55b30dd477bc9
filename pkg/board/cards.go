package board

import (
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// CardUpdate carries the fields of UpdateCard. Nil fields are left
// untouched.
type CardUpdate struct {
	Title       *string
	Description *string
}

// CreateCard creates a card with a nil entry for every current
// non-title property. The new card takes a position past every existing
// card, so creation never renumbers; contiguous positions are restored
// by the next card move.
func (b *Board) CreateCard(title string) (*types.Card, error) {
	if title == "" {
		title = types.DefaultTitle
	}
	id, err := newID()
	if err != nil {
		return nil, err
	}

	card := &types.Card{
		CardID:   id,
		Title:    title,
		Values:   map[string]any{},
		Position: b.nextPosition(),
	}
	for _, p := range b.schema {
		if !p.IsTitle {
			card.Values[p.PropertyID] = nil
		}
	}

	b.cards = append(b.cards, card)
	if err := b.persistCards(); err != nil {
		return nil, err
	}
	return card, nil
}

// UpdateCard applies a title/description update to a card.
// Returns ErrNotFound for an unknown ID.
func (b *Board) UpdateCard(id string, update CardUpdate) error {
	card := b.findCard(id)
	if card == nil {
		return types.ErrNotFound
	}
	if update.Title != nil {
		card.Title = *update.Title
		if card.Title == "" {
			card.Title = types.DefaultTitle
		}
	}
	if update.Description != nil {
		card.Description = *update.Description
	}
	return b.persistCards()
}

// DeleteCard removes a card. Returns ErrNotFound for an unknown ID.
func (b *Board) DeleteCard(id string) error {
	card := b.findCard(id)
	if card == nil {
		return types.ErrNotFound
	}
	kept := make([]*types.Card, 0, len(b.cards)-1)
	for _, c := range b.cards {
		if c.CardID != id {
			kept = append(kept, c)
		}
	}
	b.cards = kept
	return b.persistCards()
}

// SetValue replaces a card's value for one property. The value is
// stored as-is with no type checking against the property's declared
// type; mismatches are tolerated until conversion or projection time.
// Returns ErrNotFound for an unknown card or property, or for the title
// property, which lives outside the value map.
func (b *Board) SetValue(cardID, propertyID string, value any) error {
	card := b.findCard(cardID)
	if card == nil {
		return types.ErrNotFound
	}
	prop := b.findProperty(propertyID)
	if prop == nil || prop.IsTitle {
		return types.ErrNotFound
	}
	if card.Values == nil {
		card.Values = map[string]any{}
	}
	card.Values[propertyID] = value
	return b.persistCards()
}

// nextPosition returns a position past every existing card.
func (b *Board) nextPosition() int {
	next := 0
	for _, c := range b.cards {
		if c.Position >= next {
			next = c.Position + 1
		}
	}
	return next
}

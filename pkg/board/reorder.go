package board

import (
	"strconv"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// MoveColumn replaces a property's persisted columnOrder wholesale with
// the supplied key sequence. No validation against the live key
// universe happens here; stale or missing keys reconcile at the next
// projection. The synthetic "No value" key is never persisted and is
// dropped if present.
// Returns ErrNotFound for an unknown property.
func (b *Board) MoveColumn(groupPropertyID string, keys []string) error {
	prop := b.findProperty(groupPropertyID)
	if prop == nil {
		return types.ErrNotFound
	}

	order := make([]string, 0, len(keys))
	for _, key := range keys {
		if key != NoValueKey {
			order = append(order, key)
		}
	}
	prop.ColumnOrder = order

	return b.persistSchema()
}

// MoveCard applies the outcome of a completed card drag: the card now
// sits in the column destKey at destIndex, and orderedIDs lists every
// card in that column in on-screen order, post-move.
//
// When grouping is active and the destination differs from the card's
// current column, the card's value for the grouping property is
// overwritten to the destination key's value, or to nil for the
// "No value" column; no other card's values change. Every card in
// orderedIDs then has its position rewritten to its index, giving the
// destination column a contiguous 0-based sequence. Should the moved
// card be missing from orderedIDs it is inserted at destIndex first.
// Returns ErrNotFound for an unknown card.
func (b *Board) MoveCard(cardID, destKey string, destIndex int, orderedIDs []string) error {
	card := b.findCard(cardID)
	if card == nil {
		return types.ErrNotFound
	}

	if b.view.GroupBy != nil {
		if prop := b.findProperty(*b.view.GroupBy); prop != nil {
			if cardKey(card, prop) != destKey {
				card.Values[prop.PropertyID] = keyValue(prop, destKey)
			}
		}
	}

	ids := orderedIDs
	if !containsID(ids, cardID) {
		if destIndex < 0 {
			destIndex = 0
		}
		if destIndex > len(ids) {
			destIndex = len(ids)
		}
		ids = append(ids[:destIndex:destIndex], append([]string{cardID}, ids[destIndex:]...)...)
	}
	for i, id := range ids {
		if c := b.findCard(id); c != nil {
			c.Position = i
		}
	}

	return b.persistCards()
}

// keyValue translates a destination column key back into a stored value
// of the property's declared shape.
func keyValue(prop *types.Property, key string) any {
	if key == NoValueKey {
		return nil
	}
	switch prop.Type {
	case types.TypeMultiSelect:
		return []string{key}
	case types.TypeCheckbox:
		return key == "true"
	case types.TypeNumber:
		n, err := strconv.ParseFloat(key, 64)
		if err != nil {
			return nil
		}
		return n
	default:
		return key
	}
}

func containsID(ids []string, id string) bool {
	for _, e := range ids {
		if e == id {
			return true
		}
	}
	return false
}

package pegging

import (
	"fmt"

	"cribbage-core/pkg/deck"
)

// Holding is the cards a player has not played yet
// Playing a card removes it, so a card can never be played twice
type Holding struct {
	cards deck.Cards
}

// NewHolding returns a holding with a copy of the cards
func NewHolding(cards ...deck.Card) *Holding {
	return &Holding{
		cards: deck.Cards(cards).Clone(),
	}
}

// Cards returns a copy of the cards still held
func (h *Holding) Cards() []deck.Card {
	return h.cards.Clone()
}

// Len returns the number of cards still held
func (h *Holding) Len() int {
	return len(h.cards)
}

// HasPlayable returns true if any held card can be played on the current count
// If this returns false, the player must say go
func (h *Holding) HasPlayable(p *Pegger) bool {
	for _, card := range h.cards {
		if p.CanPlay(card) {
			return true
		}
	}

	return false
}

// PlayCard plays a held card on the pegger and returns the points earned
// On any error the holding and the pegger are unchanged
func (h *Holding) PlayCard(card deck.Card, p *Pegger) (int, error) {
	if !h.cards.HasCard(card) {
		return 0, fmt.Errorf("%w: %s", ErrCardNotHeld, card)
	}

	points, err := p.PlayCard(card)
	if err != nil {
		return 0, err
	}

	h.cards.Discard(card)
	return points, nil
}

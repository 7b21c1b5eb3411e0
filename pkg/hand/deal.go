package hand

import (
	"fmt"

	"cribbage-core/pkg/deck"
)

// DealSize returns the number of cards each player is dealt
func DealSize(players int) (int, error) {
	switch players {
	case 2:
		return 6, nil
	case 3, 4:
		return 5, nil
	}

	return 0, PlayerCountError(players)
}

// Dealt is the cards dealt to a single player before they discard to the crib
type Dealt struct {
	cards []deck.Card
}

// Deal draws a single player's cards from the deck
// Any deck error is returned as is, so check for deck.ErrNotEnoughCards
func Deal(d *deck.Deck, players int) (*Dealt, error) {
	n, err := DealSize(players)
	if err != nil {
		return nil, err
	}

	cards, err := d.DrawN(n)
	if err != nil {
		return nil, err
	}

	return &Dealt{cards: cards}, nil
}

// NewDealt returns dealt cards from known cards (i.e., fixtures)
func NewDealt(cards ...deck.Card) (*Dealt, error) {
	if len(cards) != 5 && len(cards) != 6 {
		return nil, fmt.Errorf("expected 5 or 6 cards, got %d", len(cards))
	}

	return &Dealt{cards: append([]deck.Card{}, cards...)}, nil
}

// Cards returns a copy of the dealt cards
func (d *Dealt) Cards() []deck.Card {
	return append([]deck.Card{}, d.cards...)
}

// Split separates the dealt cards into the four the player keeps and the discards for the crib
// Every dealt card must be used exactly once
func (d *Dealt) Split(keep [4]deck.Card, discard []deck.Card) (Kept, CribPart, error) {
	if len(keep)+len(discard) != len(d.cards) {
		return Kept{}, nil, fmt.Errorf("%w: expected %d discards, got %d", ErrInvalidSplit, len(d.cards)-len(keep), len(discard))
	}

	remaining := deck.Cards(d.Cards())
	for _, card := range append(keep[:], discard...) {
		if !remaining.Discard(card) {
			return Kept{}, nil, fmt.Errorf("%w: %s was not dealt", ErrInvalidSplit, card)
		}
	}

	return Kept(keep), CribPart(append([]deck.Card{}, discard...)), nil
}

// Kept is the four cards a player holds for pegging and the show
type Kept [4]deck.Card

// WithStarter returns the scoreable hand
func (k Kept) WithStarter(starter deck.Card) *Hand {
	return NewHand(k, starter, false)
}

// CribPart is the cards a single contributor discards to the crib
type CribPart []deck.Card

// Crib is the four cards that belong to the dealer
type Crib [4]deck.Card

// CombineCrib assembles the crib from each contribution
// In a three player game, the card dealt from the deck is passed in as its own part
func CombineCrib(parts ...CribPart) (Crib, error) {
	cards := make([]deck.Card, 0, 4)
	for _, part := range parts {
		cards = append(cards, part...)
	}

	if len(cards) != 4 {
		return Crib{}, fmt.Errorf("%w: got %d", ErrInvalidCrib, len(cards))
	}

	return Crib{cards[0], cards[1], cards[2], cards[3]}, nil
}

// WithStarter returns the scoreable crib
func (c Crib) WithStarter(starter deck.Card) *Hand {
	return NewHand(c, starter, true)
}

package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"
	"math/rand"

	"cribbage-core/internal/rng"
)

// ErrNotEnoughCards is an error when more cards are requested than remain in the deck
var ErrNotEnoughCards = errors.New("not enough cards in deck")

// Deck represents a playing deck
type Deck struct {
	Cards []Card `json:"cards"`
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		rng: rng.Crypto{},
	}

	d.buildDeck()
	return d
}

// SetSeed will make subsequent shuffles reproducible
// This should only be used by tests and tools that need to replay a deal
func (d *Deck) SetSeed(seed int64) {
	d.rng = rand.New(rand.NewSource(seed)) // nolint:gosec
}

// SetGenerator replaces the random number generator used for shuffling
func (d *Deck) SetGenerator(gen rng.Generator) {
	d.rng = gen
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, 52)
	for _, suit := range []Suit{Hearts, Clubs, Diamonds, Spades} {
		for _, rank := range Ranks {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle gathers all 52 cards and shuffles them
func (d *Deck) Shuffle() {
	// we always want to shuffle from a full deck
	d.buildDeck()

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the remaining cards.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Draw will draw the next card
// If there are no more cards, an ErrNotEnoughCards is returned
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrNotEnoughCards
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// DrawN will draw the next n cards
// If fewer than n cards remain, nothing is drawn and ErrNotEnoughCards is returned
func (d *Deck) DrawN(n int) ([]Card, error) {
	if n < 0 || !d.CanDraw(n) {
		return nil, fmt.Errorf("%w: wanted %d, have %d", ErrNotEnoughCards, n, len(d.Cards))
	}

	cards := make([]Card, n)
	copy(cards, d.Cards[:n])
	d.Cards = d.Cards[n:]

	return cards, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

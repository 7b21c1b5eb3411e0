package pegging

import (
	"fmt"

	"cribbage-core/pkg/deck"
)

// MaxCount is the highest count allowed in a single segment
const MaxCount = 31

// Pegger keeps track of the count and the cards played since the last reset
// The caller is responsible for resetting after 31 or a go, and for awarding the go point.
// A Pegger is not safe for concurrent use
type Pegger struct {
	count  int
	played deck.Cards
}

// New returns a new pegger with a count of zero
func New() *Pegger {
	return &Pegger{
		played: make(deck.Cards, 0, 13),
	}
}

// Count returns the running count
func (p *Pegger) Count() int {
	return p.count
}

// Played returns a copy of the cards played since the last reset
func (p *Pegger) Played() []deck.Card {
	return p.played.Clone()
}

// CanPlay returns true if the card would not take the count over 31
func (p *Pegger) CanPlay(card deck.Card) bool {
	return p.count+card.Value() <= MaxCount
}

// PlayCard plays the card and returns the points it earned
// If the card would take the count over 31, ErrInvalidCard is returned and nothing changes.
// Reaching exactly 31 earns 1 point here, the go point is up to the caller
func (p *Pegger) PlayCard(card deck.Card) (int, error) {
	if !p.CanPlay(card) {
		return 0, fmt.Errorf("%w: %s would make the count %d", ErrInvalidCard, card, p.count+card.Value())
	}

	p.count += card.Value()

	points := 0
	switch p.count {
	case 15:
		points += 2
	case MaxCount:
		points++
	}

	points += pairPoints(p.sameRankStreak(card))
	p.played = append(p.played, card)
	points += p.runPoints()

	return points, nil
}

// Reset starts a new segment
func (p *Pegger) Reset() {
	p.count = 0
	p.played = p.played[:0]
}

// sameRankStreak returns how many of the most recently played cards match the rank
func (p *Pegger) sameRankStreak(card deck.Card) int {
	streak := 0
	for i := len(p.played) - 1; i >= 0; i-- {
		if p.played[i].Rank != card.Rank {
			break
		}

		streak++
	}

	return streak
}

func pairPoints(streak int) int {
	switch streak {
	case 1:
		return 2
	case 2:
		return 6
	case 3:
		return 12
	}

	return 0
}

// runPoints checks the longest trailing cards first and stops at the first run
func (p *Pegger) runPoints() int {
	for i := 0; i+3 <= len(p.played); i++ {
		if tail := p.played[i:]; tail.IsRun() {
			return len(tail)
		}
	}

	return 0
}

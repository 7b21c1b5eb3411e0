package hand

import (
	"testing"

	"cribbage-core/pkg/deck"
)

func cards(t *testing.T, s string) []deck.Card {
	t.Helper()

	c, err := deck.CardsFromString(s)
	if err != nil {
		t.Fatalf("could not parse cards %q: %v", s, err)
	}

	return c
}

// newHand creates a hand from a string like "5H 5C 5S JD" and a starter like "5D"
func newHand(t *testing.T, held, starter string, isCrib bool) *Hand {
	t.Helper()

	c := cards(t, held)
	if len(c) != 4 {
		t.Fatalf("expected 4 held cards, got %d", len(c))
	}

	return NewHand([4]deck.Card{c[0], c[1], c[2], c[3]}, deck.MustCardFromString(starter), isCrib)
}

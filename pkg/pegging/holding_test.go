package pegging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"cribbage-core/pkg/deck"
)

func holding(s string) *Holding {
	cards, err := deck.CardsFromString(s)
	if err != nil {
		panic(err)
	}

	return NewHolding(cards...)
}

func TestHolding_PlayCard(t *testing.T) {
	a := assert.New(t)
	p := New()
	h := holding("5H 5C TS KD")

	a.Equal(4, h.Len())

	points, err := h.PlayCard(card("TS"), p)
	a.NoError(err)
	a.Equal(0, points)
	a.Equal("5H 5C KD", deck.CardsToString(h.Cards()))

	points, err = h.PlayCard(card("5H"), p)
	a.NoError(err)
	a.Equal(2, points)
	a.Equal(2, h.Len())

	_, err = h.PlayCard(card("5H"), p)
	a.True(errors.Is(err, ErrCardNotHeld))
	a.True(errors.Is(err, ErrInvalidCard))
	a.Equal(15, p.Count())
	a.Equal("5C KD", deck.CardsToString(h.Cards()))
}

func TestHolding_PlayCardOverflow(t *testing.T) {
	a := assert.New(t)
	p := New()
	_, _ = p.PlayCard(card("KH"))
	_, _ = p.PlayCard(card("QH"))
	_, _ = p.PlayCard(card("9H"))

	h := holding("3S 2S")
	a.True(h.HasPlayable(p))

	_, err := h.PlayCard(card("3S"), p)
	a.True(errors.Is(err, ErrInvalidCard))
	a.False(errors.Is(err, ErrCardNotHeld))
	a.Equal(2, h.Len())
	a.Equal(29, p.Count())

	points, err := h.PlayCard(card("2S"), p)
	a.NoError(err)
	a.Equal(1, points)
	a.Equal([]deck.Card{card("3S")}, h.Cards())
	a.False(h.HasPlayable(p))

	p.Reset()
	a.True(h.HasPlayable(p))
	_, err = h.PlayCard(card("3S"), p)
	a.NoError(err)
	a.Equal(0, h.Len())
	a.False(h.HasPlayable(p))
}

func TestNewHolding_Copies(t *testing.T) {
	cards, _ := deck.CardsFromString("AH 2H 3H 4H")
	h := NewHolding(cards...)
	cards[0] = card("KS")

	assert.Equal(t, "AH 2H 3H 4H", deck.CardsToString(h.Cards()))
}

package deck

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fixedGenerator int

func (f fixedGenerator) Intn(n int) int {
	return int(f) % n
}

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, 52, deck.CardsLeft())
	assert.Equal(t, Card{Rank: Ace, Suit: Hearts}, deck.Cards[0])
	assert.Equal(t, Card{Rank: King, Suit: Spades}, deck.Cards[51])
	assert.Equal(t, "7b09cfdd8939a1ce65a3558647a0aa1f777eaa57", deck.HashCode())

	seen := make(map[Card]bool)
	for _, card := range deck.Cards {
		seen[card] = true
	}
	assert.Equal(t, 52, len(seen))
}

func TestDeck_SetSeed(t *testing.T) {
	d1 := New()
	d1.SetSeed(1)
	d1.Shuffle()

	d2 := New()
	d2.SetSeed(1)
	d2.Shuffle()

	assert.Equal(t, d1.HashCode(), d2.HashCode())
	assert.NotEqual(t, New().HashCode(), d1.HashCode())

	h := d1.HashCode()
	d1.Shuffle()
	assert.NotEqual(t, h, d1.HashCode())
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)
	d := New()
	d.SetGenerator(fixedGenerator(0))
	_, _ = d.DrawN(10)
	a.Equal(42, d.CardsLeft())

	d.Shuffle()
	a.Equal(52, d.CardsLeft())

	// always picking index 0 rotates the first card to the back
	a.Equal(Card{Rank: Two, Suit: Hearts}, d.Cards[0])
	a.Equal(Card{Rank: Ace, Suit: Hearts}, d.Cards[51])
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	assert.True(t, deck.CanDraw(52))
	assert.False(t, deck.CanDraw(53))

	card, err := deck.Draw()
	assert.NoError(t, err)
	assert.Equal(t, MustCardFromString("AH"), card)
	assert.Equal(t, 51, deck.CardsLeft())

	for i := 0; i < 51; i++ {
		_, err := deck.Draw()
		assert.NoError(t, err)
	}

	assert.False(t, deck.CanDraw(1))

	card, err = deck.Draw()
	assert.Equal(t, Card{}, card)
	assert.Equal(t, ErrNotEnoughCards, err)
	assert.Equal(t, 0, deck.CardsLeft())
}

func TestDeck_DrawN(t *testing.T) {
	a := assert.New(t)
	deck := New()

	cards, err := deck.DrawN(0)
	a.NoError(err)
	a.Empty(cards)
	a.Equal(52, deck.CardsLeft())

	cards, err = deck.DrawN(1)
	a.NoError(err)
	a.Equal([]Card{MustCardFromString("AH")}, cards)
	a.Equal(51, deck.CardsLeft())

	deck = New()
	cards, err = deck.DrawN(52)
	a.NoError(err)
	a.Equal(New().Cards, cards)
	a.Equal(0, deck.CardsLeft())

	_, err = deck.DrawN(1)
	a.True(errors.Is(err, ErrNotEnoughCards))

	deck = New()
	_, _ = deck.DrawN(50)
	_, err = deck.DrawN(6)
	a.True(errors.Is(err, ErrNotEnoughCards))
	a.Equal(2, deck.CardsLeft(), "a failed draw should not consume cards")

	_, err = deck.DrawN(-1)
	a.Error(err)
}

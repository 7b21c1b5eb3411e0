package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCardString is an error when a card cannot be parsed from a string
var ErrInvalidCardString = errors.New("invalid string representation of card")

// Rank is the rank of a card, from Ace (low) to King
type Rank int

// rank constants
const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks is every rank in ascending order
var Ranks = [13]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

const rankChars = "A23456789TJQK"

// Ordinal returns the position of the rank from 1 (Ace) to 13 (King)
// Use this for adjacency, i.e., runs
func (r Rank) Ordinal() int {
	return int(r)
}

// Value returns the counting value of the rank
// Face cards are worth 10, all other cards are worth their pip value
func (r Rank) Value() int {
	if r >= Ten {
		return 10
	}

	return int(r)
}

func (r Rank) String() string {
	if r < Ace || r > King {
		return "?"
	}

	return rankChars[r-1 : r]
}

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Suits is every suit in sort order
var Suits = [4]Suit{Spades, Diamonds, Clubs, Hearts}

// order returns the position of the suit used for sorting only
// Suits never outrank each other when scoring
func (s Suit) order() int {
	switch s {
	case Spades:
		return 0
	case Diamonds:
		return 1
	case Clubs:
		return 2
	case Hearts:
		return 3
	}

	return 4
}

func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Spades:
		return "S"
	}

	return "?"
}

// Card is an individual playing card
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// NewCard returns a card of the rank and suit
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Value is a shortcut for c.Rank.Value()
func (c Card) Value() int {
	return c.Rank.Value()
}

// Less returns true if c sorts before card (by rank, then suit)
func (c Card) Less(card Card) bool {
	if c.Rank != card.Rank {
		return c.Rank < card.Rank
	}

	return c.Suit.order() < card.Suit.order()
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank is in [A23456789TJQK] and
// suit is in [HCDS]. Case is ignored as is surrounding whitespace.
func CardFromString(s string) (Card, error) {
	chars := []rune(strings.ToUpper(strings.TrimSpace(s)))
	if len(chars) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardString, s)
	}

	i := strings.IndexRune(rankChars, chars[0])
	if i < 0 {
		return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCardString, s)
	}

	var suit Suit
	switch chars[1] {
	case 'H':
		suit = Hearts
	case 'C':
		suit = Clubs
	case 'D':
		suit = Diamonds
	case 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCardString, s)
	}

	return Card{Rank: Rank(i + 1), Suit: suit}, nil
}

// MustCardFromString is like CardFromString, but panics on an invalid string
// This is intended for tests and fixtures
func MustCardFromString(s string) Card {
	card, err := CardFromString(s)
	if err != nil {
		panic(err)
	}

	return card
}

// CardsFromString returns the cards in a whitespace or comma separated string (e.g., "5H 5C,JD")
func CardsFromString(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	cards := make([]Card, len(fields))
	for i, field := range fields {
		card, err := CardFromString(field)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsToString will convert a slice of cards to a string in the format of "AS 5H TD"
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, " ")
}

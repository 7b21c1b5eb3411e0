package hand

import (
	"sync"

	"cribbage-core/pkg/deck"
)

// MaxScore is the highest score a single hand can achieve
const MaxScore = 29

// Breakdown is the score of a hand split by rule
type Breakdown struct {
	Fifteens int `json:"fifteens"`
	Pairs    int `json:"pairs"`
	Runs     int `json:"runs"`
	Flush    int `json:"flush"`
	Nobs     int `json:"nobs"`
}

// Total returns the sum of all the rules
func (b Breakdown) Total() int {
	return b.Fifteens + b.Pairs + b.Runs + b.Flush + b.Nobs
}

// Hand is four held cards plus the starter
// Hands are immutable. The score is calculated on first use and cached
type Hand struct {
	cards   [4]deck.Card
	starter deck.Card
	isCrib  bool

	once      sync.Once
	breakdown Breakdown
}

// NewHand returns a new hand
// Set isCrib for the crib, which has a stricter flush rule
func NewHand(cards [4]deck.Card, starter deck.Card, isCrib bool) *Hand {
	return &Hand{
		cards:   cards,
		starter: starter,
		isCrib:  isCrib,
	}
}

// Cards returns a copy of the held cards
func (h *Hand) Cards() []deck.Card {
	cards := make([]deck.Card, len(h.cards))
	copy(cards, h.cards[:])
	return cards
}

// Starter returns the starter card
func (h *Hand) Starter() deck.Card {
	return h.starter
}

// IsCrib returns true if the hand is the crib
func (h *Hand) IsCrib() bool {
	return h.isCrib
}

// Score returns the total points for the hand
func (h *Hand) Score() int {
	return h.Breakdown().Total()
}

// Breakdown returns the points for the hand by rule
func (h *Hand) Breakdown() Breakdown {
	h.once.Do(func() {
		h.breakdown = Breakdown{
			Fifteens: h.scoreFifteens(),
			Pairs:    h.scorePairs(),
			Runs:     h.scoreRuns(),
			Flush:    h.scoreFlush(),
			Nobs:     h.scoreNobs(),
		}
	})

	return h.breakdown
}

func (h *Hand) String() string {
	s := deck.CardsToString(h.cards[:]) + " | " + h.starter.String()
	if h.isCrib {
		s += " (crib)"
	}

	return s
}

func (h *Hand) all() [5]deck.Card {
	return [5]deck.Card{h.cards[0], h.cards[1], h.cards[2], h.cards[3], h.starter}
}

func (h *Hand) scoreFifteens() int {
	points := 0
	for size := 2; size <= 5; size++ {
		for _, set := range subsets(h.all(), size) {
			sum := 0
			for _, card := range set {
				sum += card.Value()
			}

			if sum == 15 {
				points += 2
			}
		}
	}

	return points
}

func (h *Hand) scorePairs() int {
	points := 0
	for _, set := range subsets(h.all(), 2) {
		if set[0].Rank == set[1].Rank {
			points += 2
		}
	}

	return points
}

// scoreRuns only scores the longest run length found
// a double run of three (e.g., 3-4-5-5) scores 6, but 3-4-5-6 never also scores its runs of three
func (h *Hand) scoreRuns() int {
	for size := 5; size >= 3; size-- {
		points := 0
		for _, set := range subsets(h.all(), size) {
			points += scoreRun(set)
		}

		if points > 0 {
			return points
		}
	}

	return 0
}

// scoreRun returns len(cards) if the cards form a run, otherwise 0
func scoreRun(cards []deck.Card) int {
	if !deck.Cards(cards).IsRun() {
		return 0
	}

	return len(cards)
}

func (h *Hand) scoreFlush() int {
	suit := h.cards[0].Suit
	for _, card := range h.cards[1:] {
		if card.Suit != suit {
			return 0
		}
	}

	if h.starter.Suit == suit {
		return 5
	}

	// the crib requires the starter to match
	if h.isCrib {
		return 0
	}

	return 4
}

func (h *Hand) scoreNobs() int {
	for _, card := range h.cards {
		if card.Rank == deck.Jack && card.Suit == h.starter.Suit {
			return 1
		}
	}

	return 0
}

// HisHeels returns the points the dealer pegs when the starter is cut
// This is awarded by the caller and is not part of any hand score
func HisHeels(starter deck.Card) int {
	if starter.Rank == deck.Jack {
		return 2
	}

	return 0
}

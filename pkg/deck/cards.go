package deck

import "sort"

// Cards represents a collection of cards
// Sorting orders by rank, then suit
type Cards []Card

func (h Cards) Len() int {
	return len(h)
}

func (h Cards) Less(i, j int) bool {
	return h[i].Less(h[j])
}

func (h Cards) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// HasCard returns true if the collection contains the specified card
func (h Cards) HasCard(card Card) bool {
	return h.index(card) >= 0
}

// Discard removes the first copy of card and returns true if it was found
func (h *Cards) Discard(card Card) bool {
	i := h.index(card)
	if i < 0 {
		return false
	}

	newCards := make(Cards, 0, len(*h)-1)
	newCards = append(newCards, (*h)[:i]...)
	newCards = append(newCards, (*h)[i+1:]...)
	*h = newCards
	return true
}

func (h Cards) index(card Card) int {
	for i, c := range h {
		if c == card {
			return i
		}
	}

	return -1
}

func (h Cards) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the cards
func (h Cards) Clone() Cards {
	h2 := make(Cards, len(h))
	copy(h2, h)

	return h2
}

// IsRun returns true if there are at least three cards and, once sorted, every rank
// is one higher than the rank before it. Any duplicate rank breaks the run
func (h Cards) IsRun() bool {
	if len(h) < 3 {
		return false
	}

	sorted := h.Clone()
	sort.Sort(sorted)

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Rank.Ordinal() != sorted[i-1].Rank.Ordinal()+1 {
			return false
		}
	}

	return true
}

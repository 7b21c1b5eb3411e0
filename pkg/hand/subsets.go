package hand

import "cribbage-core/pkg/deck"

// subsets returns every combination of size cards from the five cards of a hand
// Each subset is a fresh slice, so callers are free to sort it
func subsets(cards [5]deck.Card, size int) [][]deck.Card {
	var sets [][]deck.Card
	for mask := 1; mask < 1<<len(cards); mask++ {
		if bitCount(mask) != size {
			continue
		}

		set := make([]deck.Card, 0, size)
		for i, card := range cards {
			if mask&(1<<i) != 0 {
				set = append(set, card)
			}
		}

		sets = append(sets, set)
	}

	return sets
}

func bitCount(n int) int {
	count := 0
	for ; n > 0; n &= n - 1 {
		count++
	}

	return count
}

package hand

import (
	"errors"
	"fmt"
)

// ErrInvalidPlayerCount is returned when dealing for an unsupported number of players
var ErrInvalidPlayerCount = errors.New("cribbage supports 2–4 players")

// ErrInvalidSplit happens when the kept and discarded cards are not exactly the dealt cards
var ErrInvalidSplit = errors.New("kept and discarded cards must be the dealt cards")

// ErrInvalidCrib happens when the crib contributions do not add up to four cards
var ErrInvalidCrib = errors.New("the crib must have exactly 4 cards")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError int

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected 2–4 players, got %d", int(p))
}

// Unwrap allows errors.Is(err, ErrInvalidPlayerCount)
func (p PlayerCountError) Unwrap() error {
	return ErrInvalidPlayerCount
}

package pegging

import (
	"errors"
	"fmt"
)

// ErrInvalidCard is an error when a card cannot be played
var ErrInvalidCard = errors.New("invalid card played")

// ErrCardNotHeld happens when the player tries to play a card they don't have
var ErrCardNotHeld = fmt.Errorf("%w: card is not held", ErrInvalidCard)

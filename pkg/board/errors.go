package board

import "errors"

// ErrWinnerExists is an error when points are changed after the game is won
var ErrWinnerExists = errors.New("winner already exists")

// ErrInvalidPlayer is an error when the player is not on the board
var ErrInvalidPlayer = errors.New("invalid player")

// ErrInvalidPlayerCount is an error when a board is created for an unsupported number of players
var ErrInvalidPlayerCount = errors.New("a board supports 2–4 players")

// ErrInvalidTarget is an error when the target score is not positive
var ErrInvalidTarget = errors.New("target must be greater than zero")

package board

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// StandardTarget is the score needed to win a standard game
const StandardTarget = 121

// Peg is a single change to a player's score
type Peg struct {
	UUID   string    `json:"uuid"`
	Player int       `json:"player"`
	Points int       `json:"points"`
	Score  int       `json:"score"`
	Time   time.Time `json:"time"`
}

// Board keeps score for each player until someone reaches the target
// Players are identified by their index, starting at zero
type Board struct {
	scores []int
	target int
	winner int
	pegs   []*Peg

	logger logrus.FieldLogger
}

// New returns a new board
func New(players, target int, logger logrus.FieldLogger) (*Board, error) {
	if players < 2 || players > 4 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayerCount, players)
	}

	if target <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTarget, target)
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Board{
		scores: make([]int, players),
		target: target,
		winner: -1,
		logger: logger,
	}, nil
}

// NewStandard returns a new board played to 121
func NewStandard(players int, logger logrus.FieldLogger) (*Board, error) {
	return New(players, StandardTarget, logger)
}

// Players returns the number of players on the board
func (b *Board) Players() int {
	return len(b.scores)
}

// Target returns the score needed to win
func (b *Board) Target() int {
	return b.target
}

// AddPoints adds points to the player's score and returns the new score
// The score stops at the target, and reaching it makes the player the winner
func (b *Board) AddPoints(player, points int) (int, error) {
	if err := b.canChange(player); err != nil {
		return 0, err
	}

	score := b.scores[player] + points
	if score > b.target {
		score = b.target
	}

	b.set(player, score)
	if score == b.target {
		b.winner = player
		b.logger.WithFields(logrus.Fields{
			"player": player,
			"score":  score,
		}).Info("winner")
	}

	return score, nil
}

// SubtractPoints removes points from the player's score, stopping at zero
// This exists to correct mistakes
func (b *Board) SubtractPoints(player, points int) (int, error) {
	if err := b.canChange(player); err != nil {
		return 0, err
	}

	score := b.scores[player] - points
	if score < 0 {
		score = 0
	}

	b.set(player, score)
	return score, nil
}

// Score returns the player's score
func (b *Board) Score(player int) (int, error) {
	if player < 0 || player >= len(b.scores) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	}

	return b.scores[player], nil
}

// Winner returns the winning player, if there is one
func (b *Board) Winner() (int, bool) {
	return b.winner, b.winner >= 0
}

// Pegs returns every score change in the order they happened
func (b *Board) Pegs() []*Peg {
	return append([]*Peg{}, b.pegs...)
}

func (b *Board) canChange(player int) error {
	if b.winner >= 0 {
		return ErrWinnerExists
	}

	if player < 0 || player >= len(b.scores) {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, player)
	}

	return nil
}

func (b *Board) set(player, score int) {
	peg := &Peg{
		UUID:   uuid.New().String(),
		Player: player,
		Points: score - b.scores[player],
		Score:  score,
		Time:   time.Now(),
	}

	b.scores[player] = score
	b.pegs = append(b.pegs, peg)

	b.logger.WithFields(logrus.Fields{
		"player": peg.Player,
		"points": peg.Points,
		"score":  peg.Score,
	}).Debug("pegged")
}

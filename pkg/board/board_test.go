package board

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	for _, players := range []int{2, 3, 4} {
		b, err := NewStandard(players, nil)
		a.NoError(err)
		a.Equal(players, b.Players())
		a.Equal(121, b.Target())

		for i := 0; i < players; i++ {
			score, err := b.Score(i)
			a.NoError(err)
			a.Equal(0, score)
		}

		_, ok := b.Winner()
		a.False(ok)
	}

	_, err := New(1, 121, nil)
	a.True(errors.Is(err, ErrInvalidPlayerCount))

	_, err = New(5, 121, nil)
	a.True(errors.Is(err, ErrInvalidPlayerCount))

	_, err = New(2, 0, nil)
	a.True(errors.Is(err, ErrInvalidTarget))
}

func TestBoard_AddPoints(t *testing.T) {
	for players := 2; players <= 4; players++ {
		for player := 0; player < players; player++ {
			a := assert.New(t)
			b, err := NewStandard(players, nil)
			require.NoError(t, err)

			score, err := b.AddPoints(player, 1)
			a.NoError(err)
			a.Equal(1, score)

			for other := 0; other < players; other++ {
				if other != player {
					s, _ := b.Score(other)
					a.Equal(0, s)
				}
			}

			score, err = b.AddPoints(player, 119)
			a.NoError(err)
			a.Equal(120, score)
			_, ok := b.Winner()
			a.False(ok)

			score, err = b.AddPoints(player, 2)
			a.NoError(err)
			a.Equal(121, score, "score should stop at the target")

			winner, ok := b.Winner()
			a.True(ok)
			a.Equal(player, winner)

			_, err = b.AddPoints(player, 1)
			a.Equal(ErrWinnerExists, err)

			_, err = b.SubtractPoints(player, 1)
			a.Equal(ErrWinnerExists, err)
		}
	}
}

func TestBoard_SubtractPoints(t *testing.T) {
	a := assert.New(t)
	b, _ := New(2, 61, nil)

	_, _ = b.AddPoints(1, 10)
	score, err := b.SubtractPoints(1, 4)
	a.NoError(err)
	a.Equal(6, score)

	score, err = b.SubtractPoints(1, 100)
	a.NoError(err)
	a.Equal(0, score)
}

func TestBoard_InvalidPlayer(t *testing.T) {
	a := assert.New(t)
	b, _ := NewStandard(3, nil)

	_, err := b.AddPoints(3, 1)
	a.True(errors.Is(err, ErrInvalidPlayer))

	_, err = b.SubtractPoints(-1, 1)
	a.True(errors.Is(err, ErrInvalidPlayer))

	_, err = b.Score(7)
	a.True(errors.Is(err, ErrInvalidPlayer))

	a.Empty(b.Pegs())
}

func TestBoard_Pegs(t *testing.T) {
	a := assert.New(t)
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	b, _ := New(2, 10, logger)
	_, _ = b.AddPoints(0, 4)
	_, _ = b.AddPoints(1, 2)
	_, _ = b.SubtractPoints(0, 1)
	_, _ = b.AddPoints(0, 20)

	pegs := b.Pegs()
	if !a.Len(pegs, 4) {
		return
	}

	a.Equal(0, pegs[0].Player)
	a.Equal(4, pegs[0].Points)
	a.Equal(4, pegs[0].Score)

	a.Equal(-1, pegs[2].Points)
	a.Equal(3, pegs[2].Score)

	// capped at the target
	a.Equal(7, pegs[3].Points)
	a.Equal(10, pegs[3].Score)

	for _, peg := range pegs {
		_, err := uuid.Parse(peg.UUID)
		a.NoError(err)
		a.False(peg.Time.IsZero())
	}

	a.Len(hook.AllEntries(), 5)
	last := hook.LastEntry()
	a.Equal(logrus.InfoLevel, last.Level)
	a.Equal("winner", last.Message)
	a.Equal(0, last.Data["player"])
}

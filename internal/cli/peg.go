package cli

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cribbage-core/internal/config"
	"cribbage-core/pkg/board"
	"cribbage-core/pkg/deck"
	"cribbage-core/pkg/pegging"
)

func newPegCmd() *cobra.Command {
	var players, target int

	cmd := &cobra.Command{
		Use:   "peg [cards...]",
		Short: "Score a sequence of pegging plays",
		Long: `Peg plays the cards in order and prints the points each play earns.

Plays are credited to the players in rotation. A card that would take the
count past 31 is a go: the last player to play pegs 1 and the count starts
over. The count also starts over after 31. Pegging stops once a player
reaches the target.

Examples:
  cribbage peg 5H TD 5S 5C
  cribbage peg --players 3 7H 8C 9D`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := deck.CardsFromString(strings.Join(args, " "))
			if err != nil {
				return err
			}

			cfg := config.Instance()
			if !cmd.Flags().Changed("players") {
				players = cfg.Board.Players
			}

			if !cmd.Flags().Changed("target") {
				target = cfg.Board.Target
			}

			b, err := board.New(players, target, logrus.StandardLogger())
			if err != nil {
				return err
			}

			return peg(cmd, b, cards)
		},
	}

	cmd.Flags().IntVarP(&players, "players", "p", 2, "Number of players")
	cmd.Flags().IntVarP(&target, "target", "t", board.StandardTarget, "Score needed to win")

	return cmd
}

func peg(cmd *cobra.Command, b *board.Board, cards []deck.Card) error {
	out := cmd.OutOrStdout()
	p := pegging.New()
	last := -1

	award := func(player, n int, reason string) (bool, error) {
		score, err := b.AddPoints(player, n)
		if err != nil {
			return false, err
		}

		_, _ = fmt.Fprintf(out, "%-3s %-8s %s (%d)\n", playerName(player), reason, points.Sprintf("+%d", n), score)
		_, won := b.Winner()
		return won, nil
	}

	for i, card := range cards {
		player := i % b.Players()

		if !p.CanPlay(card) {
			_, _ = fmt.Fprintln(out, warning.Sprintf("go at %d", p.Count()))
			if won, err := award(last, 1, "go"); err != nil || won {
				return finish(cmd, b, err)
			}

			p.Reset()
		}

		n, err := p.PlayCard(card)
		if err != nil {
			return err
		}

		last = player
		logrus.WithFields(logrus.Fields{
			"card":   card.String(),
			"count":  p.Count(),
			"points": n,
		}).Debug("played card")

		_, _ = fmt.Fprintf(out, "%-3s %s  count %2d\n", playerName(player), bold.Sprint(card), p.Count())
		if n > 0 {
			if won, err := award(player, n, "play"); err != nil || won {
				return finish(cmd, b, err)
			}
		}

		if p.Count() == pegging.MaxCount {
			p.Reset()
		}
	}

	if p.Count() > 0 {
		if _, err := award(last, 1, "last"); err != nil {
			return err
		}
	}

	return finish(cmd, b, nil)
}

func finish(cmd *cobra.Command, b *board.Board, err error) error {
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	scores := make([]string, b.Players())
	for i := range scores {
		score, _ := b.Score(i)
		scores[i] = fmt.Sprintf("%s=%d", playerName(i), score)
	}

	_, _ = fmt.Fprintf(out, "Scores: %s\n", strings.Join(scores, " "))
	if winner, ok := b.Winner(); ok {
		_, _ = fmt.Fprintf(out, "Winner: %s\n", points.Sprint(playerName(winner)))
	}

	return nil
}

package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"cribbage-core/internal/config"
	"cribbage-core/pkg/deck"
	"cribbage-core/pkg/hand"
)

func newDealCmd() *cobra.Command {
	var players int
	var seed int64

	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Shuffle and deal a round",
		Long: `Deal shuffles a deck, deals each player, and cuts the starter.

With three players, one card from the deck goes to the crib. Use --seed to
replay the same deal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("players") {
				players = config.Instance().Board.Players
			}

			d := deck.New()
			if seed != 0 {
				d.SetSeed(seed)
			}
			d.Shuffle()

			logrus.WithFields(logrus.Fields{
				"players": players,
				"seed":    seed,
				"hash":    d.HashCode(),
			}).Debug("shuffled deck")

			return deal(cmd, d, players)
		},
	}

	cmd.Flags().IntVarP(&players, "players", "p", 2, "Number of players")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "Shuffle seed (0 for a random shuffle)")

	return cmd
}

func deal(cmd *cobra.Command, d *deck.Deck, players int) error {
	out := cmd.OutOrStdout()

	for i := 0; i < players; i++ {
		dealt, err := hand.Deal(d, players)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(out, "%-8s %s\n", playerName(i)+":", bold.Sprint(deck.CardsToString(dealt.Cards())))
	}

	if players == 3 {
		card, err := d.Draw()
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintf(out, "%-8s %s\n", "Crib:", bold.Sprint(card))
	}

	starter, err := d.Draw()
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "%-8s %s\n", "Starter:", bold.Sprint(starter))
	if n := hand.HisHeels(starter); n > 0 {
		_, _ = fmt.Fprintf(out, "His heels: dealer %s\n", points.Sprintf("+%d", n))
	}

	return nil
}

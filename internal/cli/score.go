package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cribbage-core/pkg/deck"
	"cribbage-core/pkg/hand"
)

func newScoreCmd() *cobra.Command {
	var isCrib bool

	cmd := &cobra.Command{
		Use:   "score [cards...]",
		Short: "Score a hand of four cards plus the starter",
		Long: `Score prints the points for a hand by rule. The last card is the starter.

Examples:
  cribbage score 5H 5C 5S JD 5D
  cribbage score --crib "4H 5H 6H 7H 8S"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := deck.CardsFromString(strings.Join(args, " "))
			if err != nil {
				return err
			}

			if len(cards) != 5 {
				return fmt.Errorf("expected 4 cards and a starter, got %d cards", len(cards))
			}

			h := hand.NewHand([4]deck.Card{cards[0], cards[1], cards[2], cards[3]}, cards[4], isCrib)
			printHand(cmd, h)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&isCrib, "crib", "c", false, "Score the hand as the crib")

	return cmd
}

func printHand(cmd *cobra.Command, h *hand.Hand) {
	out := cmd.OutOrStdout()
	b := h.Breakdown()

	label := "Hand"
	if h.IsCrib() {
		label = "Crib"
	}

	_, _ = fmt.Fprintf(out, "%-9s %s\n", label+":", bold.Sprint(deck.CardsToString(h.Cards())))
	_, _ = fmt.Fprintf(out, "%-9s %s\n", "Starter:", bold.Sprint(h.Starter()))
	_, _ = fmt.Fprintf(out, "%-9s %d\n", "Fifteens:", b.Fifteens)
	_, _ = fmt.Fprintf(out, "%-9s %d\n", "Pairs:", b.Pairs)
	_, _ = fmt.Fprintf(out, "%-9s %d\n", "Runs:", b.Runs)
	_, _ = fmt.Fprintf(out, "%-9s %d\n", "Flush:", b.Flush)
	_, _ = fmt.Fprintf(out, "%-9s %d\n", "Nobs:", b.Nobs)
	_, _ = fmt.Fprintf(out, "%-9s %s\n", "Total:", points.Sprint(b.Total()))
}

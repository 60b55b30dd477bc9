// Move commands for the corkboard CLI. These consume the outcome of a
// completed drag: a card moved to a column at an index, or a column
// moved to a new rank.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/corkboard/pkg/board"
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Reorder cards and columns",
}

var (
	moveCardTo    string
	moveCardIndex int
	moveCardNone  bool
)

var moveCardCmd = &cobra.Command{
	Use:   "card <id>",
	Short: "Move a card to a column at an index",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !moveCardNone && moveCardTo == "" {
			fmt.Fprintln(os.Stderr, "move card: --to or --no-value is required")
			os.Exit(exitUserError)
		}

		b, backend := mustOpenBoard("move card")
		defer backend.Detach()

		set := b.ProjectActive()
		if set == nil {
			fmt.Fprintln(os.Stderr, "move card: no grouping active")
			os.Exit(exitUserError)
		}

		destKey := moveCardTo
		if moveCardNone {
			destKey = board.NoValueKey
		}

		// Rebuild the destination column's on-screen order with the card
		// inserted at the requested index, the way a drag reports it.
		ordered := make([]string, 0)
		for _, col := range set.Columns {
			if col.Key != destKey {
				continue
			}
			for _, c := range col.Records {
				if c.CardID != args[0] {
					ordered = append(ordered, c.CardID)
				}
			}
		}
		index := moveCardIndex
		if index < 0 || index > len(ordered) {
			index = len(ordered)
		}
		ordered = append(ordered[:index:index], append([]string{args[0]}, ordered[index:]...)...)

		if err := b.MoveCard(args[0], destKey, index, ordered); err != nil {
			fmt.Fprintln(os.Stderr, "move card:", err)
			os.Exit(exitUserError)
		}
		fmt.Printf("Moved card %s to %s[%d]\n", args[0], destKey, index)
		return nil
	},
}

var moveColumnOrder string

var moveColumnCmd = &cobra.Command{
	Use:   "column",
	Short: "Persist a new column order for the active grouping property",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, backend := mustOpenBoard("move column")
		defer backend.Detach()

		view := b.View()
		if view.GroupBy == nil {
			fmt.Fprintln(os.Stderr, "move column: no grouping active")
			os.Exit(exitUserError)
		}

		keys := splitCommaList(moveColumnOrder)
		if err := b.MoveColumn(*view.GroupBy, keys); err != nil {
			fmt.Fprintln(os.Stderr, "move column:", err)
			os.Exit(exitUserError)
		}
		fmt.Println("Column order updated")
		return nil
	},
}

func init() {
	moveCardCmd.Flags().StringVar(&moveCardTo, "to", "", "destination column key")
	moveCardCmd.Flags().IntVar(&moveCardIndex, "index", -1, "destination index (default: end of column)")
	moveCardCmd.Flags().BoolVar(&moveCardNone, "no-value", false, "move to the \"No value\" column")

	moveColumnCmd.Flags().StringVar(&moveColumnOrder, "order", "", "comma-separated column keys in the new order")
	moveColumnCmd.MarkFlagRequired("order")

	moveCmd.AddCommand(moveCardCmd)
	moveCmd.AddCommand(moveColumnCmd)
}

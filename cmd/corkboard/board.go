// Board command for the corkboard CLI: shows the column projection.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	boardGroupBy string
	boardClear   bool
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show the board's column projection",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, backend := mustOpenBoard("board")
		defer backend.Detach()

		if boardClear {
			if err := b.SetGroupBy(nil); err != nil {
				fmt.Fprintln(os.Stderr, "board:", err)
				os.Exit(exitSysError)
			}
		} else if boardGroupBy != "" {
			prop := findPropertyByRef(b, boardGroupBy)
			if prop == nil {
				fmt.Fprintf(os.Stderr, "property %q not found\n", boardGroupBy)
				os.Exit(exitUserError)
			}
			if err := b.SetGroupBy(&prop.PropertyID); err != nil {
				fmt.Fprintln(os.Stderr, "board:", err)
				os.Exit(exitUserError)
			}
		}

		set := b.ProjectActive()
		if set == nil {
			if flagJSON {
				printJSON(nil)
				return nil
			}
			fmt.Println("No grouping active. Pick one with --group-by; candidates:")
			for _, p := range b.GroupableProperties() {
				fmt.Printf("  %s (%s)\n", p.Name, p.Type)
			}
			return nil
		}

		if flagJSON {
			printJSON(set)
			return nil
		}
		fmt.Printf("Grouped by %s\n", set.Property.Name)
		for _, col := range set.Columns {
			fmt.Printf("\n%s (%d)\n", col.Label, len(col.Records))
			for _, c := range col.Records {
				fmt.Printf("  %s  %s\n", shortID(c.CardID), c.Title)
			}
		}
		return nil
	},
}

func init() {
	boardCmd.Flags().StringVar(&boardGroupBy, "group-by", "", "set the grouping property (id or name)")
	boardCmd.Flags().BoolVar(&boardClear, "clear", false, "deactivate grouping")
}

// Card commands for the corkboard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/corkboard/pkg/board"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage cards",
}

var cardCreateDescription string

var cardCreateCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a card",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, backend := mustOpenBoard("card create")
		defer backend.Detach()

		title := ""
		if len(args) > 0 {
			title = args[0]
		}
		card, err := b.CreateCard(title)
		if err != nil {
			fmt.Fprintln(os.Stderr, "card create:", err)
			os.Exit(exitSysError)
		}
		if cardCreateDescription != "" {
			if err := b.UpdateCard(card.CardID, board.CardUpdate{Description: &cardCreateDescription}); err != nil {
				fmt.Fprintln(os.Stderr, "card create:", err)
				os.Exit(exitSysError)
			}
		}

		if flagJSON {
			printJSON(card)
			return nil
		}
		fmt.Printf("Created card: %s\n", card.CardID)
		return nil
	},
}

var cardListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, backend := mustOpenBoard("card list")
		defer backend.Detach()

		if flagJSON {
			printJSON(b.Cards())
			return nil
		}
		for _, c := range b.Cards() {
			fmt.Printf("%s  %s\n", shortID(c.CardID), c.Title)
		}
		return nil
	},
}

var (
	cardUpdateTitle       string
	cardUpdateDescription string
)

var cardUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a card's title or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, backend := mustOpenBoard("card update")
		defer backend.Detach()

		update := board.CardUpdate{}
		if cmd.Flags().Changed("title") {
			update.Title = &cardUpdateTitle
		}
		if cmd.Flags().Changed("description") {
			update.Description = &cardUpdateDescription
		}

		if err := b.UpdateCard(args[0], update); err != nil {
			fmt.Fprintln(os.Stderr, "card update:", err)
			os.Exit(exitUserError)
		}
		fmt.Printf("Updated card: %s\n", args[0])
		return nil
	},
}

var cardDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, backend := mustOpenBoard("card delete")
		defer backend.Detach()

		if err := b.DeleteCard(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, "card delete:", err)
			os.Exit(exitUserError)
		}
		fmt.Printf("Deleted card: %s\n", args[0])
		return nil
	},
}

var (
	cardSetValue string
	cardSetClear bool
)

var cardSetCmd = &cobra.Command{
	Use:   "set <card-id> <property>",
	Short: "Set one property value on a card",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, backend := mustOpenBoard("card set")
		defer backend.Detach()

		prop := findPropertyByRef(b, args[1])
		if prop == nil {
			fmt.Fprintf(os.Stderr, "property %q not found\n", args[1])
			os.Exit(exitUserError)
		}

		var value any
		if !cardSetClear {
			value = parseValueFlag(prop, cardSetValue)
		}
		if err := b.SetValue(args[0], prop.PropertyID, value); err != nil {
			fmt.Fprintln(os.Stderr, "card set:", err)
			os.Exit(exitUserError)
		}
		fmt.Printf("Set %s on card %s\n", prop.Name, args[0])
		return nil
	},
}

func init() {
	cardCreateCmd.Flags().StringVar(&cardCreateDescription, "description", "", "card description")

	cardUpdateCmd.Flags().StringVar(&cardUpdateTitle, "title", "", "new title")
	cardUpdateCmd.Flags().StringVar(&cardUpdateDescription, "description", "", "new description")

	cardSetCmd.Flags().StringVar(&cardSetValue, "value", "", "value to set, parsed against the property type")
	cardSetCmd.Flags().BoolVar(&cardSetClear, "clear", false, "clear the value instead")

	cardCmd.AddCommand(cardCreateCmd)
	cardCmd.AddCommand(cardListCmd)
	cardCmd.AddCommand(cardUpdateCmd)
	cardCmd.AddCommand(cardDeleteCmd)
	cardCmd.AddCommand(cardSetCmd)
}

// Property commands for the corkboard CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/corkboard/pkg/board"
	"github.com/mesh-intelligence/corkboard/pkg/types"
)

var propertyCmd = &cobra.Command{
	Use:   "property",
	Short: "Manage schema properties",
}

var (
	propAddType    string
	propAddOptions string
)

var propertyAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a property to the schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !types.IsValidType(propAddType) {
			fmt.Fprintf(os.Stderr, "invalid type %q (valid: text, number, date, checkbox, select, multiselect)\n", propAddType)
			os.Exit(exitUserError)
		}

		b, backend := mustOpenBoard("property add")
		defer backend.Detach()

		prop, err := b.AddProperty(args[0], propAddType, splitCommaList(propAddOptions))
		if err != nil {
			fmt.Fprintln(os.Stderr, "property add:", err)
			os.Exit(exitUserError)
		}

		if flagJSON {
			printJSON(prop)
			return nil
		}
		fmt.Printf("Added %s property: %s\n", prop.Type, prop.PropertyID)
		return nil
	},
}

var propertyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List schema properties in display order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, backend := mustOpenBoard("property list")
		defer backend.Detach()

		if flagJSON {
			printJSON(b.Schema())
			return nil
		}
		for _, p := range b.Schema() {
			marker := " "
			if p.IsTitle {
				marker = "*"
			}
			line := fmt.Sprintf("%s %-12s %-12s %s", marker, p.Type, shortID(p.PropertyID), p.Name)
			if len(p.Options) > 0 {
				line += " [" + strings.Join(p.Options, ", ") + "]"
			}
			if !p.Visible {
				line += " (hidden)"
			}
			fmt.Println(line)
		}
		return nil
	},
}

var (
	propUpdateName    string
	propUpdateType    string
	propUpdateOptions string
	propUpdateHide    bool
	propUpdateShow    bool
)

var propertyUpdateCmd = &cobra.Command{
	Use:   "update <id-or-name>",
	Short: "Update a property; a type change converts every card's value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, backend := mustOpenBoard("property update")
		defer backend.Detach()

		prop := findPropertyByRef(b, args[0])
		if prop == nil {
			fmt.Fprintf(os.Stderr, "property %q not found\n", args[0])
			os.Exit(exitUserError)
		}

		update := board.PropertyUpdate{}
		if cmd.Flags().Changed("name") {
			update.Name = &propUpdateName
		}
		if cmd.Flags().Changed("type") {
			if !types.IsValidType(propUpdateType) {
				fmt.Fprintf(os.Stderr, "invalid type %q\n", propUpdateType)
				os.Exit(exitUserError)
			}
			update.Type = &propUpdateType
		}
		if cmd.Flags().Changed("options") {
			opts := splitCommaList(propUpdateOptions)
			update.Options = &opts
		}
		if propUpdateHide || propUpdateShow {
			visible := propUpdateShow
			update.Visible = &visible
		}

		if err := b.UpdateProperty(prop.PropertyID, update); err != nil {
			fmt.Fprintln(os.Stderr, "property update:", err)
			os.Exit(exitUserError)
		}

		if flagJSON {
			printJSON(prop)
			return nil
		}
		fmt.Printf("Updated property: %s\n", prop.PropertyID)
		return nil
	},
}

var propertyDeleteCmd = &cobra.Command{
	Use:   "delete <id-or-name>",
	Short: "Delete a property and purge its values from every card",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, backend := mustOpenBoard("property delete")
		defer backend.Detach()

		prop := findPropertyByRef(b, args[0])
		if prop == nil {
			fmt.Fprintf(os.Stderr, "property %q not found\n", args[0])
			os.Exit(exitUserError)
		}
		if prop.IsTitle {
			fmt.Fprintln(os.Stderr, "the title property cannot be deleted")
			os.Exit(exitUserError)
		}

		if err := b.DeleteProperty(prop.PropertyID); err != nil {
			fmt.Fprintln(os.Stderr, "property delete:", err)
			os.Exit(exitSysError)
		}
		fmt.Printf("Deleted property: %s\n", prop.PropertyID)
		return nil
	},
}

var propertyRenameOptionCmd = &cobra.Command{
	Use:   "rename-option <id-or-name> <old> <new>",
	Short: "Rename a select option, carrying color, order, and card values",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, backend := mustOpenBoard("property rename-option")
		defer backend.Detach()

		prop := findPropertyByRef(b, args[0])
		if prop == nil {
			fmt.Fprintf(os.Stderr, "property %q not found\n", args[0])
			os.Exit(exitUserError)
		}

		if err := b.RenameOption(prop.PropertyID, args[1], args[2]); err != nil {
			fmt.Fprintln(os.Stderr, "property rename-option:", err)
			os.Exit(exitUserError)
		}
		fmt.Printf("Renamed option %q to %q\n", args[1], args[2])
		return nil
	},
}

func init() {
	propertyAddCmd.Flags().StringVar(&propAddType, "type", types.TypeText, "property type (text, number, date, checkbox, select, multiselect)")
	propertyAddCmd.Flags().StringVar(&propAddOptions, "options", "", "comma-separated options for select-like types")

	propertyUpdateCmd.Flags().StringVar(&propUpdateName, "name", "", "new property name")
	propertyUpdateCmd.Flags().StringVar(&propUpdateType, "type", "", "new property type; converts existing values")
	propertyUpdateCmd.Flags().StringVar(&propUpdateOptions, "options", "", "replacement comma-separated options")
	propertyUpdateCmd.Flags().BoolVar(&propUpdateHide, "hide", false, "hide the property")
	propertyUpdateCmd.Flags().BoolVar(&propUpdateShow, "show", false, "show the property")

	propertyCmd.AddCommand(propertyAddCmd)
	propertyCmd.AddCommand(propertyListCmd)
	propertyCmd.AddCommand(propertyUpdateCmd)
	propertyCmd.AddCommand(propertyDeleteCmd)
	propertyCmd.AddCommand(propertyRenameOptionCmd)
}

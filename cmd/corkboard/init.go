// Init command for the corkboard CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the board data directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, backend := mustOpenBoard("init")
		defer backend.Detach()

		dataDir, err := resolveDataDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		if flagJSON {
			printJSON(map[string]any{
				"data_dir":   dataDir,
				"properties": len(b.Schema()),
				"cards":      len(b.Cards()),
			})
			return nil
		}
		fmt.Printf("Initialized board in %s (%d properties, %d cards)\n",
			dataDir, len(b.Schema()), len(b.Cards()))
		return nil
	},
}

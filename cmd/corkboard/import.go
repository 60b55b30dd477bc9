// Import command for the corkboard CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the board from a JSON document (stdin by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 0 {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(exitUserError)
		}

		b, backend := mustOpenBoard("import")
		defer backend.Detach()

		if err := b.ImportJSON(data); err != nil {
			if errors.Is(err, types.ErrFormat) {
				fmt.Fprintln(os.Stderr, "import: invalid format: document must carry schema and records")
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Imported %d properties and %d cards\n", len(b.Schema()), len(b.Cards()))
		return nil
	},
}

// Import command merges contacts from a JSONL file into the address book.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/sqlite"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import contacts from a JSONL file",
	Long: `Import reads contacts from a JSONL file and merges them into the book.
An imported contact whose name already exists replaces the stored one.
Defaults to contacts.jsonl in the current directory.

Example:
  rolodex import
  rolodex import backup.jsonl`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultExchangeFile
		if len(args) == 1 {
			path = args[0]
		}
		return runMutation(func(book *types.AddressBook) (string, error) {
			snaps, err := sqlite.ImportJSONL(path)
			if err != nil {
				return "", fmt.Errorf("import contacts: %w", err)
			}
			for _, snap := range snaps {
				rec, err := types.RecordFromSnapshot(snap)
				if err != nil {
					return "", err
				}
				book.Add(rec)
			}
			return fmt.Sprintf("Imported %d contacts from %s.", len(snaps), path), nil
		})
	},
}

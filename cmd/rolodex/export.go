// Export command writes the address book to a JSONL file.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/internal/sqlite"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// defaultExchangeFile is the JSONL file used when none is given.
const defaultExchangeFile = "contacts.jsonl"

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export contacts to a JSONL file",
	Long: `Export writes every contact to a JSONL file, one contact per line,
sorted by name. The file is written atomically. Defaults to contacts.jsonl
in the current directory.

Example:
  rolodex export
  rolodex export backup.jsonl`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := defaultExchangeFile
		if len(args) == 1 {
			path = args[0]
		}
		return runQuery(func(book *types.AddressBook) (string, error) {
			if err := sqlite.ExportJSONL(path, book); err != nil {
				return "", sysErr("export contacts: %w", err)
			}
			return fmt.Sprintf("Exported %d contacts to %s.", book.Len(), path), nil
		})
	},
}

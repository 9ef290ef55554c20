// All command lists every contact in the book.
package main

import (
	"github.com/spf13/cobra"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "List all contacts",
	Long: `All lists every contact with its phone numbers and birthday. Listing
order is unspecified.

Example:
  rolodex all
  rolodex all --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(showAllContacts)
	},
}

// Phone command shows a contact's phone numbers.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var phoneCmd = &cobra.Command{
	Use:   "phone <name>",
	Short: "Show a contact's phone numbers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuery(func(book *types.AddressBook) (string, error) {
			return showPhones(book, args[0])
		})
	},
}

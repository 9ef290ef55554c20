// Delete command removes a contact from the book.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(func(book *types.AddressBook) (string, error) {
			return deleteContact(book, args[0])
		})
	},
}

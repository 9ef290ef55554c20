// Add command creates a contact or appends a phone to an existing one.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var addCmd = &cobra.Command{
	Use:   "add <name> <phone>",
	Short: "Add a contact or a phone to an existing contact",
	Long: `Add creates a contact with the given phone number. When a contact with
that name already exists, the phone is appended to its list instead.

Phone numbers must be exactly 10 digits.

Example:
  rolodex add Alice 0501234567`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(func(book *types.AddressBook) (string, error) {
			return addContact(book, args[0], args[1])
		})
	},
}

// Change command replaces one of a contact's phone numbers.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var changeCmd = &cobra.Command{
	Use:   "change <name> <old-phone> <new-phone>",
	Short: "Replace a contact's phone number",
	Long: `Change replaces the first occurrence of old-phone in the contact's list
with new-phone. The new number passes the same 10-digit validation as add.

Example:
  rolodex change Alice 0501234567 0639998877`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(func(book *types.AddressBook) (string, error) {
			return changePhone(book, args[0], args[1], args[2])
		})
	},
}

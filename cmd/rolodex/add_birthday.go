// Add-birthday command sets a contact's birthday.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var addBirthdayCmd = &cobra.Command{
	Use:   "add-birthday <name> <DD.MM.YYYY>",
	Short: "Set a contact's birthday",
	Long: `Add-birthday sets or overwrites the contact's birthday. The date must
be a real calendar date in DD.MM.YYYY format with zero-padded day and month.

Example:
  rolodex add-birthday Bob 15.03.1990`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(func(book *types.AddressBook) (string, error) {
			return addBirthday(book, args[0], args[1])
		})
	},
}

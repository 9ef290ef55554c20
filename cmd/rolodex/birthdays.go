// Birthdays command lists contacts with a birthday in the coming window.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// defaultBirthdayWindow is the window in days when none is given.
const defaultBirthdayWindow = 7

var birthdaysCmd = &cobra.Command{
	Use:   "birthdays [days]",
	Short: "List contacts with upcoming birthdays",
	Long: `Birthdays lists contacts whose next birthday falls within the given
number of days from today, today included. The window defaults to 7 days.

Example:
  rolodex birthdays
  rolodex birthdays 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days := defaultBirthdayWindow
		if len(args) == 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day count %q: %w", args[0], err)
			}
			days = parsed
		}
		return runQuery(func(book *types.AddressBook) (string, error) {
			return upcomingBirthdays(book, days)
		})
	},
}

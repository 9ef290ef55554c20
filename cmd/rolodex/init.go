// Init command creates the config and data directories and an empty store.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize rolodex storage",
	Long:  `Init creates the configuration directory, a default config.yaml, and an empty contact database.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Config dir and config.yaml are ensured by PersistentPreRunE;
		// opening the store creates the data directory and schema.
		store, err := openStore()
		if err != nil {
			return err
		}
		if err := store.Close(); err != nil {
			return sysErr("close store: %w", err)
		}

		dataDir, err := resolveDataDir()
		if err != nil {
			return sysErr("resolve data dir: %w", err)
		}
		fmt.Printf("Rolodex initialized (data dir: %s)\n", dataDir)
		return nil
	},
}

// Package main provides the rolodex CLI, a command-line contact manager.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes: user mistakes (bad input, unknown contact) exit 1, storage
// and environment failures exit 2.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var sys *systemError
		if errors.As(err, &sys) {
			os.Exit(exitSysError)
		}
		os.Exit(exitUserError)
	}
}

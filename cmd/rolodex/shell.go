// Shell command: an interactive read-eval-print loop over the address book.
// The book is loaded once at startup and saved once on exit; every line is
// fully processed before the next is read.
package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive contact session",
	Long: `Shell starts an interactive session. Commands mirror the one-shot CLI:

  hello
  add <name> <phone>
  change <name> <old-phone> <new-phone>
  phone <name>
  all
  delete <name>
  add-birthday <name> <DD.MM.YYYY>
  show-birthday <name>
  birthdays [days]
  help
  close | exit

Changes are kept in memory during the session and saved on exit.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

// shellCompleter suggests command names at the prompt.
var shellCompleter = readline.NewPrefixCompleter(
	readline.PcItem("hello"),
	readline.PcItem("add"),
	readline.PcItem("change"),
	readline.PcItem("phone"),
	readline.PcItem("all"),
	readline.PcItem("delete"),
	readline.PcItem("add-birthday"),
	readline.PcItem("show-birthday"),
	readline.PcItem("birthdays"),
	readline.PcItem("help"),
	readline.PcItem("close"),
	readline.PcItem("exit"),
)

func runShell(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	book, err := store.Load()
	if err != nil {
		return sysErr("load address book: %w", err)
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return sysErr("resolve data dir: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "rolodex> ",
		HistoryFile:     filepath.Join(dataDir, "shell_history"),
		AutoComplete:    shellCompleter,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return sysErr("initialize shell: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(cmd.OutOrStdout(), "Welcome to rolodex! Type help for commands, close or exit to quit.")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return sysErr("read command: %w", err)
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		command := strings.ToLower(fields[0])
		if command == "close" || command == "exit" {
			break
		}

		out, err := dispatchShellCommand(book, command, fields[1:])
		if err != nil {
			// Command errors never end the session; the book keeps its
			// last valid state.
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}

	if err := store.Save(book); err != nil {
		return sysErr("save address book: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Good bye!")
	return nil
}

// dispatchShellCommand routes one tokenized line to its handler.
func dispatchShellCommand(book *types.AddressBook, command string, args []string) (string, error) {
	switch command {
	case "hello":
		return "How can I help you?", nil

	case "help":
		return shellHelp, nil

	case "add":
		if len(args) != 2 {
			return "", errors.New("usage: add <name> <phone>")
		}
		return addContact(book, args[0], args[1])

	case "change":
		if len(args) != 3 {
			return "", errors.New("usage: change <name> <old-phone> <new-phone>")
		}
		return changePhone(book, args[0], args[1], args[2])

	case "phone":
		if len(args) != 1 {
			return "", errors.New("usage: phone <name>")
		}
		return showPhones(book, args[0])

	case "all":
		if len(args) != 0 {
			return "", errors.New("usage: all")
		}
		return showAllContacts(book)

	case "delete":
		if len(args) != 1 {
			return "", errors.New("usage: delete <name>")
		}
		return deleteContact(book, args[0])

	case "add-birthday":
		if len(args) != 2 {
			return "", errors.New("usage: add-birthday <name> <DD.MM.YYYY>")
		}
		return addBirthday(book, args[0], args[1])

	case "show-birthday":
		if len(args) != 1 {
			return "", errors.New("usage: show-birthday <name>")
		}
		return showBirthday(book, args[0])

	case "birthdays":
		if len(args) > 1 {
			return "", errors.New("usage: birthdays [days]")
		}
		days := defaultBirthdayWindow
		if len(args) == 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil {
				return "", fmt.Errorf("invalid day count %q", args[0])
			}
			days = parsed
		}
		return upcomingBirthdays(book, days)

	default:
		return "", fmt.Errorf("invalid command %q (type help for commands)", command)
	}
}

const shellHelp = `Commands:
  hello                                   say hello
  add <name> <phone>                      add a contact or a phone
  change <name> <old-phone> <new-phone>   replace a phone number
  phone <name>                            show a contact's phones
  all                                     list all contacts
  delete <name>                           delete a contact
  add-birthday <name> <DD.MM.YYYY>        set a birthday
  show-birthday <name>                    show a birthday
  birthdays [days]                        upcoming birthdays (default 7 days)
  close | exit                            save and quit`

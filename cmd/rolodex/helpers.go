// Shared helpers for rolodex CLI commands: store lifecycle around handler
// calls and the user/system error split.
package main

import (
	"fmt"
	"time"

	"github.com/mesh-intelligence/rolodex/internal/sqlite"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// timeNow is the clock used by the birthday window; tests substitute it.
var timeNow = time.Now

// systemError marks storage and environment failures so main can exit with
// a distinct code. User mistakes stay plain errors.
type systemError struct {
	err error
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

func sysErr(format string, args ...any) error {
	return &systemError{err: fmt.Errorf(format, args...)}
}

// openStore resolves the data directory and opens the SQLite store.
// The caller must close the returned store.
func openStore() (*sqlite.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, sysErr("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	store, err := sqlite.Open(cfg)
	if err != nil {
		return nil, sysErr("open store: %w", err)
	}
	return store, nil
}

// bookHandler applies one command to a loaded address book and returns the
// text to show the user. Handlers never print; the wrappers do.
type bookHandler func(book *types.AddressBook) (string, error)

// withBook opens the store, loads the book, applies fn, and saves the book
// back when save is true and fn succeeded. The handler's message goes to
// stdout on success.
func withBook(save bool, fn bookHandler) (string, error) {
	store, err := openStore()
	if err != nil {
		return "", err
	}
	defer store.Close()

	book, err := store.Load()
	if err != nil {
		return "", sysErr("load address book: %w", err)
	}

	msg, err := fn(book)
	if err != nil {
		return "", err
	}

	if save {
		if err := store.Save(book); err != nil {
			return "", sysErr("save address book: %w", err)
		}
	}
	return msg, nil
}

// runMutation is the cobra glue for commands that change the book.
func runMutation(fn bookHandler) error {
	msg, err := withBook(true, fn)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

// runQuery is the cobra glue for read-only commands.
func runQuery(fn bookHandler) error {
	msg, err := withBook(false, fn)
	if err != nil {
		return err
	}
	fmt.Println(msg)
	return nil
}

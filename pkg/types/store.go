package types

// Store persists an AddressBook between runs. Load on a fresh data
// directory returns an empty book; a missing prior state is the expected
// first-run case, not an error. After Close, both operations return
// ErrStoreClosed.
type Store interface {
	// Load rehydrates the previously saved address book, or returns an
	// empty one when nothing has been saved yet.
	Load() (*AddressBook, error)

	// Save durably persists the full address book, replacing any prior
	// state.
	Save(book *AddressBook) error

	// Close releases backend resources. Idempotent.
	Close() error
}

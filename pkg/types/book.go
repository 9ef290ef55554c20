package types

import "time"

// AddressBook is a collection of records keyed by contact name, one record
// per name. It is not safe for concurrent use; the CLI processes one
// command at a time.
type AddressBook struct {
	records map[string]*Record
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// Add inserts the record under its name. An existing record with the same
// name is silently replaced; last write wins, no merge.
func (ab *AddressBook) Add(rec *Record) {
	ab.records[rec.Name.String()] = rec
}

// Remove deletes the record for name. Removing an absent name is a no-op.
func (ab *AddressBook) Remove(name string) {
	delete(ab.records, name)
}

// Find returns the record for name. The second return value reports whether
// a record exists; absence is not an error.
func (ab *AddressBook) Find(name string) (*Record, bool) {
	rec, ok := ab.records[name]
	return rec, ok
}

// Records returns all records. Order is unspecified; callers must not
// depend on it.
func (ab *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(ab.records))
	for _, rec := range ab.records {
		out = append(out, rec)
	}
	return out
}

// Len returns the number of records in the book.
func (ab *AddressBook) Len() int { return len(ab.records) }

// UpcomingBirthdays returns the records whose birthday's next occurrence
// falls within the half-open window [0, days) whole days from today, at
// date precision. A birthday occurring today counts; days <= 0 matches
// nothing. Order is unspecified.
func (ab *AddressBook) UpcomingBirthdays(today time.Time, days int) []*Record {
	var matches []*Record
	for _, rec := range ab.records {
		if rec.Birthday == nil {
			continue
		}
		gap := rec.Birthday.DaysUntil(today)
		if gap >= 0 && gap < days {
			matches = append(matches, rec)
		}
	}
	return matches
}

package types

import "fmt"

// ContactSnapshot is the serializable form of a Record, used by the store
// and by JSONL import/export. Birthday is the DD.MM.YYYY rendering, empty
// when the record has none.
type ContactSnapshot struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones,omitempty"`
	Birthday string   `json:"birthday,omitempty"`
}

// Snapshot returns the record's serializable form.
func (r *Record) Snapshot() ContactSnapshot {
	snap := ContactSnapshot{
		Name:   r.Name.String(),
		Phones: r.PhoneStrings(),
	}
	if r.Birthday != nil {
		snap.Birthday = r.Birthday.String()
	}
	return snap
}

// RecordFromSnapshot rebuilds a record, running every field through the
// same validation as interactive entry.
func RecordFromSnapshot(snap ContactSnapshot) (*Record, error) {
	rec, err := NewRecord(snap.Name)
	if err != nil {
		return nil, fmt.Errorf("contact %q: %w", snap.Name, err)
	}
	for _, phone := range snap.Phones {
		if err := rec.AddPhone(phone); err != nil {
			return nil, fmt.Errorf("contact %q: %w", snap.Name, err)
		}
	}
	if snap.Birthday != "" {
		if err := rec.SetBirthday(snap.Birthday); err != nil {
			return nil, fmt.Errorf("contact %q: %w", snap.Name, err)
		}
	}
	return rec, nil
}

// Snapshot returns the serializable form of every record in the book.
// Order is unspecified.
func (ab *AddressBook) Snapshot() []ContactSnapshot {
	snaps := make([]ContactSnapshot, 0, ab.Len())
	for _, rec := range ab.records {
		snaps = append(snaps, rec.Snapshot())
	}
	return snaps
}

// BookFromSnapshots rebuilds an address book from serialized contacts.
// Duplicate names follow Add semantics: last write wins.
func BookFromSnapshots(snaps []ContactSnapshot) (*AddressBook, error) {
	book := NewAddressBook()
	for _, snap := range snaps {
		rec, err := RecordFromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		book.Add(rec)
	}
	return book, nil
}

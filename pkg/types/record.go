package types

// Record holds one contact's full data: a name fixed at creation, an
// ordered list of phone numbers, and an optional birthday.
type Record struct {
	Name     Name
	Phones   []Phone
	Birthday *Birthday // nil until set
}

// NewRecord creates a record for the given contact name.
// Returns ErrEmptyName for an empty or whitespace-only name.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{Name: n}, nil
}

// AddPhone validates value and appends it to the phone list. Order is
// preserved and duplicates are allowed.
func (r *Record) AddPhone(value string) error {
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, p)
	return nil
}

// RemovePhone removes the first phone equal to value. Removing a phone the
// record does not hold is a no-op, not an error.
func (r *Record) RemovePhone(value string) {
	for i, p := range r.Phones {
		if p.String() == value {
			r.Phones = append(r.Phones[:i], r.Phones[i+1:]...)
			return
		}
	}
}

// EditPhone replaces the first phone equal to oldValue with newValue,
// in place. The new value passes the same validation as AddPhone.
// An absent oldValue is a no-op, not an error.
func (r *Record) EditPhone(oldValue, newValue string) error {
	p, err := NewPhone(newValue)
	if err != nil {
		return err
	}
	for i, old := range r.Phones {
		if old.String() == oldValue {
			r.Phones[i] = p
			return nil
		}
	}
	return nil
}

// SetBirthday parses value as DD.MM.YYYY and sets or overwrites the
// record's birthday.
func (r *Record) SetBirthday(value string) error {
	b, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.Birthday = &b
	return nil
}

// PhoneStrings returns the phone numbers as plain strings, in list order.
func (r *Record) PhoneStrings() []string {
	out := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		out[i] = p.String()
	}
	return out
}

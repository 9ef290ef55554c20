// Field value types for contact records: Name, Phone, Birthday.
// Each type wraps a single validated scalar; construction is the only
// place validation happens, so a held value is always well-formed.
package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Name identifies a contact. It doubles as the AddressBook key, so two
// records cannot share a name.
type Name string

// NewName validates and returns a contact name.
// Returns ErrEmptyName for empty or whitespace-only input; anything else
// is stored as-is.
func NewName(value string) (Name, error) {
	if strings.TrimSpace(value) == "" {
		return "", ErrEmptyName
	}
	return Name(value), nil
}

func (n Name) String() string { return string(n) }

// PhoneLength is the required number of digits in a phone number.
const PhoneLength = 10

// Phone is a contact phone number: exactly PhoneLength decimal digits.
type Phone string

// NewPhone validates and returns a phone number.
// Returns an error wrapping ErrInvalidPhone unless value is composed of
// exactly PhoneLength decimal digits.
func NewPhone(value string) (Phone, error) {
	if len(value) != PhoneLength || !allDigits(value) {
		return "", fmt.Errorf("%w: want exactly %d digits, got %q", ErrInvalidPhone, PhoneLength, value)
	}
	return Phone(value), nil
}

func (p Phone) String() string { return string(p) }

// allDigits reports whether s consists only of ASCII decimal digits.
func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// BirthdayLayout is the only accepted birthday format: zero-padded day and
// month, 4-digit year, dot-separated.
const BirthdayLayout = "02.01.2006"

// birthdayPattern enforces zero padding and field widths up front;
// time.Parse alone would also accept "2.1.2006".
var birthdayPattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// Birthday is a calendar date. The zero value is not a valid birthday;
// use NewBirthday.
type Birthday struct {
	date time.Time
}

// NewBirthday parses value against BirthdayLayout.
// Returns an error wrapping ErrInvalidBirthday on a format mismatch or an
// impossible calendar date such as "31.02.2024".
func NewBirthday(value string) (Birthday, error) {
	if !birthdayPattern.MatchString(value) {
		return Birthday{}, fmt.Errorf("%w: want format %s, got %q", ErrInvalidBirthday, "DD.MM.YYYY", value)
	}
	t, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q is not a real calendar date", ErrInvalidBirthday, value)
	}
	return Birthday{date: t}, nil
}

// String formats the stored date back to DD.MM.YYYY, round-tripping the
// input NewBirthday accepted.
func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }

// Date returns the stored year, month, and day.
func (b Birthday) Date() (year int, month time.Month, day int) { return b.date.Date() }

// NextOccurrence returns the next occurrence of the birthday's month and day
// on or after today, at date precision: this year's date unless it falls
// strictly before today, in which case it rolls to next year. A February 29
// birthday in a non-leap target year resolves to March 1 (time.Date
// normalization).
func (b Birthday) NextOccurrence(today time.Time) time.Time {
	y, m, d := today.Date()
	todayDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	_, bm, bd := b.date.Date()
	next := time.Date(y, bm, bd, 0, 0, 0, 0, time.UTC)
	if next.Before(todayDate) {
		next = time.Date(y+1, bm, bd, 0, 0, 0, 0, time.UTC)
	}
	return next
}

// DaysUntil returns the gap in whole days from today to the birthday's next
// occurrence. Zero means the birthday is today.
func (b Birthday) DaysUntil(today time.Time) int {
	y, m, d := today.Date()
	todayDate := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(b.NextOccurrence(today).Sub(todayDate) / (24 * time.Hour))
}

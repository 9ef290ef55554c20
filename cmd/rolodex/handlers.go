// Command handlers shared by the one-shot cobra commands and the
// interactive shell. Each handler mutates or queries a loaded address book
// and returns the text to display; callers own printing and persistence.
package main

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// errContactNotFound marks lookups of unknown contacts, keeping them
// distinguishable from validation and usage errors.
var errContactNotFound = errors.New("contact not found")

func notFound(name string) error {
	return fmt.Errorf("%w: %q", errContactNotFound, name)
}

func addContact(book *types.AddressBook, name, phone string) (string, error) {
	if rec, ok := book.Find(name); ok {
		if err := rec.AddPhone(phone); err != nil {
			return "", err
		}
		return fmt.Sprintf("Phone %s added to contact %s.", phone, name), nil
	}

	rec, err := types.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	book.Add(rec)
	return fmt.Sprintf("Contact %s with phone %s added.", name, phone), nil
}

func changePhone(book *types.AddressBook, name, oldPhone, newPhone string) (string, error) {
	rec, ok := book.Find(name)
	if !ok {
		return "", notFound(name)
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone %s changed to %s for contact %s.", oldPhone, newPhone, name), nil
}

func showPhones(book *types.AddressBook, name string) (string, error) {
	rec, ok := book.Find(name)
	if !ok {
		return "", notFound(name)
	}
	return renderPhones(rec), nil
}

func showAllContacts(book *types.AddressBook) (string, error) {
	if book.Len() == 0 {
		return "No contacts.", nil
	}
	if flagJSON {
		return renderJSON(book.Records())
	}
	return renderTable(book.Records()), nil
}

func deleteContact(book *types.AddressBook, name string) (string, error) {
	if _, ok := book.Find(name); !ok {
		return "", notFound(name)
	}
	book.Remove(name)
	return fmt.Sprintf("Contact %s deleted.", name), nil
}

func addBirthday(book *types.AddressBook, name, birthday string) (string, error) {
	rec, ok := book.Find(name)
	if !ok {
		return "", notFound(name)
	}
	if err := rec.SetBirthday(birthday); err != nil {
		return "", err
	}
	return fmt.Sprintf("Birthday %s added to contact %s.", birthday, name), nil
}

func showBirthday(book *types.AddressBook, name string) (string, error) {
	rec, ok := book.Find(name)
	if !ok {
		return "", notFound(name)
	}
	if rec.Birthday == nil {
		return fmt.Sprintf("Contact %s has no birthday set.", name), nil
	}
	return fmt.Sprintf("Contact %s: Birthday: %s", name, rec.Birthday), nil
}

func upcomingBirthdays(book *types.AddressBook, days int) (string, error) {
	matches := book.UpcomingBirthdays(timeNow(), days)
	if len(matches) == 0 {
		return "No upcoming birthdays.", nil
	}
	if flagJSON {
		return renderJSON(matches)
	}
	return renderBirthdays(matches), nil
}

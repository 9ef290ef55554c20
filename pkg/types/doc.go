// Package types defines the Rolodex contact model: the field value types
// (Name, Phone, Birthday), the Record and AddressBook entities, the Store
// interface, and the standard error values shared across the project.
package types

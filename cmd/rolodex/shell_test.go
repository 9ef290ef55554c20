package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

func TestDispatchShellCommand(t *testing.T) {
	fixedClock(t, time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC))

	book := types.NewAddressBook()

	steps := []struct {
		name    string
		command string
		args    []string
		want    string // substring of the expected output
		wantErr string // substring of the expected error
	}{
		{name: "hello", command: "hello", want: "How can I help you?"},
		{name: "add alice", command: "add", args: []string{"Alice", "0501234567"}, want: "added"},
		{name: "add bob", command: "add", args: []string{"Bob", "0441112233"}, want: "added"},
		{name: "set bob birthday", command: "add-birthday", args: []string{"Bob", "15.03.1990"}, want: "Birthday 15.03.1990"},
		{name: "phones", command: "phone", args: []string{"Alice"}, want: "0501234567"},
		{name: "birthday window", command: "birthdays", args: nil, want: "Bob - 15.03.1990"},
		{name: "explicit window", command: "birthdays", args: []string{"3"}, want: "No upcoming birthdays."},
		{name: "all", command: "all", want: "Alice"},
		{name: "delete", command: "delete", args: []string{"Alice"}, want: "deleted"},
		{name: "unknown command", command: "frobnicate", wantErr: "invalid command"},
		{name: "add arity", command: "add", args: []string{"OnlyName"}, wantErr: "usage: add"},
		{name: "change arity", command: "change", args: []string{"Bob"}, wantErr: "usage: change"},
		{name: "bad window", command: "birthdays", args: []string{"soon"}, wantErr: "invalid day count"},
		{name: "bad phone keeps book intact", command: "add", args: []string{"Carol", "123"}, wantErr: "invalid phone"},
	}

	for _, tt := range steps {
		t.Run(tt.name, func(t *testing.T) {
			out, err := dispatchShellCommand(book, tt.command, tt.args)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}

	// After the scripted session: Alice deleted, Bob intact, Carol never added.
	assert.Equal(t, 1, book.Len())
	_, ok := book.Find("Bob")
	assert.True(t, ok)
}

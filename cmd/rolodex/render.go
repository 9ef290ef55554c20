// Output rendering for contact listings: text tables for humans, JSON for
// scripts via the --json flag.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// renderTable renders records as a bordered table with one row per contact.
func renderTable(records []*types.Record) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Phones", "Birthday"})

	for _, rec := range records {
		birthday := ""
		if rec.Birthday != nil {
			birthday = rec.Birthday.String()
		}
		t.AppendRow(table.Row{
			rec.Name.String(),
			strings.Join(rec.PhoneStrings(), ", "),
			birthday,
		})
	}
	return t.Render()
}

// renderJSON renders records as indented JSON snapshots.
func renderJSON(records []*types.Record) (string, error) {
	snaps := make([]types.ContactSnapshot, len(records))
	for i, rec := range records {
		snaps[i] = rec.Snapshot()
	}
	out, err := json.MarshalIndent(snaps, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal contacts: %w", err)
	}
	return string(out), nil
}

// renderPhones formats one contact's phone list.
func renderPhones(rec *types.Record) string {
	if len(rec.Phones) == 0 {
		return fmt.Sprintf("Contact %s has no phones.", rec.Name)
	}
	return fmt.Sprintf("Contact %s: Phones: %s", rec.Name, strings.Join(rec.PhoneStrings(), ", "))
}

// renderBirthdays formats the upcoming-birthday listing, one contact per line.
func renderBirthdays(records []*types.Record) string {
	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = fmt.Sprintf("%s - %s", rec.Name, rec.Birthday)
	}
	return strings.Join(lines, "\n")
}

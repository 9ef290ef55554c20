// JSONL import/export for address book snapshots. One contact per line,
// written atomically (temp file, fsync, rename) so a crash mid-export never
// leaves a truncated file behind.
package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// ExportJSONL writes every contact in the book to path as JSONL, sorted by
// name so repeated exports of the same book are byte-identical.
func ExportJSONL(path string, book *types.AddressBook) error {
	snaps := book.Snapshot()
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Name < snaps[j].Name })

	records := make([]json.RawMessage, 0, len(snaps))
	for _, snap := range snaps {
		line, err := json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("marshal contact %q: %w", snap.Name, err)
		}
		records = append(records, line)
	}
	return writeJSONL(path, records)
}

// ImportJSONL reads contact snapshots from a JSONL file. Lines that are not
// valid JSON are skipped; lines that are valid JSON but not a valid contact
// fail the import with a validation error from the contact constructors.
func ImportJSONL(path string) ([]types.ContactSnapshot, error) {
	raw, err := readJSONL(path)
	if err != nil {
		return nil, err
	}

	snaps := make([]types.ContactSnapshot, 0, len(raw))
	for _, line := range raw {
		var snap types.ContactSnapshot
		if err := json.Unmarshal(line, &snap); err != nil {
			return nil, fmt.Errorf("decode contact line: %w", err)
		}
		// Validate through the constructors before accepting.
		if _, err := types.RecordFromSnapshot(snap); err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

// readJSONL reads a JSONL file and returns each non-empty, parseable line as
// a json.RawMessage. Malformed lines are skipped.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to a JSONL file using the temp-file,
// fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

package store

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	serrors "secretstore/internal/errors"
)

// Entry is one registry line: a key identifier and its human-readable name.
type Entry struct {
	KeyID string
	Name  string
}

// ReadRegistry reads the keylist file and returns its entries in file order.
//
// The format is deliberately loose: whitespace-separated columns, first
// column the key id, the remainder the name. Blank lines are skipped.
// Duplicate key ids or names are preserved as-is; the registry never
// enforces uniqueness.
func (c Config) ReadRegistry() ([]Entry, error) {
	f, err := os.Open(c.RegistryPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, serrors.ErrRegistryNotFound
		}
		return nil, fmt.Errorf("opening registry: %w", err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		entry := Entry{KeyID: fields[0]}
		if len(fields) > 1 {
			entry.Name = strings.Join(fields[1:], " ")
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading registry: %w", err)
	}

	return entries, nil
}

// AppendEntry appends one line to the keylist, creating the file if needed.
// Existing lines are never rewritten. Concurrent appends are not guarded;
// the single-user use case accepts that race.
func (c Config) AppendEntry(e Entry) error {
	f, err := os.OpenFile(c.RegistryPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("opening registry for append: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s %s\n", e.KeyID, e.Name); err != nil {
		return fmt.Errorf("appending registry entry: %w", err)
	}
	return nil
}

// Recipients returns the key ids of the entries, in registry order.
func Recipients(entries []Entry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.KeyID)
	}
	return ids
}

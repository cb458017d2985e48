package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"secretstore/internal/store"
)

// FileName is the audit log inside the key directory.
const FileName = "audit.jsonl"

// Entry represents a single audit log entry.
type Entry struct {
	ID        string `json:"id"`   // Random entry id.
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	Actor     string `json:"user"` // UUID of the user performing the action.
	Operation string `json:"op"`   // Operation name.

	// Optional fields depending on operation.
	Files        []string `json:"files,omitempty"`         // For encrypt/decrypt.
	KeyID        string   `json:"key_id,omitempty"`        // For export.
	KeyName      string   `json:"key_name,omitempty"`      // For export.
	Recipients   int      `json:"recipients,omitempty"`    // For encrypt.
	FilesCount   int      `json:"files_count,omitempty"`   // For import/encrypt/decrypt.
	RemovedCount int      `json:"removed_count,omitempty"` // For clean.
}

// New returns an entry for the operation with id and timestamp filled in.
func New(actor, op string) Entry {
	return Entry{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000000Z"),
		Actor:     actor,
		Operation: op,
	}
}

// Log appends an entry to the audit log in the key directory. Logging is
// best-effort: operations must not fail because the audit write did, so
// errors are swallowed. Nothing is written when the key directory does not
// exist yet.
func Log(cfg store.Config, entry Entry) {
	if _, err := os.Stat(cfg.KeyDir); err != nil {
		return
	}

	logPath := filepath.Join(cfg.KeyDir, FileName)
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the audit log, returning nil when the
// log does not exist.
func ReadEntries(cfg store.Config) ([]Entry, error) {
	data, err := os.ReadFile(filepath.Join(cfg.KeyDir, FileName))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries. Malformed lines
// are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

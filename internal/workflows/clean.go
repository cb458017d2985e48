package workflows

import (
	"fmt"
	"os"
	"strings"

	"secretstore/internal/audit"
	"secretstore/internal/store"
)

// CleanTarget is a plaintext file slated for removal because a ciphertext
// sibling exists.
type CleanTarget struct {
	// Plaintext is the file to delete.
	Plaintext string

	// Ciphertext is the sibling that justifies the deletion.
	Ciphertext string
}

// PlanClean scans root recursively for ciphertext files and returns the
// plaintext counterparts that exist. Ciphertext files whose plaintext is
// already absent are silently skipped. Nothing is deleted; the caller
// decides when to apply the plan, typically after confirmation.
func PlanClean(root string) ([]CleanTarget, error) {
	cipherFiles, err := store.FindCipherFiles(root)
	if err != nil {
		return nil, err
	}

	var targets []CleanTarget
	for _, cipher := range cipherFiles {
		plain := strings.TrimSuffix(cipher, store.CipherSuffix)
		if _, err := os.Stat(plain); err != nil {
			continue
		}
		targets = append(targets, CleanTarget{Plaintext: plain, Ciphertext: cipher})
	}
	return targets, nil
}

// ApplyClean deletes the planned plaintext files. Deletion is irreversible;
// ciphertext siblings are never touched. Returns the number of files
// removed, stopping at the first filesystem error.
func ApplyClean(cfg store.Config, actor string, targets []CleanTarget) (int, error) {
	removed := 0
	for _, t := range targets {
		if err := os.Remove(t.Plaintext); err != nil {
			return removed, fmt.Errorf("removing %s: %w", t.Plaintext, err)
		}
		removed++
	}

	entry := audit.New(actor, "clean")
	entry.RemovedCount = removed
	audit.Log(cfg, entry)

	return removed, nil
}

// Package audit records store operations to a JSON Lines log in the key
// directory.
//
// The log is shared by everyone using the store, append-only, and
// best-effort: a failed audit write never fails the operation itself. The
// log command reads it back for display.
package audit

// Package ui provides semantic text formatting for command output.
//
// Each exported Formatter carries both a color and a plain-text fallback, so
// output stays readable when colors are disabled via NO_COLOR or a dumb
// terminal.
package ui

// Package utils holds small system helpers shared across commands.
package utils

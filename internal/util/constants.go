// Package util holds small helpers for the command line: byte-size
// formatting and random passphrase generation.
package util

// Size constants for byte calculations
const (
	KiB = 1 << 10
	MiB = 1 << 20
	GiB = 1 << 30
	TiB = 1 << 40
)

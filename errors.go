package rbxdom

import "fmt"

// errTruncated builds a consistent "not enough bytes" error for the
// SmoothGrid sub-codec in this package (the Attributes and MaterialColors
// decoders build their own errors), mirroring the teacher's small
// typed-error style in errors/errors.go.
func errTruncated(what string, want, got int) error {
	return fmt.Errorf("rbxdom: %s truncated: want at least %d bytes, got %d", what, want, got)
}

package binary

import (
	"errors"
	"fmt"
)

var (
	errInvalidSig     = errors.New("binary: invalid file signature")
	errCorruptHeader  = errors.New("binary: corrupt binary header")
	errNotCFrame      = errors.New("binary: value is not a CFrame or OptionalCFrame")
	errEndChunkOrder  = errors.New("binary: END chunk is not last")
	errMismatchedPRNT = errors.New("binary: PRNT chunk child/parent array length mismatch")
)

// errUnrecognizedVersion indicates a format version byte the codec does not
// know how to decode, ported from rbxl/errors.go's errUnrecognizedVersion.
type errUnrecognizedVersion uint16

func (err errUnrecognizedVersion) Error() string {
	return fmt.Sprintf("binary: unrecognized format version %d", uint16(err))
}

// errUnknownClassID indicates a PROP or PRNT chunk referencing an instance
// group that no INST chunk declared.
type errUnknownClassID int32

func (err errUnknownClassID) Error() string {
	return fmt.Sprintf("binary: unknown class ID %d", int32(err))
}

// Package mapserr defines the error taxonomy shared by the MAPS builder and
// parser surfaces. Every failure returned across the codec boundary is a
// *Error wrapping one of the Kind values below.
package mapserr

import "fmt"

// Kind identifies the class of failure, independent of any particular
// frame or field. It implements error so a Kind can be compared directly
// with errors.Is against a bare sentinel, the way modbus.Exception does.
type Kind byte

const (
	// InvalidArgument marks a builder-side mistake: a bad sequence number,
	// an unknown command tag, or an out-of-range field the contract does
	// not say to clamp.
	InvalidArgument Kind = iota + 1
	// BadFrame marks a parser-side structural failure: short or oversized
	// frame, missing SOH/CR, a sequence digit outside 0-9, a malformed
	// unknown/not-executed reply.
	BadFrame
	// UnknownCommand marks a command tag absent from the descriptor table
	// that was not legally an NE (unknown/not-executed) reply.
	UnknownCommand
	// ChecksumError marks an LRC mismatch.
	ChecksumError
	// MalformedPayload marks payload bytes that failed a decoder's length
	// or content validation once the envelope itself checked out.
	MalformedPayload
	// OutOfMemory exists for documentation parity with the source's errno
	// mapping (ENOMEM). Go has no allocation-failure return path a caller
	// can act on, so no code path in this package ever returns it.
	OutOfMemory
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case BadFrame:
		return "bad frame"
	case UnknownCommand:
		return "unknown command"
	case ChecksumError:
		return "checksum error"
	case MalformedPayload:
		return "malformed payload"
	case OutOfMemory:
		return "out of memory"
	default:
		return "unknown error kind"
	}
}

// Error implements the builtin error interface so a bare Kind can be
// returned (and compared via errors.Is) without wrapping, mirroring
// modbus.Exception's Error method.
func (k Kind) Error() string {
	return "maps: " + k.String()
}

// Error wraps a Kind with a human-readable message and, where relevant,
// the offending byte offset within the frame that was being built or
// parsed. The offset is -1 when not applicable.
type Error struct {
	Kind    Kind
	Message string
	Offset  int
}

func (e *Error) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("maps: %s: %s (offset %d)", e.Kind, e.Message, e.Offset)
	}
	return fmt.Sprintf("maps: %s: %s", e.Kind, e.Message)
}

// Unwrap lets errors.Is(err, mapserr.ChecksumError) succeed against a
// wrapped *Error the same as against a bare Kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

// New builds an *Error with no particular byte offset.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message, Offset: -1}
}

// At builds an *Error pinpointing the byte offset that failed validation.
func At(kind Kind, message string, offset int) *Error {
	return &Error{Kind: kind, Message: message, Offset: offset}
}

package wgpu

import (
	"errors"
	"fmt"
)

// Kind classifies a binding failure.
type Kind int

const (
	// KindValidation marks a descriptor rejected before any encoding or
	// native call happened.
	KindValidation Kind = iota + 1
	// KindCreation marks a native creation call that returned a null handle.
	KindCreation
	// KindNegotiation marks an adapter or device request the native library
	// completed with a failure status.
	KindNegotiation
	// KindTimeout marks an adapter or device request whose callback never
	// fired within the configured window.
	KindTimeout
	// KindAcquisition marks a surface current-texture status outside the two
	// accepted success codes.
	KindAcquisition
	// KindContract marks a caller contract violation: use after release,
	// double release, acquire without present, and the like.
	KindContract
	// KindNative marks any other failure reported by the native library.
	KindNative
)

// Kind sentinels for errors.Is matching.
var (
	ErrValidation  = errors.New("validation failed")
	ErrCreation    = errors.New("creation failed")
	ErrNegotiation = errors.New("negotiation rejected")
	ErrTimeout     = errors.New("negotiation timed out")
	ErrAcquisition = errors.New("frame acquisition failed")
	ErrContract    = errors.New("caller contract violated")
	ErrNative      = errors.New("native call failed")
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindCreation:
		return "creation"
	case KindNegotiation:
		return "negotiation"
	case KindTimeout:
		return "timeout"
	case KindAcquisition:
		return "acquisition"
	case KindContract:
		return "contract"
	case KindNative:
		return "native"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindValidation:
		return ErrValidation
	case KindCreation:
		return ErrCreation
	case KindNegotiation:
		return ErrNegotiation
	case KindTimeout:
		return ErrTimeout
	case KindAcquisition:
		return ErrAcquisition
	case KindContract:
		return ErrContract
	case KindNative:
		return ErrNative
	default:
		return nil
	}
}

// Error is the failure type every operation in this package returns. Op names
// the failing operation, Kind classifies it, and Message carries the detail,
// including any message string the native library reported.
type Error struct {
	Op      string
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("wgpu: %s: %s", e.Op, e.Kind)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the kind sentinels, so errors.Is(err, ErrTimeout) works without
// unwrapping to *Error.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func errf(op string, kind Kind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapErr(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

package suite

import (
	"errors"
	"fmt"
)

// Code classifies a binding-layer failure. The set is closed: callers can
// distinguish conditions where retrying is pointless (OutOfMemory) from logic
// errors (Unsupported) without parsing messages.
type Code int

const (
	// CodeGeneric is an unclassified failure.
	CodeGeneric Code = iota
	// CodeOutOfMemory means the host could not allocate a block.
	CodeOutOfMemory
	// CodeInvalidIndex means a null or invalid pointer where data was expected.
	CodeInvalidIndex
	// CodeInvalidCallback means a required host function is missing.
	CodeInvalidCallback
	// CodeInternalStructDamaged means a handle's stored block is unexpectedly
	// gone, or a dead wrapper was used after dispose/release.
	CodeInternalStructDamaged
	// CodeSerialization is an encode or decode failure.
	CodeSerialization
	// CodeUnsupported is an unknown or unhandled operation kind.
	CodeUnsupported
)

func (c Code) String() string {
	switch c {
	case CodeGeneric:
		return "generic"
	case CodeOutOfMemory:
		return "out_of_memory"
	case CodeInvalidIndex:
		return "invalid_index"
	case CodeInvalidCallback:
		return "invalid_callback"
	case CodeInternalStructDamaged:
		return "internal_struct_damaged"
	case CodeSerialization:
		return "serialization"
	case CodeUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// Status maps the code into the host's status space.
func (c Code) Status() Status {
	switch c {
	case CodeOutOfMemory:
		return StatusOutOfMemory
	case CodeInvalidIndex:
		return StatusInvalidIndex
	case CodeInvalidCallback:
		return StatusInvalidCallback
	case CodeInternalStructDamaged:
		return StatusInternalStructDamaged
	case CodeUnsupported:
		return StatusUnrecognizedParamType
	default:
		// Serialization failures and everything unclassified collapse to the
		// generic failure status; the host treats the request as ignored.
		return StatusGeneric
	}
}

// Error is the binding layer's error type. Op names the operation that
// failed ("handle.Lock", "arb.Interpolate"); Err, when set, is the underlying
// cause and participates in errors.Is/As chains.
type Error struct {
	Code Code
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Code, e.Err)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	default:
		return e.Code.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error carrying the same code, so
// errors.Is(err, &suite.Error{Code: suite.CodeOutOfMemory}) works regardless
// of Op and cause.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewError builds an *Error for op with the given code.
func NewError(code Code, op string) *Error {
	return &Error{Code: code, Op: op}
}

// WrapError attaches a cause to an *Error for op.
func WrapError(code Code, op string, err error) *Error {
	return &Error{Code: code, Op: op, Err: err}
}

// ErrorStatus collapses any error into the host's status space. A nil error
// is StatusNone; errors outside the taxonomy report StatusGeneric.
func ErrorStatus(err error) Status {
	if err == nil {
		return StatusNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code.Status()
	}
	return StatusGeneric
}

// CodeOf extracts the taxonomy code from an error chain, or CodeGeneric if
// the error carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeGeneric
}

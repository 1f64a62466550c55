package arb

import "github.com/valadaptive/after-effects/suite"

// Kind discriminates the nine lifecycle operations the host issues against
// an arbitrary parameter's stored value. The numeric codes are fixed by the
// host ABI; the code is the sole source of truth for how a raw callback
// payload is to be interpreted.
type Kind int32

const (
	KindNew Kind = iota
	KindDispose
	KindCopy
	KindFlatSize
	KindFlatten
	KindUnflatten
	KindInterpolate
	KindCompare
	KindPrintSize
	KindPrint
	KindScan
)

// KindFromCode validates a raw kind code received from the host. ok is
// false for codes outside the protocol.
func KindFromCode(code int32) (k Kind, ok bool) {
	if code < int32(KindNew) || code > int32(KindScan) {
		return 0, false
	}
	return Kind(code), true
}

func (k Kind) String() string {
	switch k {
	case KindNew:
		return "new"
	case KindDispose:
		return "dispose"
	case KindCopy:
		return "copy"
	case KindFlatSize:
		return "flat_size"
	case KindFlatten:
		return "flatten"
	case KindUnflatten:
		return "unflatten"
	case KindInterpolate:
		return "interpolate"
	case KindCompare:
		return "compare"
	case KindPrintSize:
		return "print_size"
	case KindPrint:
		return "print"
	case KindScan:
		return "scan"
	default:
		return "unknown"
	}
}

// PrintFlags qualifies a Print request. Only plain rendering is supported;
// any other flag makes Print a silent no-op, per the host contract.
type PrintFlags uint32

// PrintFlagsNone requests plain text rendering.
const PrintFlagsNone PrintFlags = 0

// Request is one lifecycle operation, decoded from the host's tagged union
// into a variant with typed fields. Exactly one variant is active per
// invocation. Fields named Out are the host-supplied output slots; the
// dispatcher writes them only on success.
//
// The interface is sealed: the variants below are the only implementations.
type Request interface {
	Kind() Kind
}

// NewRequest asks for a freshly defaulted value in a new handle.
type NewRequest struct {
	Out *suite.RawHandle
}

// DisposeRequest hands over ownership of a handle to be released.
// This is the only kind whose input handle is owned rather than borrowed.
type DisposeRequest struct {
	Handle suite.RawHandle
}

// CopyRequest asks for a new handle holding a copy of Src's bytes. Src stays
// owned by the host.
type CopyRequest struct {
	Src suite.RawHandle
	Out *suite.RawHandle
}

// FlatSizeRequest asks for the byte length of a borrowed handle.
type FlatSizeRequest struct {
	Handle suite.RawHandle
	Out    *uint64
}

// FlattenRequest asks for the handle's bytes to be copied into Buf, a
// host-owned buffer pre-sized from an earlier FlatSize answer.
type FlattenRequest struct {
	Handle suite.RawHandle
	Buf    []byte
}

// UnflattenRequest asks for a new handle wrapping a copy of Buf.
type UnflattenRequest struct {
	Buf []byte
	Out *suite.RawHandle
}

// InterpolateRequest asks for a new handle holding the blend of two borrowed
// values at the given weight.
type InterpolateRequest struct {
	Left   suite.RawHandle
	Right  suite.RawHandle
	Weight float64
	Out    *suite.RawHandle
}

// CompareRequest asks for the ordering of two borrowed values.
type CompareRequest struct {
	A   suite.RawHandle
	B   suite.RawHandle
	Out *Ordering
}

// PrintSizeRequest asks how many bytes Print needs, terminator included.
type PrintSizeRequest struct {
	Handle suite.RawHandle
	Out    *uint64
}

// PrintRequest asks for the diagnostic text form to be written into Buf,
// NUL-terminated. If the text does not fit, or Flags requests anything but
// plain rendering, the buffer is left untouched and the request still
// succeeds.
type PrintRequest struct {
	Handle suite.RawHandle
	Buf    []byte
	Flags  PrintFlags
}

// ScanRequest asks for a new handle holding the value parsed from Buf, a
// host-owned text buffer terminated at its first NUL byte (or its end).
type ScanRequest struct {
	Buf []byte
	Out *suite.RawHandle
}

func (NewRequest) Kind() Kind         { return KindNew }
func (DisposeRequest) Kind() Kind     { return KindDispose }
func (CopyRequest) Kind() Kind        { return KindCopy }
func (FlatSizeRequest) Kind() Kind    { return KindFlatSize }
func (FlattenRequest) Kind() Kind     { return KindFlatten }
func (UnflattenRequest) Kind() Kind   { return KindUnflatten }
func (InterpolateRequest) Kind() Kind { return KindInterpolate }
func (CompareRequest) Kind() Kind     { return KindCompare }
func (PrintSizeRequest) Kind() Kind   { return KindPrintSize }
func (PrintRequest) Kind() Kind       { return KindPrint }
func (ScanRequest) Kind() Kind        { return KindScan }

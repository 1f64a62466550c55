// Package handle wraps host-allocated memory blocks in an ownership type
// that makes the two cardinal violations of the host protocol — double
// dispose and use after dispose — structurally unreachable. A Handle either
// owns its token or is dead: Dispose and IntoRaw both kill the wrapper, and
// every operation on a dead wrapper fails before the host is touched.
package handle

import (
	"github.com/valadaptive/after-effects/suite"
)

// Handle owns one host-managed memory block. The zero value is dead; obtain
// live handles from Allocate, NewBytes or FromRaw.
//
// Handle is not safe for concurrent use. The host protocol guarantees a
// block is mutated by at most one logical owner at a time, so no locking is
// layered on top.
type Handle struct {
	st  *suite.HandleSuite
	raw suite.RawHandle
}

// Allocate asks the host for a fresh block of the given size and takes
// ownership of it.
func Allocate(st *suite.HandleSuite, size uint64) (*Handle, error) {
	if !st.Complete() {
		return nil, suite.NewError(suite.CodeInvalidCallback, "handle.Allocate")
	}
	raw := st.New(size)
	if raw.IsNil() {
		return nil, suite.NewError(suite.CodeOutOfMemory, "handle.Allocate")
	}
	return &Handle{st: st, raw: raw}, nil
}

// NewBytes allocates a block sized to data and copies data into it. This is
// the path a serialized value takes into host memory.
func NewBytes(st *suite.HandleSuite, data []byte) (*Handle, error) {
	h, err := Allocate(st, uint64(len(data)))
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		if err := h.SetBytes(data); err != nil {
			// Never leave a half-initialized block reachable.
			_ = h.Dispose()
			return nil, err
		}
	}
	return h, nil
}

// FromRaw takes ownership of a host-supplied token. The host still considers
// the block its own until the wrapper is released back with IntoRaw, so
// callers that borrow must balance every FromRaw with an IntoRaw.
func FromRaw(st *suite.HandleSuite, raw suite.RawHandle) (*Handle, error) {
	if !st.Complete() {
		return nil, suite.NewError(suite.CodeInvalidCallback, "handle.FromRaw")
	}
	if raw.IsNil() {
		return nil, suite.NewError(suite.CodeGeneric, "handle.FromRaw")
	}
	return &Handle{st: st, raw: raw}, nil
}

// IntoRaw releases ownership back to the host without disposing the block
// and returns the token. The wrapper is dead afterwards.
func (h *Handle) IntoRaw() suite.RawHandle {
	raw := h.raw
	h.raw = 0
	return raw
}

// Raw returns the token without transferring ownership.
func (h *Handle) Raw() suite.RawHandle {
	return h.raw
}

// Size reports the block's byte length as tracked by the host.
func (h *Handle) Size() uint64 {
	if h.raw.IsNil() {
		return 0
	}
	return h.st.Size(h.raw)
}

// Dispose releases the block back to the host, exactly once. Any later
// operation on the wrapper, including a second Dispose, fails with
// CodeInternalStructDamaged.
func (h *Handle) Dispose() error {
	if h.raw.IsNil() {
		return suite.NewError(suite.CodeInternalStructDamaged, "handle.Dispose")
	}
	h.st.Dispose(h.raw)
	h.raw = 0
	return nil
}

// Lock pins the block and returns a view of its bytes. The view is stable
// only until Unlock; the host counts locks recursively, so the pairing is
// mandatory.
func (h *Handle) Lock() (*Lock, error) {
	if h.raw.IsNil() {
		return nil, suite.NewError(suite.CodeInternalStructDamaged, "handle.Lock")
	}
	view := h.st.Lock(h.raw)
	if view == nil && h.st.Size(h.raw) != 0 {
		// The host recognizes the token but its stored block is gone. A nil
		// view registers no pin, so there is nothing to unlock.
		return nil, suite.NewError(suite.CodeInternalStructDamaged, "handle.Lock")
	}
	return &Lock{h: h, view: view}, nil
}

// Bytes copies the block's contents out. Prefer Lock for zero-copy access
// within a single callback.
func (h *Handle) Bytes() ([]byte, error) {
	l, err := h.Lock()
	if err != nil {
		return nil, err
	}
	defer l.Unlock()
	out := make([]byte, len(l.Bytes()))
	copy(out, l.Bytes())
	return out, nil
}

// SetBytes copies data into the block starting at offset zero. Writing more
// than the block holds is refused rather than truncated.
func (h *Handle) SetBytes(data []byte) error {
	l, err := h.Lock()
	if err != nil {
		return err
	}
	defer l.Unlock()
	if len(data) > len(l.Bytes()) {
		return suite.NewError(suite.CodeInvalidIndex, "handle.SetBytes")
	}
	copy(l.Bytes(), data)
	return nil
}

// Lock is a pinned view into a handle's block. It must be released with
// Unlock before the enclosing host callback returns.
type Lock struct {
	h        *Handle
	view     []byte
	unlocked bool
}

// Bytes returns the pinned view. Nil once unlocked.
func (l *Lock) Bytes() []byte {
	if l.unlocked {
		return nil
	}
	return l.view
}

// Unlock releases the pin. Only the first call reaches the host.
func (l *Lock) Unlock() {
	if l.unlocked || l.h.raw.IsNil() {
		return
	}
	l.unlocked = true
	l.view = nil
	l.h.st.Unlock(l.h.raw)
}

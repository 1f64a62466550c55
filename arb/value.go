package arb

import (
	"github.com/valadaptive/after-effects/handle"
	"github.com/valadaptive/after-effects/suite"
)

// Value is a typed flat value: a handle known to contain the binary form of
// exactly one T. The type is tracked only at the call site — the host never
// inspects the bytes.
type Value[T any] struct {
	h *handle.Handle
}

// NewValue serializes v and stores it in a fresh handle.
func NewValue[T any](st *suite.HandleSuite, v T) (Value[T], error) {
	data, err := Marshal(v)
	if err != nil {
		return Value[T]{}, err
	}
	return ValueFromBytes[T](st, data)
}

// ValueFromBytes wraps an already-serialized T into a fresh handle.
func ValueFromBytes[T any](st *suite.HandleSuite, data []byte) (Value[T], error) {
	h, err := handle.NewBytes(st, data)
	if err != nil {
		return Value[T]{}, err
	}
	return Value[T]{h: h}, nil
}

// ValueFromRaw takes ownership of a host token assumed to hold a flat T.
func ValueFromRaw[T any](st *suite.HandleSuite, raw suite.RawHandle) (Value[T], error) {
	h, err := handle.FromRaw(st, raw)
	if err != nil {
		return Value[T]{}, err
	}
	return Value[T]{h: h}, nil
}

// IntoRaw releases the underlying handle back to raw form without disposing
// it. This is the ownership-transfer primitive the dispatcher's borrowed
// operations are built on.
func (v Value[T]) IntoRaw() suite.RawHandle {
	return v.h.IntoRaw()
}

// IntoHandle unwraps the typed layer, keeping ownership in the wrapper.
func (v Value[T]) IntoHandle() *handle.Handle {
	return v.h
}

// Dispose releases the underlying handle, exactly once.
func (v Value[T]) Dispose() error {
	return v.h.Dispose()
}

// Bytes copies out the serialized form.
func (v Value[T]) Bytes() ([]byte, error) {
	return v.h.Bytes()
}

// Size reports the serialized length in bytes.
func (v Value[T]) Size() uint64 {
	return v.h.Size()
}

// Decode deserializes the contained value.
func (v Value[T]) Decode() (T, error) {
	data, err := v.h.Bytes()
	if err != nil {
		var zero T
		return zero, err
	}
	return Unmarshal[T](data)
}

// Package arb implements the host's arbitrary-data parameter protocol for a
// plugin-defined value type: the serialization adapter, the typed flat value
// and the nine-operation lifecycle dispatcher.
package arb

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"github.com/valyala/bytebufferpool"

	"github.com/valadaptive/after-effects/suite"
)

// The binary form stored in host handles is CBOR in canonical encoding, so
// a decode/encode round trip of bytes this codec produced is byte-stable.
var encMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// textPool stages the human-readable form before it is copied into
// host-owned buffers.
var textPool bytebufferpool.Pool

// Marshal encodes a value into the compact binary form stored in handles.
func Marshal[T any](v T) ([]byte, error) {
	data, err := encMode.Marshal(v)
	if err != nil {
		return nil, suite.WrapError(suite.CodeSerialization, "arb.Marshal", err)
	}
	return data, nil
}

// Unmarshal decodes the binary form back into a value.
func Unmarshal[T any](data []byte) (T, error) {
	var v T
	if err := cbor.Unmarshal(data, &v); err != nil {
		return v, suite.WrapError(suite.CodeSerialization, "arb.Unmarshal", err)
	}
	return v, nil
}

// MarshalText renders the diagnostic text form: JSON without a trailing
// newline. The text form is what Print writes and Scan parses; it need not
// match the binary form byte for byte, only survive the round trip.
func MarshalText[T any](v T) ([]byte, error) {
	bb := textPool.Get()
	defer textPool.Put(bb)
	enc := json.NewEncoder(bb)
	if err := enc.Encode(v); err != nil {
		return nil, suite.WrapError(suite.CodeSerialization, "arb.MarshalText", err)
	}
	b := bb.Bytes()
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// UnmarshalText parses the diagnostic text form back into a value.
func UnmarshalText[T any](data []byte) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, suite.WrapError(suite.CodeSerialization, "arb.UnmarshalText", err)
	}
	return v, nil
}

// Package suite models the capability tables an effect host hands to a
// plugin: structs of host-supplied function values through which every
// handle and console operation is performed. A table is fetched once per
// binding session and treated as read-only afterwards.
package suite

// RawHandle is the opaque token the host uses to identify one of its
// managed memory blocks. The zero value means "no handle".
type RawHandle uint64

// IsNil reports whether the token refers to no block at all.
func (h RawHandle) IsNil() bool {
	return h == 0
}

// HandleSuite is the host's handle service table. Each field is supplied by
// the host; a nil field is reported as CodeInvalidCallback by the callers in
// package handle, never dereferenced.
//
// Lock returns a view of the block's bytes that is only stable until the
// matching Unlock. The host tracks a recursive lock count per handle, so
// every Lock must be paired with exactly one Unlock.
type HandleSuite struct {
	New     func(size uint64) RawHandle
	Lock    func(h RawHandle) []byte
	Unlock  func(h RawHandle)
	Dispose func(h RawHandle)
	Size    func(h RawHandle) uint64
}

// Complete reports whether every required handle callback is present.
func (s *HandleSuite) Complete() bool {
	return s != nil &&
		s.New != nil &&
		s.Lock != nil &&
		s.Unlock != nil &&
		s.Dispose != nil &&
		s.Size != nil
}

// UtilitySuite carries the host's optional diagnostic callbacks.
type UtilitySuite struct {
	// WriteConsole appends one line to the host's debug console.
	WriteConsole func(line string)
}

// Basic bundles the capability tables acquired from the host at session
// start. It is shared, immutable state; individual handles remain exclusively
// owned by exactly one side at a time.
type Basic struct {
	Handle  *HandleSuite
	Utility *UtilitySuite
}

// Acquire validates a host-supplied capability bundle. The handle suite is
// mandatory and must be complete; the utility suite may be absent.
func Acquire(handles *HandleSuite, utility *UtilitySuite) (*Basic, error) {
	if !handles.Complete() {
		return nil, &Error{Code: CodeInvalidCallback, Op: "suite.Acquire"}
	}
	return &Basic{Handle: handles, Utility: utility}, nil
}

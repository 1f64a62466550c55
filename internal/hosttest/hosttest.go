// Package hosttest provides an in-memory stand-in for the effect host's
// capability tables. It performs real allocations, tracks lock balance and
// disposal per block, and records protocol violations instead of crashing so
// tests can assert that none occurred.
package hosttest

import (
	"sync"

	"github.com/valadaptive/after-effects/suite"
)

type block struct {
	data  []byte
	locks int
}

// Host is a fake effect host. All methods are safe for concurrent use; the
// real host may issue callbacks for different parameters from different
// threads.
type Host struct {
	mu       sync.Mutex
	next     suite.RawHandle
	blocks   map[suite.RawHandle]*block
	console  []string
	failNext bool

	doubleDisposes  int
	foreignOps      int
	unbalancedLocks int
}

// New creates an empty host.
func New() *Host {
	return &Host{
		next:   1,
		blocks: make(map[suite.RawHandle]*block),
	}
}

// HandleSuite returns the host's handle service table.
func (h *Host) HandleSuite() *suite.HandleSuite {
	return &suite.HandleSuite{
		New:     h.newHandle,
		Lock:    h.lock,
		Unlock:  h.unlock,
		Dispose: h.dispose,
		Size:    h.size,
	}
}

// UtilitySuite returns a console callback that records lines on the host.
func (h *Host) UtilitySuite() *suite.UtilitySuite {
	return &suite.UtilitySuite{WriteConsole: h.writeConsole}
}

// Basic returns a complete capability bundle for this host.
func (h *Host) Basic() *suite.Basic {
	return &suite.Basic{Handle: h.HandleSuite(), Utility: h.UtilitySuite()}
}

// FailNextAlloc makes the next allocation report out-of-memory.
func (h *Host) FailNextAlloc() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failNext = true
}

func (h *Host) newHandle(size uint64) suite.RawHandle {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.failNext {
		h.failNext = false
		return 0
	}
	raw := h.next
	h.next++
	h.blocks[raw] = &block{data: make([]byte, size)}
	return raw
}

func (h *Host) lock(raw suite.RawHandle) []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	b, ok := h.blocks[raw]
	if !ok {
		h.foreignOps++
		return nil
	}
	b.locks++
	return b.data
}

func (h *Host) unlock(raw suite.RawHandle) {
	h.mu.Lock()
	defer h.mu.Unlock()
	b, ok := h.blocks[raw]
	if !ok {
		h.foreignOps++
		return
	}
	if b.locks == 0 {
		h.unbalancedLocks++
		return
	}
	b.locks--
}

func (h *Host) dispose(raw suite.RawHandle) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.blocks[raw]; !ok {
		h.doubleDisposes++
		return
	}
	delete(h.blocks, raw)
}

func (h *Host) size(raw suite.RawHandle) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	b, ok := h.blocks[raw]
	if !ok {
		h.foreignOps++
		return 0
	}
	return uint64(len(b.data))
}

func (h *Host) writeConsole(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.console = append(h.console, line)
}

// Live reports how many blocks are currently allocated.
func (h *Host) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.blocks)
}

// Valid reports whether the host still recognizes the token.
func (h *Host) Valid(raw suite.RawHandle) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.blocks[raw]
	return ok
}

// BytesOf copies out a block's contents for assertions.
func (h *Host) BytesOf(raw suite.RawHandle) []byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	b, ok := h.blocks[raw]
	if !ok {
		return nil
	}
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// LockCount reports the current recursive lock count of a block.
func (h *Host) LockCount(raw suite.RawHandle) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	b, ok := h.blocks[raw]
	if !ok {
		return 0
	}
	return b.locks
}

// DoubleDisposes counts dispose calls on unknown or already-freed tokens.
func (h *Host) DoubleDisposes() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.doubleDisposes
}

// ForeignOps counts operations on tokens the host never issued or has freed.
func (h *Host) ForeignOps() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.foreignOps
}

// UnbalancedLocks counts unlocks that had no matching lock.
func (h *Host) UnbalancedLocks() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.unbalancedLocks
}

// ConsoleLines returns everything written through the utility suite.
func (h *Host) ConsoleLines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.console))
	copy(out, h.console)
	return out
}

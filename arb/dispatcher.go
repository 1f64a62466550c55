package arb

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/valadaptive/after-effects/handle"
	"github.com/valadaptive/after-effects/suite"
)

// Dispatcher executes the host's arbitrary-data lifecycle protocol for one
// value type. One dispatcher serves one parameter type for the lifetime of a
// binding session; Dispatch runs synchronously inside a single host callback
// and never suspends or re-enters.
//
// The central hazard is handle ownership. Every borrowed input handle is
// reconstituted into a wrapper, used, and released back with IntoRaw so the
// host's ownership survives the call; only Dispose consumes its input. A
// producing operation writes its output slot last, so a failure never leaves
// a half-initialized handle reachable.
type Dispatcher[T Data[T]] struct {
	st  *suite.HandleSuite
	log *slog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*dispatcherConfig)

type dispatcherConfig struct {
	log *slog.Logger
}

// WithLogger routes per-request debug logging through the given logger.
func WithLogger(log *slog.Logger) DispatcherOption {
	return func(c *dispatcherConfig) {
		c.log = log
	}
}

// NewDispatcher creates a dispatcher bound to the host's handle suite.
func NewDispatcher[T Data[T]](st *suite.HandleSuite, opts ...DispatcherOption) (*Dispatcher[T], error) {
	if !st.Complete() {
		return nil, suite.NewError(suite.CodeInvalidCallback, "arb.NewDispatcher")
	}
	cfg := dispatcherConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Dispatcher[T]{st: st, log: cfg.log}, nil
}

// Dispatch executes one lifecycle request. Errors carry the suite taxonomy
// and abort only the current request; the parameter's stored state is left
// as the host last knew it.
func (d *Dispatcher[T]) Dispatch(req Request) error {
	if req == nil {
		return suite.NewError(suite.CodeUnsupported, "arb.Dispatch")
	}
	if d.log != nil {
		d.log.Debug("arb dispatch", "kind", req.Kind().String())
	}
	switch r := req.(type) {
	case NewRequest:
		return d.dispatchNew(r)
	case DisposeRequest:
		return d.dispatchDispose(r)
	case CopyRequest:
		return d.dispatchCopy(r)
	case FlatSizeRequest:
		return d.dispatchFlatSize(r)
	case FlattenRequest:
		return d.dispatchFlatten(r)
	case UnflattenRequest:
		return d.dispatchUnflatten(r)
	case InterpolateRequest:
		return d.dispatchInterpolate(r)
	case CompareRequest:
		return d.dispatchCompare(r)
	case PrintSizeRequest:
		return d.dispatchPrintSize(r)
	case PrintRequest:
		return d.dispatchPrint(r)
	case ScanRequest:
		return d.dispatchScan(r)
	default:
		return suite.NewError(suite.CodeUnsupported, "arb.Dispatch")
	}
}

// DispatchStatus executes one request and collapses the outcome into the
// host's status space. It never panics: a panic from user code (Interpolate,
// Compare, codec hooks) is converted to the generic failure status rather
// than unwinding across the host boundary.
func (d *Dispatcher[T]) DispatchStatus(req Request) (status suite.Status) {
	defer func() {
		if r := recover(); r != nil {
			if d.log != nil {
				d.log.Error("arb dispatch panicked", "panic", fmt.Sprint(r))
			}
			status = suite.StatusGeneric
		}
	}()
	err := d.Dispatch(req)
	if err == nil {
		return suite.StatusNone
	}
	if req == nil {
		return suite.ErrorStatus(err)
	}
	if d.log != nil {
		d.log.Warn("arb dispatch failed", "kind", req.Kind().String(), "error", err)
	}
	if req.Kind() == KindScan && suite.CodeOf(err) == suite.CodeSerialization {
		// The host has a dedicated status for unparseable keyframe text.
		return suite.StatusCannotParseKeyframeText
	}
	return suite.ErrorStatus(err)
}

func (d *Dispatcher[T]) dispatchNew(r NewRequest) error {
	if r.Out == nil {
		return suite.NewError(suite.CodeInvalidIndex, "arb.New")
	}
	var zero T
	data, err := Marshal(zero.Default())
	if err != nil {
		return err
	}
	h, err := handle.NewBytes(d.st, data)
	if err != nil {
		return err
	}
	*r.Out = h.IntoRaw()
	return nil
}

func (d *Dispatcher[T]) dispatchDispose(r DisposeRequest) error {
	// The one owned input: take the handle and drop it, exactly once.
	h, err := handle.FromRaw(d.st, r.Handle)
	if err != nil {
		return err
	}
	return h.Dispose()
}

func (d *Dispatcher[T]) dispatchCopy(r CopyRequest) error {
	if r.Out == nil {
		return suite.NewError(suite.CodeInvalidIndex, "arb.Copy")
	}
	data, err := d.borrowBytes(r.Src)
	if err != nil {
		return err
	}
	dup, err := handle.NewBytes(d.st, data)
	if err != nil {
		return err
	}
	*r.Out = dup.IntoRaw()
	return nil
}

func (d *Dispatcher[T]) dispatchFlatSize(r FlatSizeRequest) error {
	if r.Out == nil {
		return suite.NewError(suite.CodeInvalidIndex, "arb.FlatSize")
	}
	size, err := d.borrowSize(r.Handle)
	if err != nil {
		return err
	}
	*r.Out = size
	return nil
}

func (d *Dispatcher[T]) dispatchFlatten(r FlattenRequest) error {
	data, err := d.borrowBytes(r.Handle)
	if err != nil {
		return err
	}
	if len(data) > len(r.Buf) {
		// Refuse rather than truncate: the host sized Buf from FlatSize.
		return suite.NewError(suite.CodeGeneric, "arb.Flatten")
	}
	copy(r.Buf, data)
	return nil
}

func (d *Dispatcher[T]) dispatchUnflatten(r UnflattenRequest) error {
	if r.Out == nil {
		return suite.NewError(suite.CodeInvalidIndex, "arb.Unflatten")
	}
	h, err := handle.NewBytes(d.st, r.Buf)
	if err != nil {
		return err
	}
	*r.Out = h.IntoRaw()
	return nil
}

func (d *Dispatcher[T]) dispatchInterpolate(r InterpolateRequest) error {
	if r.Out == nil {
		return suite.NewError(suite.CodeInvalidIndex, "arb.Interpolate")
	}
	left, err := d.borrowValue(r.Left)
	if err != nil {
		return err
	}
	right, err := d.borrowValue(r.Right)
	if err != nil {
		return err
	}
	data, err := Marshal(left.Interpolate(right, r.Weight))
	if err != nil {
		return err
	}
	h, err := handle.NewBytes(d.st, data)
	if err != nil {
		return err
	}
	*r.Out = h.IntoRaw()
	return nil
}

func (d *Dispatcher[T]) dispatchCompare(r CompareRequest) error {
	if r.Out == nil {
		return suite.NewError(suite.CodeInvalidIndex, "arb.Compare")
	}
	a, err := d.borrowValue(r.A)
	if err != nil {
		return err
	}
	b, err := d.borrowValue(r.B)
	if err != nil {
		return err
	}
	*r.Out = orderingOf(a.Compare(b))
	return nil
}

func (d *Dispatcher[T]) dispatchPrintSize(r PrintSizeRequest) error {
	if r.Out == nil {
		return suite.NewError(suite.CodeInvalidIndex, "arb.PrintSize")
	}
	v, err := d.borrowValue(r.Handle)
	if err != nil {
		return err
	}
	text, err := MarshalText(v)
	if err != nil {
		return err
	}
	// Text length plus the NUL terminator.
	*r.Out = uint64(len(text)) + 1
	return nil
}

func (d *Dispatcher[T]) dispatchPrint(r PrintRequest) error {
	v, err := d.borrowValue(r.Handle)
	if err != nil {
		return err
	}
	text, err := MarshalText(v)
	if err != nil {
		return err
	}
	// Write only when the text and its terminator fit and plain rendering
	// was requested; otherwise leave the host buffer untouched and succeed.
	if len(text)+1 > len(r.Buf) || r.Flags != PrintFlagsNone {
		return nil
	}
	bb := textPool.Get()
	defer textPool.Put(bb)
	bb.Write(text) //nolint:errcheck
	bb.WriteByte(0)
	copy(r.Buf, bb.B)
	return nil
}

func (d *Dispatcher[T]) dispatchScan(r ScanRequest) error {
	if r.Out == nil {
		return suite.NewError(suite.CodeInvalidIndex, "arb.Scan")
	}
	text := r.Buf
	if i := bytes.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	v, err := UnmarshalText[T](text)
	if err != nil {
		return err
	}
	data, err := Marshal(v)
	if err != nil {
		return err
	}
	h, err := handle.NewBytes(d.st, data)
	if err != nil {
		return err
	}
	*r.Out = h.IntoRaw()
	return nil
}

// borrowBytes reads a borrowed handle's bytes and restores host ownership
// before returning, whatever the outcome.
func (d *Dispatcher[T]) borrowBytes(raw suite.RawHandle) ([]byte, error) {
	h, err := handle.FromRaw(d.st, raw)
	if err != nil {
		return nil, err
	}
	data, err := h.Bytes()
	h.IntoRaw()
	return data, err
}

// borrowSize reads a borrowed handle's size, restoring host ownership.
func (d *Dispatcher[T]) borrowSize(raw suite.RawHandle) (uint64, error) {
	h, err := handle.FromRaw(d.st, raw)
	if err != nil {
		return 0, err
	}
	size := h.Size()
	h.IntoRaw()
	return size, nil
}

// borrowValue deserializes a borrowed handle into a T, restoring host
// ownership.
func (d *Dispatcher[T]) borrowValue(raw suite.RawHandle) (T, error) {
	data, err := d.borrowBytes(raw)
	if err != nil {
		var zero T
		return zero, err
	}
	return Unmarshal[T](data)
}

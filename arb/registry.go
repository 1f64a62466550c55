package arb

import (
	"strconv"

	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/valadaptive/after-effects/suite"
)

// Handler executes one lifecycle request for a registered parameter and
// reports the outcome in the host's status space.
type Handler func(Request) suite.Status

// Registry routes lifecycle callbacks to the dispatcher registered for each
// arbitrary parameter, keyed by the refcon the plugin stored in the
// parameter's definition. The host may issue callbacks for different
// parameters from different threads, so the table is concurrency-safe; each
// individual dispatch still runs to completion on its calling thread.
type Registry struct {
	handlers cmap.ConcurrentMap[string, Handler]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: cmap.New[Handler]()}
}

// Register binds a dispatcher's status entry point to a refcon. A second
// registration for the same refcon replaces the first.
func Register[T Data[T]](r *Registry, refcon uint64, d *Dispatcher[T]) {
	r.handlers.Set(refconKey(refcon), d.DispatchStatus)
}

// Unregister removes a refcon's handler.
func (r *Registry) Unregister(refcon uint64) {
	r.handlers.Remove(refconKey(refcon))
}

// Len reports how many parameters are registered.
func (r *Registry) Len() int {
	return r.handlers.Count()
}

// Dispatch routes one request to the handler registered for refcon. An
// unknown refcon reports StatusBadCallbackParam: the host passed a refcon
// this plugin never stored.
func (r *Registry) Dispatch(refcon uint64, req Request) suite.Status {
	h, ok := r.handlers.Get(refconKey(refcon))
	if !ok {
		return suite.StatusBadCallbackParam
	}
	return h(req)
}

func refconKey(refcon uint64) string {
	return strconv.FormatUint(refcon, 16)
}

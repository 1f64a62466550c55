package param

import (
	"github.com/valadaptive/after-effects/suite"
)

// Interact is the host's parameter service table, supplied once at session
// start. A nil field is reported as CodeInvalidCallback when first needed.
type Interact struct {
	// AddParam makes a descriptor visible to the host at the given index.
	// The host copies what it needs; arbitrary defaults change ownership.
	AddParam func(index int32, d *Descriptor) error
	// CheckoutParam fills a descriptor with the parameter's state at a
	// point in time (expressed as time, step and scale in the host's units).
	CheckoutParam func(index, atTime, timeStep, timeScale int32, d *Descriptor) error
	// CheckinParam returns a checked-out descriptor to the host.
	CheckinParam func(d *Descriptor) error
}

// Registry mediates every descriptor's path to the host and enforces the
// descriptor lifecycle: Created -> Added, or Created -> CheckedOut ->
// CheckedIn (automatic on Close) unless checkin is explicitly suppressed.
type Registry struct {
	inter *Interact
}

// NewRegistry binds a registry to the host's parameter callbacks.
func NewRegistry(inter *Interact) (*Registry, error) {
	if inter == nil {
		return nil, suite.NewError(suite.CodeInvalidCallback, "param.NewRegistry")
	}
	return &Registry{inter: inter}, nil
}

// Add validates the descriptor and hands it to the host at the given index.
// Added descriptors were never checked out, so they need no checkin.
func (r *Registry) Add(index int32, d *Descriptor) error {
	if r.inter.AddParam == nil {
		return suite.NewError(suite.CodeInvalidCallback, "param.Add")
	}
	if d.state != stateCreated {
		return suite.NewError(suite.CodeGeneric, "param.Add")
	}
	if err := Validate(d); err != nil {
		return err
	}
	if err := r.inter.AddParam(index, d); err != nil {
		return err
	}
	d.state = stateAdded
	return nil
}

// Checkout asks the host for the parameter at index as of the given time,
// expressed in the host's time units. The returned checkout must be closed
// before the enclosing callback returns.
func (r *Registry) Checkout(index, atTime, timeStep, timeScale int32) (*Checkout, error) {
	if r.inter.CheckoutParam == nil {
		return nil, suite.NewError(suite.CodeInvalidCallback, "param.Checkout")
	}
	d := &Descriptor{state: stateCheckedOut}
	if err := r.inter.CheckoutParam(index, atTime, timeStep, timeScale, d); err != nil {
		return nil, err
	}
	return &Checkout{registry: r, desc: d}, nil
}

// Checkout is a live claim on one parameter's state. Closing it returns the
// descriptor to the host exactly once, unless DoNotCheckin suppressed that
// because the host has since taken ownership through another path.
type Checkout struct {
	registry *Registry
	desc     *Descriptor
}

// Descriptor exposes the checked-out parameter state.
func (c *Checkout) Descriptor() *Descriptor {
	return c.desc
}

// DoNotCheckin suppresses the checkin that Close would perform. Use it when
// the descriptor has been handed to the host through another path, e.g.
// added directly.
func (c *Checkout) DoNotCheckin() {
	if c.desc.state == stateCheckedOut {
		c.desc.state = stateSuppressed
	}
}

// Close checks the descriptor back in. Only the first close of a
// still-checked-out descriptor reaches the host.
func (c *Checkout) Close() error {
	if c.desc.state != stateCheckedOut {
		return nil
	}
	if c.registry.inter.CheckinParam == nil {
		return suite.NewError(suite.CodeInvalidCallback, "param.Checkout.Close")
	}
	c.desc.state = stateCheckedIn
	return c.registry.inter.CheckinParam(c.desc)
}

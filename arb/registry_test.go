package arb_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valadaptive/after-effects/arb"
	"github.com/valadaptive/after-effects/internal/hosttest"
	"github.com/valadaptive/after-effects/suite"
)

func TestRegistryRoutesByRefcon(t *testing.T) {
	host := hosttest.New()
	blendDisp := newBlendDispatcher(t, host)
	counterDisp, err := arb.NewDispatcher[counter](host.HandleSuite())
	require.NoError(t, err)

	r := arb.NewRegistry()
	arb.Register(r, 0xB1, blendDisp)
	arb.Register(r, 0xC2, counterDisp)
	assert.Equal(t, 2, r.Len())

	var out suite.RawHandle
	require.True(t, r.Dispatch(0xC2, arb.NewRequest{Out: &out}).Ok())

	v, err := arb.ValueFromRaw[counter](host.HandleSuite(), out)
	require.NoError(t, err)
	got, err := v.Decode()
	require.NoError(t, err)
	assert.Equal(t, counter{}, got)
	v.IntoRaw()
}

func TestRegistryUnknownRefcon(t *testing.T) {
	r := arb.NewRegistry()
	var out suite.RawHandle
	assert.Equal(t, suite.StatusBadCallbackParam, r.Dispatch(7, arb.NewRequest{Out: &out}))
}

func TestRegistryUnregister(t *testing.T) {
	host := hosttest.New()
	r := arb.NewRegistry()
	arb.Register(r, 1, newBlendDispatcher(t, host))

	r.Unregister(1)
	assert.Equal(t, 0, r.Len())

	var out suite.RawHandle
	assert.Equal(t, suite.StatusBadCallbackParam, r.Dispatch(1, arb.NewRequest{Out: &out}))
}

func TestRegistryReplacesOnReregister(t *testing.T) {
	host := hosttest.New()
	r := arb.NewRegistry()
	arb.Register(r, 1, newBlendDispatcher(t, host))

	counterDisp, err := arb.NewDispatcher[counter](host.HandleSuite())
	require.NoError(t, err)
	arb.Register(r, 1, counterDisp)
	assert.Equal(t, 1, r.Len())

	var out suite.RawHandle
	require.True(t, r.Dispatch(1, arb.NewRequest{Out: &out}).Ok())
	v, err := arb.ValueFromRaw[counter](host.HandleSuite(), out)
	require.NoError(t, err)
	got, err := v.Decode()
	require.NoError(t, err)
	assert.Equal(t, counter{}, got)
	v.IntoRaw()
}

func TestRegistryConcurrentDispatch(t *testing.T) {
	host := hosttest.New()
	r := arb.NewRegistry()
	arb.Register(r, 1, newBlendDispatcher(t, host))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var out suite.RawHandle
			if !r.Dispatch(1, arb.NewRequest{Out: &out}).Ok() {
				return
			}
			r.Dispatch(1, arb.DisposeRequest{Handle: out})
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, host.Live())
	assert.Zero(t, host.DoubleDisposes())
}

package arb_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/valadaptive/after-effects/arb"
	"github.com/valadaptive/after-effects/suite"
)

// blend is a representative arbitrary parameter value: two animatable
// channels with a lexicographic total order.
type blend struct {
	Opacity float64 `json:"opacity"`
	Feather float64 `json:"feather"`
}

func (b blend) Default() blend {
	return blend{Opacity: 1}
}

func (b blend) Interpolate(other blend, t float64) blend {
	switch t {
	case 0:
		return b
	case 1:
		return other
	}
	return blend{
		Opacity: b.Opacity + (other.Opacity-b.Opacity)*t,
		Feather: b.Feather + (other.Feather-b.Feather)*t,
	}
}

func (b blend) Compare(other blend) int {
	switch {
	case b.Opacity < other.Opacity:
		return -1
	case b.Opacity > other.Opacity:
		return 1
	case b.Feather < other.Feather:
		return -1
	case b.Feather > other.Feather:
		return 1
	default:
		return 0
	}
}

// counter wraps a single int32 with a zero default, for the minimal
// protocol scenarios.
type counter struct {
	N int32 `json:"n"`
}

func (c counter) Default() counter {
	return counter{}
}

func (c counter) Interpolate(other counter, t float64) counter {
	return counter{N: c.N + int32(float64(other.N-c.N)*t)}
}

func (c counter) Compare(other counter) int {
	return int(c.N - other.N)
}

// volatile panics in user code, to prove panics never cross the host
// boundary.
type volatile struct{}

func (volatile) Default() volatile {
	return volatile{}
}

func (volatile) Interpolate(volatile, float64) volatile {
	panic("interpolate blew up")
}

func (volatile) Compare(volatile) int {
	panic("compare blew up")
}

// bogusRequest simulates a request kind this dispatcher does not know.
type bogusRequest struct{}

func (bogusRequest) Kind() arb.Kind { return arb.Kind(99) }

// newRawValue serializes v into a fresh host handle and returns the raw
// token, as the host would before issuing a borrowed-kind request.
func newRawValue[T any](t *testing.T, st *suite.HandleSuite, v T) suite.RawHandle {
	t.Helper()
	val, err := arb.NewValue(st, v)
	require.NoError(t, err)
	return val.IntoRaw()
}

package arb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valadaptive/after-effects/arb"
)

func TestKindFromCode(t *testing.T) {
	k, ok := arb.KindFromCode(0)
	assert.True(t, ok)
	assert.Equal(t, arb.KindNew, k)

	k, ok = arb.KindFromCode(10)
	assert.True(t, ok)
	assert.Equal(t, arb.KindScan, k)

	for _, code := range []int32{-1, 11, 99} {
		_, ok := arb.KindFromCode(code)
		assert.False(t, ok, "code %d", code)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "interpolate", arb.KindInterpolate.String())
	assert.Equal(t, "unknown", arb.Kind(42).String())
}

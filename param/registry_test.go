package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valadaptive/after-effects/param"
	"github.com/valadaptive/after-effects/suite"
)

// fakeInteract records every host call so tests can assert on call balance.
type fakeInteract struct {
	added     []int32
	checkouts int
	checkins  int
}

func (f *fakeInteract) table() *param.Interact {
	return &param.Interact{
		AddParam: func(index int32, d *param.Descriptor) error {
			f.added = append(f.added, index)
			return nil
		},
		CheckoutParam: func(index, atTime, timeStep, timeScale int32, d *param.Descriptor) error {
			f.checkouts++
			d.Name = "checked out"
			d.SetDef(param.SliderDef{Value: 3, ValidMax: 10, SliderMax: 10})
			return nil
		},
		CheckinParam: func(d *param.Descriptor) error {
			f.checkins++
			return nil
		},
	}
}

func sliderDescriptor(name string) *param.Descriptor {
	return param.NewDescriptor(name).SetDef(param.SliderDef{
		Default:   5,
		Value:     5,
		ValidMax:  100,
		SliderMax: 100,
	})
}

func TestNewRegistryRequiresInteract(t *testing.T) {
	_, err := param.NewRegistry(nil)
	require.Error(t, err)
	assert.Equal(t, suite.CodeInvalidCallback, suite.CodeOf(err))
}

func TestAdd(t *testing.T) {
	f := &fakeInteract{}
	r, err := param.NewRegistry(f.table())
	require.NoError(t, err)

	require.NoError(t, r.Add(1, sliderDescriptor("Amount")))
	assert.Equal(t, []int32{1}, f.added)
}

func TestAddOnlyFromCreatedState(t *testing.T) {
	f := &fakeInteract{}
	r, err := param.NewRegistry(f.table())
	require.NoError(t, err)

	d := sliderDescriptor("Amount")
	require.NoError(t, r.Add(1, d))

	// Already added: a second add must not reach the host.
	err = r.Add(2, d)
	require.Error(t, err)
	assert.Equal(t, suite.CodeGeneric, suite.CodeOf(err))
	assert.Equal(t, []int32{1}, f.added)
}

func TestAddRejectsInvalidDescriptor(t *testing.T) {
	f := &fakeInteract{}
	r, err := param.NewRegistry(f.table())
	require.NoError(t, err)

	tests := []struct {
		name string
		desc *param.Descriptor
	}{
		{"empty name", sliderDescriptor("")},
		{"name over host limit", sliderDescriptor("this parameter name is far too long for the host")},
		{"no payload", param.NewDescriptor("Bare")},
		{"slider min above max", param.NewDescriptor("Slider").SetDef(param.SliderDef{
			ValidMin: 10, ValidMax: 5, SliderMax: 10,
		})},
		{"popup without choices", param.NewDescriptor("Popup").SetDef(param.PopupDef{
			Value: 1, Default: 1,
		})},
		{"checkbox without label", param.NewDescriptor("Check").SetDef(param.CheckboxDef{})},
		{"arbitrary refcon unset", param.NewDescriptor("Data").SetDef(param.ArbitraryDef{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, r.Add(1, tt.desc))
		})
	}
	assert.Empty(t, f.added, "invalid descriptors must never reach the host")
}

func TestAddMissingCallback(t *testing.T) {
	r, err := param.NewRegistry(&param.Interact{})
	require.NoError(t, err)

	err = r.Add(1, sliderDescriptor("Amount"))
	require.Error(t, err)
	assert.Equal(t, suite.CodeInvalidCallback, suite.CodeOf(err))
}

func TestCheckoutCheckinExactlyOnce(t *testing.T) {
	f := &fakeInteract{}
	r, err := param.NewRegistry(f.table())
	require.NoError(t, err)

	co, err := r.Checkout(2, 0, 1, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, f.checkouts)
	assert.Equal(t, "checked out", co.Descriptor().Name)
	assert.Equal(t, param.KindSlider, co.Descriptor().Kind())

	require.NoError(t, co.Close())
	assert.Equal(t, 1, f.checkins)

	// Second close is a no-op.
	require.NoError(t, co.Close())
	assert.Equal(t, 1, f.checkins)
}

func TestCheckoutDoNotCheckin(t *testing.T) {
	f := &fakeInteract{}
	r, err := param.NewRegistry(f.table())
	require.NoError(t, err)

	co, err := r.Checkout(2, 0, 1, 30)
	require.NoError(t, err)

	co.DoNotCheckin()
	require.NoError(t, co.Close())
	assert.Zero(t, f.checkins, "suppressed checkout must not check back in")
}

func TestCheckoutMissingCallback(t *testing.T) {
	r, err := param.NewRegistry(&param.Interact{})
	require.NoError(t, err)

	_, err = r.Checkout(0, 0, 1, 30)
	require.Error(t, err)
	assert.Equal(t, suite.CodeInvalidCallback, suite.CodeOf(err))
}

// Package param manages effect parameter definitions: building descriptors,
// adding them to the host's UI, and the checkout/checkin discipline for
// reading parameter state at render time.
package param

import (
	"github.com/valadaptive/after-effects/handle"
	"github.com/valadaptive/after-effects/suite"
)

// Kind tags which variant payload a descriptor carries.
type Kind int32

const (
	KindNone Kind = iota
	KindPopup
	KindAngle
	KindCheckbox
	KindSlider
	KindFloatSlider
	KindColor
	KindButton
	KindArbitrary
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindPopup:
		return "popup"
	case KindAngle:
		return "angle"
	case KindCheckbox:
		return "checkbox"
	case KindSlider:
		return "slider"
	case KindFloatSlider:
		return "float_slider"
	case KindColor:
		return "color"
	case KindButton:
		return "button"
	case KindArbitrary:
		return "arbitrary"
	default:
		return "unknown"
	}
}

// Flags are the host's parameter behavior flags.
type Flags uint32

const (
	FlagCannotTimeVary Flags = 1 << 1
	FlagCannotInterp   Flags = 1 << 2
	FlagCollapseTwirly Flags = 1 << 5
	FlagSupervise      Flags = 1 << 6
	FlagStartCollapsed Flags = 1 << 7
)

// UIFlags control how the host draws the parameter's controls.
type UIFlags uint32

const (
	UIFlagTopic       UIFlags = 1 << 0
	UIFlagControl     UIFlags = 1 << 1
	UIFlagControlOnly UIFlags = 1 << 2
	UIFlagDisabled    UIFlags = 1 << 5
	UIFlagInvisible   UIFlags = 1 << 10
)

// Color is an 8-bit ARGB color, the payload of a color parameter.
type Color struct {
	Alpha uint8
	Red   uint8
	Green uint8
	Blue  uint8
}

// Def is a descriptor's variant payload. Exactly one payload is active per
// descriptor; the variants below are the only implementations.
type Def interface {
	kind() Kind
}

// PopupDef is a drop-down choice control.
type PopupDef struct {
	Choices []string `validate:"required,min=1"`
	Value   int32    `validate:"gte=1"`
	Default int32    `validate:"gte=1"`
}

// AngleDef is a dial control, in degrees.
type AngleDef struct {
	Value   int32
	Default int32
}

// CheckboxDef is a boolean control with an inline label.
type CheckboxDef struct {
	Label   string `validate:"required"`
	Value   bool
	Default bool
}

// SliderDef is an integer slider. Valid bounds clamp typed-in values;
// slider bounds only clamp the drag range.
type SliderDef struct {
	Value     int32
	Default   int32
	ValidMin  int32 `validate:"ltefield=ValidMax"`
	ValidMax  int32
	SliderMin int32 `validate:"ltefield=SliderMax"`
	SliderMax int32
}

// FloatSliderDef is a floating-point slider.
type FloatSliderDef struct {
	Value     float64
	Default   float32
	ValidMin  float32 `validate:"ltefield=ValidMax"`
	ValidMax  float32
	SliderMin float32 `validate:"ltefield=SliderMax"`
	SliderMax float32
	Precision uint8 `validate:"lte=6"`
}

// ColorDef is a color swatch control.
type ColorDef struct {
	Value   Color
	Default Color
}

// ButtonDef is a momentary button with a label.
type ButtonDef struct {
	Label string `validate:"required"`
}

// ArbitraryDef declares an arbitrary-data parameter. Default is the handle
// holding the serialized default value — the host owns it once the
// descriptor is added — and Refcon is the key the plugin's dispatcher
// registry routes lifecycle callbacks by.
type ArbitraryDef struct {
	Default suite.RawHandle
	Refcon  uint64 `validate:"required"`
}

func (PopupDef) kind() Kind       { return KindPopup }
func (AngleDef) kind() Kind       { return KindAngle }
func (CheckboxDef) kind() Kind    { return KindCheckbox }
func (SliderDef) kind() Kind      { return KindSlider }
func (FloatSliderDef) kind() Kind { return KindFloatSlider }
func (ColorDef) kind() Kind       { return KindColor }
func (ButtonDef) kind() Kind      { return KindButton }
func (ArbitraryDef) kind() Kind   { return KindArbitrary }

// NewArbitraryDef consumes the default-value handle and binds it to a
// refcon. The handle must not be touched again by the caller; the host owns
// it from here on.
func NewArbitraryDef(defaultValue *handle.Handle, refcon uint64) ArbitraryDef {
	return ArbitraryDef{Default: defaultValue.IntoRaw(), Refcon: refcon}
}

// Descriptor describes one UI-exposed effect parameter.
type Descriptor struct {
	Name     string `validate:"required,max=31"`
	Flags    Flags
	UIFlags  UIFlags
	UIWidth  uint16
	UIHeight uint16

	def   Def
	state state
}

// NewDescriptor creates a descriptor in the Created state.
func NewDescriptor(name string) *Descriptor {
	return &Descriptor{Name: name, state: stateCreated}
}

// SetDef installs the variant payload, tagging the descriptor's kind and
// overwriting any previous payload.
func (d *Descriptor) SetDef(def Def) *Descriptor {
	d.def = def
	return d
}

// WithFlags sets the behavior flags.
func (d *Descriptor) WithFlags(flags Flags) *Descriptor {
	d.Flags = flags
	return d
}

// WithUIFlags sets the UI flags.
func (d *Descriptor) WithUIFlags(flags UIFlags) *Descriptor {
	d.UIFlags = flags
	return d
}

// WithUISize sets the custom-UI control extent.
func (d *Descriptor) WithUISize(width, height uint16) *Descriptor {
	d.UIWidth = width
	d.UIHeight = height
	return d
}

// Def returns the active variant payload, or nil before SetDef.
func (d *Descriptor) Def() Def {
	return d.def
}

// Kind reports which variant payload is active.
func (d *Descriptor) Kind() Kind {
	if d.def == nil {
		return KindNone
	}
	return d.def.kind()
}

// state tracks a descriptor through the registry's lifecycle.
type state int

const (
	stateCreated state = iota
	stateAdded
	stateCheckedOut
	stateCheckedIn
	stateSuppressed
)

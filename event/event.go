// Package event carries the host's custom-UI event plumbing: the event
// types a parameter's custom control can receive, the out-flags it reports
// handling with, and registration of the control's extent.
package event

import (
	"github.com/valadaptive/after-effects/suite"
)

// Type identifies one custom-UI event.
type Type int32

const (
	TypeNone Type = iota
	TypeNewContext
	TypeActivate
	TypeDoClick
	TypeDrag
	TypeDraw
	TypeDeactivate
	TypeCloseContext
	TypeIdle
	// TypeAdjustCursor is sent when the mouse moves over the custom UI.
	TypeAdjustCursor
	// TypeKeydown carries cross-platform key codes and unicode characters.
	TypeKeydown
	// TypeMouseExited signals the mouse left a layer or comp view.
	TypeMouseExited
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "none"
	case TypeNewContext:
		return "new_context"
	case TypeActivate:
		return "activate"
	case TypeDoClick:
		return "do_click"
	case TypeDrag:
		return "drag"
	case TypeDraw:
		return "draw"
	case TypeDeactivate:
		return "deactivate"
	case TypeCloseContext:
		return "close_context"
	case TypeIdle:
		return "idle"
	case TypeAdjustCursor:
		return "adjust_cursor"
	case TypeKeydown:
		return "keydown"
	case TypeMouseExited:
		return "mouse_exited"
	default:
		return "unknown"
	}
}

// OutFlags report back to the host what the plugin did with an event.
type OutFlags uint32

const (
	OutFlagNone         OutFlags = 0
	OutFlagHandledEvent OutFlags = 1 << 0
	// OutFlagAlwaysUpdate rerenders the comp after the event returns.
	OutFlagAlwaysUpdate OutFlags = 1 << 1
	// OutFlagNeverUpdate suppresses the rerender.
	OutFlagNeverUpdate OutFlags = 1 << 2
	// OutFlagUpdateNow redraws the view immediately after the event returns.
	OutFlagUpdateNow OutFlags = 1 << 3
)

// Extra is the event record the host passes into a custom-UI callback.
// Context is the host's opaque drawing-context token; OutFlags is the
// write-back slot the plugin reports through.
type Extra struct {
	Type     Type
	Context  suite.RawHandle
	OutFlags OutFlags
}

// Handled marks the event as consumed, merging in any update flags.
func (e *Extra) Handled(flags OutFlags) {
	e.OutFlags |= OutFlagHandledEvent | flags
}

// WhichFlags is the event mask a custom UI subscribes with.
type WhichFlags uint32

const (
	WhichNone    WhichFlags = 0
	WhichComp    WhichFlags = 1 << 0
	WhichLayer   WhichFlags = 1 << 1
	WhichEffect  WhichFlags = 1 << 2
	WhichPreview WhichFlags = 1 << 3
)

// UIInfo describes a custom control's event subscriptions and extent.
type UIInfo struct {
	Events        WhichFlags
	CompWidth     uint16
	CompHeight    uint16
	LayerWidth    uint16
	LayerHeight   uint16
	PreviewWidth  uint16
	PreviewHeight uint16
}

// Registrar is the host callback that installs a custom UI.
type Registrar struct {
	RegisterUI func(info UIInfo) error
}

// Register installs the custom UI with the host.
func (r *Registrar) Register(info UIInfo) error {
	if r == nil || r.RegisterUI == nil {
		return suite.NewError(suite.CodeInvalidCallback, "event.Register")
	}
	return r.RegisterUI(info)
}

// Package world provides typed, bounds-checked views over the host's pixel
// planes. A World never owns its plane; the host does, and the view is only
// valid for the duration of the callback that produced it.
package world

import (
	"github.com/valadaptive/after-effects/suite"
)

// Type identifies a world's pixel depth.
type Type int32

const (
	// TypeByte is 8 bits per channel.
	TypeByte Type = iota
	// TypeInteger is 16 bits per channel.
	TypeInteger
	// TypeFloat is 32-bit float per channel.
	TypeFloat
)

// channelBytes reports the per-channel width; worlds are always ARGB.
func (t Type) channelBytes() int {
	switch t {
	case TypeInteger:
		return 2
	case TypeFloat:
		return 4
	default:
		return 1
	}
}

// PixelBytes reports the stride of one pixel.
func (t Type) PixelBytes() int {
	return 4 * t.channelBytes()
}

// Pixel8 is an 8-bit ARGB pixel.
type Pixel8 struct {
	Alpha uint8
	Red   uint8
	Green uint8
	Blue  uint8
}

// Pixel16 is a 16-bit ARGB pixel.
type Pixel16 struct {
	Alpha uint16
	Red   uint16
	Green uint16
	Blue  uint16
}

// Pixel32 is a float ARGB pixel.
type Pixel32 struct {
	Alpha float32
	Red   float32
	Green float32
	Blue  float32
}

// World is a view on one host-owned pixel plane. Rows may carry padding:
// RowBytes >= Width*PixelBytes.
type World struct {
	data     []byte
	width    int
	height   int
	rowBytes int
	typ      Type
}

// FromRaw wraps a host-supplied plane. It refuses a nil plane, non-positive
// extents, or a plane shorter than height*rowBytes.
func FromRaw(data []byte, width, height, rowBytes int, typ Type) (*World, error) {
	if data == nil {
		return nil, suite.NewError(suite.CodeGeneric, "world.FromRaw")
	}
	if width <= 0 || height <= 0 || rowBytes < width*typ.PixelBytes() {
		return nil, suite.NewError(suite.CodeInvalidIndex, "world.FromRaw")
	}
	if len(data) < height*rowBytes {
		return nil, suite.NewError(suite.CodeInvalidIndex, "world.FromRaw")
	}
	return &World{data: data, width: width, height: height, rowBytes: rowBytes, typ: typ}, nil
}

// Width reports the plane width in pixels.
func (w *World) Width() int { return w.width }

// Height reports the plane height in pixels.
func (w *World) Height() int { return w.height }

// RowBytes reports the byte stride between rows.
func (w *World) RowBytes() int { return w.rowBytes }

// Type reports the pixel depth.
func (w *World) Type() Type { return w.typ }

// RowPadding reports the unused bytes at the end of each row.
func (w *World) RowPadding() int {
	return w.rowBytes - w.width*w.typ.PixelBytes()
}

// inBounds reports whether (x, y) addresses a pixel.
func (w *World) inBounds(x, y int) bool {
	return x >= 0 && x < w.width && y >= 0 && y < w.height
}

func (w *World) offset(x, y int) int {
	return y*w.rowBytes + x*w.typ.PixelBytes()
}

// Pixel8At reads an 8-bit pixel.
func (w *World) Pixel8At(x, y int) (Pixel8, error) {
	if w.typ != TypeByte || !w.inBounds(x, y) {
		return Pixel8{}, suite.NewError(suite.CodeInvalidIndex, "world.Pixel8At")
	}
	o := w.offset(x, y)
	return Pixel8{
		Alpha: w.data[o],
		Red:   w.data[o+1],
		Green: w.data[o+2],
		Blue:  w.data[o+3],
	}, nil
}

// SetPixel8 writes an 8-bit pixel.
func (w *World) SetPixel8(x, y int, p Pixel8) error {
	if w.typ != TypeByte || !w.inBounds(x, y) {
		return suite.NewError(suite.CodeInvalidIndex, "world.SetPixel8")
	}
	o := w.offset(x, y)
	w.data[o] = p.Alpha
	w.data[o+1] = p.Red
	w.data[o+2] = p.Green
	w.data[o+3] = p.Blue
	return nil
}

// Pixel16At reads a 16-bit pixel.
func (w *World) Pixel16At(x, y int) (Pixel16, error) {
	if w.typ != TypeInteger || !w.inBounds(x, y) {
		return Pixel16{}, suite.NewError(suite.CodeInvalidIndex, "world.Pixel16At")
	}
	o := w.offset(x, y)
	return Pixel16{
		Alpha: getU16(w.data[o:]),
		Red:   getU16(w.data[o+2:]),
		Green: getU16(w.data[o+4:]),
		Blue:  getU16(w.data[o+6:]),
	}, nil
}

// SetPixel16 writes a 16-bit pixel.
func (w *World) SetPixel16(x, y int, p Pixel16) error {
	if w.typ != TypeInteger || !w.inBounds(x, y) {
		return suite.NewError(suite.CodeInvalidIndex, "world.SetPixel16")
	}
	o := w.offset(x, y)
	putU16(w.data[o:], p.Alpha)
	putU16(w.data[o+2:], p.Red)
	putU16(w.data[o+4:], p.Green)
	putU16(w.data[o+6:], p.Blue)
	return nil
}

// Pixel32At reads a float pixel.
func (w *World) Pixel32At(x, y int) (Pixel32, error) {
	if w.typ != TypeFloat || !w.inBounds(x, y) {
		return Pixel32{}, suite.NewError(suite.CodeInvalidIndex, "world.Pixel32At")
	}
	o := w.offset(x, y)
	return Pixel32{
		Alpha: getF32(w.data[o:]),
		Red:   getF32(w.data[o+4:]),
		Green: getF32(w.data[o+8:]),
		Blue:  getF32(w.data[o+12:]),
	}, nil
}

// SetPixel32 writes a float pixel.
func (w *World) SetPixel32(x, y int, p Pixel32) error {
	if w.typ != TypeFloat || !w.inBounds(x, y) {
		return suite.NewError(suite.CodeInvalidIndex, "world.SetPixel32")
	}
	o := w.offset(x, y)
	putF32(w.data[o:], p.Alpha)
	putF32(w.data[o+4:], p.Red)
	putF32(w.data[o+8:], p.Green)
	putF32(w.data[o+12:], p.Blue)
	return nil
}

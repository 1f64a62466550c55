package world

import (
	"encoding/binary"
	"math"
)

// Pixel channels live in the plane in the host's native little-endian
// layout.

func getU16(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

func putU16(b []byte, v uint16) {
	binary.LittleEndian.PutUint16(b, v)
}

func getF32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

func putF32(b []byte, v float32) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
}

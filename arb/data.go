package arb

// Data is the capability set an arbitrary parameter's value type must
// provide. The dispatcher is generic over it and resolves everything at
// compile time; there is no reflection-driven dispatch.
//
// Default produces the value a fresh parameter starts with. Interpolate
// blends the receiver toward other with weight t in [0, 1] and must return
// the receiver at t == 0 and other at t == 1. Compare establishes a total
// order: negative when the receiver sorts before other, positive after,
// zero when equal.
//
// Values must also survive the codec round trips: Unmarshal(Marshal(v))
// and UnmarshalText(MarshalText(v)) both yield a value equal to v. The
// binary trip holds for any CBOR-encodable type; the text trip is an
// assumption on T — a type whose JSON form drops information breaks
// Print/Scan, not the dispatcher.
type Data[T any] interface {
	Default() T
	Interpolate(other T, t float64) T
	Compare(other T) int
}

// Ordering is the result tag a Compare request writes back to the host.
// The numeric values are fixed by the host ABI.
type Ordering int32

const (
	OrderingEqual Ordering = iota
	OrderingLess
	OrderingMore
	// OrderingNotEqual exists in the host ABI for value types with only a
	// partial order. Data requires a total order, so the dispatcher never
	// produces it.
	OrderingNotEqual
)

func (o Ordering) String() string {
	switch o {
	case OrderingEqual:
		return "equal"
	case OrderingLess:
		return "less"
	case OrderingMore:
		return "more"
	case OrderingNotEqual:
		return "not_equal"
	default:
		return "unknown"
	}
}

// orderingOf maps a three-way comparison to the host's tag.
func orderingOf(c int) Ordering {
	switch {
	case c < 0:
		return OrderingLess
	case c > 0:
		return OrderingMore
	default:
		return OrderingEqual
	}
}

package suite

// Status is a value in the host's error-code space. The host interprets
// these numerically; they are the only error representation that crosses the
// boundary back to it.
type Status int32

// Host status codes. The numeric values are fixed by the host ABI.
const (
	StatusNone                    Status = 0
	StatusOutOfMemory             Status = 4
	StatusInternalStructDamaged   Status = 5
	StatusInvalidIndex            Status = 6
	StatusUnrecognizedParamType   Status = 7
	StatusInvalidCallback         Status = 8
	StatusBadCallbackParam        Status = 9
	StatusCannotParseKeyframeText Status = 11
	StatusGeneric                 Status = 512
)

// Ok reports whether the status signals success.
func (s Status) Ok() bool {
	return s == StatusNone
}

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusOutOfMemory:
		return "out of memory"
	case StatusInternalStructDamaged:
		return "internal struct damaged"
	case StatusInvalidIndex:
		return "invalid index"
	case StatusUnrecognizedParamType:
		return "unrecognized param type"
	case StatusInvalidCallback:
		return "invalid callback"
	case StatusBadCallbackParam:
		return "bad callback param"
	case StatusCannotParseKeyframeText:
		return "cannot parse keyframe text"
	case StatusGeneric:
		return "generic failure"
	default:
		return "unknown status"
	}
}

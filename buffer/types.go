package buffer

import "errors"

// OffsetPolicy decides what an edit does with a column outside [0, len(line)].
type OffsetPolicy uint8

const (
	// OffsetClamp snaps the column to the nearest valid boundary.
	OffsetClamp OffsetPolicy = iota
	// OffsetError rejects the edit with ErrInvalidOffset.
	OffsetError
)

func (p OffsetPolicy) String() string {
	switch p {
	case OffsetClamp:
		return "clamp"
	case OffsetError:
		return "error"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidOffset reports an edit column outside the line under OffsetError.
	ErrInvalidOffset = errors.New("invalid column offset")
	// ErrInvalidEncoding reports file contents that are not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8")
)

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

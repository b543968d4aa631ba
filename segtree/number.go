package segtree

import "math"

// Number is the set of value types a tree may aggregate.
//
// Sums are formed with the type's own addition, so for integer types range
// sums are exact as long as the total does not overflow. Volumes are best kept
// as integers; prices may use floats.
type Number interface {
	~int | ~int32 | ~int64 | ~uint32 | ~uint64 | ~float32 | ~float64
}

// finite reports whether v is neither NaN nor an infinity. Integer values are
// always finite.
func finite[N Number](v N) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

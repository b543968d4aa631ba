package segtree

import (
	"errors"

	"github.com/npillmayer/volsum"
)

var (
	// ErrInvalidInput signals an empty input sequence or a non-finite value.
	ErrInvalidInput = volsum.ErrInvalidInput
	// ErrIndexOutOfRange signals an update position outside of [0, n-1].
	ErrIndexOutOfRange = volsum.ErrIndexOutOfRange
	// ErrInvalidRange signals a reversed query range or bounds outside of [0, n-1].
	ErrInvalidRange = volsum.ErrInvalidRange
	// ErrInconsistent signals a violated node-sum invariant, found by Check.
	ErrInconsistent = errors.New("segtree: inconsistent node sums")
)

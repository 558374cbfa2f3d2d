package vector

import "github.com/pkg/errors"

// Sentinel errors returned by vectors and allocators. Callers should match
// with errors.Is since most are returned wrapped with context.
var (
	// ErrOutOfRange is returned by checked accessors (At, SetAt) when the
	// index is not in [0, Len()).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrLimitExceeded is returned by LimitAllocator when an allocation
	// would push tracked memory past the configured budget.
	ErrLimitExceeded = errors.New("vector: allocation would exceed memory limit")
)

// Package vector implements a generic resizable array container whose
// storage comes from a pluggable memory allocator.
//
// # Overview
//
// A Vector[T] is a contiguous, growable sequence with amortized O(1)
// append, O(1) random access, and explicit capacity control. Unlike a
// plain slice, a vector obtains and releases its backing blocks through
// an Allocator, so callers decide where element storage lives. This is
// particularly useful for:
//
//   - Request-scoped element storage recycled through an arena
//   - Bounding the memory a set of containers may consume
//   - Reusing blocks across containers to reduce GC pressure
//   - Deterministic teardown of large transient collections
//
// # Basic Usage
//
//	v := vector.New[int]() // Go heap storage
//	_ = v.PushBack(1)
//	_ = v.PushBack(2)
//	fmt.Println(v.Len(), v.Cap()) // 2 2
//
//	// Bulk construction
//	w, _ := vector.Of[int](nil, 5, 4, 3)
//	for i, x := range w.All() {
//		fmt.Println(i, x)
//	}
//
//	// Explicit capacity control
//	_ = v.Reserve(100)
//	_ = v.ShrinkToFit()
//
// # Allocators
//
// Storage is obtained through the Allocator interface. The package
// provides several implementations that can be freely combined:
//
//	GoAllocator    plain Go heap blocks, reclaimed by the GC
//	Arena          chunked bump allocation with O(1) bulk cleanup
//	SafeArena      a mutex-guarded Arena for use across goroutines
//	LimitAllocator byte budget enforcement around another allocator
//	PoolAllocator  size-bucketed block recycling
//
//	arena := vector.NewArena[int](0) // default chunk length
//	defer arena.Release()
//
//	v, _ := vector.Make[int](arena, 100)
//	_ = v.PushBack(7)
//
// # Failure Safety
//
// Every mutator either succeeds completely or reports an error with the
// vector unchanged: same length, same capacity, same element values at
// the same addresses. Growth paths construct into the new block first
// and release the old block only after everything has succeeded, and a
// failed element construction rolls back exactly the elements it had
// constructed so far. Allocator failures and out-of-range errors from At
// and SetAt can be matched with errors.Is against the package sentinels.
//
// # Thread Safety
//
// A Vector is not safe for concurrent use; callers serialize access or
// use one vector per goroutine. Allocators set their own policy:
// GoAllocator, SafeArena, and PoolAllocator may be shared across
// goroutines, while a plain Arena may not. LimitAllocator's accounting
// is concurrent-safe, so it is as shareable as the allocator it wraps.
//
// # Metrics and Monitoring
//
// Arenas expose usage statistics, and LimitAllocator both tracks its
// current and peak reservations and counts rejected allocations in a
// Prometheus counter:
//
//	metrics := arena.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", metrics.Utilization*100)
//
//	limited := vector.NewLimitAllocator[int](arena, 1<<20, rejectedCounter)
//	fmt.Printf("In use: %d bytes, peak: %d bytes\n", limited.InUseBytes(), limited.PeakBytes())
package vector

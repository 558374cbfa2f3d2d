package vector

import "unsafe"

// SlotsInUse returns the number of element slots currently carved out of
// the arena. Tail slots stranded when a chunk could not fit a request do
// not count as in use.
func (a *Arena[T]) SlotsInUse() int {
	if a.chunks == nil {
		return 0
	}
	sum := 0
	for _, c := range a.chunks {
		sum += c.used
	}
	return sum
}

// NumChunks returns the number of chunks currently held by the arena.
func (a *Arena[T]) NumChunks() int {
	if a.chunks == nil {
		return 0
	}
	return len(a.chunks)
}

// SlotCapacity returns the total number of element slots across all
// chunks.
func (a *Arena[T]) SlotCapacity() int {
	if a.chunks == nil {
		return 0
	}
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// Utilization returns the ratio of slots in use to total slots (0.0 to
// 1.0). Returns 0.0 if the arena has no capacity.
func (a *Arena[T]) Utilization() float64 {
	capacity := a.SlotCapacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SlotsInUse()) / float64(capacity)
}

// ChunkLen returns the configured chunk length used when the arena
// grows.
func (a *Arena[T]) ChunkLen() int {
	return a.chunkLen
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() ArenaMetrics {
	var zero T
	elem := int(unsafe.Sizeof(zero))
	return ArenaMetrics{
		SlotsInUse:    a.SlotsInUse(),
		SlotCapacity:  a.SlotCapacity(),
		NumChunks:     a.NumChunks(),
		ChunkLen:      a.ChunkLen(),
		BytesInUse:    a.SlotsInUse() * elem,
		BytesCapacity: a.SlotCapacity() * elem,
		Utilization:   a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SlotsInUse    int     // Element slots currently carved out
	SlotCapacity  int     // Total element slots across all chunks
	NumChunks     int     // Number of chunks
	ChunkLen      int     // Configured chunk length in slots
	BytesInUse    int     // SlotsInUse in bytes
	BytesCapacity int     // SlotCapacity in bytes
	Utilization   float64 // Ratio of used to total slots (0.0-1.0)
}

// Thread-safe metrics for SafeArena

// SlotsInUse thread-safely returns the number of slots currently carved
// out.
func (s *SafeArena[T]) SlotsInUse() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SlotsInUse()
}

// NumChunks thread-safely returns the number of chunks currently held.
func (s *SafeArena[T]) NumChunks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.NumChunks()
}

// SlotCapacity thread-safely returns the total slots across all chunks.
func (s *SafeArena[T]) SlotCapacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SlotCapacity()
}

// Utilization thread-safely returns the ratio of slots in use to total
// slots.
func (s *SafeArena[T]) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// ChunkLen thread-safely returns the configured chunk length.
func (s *SafeArena[T]) ChunkLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.ChunkLen()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena[T]) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}

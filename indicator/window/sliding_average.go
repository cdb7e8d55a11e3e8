package window

import (
	"fmt"

	"github.com/evdnx/movavg/indicator/core"
)

// SlidingAverage is a simple moving average over the last capacity samples,
// kept in a circular buffer with a running sum so every Update is O(1).
//
// Integer element types are summed in a 128-bit accumulator and divided with
// truncation toward zero. Float element types are summed in a float64; the
// repeated add/subtract drifts over very long runs, which is accepted rather
// than corrected with periodic re-summing.
//
// A SlidingAverage is not safe for concurrent use.
type SlidingAverage[T core.Number] struct {
	kind   core.Kind
	buffer []T
	index  int // next slot to overwrite, in [0, len(buffer)]
	sum    core.Wide
	fsum   float64
	filled bool // true once index has wrapped at least once
	value  T
}

/*
   Constructors
   ------------

   NewSlidingAverage creates an empty window.

   NewSlidingAverageWithParams creates a window pre-seeded with an initial
   value. Functional options tweak capacity validation.
*/

// NewSlidingAverage creates a window of the given capacity with no samples.
func NewSlidingAverage[T core.Number](capacity int, opts ...Option) (*SlidingAverage[T], error) {
	return NewSlidingAverageWithParams[T](capacity, 0, opts...)
}

// NewSlidingAverageWithParams creates a window of the given capacity. A
// non-zero initial value fills every slot as if capacity copies of it had
// already been pushed; a zero initial value leaves the window empty.
//
// A capacity of 0 is clamped to 1 unless WithStrictCapacity is set. Negative
// capacities yield core.ErrInvalidArgument, capacities above the allowed
// maximum yield core.ErrAllocationFailure.
func NewSlidingAverageWithParams[T core.Number](capacity int, initial T, opts ...Option) (*SlidingAverage[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	switch {
	case capacity < 0:
		return nil, fmt.Errorf("%w: capacity must not be negative, got %d", core.ErrInvalidArgument, capacity)
	case capacity == 0 && o.strictCapacity:
		return nil, fmt.Errorf("%w: capacity must be at least 1", core.ErrInvalidArgument)
	case capacity == 0:
		capacity = 1
	}
	if capacity > o.maxCapacity {
		return nil, fmt.Errorf("%w: capacity %d exceeds limit %d", core.ErrAllocationFailure, capacity, o.maxCapacity)
	}

	buffer, err := allocate[T](capacity)
	if err != nil {
		return nil, err
	}

	s := &SlidingAverage[T]{
		kind:   core.KindOf[T](),
		buffer: buffer,
	}
	if initial != 0 {
		s.SetValue(initial)
	}
	return s, nil
}

// allocate turns a runtime allocation panic into core.ErrAllocationFailure.
func allocate[T core.Number](n int) (buf []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = fmt.Errorf("%w: %d samples: %v", core.ErrAllocationFailure, n, r)
		}
	}()
	return make([]T, n), nil
}

/* ---------- Public API ---------- */

// Update pushes v into the window, evicting the oldest sample once the window
// is full, and returns the new average.
//
// Until the window has wrapped once the average is taken over the samples
// pushed so far, not over the full capacity. On a released window Update
// does nothing and returns the zero value.
func (s *SlidingAverage[T]) Update(v T) T {
	n := len(s.buffer)
	if n == 0 {
		return 0
	}
	if s.index == n {
		s.index = 0
		s.filled = true
	}

	s.accumulate(v, s.buffer[s.index])
	s.buffer[s.index] = v
	s.index++

	count := s.index
	if s.filled {
		count = n
	}
	s.value = s.average(count)
	return s.value
}

// Value returns the last computed average without recomputing it.
func (s *SlidingAverage[T]) Value() T {
	return s.value
}

// SetValue resets the window to a steady state holding only v.
func (s *SlidingAverage[T]) SetValue(v T) {
	for i := range s.buffer {
		s.buffer[i] = v
	}
	n := uint64(len(s.buffer))
	switch s.kind {
	case core.FloatKind:
		s.fsum = float64(v) * float64(n)
	case core.SignedKind:
		s.sum = core.WideFromInt(int64(v)).MulUint64(n)
	default:
		s.sum = core.WideFromUint(uint64(v)).MulUint64(n)
	}
	s.filled = true
	s.value = v
}

// Reset clears every sample while keeping the capacity.
func (s *SlidingAverage[T]) Reset() {
	clear(s.buffer)
	s.index = 0
	s.sum = core.Wide{}
	s.fsum = 0
	s.filled = false
	s.value = 0
}

// Capacity returns the number of samples the window retains.
func (s *SlidingAverage[T]) Capacity() int {
	return len(s.buffer)
}

// Len returns how many samples currently contribute to the average.
func (s *SlidingAverage[T]) Len() int {
	if s.filled {
		return len(s.buffer)
	}
	return s.index
}

// Filled reports whether the write position has wrapped at least once, or the
// window was seeded. A window that has seen exactly Capacity samples is not
// yet Filled, although Len already equals Capacity.
func (s *SlidingAverage[T]) Filled() bool {
	return s.filled
}

// Samples returns the contributing samples in chronological order (oldest
// first) as a copy.
func (s *SlidingAverage[T]) Samples() []T {
	if !s.filled {
		return core.CopySlice(s.buffer[:s.index])
	}
	out := make([]T, 0, len(s.buffer))
	out = append(out, s.buffer[s.index:]...)
	return append(out, s.buffer[:s.index]...)
}

/* ---------- Ownership ---------- */

// Clone returns a deep copy; the two windows are independent afterwards.
func (s *SlidingAverage[T]) Clone() *SlidingAverage[T] {
	c := *s
	c.buffer = core.CopySlice(s.buffer)
	return &c
}

// Move transfers the buffer and all state to a new window and leaves s
// released. s stays usable as an empty window.
func (s *SlidingAverage[T]) Move() *SlidingAverage[T] {
	m := *s
	s.Release()
	return &m
}

// Release drops the buffer and resets s to the empty state. Calling it more
// than once is harmless.
func (s *SlidingAverage[T]) Release() {
	kind := core.KindOf[T]()
	*s = SlidingAverage[T]{kind: kind}
}

/* ---------- Accumulation ---------- */

func (s *SlidingAverage[T]) accumulate(in, out T) {
	switch s.kind {
	case core.FloatKind:
		s.fsum += float64(in) - float64(out)
	case core.SignedKind:
		s.sum = s.sum.Add(core.WideFromInt(int64(in))).Sub(core.WideFromInt(int64(out)))
	default:
		s.sum = s.sum.Add(core.WideFromUint(uint64(in))).Sub(core.WideFromUint(uint64(out)))
	}
}

func (s *SlidingAverage[T]) average(count int) T {
	switch s.kind {
	case core.FloatKind:
		return T(s.fsum / float64(count))
	case core.SignedKind:
		return T(s.sum.Quo(uint64(count)).Int64())
	default:
		return T(s.sum.Quo(uint64(count)).Uint64())
	}
}

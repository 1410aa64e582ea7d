// Package simdpp provides fixed-width SIMD vectors and masks with a
// reinterpret-cast core, following the libsimdpp design.
//
// Vectors always span one full hardware register for the active dispatch
// level (see CurrentWidth), so any two full vectors occupy the same number
// of bytes and may be bit-cast into each other. Masks are boolean-lane
// containers that physically alias a vector of their base element kind,
// using the all-ones/all-zeros per-lane encoding.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-simdpp/simdpp"
//
//	a := simdpp.Load(f32data)
//	bits := simdpp.BitCast[uint32](a)   // reinterpret float32 lanes as uint32
//	m := simdpp.NotEqual(a, simdpp.Zero[float32]())
//	raw := simdpp.Unmask(m)             // all-ones/all-zeros vector
package simdpp

// Floats is a constraint for floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer lane types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer lane types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Lanes8 is a constraint for 8-bit lane types. The LanesN constraints
// classify lane types by element width; mask-to-mask casts are only defined
// between masks of the same width class (see CastMask8 and friends).
type Lanes8 interface {
	~int8 | ~uint8
}

// Lanes16 is a constraint for 16-bit lane types.
type Lanes16 interface {
	~int16 | ~uint16
}

// Lanes32 is a constraint for 32-bit lane types.
type Lanes32 interface {
	~int32 | ~uint32 | ~float32
}

// Lanes64 is a constraint for 64-bit lane types.
type Lanes64 interface {
	~int64 | ~uint64 | ~float64
}

// Vec is a portable fixed-width vector. Vectors produced by Load, Set, Zero,
// and Iota always have MaxLanes[T]() lanes, i.e. they span exactly one
// register of the current dispatch width.
//
// Vec instances should not be created directly; use Load, Set, or Zero.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the simdpp.Store function.
func (v Vec[T]) Store(dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Mask represents a vector of boolean lanes, as produced by the comparison
// operations. Its physical representation is the base vector type of T with
// every true lane holding the all-ones bit pattern and every false lane
// holding zero; Unmask materializes that representation.
//
// Mask instances should not be created directly; use comparison operations
// like Equal and NotEqual, or SetMask.
type Mask[T Lanes] struct {
	bits []bool
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return len(m.bits)
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask[T]) AllTrue() bool {
	for _, bit := range m.bits {
		if !bit {
			return false
		}
	}
	return true
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask[T]) AnyTrue() bool {
	for _, bit := range m.bits {
		if bit {
			return true
		}
	}
	return false
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask[T]) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit {
			count++
		}
	}
	return count
}

// FindFirstTrue returns the index of the first active lane, or -1 if none.
func (m Mask[T]) FindFirstTrue() int {
	for i, bit := range m.bits {
		if bit {
			return i
		}
	}
	return -1
}

// GetBit returns whether lane i is active.
func (m Mask[T]) GetBit(i int) bool {
	if i < 0 || i >= len(m.bits) {
		return false
	}
	return m.bits[i]
}

package simdpp

import "math"

// This file provides mask constructors, logical operations, and the
// physical encoding table mapping each lane kind to its all-ones value.

// SetMask creates a mask from a slice of booleans. At most MaxLanes[T]()
// lanes are taken; a shorter slice yields a shorter mask.
func SetMask[T Lanes](lanes []bool) Mask[T] {
	n := min(len(lanes), MaxLanes[T]())
	bits := make([]bool, n)
	copy(bits, lanes[:n])
	return Mask[T]{bits: bits}
}

// MaskFalse creates a mask with all lanes false.
func MaskFalse[T Lanes]() Mask[T] {
	return Mask[T]{bits: make([]bool, MaxLanes[T]())}
}

// MaskTrue creates a mask with all lanes true.
func MaskTrue[T Lanes]() Mask[T] {
	bits := make([]bool, MaxLanes[T]())
	for i := range bits {
		bits[i] = true
	}
	return Mask[T]{bits: bits}
}

// MaskAnd returns the lane-wise AND of two masks.
func MaskAnd[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(b.bits), len(a.bits))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.bits[i] && b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskOr returns the lane-wise OR of two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(b.bits), len(a.bits))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.bits[i] || b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskXor returns the lane-wise XOR of two masks.
func MaskXor[T Lanes](a, b Mask[T]) Mask[T] {
	n := min(len(b.bits), len(a.bits))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = a.bits[i] != b.bits[i]
	}
	return Mask[T]{bits: bits}
}

// MaskNot returns the lane-wise complement of a mask.
func MaskNot[T Lanes](m Mask[T]) Mask[T] {
	bits := make([]bool, len(m.bits))
	for i := range m.bits {
		bits[i] = !m.bits[i]
	}
	return Mask[T]{bits: bits}
}

// maskTrueBits returns the physical value of a true mask lane for type T:
// the all-ones bit pattern of T's width. For float kinds this is a NaN bit
// pattern; only the bits matter, not the numeric value.
//
// Every supported lane kind must have an entry here. An unlisted kind is a
// bug in the constraint set, not a case to paper over with a default value.
func maskTrueBits[T Lanes]() T {
	var zero T
	switch any(zero).(type) {
	case int8:
		return any(int8(-1)).(T)
	case int16:
		return any(int16(-1)).(T)
	case int32:
		return any(int32(-1)).(T)
	case int64:
		return any(int64(-1)).(T)
	case uint8:
		return any(^uint8(0)).(T)
	case uint16:
		return any(^uint16(0)).(T)
	case uint32:
		return any(^uint32(0)).(T)
	case uint64:
		return any(^uint64(0)).(T)
	case float32:
		return any(math.Float32frombits(^uint32(0))).(T)
	case float64:
		return any(math.Float64frombits(^uint64(0))).(T)
	default:
		panic("simdpp: unsupported lane kind")
	}
}

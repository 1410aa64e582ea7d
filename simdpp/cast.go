// Copyright 2025 go-simdpp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package simdpp

import "unsafe"

// This file implements the reinterpret-cast core. Four cases exist,
// resolved entirely by the type system:
//
//	vector -> vector:  BitCast          (raw byte reinterpretation)
//	mask   -> vector:  CastToVec        (unmask, then raw byte copy)
//	mask   -> mask:    CastMask8/16/32/64 with a MaskCast strategy
//	vector -> mask:    no such operation
//
// The last case is deliberate: a mask's lanes must hold all-ones or
// all-zeros words, and reinterpreting arbitrary vector bits as a mask would
// silently break every subsequent masked operation. The only way to obtain a
// mask from vector data is a comparison (for example NotEqual against Zero),
// which recomputes lane truth instead of trusting bits.

// MaskCast selects how a mask-to-mask cast treats the physical
// representation. All three strategies agree for masks holding the canonical
// all-ones/all-zeros encoding; they differ in how much of that encoding they
// trust.
type MaskCast int

const (
	// MaskCastBits reinterprets the mask's storage directly.
	MaskCastBits MaskCast = iota

	// MaskCastUnmask strips the source down to its base vector
	// representation, bit-copies it, and adopts the result as the
	// destination mask's storage.
	MaskCastUnmask

	// MaskCastRemask bit-copies the source's base vector representation and
	// rebuilds the destination mask with a not-equal-to-zero comparison.
	// Every nonzero lane becomes true, every zero lane false, restoring the
	// mask invariant regardless of the source's bit patterns.
	MaskCastRemask
)

// castBytes copies the raw storage of src into a freshly allocated slice of
// R, byte for byte. The source byte length must divide exactly into R lanes;
// full-width vectors of one dispatch level always satisfy this, since every
// register spans CurrentWidth bytes regardless of lane type.
func castBytes[R, T Lanes](src []T) []R {
	var t T
	var r R
	srcBytes := len(src) * int(unsafe.Sizeof(t))
	dstSize := int(unsafe.Sizeof(r))
	if srcBytes%dstSize != 0 {
		panic("simdpp: size mismatch")
	}
	n := srcBytes / dstSize
	dst := make([]R, n)
	if n > 0 {
		copy(
			unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), srcBytes),
			unsafe.Slice((*byte)(unsafe.Pointer(&src[0])), srcBytes),
		)
	}
	return dst
}

// BitCast reinterprets the bytes of a vector as a vector of another lane
// type, performing no value conversion. The result does not alias the
// source. The total byte size is preserved, so the lane count scales by the
// ratio of the element widths: bit-casting a full 8-lane float32 vector
// yields a full 4-lane uint64 vector.
//
//	bits := simdpp.BitCast[uint32](f32vec)
func BitCast[R, T Lanes](v Vec[T]) Vec[R] {
	return Vec[R]{data: castBytes[R](v.data)}
}

// Unmask returns the base vector representation of a mask: every true lane
// becomes the all-ones bit pattern of T and every false lane becomes zero.
//
// Remask-style rebuilding (and therefore CastToVec followed by a comparison
// against Zero) is only correct because this representation encodes true
// lanes as nonzero words; that convention is part of the contract between
// masks and the cast core.
func Unmask[T Lanes](m Mask[T]) Vec[T] {
	data := make([]T, len(m.bits))
	ones := maskTrueBits[T]()
	for i, bit := range m.bits {
		if bit {
			data[i] = ones
		}
	}
	return Vec[T]{data: data}
}

// CastToVec reinterprets a mask as a non-mask vector of any equal-size lane
// type: the mask is stripped down to its base vector representation, then
// bit-copied. There is no width-class restriction here; only the total byte
// size must agree, as with BitCast.
func CastToVec[R, T Lanes](m Mask[T]) Vec[R] {
	return BitCast[R](Unmask(m))
}

// castMask dispatches a mask-to-mask cast on the requested strategy.
// Callers reach this through the per-width-class entry points below, which
// is where the equal-element-width requirement is enforced.
func castMask[R, T Lanes](m Mask[T], strategy MaskCast) Mask[R] {
	switch strategy {
	case MaskCastBits:
		// Same width class means same lane count, so reinterpreting the
		// storage preserves the lane pattern exactly.
		bits := make([]bool, len(m.bits))
		copy(bits, m.bits)
		return Mask[R]{bits: bits}
	case MaskCastUnmask:
		rep := castBytes[R](Unmask(m).data)
		bits := make([]bool, len(rep))
		var zero R
		for i, lane := range rep {
			bits[i] = lane != zero
		}
		return Mask[R]{bits: bits}
	case MaskCastRemask:
		rep := Vec[R]{data: castBytes[R](Unmask(m).data)}
		return NotEqual(rep, Zero[R]())
	default:
		panic("simdpp: unknown mask cast strategy")
	}
}

// CastMask8 casts between masks over 8-bit lanes.
//
// Mask-to-mask casts are only defined between masks of the same element
// width; the CastMaskN entry points encode that requirement in their
// constraints, so a cross-width cast does not compile.
func CastMask8[R, T Lanes8](m Mask[T], strategy MaskCast) Mask[R] {
	return castMask[R](m, strategy)
}

// CastMask16 casts between masks over 16-bit lanes.
func CastMask16[R, T Lanes16](m Mask[T], strategy MaskCast) Mask[R] {
	return castMask[R](m, strategy)
}

// CastMask32 casts between masks over 32-bit lanes.
func CastMask32[R, T Lanes32](m Mask[T], strategy MaskCast) Mask[R] {
	return castMask[R](m, strategy)
}

// CastMask64 casts between masks over 64-bit lanes.
func CastMask64[R, T Lanes64](m Mask[T], strategy MaskCast) Mask[R] {
	return castMask[R](m, strategy)
}

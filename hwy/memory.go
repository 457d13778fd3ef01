package hwy

import (
	"errors"
	"fmt"
	"unsafe"
)

// This file provides aligned storage and the load/store boundary between
// Float32x8 values and memory.

// CacheLineSize is the alignment of AlignedBuffer backing arrays. It is a
// multiple of VectorAlignment and also satisfies 512-bit registers.
const CacheLineSize = 64

// ErrAlignment is returned (or panicked with, in debug builds) when a raw
// slice handed to LoadAligned or StoreAligned is not VectorAlignment aligned
// or holds fewer than NumLanes elements.
var ErrAlignment = errors.New("hwy: misaligned vector memory")

// AlignmentError describes an alignment precondition failure.
type AlignmentError struct {
	Addr uintptr // address of the first element, 0 for an empty slice
	Len  int     // slice length
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("%v: addr=%#x len=%d (need %d-byte alignment and %d lanes)",
		ErrAlignment, e.Addr, e.Len, VectorAlignment, NumLanes)
}

func (e *AlignmentError) Unwrap() error { return ErrAlignment }

// checkAligned returns nil when s can back a full vector load or store.
func checkAligned(s []float32) error {
	if len(s) < NumLanes {
		var addr uintptr
		if len(s) > 0 {
			addr = uintptr(unsafe.Pointer(&s[0]))
		}
		return &AlignmentError{Addr: addr, Len: len(s)}
	}
	addr := uintptr(unsafe.Pointer(&s[0]))
	if addr%VectorAlignment != 0 {
		return &AlignmentError{Addr: addr, Len: len(s)}
	}
	return nil
}

// IsAligned reports whether s starts on a VectorAlignment boundary and holds
// at least one full vector.
func IsAligned(s []float32) bool {
	return checkAligned(s) == nil
}

// LoadAligned loads 8 lanes from src in memory order.
//
// src must hold at least NumLanes elements and &src[0] must be
// VectorAlignment aligned. Built with -tags hwydebug, a violation panics with
// an *AlignmentError. In release builds the check is compiled out and the
// precondition is the caller's responsibility.
func LoadAligned(src []float32) Float32x8 {
	if debugChecks {
		if err := checkAligned(src); err != nil {
			panic(err)
		}
	}
	var v Float32x8
	copy(v.lanes[:], src[:NumLanes])
	return v
}

// TryLoadAligned is LoadAligned with the precondition always checked.
func TryLoadAligned(src []float32) (Float32x8, error) {
	if err := checkAligned(src); err != nil {
		return Float32x8{}, err
	}
	var v Float32x8
	copy(v.lanes[:], src[:NumLanes])
	return v, nil
}

// StoreAligned writes the 8 lanes of v to dst in memory order.
// It has the same precondition and debug behavior as LoadAligned.
func (v Float32x8) StoreAligned(dst []float32) {
	if debugChecks {
		if err := checkAligned(dst); err != nil {
			panic(err)
		}
	}
	copy(dst[:NumLanes], v.lanes[:])
}

// TryStoreAligned is StoreAligned with the precondition always checked.
func (v Float32x8) TryStoreAligned(dst []float32) error {
	if err := checkAligned(dst); err != nil {
		return err
	}
	copy(dst[:NumLanes], v.lanes[:])
	return nil
}

// AlignedBuffer is float32 storage whose backing array starts on a
// CacheLineSize boundary and whose length is a multiple of NumLanes.
// Every offset that is a multiple of NumLanes is therefore a valid vector
// address for the lifetime of the buffer.
type AlignedBuffer struct {
	data []float32
}

// NewAlignedBuffer allocates a zeroed buffer holding at least n floats,
// rounded up to a whole number of vectors.
func NewAlignedBuffer(n int) *AlignedBuffer {
	if n < 0 {
		panic(fmt.Sprintf("hwy: negative buffer size %d", n))
	}
	size := AlignedSize(n)
	if size == 0 {
		return &AlignedBuffer{}
	}

	// Over-allocate so that an aligned window of size elements always fits.
	const pad = CacheLineSize / 4
	raw := make([]float32, size+pad)
	addr := uintptr(unsafe.Pointer(&raw[0]))
	offset := 0
	if mod := addr % CacheLineSize; mod != 0 {
		offset = int((CacheLineSize - mod) / 4)
	}
	buf := &AlignedBuffer{data: raw[offset : offset+size : offset+size]}
	if err := checkAligned(buf.data); err != nil {
		// Unreachable: float32 arrays are 4-byte aligned.
		panic(err)
	}
	return buf
}

// Len returns the number of floats in the buffer (a multiple of NumLanes).
func (b *AlignedBuffer) Len() int {
	return len(b.data)
}

// Data returns the aligned slice. Sub-slices starting at multiples of
// NumLanes may be passed to LoadAligned and StoreAligned.
func (b *AlignedBuffer) Data() []float32 {
	return b.data
}

// Load reads the vector starting at element offset, which must be a
// multiple of NumLanes within the buffer.
func Load(b *AlignedBuffer, offset int) Float32x8 {
	checkOffset(b, offset)
	var v Float32x8
	copy(v.lanes[:], b.data[offset:offset+NumLanes])
	return v
}

// Store writes v to the buffer starting at element offset, which must be a
// multiple of NumLanes within the buffer.
func Store(v Float32x8, b *AlignedBuffer, offset int) {
	checkOffset(b, offset)
	copy(b.data[offset:offset+NumLanes], v.lanes[:])
}

func checkOffset(b *AlignedBuffer, offset int) {
	if offset%NumLanes != 0 || offset < 0 || offset+NumLanes > len(b.data) {
		panic(fmt.Sprintf("hwy: vector offset %d out of range or unaligned (buffer len %d)", offset, len(b.data)))
	}
}

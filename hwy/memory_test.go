package hwy

import (
	"errors"
	"testing"
	"unsafe"
)

func TestNewAlignedBuffer(t *testing.T) {
	for _, n := range []int{1, 7, 8, 9, 63, 64, 1000} {
		buf := NewAlignedBuffer(n)
		if buf.Len() < n || buf.Len()%NumLanes != 0 {
			t.Errorf("NewAlignedBuffer(%d): Len = %d, want multiple of %d >= %d", n, buf.Len(), NumLanes, n)
		}
		addr := uintptr(unsafe.Pointer(&buf.Data()[0]))
		if addr%CacheLineSize != 0 {
			t.Errorf("NewAlignedBuffer(%d): addr %#x not %d-byte aligned", n, addr, CacheLineSize)
		}
		for off := 0; off < buf.Len(); off += NumLanes {
			if !IsAligned(buf.Data()[off:]) {
				t.Errorf("NewAlignedBuffer(%d): offset %d not vector aligned", n, off)
			}
		}
	}

	if got := NewAlignedBuffer(0).Len(); got != 0 {
		t.Errorf("NewAlignedBuffer(0): Len = %d, want 0", got)
	}
}

func TestLoadStore(t *testing.T) {
	buf := NewAlignedBuffer(16)
	for i := range buf.Data() {
		buf.Data()[i] = float32(i)
	}

	v := Load(buf, 8)
	for i := range NumLanes {
		if v.Lane(i) != float32(8+i) {
			t.Errorf("Load: lane %d: got %v, want %v", i, v.Lane(i), 8+i)
		}
	}

	Store(Add(v, One()), buf, 0)
	for i := range NumLanes {
		if buf.Data()[i] != float32(9+i) {
			t.Errorf("Store: element %d: got %v, want %v", i, buf.Data()[i], 9+i)
		}
	}
}

func TestLoadPanicsOnBadOffset(t *testing.T) {
	buf := NewAlignedBuffer(16)
	for _, off := range []int{-8, 3, 16} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Load(offset=%d): expected panic", off)
				}
			}()
			Load(buf, off)
		}()
	}
}

func TestLoadAligned(t *testing.T) {
	buf := NewAlignedBuffer(8)
	copy(buf.Data(), []float32{1, 2, 3, 4, 5, 6, 7, 8})

	v := LoadAligned(buf.Data())
	if v.String() != "[1, 2, 3, 4, 5, 6, 7, 8]" {
		t.Errorf("LoadAligned: got %v", v)
	}

	out := NewAlignedBuffer(8)
	v.StoreAligned(out.Data())
	for i, x := range out.Data() {
		if x != buf.Data()[i] {
			t.Errorf("StoreAligned: element %d: got %v, want %v", i, x, buf.Data()[i])
		}
	}
}

func TestTryLoadAligned(t *testing.T) {
	buf := NewAlignedBuffer(16)
	copy(buf.Data(), []float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15})

	t.Run("aligned", func(t *testing.T) {
		v, err := TryLoadAligned(buf.Data()[8:])
		if err != nil {
			t.Fatalf("TryLoadAligned: unexpected error: %v", err)
		}
		if v.Lane(0) != 8 || v.Lane(7) != 15 {
			t.Errorf("TryLoadAligned: got %v", v)
		}
	})

	t.Run("misaligned", func(t *testing.T) {
		_, err := TryLoadAligned(buf.Data()[1:])
		if !errors.Is(err, ErrAlignment) {
			t.Fatalf("TryLoadAligned: got %v, want ErrAlignment", err)
		}
		var ae *AlignmentError
		if !errors.As(err, &ae) || ae.Len != 15 {
			t.Errorf("TryLoadAligned: got %#v, want *AlignmentError with Len 15", err)
		}
	})

	t.Run("short", func(t *testing.T) {
		_, err := TryLoadAligned(buf.Data()[8:12])
		if !errors.Is(err, ErrAlignment) {
			t.Errorf("TryLoadAligned: got %v, want ErrAlignment", err)
		}
		_, err = TryLoadAligned(nil)
		if !errors.Is(err, ErrAlignment) {
			t.Errorf("TryLoadAligned(nil): got %v, want ErrAlignment", err)
		}
	})

	t.Run("store misaligned", func(t *testing.T) {
		err := Set(1).TryStoreAligned(buf.Data()[4:])
		if !errors.Is(err, ErrAlignment) {
			t.Errorf("TryStoreAligned: got %v, want ErrAlignment", err)
		}
		if buf.Data()[4] != 4 {
			t.Error("TryStoreAligned wrote through a misaligned slice")
		}
	})
}

func TestProcessWithTail(t *testing.T) {
	var full []int
	tailOffset, tailCount := -1, -1
	ProcessWithTail(21,
		func(offset int) { full = append(full, offset) },
		func(offset, count int) { tailOffset, tailCount = offset, count },
	)
	if len(full) != 2 || full[0] != 0 || full[1] != 8 {
		t.Errorf("ProcessWithTail: full offsets %v, want [0 8]", full)
	}
	if tailOffset != 16 || tailCount != 5 {
		t.Errorf("ProcessWithTail: tail (%d, %d), want (16, 5)", tailOffset, tailCount)
	}

	tailCalled := false
	ProcessWithTail(16, func(int) {}, func(int, int) { tailCalled = true })
	if tailCalled {
		t.Error("ProcessWithTail: tail called for exact multiple")
	}
}

func TestAlignedSize(t *testing.T) {
	tests := []struct{ in, want int }{{0, 0}, {1, 8}, {8, 8}, {9, 16}, {17, 24}}
	for _, tt := range tests {
		if got := AlignedSize(tt.in); got != tt.want {
			t.Errorf("AlignedSize(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

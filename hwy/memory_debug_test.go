//go:build hwydebug

package hwy

import (
	"errors"
	"testing"
)

func TestLoadAlignedPanicsInDebug(t *testing.T) {
	buf := NewAlignedBuffer(16)
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrAlignment) {
			t.Errorf("LoadAligned: recovered %v, want ErrAlignment panic", r)
		}
	}()
	LoadAligned(buf.Data()[1:])
}

func TestStoreAlignedPanicsInDebug(t *testing.T) {
	buf := NewAlignedBuffer(16)
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrAlignment) {
			t.Errorf("StoreAligned: recovered %v, want ErrAlignment panic", r)
		}
	}()
	One().StoreAligned(buf.Data()[2:])
}

package abi

import (
	"strings"
	"testing"
)

func TestArenaAlignment(t *testing.T) {
	a := NewArena()
	tests := []struct {
		name  string
		size  int
		align int
	}{
		{name: "byte", size: 1, align: 1},
		{name: "u32 after byte", size: 4, align: 4},
		{name: "u64 after u32", size: 8, align: 8},
		{name: "struct after odd payload", size: 152, align: 8},
		{name: "string payload", size: 13, align: 1},
		{name: "struct after string", size: 64, align: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := a.Alloc(tt.size, tt.align)
			if s.Size() != tt.size {
				t.Errorf("Size() = %d, want %d", s.Size(), tt.size)
			}
			if addr := s.Addr(); addr%uintptr(tt.align) != 0 {
				t.Errorf("Addr() = %#x, not %d-byte aligned", addr, tt.align)
			}
		})
	}
}

func TestArenaAddressesStayFixed(t *testing.T) {
	a := NewArena()
	// Enough segments to spill into a second chunk.
	var segs []*Seg
	var addrs []uintptr
	for i := 0; i < 2000; i++ {
		s := a.Alloc(64, 8)
		s.PutU32(0, uint32(i))
		segs = append(segs, s)
		addrs = append(addrs, s.Addr())
	}
	for i, s := range segs {
		if got := s.Addr(); got != addrs[i] {
			t.Fatalf("segment %d moved: %#x -> %#x", i, addrs[i], got)
		}
		if got := s.U32(0); got != uint32(i) {
			t.Fatalf("segment %d content = %d, want %d", i, got, i)
		}
	}
}

func TestArenaOversizeAllocation(t *testing.T) {
	a := NewArena()
	s := a.Alloc(arenaChunkSize+16, 8)
	if s.Size() != arenaChunkSize+16 {
		t.Fatalf("Size() = %d, want %d", s.Size(), arenaChunkSize+16)
	}
	s.PutU64(arenaChunkSize+8, 0xDEAD)
	if s.Addr() == 0 {
		t.Fatal("oversize segment has null address")
	}
}

func TestArenaZeroed(t *testing.T) {
	a := NewArena()
	s := a.Alloc(32, 8)
	s.PutU64(8, ^uint64(0))
	a.Reset()
	s2 := a.Alloc(32, 8)
	for off := 0; off < 32; off += 8 {
		if v := s2.U64(off); v != 0 {
			t.Fatalf("offset %d = %#x after reset, want 0", off, v)
		}
	}
}

func TestSegEmptyAddr(t *testing.T) {
	a := NewArena()
	if addr := a.Alloc(0, 1).Addr(); addr != 0 {
		t.Errorf("empty segment Addr() = %#x, want 0", addr)
	}
}

func TestSegWriteAfterSealPanics(t *testing.T) {
	a := NewArena()
	s := a.Alloc(16, 8)
	s.PutU32(0, 7)
	s.Addr()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("write after Addr did not panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "after address capture") {
			t.Fatalf("unexpected panic value: %v", r)
		}
	}()
	s.PutU32(4, 9)
}

func TestSegOutOfRangeWritePanics(t *testing.T) {
	a := NewArena()
	s := a.Alloc(16, 8)
	defer func() {
		if recover() == nil {
			t.Fatal("out-of-range write did not panic")
		}
	}()
	s.PutU64(12, 1)
}

func TestSegBadAlignPanics(t *testing.T) {
	a := NewArena()
	defer func() {
		if recover() == nil {
			t.Fatal("Alloc with align 16 did not panic")
		}
	}()
	a.Alloc(8, 16)
}

package abi

import (
	"encoding/binary"
	"fmt"
	"math"
	"unsafe"
)

const arenaChunkSize = 64 * 1024

// Arena is a bump allocator over fixed chunks. A segment's backing memory
// never moves after Alloc returns, so an address captured from a sealed
// segment stays valid until the arena itself is collected. Callers keep the
// arena reachable (runtime.KeepAlive) across the native call that reads from
// it.
//
// Chunk bases come from the Go heap and are at least 8-byte aligned, which
// covers every alignment the native structures need.
type Arena struct {
	cur  []byte
	off  int
	full [][]byte
}

func NewArena() *Arena {
	return &Arena{}
}

// Alloc returns a zeroed segment of the given size and alignment.
func (a *Arena) Alloc(size, align int) *Seg {
	if size < 0 || align <= 0 || align&(align-1) != 0 || align > 8 {
		panic(fmt.Sprintf("abi: bad allocation size=%d align=%d", size, align))
	}
	if size > arenaChunkSize {
		chunk := make([]byte, size)
		a.full = append(a.full, chunk)
		return &Seg{buf: chunk}
	}
	off := alignTo(a.off, align)
	if a.cur == nil || off+size > len(a.cur) {
		if a.cur != nil {
			a.full = append(a.full, a.cur)
		}
		a.cur = make([]byte, arenaChunkSize)
		off = 0
	}
	seg := &Seg{buf: a.cur[off : off+size : off+size]}
	a.off = off + size
	return seg
}

// Reset recycles the arena for a new encode. Previously handed-out segments
// and their captured addresses become invalid.
func (a *Arena) Reset() {
	a.full = nil
	if a.cur != nil {
		clear(a.cur[:a.off])
	}
	a.off = 0
}

// Seg is a fixed-size, zero-initialized memory segment for one native
// structure or array. Writes are offset-addressed. Addr seals the segment
// and any later write panics, which keeps pointer capture strictly after
// the final write even under an allocator that relocates on write (test
// doubles do).
type Seg struct {
	buf    []byte
	sealed bool
	// reloc, when set, swaps the backing before every write. Only allocator
	// test doubles set it; Arena leaves it nil.
	reloc func([]byte) []byte
}

func (s *Seg) slot(off, n int) []byte {
	if s.sealed {
		panic("abi: write to segment after address capture")
	}
	if off < 0 || n < 0 || off+n > len(s.buf) {
		panic(fmt.Sprintf("abi: write [%d,%d) outside %d-byte segment", off, off+n, len(s.buf)))
	}
	if s.reloc != nil {
		s.buf = s.reloc(s.buf)
	}
	return s.buf[off : off+n]
}

func (s *Seg) PutU16(off int, v uint16) { binary.LittleEndian.PutUint16(s.slot(off, 2), v) }
func (s *Seg) PutU32(off int, v uint32) { binary.LittleEndian.PutUint32(s.slot(off, 4), v) }
func (s *Seg) PutU64(off int, v uint64) { binary.LittleEndian.PutUint64(s.slot(off, 8), v) }

func (s *Seg) PutI32(off int, v int32)   { s.PutU32(off, uint32(v)) }
func (s *Seg) PutF32(off int, v float32) { s.PutU32(off, math.Float32bits(v)) }
func (s *Seg) PutF64(off int, v float64) { s.PutU64(off, math.Float64bits(v)) }

// PutPtr writes a native pointer or opaque handle.
func (s *Seg) PutPtr(off int, p uintptr) { s.PutU64(off, uint64(p)) }

// PutUsize writes a size_t.
func (s *Seg) PutUsize(off, n int) { s.PutU64(off, uint64(n)) }

// PutBool writes a WGPUBool (32-bit 0/1).
func (s *Seg) PutBool(off int, b bool) {
	v := uint32(0)
	if b {
		v = 1
	}
	s.PutU32(off, v)
}

func (s *Seg) PutBytes(off int, b []byte) { copy(s.slot(off, len(b)), b) }

// Addr seals the segment and returns its native address. An empty segment
// encodes as a null pointer.
func (s *Seg) Addr() uintptr {
	s.sealed = true
	if len(s.buf) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&s.buf[0]))
}

// Size reports the segment length in bytes.
func (s *Seg) Size() int { return len(s.buf) }

// Read accessors, used by decoders and tests. Valid before and after sealing.

func (s *Seg) U16(off int) uint16 { return binary.LittleEndian.Uint16(s.buf[off : off+2]) }
func (s *Seg) U32(off int) uint32 { return binary.LittleEndian.Uint32(s.buf[off : off+4]) }
func (s *Seg) U64(off int) uint64 { return binary.LittleEndian.Uint64(s.buf[off : off+8]) }
func (s *Seg) F32(off int) float32 { return math.Float32frombits(s.U32(off)) }
func (s *Seg) F64(off int) float64 { return math.Float64frombits(s.U64(off)) }
func (s *Seg) Ptr(off int) uintptr { return uintptr(s.U64(off)) }

// Bytes exposes the current backing for decode helpers.
func (s *Seg) Bytes() []byte { return s.buf }

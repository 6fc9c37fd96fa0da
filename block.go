package arraylist

import "math/bits"

// block คือบัฟเฟอร์ต่อเนื่องความจุคงที่หนึ่งก้อนใน directory
// block is a single fixed-capacity contiguous buffer in the directory.
// The live element count is len(items) and the fixed capacity is
// cap(items); the backing array is never reallocated for the lifetime of
// the block. Growing the list always means allocating a new block, never
// resizing an existing one.
type block[T any] struct {
	items []T
}

func (b *block[T]) count() int    { return len(b.items) }
func (b *block[T]) capacity() int { return cap(b.items) }
func (b *block[T]) full() bool    { return len(b.items) == cap(b.items) }

func (b *block[T]) get(off int) T    { return b.items[off] }
func (b *block[T]) set(off int, v T) { b.items[off] = v }

// push appends v to the block. Appending to a full block is a programming
// error; the directory is required to grow before every append.
func (b *block[T]) push(v T) {
	if b.full() {
		panic("arraylist: block capacity exceeded")
	}
	b.items = append(b.items, v)
}

// insertAt เลื่อนรายการตั้งแต่ off ไปทางขวาหนึ่งตำแหน่ง แล้ววาง v ลงที่ off
// insertAt shifts the elements at and after off one slot right and stores v
// at off. The block must not be full.
func (b *block[T]) insertAt(off int, v T) {
	if b.full() {
		panic("arraylist: block capacity exceeded")
	}
	var zero T
	b.items = append(b.items, zero)
	copy(b.items[off+1:], b.items[off:])
	b.items[off] = v
}

// insertShift stores v at off in a full block, shifting the tail right and
// returning the evicted last element. This is the carry step of a
// mid-sequence insert: the evicted element moves into the next block.
func (b *block[T]) insertShift(off int, v T) T {
	out := b.items[len(b.items)-1]
	copy(b.items[off+1:], b.items[off:])
	b.items[off] = v
	return out
}

// removeAt ดึงรายการที่ off ออก เลื่อนส่วนที่เหลือมาปิดช่อง และคืนค่าที่ถูกดึงออก
// removeAt removes and returns the element at off, shifting later elements
// left by one. The vacated tail slot is zeroed so pointerful element types
// do not leak through the retained block capacity.
func (b *block[T]) removeAt(off int) T {
	out := b.items[off]
	last := len(b.items) - 1
	copy(b.items[off:], b.items[off+1:])
	var zero T
	b.items[last] = zero
	b.items = b.items[:last]
	return out
}

// pullFront removes and returns the first element of the block. Used to
// back-fill the gap left in the preceding block by an erase.
func (b *block[T]) pullFront() T {
	return b.removeAt(0)
}

// extend raises the live count by n, exposing zero-valued slots. n must fit
// in the remaining capacity.
func (b *block[T]) extend(n int) {
	if len(b.items)+n > cap(b.items) {
		panic("arraylist: block capacity exceeded")
	}
	b.items = b.items[:len(b.items)+n]
}

// truncate drops the last n live elements, zeroing the vacated slots.
func (b *block[T]) truncate(n int) {
	keep := len(b.items) - n
	clear(b.items[keep:])
	b.items = b.items[:keep]
}

// --- Block Allocator Abstraction ---

// blockAllocator is the allocation strategy for block buffers. It mirrors
// the usual split between plain heap allocation and a recycling strategy
// that holds released buffers for reuse.
// blockAllocator คือกลยุทธ์การจัดสรรบัฟเฟอร์ให้กับ block
// มีทั้งแบบจองจาก heap ตรงๆ และแบบหมุนเวียนบัฟเฟอร์เก่ากลับมาใช้ใหม่
type blockAllocator[T any] interface {
	alloc(capacity int) []T
	release(buf []T)
}

// heapAllocator is the default strategy: a fresh buffer per block, released
// buffers are left to the garbage collector.
type heapAllocator[T any] struct{}

func (heapAllocator[T]) alloc(capacity int) []T { return make([]T, 0, capacity) }
func (heapAllocator[T]) release(buf []T)        {}

// recycleAllocator retains released buffers in per-capacity-class free
// slots. Capacities follow the growth law, so at most one block of each
// class exists at a time and a slice indexed by log2(capacity) suffices.
// This avoids allocate/free churn for workloads that repeatedly cross a
// block boundary or Clear and refill.
type recycleAllocator[T any] struct {
	free [][]T
	// reuse counters, exposed for tests and the bench cmd
	reused   int
	retained int
}

func (a *recycleAllocator[T]) alloc(capacity int) []T {
	cls := bits.Len64(uint64(capacity)) - 1
	if cls < len(a.free) && a.free[cls] != nil {
		buf := a.free[cls]
		a.free[cls] = nil
		a.reused++
		return buf
	}
	return make([]T, 0, capacity)
}

func (a *recycleAllocator[T]) release(buf []T) {
	// Zero the whole backing array before parking it, for the same reason
	// block.removeAt zeroes vacated slots.
	full := buf[:cap(buf)]
	clear(full)
	cls := bits.Len64(uint64(cap(buf))) - 1
	for len(a.free) <= cls {
		a.free = append(a.free, nil)
	}
	a.free[cls] = buf[:0]
	a.retained++
}

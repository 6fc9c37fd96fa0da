// Package arraylist implements a growable, random-access list stored in
// multiple geometrically sized blocks instead of one reallocatable buffer.
// Appending never copies previously stored elements: when the list grows it
// allocates a fresh block whose capacity doubles the previous one, so the
// amortized append cost is independent of the list size. Random access
// stays O(1) because the block holding a logical index is a pure bit
// computation over the fixed growth law.
//
// Package arraylist คือ list ที่ขยายตัวได้และเข้าถึงแบบสุ่มได้ โดยเก็บข้อมูลใน
// block หลายก้อนที่มีขนาดเพิ่มขึ้นแบบเรขาคณิต แทนที่จะใช้บัฟเฟอร์เดียวที่ต้อง
// จองใหม่ทั้งก้อน การ append จึงไม่ต้องคัดลอกข้อมูลเดิมเลยเมื่อ list ขยายตัว
// และการเข้าถึงตามตำแหน่งยังคงเป็น O(1) ผ่านการคำนวณระดับบิตบนกฎการขยายที่คงที่
package arraylist

import "fmt"

// ArrayList is a random-access sequence of T backed by blocks of capacity
// base, 2*base, 4*base, and so on. The zero value is not ready to use; call
// New or one of the other constructors.
//
// An ArrayList is not safe for concurrent use: mutating operations require
// exclusive access, and read-only operations may only run concurrently with
// other reads. Any size-changing operation invalidates outstanding
// iterators.
//
// ArrayList คือลำดับข้อมูลชนิด T ที่เข้าถึงตามตำแหน่งได้ เก็บอยู่ใน block ขนาด
// base, 2*base, 4*base, ... ค่า zero value ยังไม่พร้อมใช้งาน ต้องสร้างผ่าน New
// หรือ constructor อื่น
//
// ArrayList ไม่ปลอดภัยต่อการใช้งานพร้อมกันหลาย goroutine: การแก้ไขต้องผูกขาด
// การเข้าถึง และการอ่านทำพร้อมกันได้เฉพาะกับการอ่านด้วยกันเท่านั้น
// ทุกการทำงานที่เปลี่ยนขนาดของ list จะทำให้ iterator ที่มีอยู่ใช้ไม่ได้อีก
type ArrayList[T any] struct {
	blocks   []block[T]        // directory: ลำดับของ block เรียงตามลำดับข้อมูล
	size     int               // จำนวนรายการทั้งหมด (maintained counter)
	capTotal int               // ผลรวมความจุของทุก block (maintained counter)
	baseBits uint              // ความจุของ block แรกคือ 1 << baseBits
	capLimit int               // เพดานความจุรวม, 0 คือไม่จำกัด
	alloc    blockAllocator[T] // กลยุทธ์การจัดสรรบัฟเฟอร์
	recycle  bool              // true เมื่อใช้ recycleAllocator
}

// Option is a function that configures an ArrayList.
// Option คือฟังก์ชันสำหรับกำหนดค่าของ ArrayList
type Option[T any] func(*ArrayList[T])

// WithBaseCapacity sets the capacity of the first block. The value is
// rounded up to a power of two, which the index arithmetic depends on.
// Subsequent blocks still double. The default base capacity is 1.
// WithBaseCapacity กำหนดความจุของ block แรก โดยจะปัดขึ้นเป็นกำลังของสอง
// (การคำนวณตำแหน่งระดับบิตต้องการเงื่อนไขนี้) ค่าเริ่มต้นคือ 1
func WithBaseCapacity[T any](n int) Option[T] {
	return func(l *ArrayList[T]) {
		if n > 0 {
			l.baseBits = baseBitsFor(n)
		}
	}
}

// WithRecycling keeps released block buffers for reuse instead of leaving
// them to the garbage collector. Useful for workloads that repeatedly
// shrink and regrow across a block boundary, or Clear and refill.
// WithRecycling เก็บบัฟเฟอร์ของ block ที่ถูกคืนแล้วไว้ใช้ซ้ำ แทนที่จะปล่อยให้
// garbage collector เก็บกวาด เหมาะกับงานที่หด/ขยายข้ามรอยต่อ block บ่อยๆ
// หรือ Clear แล้วเติมข้อมูลใหม่
func WithRecycling[T any]() Option[T] {
	return func(l *ArrayList[T]) {
		l.recycle = true
	}
}

// WithCapacityLimit caps the total capacity the list may allocate. Growth
// past the limit fails with ErrAllocation before any element is moved.
// WithCapacityLimit กำหนดเพดานความจุรวมที่ list จะจัดสรรได้ การขยายเกินเพดาน
// จะล้มเหลวด้วย ErrAllocation ก่อนที่ข้อมูลใดๆ จะถูกย้าย
func WithCapacityLimit[T any](n int) Option[T] {
	return func(l *ArrayList[T]) {
		if n > 0 {
			l.capLimit = n
		}
	}
}

// New creates an empty ArrayList.
// New สร้าง ArrayList ว่างเปล่า
func New[T any](opts ...Option[T]) *ArrayList[T] {
	l := &ArrayList[T]{}
	for _, opt := range opts {
		opt(l)
	}
	if l.recycle {
		l.alloc = &recycleAllocator[T]{}
	} else {
		l.alloc = heapAllocator[T]{}
	}
	return l
}

// NewFromSlice creates an ArrayList holding a copy of xs.
// NewFromSlice สร้าง ArrayList ที่เก็บสำเนาของ xs
func NewFromSlice[T any](xs []T, opts ...Option[T]) (*ArrayList[T], error) {
	l := New[T](opts...)
	if err := l.Append(xs...); err != nil {
		return nil, err
	}
	return l, nil
}

// Repeat creates an ArrayList holding n copies of v.
// Repeat สร้าง ArrayList ที่เก็บ v ซ้ำกัน n รายการ
func Repeat[T any](n int, v T, opts ...Option[T]) (*ArrayList[T], error) {
	l := New[T](opts...)
	if err := l.Fill(n, v); err != nil {
		return nil, err
	}
	return l, nil
}

// Len returns the number of elements in the list.
// Len คืนค่าจำนวนรายการทั้งหมดใน list
func (l *ArrayList[T]) Len() int { return l.size }

// Cap returns the total capacity of all allocated blocks.
// Cap คืนค่าผลรวมความจุของทุก block ที่จัดสรรแล้ว
func (l *ArrayList[T]) Cap() int { return l.capTotal }

// IsEmpty reports whether the list holds no elements.
func (l *ArrayList[T]) IsEmpty() bool { return l.size == 0 }

// At returns the element at index i, or ErrOutOfRange if i is not in
// [0, Len()).
// At คืนค่ารายการที่ตำแหน่ง i หรือ ErrOutOfRange หาก i อยู่นอกช่วง [0, Len())
func (l *ArrayList[T]) At(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, l.size)
	}
	blk, off := locate(i, l.baseBits)
	return l.blocks[blk].get(off), nil
}

// Get returns the element at index i. It is the unchecked counterpart of At
// and panics if i is out of range, like indexing a slice.
// Get คืนค่ารายการที่ตำแหน่ง i เป็นคู่ของ At แบบไม่คืน error
// และจะ panic เมื่อ i อยู่นอกช่วง เช่นเดียวกับการ index slice
func (l *ArrayList[T]) Get(i int) T {
	if i < 0 || i >= l.size {
		panic(fmt.Sprintf("arraylist: index %d out of range with length %d", i, l.size))
	}
	blk, off := locate(i, l.baseBits)
	return l.blocks[blk].get(off)
}

// Set stores v at index i, or returns ErrOutOfRange.
func (l *ArrayList[T]) Set(i int, v T) error {
	if i < 0 || i >= l.size {
		return fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, l.size)
	}
	blk, off := locate(i, l.baseBits)
	l.blocks[blk].set(off, v)
	return nil
}

// MustSet stores v at index i and panics if i is out of range. It is the
// unchecked counterpart of Set.
func (l *ArrayList[T]) MustSet(i int, v T) {
	if i < 0 || i >= l.size {
		panic(fmt.Sprintf("arraylist: index %d out of range with length %d", i, l.size))
	}
	blk, off := locate(i, l.baseBits)
	l.blocks[blk].set(off, v)
}

// First returns the first element, or ErrEmptyList.
func (l *ArrayList[T]) First() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, fmt.Errorf("%w: First", ErrEmptyList)
	}
	return l.blocks[0].get(0), nil
}

// Last returns the last element, or ErrEmptyList.
func (l *ArrayList[T]) Last() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, fmt.Errorf("%w: Last", ErrEmptyList)
	}
	// locate instead of the final directory block: Reserve may have left
	// empty blocks after the tail block.
	blk, off := locate(l.size-1, l.baseBits)
	return l.blocks[blk].get(off), nil
}

// Append adds the given values to the end of the list. The cost is
// amortized O(1) per value: growth allocates a new block and copies
// nothing. Returns ErrAllocation if the capacity limit would be exceeded,
// in which case the list is unchanged.
// Append เพิ่มค่าที่กำหนดต่อท้าย list ด้วยต้นทุน O(1) แบบ amortized ต่อหนึ่งค่า
// การขยายจะจัดสรร block ใหม่โดยไม่คัดลอกข้อมูลเดิมเลย
// คืนค่า ErrAllocation หากเกินเพดานความจุ ซึ่งในกรณีนั้น list จะไม่เปลี่ยนแปลง
func (l *ArrayList[T]) Append(vs ...T) error {
	if len(vs) == 0 {
		return nil
	}
	if err := l.ensureRoom(len(vs)); err != nil {
		return err
	}
	// ensureRoom ได้จัดสรร block ที่ต้องใช้ไว้ครบแล้ว จึงเหลือแค่เติมค่าลงไป
	// โดยเริ่มที่ block แรกที่ยังไม่เต็ม
	blk, _ := locate(l.size, l.baseBits)
	for _, v := range vs {
		if l.blocks[blk].full() {
			blk++
		}
		l.blocks[blk].push(v)
	}
	l.size += len(vs)
	return nil
}

// Pop removes and returns the last element, or ErrEmptyList. A trailing
// block left empty is released, except the sole base-capacity block.
// Pop ดึงรายการสุดท้ายออกและคืนค่ามัน หรือคืน ErrEmptyList หาก list ว่าง
func (l *ArrayList[T]) Pop() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, fmt.Errorf("%w: Pop", ErrEmptyList)
	}
	blk, off := locate(l.size-1, l.baseBits)
	v := l.blocks[blk].get(off)
	l.blocks[blk].truncate(1)
	l.size--
	l.shrinkTail()
	return v, nil
}

// Insert places v at index i, shifting every element at or after i one
// position toward the tail. i may equal Len(), which appends. The shift
// touches only the blocks from i's block onward; within each full block the
// displaced last element carries into the following block. Cost O(Len()-i).
// Insert วาง v ลงที่ตำแหน่ง i โดยเลื่อนรายการตั้งแต่ i เป็นต้นไป ไปทางท้าย
// หนึ่งตำแหน่ง การเลื่อนแตะเฉพาะ block ตั้งแต่ block ของ i เป็นต้นไปเท่านั้น
// รายการสุดท้ายของแต่ละ block ที่เต็มจะถูกส่งต่อ (carry) ไปยัง block ถัดไป
func (l *ArrayList[T]) Insert(i int, v T) error {
	if i < 0 || i > l.size {
		return fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, l.size)
	}
	if i == l.size {
		return l.Append(v)
	}
	if err := l.ensureRoom(1); err != nil {
		return err
	}
	blk, off := locate(i, l.baseBits)
	carry := v
	for {
		b := &l.blocks[blk]
		if !b.full() {
			// block สุดท้ายที่ยังมีที่ว่าง: วาง carry แล้วจบ
			b.insertAt(off, carry)
			break
		}
		carry = b.insertShift(off, carry)
		blk++
		off = 0
	}
	l.size++
	return nil
}

// Remove deletes and returns the element at index i. The gap is closed by
// pulling the first element of each subsequent block back, so no block is
// left with an internal hole. Cost O(Len()-i).
// Remove ลบรายการที่ตำแหน่ง i และคืนค่ามัน ช่องว่างจะถูกปิดโดยดึงรายการแรก
// ของ block ถัดๆ ไปย้อนกลับมาเติม จึงไม่มี block ใดมีรูโหว่ภายใน
func (l *ArrayList[T]) Remove(i int) (T, error) {
	if i < 0 || i >= l.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, l.size)
	}
	blk, off := locate(i, l.baseBits)
	out := l.blocks[blk].removeAt(off)
	for bi := blk + 1; bi < len(l.blocks) && l.blocks[bi].count() > 0; bi++ {
		l.blocks[bi-1].push(l.blocks[bi].pullFront())
	}
	l.size--
	l.shrinkTail()
	return out, nil
}

// InsertSlice places a copy of xs starting at index i, shifting the tail of
// the list right by len(xs) in bulk: one block-wise move of the tail and
// one block-wise write of xs, not an insert per element.
// InsertSlice วางสำเนาของ xs เริ่มที่ตำแหน่ง i โดยเลื่อนส่วนท้ายของ list ไป
// ทางขวาทีละช่วงเต็ม block ไม่ใช่แทรกทีละรายการ
func (l *ArrayList[T]) InsertSlice(i int, xs []T) error {
	if i < 0 || i > l.size {
		return fmt.Errorf("%w: index %d, len %d", ErrOutOfRange, i, l.size)
	}
	n := len(xs)
	if n == 0 {
		return nil
	}
	if err := l.ensureRoom(n); err != nil {
		return err
	}
	l.extendTail(n)
	l.moveRight(i+n, i, l.size-i)
	l.setRange(i, xs)
	l.size += n
	return nil
}

// RemoveRange deletes the elements in [first, last), pulling the tail of
// the list left by last-first in bulk.
// RemoveRange ลบรายการในช่วง [first, last) โดยดึงส่วนท้ายของ list มาทางซ้าย
// ทีละช่วงเต็ม block
func (l *ArrayList[T]) RemoveRange(first, last int) error {
	if first < 0 || last > l.size || first > last {
		return fmt.Errorf("%w: range [%d, %d), len %d", ErrOutOfRange, first, last, l.size)
	}
	n := last - first
	if n == 0 {
		return nil
	}
	l.moveLeft(first, last, l.size-last)
	l.truncateTail(n)
	l.size -= n
	return nil
}

// Clear removes all elements and releases every block back to the
// allocator. The growth law restarts from block 0. Calling Clear on an
// empty list is a no-op.
// Clear ลบรายการทั้งหมดและคืน block ทุกก้อนให้ allocator
// กฎการขยายจะเริ่มนับใหม่จาก block 0 การเรียก Clear ซ้ำไม่มีผลข้างเคียง
func (l *ArrayList[T]) Clear() {
	l.releaseAll()
}

// Reserve grows the directory along the growth law until the total
// capacity is at least n. Len() is unchanged.
// Reserve ขยาย directory ตามกฎการขยายจนกว่าความจุรวมจะถึงอย่างน้อย n
// โดยไม่เปลี่ยนค่า Len()
func (l *ArrayList[T]) Reserve(n int) error {
	for l.capTotal < n {
		if err := l.grow(); err != nil {
			return err
		}
	}
	return nil
}

// Assign replaces the contents of the list with a copy of xs. On
// ErrAllocation the list is left cleared, which is still a valid state.
// Assign แทนที่ข้อมูลทั้งหมดใน list ด้วยสำเนาของ xs
// หากเกิด ErrAllocation list จะอยู่ในสถานะว่างเปล่า ซึ่งยังเป็นสถานะที่ถูกต้อง
func (l *ArrayList[T]) Assign(xs []T) error {
	l.releaseAll()
	return l.Append(xs...)
}

// Fill replaces the contents of the list with n copies of v. The failure
// contract matches Assign.
func (l *ArrayList[T]) Fill(n int, v T) error {
	l.releaseAll()
	if n <= 0 {
		return nil
	}
	if err := l.ensureRoom(n); err != nil {
		return err
	}
	l.extendTail(n)
	for bi := range l.blocks {
		items := l.blocks[bi].items
		for j := range items {
			items[j] = v
		}
	}
	l.size = n
	return nil
}

// Swap exchanges the entire contents and configuration of two lists in
// O(1).
// Swap สลับข้อมูลและการตั้งค่าทั้งหมดของ list สองตัวในเวลา O(1)
func (l *ArrayList[T]) Swap(other *ArrayList[T]) {
	*l, *other = *other, *l
}

// Clone returns a deep copy of the list with the same configuration. The
// copy gets its own allocator state.
// Clone คืนสำเนาเชิงลึกของ list พร้อมการตั้งค่าเดิม
func (l *ArrayList[T]) Clone() (*ArrayList[T], error) {
	c := &ArrayList[T]{baseBits: l.baseBits, capLimit: l.capLimit, recycle: l.recycle}
	if c.recycle {
		c.alloc = &recycleAllocator[T]{}
	} else {
		c.alloc = heapAllocator[T]{}
	}
	if err := c.ensureRoom(l.size); err != nil {
		return nil, err
	}
	c.extendTail(l.size)
	// c may have fewer blocks than l: the source keeps reserved or
	// hysteresis blocks past its tail, the copy does not.
	for i := range c.blocks {
		copy(c.blocks[i].items, l.blocks[i].items)
	}
	c.size = l.size
	return c, nil
}

// Values returns the elements as a flat slice snapshot, in order.
// Values คืนสำเนาของรายการทั้งหมดเป็น slice เดียวเรียงตามลำดับ
func (l *ArrayList[T]) Values() []T {
	out := make([]T, 0, l.size)
	for i := range l.blocks {
		out = append(out, l.blocks[i].items...)
	}
	return out
}

// Range calls f for each element in order, passing the logical index and
// the value. Iteration stops when f returns false.
// Range เรียก f สำหรับแต่ละรายการตามลำดับ โดยส่งตำแหน่งและค่าให้
// การวนลูปจะหยุดเมื่อ f คืนค่า false
func (l *ArrayList[T]) Range(f func(i int, v T) bool) {
	i := 0
	for bi := range l.blocks {
		for _, v := range l.blocks[bi].items {
			if !f(i, v) {
				return
			}
			i++
		}
	}
}

// --- bulk movers ---
// The range operations above move whole tails of the list with one copy per
// block-run intersection. moveLeft walks forward and moveRight walks
// backward so overlapping source and destination ranges are safe, the same
// way copy is for a single slice.

// moveLeft copies n elements from logical position src to dst, dst < src.
func (l *ArrayList[T]) moveLeft(dst, src, n int) {
	for n > 0 {
		db, do := locate(dst, l.baseBits)
		sb, so := locate(src, l.baseBits)
		run := n
		if r := blockCapacity(db, l.baseBits) - do; r < run {
			run = r
		}
		if r := blockCapacity(sb, l.baseBits) - so; r < run {
			run = r
		}
		copy(l.blocks[db].items[do:do+run], l.blocks[sb].items[so:so+run])
		dst += run
		src += run
		n -= run
	}
}

// moveRight copies n elements from logical position src to dst, dst > src,
// iterating from the high end down.
func (l *ArrayList[T]) moveRight(dst, src, n int) {
	for n > 0 {
		db, do := locate(dst+n-1, l.baseBits)
		sb, so := locate(src+n-1, l.baseBits)
		run := n
		if do+1 < run {
			run = do + 1
		}
		if so+1 < run {
			run = so + 1
		}
		copy(l.blocks[db].items[do-run+1:do+1], l.blocks[sb].items[so-run+1:so+1])
		n -= run
	}
}

// setRange writes xs into the live slots starting at logical position i.
func (l *ArrayList[T]) setRange(i int, xs []T) {
	for len(xs) > 0 {
		blk, off := locate(i, l.baseBits)
		run := blockCapacity(blk, l.baseBits) - off
		if run > len(xs) {
			run = len(xs)
		}
		copy(l.blocks[blk].items[off:off+run], xs[:run])
		i += run
		xs = xs[run:]
	}
}

package arraylist

// Iterator provides positional iteration over an ArrayList without exposing
// block boundaries. The typical use is:
//
//	it := l.NewIterator()
//	for it.Next() {
//		i := it.Index()
//		v := it.Value()
//		// ...
//	}
//
// The iterator holds a logical position plus a cached (block, offset) pair.
// The cache is only an accelerator: single steps adjust it incrementally,
// and Seek and Move recompute it from the position, so arbitrary jumps stay
// O(1) and correct.
//
// An iterator does not own the list and is invalidated by any
// size-changing operation on it (Append, Pop, Insert, Remove, the range
// operations, Clear, Assign, Fill). Using an invalidated iterator is
// undefined.
//
// Iterator ใช้วนลูปตามตำแหน่งบน ArrayList โดยไม่เปิดเผยรอยต่อของ block
// ภายในเก็บตำแหน่งเชิงตรรกะคู่กับแคช (block, offset) ซึ่งเป็นเพียงตัวเร่ง
// ความเร็วเท่านั้น การก้าวทีละตำแหน่งจะปรับแคชแบบเพิ่มหน่วย ส่วน Seek และ
// Move จะคำนวณแคชใหม่จากตำแหน่งโดยตรง
//
// Iterator ไม่ได้เป็นเจ้าของ list และจะใช้ไม่ได้อีกหลังการทำงานใดๆ
// ที่เปลี่ยนขนาดของ list
type Iterator[T any] struct {
	l   *ArrayList[T]
	pos int // ตำแหน่งเชิงตรรกะ: -1 คือก่อนรายการแรก, l.size คือหลังรายการสุดท้าย
	blk int // แคช: block ของ pos
	off int // แคช: offset ภายใน block
}

// NewIterator returns an iterator positioned before the first element. A
// call to Next is required to advance to the first element.
// NewIterator คืน Iterator ที่ชี้ตำแหน่งก่อนรายการแรก
// ต้องเรียก Next ก่อนเพื่อเลื่อนไปยังรายการแรก
func (l *ArrayList[T]) NewIterator() *Iterator[T] {
	return &Iterator[T]{l: l, pos: -1}
}

// Next moves the iterator to the next element and returns true if one
// exists. It returns false and parks the iterator past the end otherwise.
// Next เลื่อน Iterator ไปยังรายการถัดไป คืนค่า true หากมีรายการนั้นอยู่
func (it *Iterator[T]) Next() bool {
	if it.pos+1 >= it.l.size {
		it.pos = it.l.size
		return false
	}
	if it.pos < 0 {
		it.pos, it.blk, it.off = 0, 0, 0
		return true
	}
	it.pos++
	it.off++
	if it.off == blockCapacity(it.blk, it.l.baseBits) {
		it.blk++
		it.off = 0
	}
	return true
}

// Prev moves the iterator to the previous element and returns true if one
// exists. It returns false and parks the iterator before the beginning
// otherwise.
// Prev เลื่อน Iterator ไปยังรายการก่อนหน้า คืนค่า true หากมีรายการนั้นอยู่
func (it *Iterator[T]) Prev() bool {
	if it.pos <= 0 {
		it.pos = -1
		return false
	}
	if it.pos >= it.l.size {
		// ก้าวกลับจาก sentinel ท้ายสุด ต้องคำนวณแคชใหม่
		it.pos = it.l.size - 1
		it.blk, it.off = locate(it.pos, it.l.baseBits)
		return true
	}
	it.pos--
	it.off--
	if it.off < 0 {
		it.blk--
		it.off = blockCapacity(it.blk, it.l.baseBits) - 1
	}
	return true
}

// First moves the iterator to the first element. It returns false if the
// list is empty.
func (it *Iterator[T]) First() bool {
	if it.l.size == 0 {
		it.pos = -1
		return false
	}
	it.pos, it.blk, it.off = 0, 0, 0
	return true
}

// Last moves the iterator to the last element. It returns false if the
// list is empty.
func (it *Iterator[T]) Last() bool {
	if it.l.size == 0 {
		it.pos = -1
		return false
	}
	it.pos = it.l.size - 1
	it.blk, it.off = locate(it.pos, it.l.baseBits)
	return true
}

// Seek positions the iterator at logical index i in O(1) and returns true
// if i is in range. Out-of-range seeks park the iterator at the nearer
// sentinel and return false.
// Seek เลื่อน Iterator ไปยังตำแหน่ง i ในเวลา O(1) คืนค่า true หาก i อยู่ในช่วง
// หากอยู่นอกช่วง Iterator จะถูกพักไว้ที่ sentinel ฝั่งที่ใกล้กว่า
func (it *Iterator[T]) Seek(i int) bool {
	if i < 0 {
		it.pos = -1
		return false
	}
	if i >= it.l.size {
		it.pos = it.l.size
		return false
	}
	it.pos = i
	it.blk, it.off = locate(i, it.l.baseBits)
	return true
}

// Move offsets the iterator by delta positions, which may be negative, and
// returns true if the resulting position is in range. The jump is O(1).
// Move เลื่อน Iterator ไปตามระยะ delta ซึ่งติดลบได้ ในเวลา O(1)
func (it *Iterator[T]) Move(delta int) bool {
	return it.Seek(it.pos + delta)
}

// Index returns the current logical position. It is -1 before the first
// element and Len() past the last.
func (it *Iterator[T]) Index() int {
	return it.pos
}

// Value returns the element at the current position. It must only be
// called after a positioning call has returned true; calling it on a
// sentinel position is a contract violation.
// Value คืนค่ารายการ ณ ตำแหน่งปัจจุบัน ต้องเรียกหลังจากการเลื่อนตำแหน่ง
// ที่คืนค่า true เท่านั้น
func (it *Iterator[T]) Value() T {
	return it.l.blocks[it.blk].get(it.off)
}

// Distance returns the number of positions between it and other, positive
// when it is ahead of other. Both iterators must reference the same list.
// Distance คืนระยะห่างระหว่าง Iterator สองตัว เป็นบวกเมื่อ it อยู่ข้างหน้า other
func (it *Iterator[T]) Distance(other *Iterator[T]) int {
	return it.pos - other.pos
}

// Clone creates an independent copy of the iterator at its current
// position.
// Clone สร้างสำเนาของ Iterator ณ ตำแหน่งปัจจุบัน ซึ่งเลื่อนได้อิสระจากต้นฉบับ
func (it *Iterator[T]) Clone() *Iterator[T] {
	c := *it
	return &c
}

package arraylist

import "fmt"

// This file is the block directory: it owns block lifetime and the growth
// and shrink policy. Element-level mutation lives in arraylist.go; position
// arithmetic lives in resolve.go.

// grow allocates the next block in the growth law and appends it to the
// directory. Existing blocks and their contents are never touched, so
// growth copies nothing.
// grow จัดสรร block ถัดไปตามกฎการขยาย โดยไม่แตะต้อง block เดิมที่มีอยู่เลย
func (l *ArrayList[T]) grow() error {
	next := blockCapacity(len(l.blocks), l.baseBits)
	if l.capLimit > 0 && l.capTotal+next > l.capLimit {
		return fmt.Errorf("%w: need %d, limit %d", ErrAllocation, l.capTotal+next, l.capLimit)
	}
	l.blocks = append(l.blocks, block[T]{items: l.alloc.alloc(next)})
	l.capTotal += next
	return nil
}

// ensureRoom grows the directory until at least extra more elements fit.
// It is called before any element is moved, so a failed grow leaves the
// list untouched.
func (l *ArrayList[T]) ensureRoom(extra int) error {
	for l.capTotal < l.size+extra {
		if err := l.grow(); err != nil {
			return err
		}
	}
	return nil
}

// shrinkTail releases trailing empty blocks back to the allocator. The sole
// remaining base-capacity block is kept even when empty; without that
// hysteresis an alternating push/pop at a block boundary would allocate and
// free on every call.
// shrinkTail คืน block ท้ายที่ว่างแล้วให้ allocator แต่จะเก็บ block แรก
// (ความจุ base) ไว้หนึ่งก้อนเสมอ เพื่อไม่ให้เกิดการจอง/คืนสลับกันรัวๆ
// เมื่อ push/pop อยู่ตรงรอยต่อของ block พอดี
func (l *ArrayList[T]) shrinkTail() {
	for len(l.blocks) > 1 && l.blocks[len(l.blocks)-1].count() == 0 {
		last := len(l.blocks) - 1
		l.capTotal -= l.blocks[last].capacity()
		l.alloc.release(l.blocks[last].items)
		l.blocks[last] = block[T]{}
		l.blocks = l.blocks[:last]
	}
}

// releaseAll returns every block to the allocator and resets the directory
// to its initial empty state. The growth law restarts at block 0.
func (l *ArrayList[T]) releaseAll() {
	for i := range l.blocks {
		l.alloc.release(l.blocks[i].items)
		l.blocks[i] = block[T]{}
	}
	l.blocks = l.blocks[:0]
	l.capTotal = 0
	l.size = 0
}

// extendTail raises the live count at the tail by n, exposing zero-valued
// slots. The caller must have called ensureRoom(n) and updates l.size
// itself.
func (l *ArrayList[T]) extendTail(n int) {
	blk, off := locate(l.size, l.baseBits)
	for n > 0 {
		room := blockCapacity(blk, l.baseBits) - off
		if room > n {
			room = n
		}
		l.blocks[blk].extend(room)
		n -= room
		blk++
		off = 0
	}
}

// truncateTail drops the last n live elements, zeroing the vacated slots,
// and releases any block that becomes empty. The caller updates l.size.
func (l *ArrayList[T]) truncateTail(n int) {
	blk := len(l.blocks) - 1
	for n > 0 {
		drop := l.blocks[blk].count()
		if drop > n {
			drop = n
		}
		l.blocks[blk].truncate(drop)
		n -= drop
		blk--
	}
	l.shrinkTail()
}

package arraylist

// Comparisons are layered on top of the container rather than built into
// it: the element type is opaque to the list, so both functions take the
// relation to use. They walk the underlying block runs directly instead of
// resolving every index.

// Equal reports whether a and b hold the same sequence under eq. Sizes are
// compared first, then elements in order.
// Equal ตรวจว่า a และ b เก็บลำดับข้อมูลเดียวกันหรือไม่ตามฟังก์ชัน eq
// โดยเทียบขนาดก่อน แล้วจึงเทียบรายการทีละคู่ตามลำดับ
func Equal[T any](a, b *ArrayList[T], eq func(x, y T) bool) bool {
	if a.size != b.size {
		return false
	}
	equal := true
	it := b.NewIterator()
	a.Range(func(_ int, v T) bool {
		it.Next()
		if !eq(v, it.Value()) {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// Compare orders a and b lexicographically under cmp, returning a negative
// value, zero, or a positive value in the manner of cmp itself. When one
// sequence is an exact prefix of the other, the shorter orders first.
// Compare เรียงลำดับ a และ b แบบพจนานุกรมตามฟังก์ชัน cmp
// หากลำดับหนึ่งเป็น prefix ของอีกลำดับ ลำดับที่สั้นกว่าจะมาก่อน
func Compare[T any](a, b *ArrayList[T], cmp func(x, y T) int) int {
	result := 0
	it := b.NewIterator()
	a.Range(func(i int, v T) bool {
		if i >= b.size {
			result = 1
			return false
		}
		it.Next()
		if c := cmp(v, it.Value()); c != 0 {
			result = c
			return false
		}
		return true
	})
	if result != 0 {
		return result
	}
	switch {
	case a.size < b.size:
		return -1
	case a.size > b.size:
		return 1
	}
	return 0
}

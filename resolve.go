package arraylist

import "math/bits"

// The list stores its elements in blocks whose capacities follow a fixed
// doubling law anchored at the base capacity:
//
//	block:     0      1       2         3
//	capacity:  base   2*base  4*base    8*base
//	logical:   [0,b)  [b,3b)  [3b,7b)   [7b,15b)
//
// Because base is a power of two (base = 1 << baseBits), shifting a logical
// index by +base aligns the block boundaries with powers of two, and the
// block that holds an index falls out of the bit length of the shifted
// value. No search and no cumulative-size table is needed; every function
// here is a constant number of shifts and one bits.Len.
//
// This file is the only place block-boundary arithmetic is allowed. All
// other files map positions through these functions.

// locate maps logical index i to the block that holds it and the offset of
// the element within that block. i must be non-negative; locate does not
// range-check against the live size.
func locate(i int, baseBits uint) (blk, off int) {
	p := uint64(i) + 1<<baseBits
	blk = bits.Len64(p) - 1 - int(baseBits)
	off = int(p - 1<<(uint(blk)+baseBits))
	return blk, off
}

// logicalIndex is the inverse of locate.
func logicalIndex(blk, off int, baseBits uint) int {
	return int(1<<(uint(blk)+baseBits)) - int(1<<baseBits) + off
}

// blockCapacity returns the fixed capacity of block blk under the growth
// law: base << blk.
func blockCapacity(blk int, baseBits uint) int {
	return 1 << (uint(blk) + baseBits)
}

// capacityOfBlocks returns the total capacity of the first k blocks,
// base*(2^k - 1).
func capacityOfBlocks(k int, baseBits uint) int {
	return int(1<<(uint(k)+baseBits)) - int(1<<baseBits)
}

// baseBitsFor returns the baseBits for a requested base capacity, rounding
// n up to the next power of two. The option layer uses it to keep the base
// capacity on a power-of-two boundary, which locate depends on.
func baseBitsFor(n int) uint {
	if n <= 1 {
		return 0
	}
	return uint(bits.Len64(uint64(n - 1)))
}

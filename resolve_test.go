package arraylist

import (
	"fmt"
	"testing"
)

func TestLocate(t *testing.T) {
	type args struct {
		i        int
		baseBits uint
	}
	tests := []struct {
		name    string
		args    args
		wantBlk int
		wantOff int
	}{
		// base = 1: block capacities 1, 2, 4, 8, ...
		//
		//	block:    0   1      2            3
		//	logical:  [0] [1 2]  [3 4 5 6]    [7 .. 14]
		{"first element", args{0, 0}, 0, 0},
		{"start of block 1", args{1, 0}, 1, 0},
		{"end of block 1", args{2, 0}, 1, 1},
		{"start of block 2", args{3, 0}, 2, 0},
		{"middle of block 2", args{5, 0}, 2, 2},
		{"end of block 2", args{6, 0}, 2, 3},
		{"start of block 3", args{7, 0}, 3, 0},
		{"end of block 3", args{14, 0}, 3, 7},
		{"start of block 4", args{15, 0}, 4, 0},

		// base = 4: block capacities 4, 8, 16, ...
		{"base 4 first element", args{0, 2}, 0, 0},
		{"base 4 end of block 0", args{3, 2}, 0, 3},
		{"base 4 start of block 1", args{4, 2}, 1, 0},
		{"base 4 end of block 1", args{11, 2}, 1, 7},
		{"base 4 start of block 2", args{12, 2}, 2, 0},
		{"base 4 end of block 2", args{27, 2}, 2, 15},
		{"base 4 start of block 3", args{28, 2}, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blk, off := locate(tt.args.i, tt.args.baseBits)
			if blk != tt.wantBlk || off != tt.wantOff {
				t.Errorf("locate(%d, %d) = (%d, %d), want (%d, %d)",
					tt.args.i, tt.args.baseBits, blk, off, tt.wantBlk, tt.wantOff)
			}
		})
	}
}

// TestLocateRoundTrip checks that logicalIndex inverts locate over a dense
// index range for several bases, and that the offsets locate produces stay
// inside the block capacities of the growth law.
func TestLocateRoundTrip(t *testing.T) {
	for _, baseBits := range []uint{0, 1, 2, 4} {
		t.Run(fmt.Sprintf("base %d", 1<<baseBits), func(t *testing.T) {
			for i := 0; i < 1<<14; i++ {
				blk, off := locate(i, baseBits)
				if off < 0 || off >= blockCapacity(blk, baseBits) {
					t.Fatalf("locate(%d) offset %d outside block %d capacity %d",
						i, off, blk, blockCapacity(blk, baseBits))
				}
				if got := logicalIndex(blk, off, baseBits); got != i {
					t.Fatalf("logicalIndex(%d, %d) = %d, want %d", blk, off, got, i)
				}
			}
		})
	}
}

func TestCapacityOfBlocks(t *testing.T) {
	tests := []struct {
		k        int
		baseBits uint
		want     int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 0, 3},
		{3, 0, 7},
		{4, 0, 15},
		{0, 2, 0},
		{1, 2, 4},
		{2, 2, 12},
		{3, 2, 28},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d blocks base %d", tt.k, 1<<tt.baseBits), func(t *testing.T) {
			if got := capacityOfBlocks(tt.k, tt.baseBits); got != tt.want {
				t.Errorf("capacityOfBlocks(%d, %d) = %d, want %d", tt.k, tt.baseBits, got, tt.want)
			}
		})
	}
}

func TestBaseBitsFor(t *testing.T) {
	tests := []struct {
		n    int
		want uint
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2}, // rounds up to 4
		{4, 2},
		{5, 3}, // rounds up to 8
		{8, 3},
		{1000, 10}, // rounds up to 1024
		{1024, 10},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.n), func(t *testing.T) {
			if got := baseBitsFor(tt.n); got != tt.want {
				t.Errorf("baseBitsFor(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

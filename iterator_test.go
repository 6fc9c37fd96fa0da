package arraylist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterator_Forward(t *testing.T) {
	for _, setup := range getTestSetups[int]() {
		t.Run(setup.name, func(t *testing.T) {
			l, err := NewFromSlice(seq(0, 13), setup.opts...)
			require.NoError(t, err)

			it := l.NewIterator()
			require.Equal(t, -1, it.Index())

			var got []int
			for it.Next() {
				require.Equal(t, len(got), it.Index())
				got = append(got, it.Value())
			}
			require.Equal(t, seq(0, 13), got)

			// exhausted iterator stays exhausted
			require.False(t, it.Next())
			require.Equal(t, l.Len(), it.Index())
		})
	}
}

func TestIterator_Backward(t *testing.T) {
	for _, setup := range getTestSetups[int]() {
		t.Run(setup.name, func(t *testing.T) {
			l, err := NewFromSlice(seq(0, 13), setup.opts...)
			require.NoError(t, err)

			it := l.NewIterator()
			require.True(t, it.Last())
			var got []int
			got = append(got, it.Value())
			for it.Prev() {
				got = append(got, it.Value())
			}
			require.Equal(t, 13, len(got))
			for i, v := range got {
				require.Equal(t, 12-i, v)
			}
			require.False(t, it.Prev())
			require.Equal(t, -1, it.Index())

			// ก้าวกลับจาก sentinel ท้ายสุดต้องลงที่รายการสุดท้าย
			it.Seek(l.Len())
			require.True(t, it.Prev())
			require.Equal(t, 12, it.Value())
		})
	}
}

// TestIterator_CacheCrossesBoundaries walks forward then backward over
// enough elements to cross several block boundaries and checks the cached
// location against a fresh resolver lookup at every step.
func TestIterator_CacheCrossesBoundaries(t *testing.T) {
	l, err := NewFromSlice(seq(0, 100))
	require.NoError(t, err)

	it := l.NewIterator()
	for it.Next() {
		blk, off := locate(it.Index(), l.baseBits)
		require.Equal(t, blk, it.blk)
		require.Equal(t, off, it.off)
	}
	require.True(t, it.Last())
	for {
		blk, off := locate(it.Index(), l.baseBits)
		require.Equal(t, blk, it.blk)
		require.Equal(t, off, it.off)
		if !it.Prev() {
			break
		}
	}
}

func TestIterator_SeekAndMove(t *testing.T) {
	l, err := NewFromSlice(seq(0, 50))
	require.NoError(t, err)

	it := l.NewIterator()
	require.True(t, it.Seek(31))
	require.Equal(t, 31, it.Value())

	require.True(t, it.Move(10))
	require.Equal(t, 41, it.Value())
	require.True(t, it.Move(-40))
	require.Equal(t, 1, it.Value())

	// out-of-range jumps park at the nearer sentinel
	require.False(t, it.Move(100))
	require.Equal(t, 50, it.Index())
	require.False(t, it.Seek(-3))
	require.Equal(t, -1, it.Index())
	require.False(t, it.Seek(50))

	// a failed jump does not strand the iterator permanently
	require.True(t, it.Seek(0))
	require.Equal(t, 0, it.Value())
}

func TestIterator_DistanceAndClone(t *testing.T) {
	l, err := NewFromSlice(seq(0, 20))
	require.NoError(t, err)

	a := l.NewIterator()
	require.True(t, a.Seek(15))
	b := a.Clone()
	require.Equal(t, 0, a.Distance(b))
	require.Equal(t, 15, b.Value())

	require.True(t, b.Move(-10))
	require.Equal(t, 10, a.Distance(b))
	require.Equal(t, -10, b.Distance(a))

	// the clone moves independently
	require.Equal(t, 15, a.Value())
	require.Equal(t, 5, b.Value())
}

func TestIterator_EmptyList(t *testing.T) {
	l := New[int]()
	it := l.NewIterator()
	require.False(t, it.Next())
	require.False(t, it.First())
	require.False(t, it.Last())
	require.False(t, it.Seek(0))
	require.False(t, it.Prev())
}

func TestIterator_FirstAfterUse(t *testing.T) {
	l, err := NewFromSlice(seq(0, 5))
	require.NoError(t, err)

	it := l.NewIterator()
	for it.Next() {
	}
	require.True(t, it.First())
	require.Equal(t, 0, it.Value())
	require.True(t, it.Next())
	require.Equal(t, 1, it.Value())
}

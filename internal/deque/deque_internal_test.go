package deque

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// White-box tests for the slot-zeroing discipline and the growth
// re-centering arithmetic.

func TestPopZeroesSlot(t *testing.T) {
	d := New[*int]()

	a, b, c := 1, 2, 3
	d.PushBack(&a)
	d.PushBack(&b)
	d.PushFront(&c)

	front, ok := d.PopFront()
	require.True(t, ok)
	assert.Equal(t, 3, *front)

	back, ok := d.PopBack()
	require.True(t, ok)
	assert.Equal(t, 2, *back)

	// Exactly the one remaining live slot holds a reference.
	live := 0
	for _, p := range d.buf {
		if p != nil {
			live++
		}
	}
	assert.Equal(t, 1, live, "vacated slots must be zeroed")
}

func TestClearZeroesLiveRange(t *testing.T) {
	d := New[*int]()

	vals := make([]int, 6)
	for i := range vals {
		vals[i] = i
		d.PushFront(&vals[i])
	}

	d.Clear()

	for i, p := range d.buf {
		assert.Nilf(t, p, "slot %d still holds a reference after Clear", i)
	}
	assert.Equal(t, len(d.buf)/2, d.head)
	assert.Equal(t, d.head, d.tail)
}

func TestGrowRecenters(t *testing.T) {
	d, err := NewWithCapacity[int](4)
	require.NoError(t, err)

	// Exhaust the front headroom: head walks 2 -> 1 -> 0.
	d.PushFront(1)
	d.PushFront(2)
	require.Equal(t, 0, d.head)

	// The next front push doubles the block and re-centers the live
	// range symmetrically: newHead = (8 - 2) / 2 = 3.
	d.PushFront(3)

	assert.Equal(t, 8, len(d.buf))
	assert.Equal(t, 2, d.head)
	assert.Equal(t, 5, d.tail)
	assert.Equal(t, []int{3, 2, 1}, d.List())

	// Both directions regained headroom.
	assert.Greater(t, d.head, 0)
	assert.Less(t, d.tail, len(d.buf))
}

func TestGrowStaysInBounds(t *testing.T) {
	// Repeated one-sided growth must never place the live range outside
	// the new block, whatever the growth factor compounds to.
	d, err := NewWithCapacity[int](2)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		d.PushFront(i)
		require.GreaterOrEqual(t, d.head, 0)
		require.LessOrEqual(t, d.tail, len(d.buf))
	}
	assert.Equal(t, 1000, d.Len())
}

package ring

import "testing"

// White-box tests for the slot-zeroing discipline: a slot must hold a
// reference only while its element is live, wraparound included.

func TestRing_PopZeroesSlot(t *testing.T) {
	q, _ := New[*int](4)

	a, b := 1, 2
	q.Push(&a)
	q.Push(&b)

	got, ok := q.Pop()
	if !ok || *got != 1 {
		t.Fatalf("expected Pop() = (&1, true), got (%v, %v)", got, ok)
	}
	if q.buf[0] != nil {
		t.Error("expected popped slot 0 to be zeroed")
	}
	if q.buf[1] == nil {
		t.Error("expected live slot 1 to keep its element")
	}
}

func TestRing_ClearZeroesWrappedRange(t *testing.T) {
	q, _ := New[*int](4)

	vals := make([]int, 6)
	// Fill, drain half, refill: the live range now wraps the end of
	// the buffer.
	for i := 0; i < 4; i++ {
		vals[i] = i
		q.Push(&vals[i])
	}
	q.Pop()
	q.Pop()
	for i := 4; i < 6; i++ {
		vals[i] = i
		q.Push(&vals[i])
	}
	if q.head.Load() != 6 || q.tail.Load() != 2 {
		t.Fatalf("setup did not wrap: head=%d tail=%d", q.head.Load(), q.tail.Load())
	}

	q.Clear()

	for i := range q.buf {
		if q.buf[i] != nil {
			t.Errorf("expected slot %d to be zeroed after Clear", i)
		}
	}
	if q.Len() != 0 {
		t.Errorf("expected Len() = 0 after Clear, got %d", q.Len())
	}
}

func TestRing_ResizeReleasesOldBlock(t *testing.T) {
	q, _ := New[*int](4)

	vals := make([]int, 3)
	for i := range vals {
		vals[i] = i
		q.Push(&vals[i])
	}

	if err := q.Resize(8); err != nil {
		t.Fatalf("Resize(8): %v", err)
	}

	// Live elements sit at the low end of the fresh block, in order.
	for i := 0; i < 3; i++ {
		if q.buf[i] == nil || *q.buf[i] != i {
			t.Errorf("expected slot %d to hold %d after resize", i, i)
		}
	}
	for i := 3; i < len(q.buf); i++ {
		if q.buf[i] != nil {
			t.Errorf("expected slot %d of the new block to be zero", i)
		}
	}
	if q.tail.Load() != 0 || q.head.Load() != 3 {
		t.Errorf("expected counters reset to tail=0 head=3, got tail=%d head=%d",
			q.tail.Load(), q.head.Load())
	}
}

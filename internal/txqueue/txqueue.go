// Package txqueue provides a bounded max-priority transmit queue over CAN
// identifier registers. Pop always yields the pending entry that would win
// bus arbitration next.
package txqueue

import (
	"container/heap"
	"sync"

	"github.com/kstaniek/go-can-prio/internal/canid"
	"github.com/kstaniek/go-can-prio/internal/metrics"
)

// DefaultCapacity is used when New is given a non-positive capacity.
const DefaultCapacity = 64

// Queue is safe for concurrent producers and consumers. Entries of equal
// priority leave in arrival order, so drain order is deterministic for any
// insertion sequence.
type Queue struct {
	mu  sync.Mutex
	h   entryHeap
	cap int
	seq uint64
}

type entry struct {
	reg canid.IDReg
	seq uint64
}

// New creates a queue holding at most capacity entries.
func New(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{h: make(entryHeap, 0, capacity), cap: capacity}
}

// Push queues a register for transmission. Against a full queue the entry
// evicts the lowest-priority resident if it strictly outranks it; otherwise
// the push is rejected and Push returns false.
func (q *Queue) Push(r canid.IDReg) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.h) >= q.cap {
		low := q.lowest()
		if q.h[low].reg.Compare(r) >= 0 {
			metrics.IncTxRejected()
			return false
		}
		heap.Remove(&q.h, low)
		metrics.IncTxEvicted()
	}
	q.seq++
	heap.Push(&q.h, entry{reg: r, seq: q.seq})
	metrics.IncTxPushed()
	metrics.SetQueueDepth(len(q.h))
	return true
}

// Pop removes and returns the highest-priority register, with ok=false on
// an empty queue.
func (q *Queue) Pop() (canid.IDReg, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.h) == 0 {
		return canid.IDReg{}, false
	}
	e := heap.Pop(&q.h).(entry)
	metrics.IncTxPopped()
	metrics.SetQueueDepth(len(q.h))
	return e.reg, true
}

// Peek returns the highest-priority register without removing it.
func (q *Queue) Peek() (canid.IDReg, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.h) == 0 {
		return canid.IDReg{}, false
	}
	return q.h[0].reg, true
}

// Len returns the number of queued registers.
func (q *Queue) Len() int {
	q.mu.Lock()
	n := len(q.h)
	q.mu.Unlock()
	return n
}

// lowest returns the index of the entry every other resident outranks,
// i.e. the one Pop would return last. O(n); capacities are small.
func (q *Queue) lowest() int {
	low := 0
	for i := 1; i < len(q.h); i++ {
		if q.h.Less(low, i) {
			low = i
		}
	}
	return low
}

// entryHeap is a max-heap: the root is the next frame to transmit.
type entryHeap []entry

func (h entryHeap) Len() int { return len(h) }

func (h entryHeap) Less(i, j int) bool {
	if c := h[i].reg.Compare(h[j].reg); c != 0 {
		return c > 0
	}
	return h[i].seq < h[j].seq // FIFO among equal priorities
}

func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *entryHeap) Push(x any) { *h = append(*h, x.(entry)) }

func (h *entryHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

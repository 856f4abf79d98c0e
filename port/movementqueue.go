package port

import (
	"container/heap"
	"sort"

	"github.com/harborlab/portsim/movement"
)

// movementQueue orders pending movements by action time. Movements sharing
// an action time apply in the order they were scheduled, which keeps tick
// evolution deterministic.
type movementQueue struct {
	items   movementHeap
	nextSeq uint64
}

func newMovementQueue() *movementQueue {
	q := &movementQueue{}
	heap.Init(&q.items)

	return q
}

func (q *movementQueue) Push(m movement.Movement) {
	heap.Push(&q.items, scheduledMovement{m: m, seq: q.nextSeq})
	q.nextSeq++
}

func (q *movementQueue) Pop() movement.Movement {
	return heap.Pop(&q.items).(scheduledMovement).m
}

func (q *movementQueue) Peek() movement.Movement {
	return q.items[0].m
}

func (q *movementQueue) Len() int {
	return len(q.items)
}

// All returns the pending movements in application order. The returned slice
// is a copy.
func (q *movementQueue) All() []movement.Movement {
	scheduled := make([]scheduledMovement, len(q.items))
	copy(scheduled, q.items)

	sort.Slice(scheduled, func(i, j int) bool {
		if scheduled[i].m.Time() != scheduled[j].m.Time() {
			return scheduled[i].m.Time() < scheduled[j].m.Time()
		}
		return scheduled[i].seq < scheduled[j].seq
	})

	all := make([]movement.Movement, len(scheduled))
	for i, s := range scheduled {
		all[i] = s.m
	}

	return all
}

type scheduledMovement struct {
	m   movement.Movement
	seq uint64
}

type movementHeap []scheduledMovement

func (h movementHeap) Len() int {
	return len(h)
}

func (h movementHeap) Less(i, j int) bool {
	if h[i].m.Time() != h[j].m.Time() {
		return h[i].m.Time() < h[j].m.Time()
	}

	return h[i].seq < h[j].seq
}

func (h movementHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *movementHeap) Push(x any) {
	*h = append(*h, x.(scheduledMovement))
}

func (h *movementHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

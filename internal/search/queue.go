// Package search implements the Search Engine (spec §4.4): a best-first
// exploration of decoder chains, with a priority queue, a duplicate
// cache, a worker pool over golang.org/x/sync/errgroup, and cooperative
// cancellation.
package search

import (
	"container/heap"
	"sync"

	"github.com/RenTrieu/Ares/internal/types"
)

// queueItem is one entry in the priority queue: a node plus the
// monotonic sequence number used to break priority ties in FIFO order
// (§4.4 "Ties are broken by insertion order").
type queueItem struct {
	node  types.SearchNode
	seq   int64
	index int // heap.Interface bookkeeping
}

// priorityHeap is a max-heap on priority, ties broken by lower seq
// (earlier insertion) first.
type priorityHeap []*queueItem

func (h priorityHeap) Len() int { return len(h) }
func (h priorityHeap) Less(i, j int) bool {
	if h[i].node.Priority != h[j].node.Priority {
		return h[i].node.Priority > h[j].node.Priority
	}
	return h[i].seq < h[j].seq
}
func (h priorityHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index, h[j].index = i, j
}
func (h *priorityHeap) Push(x interface{}) {
	item := x.(*queueItem)
	item.index = len(*h)
	*h = append(*h, item)
}
func (h *priorityHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Queue is the shared priority queue of §4.4/§5: guarded by a lock,
// bounded by maxSize, with lowest-priority eviction on overflow (§5
// "further enqueues drop the lowest-priority node").
type Queue struct {
	mu      sync.Mutex
	heap    priorityHeap
	nextSeq int64
	maxSize int
}

// NewQueue returns an empty Queue capped at maxSize entries.
func NewQueue(maxSize int) *Queue {
	q := &Queue{maxSize: maxSize}
	heap.Init(&q.heap)
	return q
}

// Enqueue adds node to the queue. If the queue is at capacity, it evicts
// the current lowest-priority entry first (never blocking the caller, by
// design: §5's resource limit is a hard cap, not a backpressure signal).
func (q *Queue) Enqueue(node types.SearchNode) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.heap) >= q.maxSize && q.maxSize > 0 {
		q.evictLowestLocked()
	}
	item := &queueItem{node: node, seq: q.nextSeq}
	q.nextSeq++
	heap.Push(&q.heap, item)
}

// evictLowestLocked drops the single lowest-priority node. Called with
// mu held. A linear scan is acceptable here: eviction only triggers at
// the configured cap (default 100k), not on every enqueue.
func (q *Queue) evictLowestLocked() {
	if len(q.heap) == 0 {
		return
	}
	worst := 0
	for i := 1; i < len(q.heap); i++ {
		if q.heap[i].node.Priority < q.heap[worst].node.Priority {
			worst = i
		}
	}
	heap.Remove(&q.heap, worst)
}

// Dequeue pops the highest-priority node, or (zero, false) if empty.
func (q *Queue) Dequeue() (types.SearchNode, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.heap) == 0 {
		return types.SearchNode{}, false
	}
	item := heap.Pop(&q.heap).(*queueItem)
	return item.node, true
}

// Len reports the current queue size.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.heap)
}

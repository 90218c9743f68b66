package galeshapley

import "container/heap"

// worklist holds the ids of free proposers that may still propose.
// Each proposer is present at most once, so n slots always suffice.
type worklist interface {
	push(id int)
	pop() int
	len() int
}

// newWorklist returns an empty worklist for policy o with room for n ids.
func newWorklist(o Order, n int) worklist {
	switch o {
	case LIFO:
		return &stack{ids: make([]int, 0, n)}
	case LowestID:
		h := make(idHeap, 0, n)
		return &h
	default:
		return &ring{ids: make([]int, n)}
	}
}

// ring is a fixed-capacity FIFO.
type ring struct {
	ids  []int
	head int
	size int
}

func (r *ring) push(id int) {
	r.ids[(r.head+r.size)%len(r.ids)] = id
	r.size++
}

func (r *ring) pop() int {
	id := r.ids[r.head]
	r.head = (r.head + 1) % len(r.ids)
	r.size--

	return id
}

func (r *ring) len() int { return r.size }

// stack is a LIFO.
type stack struct{ ids []int }

func (s *stack) push(id int) { s.ids = append(s.ids, id) }

func (s *stack) pop() int {
	id := s.ids[len(s.ids)-1]
	s.ids = s.ids[:len(s.ids)-1]

	return id
}

func (s *stack) len() int { return len(s.ids) }

// idHeap is a min-heap of ids.
type idHeap []int

func (h idHeap) Len() int            { return len(h) }
func (h idHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h idHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *idHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *idHeap) Pop() interface{} {
	old := *h
	n := len(old)
	id := old[n-1]
	*h = old[:n-1]

	return id
}

func (h *idHeap) push(id int) { heap.Push(h, id) }
func (h *idHeap) pop() int    { return heap.Pop(h).(int) }
func (h *idHeap) len() int    { return len(*h) }

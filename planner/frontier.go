package planner

import "container/heap"

// node is a frontier entry: a state and the actions that reached it.
type node struct {
	state State
	path  []Action
	cost  int
	seq   int
}

// extend returns path+a without sharing the backing array with path.
func extend(path []Action, a Action) []Action {
	next := make([]Action, len(path)+1)
	copy(next, path)
	next[len(path)] = a
	return next
}

// stack is the LIFO frontier of the depth-first strategy.
type stack []node

func (s *stack) push(n node) {
	*s = append(*s, n)
}

// pop removes and returns the last element of the stack.
func (s *stack) pop() node {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}

// costQueue is the min-priority frontier of the uniform-cost strategy,
// ordered by cost then by insertion sequence.
type costQueue []node

func (q costQueue) Len() int { return len(q) }
func (q costQueue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].seq < q[j].seq
}
func (q costQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *costQueue) Push(x any) { *q = append(*q, x.(node)) }
func (q *costQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// priorityFrontier wraps costQueue and stamps insertion order.
type priorityFrontier struct {
	queue costQueue
	next  int
}

func (f *priorityFrontier) push(n node) {
	n.seq = f.next
	f.next++
	heap.Push(&f.queue, n)
}

func (f *priorityFrontier) pop() node {
	return heap.Pop(&f.queue).(node)
}

func (f *priorityFrontier) len() int { return f.queue.Len() }

// visitedSet holds the states already expanded.
type visitedSet map[StateKey]struct{}

func (v visitedSet) has(s State) bool {
	_, ok := v[s.Key()]
	return ok
}

func (v visitedSet) add(s State) {
	v[s.Key()] = struct{}{}
}

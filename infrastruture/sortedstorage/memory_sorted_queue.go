package sortedstorage

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/beka-birhanu/vacuum-planner/service/i"
)

var _ i.SortedQueue = &MemorySortedQueue{}

type scored struct {
	member string
	score  float64
}

// MemorySortedQueue is an in-process SortedQueue with the same ordering and
// capping rules as RedisSortedQueue: lowest score first, ties by member.
type MemorySortedQueue struct {
	sets    map[string][]scored
	maxSize int64
	sync.Mutex
}

// NewMemorySortedQueue creates an empty queue capped at maxSize members per key.
func NewMemorySortedQueue(maxSize int64) *MemorySortedQueue {
	return &MemorySortedQueue{sets: make(map[string][]scored), maxSize: maxSize}
}

// Enqueue implements i.SortedQueue.
func (m *MemorySortedQueue) Enqueue(_ context.Context, queueKey string, score float64, member string) error {
	m.Lock()
	defer m.Unlock()

	set := slices.DeleteFunc(m.sets[queueKey], func(s scored) bool { return s.member == member })
	set = append(set, scored{member: member, score: score})
	slices.SortFunc(set, func(a, b scored) int {
		if c := cmp.Compare(a.score, b.score); c != 0 {
			return c
		}
		return cmp.Compare(a.member, b.member)
	})
	if m.maxSize > 0 && int64(len(set)) > m.maxSize {
		set = set[:m.maxSize]
	}
	m.sets[queueKey] = set
	return nil
}

// Tops implements i.SortedQueue.
func (m *MemorySortedQueue) Tops(_ context.Context, queueKey string, amount int64) ([]string, error) {
	m.Lock()
	defer m.Unlock()

	set := m.sets[queueKey]
	n := min(int64(len(set)), max(amount, 0))
	members := make([]string, 0, n)
	for _, s := range set[:n] {
		members = append(members, s.member)
	}
	return members, nil
}

// Count implements i.SortedQueue.
func (m *MemorySortedQueue) Count(_ context.Context, queueKey string) int64 {
	m.Lock()
	defer m.Unlock()
	return int64(len(m.sets[queueKey]))
}

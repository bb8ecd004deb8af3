package repo

import (
	"context"
	"slices"
	"sync"

	dmn "github.com/beka-birhanu/vacuum-planner/domain"
	"github.com/beka-birhanu/vacuum-planner/service/i"
	"github.com/google/uuid"
)

var _ i.RunRepo = &MemoryRunRepo{}

// MemoryRunRepo keeps runs in process memory. It backs the CLI and any
// server started without a database.
type MemoryRunRepo struct {
	runs map[uuid.UUID]dmn.Run
	sync.RWMutex
}

// NewMemoryRunRepo creates an empty MemoryRunRepo.
func NewMemoryRunRepo() *MemoryRunRepo {
	return &MemoryRunRepo{runs: make(map[uuid.UUID]dmn.Run)}
}

// Save implements i.RunRepo.
func (m *MemoryRunRepo) Save(_ context.Context, run *dmn.Run) error {
	m.Lock()
	defer m.Unlock()

	stored := *run
	stored.Plan = slices.Clone(run.Plan)
	m.runs[run.ID] = stored
	return nil
}

// ByID implements i.RunRepo.
func (m *MemoryRunRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.Run, error) {
	m.RLock()
	defer m.RUnlock()

	run, ok := m.runs[id]
	if !ok {
		return nil, dmn.ErrRunNotFound
	}
	run.Plan = slices.Clone(run.Plan)
	return &run, nil
}

// ByWorld implements i.RunRepo.
func (m *MemoryRunRepo) ByWorld(_ context.Context, worldID string, limit int64) ([]*dmn.Run, error) {
	m.RLock()
	defer m.RUnlock()

	var runs []*dmn.Run
	for _, run := range m.runs {
		if run.WorldID == worldID {
			run.Plan = slices.Clone(run.Plan)
			runs = append(runs, &run)
		}
	}

	slices.SortFunc(runs, func(a, b *dmn.Run) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit > 0 && int64(len(runs)) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

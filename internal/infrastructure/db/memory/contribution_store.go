// Package memory provides mutex-guarded in-memory implementations of
// the repository ports. It backs tests and the STORE_DRIVER=memory
// development mode. Each collection is guarded by its own mutex, so a
// read observes either a fully prior or fully subsequent state of the
// collection, never a partial write.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
)

// ContributionStore holds contributions in memory. Ids are allocated
// from a counter seeded at zero, so a fresh store observes the
// reference max(id)+1 sequence while never reusing an id after the
// highest record is deleted.
type ContributionStore struct {
	mu     sync.Mutex
	items  map[int64]domain.Contribution
	nextID int64
}

func NewContributionStore() *ContributionStore {
	return &ContributionStore{items: make(map[int64]domain.Contribution)}
}

func (s *ContributionStore) List(_ context.Context, filter ports.ListFilter) ([]domain.Contribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Contribution, 0, len(s.items))
	for _, c := range s.items {
		if filter.Village != "" && c.Village != filter.Village {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *ContributionStore) FindByID(_ context.Context, id int64) (*domain.Contribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.items[id]
	if !ok {
		return nil, domain.ErrContributionNotFound
	}
	return &c, nil
}

func (s *ContributionStore) Create(_ context.Context, c *domain.Contribution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	c.ID = s.nextID
	s.items[c.ID] = *c
	return nil
}

func (s *ContributionStore) Update(_ context.Context, c *domain.Contribution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[c.ID]; !ok {
		return domain.ErrContributionNotFound
	}
	s.items[c.ID] = *c
	return nil
}

func (s *ContributionStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return domain.ErrContributionNotFound
	}
	delete(s.items, id)
	return nil
}

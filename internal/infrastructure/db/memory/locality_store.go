package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
)

// LocalityStore holds localities in memory.
type LocalityStore struct {
	mu     sync.Mutex
	items  map[int64]domain.Locality
	nextID int64
}

func NewLocalityStore() *LocalityStore {
	return &LocalityStore{items: make(map[int64]domain.Locality)}
}

func (s *LocalityStore) List(_ context.Context, filter ports.ListFilter) ([]domain.Locality, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Locality, 0, len(s.items))
	for _, l := range s.items {
		if filter.Village != "" && l.Village != filter.Village {
			continue
		}
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *LocalityStore) FindByID(_ context.Context, id int64) (*domain.Locality, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.items[id]
	if !ok {
		return nil, domain.ErrLocalityNotFound
	}
	return &l, nil
}

func (s *LocalityStore) Create(_ context.Context, l *domain.Locality) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	l.ID = s.nextID
	s.items[l.ID] = *l
	return nil
}

func (s *LocalityStore) Update(_ context.Context, l *domain.Locality) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[l.ID]; !ok {
		return domain.ErrLocalityNotFound
	}
	s.items[l.ID] = *l
	return nil
}

func (s *LocalityStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return domain.ErrLocalityNotFound
	}
	delete(s.items, id)
	return nil
}

package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/communityfund/fund-nexus/internal/core/domain"
	"github.com/communityfund/fund-nexus/internal/core/ports"
)

// MentorStore holds mentors in memory.
type MentorStore struct {
	mu     sync.Mutex
	items  map[int64]domain.Mentor
	nextID int64
}

func NewMentorStore() *MentorStore {
	return &MentorStore{items: make(map[int64]domain.Mentor)}
}

func (s *MentorStore) List(_ context.Context, filter ports.ListFilter) ([]domain.Mentor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Mentor, 0, len(s.items))
	for _, m := range s.items {
		if filter.Village != "" && m.Village != filter.Village {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MentorStore) FindByID(_ context.Context, id int64) (*domain.Mentor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.items[id]
	if !ok {
		return nil, domain.ErrMentorNotFound
	}
	return &m, nil
}

func (s *MentorStore) Create(_ context.Context, m *domain.Mentor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	m.ID = s.nextID
	s.items[m.ID] = *m
	return nil
}

func (s *MentorStore) Update(_ context.Context, m *domain.Mentor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[m.ID]; !ok {
		return domain.ErrMentorNotFound
	}
	s.items[m.ID] = *m
	return nil
}

func (s *MentorStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return domain.ErrMentorNotFound
	}
	delete(s.items, id)
	return nil
}

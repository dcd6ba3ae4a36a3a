package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/communityfund/fund-nexus/internal/core/domain"
)

// UserStore holds the roster in memory, keyed by lowercased username
// for the case-insensitive lookup authentication requires.
type UserStore struct {
	mu     sync.Mutex
	byName map[string]domain.User
	nextID int64
}

func NewUserStore() *UserStore {
	return &UserStore{byName: make(map[string]domain.User)}
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byName[strings.ToLower(username)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (s *UserStore) Create(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	u.ID = s.nextID
	s.byName[strings.ToLower(u.Username)] = *u
	return nil
}

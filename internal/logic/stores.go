package logic

import (
	"sync"

	"orgstars/internal/domain"
)

// MemoryRepositoryStore is an in-memory implementation of RepositoryStore.
// It keeps the query order and plays the part of the client-side cache for
// mutation responses.
type MemoryRepositoryStore struct {
	mu    sync.RWMutex
	order []string
	repos map[string]domain.Repository
}

// NewMemoryRepositoryStore creates a new memory-based repository store
func NewMemoryRepositoryStore() *MemoryRepositoryStore {
	return &MemoryRepositoryStore{
		repos: make(map[string]domain.Repository),
	}
}

// Replace swaps the whole collection for a new query result
func (s *MemoryRepositoryStore) Replace(repos []domain.Repository) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = make([]string, 0, len(repos))
	s.repos = make(map[string]domain.Repository, len(repos))
	for _, r := range repos {
		if _, dup := s.repos[r.ID]; !dup {
			s.order = append(s.order, r.ID)
		}
		s.repos[r.ID] = r
	}
}

// All returns a copy of the repositories in query order
func (s *MemoryRepositoryStore) All() []domain.Repository {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Repository, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.repos[id])
	}
	return result
}

func (s *MemoryRepositoryStore) Get(id string) (domain.Repository, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.repos[id]
	return r, ok
}

// ApplyStar records the viewerHasStarred value confirmed by a mutation
// response. It reports false when the id is not in the current collection.
func (s *MemoryRepositoryStore) ApplyStar(id string, starred bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.repos[id]
	if !ok {
		return false
	}
	r.ViewerHasStarred = starred
	s.repos[id] = r
	return true
}

// IDs returns the set of ids in the current collection
func (s *MemoryRepositoryStore) IDs() map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make(map[string]bool, len(s.order))
	for _, id := range s.order {
		ids[id] = true
	}
	return ids
}

func (s *MemoryRepositoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

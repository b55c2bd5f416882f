package session

import (
	"context"
	"fmt"
	"sync"
)

// Repository is the durable storage contract behind a Store. Load returns
// an empty string when no token is persisted.
type Repository interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

// Store holds the current credential token. The in-memory value is
// authoritative once loaded; the repository is read only on the first Get
// after construction, which covers restoration across process restarts.
type Store struct {
	mu     sync.Mutex
	repo   Repository
	token  string
	loaded bool
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// Get returns the current token, or an empty string when no session exists.
func (s *Store) Get(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		token, err := s.repo.Load(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to load session token: %w", err)
		}
		s.token = token
		s.loaded = true
	}
	return s.token, nil
}

// Set writes the token to memory and durable storage. An empty token clears
// both.
func (s *Store) Set(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loaded = true
	s.token = token
	if token == "" {
		return s.repo.Delete(ctx)
	}
	return s.repo.Save(ctx, token)
}

// Clear removes the token from memory and durable storage.
func (s *Store) Clear(ctx context.Context) error {
	return s.Set(ctx, "")
}

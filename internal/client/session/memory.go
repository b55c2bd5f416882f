package session

import (
	"context"
	"sync"
)

// MemoryRepository keeps the token in process memory only. Used in tests and
// when the client runs without a local database.
type MemoryRepository struct {
	mu    sync.Mutex
	token string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Load(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.token, nil
}

func (r *MemoryRepository) Save(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = token
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.token = ""
	return nil
}

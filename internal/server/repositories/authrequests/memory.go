package authrequests

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

// MemoryRepository keeps requests in a map. The mutex protects the map
// only; callers get copies.
type MemoryRepository struct {
	mu       sync.Mutex
	requests map[string]models.AuthRequest
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{requests: make(map[string]models.AuthRequest)}
}

func (r *MemoryRepository) Get(_ context.Context, sessionID string) (*models.AuthRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.requests[sessionID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	req.Session = req.Session.Clone()
	return &req, nil
}

func (r *MemoryRepository) Save(_ context.Context, req *models.AuthRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := *req
	c.Session = req.Session.Clone()
	r.requests[req.Session.ID] = c
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.requests, sessionID)
	return nil
}

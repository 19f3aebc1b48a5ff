package containers

import (
	"bytes"
	"context"
	"sync"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

type key struct {
	id   string
	kind string
}

type MemoryRepository struct {
	mu         sync.Mutex
	containers map[key]models.Container
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{containers: make(map[key]models.Container)}
}

func (r *MemoryRepository) Get(_ context.Context, id, kind string) (*models.Container, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.containers[key{id, kind}]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c.Payload = bytes.Clone(c.Payload)
	return &c, nil
}

func (r *MemoryRepository) Save(_ context.Context, c *models.Container) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *c
	stored.Payload = bytes.Clone(c.Payload)
	r.containers[key{c.ID, c.Kind}] = stored
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id, kind string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.containers, key{id, kind})
	return nil
}

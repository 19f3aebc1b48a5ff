// Package containers declares the storage contract for opaque containers
// and its PostgreSQL, S3 and in-memory implementations.
package containers

import (
	"context"

	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

// Repository stores containers keyed by (id, kind).
type Repository interface {
	// Get returns common.ErrorNotFound when the container does not exist.
	Get(ctx context.Context, id, kind string) (*models.Container, error)

	// Save inserts or replaces the container.
	Save(ctx context.Context, c *models.Container) error

	// Delete removes the container. Deleting a missing one is not an error.
	Delete(ctx context.Context, id, kind string) error
}

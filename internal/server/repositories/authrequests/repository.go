// Package authrequests declares the storage contract for pending login
// requests and its PostgreSQL and in-memory implementations.
package authrequests

import (
	"context"

	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

// Repository stores AuthRequests keyed by their session id.
type Repository interface {
	// Get returns common.ErrorNotFound when no request exists for sessionID.
	Get(ctx context.Context, sessionID string) (*models.AuthRequest, error)

	// Save inserts or replaces the request.
	Save(ctx context.Context, req *models.AuthRequest) error

	// Delete removes the request. Deleting a missing request is not an error.
	Delete(ctx context.Context, sessionID string) error
}

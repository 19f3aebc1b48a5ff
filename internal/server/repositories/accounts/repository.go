// Package accounts declares the storage contract for accounts and its
// PostgreSQL and in-memory implementations.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

// Repository stores accounts keyed by email. The account, its session
// collection and its main store id are written as a single unit.
type Repository interface {
	// Get returns common.ErrorNotFound when no account exists for email.
	Get(ctx context.Context, email string) (*models.Account, error)

	// Save inserts or replaces the account; the last writer wins.
	Save(ctx context.Context, account *models.Account) error
}

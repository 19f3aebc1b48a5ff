package accounts

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

// MemoryRepository keeps accounts in a map and hands out deep copies.
type MemoryRepository struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[string]*models.Account)}
}

func (r *MemoryRepository) Get(_ context.Context, email string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return account.Clone(), nil
}

func (r *MemoryRepository) Save(_ context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[account.Email] = account.Clone()
	return nil
}

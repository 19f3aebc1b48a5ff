package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/vaultkeeper/internal/dbx"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/authrequests"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/containers"
)

// InMemoryRepositoryManager keeps everything in process memory. Handles
// are ignored and WithTx gives no atomicity; it exists for development
// runs and tests.
type InMemoryRepositoryManager struct {
	authRequests *authrequests.MemoryRepository
	accounts     *accounts.MemoryRepository
	containers   containers.Repository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		authRequests: authrequests.NewMemoryRepository(),
		accounts:     accounts.NewMemoryRepository(),
		containers:   containers.NewMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) AuthRequests(dbx.DBTX) authrequests.Repository {
	return m.authRequests
}

func (m *InMemoryRepositoryManager) Accounts(dbx.DBTX) accounts.Repository {
	return m.accounts
}

func (m *InMemoryRepositoryManager) Containers(dbx.DBTX) containers.Repository {
	return m.containers
}

func (m *InMemoryRepositoryManager) WithTx(ctx context.Context, _ *sql.DB, fn dbx.TxFunc) error {
	return fn(ctx, nil)
}

package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/repomanager"
)

type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager) *AccountService {
	return &AccountService{db: db, repomanager: m, now: time.Now}
}

// GetOrCreate returns the account for email, creating and saving an empty
// one when none exists. Storage failures other than not-found are returned.
func (s *AccountService) GetOrCreate(ctx context.Context, email string) (*models.Account, error) {
	return s.getOrCreate(ctx, s.repomanager.Accounts(s.db), email)
}

func (s *AccountService) getOrCreate(ctx context.Context, repo accounts.Repository, email string) (*models.Account, error) {
	account, err := repo.Get(ctx, email)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("load account: %w", err)
	}

	account = models.NewAccount(email, s.now())
	if err := repo.Save(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}
	return account, nil
}

// Get returns the account of the authenticated caller.
func (s *AccountService) Get(ctx context.Context) (*models.Account, error) {
	rc, err := requireSession(ctx)
	if err != nil {
		return nil, err
	}
	return rc.Account(), nil
}

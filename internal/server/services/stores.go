package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"github.com/dmitrijs2005/vaultkeeper/internal/dbx"
	"github.com/dmitrijs2005/vaultkeeper/internal/logging"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// StoreService reads and writes the caller's password stores.
type StoreService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	codec       ContainerCodec
	logger      logging.Logger
	now         func() time.Time
}

func NewStoreService(db *sql.DB, m repomanager.RepositoryManager, codec ContainerCodec, l logging.Logger) *StoreService {
	return &StoreService{
		db:          db,
		repomanager: m,
		codec:       codec,
		logger:      l.With("module", "stores"),
		now:         time.Now,
	}
}

// ResolveStoreID maps the main store alias ("" or "main") to the account's
// main store id, which is "" while unassigned. The second result reports
// whether id was the alias.
func ResolveStoreID(account *models.Account, id string) (string, bool) {
	if id == "" || id == common.MainStoreAlias {
		return account.MainStore, true
	}
	return id, false
}

// Get returns the serialized store id of the caller.
func (s *StoreService) Get(ctx context.Context, id string) ([]byte, error) {
	rc, err := requireSession(ctx)
	if err != nil {
		return nil, err
	}

	resolved, _ := ResolveStoreID(rc.Account(), id)
	if resolved == "" {
		return nil, common.NotFound("store not found")
	}

	c, err := s.repomanager.Containers(s.db).Get(ctx, resolved, common.StoreKind)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.NotFound("store not found")
		}
		return nil, fmt.Errorf("load store: %w", err)
	}
	if c.Owner != rc.Email() {
		return nil, common.NotFound("store not found")
	}

	return s.codec.Marshal(c)
}

// Put writes body as the store id of the caller and returns the stored
// form. Writing the main store alias for the first time assigns the
// account its main store.
func (s *StoreService) Put(ctx context.Context, id string, body []byte) ([]byte, error) {
	rc, err := requireSession(ctx)
	if err != nil {
		return nil, err
	}

	c, err := s.codec.Unmarshal(body)
	if err != nil {
		return nil, err
	}

	account := rc.Account()
	resolved, isMain := ResolveStoreID(account, id)

	var bootstrap bool
	switch {
	case isMain && resolved == "":
		resolved = uuid.NewString()
		account.MainStore = resolved
		account.UpdatedAt = s.now()
		bootstrap = true
		c.ID = resolved
	case isMain:
		c.ID = resolved
	case c.ID != resolved:
		return nil, common.BadRequest("store id must match request id")
	}

	c.Kind = common.StoreKind
	c.Owner = account.Email
	c.UpdatedAt = s.now()

	err = s.repomanager.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Containers(tx)

		existing, err := repo.Get(ctx, c.ID, c.Kind)
		switch {
		case err == nil && existing.Owner != c.Owner:
			return common.NotFound("store not found")
		case err != nil && !errors.Is(err, common.ErrorNotFound):
			return fmt.Errorf("load store: %w", err)
		}

		if bootstrap {
			if err := s.repomanager.Accounts(tx).Save(ctx, account); err != nil {
				return fmt.Errorf("save account: %w", err)
			}
			s.logger.Info(ctx, "main store assigned", "email", account.Email, "store_id", c.ID)
		}

		if err := repo.Save(ctx, c); err != nil {
			return fmt.Errorf("save store: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.codec.Marshal(c)
}

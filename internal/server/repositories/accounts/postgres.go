package accounts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vaultkeeper/internal/common"
	"github.com/dmitrijs2005/vaultkeeper/internal/dbx"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, email string) (*models.Account, error) {
	query :=
		`SELECT email, sessions, main_store, created_at, updated_at FROM accounts
		 WHERE email = $1
		 `

	account := &models.Account{}
	var sessions []byte
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&account.Email, &sessions, &account.MainStore, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(sessions, &account.Sessions); err != nil {
		return nil, fmt.Errorf("decode sessions: %w", err)
	}
	if account.Sessions == nil {
		account.Sessions = []models.Session{}
	}

	return account, nil
}

func (r *PostgresRepository) Save(ctx context.Context, account *models.Account) error {
	sessions := account.Sessions
	if sessions == nil {
		sessions = []models.Session{}
	}
	encoded, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("encode sessions: %w", err)
	}

	query :=
		`INSERT INTO accounts (email, sessions, main_store, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (email) DO UPDATE
		 SET sessions = EXCLUDED.sessions, main_store = EXCLUDED.main_store, updated_at = EXCLUDED.updated_at
		 `

	_, err = r.db.ExecContext(ctx, query,
		account.Email, encoded, account.MainStore, account.CreatedAt, account.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

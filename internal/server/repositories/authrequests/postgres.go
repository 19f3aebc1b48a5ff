package authrequests

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

func (r *PostgresRepository) Get(ctx context.Context, sessionID string) (*models.AuthRequest, error) {
	query :=
		`SELECT email, code, session, created_at FROM auth_requests
		 WHERE session_id = $1
		 `

	req := &models.AuthRequest{}
	var session []byte
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&req.Email, &req.Code, &session, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(session, &req.Session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	return req, nil
}

func (r *PostgresRepository) Save(ctx context.Context, req *models.AuthRequest) error {
	session, err := json.Marshal(req.Session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	query :=
		`INSERT INTO auth_requests (session_id, email, code, session, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (session_id) DO UPDATE
		 SET email = EXCLUDED.email, code = EXCLUDED.code, session = EXCLUDED.session
		 `

	if _, err := r.db.ExecContext(ctx, query, req.Session.ID, req.Email, req.Code, session, req.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, sessionID string) error {
	query := `DELETE FROM auth_requests WHERE session_id = $1`

	if _, err := r.db.ExecContext(ctx, query, sessionID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

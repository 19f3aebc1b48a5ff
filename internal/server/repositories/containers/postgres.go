package containers

import (
	"context"
	"database/sql"
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

func (r *PostgresRepository) Get(ctx context.Context, id, kind string) (*models.Container, error) {
	query :=
		`SELECT id, kind, owner, payload, updated_at FROM containers
		 WHERE id = $1 AND kind = $2
		 `

	c := &models.Container{}
	err := r.db.QueryRowContext(ctx, query, id, kind).Scan(&c.ID, &c.Kind, &c.Owner, &c.Payload, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) Save(ctx context.Context, c *models.Container) error {
	query :=
		`INSERT INTO containers (id, kind, owner, payload, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id, kind) DO UPDATE
		 SET owner = EXCLUDED.owner, payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at
		 `

	// payload is NOT NULL; a nil slice would be sent as NULL
	payload := c.Payload
	if payload == nil {
		payload = []byte(`{}`)
	}

	if _, err := r.db.ExecContext(ctx, query, c.ID, c.Kind, c.Owner, payload, c.UpdatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id, kind string) error {
	query := `DELETE FROM containers WHERE id = $1 AND kind = $2`

	if _, err := r.db.ExecContext(ctx, query, id, kind); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

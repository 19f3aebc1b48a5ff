// Package repomanager vends the server repositories bound to a database
// handle, runs schema migrations and scopes units of work to a
// transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/vaultkeeper/internal/dbx"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/authrequests"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/containers"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	AuthRequests(db dbx.DBTX) authrequests.Repository
	Accounts(db dbx.DBTX) accounts.Repository
	Containers(db dbx.DBTX) containers.Repository

	// WithTx runs fn as one unit of work. Repositories obtained from the
	// handle passed to fn take part in it.
	WithTx(ctx context.Context, db *sql.DB, fn dbx.TxFunc) error
}

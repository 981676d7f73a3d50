// Package repomanager vends repositories bound to a DBTX (a *sql.DB or a
// transaction) and runs the schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/jobkeeper/internal/dbx"
	"github.com/dmitrijs2005/jobkeeper/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/jobkeeper/internal/server/repositories/records"
	"github.com/dmitrijs2005/jobkeeper/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/jobkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	// Records returns the repository for a collection, or common.ErrNotFound
	// when no table backs it.
	Records(db dbx.DBTX, collection string) (records.Repository, error)
}

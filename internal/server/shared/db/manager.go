// Package db wires repositories to a concrete storage backend and owns
// schema migrations.
package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/drivenpass/internal/server/credentials"
	"github.com/dmitrijs2005/drivenpass/internal/server/networks"
	"github.com/dmitrijs2005/drivenpass/internal/server/sessions"
	"github.com/dmitrijs2005/drivenpass/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Sessions() sessions.Repository
	Credentials() credentials.Repository
	Networks() networks.Repository
}

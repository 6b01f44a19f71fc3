package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/drivenpass/internal/common"
	"github.com/dmitrijs2005/drivenpass/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create records the token/user association. No uniqueness is enforced: the
// same user may sign in from any number of places.
func (r *PostgresRepository) Create(ctx context.Context, token string, userID int64) error {

	query :=
		`INSERT INTO sessions (token, user_id)
		 VALUES ($1, $2)
		 `

	if _, err := r.db.ExecContext(ctx, query, token, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*Session, error) {
	query :=
		`SELECT id, token, user_id, created_at FROM sessions
		 WHERE token = $1
		 LIMIT 1
		 `

	session := &Session{}
	err := r.db.QueryRowContext(ctx, query, token).
		Scan(&session.ID, &session.Token, &session.UserID, &session.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return session, nil
}

package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/drivenpass/internal/common"
	"github.com/dmitrijs2005/drivenpass/internal/dbx"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolationCode = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindAll(ctx context.Context, userID int64) ([]*Credential, error) {
	query :=
		`SELECT id, user_id, title, url, username, password, created_at FROM credentials
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*Credential{}
	for rows.Next() {
		var item Credential
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.URL, &item.Username, &item.Password, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Find(ctx context.Context, userID, id int64) (*Credential, error) {
	query :=
		`SELECT id, user_id, title, url, username, password, created_at FROM credentials
		 WHERE user_id = $1 AND id = $2
		 `

	credential := &Credential{}
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(
		&credential.ID, &credential.UserID, &credential.Title, &credential.URL,
		&credential.Username, &credential.Password, &credential.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return credential, nil
}

func (r *PostgresRepository) FindByTitle(ctx context.Context, userID int64, title string) (*Credential, error) {
	query :=
		`SELECT id, user_id, title, url, username, password, created_at FROM credentials
		 WHERE user_id = $1 AND title = $2
		 `

	credential := &Credential{}
	err := r.db.QueryRowContext(ctx, query, userID, title).Scan(
		&credential.ID, &credential.UserID, &credential.Title, &credential.URL,
		&credential.Username, &credential.Password, &credential.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return credential, nil
}

func (r *PostgresRepository) CountByURL(ctx context.Context, userID int64, url string) (int, error) {
	query :=
		`SELECT COUNT(*) FROM credentials
		 WHERE user_id = $1 AND url = $2
		 `

	var count int
	if err := r.db.QueryRowContext(ctx, query, userID, url).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

// Create inserts the row. The unique index on (user_id, title) is the
// authoritative uniqueness check; a violation maps to common.ErrConflict.
func (r *PostgresRepository) Create(ctx context.Context, credential *Credential) (*Credential, error) {
	query :=
		`INSERT INTO credentials (user_id, title, url, username, password)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		credential.UserID, credential.Title, credential.URL, credential.Username, credential.Password).
		Scan(&credential.ID, &credential.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return nil, fmt.Errorf("%w: title already in use", common.ErrConflict)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return credential, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM credentials
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

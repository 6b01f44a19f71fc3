package networks

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

func (r *PostgresRepository) FindAll(ctx context.Context, userID int64) ([]*Network, error) {
	query :=
		`SELECT id, user_id, title, network, password, created_at FROM networks
		 WHERE user_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*Network{}
	for rows.Next() {
		var item Network
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.Title, &item.Network, &item.Password, &item.CreatedAt,
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

func (r *PostgresRepository) Find(ctx context.Context, userID, id int64) (*Network, error) {
	query :=
		`SELECT id, user_id, title, network, password, created_at FROM networks
		 WHERE user_id = $1 AND id = $2
		 `

	network := &Network{}
	err := r.db.QueryRowContext(ctx, query, userID, id).Scan(
		&network.ID, &network.UserID, &network.Title, &network.Network,
		&network.Password, &network.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return network, nil
}

func (r *PostgresRepository) FindByTitle(ctx context.Context, userID int64, title string) (*Network, error) {
	query :=
		`SELECT id, user_id, title, network, password, created_at FROM networks
		 WHERE user_id = $1 AND title = $2
		 `

	network := &Network{}
	err := r.db.QueryRowContext(ctx, query, userID, title).Scan(
		&network.ID, &network.UserID, &network.Title, &network.Network,
		&network.Password, &network.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return network, nil
}

// Create inserts the row. The unique index on (user_id, title) is the
// authoritative uniqueness check; a violation maps to common.ErrConflict.
func (r *PostgresRepository) Create(ctx context.Context, network *Network) (*Network, error) {
	query :=
		`INSERT INTO networks (user_id, title, network, password)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		network.UserID, network.Title, network.Network, network.Password).
		Scan(&network.ID, &network.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode {
			return nil, fmt.Errorf("%w: title already in use", common.ErrConflict)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return network, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM networks
		 WHERE id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

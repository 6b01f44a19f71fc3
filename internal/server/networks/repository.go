// Package networks implements ownership-scoped storage of Wi-Fi secrets.
// It mirrors the credentials package, with title uniqueness per user as the
// only conflict rule.
package networks

import "context"

type Repository interface {
	FindAll(ctx context.Context, userID int64) ([]*Network, error)

	// Find matches both owner and id; an existing row owned by someone else
	// is reported the same way as an absent one.
	Find(ctx context.Context, userID, id int64) (*Network, error)

	FindByTitle(ctx context.Context, userID int64, title string) (*Network, error)

	Create(ctx context.Context, network *Network) (*Network, error)

	// Delete removes by internal id only. Callers must resolve the row with
	// an ownership-checked Find first.
	Delete(ctx context.Context, id int64) error
}

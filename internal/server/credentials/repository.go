// Package credentials implements ownership-scoped storage of website
// credentials with encrypted passwords and the create-time conflict policy
// (unique title per user, at most two credentials per site).
package credentials

import "context"

type Repository interface {
	FindAll(ctx context.Context, userID int64) ([]*Credential, error)

	// Find matches both owner and id; an existing row owned by someone else
	// is reported the same way as an absent one.
	Find(ctx context.Context, userID, id int64) (*Credential, error)

	FindByTitle(ctx context.Context, userID int64, title string) (*Credential, error)
	CountByURL(ctx context.Context, userID int64, url string) (int, error)

	Create(ctx context.Context, credential *Credential) (*Credential, error)

	// Delete removes by internal id only. Callers must resolve the row with
	// an ownership-checked Find first.
	Delete(ctx context.Context, id int64) error
}

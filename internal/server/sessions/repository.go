// Package sessions implements the session registry. A structurally valid
// token is only accepted if a matching live entry exists here, so revoking a
// session cannot be bypassed by a merely well-signed token.
package sessions

import "context"

type Repository interface {
	Create(ctx context.Context, token string, userID int64) error
	GetByToken(ctx context.Context, token string) (*Session, error)
}

package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/drivenpass/internal/common"
	"github.com/dmitrijs2005/drivenpass/internal/server/auth"
	"github.com/google/uuid"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// UserIDFromContext extracts the authenticated user id placed there by the
// authenticator middleware.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// requestLogger tags every request with a generated id and logs its outcome.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := s.logger.With("request_id", uuid.NewString())

		start := time.Now()
		next.ServeHTTP(w, r)

		log.Info(r.Context(), "request handled",
			"method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

// authenticator guards vault routes. Missing header, malformed header,
// invalid signature and a token with no registry entry all answer 401; the
// underlying errors stay distinct for callers of authorize.
func (s *Server) authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := s.authorize(r.Context(), r.Header.Get(common.AuthorizationHeaderName))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authorize resolves a raw Authorization header to a user id. The token must
// both carry a valid signature and have a live entry in the session registry:
// a well-signed token that was never registered is rejected, so revocation
// cannot be bypassed.
func (s *Server) authorize(ctx context.Context, rawHeader string) (int64, error) {
	if rawHeader == "" {
		return 0, fmt.Errorf("%w: authorization header missing", common.ErrUnauthorized)
	}

	parts := strings.SplitN(rawHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], common.BearerPrefix) {
		return 0, fmt.Errorf("%w: invalid authorization header format", common.ErrUnauthorized)
	}
	token := parts[1]

	if _, err := auth.GetUserIDFromToken(token, s.jwtSecret); err != nil {
		return 0, err
	}

	session, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, fmt.Errorf("%w: session not found", common.ErrUnauthorized)
		}
		return 0, err
	}

	return session.UserID, nil
}

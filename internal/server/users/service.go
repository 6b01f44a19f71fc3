package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/drivenpass/internal/common"
	"github.com/dmitrijs2005/drivenpass/internal/server/auth"
	"github.com/dmitrijs2005/drivenpass/internal/server/config"
	"github.com/dmitrijs2005/drivenpass/internal/server/sessions"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt cost 12 is deliberately expensive; registration is rare, guessing
// should be slow.
const bcryptCost = 12

// AuthResult is what a successful sign-in returns: the account (sans hash at
// the JSON level) and the session token.
type AuthResult struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type Service struct {
	repo          Repository
	sessionRepo   sessions.Repository
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, sessionRepo sessions.Repository, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		sessionRepo:   sessionRepo,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.AccessTokenValidityDuration,
	}
}

// Register creates an account with a bcrypt-hashed password. A taken email
// fails with common.ErrConflict. The existence check here is a fast path for
// a friendly message; the unique index on users.email is what actually closes
// the concurrent-register window (the repo maps that violation to the same
// error kind).
func (s *Service) Register(ctx context.Context, email, password string) (*User, error) {

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, fmt.Errorf("%w: there is already an user with given email", common.ErrConflict)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user, err := s.repo.Create(ctx, &User{Email: email, PasswordHash: string(hash)})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// SignIn verifies the credentials and issues a session. Unknown email and
// wrong password return the same common.ErrInvalidCredentials so callers
// cannot probe which accounts exist.
func (s *Service) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, common.ErrInternal
	}

	if err := s.sessionRepo.Create(ctx, token, user.ID); err != nil {
		return nil, fmt.Errorf("error creating session: %w", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

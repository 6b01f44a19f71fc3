package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/drivenpass/internal/common"
	"github.com/dmitrijs2005/drivenpass/internal/cryptox"
	"github.com/dmitrijs2005/drivenpass/internal/logging"
	"github.com/dmitrijs2005/drivenpass/internal/server/config"
	"github.com/dmitrijs2005/drivenpass/internal/server/credentials"
	"github.com/dmitrijs2005/drivenpass/internal/server/networks"
	"github.com/dmitrijs2005/drivenpass/internal/server/sessions"
	"github.com/dmitrijs2005/drivenpass/internal/server/users"
	"github.com/stretchr/testify/require"
)

const testSecretKey = "test-jwt-secret"

// fakeUserRepo is an in-memory users.Repository keyed by email.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	byMail map[string]*users.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byMail: map[string]*users.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, user *users.User) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byMail[user.Email]; ok {
		return nil, common.ErrConflict
	}
	r.nextID++
	saved := *user
	saved.ID = r.nextID
	saved.CreatedAt = time.Now()
	r.byMail[saved.Email] = &saved
	return &saved, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.byMail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return user, nil
}

// fakeSessionRepo is an in-memory sessions.Repository keyed by token.
type fakeSessionRepo struct {
	mu      sync.Mutex
	nextID  int64
	byToken map[string]*sessions.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byToken: map[string]*sessions.Session{}}
}

func (r *fakeSessionRepo) Create(_ context.Context, token string, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	r.byToken[token] = &sessions.Session{ID: r.nextID, Token: token, UserID: userID, CreatedAt: time.Now()}
	return nil
}

func (r *fakeSessionRepo) GetByToken(_ context.Context, token string) (*sessions.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.byToken[token]
	if !ok {
		return nil, common.ErrNotFound
	}
	return session, nil
}

// fakeCredentialRepo is an in-memory credentials.Repository.
type fakeCredentialRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   []*credentials.Credential
}

func (r *fakeCredentialRepo) FindAll(_ context.Context, userID int64) ([]*credentials.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*credentials.Credential{}
	for _, row := range r.rows {
		if row.UserID == userID {
			copied := *row
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeCredentialRepo) Find(_ context.Context, userID, id int64) (*credentials.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.UserID == userID && row.ID == id {
			copied := *row
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeCredentialRepo) FindByTitle(_ context.Context, userID int64, title string) (*credentials.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.UserID == userID && row.Title == title {
			copied := *row
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeCredentialRepo) CountByURL(_ context.Context, userID int64, url string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, row := range r.rows {
		if row.UserID == userID && row.URL == url {
			count++
		}
	}
	return count, nil
}

func (r *fakeCredentialRepo) Create(_ context.Context, credential *credentials.Credential) (*credentials.Credential, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	saved := *credential
	saved.ID = r.nextID
	saved.CreatedAt = time.Now()
	r.rows = append(r.rows, &saved)
	copied := saved
	return &copied, nil
}

func (r *fakeCredentialRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

// fakeNetworkRepo is an in-memory networks.Repository.
type fakeNetworkRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   []*networks.Network
}

func (r *fakeNetworkRepo) FindAll(_ context.Context, userID int64) ([]*networks.Network, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := []*networks.Network{}
	for _, row := range r.rows {
		if row.UserID == userID {
			copied := *row
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeNetworkRepo) Find(_ context.Context, userID, id int64) (*networks.Network, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.UserID == userID && row.ID == id {
			copied := *row
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeNetworkRepo) FindByTitle(_ context.Context, userID int64, title string) (*networks.Network, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.UserID == userID && row.Title == title {
			copied := *row
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *fakeNetworkRepo) Create(_ context.Context, network *networks.Network) (*networks.Network, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	saved := *network
	saved.ID = r.nextID
	saved.CreatedAt = time.Now()
	r.rows = append(r.rows, &saved)
	copied := saved
	return &copied, nil
}

func (r *fakeNetworkRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, row := range r.rows {
		if row.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

// testEnv bundles a fully wired server with its in-memory backends so tests
// can both hit the HTTP surface and inspect stored state.
type testEnv struct {
	server      *Server
	ts          *httptest.Server
	userRepo    *fakeUserRepo
	sessionRepo *fakeSessionRepo
	credRepo    *fakeCredentialRepo
	netRepo     *fakeNetworkRepo
	cipher      *cryptox.Cipher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cipher, err := cryptox.New("test-cipher-secret")
	require.NoError(t, err)

	cfg := &config.Config{
		SecretKey:                   testSecretKey,
		AccessTokenValidityDuration: time.Hour,
	}

	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	credRepo := &fakeCredentialRepo{}
	netRepo := &fakeNetworkRepo{}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))

	server := NewServer(
		":0",
		logger,
		users.NewService(userRepo, sessionRepo, cfg),
		credentials.NewService(credRepo, cipher),
		networks.NewService(netRepo, cipher),
		sessionRepo,
		cfg.SecretKey,
	)

	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)

	return &testEnv{
		server:      server,
		ts:          ts,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		credRepo:    credRepo,
		netRepo:     netRepo,
		cipher:      cipher,
	}
}

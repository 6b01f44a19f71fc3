package credentials

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/drivenpass/internal/common"
	"github.com/dmitrijs2005/drivenpass/internal/cryptox"
)

// maxPerURL caps how many credentials one user may keep for the same site.
const maxPerURL = 2

type Service struct {
	repo   Repository
	cipher *cryptox.Cipher
}

func NewService(repo Repository, cipher *cryptox.Cipher) *Service {
	return &Service{repo: repo, cipher: cipher}
}

// ListAll returns every credential of the user with passwords decrypted.
// A user with no rows gets an empty slice; a non-positive userID is rejected
// as not found before touching storage.
func (s *Service) ListAll(ctx context.Context, userID int64) ([]*Credential, error) {
	if userID < 1 {
		return nil, common.ErrNotFound
	}

	items, err := s.repo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		decrypted, err := s.cipher.Decrypt(item.Password)
		if err != nil {
			return nil, err
		}
		item.Password = decrypted
	}

	return items, nil
}

// Get returns one credential, matching both owner and id, with the password
// decrypted. A row owned by someone else surfaces as common.ErrNotFound,
// never revealing its existence.
func (s *Service) Get(ctx context.Context, userID, id int64) (*Credential, error) {
	if userID < 1 || id < 1 {
		return nil, common.ErrNotFound
	}

	credential, err := s.repo.Find(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	decrypted, err := s.cipher.Decrypt(credential.Password)
	if err != nil {
		return nil, err
	}
	credential.Password = decrypted

	return credential, nil
}

// Create validates the conflict policy, encrypts the password and persists
// the row. The returned credential carries the ciphertext password; callers
// wanting the plaintext back should Get it.
func (s *Service) Create(ctx context.Context, userID int64, params CreateParams) (*Credential, error) {

	_, err := s.repo.FindByTitle(ctx, userID, params.Title)
	if err == nil {
		return nil, fmt.Errorf("%w: title already in use", common.ErrConflict)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	count, err := s.repo.CountByURL(ctx, userID, params.URL)
	if err != nil {
		return nil, err
	}
	if count >= maxPerURL {
		return nil, fmt.Errorf("%w: only two credentials allowed per site", common.ErrConflict)
	}

	encrypted, err := s.cipher.Encrypt(params.Password)
	if err != nil {
		return nil, err
	}

	credential := &Credential{
		UserID:   userID,
		Title:    params.Title,
		URL:      params.URL,
		Username: params.Username,
		Password: encrypted,
	}

	return s.repo.Create(ctx, credential)
}

// Delete removes a credential after the same ownership-checked lookup Get
// performs. The deletion itself is by internal id only.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	credential, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, credential.ID)
}

package networks

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/drivenpass/internal/common"
	"github.com/dmitrijs2005/drivenpass/internal/cryptox"
)

type Service struct {
	repo   Repository
	cipher *cryptox.Cipher
}

func NewService(repo Repository, cipher *cryptox.Cipher) *Service {
	return &Service{repo: repo, cipher: cipher}
}

// ListAll returns every network of the user with passwords decrypted.
func (s *Service) ListAll(ctx context.Context, userID int64) ([]*Network, error) {
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

// Get returns one network, matching both owner and id, with the password
// decrypted. Ownership failures surface as common.ErrNotFound.
func (s *Service) Get(ctx context.Context, userID, id int64) (*Network, error) {
	if userID < 1 || id < 1 {
		return nil, common.ErrNotFound
	}

	network, err := s.repo.Find(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	decrypted, err := s.cipher.Decrypt(network.Password)
	if err != nil {
		return nil, err
	}
	network.Password = decrypted

	return network, nil
}

// Create enforces title uniqueness per user, encrypts the password and
// persists the row.
func (s *Service) Create(ctx context.Context, userID int64, params CreateParams) (*Network, error) {

	_, err := s.repo.FindByTitle(ctx, userID, params.Title)
	if err == nil {
		return nil, fmt.Errorf("%w: title already in use", common.ErrConflict)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	encrypted, err := s.cipher.Encrypt(params.Password)
	if err != nil {
		return nil, err
	}

	network := &Network{
		UserID:   userID,
		Title:    params.Title,
		Network:  params.Network,
		Password: encrypted,
	}

	return s.repo.Create(ctx, network)
}

// Delete removes a network after the same ownership-checked lookup Get
// performs.
func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	network, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}

	return s.repo.Delete(ctx, network.ID)
}

package networks

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/drivenpass/internal/common"
	"github.com/dmitrijs2005/drivenpass/internal/cryptox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	items  []*Network
	nextID int64
}

func (f *fakeRepo) FindAll(ctx context.Context, userID int64) ([]*Network, error) {
	result := []*Network{}
	for _, item := range f.items {
		if item.UserID == userID {
			copy := *item
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (f *fakeRepo) Find(ctx context.Context, userID, id int64) (*Network, error) {
	for _, item := range f.items {
		if item.UserID == userID && item.ID == id {
			copy := *item
			return &copy, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeRepo) FindByTitle(ctx context.Context, userID int64, title string) (*Network, error) {
	for _, item := range f.items {
		if item.UserID == userID && item.Title == title {
			copy := *item
			return &copy, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeRepo) Create(ctx context.Context, network *Network) (*Network, error) {
	f.nextID++
	network.ID = f.nextID
	stored := *network
	f.items = append(f.items, &stored)
	return network, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeRepo) {
	t.Helper()
	cipher, err := cryptox.New("test-secret")
	require.NoError(t, err)
	repo := &fakeRepo{}
	return NewService(repo, cipher), repo
}

var homeParams = CreateParams{Title: "home", Network: "MyWifi", Password: "wifi-secret"}

func TestCreate_EncryptsPasswordAtRest(t *testing.T) {
	s, repo := newTestService(t)

	_, err := s.Create(context.Background(), 1, homeParams)
	require.NoError(t, err)

	require.Len(t, repo.items, 1)
	assert.NotEqual(t, "wifi-secret", repo.items[0].Password)
}

func TestCreate_DuplicateTitleConflicts(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Create(context.Background(), 1, homeParams)
	require.NoError(t, err)

	_, err = s.Create(context.Background(), 1, CreateParams{Title: "home", Network: "Other", Password: "x"})
	assert.ErrorIs(t, err, common.ErrConflict)
}

func TestCreate_NoLimitOnSharedNetworkName(t *testing.T) {
	// unlike credentials and their two-per-site rule, any number of entries
	// may reference the same SSID
	s, _ := newTestService(t)

	for i, title := range []string{"home", "work", "cafe"} {
		_, err := s.Create(context.Background(), 1, CreateParams{
			Title: title, Network: "SameSSID", Password: "p",
		})
		require.NoError(t, err, "create %d", i)
	}
}

func TestGet_DecryptsPassword(t *testing.T) {
	s, _ := newTestService(t)

	created, err := s.Create(context.Background(), 1, homeParams)
	require.NoError(t, err)

	got, err := s.Get(context.Background(), 1, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "wifi-secret", got.Password)
	assert.Equal(t, "MyWifi", got.Network)
}

func TestGet_OtherOwnerIsNotFound(t *testing.T) {
	s, _ := newTestService(t)

	created, err := s.Create(context.Background(), 1, homeParams)
	require.NoError(t, err)

	_, err = s.Get(context.Background(), 2, created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListAll_DecryptsEachRow(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.Create(context.Background(), 1, homeParams)
	require.NoError(t, err)
	_, err = s.Create(context.Background(), 1, CreateParams{Title: "work", Network: "Office", Password: "office-secret"})
	require.NoError(t, err)

	items, err := s.ListAll(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "wifi-secret", items[0].Password)
	assert.Equal(t, "office-secret", items[1].Password)
}

func TestListAll_InvalidUserID(t *testing.T) {
	s, _ := newTestService(t)

	_, err := s.ListAll(context.Background(), -1)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete_OwnershipChecked(t *testing.T) {
	s, repo := newTestService(t)

	created, err := s.Create(context.Background(), 1, homeParams)
	require.NoError(t, err)

	err = s.Delete(context.Background(), 2, created.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Len(t, repo.items, 1)

	require.NoError(t, s.Delete(context.Background(), 1, created.ID))
	assert.Empty(t, repo.items)
}

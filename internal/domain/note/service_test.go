package note

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, ownerID string) ([]Note, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Note), args.Error(1)
}

func (m *MockRepository) Get(ctx context.Context, ownerID, noteID string) (*Note, error) {
	args := m.Called(ctx, ownerID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Note), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, n *Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, n *Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, ownerID, noteID string) error {
	args := m.Called(ctx, ownerID, noteID)
	return args.Error(0)
}

type fakeCache struct {
	data map[string][]Note
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]Note)}
}

func (c *fakeCache) Get(_ context.Context, ownerID string) ([]Note, bool) {
	notes, ok := c.data[ownerID]
	return notes, ok
}

func (c *fakeCache) Set(_ context.Context, ownerID string, notes []Note) {
	c.data[ownerID] = notes
}

func (c *fakeCache) Invalidate(_ context.Context, ownerID string) {
	delete(c.data, ownerID)
}

const owner = "2b7e9c3a-5d1f-4e8b-9a60-7c4d2f1e0b9a"

func TestService_Create_AssignsIdentityAndTimestamps(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, nil, slog.Default())

	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *Note) bool {
		_, err := uuid.Parse(n.ID)
		return err == nil && n.OwnerID == owner && n.CreatedAt.Equal(n.UpdatedAt)
	})).Return(nil)

	n, err := service.Create(context.Background(), owner, "T", "C")
	require.NoError(t, err)
	assert.Equal(t, "T", n.Title)
	assert.Equal(t, "C", n.Content)
	assert.False(t, n.CreatedAt.IsZero())

	repo.AssertExpectations(t)
}

func TestService_Create_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, nil, slog.Default())

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	_, err := service.Create(context.Background(), owner, "T", "C")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insert failed")
}

func TestService_List_ReadThroughCache(t *testing.T) {
	repo := new(MockRepository)
	cache := newFakeCache()
	service := NewService(repo, cache, slog.Default())

	notes := []Note{
		{ID: "n2", OwnerID: owner, Title: "Newer"},
		{ID: "n1", OwnerID: owner, Title: "Older"},
	}
	repo.On("List", mock.Anything, owner).Return(notes, nil).Once()

	// Первый вызов идет в репозиторий и наполняет кэш
	resp, err := service.List(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)

	// Второй вызов обслуживается из кэша, репозиторий больше не трогаем
	resp, err = service.List(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, notes, resp.Notes)

	repo.AssertExpectations(t)
}

func TestService_Update_InvalidatesCache(t *testing.T) {
	repo := new(MockRepository)
	cache := newFakeCache()
	cache.Set(context.Background(), owner, []Note{{ID: "n1"}})
	service := NewService(repo, cache, slog.Default())

	existing := &Note{ID: "n1", OwnerID: owner, Title: "Old", Content: "Old body"}
	repo.On("Get", mock.Anything, owner, "n1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(n *Note) bool {
		return n.ID == "n1" && n.Title == "New" && n.Content == "New body"
	})).Return(nil)

	updated, err := service.Update(context.Background(), owner, "n1", "New", "New body")
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.False(t, updated.UpdatedAt.IsZero())

	_, ok := cache.Get(context.Background(), owner)
	assert.False(t, ok, "cache entry must be invalidated after update")
}

func TestService_Update_NotFound(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, nil, slog.Default())

	repo.On("Get", mock.Anything, owner, "missing").Return(nil, ErrNotFound)

	_, err := service.Update(context.Background(), owner, "missing", "T", "C")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := new(MockRepository)
	cache := newFakeCache()
	cache.Set(context.Background(), owner, []Note{{ID: "n1"}})
	service := NewService(repo, cache, slog.Default())

	repo.On("Delete", mock.Anything, owner, "n1").Return(nil)

	err := service.Delete(context.Background(), owner, "n1")
	require.NoError(t, err)

	_, ok := cache.Get(context.Background(), owner)
	assert.False(t, ok)
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, nil, slog.Default())

	repo.On("Delete", mock.Anything, owner, "missing").Return(ErrNotFound)

	err := service.Delete(context.Background(), owner, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Get(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo, nil, slog.Default())

	n := &Note{ID: "n1", OwnerID: owner, Title: "T", UpdatedAt: time.Now()}
	repo.On("Get", mock.Anything, owner, "n1").Return(n, nil)

	got, err := service.Get(context.Background(), owner, "n1")
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

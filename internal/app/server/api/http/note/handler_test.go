package note

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gophnotes/internal/app/server/api/http/middleware/auth"
	"gophnotes/internal/domain/note"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, ownerID string) (note.ListResponse, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(note.ListResponse), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, ownerID, noteID string) (*note.Note, error) {
	args := m.Called(ctx, ownerID, noteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*note.Note), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, ownerID, title, content string) (*note.Note, error) {
	args := m.Called(ctx, ownerID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*note.Note), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, ownerID, noteID, title, content string) (*note.Note, error) {
	args := m.Called(ctx, ownerID, noteID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*note.Note), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, ownerID, noteID string) error {
	args := m.Called(ctx, ownerID, noteID)
	return args.Error(0)
}

const ownerID = "5a4f1c9e-2d3b-47a8-9c10-6e8b2f7d4a55"

func TestHandler_List(t *testing.T) {
	authCtx := auth.WithUserID(context.Background(), ownerID)

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		now := time.Now().UTC()
		svc.On("List", mock.Anything, ownerID).Return(note.ListResponse{
			Notes: []note.Note{
				{ID: "n2", OwnerID: ownerID, Title: "Newer", UpdatedAt: now},
				{ID: "n1", OwnerID: ownerID, Title: "Older", UpdatedAt: now.Add(-time.Hour)},
			},
			Total: 2,
		}, nil)

		out, err := h.list(authCtx, nil)

		require.NoError(t, err)
		assert.Equal(t, 2, out.Body.Total)
		assert.Equal(t, "Newer", out.Body.Notes[0].Title)
		svc.AssertExpectations(t)
	})

	t.Run("Unauthorized_NoUserInContext", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		_, err := h.list(context.Background(), nil)

		assert.Error(t, err)
	})
}

func TestHandler_Create(t *testing.T) {
	authCtx := auth.WithUserID(context.Background(), ownerID)

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		created := &note.Note{ID: "n1", OwnerID: ownerID, Title: "T", Content: "C"}
		svc.On("Create", mock.Anything, ownerID, "T", "C").Return(created, nil)

		input := &createInput{}
		input.Body.Title = "T"
		input.Body.Content = "C"

		out, err := h.create(authCtx, input)

		require.NoError(t, err)
		assert.Equal(t, "Ok", out.Body.Status)
		assert.Equal(t, "n1", out.Body.Note.ID)
		svc.AssertExpectations(t)
	})

	t.Run("ServiceError", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		svc.On("Create", mock.Anything, ownerID, "T", "C").
			Return(nil, errors.New("db down"))

		input := &createInput{}
		input.Body.Title = "T"
		input.Body.Content = "C"

		_, err := h.create(authCtx, input)

		assert.Error(t, err)
	})
}

func TestHandler_Update(t *testing.T) {
	authCtx := auth.WithUserID(context.Background(), ownerID)

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		updated := &note.Note{ID: "n1", OwnerID: ownerID, Title: "New", Content: "Body"}
		svc.On("Update", mock.Anything, ownerID, "n1", "New", "Body").Return(updated, nil)

		input := &updateInput{ID: "n1"}
		input.Body.Title = "New"
		input.Body.Content = "Body"

		out, err := h.update(authCtx, input)

		require.NoError(t, err)
		assert.Equal(t, "New", out.Body.Note.Title)
		svc.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		svc.On("Update", mock.Anything, ownerID, "missing", "T", "C").
			Return(nil, note.ErrNotFound)

		input := &updateInput{ID: "missing"}
		input.Body.Title = "T"
		input.Body.Content = "C"

		_, err := h.update(authCtx, input)

		assert.Error(t, err)
	})
}

func TestHandler_Delete(t *testing.T) {
	authCtx := auth.WithUserID(context.Background(), ownerID)

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		svc.On("Delete", mock.Anything, ownerID, "n1").Return(nil)

		out, err := h.delete(authCtx, &deleteInput{ID: "n1"})

		require.NoError(t, err)
		assert.Equal(t, "Ok", out.Body.Status)
		svc.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		svc.On("Delete", mock.Anything, ownerID, "missing").Return(note.ErrNotFound)

		_, err := h.delete(authCtx, &deleteInput{ID: "missing"})

		assert.Error(t, err)
	})
}

func TestHandler_Find(t *testing.T) {
	authCtx := auth.WithUserID(context.Background(), ownerID)

	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		svc.On("Get", mock.Anything, ownerID, "n1").
			Return(&note.Note{ID: "n1", OwnerID: ownerID, Title: "T"}, nil)

		out, err := h.find(authCtx, &findInput{ID: "n1"})

		require.NoError(t, err)
		assert.Equal(t, "T", out.Body.Note.Title)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockService)
		h := NewHandler(svc, nil, nil)

		svc.On("Get", mock.Anything, ownerID, "missing").Return(nil, note.ErrNotFound)

		_, err := h.find(authCtx, &findInput{ID: "missing"})

		assert.Error(t, err)
	})
}

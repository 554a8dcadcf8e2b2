package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gophnotes/internal/app/server/api/http/middleware/auth"
	"gophnotes/internal/domain/session"
	"gophnotes/internal/domain/user"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (user.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id string) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) Validate(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

const userID = "9c2e7b14-6f3a-4d58-8a01-3b5c9e2d7f46"

func TestHandler_Register(t *testing.T) {
	t.Run("Success_ReturnsToken", func(t *testing.T) {
		users := new(MockUserService)
		sessions := new(MockSessionService)
		h := NewHandler(users, sessions, nil, nil, nil)

		users.On("Register", mock.Anything, "new@example.com", "secret1").Return(userID, nil)
		sessions.On("Create", mock.Anything, userID).Return("signed.jwt.token", nil)

		input := &registerInput{}
		input.Body.Email = "new@example.com"
		input.Body.Password = "secret1"

		out, err := h.register(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, userID, out.Body.ID)
		assert.Equal(t, "signed.jwt.token", out.Body.Token)
		users.AssertExpectations(t)
		sessions.AssertExpectations(t)
	})

	t.Run("EmailTaken", func(t *testing.T) {
		users := new(MockUserService)
		sessions := new(MockSessionService)
		h := NewHandler(users, sessions, nil, nil, nil)

		users.On("Register", mock.Anything, "dup@example.com", "secret1").
			Return("", user.ErrEmailTaken)

		input := &registerInput{}
		input.Body.Email = "dup@example.com"
		input.Body.Password = "secret1"

		_, err := h.register(context.Background(), input)

		assert.Error(t, err)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		users := new(MockUserService)
		sessions := new(MockSessionService)
		h := NewHandler(users, sessions, nil, nil, nil)

		users.On("Register", mock.Anything, "bad", "x").
			Return("", user.ErrInvalidInput)

		input := &registerInput{}
		input.Body.Email = "bad"
		input.Body.Password = "x"

		_, err := h.register(context.Background(), input)

		assert.Error(t, err)
	})
}

func TestHandler_Login(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		users := new(MockUserService)
		sessions := new(MockSessionService)
		h := NewHandler(users, sessions, nil, nil, nil)

		users.On("Authenticate", mock.Anything, "u@example.com", "secret1").
			Return(user.User{ID: userID, Email: "u@example.com"}, nil)
		sessions.On("Create", mock.Anything, userID).Return("signed.jwt.token", nil)

		input := &loginInput{}
		input.Body.Email = "u@example.com"
		input.Body.Password = "secret1"

		out, err := h.login(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", out.Body.Token)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		users := new(MockUserService)
		sessions := new(MockSessionService)
		h := NewHandler(users, sessions, nil, nil, nil)

		users.On("Authenticate", mock.Anything, "u@example.com", "wrong").
			Return(user.User{}, user.ErrInvalidAuth)

		input := &loginInput{}
		input.Body.Email = "u@example.com"
		input.Body.Password = "wrong"

		_, err := h.login(context.Background(), input)

		assert.Error(t, err)
		sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("UnknownEmail_SameErrorAsWrongPassword", func(t *testing.T) {
		users := new(MockUserService)
		sessions := new(MockSessionService)
		h := NewHandler(users, sessions, nil, nil, nil)

		users.On("Authenticate", mock.Anything, "ghost@example.com", "secret1").
			Return(user.User{}, user.ErrNotFound)

		input := &loginInput{}
		input.Body.Email = "ghost@example.com"
		input.Body.Password = "secret1"

		_, err := h.login(context.Background(), input)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid credentials")
	})
}

func TestHandler_Logout(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		users := new(MockUserService)
		sessions := new(MockSessionService)
		h := NewHandler(users, sessions, nil, nil, nil)

		sessions.On("Revoke", mock.Anything, "signed.jwt.token").Return(nil)

		out, err := h.logout(context.Background(), &logoutInput{
			Authorization: "Bearer signed.jwt.token",
		})

		require.NoError(t, err)
		assert.Equal(t, "Ok", out.Body.Status)
		sessions.AssertExpectations(t)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		users := new(MockUserService)
		sessions := new(MockSessionService)
		h := NewHandler(users, sessions, nil, nil, nil)

		sessions.On("Revoke", mock.Anything, "garbage").Return(session.ErrInvalidToken)

		_, err := h.logout(context.Background(), &logoutInput{
			Authorization: "Bearer garbage",
		})

		assert.Error(t, err)
	})
}

func TestHandler_Me(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		users := new(MockUserService)
		sessions := new(MockSessionService)
		h := NewHandler(users, sessions, nil, nil, nil)

		users.On("Get", mock.Anything, userID).
			Return(user.User{ID: userID, Email: "u@example.com"}, nil)

		ctx := auth.WithUserID(context.Background(), userID)

		out, err := h.me(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, "u@example.com", out.Body.Email)
	})

	t.Run("NoUserInContext", func(t *testing.T) {
		users := new(MockUserService)
		sessions := new(MockSessionService)
		h := NewHandler(users, sessions, nil, nil, nil)

		_, err := h.me(context.Background(), nil)

		assert.Error(t, err)
	})

	t.Run("UserDeleted", func(t *testing.T) {
		users := new(MockUserService)
		sessions := new(MockSessionService)
		h := NewHandler(users, sessions, nil, nil, nil)

		users.On("Get", mock.Anything, userID).Return(user.User{}, user.ErrNotFound)

		ctx := auth.WithUserID(context.Background(), userID)

		_, err := h.me(ctx, nil)

		assert.Error(t, err)
	})
}

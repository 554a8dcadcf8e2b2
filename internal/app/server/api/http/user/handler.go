package user

import (
	"context"
	"errors"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"gophnotes/internal/app/server/api/http/middleware/auth"
	"gophnotes/internal/domain/session"
	"gophnotes/internal/domain/user"
)

type Handler struct {
	service        user.Servicer
	session        session.Servicer
	log            *slog.Logger
	middleware     huma.Middlewares
	authMiddleware huma.Middlewares
}

func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		service:        service,
		session:        session,
		log:            log,
		middleware:     public,
		authMiddleware: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.meOp(), h.me)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	userID, err := h.service.Register(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			return nil, huma.Error409Conflict("Email already registered")
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, err
	}

	token, err := h.session.Create(ctx, userID)
	if err != nil {
		h.log.Error("failed to open session after register", "user_id", userID, "error", err)
		return nil, err
	}

	return &registerOutput{
		Body: RegisterResponse{ID: userID, Token: token},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		// Не раскрываем, что именно не подошло
		if errors.Is(err, user.ErrNotFound) || errors.Is(err, user.ErrInvalidAuth) {
			return nil, huma.Error401Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	token, err := h.session.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("failed to open session", "user_id", u.ID, "error", err)
		return nil, err
	}

	return &loginOutput{
		Body: LoginResponse{Token: token},
	}, nil
}

func (h *Handler) logout(ctx context.Context, input *logoutInput) (*logoutOutput, error) {
	token, _ := strings.CutPrefix(input.Authorization, "Bearer ")

	if err := h.session.Revoke(ctx, token); err != nil {
		if errors.Is(err, session.ErrInvalidToken) {
			return nil, huma.Error401Unauthorized("Unauthorized")
		}
		return nil, err
	}

	return &logoutOutput{
		Body: LogoutResponse{Status: "Ok"},
	}, nil
}

func (h *Handler) me(ctx context.Context, _ *struct{}) (*meOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.service.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, huma.Error401Unauthorized("Unauthorized")
		}
		return nil, err
	}

	return &meOutput{
		Body: MeResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt},
	}, nil
}

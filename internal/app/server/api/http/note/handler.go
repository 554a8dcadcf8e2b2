package note

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"gophnotes/internal/app/server/api/http/middleware/auth"
	"gophnotes/internal/domain/note"
)

type Handler struct {
	service    note.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service note.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	notes, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &listOutput{
		Body: notes,
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*noteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	n, err := h.service.Get(ctx, userID, input.ID)
	if err != nil {
		if errors.Is(err, note.ErrNotFound) {
			return nil, huma.Error404NotFound("Note not found")
		}
		return nil, err
	}

	return &noteOutput{
		Body: noteResponse{Status: "Ok", Note: n},
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*noteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	n, err := h.service.Create(ctx, userID, input.Body.Title, input.Body.Content)
	if err != nil {
		return nil, err
	}

	return &noteOutput{
		Body: noteResponse{Status: "Ok", Note: n},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*noteOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	n, err := h.service.Update(ctx, userID, input.ID, input.Body.Title, input.Body.Content)
	if err != nil {
		if errors.Is(err, note.ErrNotFound) {
			return nil, huma.Error404NotFound("Note not found")
		}
		return nil, err
	}

	return &noteOutput{
		Body: noteResponse{Status: "Ok", Note: n},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*statusOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		if errors.Is(err, note.ErrNotFound) {
			return nil, huma.Error404NotFound("Note not found")
		}
		return nil, err
	}

	return &statusOutput{
		Body: statusResponse{Status: "Ok"},
	}, nil
}

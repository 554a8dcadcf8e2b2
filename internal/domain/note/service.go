package note

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Service defines the business logic for note operations
type Service struct {
	repo  Repository
	cache ListCache
	log   *slog.Logger
}

type Servicer interface {
	List(ctx context.Context, ownerID string) (ListResponse, error)
	Get(ctx context.Context, ownerID, noteID string) (*Note, error)
	Create(ctx context.Context, ownerID, title, content string) (*Note, error)
	Update(ctx context.Context, ownerID, noteID, title, content string) (*Note, error)
	Delete(ctx context.Context, ownerID, noteID string) error
}

// NewService creates a new note service. The cache may be nil.
func NewService(repo Repository, cache ListCache, log *slog.Logger) Servicer {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log.With("component", "note_service"),
	}
}

// List returns all notes of an owner ordered by updated_at descending.
func (s *Service) List(ctx context.Context, ownerID string) (ListResponse, error) {
	if s.cache != nil {
		if notes, ok := s.cache.Get(ctx, ownerID); ok {
			return ListResponse{Notes: notes, Total: len(notes)}, nil
		}
	}

	notes, err := s.repo.List(ctx, ownerID)
	if err != nil {
		s.log.Error("failed to list notes", "owner_id", ownerID, "error", err)
		return ListResponse{}, fmt.Errorf("list notes: %w", err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, ownerID, notes)
	}

	return ListResponse{Notes: notes, Total: len(notes)}, nil
}

// Get returns a specific note by ID
func (s *Service) Get(ctx context.Context, ownerID, noteID string) (*Note, error) {
	n, err := s.repo.Get(ctx, ownerID, noteID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get note", "note_id", noteID, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get note: %w", err)
	}

	return n, nil
}

// Create inserts a new note; the server assigns the id and both timestamps.
func (s *Service) Create(ctx context.Context, ownerID, title, content string) (*Note, error) {
	now := time.Now().UTC()
	n := &Note{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		s.log.Error("failed to create note", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("create note: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, ownerID)
	}

	s.log.Info("note created", "note_id", n.ID, "owner_id", ownerID)
	return n, nil
}

// Update rewrites title and content and bumps updated_at. The stored order of
// other notes is untouched; only a fresh List reflects the new ordering.
func (s *Service) Update(ctx context.Context, ownerID, noteID, title, content string) (*Note, error) {
	current, err := s.repo.Get(ctx, ownerID, noteID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get note for update: %w", err)
	}

	current.Title = title
	current.Content = content
	current.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, current); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update note", "note_id", noteID, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("update note: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, ownerID)
	}

	s.log.Info("note updated", "note_id", noteID, "owner_id", ownerID)
	return current, nil
}

// Delete permanently removes a note
func (s *Service) Delete(ctx context.Context, ownerID, noteID string) error {
	if err := s.repo.Delete(ctx, ownerID, noteID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete note", "note_id", noteID, "owner_id", ownerID, "error", err)
		return fmt.Errorf("delete note: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, ownerID)
	}

	s.log.Info("note deleted", "note_id", noteID, "owner_id", ownerID)
	return nil
}

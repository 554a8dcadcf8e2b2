package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"gophnotes/internal/domain/note"
)

type NoteRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewNoteRepository(db *sql.DB, log *slog.Logger) *NoteRepository {
	return &NoteRepository{
		db:  db,
		log: log.With("component", "note_repository"),
	}
}

func (r *NoteRepository) List(ctx context.Context, ownerID string) ([]note.Note, error) {
	const query = `
		SELECT id, owner_id, title, content, created_at, updated_at
		FROM notes
		WHERE owner_id = ?
		ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		r.log.Error("failed to list notes", "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []note.Note
	for rows.Next() {
		var n note.Note
		err := rows.Scan(&n.ID, &n.OwnerID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

func (r *NoteRepository) Get(ctx context.Context, ownerID, noteID string) (*note.Note, error) {
	const query = `
		SELECT id, owner_id, title, content, created_at, updated_at
		FROM notes
		WHERE id = ? AND owner_id = ?`

	var n note.Note
	err := r.db.QueryRowContext(ctx, query, noteID, ownerID).Scan(
		&n.ID, &n.OwnerID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, note.ErrNotFound
		}
		r.log.Error("failed to get note",
			"note_id", noteID, "owner_id", ownerID, "error", err)
		return nil, fmt.Errorf("get note: %w", err)
	}

	return &n, nil
}

func (r *NoteRepository) Create(ctx context.Context, n *note.Note) error {
	const query = `
		INSERT INTO notes (id, owner_id, title, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.OwnerID, n.Title, n.Content, n.CreatedAt, n.UpdatedAt)
	if err != nil {
		r.log.Error("failed to create note", "owner_id", n.OwnerID, "error", err)
		return fmt.Errorf("create note: %w", err)
	}

	return nil
}

func (r *NoteRepository) Update(ctx context.Context, n *note.Note) error {
	const query = `
		UPDATE notes
		SET title = ?, content = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?`

	result, err := r.db.ExecContext(ctx, query,
		n.Title, n.Content, n.UpdatedAt, n.ID, n.OwnerID)
	if err != nil {
		r.log.Error("failed to update note",
			"note_id", n.ID, "owner_id", n.OwnerID, "error", err)
		return fmt.Errorf("update note: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return note.ErrNotFound
	}

	return nil
}

func (r *NoteRepository) Delete(ctx context.Context, ownerID, noteID string) error {
	const query = `DELETE FROM notes WHERE id = ? AND owner_id = ?`

	result, err := r.db.ExecContext(ctx, query, noteID, ownerID)
	if err != nil {
		r.log.Error("failed to delete note",
			"note_id", noteID, "owner_id", ownerID, "error", err)
		return fmt.Errorf("delete note: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return note.ErrNotFound
	}

	return nil
}

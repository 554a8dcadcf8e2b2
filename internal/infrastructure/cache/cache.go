package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/exp/slog"

	"gophnotes/internal/domain/note"
)

const (
	keyPrefix  = "notes:owner:"
	defaultTTL = 5 * time.Minute
)

// NoteListCache кэширует списки заметок по владельцу в Redis.
// Ошибки Redis не фатальны: промах кэша просто отправляет запрос в БД.
type NoteListCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

func NewNoteListCache(address string, log *slog.Logger) (*NoteListCache, error) {
	client := redis.NewClient(&redis.Options{Addr: address})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &NoteListCache{
		client: client,
		ttl:    defaultTTL,
		log:    log.With("component", "note_cache"),
	}, nil
}

func (c *NoteListCache) Get(ctx context.Context, ownerID string) ([]note.Note, bool) {
	payload, err := c.client.Get(ctx, keyPrefix+ownerID).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("cache get failed", "owner_id", ownerID, "error", err)
		}
		return nil, false
	}

	var notes []note.Note
	if err := json.Unmarshal(payload, &notes); err != nil {
		c.log.Warn("cache payload corrupted", "owner_id", ownerID, "error", err)
		return nil, false
	}

	return notes, true
}

func (c *NoteListCache) Set(ctx context.Context, ownerID string, notes []note.Note) {
	payload, err := json.Marshal(notes)
	if err != nil {
		c.log.Warn("cache marshal failed", "owner_id", ownerID, "error", err)
		return
	}

	if err := c.client.Set(ctx, keyPrefix+ownerID, payload, c.ttl).Err(); err != nil {
		c.log.Warn("cache set failed", "owner_id", ownerID, "error", err)
	}
}

func (c *NoteListCache) Invalidate(ctx context.Context, ownerID string) {
	if err := c.client.Del(ctx, keyPrefix+ownerID).Err(); err != nil {
		c.log.Warn("cache invalidate failed", "owner_id", ownerID, "error", err)
	}
}

func (c *NoteListCache) Close() error {
	return c.client.Close()
}

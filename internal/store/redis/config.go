package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/homegrid/homegrid/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Store persists the dashboard document in a single fixed Redis slot.
// Every save overwrites the whole document (last write wins, no
// versioning, no TTL).
type Store struct {
	client *redis.Client
}

// NewStore creates a new Redis store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
	}
}

// Save serializes the document and overwrites the config slot.
func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := s.client.Set(ctx, ConfigKey(), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}

	return nil
}

// Load reads the config slot. A missing slot returns (nil, nil) so the
// caller can fall back to the bootstrap config. Stored text that fails
// to parse is treated identically to absent: the slot is overwritten on
// the next save anyway, and a corrupt slot must never block startup.
func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	data, err := s.client.Get(ctx, ConfigKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil
	}

	doc.Normalize()
	return &doc, nil
}

// Ping reports whether the underlying Redis connection is healthy.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

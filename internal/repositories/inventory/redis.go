package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/questbloom/questbloom-api/internal/entities"
	"github.com/questbloom/questbloom-api/internal/errors"
	redisclient "github.com/questbloom/questbloom-api/internal/redis"
)

// Key pattern: inventory:{player_id}, a hash of item name -> entry JSON
const inventoryKeyPrefix = "inventory:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for inventory entries
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, inventoryKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.WrapPersistence(err, "failed to list inventory from Redis")
	}

	entries := make([]entities.InventoryEntry, 0, len(fields))
	for name, data := range fields {
		var e entities.InventoryEntry
		if err := json.Unmarshal([]byte(data), &e); err != nil {
			return nil, errors.WrapPersistence(err, fmt.Sprintf("failed to unmarshal inventory entry %q", name))
		}
		entries = append(entries, e)
	}

	// Stable order so fusion deduction is deterministic across loads.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	return &ListOutput{Entries: entries}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument("player ID cannot be empty")
	}
	if input.Entry.Name == "" {
		return errors.InvalidArgument("item name cannot be empty")
	}
	if input.Entry.Quantity <= 0 {
		return errors.InvalidArgument("quantity must be positive; delete the entry instead")
	}

	data, err := json.Marshal(input.Entry)
	if err != nil {
		return errors.WrapPersistence(err, "failed to marshal inventory entry")
	}

	if err := r.client.HSet(ctx, inventoryKey(input.PlayerID), input.Entry.Name, data).Err(); err != nil {
		return errors.WrapPersistence(err, "failed to store inventory entry in Redis")
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument("player ID cannot be empty")
	}
	if input.ItemName == "" {
		return errors.InvalidArgument("item name cannot be empty")
	}

	if err := r.client.HDel(ctx, inventoryKey(input.PlayerID), input.ItemName).Err(); err != nil {
		return errors.WrapPersistence(err, "failed to delete inventory entry from Redis")
	}
	return nil
}

func inventoryKey(playerID string) string {
	return fmt.Sprintf("%s%s", inventoryKeyPrefix, playerID)
}

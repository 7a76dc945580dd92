package garden

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/questbloom/questbloom-api/internal/entities"
	"github.com/questbloom/questbloom-api/internal/errors"
	redisclient "github.com/questbloom/questbloom-api/internal/redis"
)

// Key pattern: garden:{player_id}, a hash of slot index -> slot JSON
const gardenKeyPrefix = "garden:"

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

// NewRedisRepository creates a new Redis repository for garden slots
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

	fields, err := r.client.HGetAll(ctx, gardenKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.WrapPersistence(err, "failed to list garden from Redis")
	}

	// The garden is dense: missing indices read back as empty slots.
	slots := entities.NewGarden()
	for field, data := range fields {
		idx, convErr := strconv.Atoi(field)
		if convErr != nil || idx < 0 || idx >= entities.GardenSize {
			return nil, errors.PersistenceFailure(fmt.Sprintf("corrupt garden slot field %q", field))
		}
		var slot entities.GardenSlot
		if err := json.Unmarshal([]byte(data), &slot); err != nil {
			return nil, errors.WrapPersistence(err, fmt.Sprintf("failed to unmarshal garden slot %d", idx))
		}
		slot.Index = idx
		slots[idx] = slot
	}

	return &ListOutput{Slots: slots}, nil
}

func (r *redisRepository) SaveSlot(ctx context.Context, input SaveSlotInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument("player ID cannot be empty")
	}
	if input.Slot.Index < 0 || input.Slot.Index >= entities.GardenSize {
		return errors.InvalidArgumentf("slot index %d out of range", input.Slot.Index)
	}

	data, err := json.Marshal(input.Slot)
	if err != nil {
		return errors.WrapPersistence(err, "failed to marshal garden slot")
	}

	field := strconv.Itoa(input.Slot.Index)
	if err := r.client.HSet(ctx, gardenKey(input.PlayerID), field, data).Err(); err != nil {
		return errors.WrapPersistence(err, "failed to store garden slot in Redis")
	}
	return nil
}

func gardenKey(playerID string) string {
	return fmt.Sprintf("%s%s", gardenKeyPrefix, playerID)
}

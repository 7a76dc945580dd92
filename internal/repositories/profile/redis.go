package profile

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/questbloom/questbloom-api/internal/entities"
	"github.com/questbloom/questbloom-api/internal/errors"
	redisclient "github.com/questbloom/questbloom-api/internal/redis"
)

// Key pattern: profile:{player_id}
const profileKeyPrefix = "profile:"

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

// NewRedisRepository creates a new Redis repository for profiles
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	data, err := r.client.Get(ctx, profileKey(input.PlayerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no profile for player %q", input.PlayerID)
		}
		return nil, errors.WrapPersistence(err, "failed to get profile from Redis")
	}

	var p entities.Profile
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, errors.WrapPersistence(err, "failed to unmarshal profile")
	}

	return &GetOutput{Profile: &p}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument("player ID cannot be empty")
	}
	if input.Profile == nil {
		return errors.InvalidArgument("profile cannot be nil")
	}

	data, err := json.Marshal(input.Profile)
	if err != nil {
		return errors.WrapPersistence(err, "failed to marshal profile")
	}

	if err := r.client.Set(ctx, profileKey(input.PlayerID), data, 0).Err(); err != nil {
		return errors.WrapPersistence(err, "failed to store profile in Redis")
	}
	return nil
}

func profileKey(playerID string) string {
	return fmt.Sprintf("%s%s", profileKeyPrefix, playerID)
}

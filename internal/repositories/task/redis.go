package task

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/questbloom/questbloom-api/internal/entities"
	"github.com/questbloom/questbloom-api/internal/errors"
	redisclient "github.com/questbloom/questbloom-api/internal/redis"
)

// Key pattern: tasks:{player_id}, a hash of task ID -> task JSON
const taskKeyPrefix = "tasks:"

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

// NewRedisRepository creates a new Redis repository for tasks
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

	fields, err := r.client.HGetAll(ctx, taskKey(input.PlayerID)).Result()
	if err != nil {
		return nil, errors.WrapPersistence(err, "failed to list tasks from Redis")
	}

	tasks := make([]entities.Task, 0, len(fields))
	for id, data := range fields {
		var t entities.Task
		if err := json.Unmarshal([]byte(data), &t); err != nil {
			return nil, errors.WrapPersistence(err, fmt.Sprintf("failed to unmarshal task %q", id))
		}
		tasks = append(tasks, t)
	}

	// Hash iteration order is arbitrary; present newest first like the UI.
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt != tasks[j].CreatedAt {
			return tasks[i].CreatedAt > tasks[j].CreatedAt
		}
		return tasks[i].ID > tasks[j].ID
	})

	return &ListOutput{Tasks: tasks}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument("player ID cannot be empty")
	}
	if input.Task == nil {
		return errors.InvalidArgument("task cannot be nil")
	}
	if input.Task.ID == "" {
		return errors.InvalidArgument("task ID cannot be empty")
	}

	data, err := json.Marshal(input.Task)
	if err != nil {
		return errors.WrapPersistence(err, "failed to marshal task")
	}

	if err := r.client.HSet(ctx, taskKey(input.PlayerID), input.Task.ID, data).Err(); err != nil {
		return errors.WrapPersistence(err, "failed to store task in Redis")
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument("player ID cannot be empty")
	}
	if input.TaskID == "" {
		return errors.InvalidArgument("task ID cannot be empty")
	}

	if err := r.client.HDel(ctx, taskKey(input.PlayerID), input.TaskID).Err(); err != nil {
		return errors.WrapPersistence(err, "failed to delete task from Redis")
	}
	return nil
}

func taskKey(playerID string) string {
	return fmt.Sprintf("%s%s", taskKeyPrefix, playerID)
}

package task

import (
	"context"

	"github.com/questbloom/questbloom-api/internal/entities"
	"github.com/questbloom/questbloom-api/internal/errors"
	"github.com/questbloom/questbloom-api/internal/localstore"
)

// LocalConfig holds the configuration for the local repository
type LocalConfig struct {
	Store *localstore.Store
}

// Validate ensures all required dependencies are provided
func (c *LocalConfig) Validate() error {
	if c.Store == nil {
		return errors.InvalidArgument("local store is required")
	}
	return nil
}

type localRepository struct {
	store *localstore.Store
}

// NewLocalRepository creates a guest-mode repository storing all tasks as
// one blob
func NewLocalRepository(cfg *LocalConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &localRepository{store: cfg.Store}, nil
}

var _ Repository = (*localRepository)(nil)

func (r *localRepository) List(_ context.Context, input ListInput) (*ListOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	var tasks []entities.Task
	if err := r.store.Get(localKey(input.PlayerID), &tasks); err != nil {
		if errors.IsNotFound(err) {
			return &ListOutput{Tasks: []entities.Task{}}, nil
		}
		return nil, err
	}
	return &ListOutput{Tasks: tasks}, nil
}

func (r *localRepository) Save(ctx context.Context, input SaveInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument("player ID cannot be empty")
	}
	if input.Task == nil {
		return errors.InvalidArgument("task cannot be nil")
	}
	if input.Task.ID == "" {
		return errors.InvalidArgument("task ID cannot be empty")
	}

	existing, err := r.List(ctx, ListInput{PlayerID: input.PlayerID})
	if err != nil {
		return err
	}

	tasks := existing.Tasks
	replaced := false
	for i := range tasks {
		if tasks[i].ID == input.Task.ID {
			tasks[i] = *input.Task
			replaced = true
			break
		}
	}
	if !replaced {
		// Newest first, matching the remote listing order.
		tasks = append([]entities.Task{*input.Task}, tasks...)
	}

	return r.store.Set(localKey(input.PlayerID), tasks)
}

func (r *localRepository) Delete(ctx context.Context, input DeleteInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument("player ID cannot be empty")
	}
	if input.TaskID == "" {
		return errors.InvalidArgument("task ID cannot be empty")
	}

	existing, err := r.List(ctx, ListInput{PlayerID: input.PlayerID})
	if err != nil {
		return err
	}

	tasks := existing.Tasks[:0]
	for _, t := range existing.Tasks {
		if t.ID != input.TaskID {
			tasks = append(tasks, t)
		}
	}

	return r.store.Set(localKey(input.PlayerID), tasks)
}

func localKey(playerID string) string {
	return playerID + ":tasks"
}

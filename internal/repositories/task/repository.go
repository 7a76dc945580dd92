// Package task provides the repository interface and backends for tasks
// (the player's monsters).
package task

import (
	"context"

	"github.com/questbloom/questbloom-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=taskmock github.com/questbloom/questbloom-api/internal/repositories/task Repository

// ListInput identifies whose tasks to load
type ListInput struct {
	PlayerID string
}

// ListOutput carries the player's tasks, newest first
type ListOutput struct {
	Tasks []entities.Task
}

// SaveInput carries a task to insert or update
type SaveInput struct {
	PlayerID string
	Task     *entities.Task
}

// DeleteInput identifies a task to remove
type DeleteInput struct {
	PlayerID string
	TaskID   string
}

// Repository defines task storage operations
type Repository interface {
	// List loads all tasks for a player; an empty slice when none exist
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Save upserts one task keyed by its ID
	Save(ctx context.Context, input SaveInput) error

	// Delete removes one task. Deleting a missing task is not an error.
	Delete(ctx context.Context, input DeleteInput) error
}

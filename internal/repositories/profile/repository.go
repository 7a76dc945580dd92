// Package profile provides the repository interface and backends for player
// profiles.
package profile

import (
	"context"

	"github.com/questbloom/questbloom-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=profilemock github.com/questbloom/questbloom-api/internal/repositories/profile Repository

// GetInput identifies the profile to load
type GetInput struct {
	PlayerID string
}

// GetOutput carries the loaded profile
type GetOutput struct {
	Profile *entities.Profile
}

// SaveInput carries the profile to upsert
type SaveInput struct {
	PlayerID string
	Profile  *entities.Profile
}

// Repository defines profile storage operations
type Repository interface {
	// Get loads the player's profile; NotFound when none exists
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save upserts the player's profile
	Save(ctx context.Context, input SaveInput) error
}

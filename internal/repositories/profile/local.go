package profile

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

// NewLocalRepository creates a guest-mode repository backed by the local
// store
func NewLocalRepository(cfg *LocalConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &localRepository{store: cfg.Store}, nil
}

var _ Repository = (*localRepository)(nil)

func (r *localRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID cannot be empty")
	}

	var p entities.Profile
	if err := r.store.Get(localKey(input.PlayerID), &p); err != nil {
		return nil, err
	}
	return &GetOutput{Profile: &p}, nil
}

func (r *localRepository) Save(_ context.Context, input SaveInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument("player ID cannot be empty")
	}
	if input.Profile == nil {
		return errors.InvalidArgument("profile cannot be nil")
	}
	return r.store.Set(localKey(input.PlayerID), input.Profile)
}

func localKey(playerID string) string {
	return playerID + ":profile"
}

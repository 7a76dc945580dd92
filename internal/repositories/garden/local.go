package garden

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

// NewLocalRepository creates a guest-mode repository storing the garden as
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

	var slots []entities.GardenSlot
	if err := r.store.Get(localKey(input.PlayerID), &slots); err != nil {
		if errors.IsNotFound(err) {
			return &ListOutput{Slots: entities.NewGarden()}, nil
		}
		return nil, err
	}
	if len(slots) != entities.GardenSize {
		return nil, errors.PersistenceFailure("stored garden is not the dense ten slots")
	}
	return &ListOutput{Slots: slots}, nil
}

func (r *localRepository) SaveSlot(ctx context.Context, input SaveSlotInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument("player ID cannot be empty")
	}
	if input.Slot.Index < 0 || input.Slot.Index >= entities.GardenSize {
		return errors.InvalidArgumentf("slot index %d out of range", input.Slot.Index)
	}

	existing, err := r.List(ctx, ListInput{PlayerID: input.PlayerID})
	if err != nil {
		return err
	}

	slots := existing.Slots
	slots[input.Slot.Index] = input.Slot
	return r.store.Set(localKey(input.PlayerID), slots)
}

func localKey(playerID string) string {
	return playerID + ":garden"
}

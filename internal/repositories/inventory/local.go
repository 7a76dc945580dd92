package inventory

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

// NewLocalRepository creates a guest-mode repository storing the inventory
// as one blob
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

	var entries []entities.InventoryEntry
	if err := r.store.Get(localKey(input.PlayerID), &entries); err != nil {
		if errors.IsNotFound(err) {
			return &ListOutput{Entries: []entities.InventoryEntry{}}, nil
		}
		return nil, err
	}
	return &ListOutput{Entries: entries}, nil
}

func (r *localRepository) Save(ctx context.Context, input SaveInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument("player ID cannot be empty")
	}
	if input.Entry.Name == "" {
		return errors.InvalidArgument("item name cannot be empty")
	}
	if input.Entry.Quantity <= 0 {
		return errors.InvalidArgument("quantity must be positive; delete the entry instead")
	}

	existing, err := r.List(ctx, ListInput{PlayerID: input.PlayerID})
	if err != nil {
		return err
	}

	entries := existing.Entries
	replaced := false
	for i := range entries {
		if entries[i].Name == input.Entry.Name {
			entries[i] = input.Entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, input.Entry)
	}

	return r.store.Set(localKey(input.PlayerID), entries)
}

func (r *localRepository) Delete(ctx context.Context, input DeleteInput) error {
	if input.PlayerID == "" {
		return errors.InvalidArgument("player ID cannot be empty")
	}
	if input.ItemName == "" {
		return errors.InvalidArgument("item name cannot be empty")
	}

	existing, err := r.List(ctx, ListInput{PlayerID: input.PlayerID})
	if err != nil {
		return err
	}

	entries := existing.Entries[:0]
	for _, e := range existing.Entries {
		if e.Name != input.ItemName {
			entries = append(entries, e)
		}
	}

	return r.store.Set(localKey(input.PlayerID), entries)
}

func localKey(playerID string) string {
	return playerID + ":inventory"
}

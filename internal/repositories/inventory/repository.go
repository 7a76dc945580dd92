// Package inventory provides the repository interface and backends for the
// player's item multiset.
package inventory

import (
	"context"

	"github.com/questbloom/questbloom-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=inventorymock github.com/questbloom/questbloom-api/internal/repositories/inventory Repository

// ListInput identifies whose inventory to load
type ListInput struct {
	PlayerID string
}

// ListOutput carries the player's inventory entries
type ListOutput struct {
	Entries []entities.InventoryEntry
}

// SaveInput carries one entry to upsert, keyed by item name
type SaveInput struct {
	PlayerID string
	Entry    entities.InventoryEntry
}

// DeleteInput identifies an entry to remove by item name
type DeleteInput struct {
	PlayerID string
	ItemName string
}

// Repository defines inventory storage operations. Quantities of zero are
// never stored; the ledger deletes the entry instead.
type Repository interface {
	// List loads all inventory entries; an empty slice when none exist
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Save upserts one entry
	Save(ctx context.Context, input SaveInput) error

	// Delete removes one entry. Deleting a missing entry is not an error.
	Delete(ctx context.Context, input DeleteInput) error
}

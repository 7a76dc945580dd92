// Package garden provides the repository interface and backends for the
// player's ten garden slots.
package garden

import (
	"context"

	"github.com/questbloom/questbloom-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=gardenmock github.com/questbloom/questbloom-api/internal/repositories/garden Repository

// ListInput identifies whose garden to load
type ListInput struct {
	PlayerID string
}

// ListOutput carries the dense slot list ordered by index
type ListOutput struct {
	Slots []entities.GardenSlot
}

// SaveSlotInput carries one slot to upsert, keyed by its index
type SaveSlotInput struct {
	PlayerID string
	Slot     entities.GardenSlot
}

// Repository defines garden storage operations
type Repository interface {
	// List loads the player's garden slots ordered by slot index. A player
	// with no stored garden gets the dense empty ten slots.
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// SaveSlot upserts one slot. Removing a plant is saving the empty slot.
	SaveSlot(ctx context.Context, input SaveSlotInput) error
}

package game

import (
	"github.com/questbloom/questbloom-api/internal/engine"
	"github.com/questbloom/questbloom-api/internal/entities"
)

// StartSessionInput identifies the player whose state to load
type StartSessionInput struct {
	PlayerID string
}

// StartSessionOutput describes the loaded session
type StartSessionOutput struct {
	Profile *entities.Profile
	Guest   bool

	// Degraded is true when the remote bulk load failed and the session
	// fell back to fresh guest defaults.
	Degraded bool
}

// AddTaskInput carries the fields the player submits for a new task
type AddTaskInput struct {
	Title        string
	Description  string
	SubtaskCount int
}

// AddTaskOutput carries the created task with its assigned monster
type AddTaskOutput struct {
	Task *entities.Task
}

// ListTasksInput has no parameters; the session owns the player
type ListTasksInput struct{}

// ListTasksOutput carries the current task list, newest first
type ListTasksOutput struct {
	Tasks []entities.Task
}

// CompleteTaskInput identifies the task to complete. HyperGrowthActive
// doubles the garden growth pulse and is threaded explicitly by the caller
// (the focus timer is the usual source).
type CompleteTaskInput struct {
	TaskID            string
	HyperGrowthActive bool
}

// CompleteTaskOutput reports the granted reward and the garden effect
type CompleteTaskOutput struct {
	Task         *entities.Task
	Reward       *engine.CompletionReward
	Profile      *entities.Profile
	ChangedSlots []entities.GardenSlot
}

// DeleteTaskInput identifies the task to delete
type DeleteTaskInput struct {
	TaskID string
}

// DeleteTaskOutput is empty; deletion grants nothing
type DeleteTaskOutput struct{}

// GardenInput has no parameters
type GardenInput struct{}

// GardenOutput carries the ten slots ordered by index
type GardenOutput struct {
	Slots []entities.GardenSlot
}

// PlantSeedInput plants a held seed into an empty slot
type PlantSeedInput struct {
	SlotIndex int
	SeedName  string
}

// PlantSeedOutput carries the planted slot
type PlantSeedOutput struct {
	Slot entities.GardenSlot
}

// WaterSlotInput waters a thirsty slot, consuming one water consumable
type WaterSlotInput struct {
	SlotIndex int
}

// WaterSlotOutput carries the watered slot
type WaterSlotOutput struct {
	Slot entities.GardenSlot
}

// FertilizeSlotInput fertilizes a gated slot, consuming one fertilizer
type FertilizeSlotInput struct {
	SlotIndex int
}

// FertilizeSlotOutput carries the fertilized slot
type FertilizeSlotOutput struct {
	Slot entities.GardenSlot
}

// RemoveSlotInput clears a slot back to empty, discarding the plant
type RemoveSlotInput struct {
	SlotIndex int
}

// RemoveSlotOutput is empty
type RemoveSlotOutput struct{}

// InventoryInput has no parameters
type InventoryInput struct{}

// InventoryOutput carries the current inventory entries
type InventoryOutput struct {
	Entries []entities.InventoryEntry
}

// OpenGachaBoxInput has no parameters; the box price comes from the catalog
type OpenGachaBoxInput struct{}

// OpenGachaBoxOutput reports the drawn seed and the coins spent
type OpenGachaBoxOutput struct {
	SeedName string
	Rarity   entities.Rarity
	Color    string
	Cost     int
	Profile  *entities.Profile
}

// BuyConsumableInput names the store consumable to purchase
type BuyConsumableInput struct {
	ItemName string
}

// BuyConsumableOutput reports the purchase
type BuyConsumableOutput struct {
	ItemName string
	Cost     int
	Profile  *entities.Profile
}

// FuseSeedsInput selects the recipe by its source tier
type FuseSeedsInput struct {
	SourceRarity entities.Rarity
}

// FuseSeedsOutput reports the produced seed
type FuseSeedsOutput struct {
	Result entities.InventoryEntry
}

// ApplyFocusPenaltyInput has no parameters; the penalty is fixed
type ApplyFocusPenaltyInput struct{}

// ApplyFocusPenaltyOutput reports whether coins were actually deducted
type ApplyFocusPenaltyOutput struct {
	Penalized bool
	Profile   *entities.Profile
}

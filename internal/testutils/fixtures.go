package testutils

import (
	"github.com/questbloom/questbloom-api/internal/entities"
)

// TestPlayerID is the default player for test fixtures
const TestPlayerID = "player-test-001"

// CreateTestProfile creates a profile with some progress already earned
func CreateTestProfile(playerID string) *entities.Profile {
	return &entities.Profile{
		ID:    playerID,
		XP:    250,
		Coins: 120,
		Level: entities.LevelForXP(250),
	}
}

// CreateTestTask creates a pending daily task with a fixed monster
func CreateTestTask(id string) *entities.Task {
	return &entities.Task{
		ID:    id,
		Title: "Write the weekly report",
		Monster: entities.Monster{
			Name:   "Slime de la Procrastinación",
			Type:   entities.MonsterTypeDaily,
			Color:  "#3b82f6",
			Sprite: "slime",
		},
		HP:        100,
		Status:    entities.TaskStatusPending,
		CreatedAt: 1700000000,
	}
}

// CreateTestProjectTask creates a pending boss task with enough subtasks to
// count as a project
func CreateTestProjectTask(id string) *entities.Task {
	return &entities.Task{
		ID:           id,
		Title:        "Ship the quarterly release",
		SubtaskCount: entities.ProjectSubtaskThreshold,
		IsProject:    true,
		Monster: entities.Monster{
			Name:   "Cronos, el Devorador de Plazos",
			Type:   entities.MonsterTypeCronos,
			Color:  "#fbbf24",
			Sprite: "clock",
		},
		HP:        500,
		Status:    entities.TaskStatusPending,
		CreatedAt: 1700000000,
	}
}

// CreateTestGarden creates an empty garden with one young plant in the given
// slot
func CreateTestGarden(plantedSlot int) []entities.GardenSlot {
	slots := entities.NewGarden()
	slots[plantedSlot] = entities.GardenSlot{
		Index:      plantedSlot,
		Stage:      entities.StageYoung,
		SeedName:   "Rosa de Cristal",
		SeedRarity: entities.RarityRare,
		Progress:   6,
	}
	return slots
}

// CreateTestInventory creates a small mixed inventory
func CreateTestInventory() []entities.InventoryEntry {
	return []entities.InventoryEntry{
		{Name: "Agua Destilada", Type: entities.ItemTypeConsumable, Quantity: 2},
		{Name: "Girasol Básico", Type: entities.ItemTypeSeed, Rarity: entities.RarityCommon, Quantity: 3},
		{Name: "Rosa de Cristal", Type: entities.ItemTypeSeed, Rarity: entities.RarityRare, Quantity: 1},
	}
}

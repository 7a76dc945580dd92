package engine

import (
	"github.com/questbloom/questbloom-api/internal/catalog"
	"github.com/questbloom/questbloom-api/internal/entities"
	"github.com/questbloom/questbloom-api/internal/errors"
	"github.com/questbloom/questbloom-api/internal/pkg/rng"
)

// FusionResult carries the inventory after a fusion and the seed it
// produced.
type FusionResult struct {
	Entries []entities.InventoryEntry
	Result  entities.InventoryEntry
}

// Fuse consumes recipe.Cost seeds of the recipe's source tier and adds one
// seed drawn from the target tier. Same-rarity seeds are fungible; the
// deduction walks entries in their stored order, which keeps it
// deterministic. Short materials fail with InsufficientMaterials before any
// mutation.
func Fuse(cat *catalog.Catalog, entries []entities.InventoryEntry, recipe catalog.Recipe, roller rng.Roller) (*FusionResult, error) {
	if have := SeedCountByRarity(entries, recipe.Source); have < recipe.Cost {
		return nil, errors.InsufficientMaterialsf("fusion needs %d %s seeds, have %d", recipe.Cost, recipe.Source, have)
	}

	out := make([]entities.InventoryEntry, 0, len(entries))
	remaining := recipe.Cost
	for _, e := range entries {
		if remaining > 0 && e.Type == entities.ItemTypeSeed && e.Rarity == recipe.Source {
			take := e.Quantity
			if take > remaining {
				take = remaining
			}
			remaining -= take
			e.Quantity -= take
			if e.Quantity == 0 {
				continue
			}
		}
		out = append(out, e)
	}

	drawn, err := DrawSeedFromTier(cat, recipe.Target, roller)
	if err != nil {
		return nil, err
	}

	out, err = AdjustInventory(out, drawn.Name, 1, entities.ItemTypeSeed, drawn.Rarity)
	if err != nil {
		return nil, err
	}

	return &FusionResult{
		Entries: out,
		Result: entities.InventoryEntry{
			Name:     drawn.Name,
			Type:     entities.ItemTypeSeed,
			Rarity:   drawn.Rarity,
			Quantity: 1,
		},
	}, nil
}

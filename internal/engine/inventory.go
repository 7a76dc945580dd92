package engine

import (
	"github.com/questbloom/questbloom-api/internal/entities"
	"github.com/questbloom/questbloom-api/internal/errors"
)

// AdjustInventory applies a quantity delta to the entry named itemName and
// returns the new entry set. A positive delta against a missing entry
// creates it with the given type and rarity; an entry whose quantity reaches
// zero is removed. A consumption (negative delta) that the current holdings
// cannot cover fails with InsufficientQuantity and leaves the input
// untouched.
func AdjustInventory(entries []entities.InventoryEntry, itemName string, delta int, itemType entities.ItemType, rarity entities.Rarity) ([]entities.InventoryEntry, error) {
	if itemName == "" {
		return nil, errors.InvalidArgument("item name is required")
	}
	if delta == 0 {
		return entries, nil
	}

	idx := -1
	for i, e := range entries {
		if e.Name == itemName {
			idx = i
			break
		}
	}

	if idx < 0 {
		if delta < 0 {
			return nil, errors.InsufficientQuantityf("no %q held", itemName)
		}
		out := make([]entities.InventoryEntry, len(entries), len(entries)+1)
		copy(out, entries)
		return append(out, entities.InventoryEntry{
			Name:     itemName,
			Type:     itemType,
			Rarity:   rarity,
			Quantity: delta,
		}), nil
	}

	newQty := entries[idx].Quantity + delta
	if newQty < 0 {
		return nil, errors.InsufficientQuantityf("need %d of %q, have %d", -delta, itemName, entries[idx].Quantity)
	}

	out := make([]entities.InventoryEntry, len(entries))
	copy(out, entries)

	if newQty == 0 {
		return append(out[:idx], out[idx+1:]...), nil
	}
	out[idx].Quantity = newQty
	return out, nil
}

// QuantityOf returns the held quantity of an item, zero when absent.
func QuantityOf(entries []entities.InventoryEntry, itemName string) int {
	for _, e := range entries {
		if e.Name == itemName {
			return e.Quantity
		}
	}
	return 0
}

// SeedCountByRarity totals the seed-type quantity held at a rarity tier.
func SeedCountByRarity(entries []entities.InventoryEntry, rarity entities.Rarity) int {
	total := 0
	for _, e := range entries {
		if e.Type == entities.ItemTypeSeed && e.Rarity == rarity {
			total += e.Quantity
		}
	}
	return total
}

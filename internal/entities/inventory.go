package entities

// InventoryEntry is one row of the player's item multiset, keyed by item
// name. Quantity is always positive: a ledger adjustment that reaches zero
// removes the entry instead of persisting it.
type InventoryEntry struct {
	Name     string   `json:"name"`
	Type     ItemType `json:"item_type"`
	Rarity   Rarity   `json:"rarity,omitempty"` // empty for consumables
	Quantity int      `json:"quantity"`
}

package entities

// Rarity orders seed catalog entries and gacha/fusion draw probability
type Rarity string

// Rarity tiers, lowest to highest
const (
	RarityCommon      Rarity = "common"
	RarityRare        Rarity = "rare"
	RarityEpic        Rarity = "epic"
	RarityExotic      Rarity = "exotic"
	RarityBlackMarket Rarity = "black_market"
)

// Rarities lists all tiers in ascending order
var Rarities = []Rarity{
	RarityCommon,
	RarityRare,
	RarityEpic,
	RarityExotic,
	RarityBlackMarket,
}

// IsValid reports whether the rarity is a known tier
func (r Rarity) IsValid() bool {
	switch r {
	case RarityCommon, RarityRare, RarityEpic, RarityExotic, RarityBlackMarket:
		return true
	default:
		return false
	}
}

// ItemType distinguishes inventory entry kinds
type ItemType string

// Item types
const (
	ItemTypeSeed       ItemType = "seed"
	ItemTypeConsumable ItemType = "consumable"
)

// IsValid reports whether the item type is known
func (t ItemType) IsValid() bool {
	return t == ItemTypeSeed || t == ItemTypeConsumable
}

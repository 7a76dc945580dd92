package entities

// GardenSize is the fixed number of garden slots per player, indices 0..9,
// dense once initialized.
const GardenSize = 10

// Growth-stage progress thresholds. Stage is a pure function of progress
// within one planting and only ever moves forward.
const (
	SproutThreshold = 3
	YoungThreshold  = 6
	MasterThreshold = 10
)

// GrowthStage is the visual stage of a planted seed
type GrowthStage string

// Growth stages in order
const (
	StageEmpty  GrowthStage = "empty"
	StageSeed   GrowthStage = "seed"
	StageSprout GrowthStage = "sprout"
	StageYoung  GrowthStage = "young"
	StageMaster GrowthStage = "master"
)

// StageForProgress derives the growth stage from a progress counter.
func StageForProgress(progress int) GrowthStage {
	switch {
	case progress >= MasterThreshold:
		return StageMaster
	case progress >= YoungThreshold:
		return StageYoung
	case progress >= SproutThreshold:
		return StageSprout
	default:
		return StageSeed
	}
}

// GardenSlot is one of the ten fixed plots. An empty slot carries no seed
// identity, zero progress, and cleared flags; use EmptySlot and Plant to keep
// that invariant instead of mutating fields directly.
type GardenSlot struct {
	Index    int         `json:"slot_index"`
	Stage    GrowthStage `json:"stage"`
	SeedName string      `json:"seed_name,omitempty"`
	// SeedRarity is retained so a mature plant can be identified without a
	// catalog lookup.
	SeedRarity Rarity `json:"seed_rarity,omitempty"`
	Progress   int    `json:"progress"`
	Wilted     bool   `json:"is_wilted"`
	NeedsWater bool   `json:"needs_water"`
	// NeedsFertilizer gates growth like thirst; cleared by consuming
	// fertilizer.
	NeedsFertilizer bool `json:"needs_fertilizer"`
}

// EmptySlot returns the canonical empty slot for an index.
func EmptySlot(index int) GardenSlot {
	return GardenSlot{Index: index, Stage: StageEmpty}
}

// IsEmpty reports whether nothing is planted in the slot.
func (s GardenSlot) IsEmpty() bool {
	return s.Stage == StageEmpty
}

// Blocked reports whether a gating flag or wilting pauses the slot's growth.
func (s GardenSlot) Blocked() bool {
	return s.Wilted || s.NeedsWater || s.NeedsFertilizer
}

// NewGarden returns the dense ten-slot empty garden created alongside a
// profile.
func NewGarden() []GardenSlot {
	slots := make([]GardenSlot, GardenSize)
	for i := range slots {
		slots[i] = EmptySlot(i)
	}
	return slots
}

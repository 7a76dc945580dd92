package engine

import (
	"github.com/questbloom/questbloom-api/internal/catalog"
	"github.com/questbloom/questbloom-api/internal/entities"
	"github.com/questbloom/questbloom-api/internal/errors"
	"github.com/questbloom/questbloom-api/internal/pkg/rng"
)

// ThirstChance is the per-pulse probability that an advancing slot turns
// thirsty. The roll is independent per slot and can re-trigger on any pulse,
// including the one that reaches master.
const ThirstChance = 0.25

// WiltPolicy decides whether a planted slot wilts during a growth pass. The
// source application renders wilted plants but never defines a trigger, so
// the condition stays pluggable.
type WiltPolicy interface {
	ShouldWilt(slot entities.GardenSlot) bool
}

// NeverWilt is the default policy: plants do not wilt on their own.
type NeverWilt struct{}

// ShouldWilt always returns false.
func (NeverWilt) ShouldWilt(entities.GardenSlot) bool { return false }

// AdvanceGarden applies growthPulses to every eligible slot and returns the
// new garden plus the indices of slots that changed. Empty, master, wilted,
// and gated (thirsty / needing fertilizer) slots do not advance; gating
// pauses growth, it never reverses it. Stage is recomputed from progress and
// only moves forward within one planting.
func AdvanceGarden(slots []entities.GardenSlot, growthPulses int, wilt WiltPolicy, roller rng.Roller) ([]entities.GardenSlot, []int) {
	if wilt == nil {
		wilt = NeverWilt{}
	}

	out := make([]entities.GardenSlot, len(slots))
	copy(out, slots)

	var changed []int
	for i := range out {
		slot := &out[i]
		if slot.IsEmpty() || slot.Stage == entities.StageMaster {
			continue
		}

		if !slot.Wilted && wilt.ShouldWilt(*slot) {
			slot.Wilted = true
			changed = append(changed, i)
			continue
		}

		if slot.Blocked() {
			continue
		}

		slot.Progress += growthPulses
		slot.Stage = entities.StageForProgress(slot.Progress)

		// Thirst can strike on the same pulse that grew the plant.
		if roller.Float64() < ThirstChance {
			slot.NeedsWater = true
		}

		changed = append(changed, i)
	}

	return out, changed
}

// Plant puts a seed into an empty slot, resetting progress and flags. A
// non-empty target fails with an invalid state transition.
func Plant(slots []entities.GardenSlot, slotIndex int, seed catalog.Seed) ([]entities.GardenSlot, error) {
	if err := checkSlotIndex(slots, slotIndex); err != nil {
		return nil, err
	}
	if !slots[slotIndex].IsEmpty() {
		return nil, errors.InvalidStateTransitionf("slot %d is not empty", slotIndex)
	}

	out := make([]entities.GardenSlot, len(slots))
	copy(out, slots)
	out[slotIndex] = entities.GardenSlot{
		Index:      slotIndex,
		Stage:      entities.StageSeed,
		SeedName:   seed.Name,
		SeedRarity: seed.Rarity,
	}
	return out, nil
}

// Water clears a slot's thirst flag. Fails if the slot was not thirsty.
func Water(slots []entities.GardenSlot, slotIndex int) ([]entities.GardenSlot, error) {
	return clearGate(slots, slotIndex, func(s *entities.GardenSlot) *bool { return &s.NeedsWater })
}

// Fertilize clears a slot's fertilizer flag. Fails if the flag was not set.
func Fertilize(slots []entities.GardenSlot, slotIndex int) ([]entities.GardenSlot, error) {
	return clearGate(slots, slotIndex, func(s *entities.GardenSlot) *bool { return &s.NeedsFertilizer })
}

// Remove resets a slot to empty, discarding seed identity and progress
// unconditionally. Confirmation is a UI concern.
func Remove(slots []entities.GardenSlot, slotIndex int) ([]entities.GardenSlot, error) {
	if err := checkSlotIndex(slots, slotIndex); err != nil {
		return nil, err
	}

	out := make([]entities.GardenSlot, len(slots))
	copy(out, slots)
	out[slotIndex] = entities.EmptySlot(slotIndex)
	return out, nil
}

func clearGate(slots []entities.GardenSlot, slotIndex int, flag func(*entities.GardenSlot) *bool) ([]entities.GardenSlot, error) {
	if err := checkSlotIndex(slots, slotIndex); err != nil {
		return nil, err
	}

	out := make([]entities.GardenSlot, len(slots))
	copy(out, slots)

	f := flag(&out[slotIndex])
	if !*f {
		return nil, errors.InvalidStateTransitionf("slot %d has nothing to clear", slotIndex)
	}
	*f = false
	return out, nil
}

func checkSlotIndex(slots []entities.GardenSlot, slotIndex int) error {
	if slotIndex < 0 || slotIndex >= len(slots) {
		return errors.InvalidArgumentf("slot index %d out of range [0,%d)", slotIndex, len(slots))
	}
	return nil
}

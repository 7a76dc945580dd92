// Package engine implements the progression and reward rules: random draws,
// task completion rewards, garden growth, the inventory ledger, and seed
// fusion. Every function is pure over its inputs plus an injected random
// source; persistence and snapshot ownership live in the game orchestrator.
package engine

import (
	"github.com/questbloom/questbloom-api/internal/catalog"
	"github.com/questbloom/questbloom-api/internal/entities"
	"github.com/questbloom/questbloom-api/internal/errors"
	"github.com/questbloom/questbloom-api/internal/pkg/rng"
)

// Cumulative rarity bands over a uniform sample in [0,100). Checked
// narrowest band first.
const (
	BlackMarketBand = 0.1
	ExoticBand      = 5.0
	EpicBand        = 25.0
	RareBand        = 50.0
)

// DrawRarity maps a uniform sample to a rarity tier through the fixed
// cumulative bands: 0.1% black market, 4.9% exotic, 20% epic, 25% rare,
// 50% common.
func DrawRarity(roller rng.Roller) entities.Rarity {
	sample := roller.Float64() * 100

	switch {
	case sample < BlackMarketBand:
		return entities.RarityBlackMarket
	case sample < ExoticBand:
		return entities.RarityExotic
	case sample < EpicBand:
		return entities.RarityEpic
	case sample < RareBand:
		return entities.RarityRare
	default:
		return entities.RarityCommon
	}
}

// DrawSeedFromTier picks uniformly among the catalog seeds of the given
// tier. A validated catalog never has an empty tier pool.
func DrawSeedFromTier(cat *catalog.Catalog, tier entities.Rarity, roller rng.Roller) (catalog.Seed, error) {
	pool := cat.SeedsByRarity(tier)
	if len(pool) == 0 {
		return catalog.Seed{}, errors.Internalf("rarity tier %q has an empty seed pool", tier)
	}
	return pool[roller.IntN(len(pool))], nil
}

// DrawSeed rolls a rarity tier and then a seed within it. This is the gacha
// box draw.
func DrawSeed(cat *catalog.Catalog, roller rng.Roller) (catalog.Seed, error) {
	return DrawSeedFromTier(cat, DrawRarity(roller), roller)
}

// RollMonster assigns the monster identity and hit points for a new task.
// Projects get a uniformly drawn boss with its tiered HP; everything else
// gets a uniformly drawn daily monster at the flat daily HP.
func RollMonster(cat *catalog.Catalog, isProject bool, roller rng.Roller) (entities.Monster, int) {
	if isProject {
		boss := cat.Bestiary.Bosses[roller.IntN(len(cat.Bestiary.Bosses))]
		return entities.Monster{
			Name:   boss.Name,
			Type:   boss.ID,
			Color:  boss.Color,
			Sprite: boss.Sprite,
			Style:  boss.Style,
		}, boss.HP
	}

	daily := cat.Bestiary.Daily[roller.IntN(len(cat.Bestiary.Daily))]
	return entities.Monster{
		Name:   daily.Name,
		Type:   entities.MonsterTypeDaily,
		Color:  daily.Color,
		Sprite: daily.Sprite,
		Style:  daily.Style,
	}, catalog.DailyHP
}

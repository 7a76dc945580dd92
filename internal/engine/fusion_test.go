package engine_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/questbloom/questbloom-api/internal/catalog"
	"github.com/questbloom/questbloom-api/internal/engine"
	"github.com/questbloom/questbloom-api/internal/entities"
	"github.com/questbloom/questbloom-api/internal/errors"
	"github.com/questbloom/questbloom-api/internal/pkg/rng"
)

type FusionTestSuite struct {
	suite.Suite
	cat *catalog.Catalog
}

func TestFusionSuite(t *testing.T) {
	suite.Run(t, new(FusionTestSuite))
}

func (s *FusionTestSuite) SetupSuite() {
	cat, err := catalog.Default()
	s.Require().NoError(err)
	s.cat = cat
}

func (s *FusionTestSuite) recipe(source entities.Rarity) catalog.Recipe {
	recipe, ok := s.cat.RecipeForSource(source)
	s.Require().True(ok)
	return recipe
}

func (s *FusionTestSuite) TestFuseCommonToRare() {
	entries := []entities.InventoryEntry{
		{Name: "Girasol Básico", Type: entities.ItemTypeSeed, Rarity: entities.RarityCommon, Quantity: 2},
	}

	result, err := engine.Fuse(s.cat, entries, s.recipe(entities.RarityCommon), &rng.Scripted{Ints: []int{0}})
	s.Require().NoError(err)

	s.Equal(entities.RarityRare, result.Result.Rarity)
	s.Equal(1, result.Result.Quantity)
	s.Equal(0, engine.SeedCountByRarity(result.Entries, entities.RarityCommon))
	s.Equal(1, engine.QuantityOf(result.Entries, result.Result.Name))
}

func (s *FusionTestSuite) TestFuseDeductsInStoredOrder() {
	// Cost 3 for rare: the first entry is drained fully, the second covers
	// the remainder.
	entries := []entities.InventoryEntry{
		{Name: "Orquídea Azul", Type: entities.ItemTypeSeed, Rarity: entities.RarityRare, Quantity: 1},
		{Name: "Girasol Lunar", Type: entities.ItemTypeSeed, Rarity: entities.RarityRare, Quantity: 4},
	}

	result, err := engine.Fuse(s.cat, entries, s.recipe(entities.RarityRare), &rng.Scripted{Ints: []int{0}})
	s.Require().NoError(err)

	s.Equal(0, engine.QuantityOf(result.Entries, "Orquídea Azul"))
	s.Equal(2, engine.QuantityOf(result.Entries, "Girasol Lunar"))
	s.Equal(entities.RarityEpic, result.Result.Rarity)
}

func (s *FusionTestSuite) TestFuseShortMaterials() {
	entries := []entities.InventoryEntry{
		{Name: "Girasol de Oro de 24k", Type: entities.ItemTypeSeed, Rarity: entities.RarityEpic, Quantity: 3},
	}

	// Epic fusion costs 4.
	result, err := engine.Fuse(s.cat, entries, s.recipe(entities.RarityEpic), &rng.Scripted{Ints: []int{0}})
	s.Nil(result)
	s.True(errors.IsInsufficientMaterials(err))
	s.Equal(3, engine.QuantityOf(entries, "Girasol de Oro de 24k"))
}

func (s *FusionTestSuite) TestFuseIgnoresOtherTiersAndConsumables() {
	entries := []entities.InventoryEntry{
		{Name: "Agua Destilada", Type: entities.ItemTypeConsumable, Quantity: 5},
		{Name: "Rosa de Cristal", Type: entities.ItemTypeSeed, Rarity: entities.RarityRare, Quantity: 1},
		{Name: "Girasol Básico", Type: entities.ItemTypeSeed, Rarity: entities.RarityCommon, Quantity: 2},
	}

	result, err := engine.Fuse(s.cat, entries, s.recipe(entities.RarityCommon), &rng.Scripted{Ints: []int{0}})
	s.Require().NoError(err)

	s.Equal(5, engine.QuantityOf(result.Entries, "Agua Destilada"))
	s.Equal(1, engine.QuantityOf(result.Entries, "Rosa de Cristal"))
	s.Equal(0, engine.QuantityOf(result.Entries, "Girasol Básico"))
}

func (s *FusionTestSuite) TestFuseMergesWithExistingResult() {
	// The drawn seed may already be held; its entry accumulates.
	target := s.cat.SeedsByRarity(entities.RarityRare)[0]
	entries := []entities.InventoryEntry{
		{Name: "Girasol Básico", Type: entities.ItemTypeSeed, Rarity: entities.RarityCommon, Quantity: 2},
		{Name: target.Name, Type: entities.ItemTypeSeed, Rarity: entities.RarityRare, Quantity: 1},
	}

	result, err := engine.Fuse(s.cat, entries, s.recipe(entities.RarityCommon), &rng.Scripted{Ints: []int{0}})
	s.Require().NoError(err)

	s.Equal(target.Name, result.Result.Name)
	s.Equal(2, engine.QuantityOf(result.Entries, target.Name))
}

func (s *FusionTestSuite) TestRecipeChain() {
	// 2 common -> rare, 3 rare -> epic, 4 epic -> exotic, 5 exotic -> black
	// market; no recipe consumes black market seeds.
	expect := map[entities.Rarity]struct {
		cost   int
		target entities.Rarity
	}{
		entities.RarityCommon: {2, entities.RarityRare},
		entities.RarityRare:   {3, entities.RarityEpic},
		entities.RarityEpic:   {4, entities.RarityExotic},
		entities.RarityExotic: {5, entities.RarityBlackMarket},
	}

	for source, want := range expect {
		recipe := s.recipe(source)
		s.Equal(want.cost, recipe.Cost, "cost for %s", source)
		s.Equal(want.target, recipe.Target, "target for %s", source)
	}

	_, ok := s.cat.RecipeForSource(entities.RarityBlackMarket)
	s.False(ok)
}

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/questbloom/questbloom-api/internal/catalog"
	"github.com/questbloom/questbloom-api/internal/entities"
)

type CatalogTestSuite struct {
	suite.Suite
	cat *catalog.Catalog
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupSuite() {
	cat, err := catalog.Default()
	s.Require().NoError(err)
	s.cat = cat
}

func (s *CatalogTestSuite) TestSeedPartition() {
	s.Len(s.cat.Seeds, 53)

	wantCounts := map[entities.Rarity]int{
		entities.RarityCommon:      25,
		entities.RarityRare:        15,
		entities.RarityEpic:        6,
		entities.RarityExotic:      3,
		entities.RarityBlackMarket: 4,
	}
	for rarity, want := range wantCounts {
		s.Len(s.cat.SeedsByRarity(rarity), want, "seeds at %s", rarity)
	}
}

func (s *CatalogTestSuite) TestBestiary() {
	s.Len(s.cat.Bestiary.Daily, 5)
	s.Require().Len(s.cat.Bestiary.Bosses, 4)

	hps := make([]int, 0, 4)
	for _, boss := range s.cat.Bestiary.Bosses {
		hps = append(hps, boss.HP)
	}
	s.Equal([]int{500, 500, 800, 1000}, hps)
}

func (s *CatalogTestSuite) TestStore() {
	s.Equal(100, s.cat.Store.GachaPrice)

	water, ok := s.cat.ConsumableByName("Agua Destilada")
	s.Require().True(ok)
	s.Equal(10, water.Price)
	s.Equal("needs_water", water.Clears)

	fert, ok := s.cat.ConsumableByName("Fertilizante Premium")
	s.Require().True(ok)
	s.Equal(50, fert.Price)
	s.Equal("needs_fertilizer", fert.Clears)

	_, ok = s.cat.ConsumableByName("Poción Mágica")
	s.False(ok)
}

func (s *CatalogTestSuite) TestSeedByName() {
	seed, ok := s.cat.SeedByName("Árbol del Tiempo")
	s.Require().True(ok)
	s.Equal(entities.RarityBlackMarket, seed.Rarity)

	_, ok = s.cat.SeedByName("Planta Inexistente")
	s.False(ok)
}

func (s *CatalogTestSuite) TestLoadRejectsBadData() {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed yaml", "seeds: ["},
		{
			"unknown rarity",
			`
bestiary:
  daily:
    - {name: "A", color: "#fff", sprite: slime, style: bounce}
  bosses:
    - {id: boss_cronos, name: "B", color: "#fff", sprite: clock, style: x, hp: 500}
seeds:
  - {name: "S1", rarity: legendary, color: "#fff"}
`,
		},
		{
			"duplicate seed name",
			`
bestiary:
  daily:
    - {name: "A", color: "#fff", sprite: slime, style: bounce}
  bosses:
    - {id: boss_cronos, name: "B", color: "#fff", sprite: clock, style: x, hp: 500}
seeds:
  - {name: "S1", rarity: common, color: "#fff"}
  - {name: "S1", rarity: rare, color: "#fff"}
`,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			_, err := catalog.Load([]byte(tc.yaml))
			s.Error(err)
		})
	}
}

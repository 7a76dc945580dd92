// Package catalog holds the static reward tables: the monster bestiary, the
// seed catalog partitioned by rarity tier, store prices, and fusion recipes.
// The data lives in an embedded YAML document so tuning a table is a data
// change, not a code change.
package catalog

import (
	_ "embed"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/questbloom/questbloom-api/internal/entities"
	"github.com/questbloom/questbloom-api/internal/errors"
)

//go:embed data/catalog.yaml
var rawCatalog []byte

// DailyHP is the hit points assigned to every non-project task's monster.
const DailyHP = 100

// Seed is one immutable seed catalog entry.
type Seed struct {
	Name    string          `yaml:"name"`
	Rarity  entities.Rarity `yaml:"rarity"`
	Color   string          `yaml:"color"`
	Sprites StageSprites    `yaml:"sprites"`
}

// StageSprites maps growth stages to sprite keys.
type StageSprites struct {
	Seed   string `yaml:"seed"`
	Sprout string `yaml:"sprout"`
	Young  string `yaml:"young"`
	Master string `yaml:"master"`
}

// DailyMonster is a template for the monsters assigned to ordinary tasks.
type DailyMonster struct {
	Name   string `yaml:"name"`
	Color  string `yaml:"color"`
	Sprite string `yaml:"sprite"`
	Style  string `yaml:"style"`
}

// Boss is a template for the monsters assigned to project tasks. HP is
// tiered per boss identity.
type Boss struct {
	ID     entities.MonsterType `yaml:"id"`
	Name   string               `yaml:"name"`
	Color  string               `yaml:"color"`
	Sprite string               `yaml:"sprite"`
	Style  string               `yaml:"style"`
	HP     int                  `yaml:"hp"`
}

// Consumable is a purchasable store item that clears one gating flag.
type Consumable struct {
	Name   string `yaml:"name"`
	Price  int    `yaml:"price"`
	Clears string `yaml:"clears"` // "needs_water" or "needs_fertilizer"
}

// Recipe is one fusion rule: cost seeds of the source tier yield one drawn
// seed of the target tier.
type Recipe struct {
	Source entities.Rarity `yaml:"source"`
	Cost   int             `yaml:"cost"`
	Target entities.Rarity `yaml:"target"`
}

// Catalog is the loaded, validated reward-table set.
type Catalog struct {
	Version string `yaml:"version"`

	Bestiary struct {
		Daily  []DailyMonster `yaml:"daily"`
		Bosses []Boss         `yaml:"bosses"`
	} `yaml:"bestiary"`

	Seeds []Seed `yaml:"seeds"`

	Store struct {
		GachaPrice  int          `yaml:"gacha_price"`
		Consumables []Consumable `yaml:"consumables"`
	} `yaml:"store"`

	Fusion struct {
		Recipes []Recipe `yaml:"recipes"`
	} `yaml:"fusion"`

	byRarity map[entities.Rarity][]Seed
	byName   map[string]Seed
}

// Load parses and validates a catalog from YAML.
func Load(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrap(err, "failed to parse catalog")
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) index() error {
	c.byRarity = make(map[entities.Rarity][]Seed)
	c.byName = make(map[string]Seed, len(c.Seeds))

	for _, s := range c.Seeds {
		if !s.Rarity.IsValid() {
			return errors.InvalidArgumentf("seed %q has unknown rarity %q", s.Name, s.Rarity)
		}
		if _, dup := c.byName[s.Name]; dup {
			return errors.InvalidArgumentf("duplicate seed name %q", s.Name)
		}
		c.byName[s.Name] = s
		c.byRarity[s.Rarity] = append(c.byRarity[s.Rarity], s)
	}

	// Every built-in tier must have a non-empty pool or a draw could fail.
	for _, r := range entities.Rarities {
		if len(c.byRarity[r]) == 0 {
			return errors.InvalidArgumentf("rarity tier %q has an empty seed pool", r)
		}
	}

	if len(c.Bestiary.Daily) == 0 {
		return errors.InvalidArgument("bestiary has no daily monsters")
	}
	if len(c.Bestiary.Bosses) == 0 {
		return errors.InvalidArgument("bestiary has no bosses")
	}
	for _, b := range c.Bestiary.Bosses {
		if b.HP <= 0 {
			return errors.InvalidArgumentf("boss %q has invalid hp %d", b.Name, b.HP)
		}
	}

	for _, rcp := range c.Fusion.Recipes {
		if !rcp.Source.IsValid() || !rcp.Target.IsValid() {
			return errors.InvalidArgumentf("fusion recipe %q -> %q uses an unknown tier", rcp.Source, rcp.Target)
		}
		if rcp.Cost <= 0 {
			return errors.InvalidArgumentf("fusion recipe %q -> %q has invalid cost %d", rcp.Source, rcp.Target, rcp.Cost)
		}
	}

	return nil
}

// SeedsByRarity returns the pool of seeds for a tier. The returned slice is
// shared and must not be mutated.
func (c *Catalog) SeedsByRarity(r entities.Rarity) []Seed {
	return c.byRarity[r]
}

// SeedByName looks up a seed by its unique name.
func (c *Catalog) SeedByName(name string) (Seed, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// ConsumableByName looks up a store consumable by name.
func (c *Catalog) ConsumableByName(name string) (Consumable, bool) {
	for _, cons := range c.Store.Consumables {
		if cons.Name == name {
			return cons, true
		}
	}
	return Consumable{}, false
}

// RecipeForSource returns the fusion recipe whose source tier matches.
func (c *Catalog) RecipeForSource(r entities.Rarity) (Recipe, bool) {
	for _, rcp := range c.Fusion.Recipes {
		if rcp.Source == r {
			return rcp, true
		}
	}
	return Recipe{}, false
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
	defaultErr  error
)

// Default returns the built-in embedded catalog, loading it on first use.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCat, defaultErr = Load(rawCatalog)
	})
	return defaultCat, defaultErr
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/questbloom/questbloom-api/internal/catalog"
	"github.com/questbloom/questbloom-api/internal/localstore"
	"github.com/questbloom/questbloom-api/internal/orchestrators/game"
	"github.com/questbloom/questbloom-api/internal/pkg/clock"
	"github.com/questbloom/questbloom-api/internal/pkg/idgen"
	"github.com/questbloom/questbloom-api/internal/pkg/rng"
	redisclient "github.com/questbloom/questbloom-api/internal/redis"
	gardenrepo "github.com/questbloom/questbloom-api/internal/repositories/garden"
	inventoryrepo "github.com/questbloom/questbloom-api/internal/repositories/inventory"
	profilerepo "github.com/questbloom/questbloom-api/internal/repositories/profile"
	taskrepo "github.com/questbloom/questbloom-api/internal/repositories/task"
)

type envConfig struct {
	// PlayerID selects the session. The guest ID routes everything to the
	// local on-disk store; any other ID uses Redis.
	PlayerID  string        `env:"QUESTBLOOM_PLAYER_ID" envDefault:"guest-user"`
	RedisAddr string        `env:"QUESTBLOOM_REDIS_ADDR" envDefault:"localhost:6379"`
	DataDir   string        `env:"QUESTBLOOM_DATA_DIR"`
	Timeout   time.Duration `env:"QUESTBLOOM_TIMEOUT" envDefault:"30s"`
}

// withSession wires a coordinator for the configured player, starts the
// session, runs fn, and drains pending writes before exiting.
func withSession(fn func(ctx context.Context, svc game.Service, session *game.StartSessionOutput) error) error {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	repos, err := buildRepositories(&cfg)
	if err != nil {
		return err
	}

	cat, err := catalog.Default()
	if err != nil {
		return err
	}

	svc, err := game.NewOrchestrator(&game.Config{
		ProfileRepo:   repos.profiles,
		TaskRepo:      repos.tasks,
		GardenRepo:    repos.garden,
		InventoryRepo: repos.inventory,
		Catalog:       cat,
		Roller:        rng.New(),
		IDGenerator:   idgen.NewUUID("task"),
		Clock:         clock.New(),
	})
	if err != nil {
		return err
	}
	defer svc.Flush()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	session, err := svc.StartSession(ctx, &game.StartSessionInput{PlayerID: cfg.PlayerID})
	if err != nil {
		return err
	}
	if session.Degraded {
		fmt.Fprintln(os.Stderr, "warning: could not reach the store, playing with fresh session state")
	}

	return fn(ctx, svc, session)
}

type repositories struct {
	profiles  profilerepo.Repository
	tasks     taskrepo.Repository
	garden    gardenrepo.Repository
	inventory inventoryrepo.Repository
}

func buildRepositories(cfg *envConfig) (*repositories, error) {
	if cfg.PlayerID == game.GuestPlayerID {
		return buildLocalRepositories(cfg)
	}
	return buildRedisRepositories(cfg)
}

func buildRedisRepositories(cfg *envConfig) (*repositories, error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return nil, err
	}

	profiles, err := profilerepo.NewRedisRepository(&profilerepo.Config{Client: client})
	if err != nil {
		return nil, err
	}
	tasks, err := taskrepo.NewRedisRepository(&taskrepo.Config{Client: client})
	if err != nil {
		return nil, err
	}
	garden, err := gardenrepo.NewRedisRepository(&gardenrepo.Config{Client: client})
	if err != nil {
		return nil, err
	}
	inventory, err := inventoryrepo.NewRedisRepository(&inventoryrepo.Config{Client: client})
	if err != nil {
		return nil, err
	}

	return &repositories{profiles: profiles, tasks: tasks, garden: garden, inventory: inventory}, nil
}

func buildLocalRepositories(cfg *envConfig) (*repositories, error) {
	dir := cfg.DataDir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config directory: %w", err)
		}
		dir = filepath.Join(base, "questbloom")
	}

	store, err := localstore.New(dir)
	if err != nil {
		return nil, err
	}

	profiles, err := profilerepo.NewLocalRepository(&profilerepo.LocalConfig{Store: store})
	if err != nil {
		return nil, err
	}
	tasks, err := taskrepo.NewLocalRepository(&taskrepo.LocalConfig{Store: store})
	if err != nil {
		return nil, err
	}
	garden, err := gardenrepo.NewLocalRepository(&gardenrepo.LocalConfig{Store: store})
	if err != nil {
		return nil, err
	}
	inventory, err := inventoryrepo.NewLocalRepository(&inventoryrepo.LocalConfig{Store: store})
	if err != nil {
		return nil, err
	}

	return &repositories{profiles: profiles, tasks: tasks, garden: garden, inventory: inventory}, nil
}

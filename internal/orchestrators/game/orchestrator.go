// Package game implements the game state coordinator. It owns the in-memory
// snapshot of profile, tasks, garden, and inventory, applies engine outputs
// to that snapshot optimistically, and drives asynchronous best-effort
// writes through whichever persistence backend the session was wired with.
package game

//go:generate mockgen -destination=mock/mock_service.go -package=gamemock github.com/questbloom/questbloom-api/internal/orchestrators/game Service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/questbloom/questbloom-api/internal/catalog"
	"github.com/questbloom/questbloom-api/internal/engine"
	"github.com/questbloom/questbloom-api/internal/entities"
	"github.com/questbloom/questbloom-api/internal/errors"
	"github.com/questbloom/questbloom-api/internal/pkg/clock"
	"github.com/questbloom/questbloom-api/internal/pkg/idgen"
	"github.com/questbloom/questbloom-api/internal/pkg/rng"
	gardenrepo "github.com/questbloom/questbloom-api/internal/repositories/garden"
	inventoryrepo "github.com/questbloom/questbloom-api/internal/repositories/inventory"
	profilerepo "github.com/questbloom/questbloom-api/internal/repositories/profile"
	taskrepo "github.com/questbloom/questbloom-api/internal/repositories/task"
)

// GuestPlayerID is the reserved identifier for local-only sessions. The
// coordinator treats it as a marker; routing to the local backend happens at
// wiring time.
const GuestPlayerID = "guest-user"

const (
	persistAttempts = 3
	persistBackoff  = 100 * time.Millisecond
)

// Service defines the coordinator operations exposed to callers
type Service interface {
	// StartSession loads the player's state, or seeds defaults for a fresh
	// or degraded session. Must be called before any other operation.
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// Task operations
	AddTask(ctx context.Context, input *AddTaskInput) (*AddTaskOutput, error)
	ListTasks(ctx context.Context, input *ListTasksInput) (*ListTasksOutput, error)
	CompleteTask(ctx context.Context, input *CompleteTaskInput) (*CompleteTaskOutput, error)
	DeleteTask(ctx context.Context, input *DeleteTaskInput) (*DeleteTaskOutput, error)

	// Garden operations
	Garden(ctx context.Context, input *GardenInput) (*GardenOutput, error)
	PlantSeed(ctx context.Context, input *PlantSeedInput) (*PlantSeedOutput, error)
	WaterSlot(ctx context.Context, input *WaterSlotInput) (*WaterSlotOutput, error)
	FertilizeSlot(ctx context.Context, input *FertilizeSlotInput) (*FertilizeSlotOutput, error)
	RemoveSlot(ctx context.Context, input *RemoveSlotInput) (*RemoveSlotOutput, error)

	// Store and inventory operations
	Inventory(ctx context.Context, input *InventoryInput) (*InventoryOutput, error)
	OpenGachaBox(ctx context.Context, input *OpenGachaBoxInput) (*OpenGachaBoxOutput, error)
	BuyConsumable(ctx context.Context, input *BuyConsumableInput) (*BuyConsumableOutput, error)
	FuseSeeds(ctx context.Context, input *FuseSeedsInput) (*FuseSeedsOutput, error)

	// ApplyFocusPenalty deducts the fixed counter-attack penalty, skipping
	// silently when the player cannot afford it.
	ApplyFocusPenalty(ctx context.Context, input *ApplyFocusPenaltyInput) (*ApplyFocusPenaltyOutput, error)

	// Flush blocks until all pending asynchronous writes have settled.
	Flush()
}

// Config holds the dependencies for the game coordinator. The repositories
// decide whether the session is remote or local; the coordinator never
// branches on backend.
type Config struct {
	ProfileRepo   profilerepo.Repository
	TaskRepo      taskrepo.Repository
	GardenRepo    gardenrepo.Repository
	InventoryRepo inventoryrepo.Repository

	Catalog     *catalog.Catalog
	Roller      rng.Roller
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// WiltPolicy is optional; nil means plants never wilt on their own.
	WiltPolicy engine.WiltPolicy
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ProfileRepo == nil {
		vb.RequiredField("ProfileRepo")
	}
	if c.TaskRepo == nil {
		vb.RequiredField("TaskRepo")
	}
	if c.GardenRepo == nil {
		vb.RequiredField("GardenRepo")
	}
	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	profiles  profilerepo.Repository
	tasks     taskrepo.Repository
	garden    gardenrepo.Repository
	inventory inventoryrepo.Repository

	cat    *catalog.Catalog
	roller rng.Roller
	idGen  idgen.Generator
	clock  clock.Clock
	wilt   engine.WiltPolicy

	// mu guards the snapshot. Operations are serialized; only persistence
	// I/O runs concurrently.
	mu       sync.Mutex
	playerID string
	guest    bool
	ready    bool

	profile    *entities.Profile
	taskList   []entities.Task
	slots      []entities.GardenSlot
	entries    []entities.InventoryEntry

	writes sync.WaitGroup
}

// NewOrchestrator creates a new game coordinator with the provided
// dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	wilt := cfg.WiltPolicy
	if wilt == nil {
		wilt = engine.NeverWilt{}
	}

	return &orchestrator{
		profiles:  cfg.ProfileRepo,
		tasks:     cfg.TaskRepo,
		garden:    cfg.GardenRepo,
		inventory: cfg.InventoryRepo,
		cat:       cfg.Catalog,
		roller:    cfg.Roller,
		idGen:     cfg.IDGenerator,
		clock:     cfg.Clock,
		wilt:      wilt,
	}, nil
}

var _ Service = (*orchestrator)(nil)

// StartSession loads all four collections in one fan-out and marks the
// session ready. A missing profile means a fresh player: defaults are seeded
// and persisted. Any other load failure degrades to fresh defaults so the
// session stays usable.
func (o *orchestrator) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.playerID = input.PlayerID
	o.guest = input.PlayerID == GuestPlayerID

	var (
		prof       *entities.Profile
		tasks      []entities.Task
		slots      []entities.GardenSlot
		entries    []entities.InventoryEntry
		newProfile bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := o.profiles.Get(gctx, profilerepo.GetInput{PlayerID: input.PlayerID})
		if err != nil {
			if errors.IsNotFound(err) {
				newProfile = true
				return nil
			}
			return err
		}
		prof = out.Profile
		return nil
	})
	g.Go(func() error {
		out, err := o.tasks.List(gctx, taskrepo.ListInput{PlayerID: input.PlayerID})
		if err != nil {
			return err
		}
		tasks = out.Tasks
		return nil
	})
	g.Go(func() error {
		out, err := o.garden.List(gctx, gardenrepo.ListInput{PlayerID: input.PlayerID})
		if err != nil {
			return err
		}
		slots = out.Slots
		return nil
	})
	g.Go(func() error {
		out, err := o.inventory.List(gctx, inventoryrepo.ListInput{PlayerID: input.PlayerID})
		if err != nil {
			return err
		}
		entries = out.Entries
		return nil
	})

	degraded := false
	if err := g.Wait(); err != nil {
		slog.Error("bulk load failed, falling back to session defaults",
			"player_id", input.PlayerID,
			"error", err,
		)
		degraded = true
		prof = nil
		tasks = nil
		slots = nil
		entries = nil
		newProfile = false
	}

	if prof == nil {
		prof = entities.NewProfile(input.PlayerID)
	}
	if slots == nil {
		slots = entities.NewGarden()
	}
	if tasks == nil {
		tasks = []entities.Task{}
	}
	if entries == nil {
		entries = []entities.InventoryEntry{}
	}

	// Level is derived; repair stale stored values on load.
	prof.Level = entities.LevelForXP(prof.XP)

	o.profile = prof
	o.taskList = tasks
	o.slots = slots
	o.entries = entries
	o.ready = true

	if newProfile {
		o.persistProfile()
	}

	slog.Info("session started",
		"player_id", input.PlayerID,
		"guest", o.guest,
		"degraded", degraded,
		"tasks", len(tasks),
	)

	return &StartSessionOutput{
		Profile:  copyProfile(prof),
		Guest:    o.guest,
		Degraded: degraded,
	}, nil
}

// AddTask creates a task with a frozen monster identity drawn from the
// bestiary.
func (o *orchestrator) AddTask(_ context.Context, input *AddTaskInput) (*AddTaskOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Title == "" {
		return nil, errors.InvalidArgument("title is required")
	}
	if input.SubtaskCount < 0 {
		return nil, errors.InvalidArgument("subtask count cannot be negative")
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.checkReady(); err != nil {
		return nil, err
	}

	isProject := input.SubtaskCount >= entities.ProjectSubtaskThreshold
	monster, hp := engine.RollMonster(o.cat, isProject, o.roller)

	task := entities.Task{
		ID:           o.idGen.Generate(),
		Title:        input.Title,
		Description:  input.Description,
		SubtaskCount: input.SubtaskCount,
		IsProject:    isProject,
		Monster:      monster,
		HP:           hp,
		Status:       entities.TaskStatusPending,
		CreatedAt:    o.clock.Now().Unix(),
	}

	o.taskList = append([]entities.Task{task}, o.taskList...)
	o.persistTask(task)

	return &AddTaskOutput{Task: &task}, nil
}

// ListTasks returns the snapshot's tasks, newest first.
func (o *orchestrator) ListTasks(_ context.Context, _ *ListTasksInput) (*ListTasksOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.checkReady(); err != nil {
		return nil, err
	}

	tasks := make([]entities.Task, len(o.taskList))
	copy(tasks, o.taskList)
	return &ListTasksOutput{Tasks: tasks}, nil
}

// CompleteTask grants the task's reward and applies one growth pulse to the
// garden (two under hyper-growth). Completing a completed task is rejected
// before any mutation.
func (o *orchestrator) CompleteTask(_ context.Context, input *CompleteTaskInput) (*CompleteTaskOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TaskID == "" {
		return nil, errors.InvalidArgument("task ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.checkReady(); err != nil {
		return nil, err
	}

	idx := o.findTask(input.TaskID)
	if idx < 0 {
		return nil, errors.NotFoundf("task %q not found", input.TaskID)
	}

	task := o.taskList[idx]
	reward, err := engine.CompleteTask(o.profile, &task, o.clock.Now().Unix())
	if err != nil {
		return nil, err
	}
	o.taskList[idx] = task

	pulses := 1
	if input.HyperGrowthActive {
		pulses = 2
	}
	newSlots, changed := engine.AdvanceGarden(o.slots, pulses, o.wilt, o.roller)
	o.slots = newSlots

	o.persistTask(task)
	o.persistProfile()
	changedSlots := make([]entities.GardenSlot, 0, len(changed))
	for _, i := range changed {
		o.persistSlot(o.slots[i])
		changedSlots = append(changedSlots, o.slots[i])
	}

	slog.Info("task completed",
		"task_id", task.ID,
		"monster", task.Monster.Name,
		"xp", reward.XPDelta,
		"coins", reward.CoinDelta,
		"level_up", reward.LevelUp,
	)

	return &CompleteTaskOutput{
		Task:         &task,
		Reward:       reward,
		Profile:      copyProfile(o.profile),
		ChangedSlots: changedSlots,
	}, nil
}

// DeleteTask removes a task regardless of its status.
func (o *orchestrator) DeleteTask(_ context.Context, input *DeleteTaskInput) (*DeleteTaskOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.TaskID == "" {
		return nil, errors.InvalidArgument("task ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.checkReady(); err != nil {
		return nil, err
	}

	idx := o.findTask(input.TaskID)
	if idx < 0 {
		return nil, errors.NotFoundf("task %q not found", input.TaskID)
	}

	o.taskList = append(o.taskList[:idx], o.taskList[idx+1:]...)

	playerID, taskID := o.playerID, input.TaskID
	o.persistAsync("delete task", func(ctx context.Context) error {
		return o.tasks.Delete(ctx, taskrepo.DeleteInput{PlayerID: playerID, TaskID: taskID})
	})

	return &DeleteTaskOutput{}, nil
}

// Garden returns a copy of the ten slots.
func (o *orchestrator) Garden(_ context.Context, _ *GardenInput) (*GardenOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.checkReady(); err != nil {
		return nil, err
	}

	slots := make([]entities.GardenSlot, len(o.slots))
	copy(slots, o.slots)
	return &GardenOutput{Slots: slots}, nil
}

// PlantSeed consumes one held seed and plants it into an empty slot.
func (o *orchestrator) PlantSeed(_ context.Context, input *PlantSeedInput) (*PlantSeedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SeedName == "" {
		return nil, errors.InvalidArgument("seed name is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.checkReady(); err != nil {
		return nil, err
	}

	seed, ok := o.cat.SeedByName(input.SeedName)
	if !ok {
		return nil, errors.NotFoundf("unknown seed %q", input.SeedName)
	}

	newEntries, err := engine.AdjustInventory(o.entries, seed.Name, -1, entities.ItemTypeSeed, seed.Rarity)
	if err != nil {
		return nil, err
	}
	newSlots, err := engine.Plant(o.slots, input.SlotIndex, seed)
	if err != nil {
		return nil, err
	}

	oldEntries := o.entries
	o.entries = newEntries
	o.slots = newSlots

	o.persistSlot(o.slots[input.SlotIndex])
	o.persistInventoryDiff(oldEntries, newEntries)

	return &PlantSeedOutput{Slot: o.slots[input.SlotIndex]}, nil
}

// WaterSlot consumes one water consumable and clears the slot's thirst.
func (o *orchestrator) WaterSlot(_ context.Context, input *WaterSlotInput) (*WaterSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.checkReady(); err != nil {
		return nil, err
	}

	slot, err := o.clearGateWithConsumable("needs_water", input.SlotIndex, engine.Water)
	if err != nil {
		return nil, err
	}
	return &WaterSlotOutput{Slot: slot}, nil
}

// FertilizeSlot consumes one fertilizer and clears the slot's gate.
func (o *orchestrator) FertilizeSlot(_ context.Context, input *FertilizeSlotInput) (*FertilizeSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.checkReady(); err != nil {
		return nil, err
	}

	slot, err := o.clearGateWithConsumable("needs_fertilizer", input.SlotIndex, engine.Fertilize)
	if err != nil {
		return nil, err
	}
	return &FertilizeSlotOutput{Slot: slot}, nil
}

// RemoveSlot resets a slot to empty, discarding the plant permanently.
func (o *orchestrator) RemoveSlot(_ context.Context, input *RemoveSlotInput) (*RemoveSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.checkReady(); err != nil {
		return nil, err
	}

	newSlots, err := engine.Remove(o.slots, input.SlotIndex)
	if err != nil {
		return nil, err
	}
	o.slots = newSlots
	o.persistSlot(o.slots[input.SlotIndex])

	return &RemoveSlotOutput{}, nil
}

// Inventory returns a copy of the current entries.
func (o *orchestrator) Inventory(_ context.Context, _ *InventoryInput) (*InventoryOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.checkReady(); err != nil {
		return nil, err
	}

	entries := make([]entities.InventoryEntry, len(o.entries))
	copy(entries, o.entries)
	return &InventoryOutput{Entries: entries}, nil
}

// OpenGachaBox spends the box price and adds one randomly drawn seed to the
// inventory.
func (o *orchestrator) OpenGachaBox(_ context.Context, _ *OpenGachaBoxInput) (*OpenGachaBoxOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.checkReady(); err != nil {
		return nil, err
	}

	price := o.cat.Store.GachaPrice
	if err := engine.ApplyCurrencyDelta(o.profile, -price, 0); err != nil {
		return nil, err
	}

	seed, err := engine.DrawSeed(o.cat, o.roller)
	if err != nil {
		// The coins are already spent optimistically; an empty pool is a
		// catalog defect caught at load, so this is effectively unreachable.
		return nil, err
	}

	oldEntries := o.entries
	newEntries, err := engine.AdjustInventory(o.entries, seed.Name, 1, entities.ItemTypeSeed, seed.Rarity)
	if err != nil {
		return nil, err
	}
	o.entries = newEntries

	o.persistProfile()
	o.persistInventoryDiff(oldEntries, newEntries)

	slog.Info("gacha box opened", "seed", seed.Name, "rarity", seed.Rarity)

	return &OpenGachaBoxOutput{
		SeedName: seed.Name,
		Rarity:   seed.Rarity,
		Color:    seed.Color,
		Cost:     price,
		Profile:  copyProfile(o.profile),
	}, nil
}

// BuyConsumable spends coins on one unit of a store consumable.
func (o *orchestrator) BuyConsumable(_ context.Context, input *BuyConsumableInput) (*BuyConsumableOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemName == "" {
		return nil, errors.InvalidArgument("item name is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.checkReady(); err != nil {
		return nil, err
	}

	cons, ok := o.cat.ConsumableByName(input.ItemName)
	if !ok {
		return nil, errors.NotFoundf("unknown consumable %q", input.ItemName)
	}

	if err := engine.ApplyCurrencyDelta(o.profile, -cons.Price, 0); err != nil {
		return nil, err
	}

	oldEntries := o.entries
	newEntries, err := engine.AdjustInventory(o.entries, cons.Name, 1, entities.ItemTypeConsumable, "")
	if err != nil {
		return nil, err
	}
	o.entries = newEntries

	o.persistProfile()
	o.persistInventoryDiff(oldEntries, newEntries)

	return &BuyConsumableOutput{
		ItemName: cons.Name,
		Cost:     cons.Price,
		Profile:  copyProfile(o.profile),
	}, nil
}

// FuseSeeds runs the fusion recipe for the given source tier.
func (o *orchestrator) FuseSeeds(_ context.Context, input *FuseSeedsInput) (*FuseSeedsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.checkReady(); err != nil {
		return nil, err
	}

	recipe, ok := o.cat.RecipeForSource(input.SourceRarity)
	if !ok {
		return nil, errors.NotFoundf("no fusion recipe for %q seeds", input.SourceRarity)
	}

	result, err := engine.Fuse(o.cat, o.entries, recipe, o.roller)
	if err != nil {
		return nil, err
	}

	oldEntries := o.entries
	o.entries = result.Entries
	o.persistInventoryDiff(oldEntries, result.Entries)

	slog.Info("seeds fused",
		"source", recipe.Source,
		"cost", recipe.Cost,
		"result", result.Result.Name,
		"rarity", result.Result.Rarity,
	)

	return &FuseSeedsOutput{Result: result.Result}, nil
}

// ApplyFocusPenalty deducts the counter-attack penalty. Unlike purchases,
// an unaffordable penalty is skipped rather than surfaced as an error.
func (o *orchestrator) ApplyFocusPenalty(_ context.Context, _ *ApplyFocusPenaltyInput) (*ApplyFocusPenaltyOutput, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if err := o.checkReady(); err != nil {
		return nil, err
	}

	if err := engine.ApplyCurrencyDelta(o.profile, -engine.FocusPenaltyCoins, 0); err != nil {
		if errors.IsInsufficientFunds(err) {
			return &ApplyFocusPenaltyOutput{Penalized: false, Profile: copyProfile(o.profile)}, nil
		}
		return nil, err
	}

	o.persistProfile()
	slog.Info("focus broken, monster counter-attacked", "coins_lost", engine.FocusPenaltyCoins)

	return &ApplyFocusPenaltyOutput{Penalized: true, Profile: copyProfile(o.profile)}, nil
}

// Flush blocks until pending writes settle.
func (o *orchestrator) Flush() {
	o.writes.Wait()
}

// Internal helpers. All callers hold o.mu.

func (o *orchestrator) checkReady() error {
	if !o.ready {
		return errors.InvalidStateTransition("session not started")
	}
	return nil
}

func (o *orchestrator) findTask(taskID string) int {
	for i := range o.taskList {
		if o.taskList[i].ID == taskID {
			return i
		}
	}
	return -1
}

func (o *orchestrator) clearGateWithConsumable(gate string, slotIndex int, clear func([]entities.GardenSlot, int) ([]entities.GardenSlot, error)) (entities.GardenSlot, error) {
	var itemName string
	for _, cons := range o.cat.Store.Consumables {
		if cons.Clears == gate {
			itemName = cons.Name
			break
		}
	}
	if itemName == "" {
		return entities.GardenSlot{}, errors.Internalf("no consumable clears %q", gate)
	}

	if engine.QuantityOf(o.entries, itemName) < 1 {
		return entities.GardenSlot{}, errors.InsufficientQuantityf("no %q held", itemName)
	}

	newSlots, err := clear(o.slots, slotIndex)
	if err != nil {
		return entities.GardenSlot{}, err
	}

	newEntries, err := engine.AdjustInventory(o.entries, itemName, -1, entities.ItemTypeConsumable, "")
	if err != nil {
		return entities.GardenSlot{}, err
	}

	oldEntries := o.entries
	o.slots = newSlots
	o.entries = newEntries

	o.persistSlot(o.slots[slotIndex])
	o.persistInventoryDiff(oldEntries, newEntries)

	return o.slots[slotIndex], nil
}

// persistAsync dispatches one best-effort write. The in-memory snapshot is
// already authoritative for this session, so failures are logged, never
// rolled back; a full reload re-synchronizes from the store.
func (o *orchestrator) persistAsync(op string, fn func(ctx context.Context) error) {
	o.writes.Add(1)
	go func() {
		defer o.writes.Done()

		var err error
		for attempt := 0; attempt < persistAttempts; attempt++ {
			if attempt > 0 {
				time.Sleep(persistBackoff << (attempt - 1))
			}
			if err = fn(context.Background()); err == nil {
				return
			}
		}

		slog.Error("persistence write failed; in-memory state retained",
			"op", op,
			"error", err,
		)
	}()
}

func (o *orchestrator) persistProfile() {
	playerID := o.playerID
	prof := copyProfile(o.profile)
	o.persistAsync("save profile", func(ctx context.Context) error {
		return o.profiles.Save(ctx, profilerepo.SaveInput{PlayerID: playerID, Profile: prof})
	})
}

func (o *orchestrator) persistTask(t entities.Task) {
	playerID := o.playerID
	o.persistAsync("save task", func(ctx context.Context) error {
		return o.tasks.Save(ctx, taskrepo.SaveInput{PlayerID: playerID, Task: &t})
	})
}

func (o *orchestrator) persistSlot(slot entities.GardenSlot) {
	playerID := o.playerID
	o.persistAsync("save garden slot", func(ctx context.Context) error {
		return o.garden.SaveSlot(ctx, gardenrepo.SaveSlotInput{PlayerID: playerID, Slot: slot})
	})
}

// persistInventoryDiff writes only the entries that changed between two
// ledger states: upserts for new or requantified items, deletes for items
// that dropped to zero.
func (o *orchestrator) persistInventoryDiff(before, after []entities.InventoryEntry) {
	playerID := o.playerID

	prev := make(map[string]int, len(before))
	for _, e := range before {
		prev[e.Name] = e.Quantity
	}

	seen := make(map[string]bool, len(after))
	for _, e := range after {
		seen[e.Name] = true
		if prev[e.Name] == e.Quantity {
			continue
		}
		entry := e
		o.persistAsync("save inventory entry", func(ctx context.Context) error {
			return o.inventory.Save(ctx, inventoryrepo.SaveInput{PlayerID: playerID, Entry: entry})
		})
	}

	for _, e := range before {
		if seen[e.Name] {
			continue
		}
		name := e.Name
		o.persistAsync("delete inventory entry", func(ctx context.Context) error {
			return o.inventory.Delete(ctx, inventoryrepo.DeleteInput{PlayerID: playerID, ItemName: name})
		})
	}
}

func copyProfile(p *entities.Profile) *entities.Profile {
	cp := *p
	return &cp
}

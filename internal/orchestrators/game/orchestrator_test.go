package game_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/questbloom/questbloom-api/internal/catalog"
	"github.com/questbloom/questbloom-api/internal/engine"
	"github.com/questbloom/questbloom-api/internal/entities"
	"github.com/questbloom/questbloom-api/internal/errors"
	"github.com/questbloom/questbloom-api/internal/localstore"
	"github.com/questbloom/questbloom-api/internal/orchestrators/game"
	"github.com/questbloom/questbloom-api/internal/pkg/clock"
	mockclock "github.com/questbloom/questbloom-api/internal/pkg/clock/mock"
	"github.com/questbloom/questbloom-api/internal/pkg/idgen"
	"github.com/questbloom/questbloom-api/internal/pkg/rng"
	gardenrepo "github.com/questbloom/questbloom-api/internal/repositories/garden"
	inventoryrepo "github.com/questbloom/questbloom-api/internal/repositories/inventory"
	profilerepo "github.com/questbloom/questbloom-api/internal/repositories/profile"
	taskrepo "github.com/questbloom/questbloom-api/internal/repositories/task"
)

var testNow = time.Unix(1700000100, 0)

type OrchestratorTestSuite struct {
	suite.Suite
	ctx  context.Context
	ctrl *gomock.Controller

	cat       *catalog.Catalog
	profiles  profilerepo.Repository
	tasks     taskrepo.Repository
	garden    gardenrepo.Repository
	inventory inventoryrepo.Repository
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())

	cat, err := catalog.Default()
	s.Require().NoError(err)
	s.cat = cat

	store, err := localstore.New(s.T().TempDir())
	s.Require().NoError(err)

	s.profiles, err = profilerepo.NewLocalRepository(&profilerepo.LocalConfig{Store: store})
	s.Require().NoError(err)
	s.tasks, err = taskrepo.NewLocalRepository(&taskrepo.LocalConfig{Store: store})
	s.Require().NoError(err)
	s.garden, err = gardenrepo.NewLocalRepository(&gardenrepo.LocalConfig{Store: store})
	s.Require().NoError(err)
	s.inventory, err = inventoryrepo.NewLocalRepository(&inventoryrepo.LocalConfig{Store: store})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// newService builds a coordinator over the suite's repositories with a
// scripted random source and a frozen clock.
func (s *OrchestratorTestSuite) newService(roller rng.Roller) game.Service {
	mc := mockclock.NewMockClock(s.ctrl)
	mc.EXPECT().Now().Return(testNow).AnyTimes()

	svc, err := game.NewOrchestrator(&game.Config{
		ProfileRepo:   s.profiles,
		TaskRepo:      s.tasks,
		GardenRepo:    s.garden,
		InventoryRepo: s.inventory,
		Catalog:       s.cat,
		Roller:        roller,
		IDGenerator:   idgen.NewSequential("task"),
		Clock:         mc,
	})
	s.Require().NoError(err)
	return svc
}

func (s *OrchestratorTestSuite) startGuest(svc game.Service) *game.StartSessionOutput {
	out, err := svc.StartSession(s.ctx, &game.StartSessionInput{PlayerID: game.GuestPlayerID})
	s.Require().NoError(err)
	return out
}

func (s *OrchestratorTestSuite) TestConfigValidate() {
	_, err := game.NewOrchestrator(&game.Config{
		Catalog: s.cat,
		Roller:  rng.NewSeeded(1),
		Clock:   clock.New(),
	})
	s.Error(err)
}

func (s *OrchestratorTestSuite) TestStartSessionFreshGuest() {
	svc := s.newService(rng.NewSeeded(1))

	out := s.startGuest(svc)

	s.True(out.Guest)
	s.False(out.Degraded)
	s.Equal(game.GuestPlayerID, out.Profile.ID)
	s.Equal(0, out.Profile.XP)
	s.Equal(0, out.Profile.Coins)
	s.Equal(1, out.Profile.Level)

	tasks, err := svc.ListTasks(s.ctx, &game.ListTasksInput{})
	s.Require().NoError(err)
	s.Empty(tasks.Tasks)

	garden, err := svc.Garden(s.ctx, &game.GardenInput{})
	s.Require().NoError(err)
	s.Len(garden.Slots, entities.GardenSize)
}

// unreachableProfileRepo and friends simulate a remote store that is down:
// every operation fails with a persistence error.
type unreachableProfileRepo struct{}

func (unreachableProfileRepo) Get(context.Context, profilerepo.GetInput) (*profilerepo.GetOutput, error) {
	return nil, errors.PersistenceFailure("profile store unreachable")
}

func (unreachableProfileRepo) Save(context.Context, profilerepo.SaveInput) error {
	return errors.PersistenceFailure("profile store unreachable")
}

type unreachableTaskRepo struct{}

func (unreachableTaskRepo) List(context.Context, taskrepo.ListInput) (*taskrepo.ListOutput, error) {
	return nil, errors.PersistenceFailure("task store unreachable")
}

func (unreachableTaskRepo) Save(context.Context, taskrepo.SaveInput) error {
	return errors.PersistenceFailure("task store unreachable")
}

func (unreachableTaskRepo) Delete(context.Context, taskrepo.DeleteInput) error {
	return errors.PersistenceFailure("task store unreachable")
}

type unreachableGardenRepo struct{}

func (unreachableGardenRepo) List(context.Context, gardenrepo.ListInput) (*gardenrepo.ListOutput, error) {
	return nil, errors.PersistenceFailure("garden store unreachable")
}

func (unreachableGardenRepo) SaveSlot(context.Context, gardenrepo.SaveSlotInput) error {
	return errors.PersistenceFailure("garden store unreachable")
}

type unreachableInventoryRepo struct{}

func (unreachableInventoryRepo) List(context.Context, inventoryrepo.ListInput) (*inventoryrepo.ListOutput, error) {
	return nil, errors.PersistenceFailure("inventory store unreachable")
}

func (unreachableInventoryRepo) Save(context.Context, inventoryrepo.SaveInput) error {
	return errors.PersistenceFailure("inventory store unreachable")
}

func (unreachableInventoryRepo) Delete(context.Context, inventoryrepo.DeleteInput) error {
	return errors.PersistenceFailure("inventory store unreachable")
}

func (s *OrchestratorTestSuite) TestStartSessionDegradesWhenStoreUnreachable() {
	mc := mockclock.NewMockClock(s.ctrl)
	mc.EXPECT().Now().Return(testNow).AnyTimes()

	svc, err := game.NewOrchestrator(&game.Config{
		ProfileRepo:   unreachableProfileRepo{},
		TaskRepo:      unreachableTaskRepo{},
		GardenRepo:    unreachableGardenRepo{},
		InventoryRepo: unreachableInventoryRepo{},
		Catalog:       s.cat,
		Roller:        rng.NewSeeded(1),
		IDGenerator:   idgen.NewSequential("task"),
		Clock:         mc,
	})
	s.Require().NoError(err)
	defer svc.Flush()

	out, err := svc.StartSession(s.ctx, &game.StartSessionInput{PlayerID: "player-offline"})
	s.Require().NoError(err, "an unreachable store must not block the session")

	s.True(out.Degraded)
	s.False(out.Guest)
	s.Equal("player-offline", out.Profile.ID)
	s.Equal(0, out.Profile.XP)
	s.Equal(0, out.Profile.Coins)
	s.Equal(1, out.Profile.Level)

	tasks, err := svc.ListTasks(s.ctx, &game.ListTasksInput{})
	s.Require().NoError(err)
	s.Empty(tasks.Tasks)

	garden, err := svc.Garden(s.ctx, &game.GardenInput{})
	s.Require().NoError(err)
	s.Require().Len(garden.Slots, entities.GardenSize)
	for _, slot := range garden.Slots {
		s.True(slot.IsEmpty())
	}

	inv, err := svc.Inventory(s.ctx, &game.InventoryInput{})
	s.Require().NoError(err)
	s.Empty(inv.Entries)
}

func (s *OrchestratorTestSuite) TestOperationsRequireSession() {
	svc := s.newService(rng.NewSeeded(1))

	_, err := svc.ListTasks(s.ctx, &game.ListTasksInput{})
	s.True(errors.IsInvalidStateTransition(err))
}

func (s *OrchestratorTestSuite) TestAddTaskDaily() {
	svc := s.newService(&rng.Scripted{Ints: []int{2}})
	s.startGuest(svc)

	out, err := svc.AddTask(s.ctx, &game.AddTaskInput{Title: "Inbox zero", SubtaskCount: 4})
	s.Require().NoError(err)

	s.Equal("task_1", out.Task.ID)
	s.False(out.Task.IsProject)
	s.Equal(s.cat.Bestiary.Daily[2].Name, out.Task.Monster.Name)
	s.Equal(catalog.DailyHP, out.Task.HP)
	s.Equal(entities.TaskStatusPending, out.Task.Status)
	s.Equal(testNow.Unix(), out.Task.CreatedAt)
}

func (s *OrchestratorTestSuite) TestAddTaskProjectSummonsBoss() {
	svc := s.newService(&rng.Scripted{Ints: []int{3}})
	s.startGuest(svc)

	out, err := svc.AddTask(s.ctx, &game.AddTaskInput{Title: "Ship v2", SubtaskCount: 5})
	s.Require().NoError(err)

	s.True(out.Task.IsProject)
	s.Equal(s.cat.Bestiary.Bosses[3].Name, out.Task.Monster.Name)
	s.Equal(1000, out.Task.HP)
}

func (s *OrchestratorTestSuite) TestCompleteTaskDailyReward() {
	svc := s.newService(&rng.Scripted{Ints: []int{0}, Floats: []float64{0.9}})
	s.startGuest(svc)

	added, err := svc.AddTask(s.ctx, &game.AddTaskInput{Title: "Inbox zero"})
	s.Require().NoError(err)

	out, err := svc.CompleteTask(s.ctx, &game.CompleteTaskInput{TaskID: added.Task.ID})
	s.Require().NoError(err)

	s.Equal(engine.DailyTaskXP, out.Reward.XPDelta)
	s.Equal(engine.DailyTaskCoins, out.Reward.CoinDelta)
	s.False(out.Reward.LevelUp)
	s.Equal(10, out.Profile.XP)
	s.Equal(5, out.Profile.Coins)
	s.Equal(entities.TaskStatusCompleted, out.Task.Status)
	s.Equal(testNow.Unix(), out.Task.CompletedAt)
	s.Empty(out.ChangedSlots, "empty garden has nothing to grow")
}

func (s *OrchestratorTestSuite) TestCompleteTaskTwiceRejected() {
	svc := s.newService(&rng.Scripted{Ints: []int{0}, Floats: []float64{0.9}})
	s.startGuest(svc)

	added, err := svc.AddTask(s.ctx, &game.AddTaskInput{Title: "Inbox zero"})
	s.Require().NoError(err)

	_, err = svc.CompleteTask(s.ctx, &game.CompleteTaskInput{TaskID: added.Task.ID})
	s.Require().NoError(err)

	_, err = svc.CompleteTask(s.ctx, &game.CompleteTaskInput{TaskID: added.Task.ID})
	s.True(errors.IsInvalidStateTransition(err))

	svc.Flush()
	stored, err := s.profiles.Get(s.ctx, profilerepo.GetInput{PlayerID: game.GuestPlayerID})
	s.Require().NoError(err)
	s.Equal(10, stored.Profile.XP, "second completion must grant nothing")
	s.Equal(5, stored.Profile.Coins)
}

func (s *OrchestratorTestSuite) TestCompleteTaskGrowsGarden() {
	// Ints: monster pick then seed-pool picks are unused here; Floats feed
	// the thirst rolls, kept high so growth is clean.
	svc := s.newService(&rng.Scripted{Ints: []int{0}, Floats: []float64{0.9}})
	s.startGuest(svc)

	s.seedInventory(entities.InventoryEntry{
		Name: "Trébol", Type: entities.ItemTypeSeed, Rarity: entities.RarityCommon, Quantity: 1,
	})
	s.restart(svc)

	_, err := svc.PlantSeed(s.ctx, &game.PlantSeedInput{SlotIndex: 3, SeedName: "Trébol"})
	s.Require().NoError(err)

	added, err := svc.AddTask(s.ctx, &game.AddTaskInput{Title: "Inbox zero"})
	s.Require().NoError(err)

	out, err := svc.CompleteTask(s.ctx, &game.CompleteTaskInput{TaskID: added.Task.ID})
	s.Require().NoError(err)

	s.Require().Len(out.ChangedSlots, 1)
	s.Equal(3, out.ChangedSlots[0].Index)
	s.Equal(1, out.ChangedSlots[0].Progress)
	s.Equal(entities.StageSeed, out.ChangedSlots[0].Stage)
}

func (s *OrchestratorTestSuite) TestCompleteTaskHyperGrowthDoublesPulse() {
	svc := s.newService(&rng.Scripted{Ints: []int{0}, Floats: []float64{0.9}})
	s.startGuest(svc)

	s.seedInventory(entities.InventoryEntry{
		Name: "Trébol", Type: entities.ItemTypeSeed, Rarity: entities.RarityCommon, Quantity: 1,
	})
	s.restart(svc)

	_, err := svc.PlantSeed(s.ctx, &game.PlantSeedInput{SlotIndex: 0, SeedName: "Trébol"})
	s.Require().NoError(err)

	added, err := svc.AddTask(s.ctx, &game.AddTaskInput{Title: "Deep work"})
	s.Require().NoError(err)

	out, err := svc.CompleteTask(s.ctx, &game.CompleteTaskInput{TaskID: added.Task.ID, HyperGrowthActive: true})
	s.Require().NoError(err)

	s.Require().Len(out.ChangedSlots, 1)
	s.Equal(2, out.ChangedSlots[0].Progress)
}

func (s *OrchestratorTestSuite) TestDeleteTask() {
	svc := s.newService(&rng.Scripted{Ints: []int{0}})
	s.startGuest(svc)

	added, err := svc.AddTask(s.ctx, &game.AddTaskInput{Title: "Inbox zero"})
	s.Require().NoError(err)

	_, err = svc.DeleteTask(s.ctx, &game.DeleteTaskInput{TaskID: added.Task.ID})
	s.Require().NoError(err)

	tasks, err := svc.ListTasks(s.ctx, &game.ListTasksInput{})
	s.Require().NoError(err)
	s.Empty(tasks.Tasks)

	_, err = svc.DeleteTask(s.ctx, &game.DeleteTaskInput{TaskID: added.Task.ID})
	s.True(errors.IsNotFound(err))
}

// seedInventory writes entries straight to the repository, bypassing the
// session snapshot.
func (s *OrchestratorTestSuite) seedInventory(entries ...entities.InventoryEntry) {
	for _, e := range entries {
		s.Require().NoError(s.inventory.Save(s.ctx, inventoryrepo.SaveInput{
			PlayerID: game.GuestPlayerID,
			Entry:    e,
		}))
	}
}

func (s *OrchestratorTestSuite) seedProfile(coins, xp int) {
	s.Require().NoError(s.profiles.Save(s.ctx, profilerepo.SaveInput{
		PlayerID: game.GuestPlayerID,
		Profile:  &entities.Profile{ID: game.GuestPlayerID, Coins: coins, XP: xp, Level: entities.LevelForXP(xp)},
	}))
}

// restart re-runs StartSession so repository seeds land in the snapshot.
func (s *OrchestratorTestSuite) restart(svc game.Service) {
	svc.Flush()
	s.startGuest(svc)
}

func (s *OrchestratorTestSuite) TestPlantSeedConsumesInventory() {
	svc := s.newService(&rng.Scripted{})
	s.startGuest(svc)

	s.seedInventory(entities.InventoryEntry{
		Name: "Trébol", Type: entities.ItemTypeSeed, Rarity: entities.RarityCommon, Quantity: 1,
	})
	s.restart(svc)

	out, err := svc.PlantSeed(s.ctx, &game.PlantSeedInput{SlotIndex: 5, SeedName: "Trébol"})
	s.Require().NoError(err)
	s.Equal("Trébol", out.Slot.SeedName)
	s.Equal(entities.StageSeed, out.Slot.Stage)

	inv, err := svc.Inventory(s.ctx, &game.InventoryInput{})
	s.Require().NoError(err)
	s.Empty(inv.Entries, "the planted seed left the inventory")
}

func (s *OrchestratorTestSuite) TestPlantSeedWithoutHolding() {
	svc := s.newService(&rng.Scripted{})
	s.startGuest(svc)

	_, err := svc.PlantSeed(s.ctx, &game.PlantSeedInput{SlotIndex: 5, SeedName: "Trébol"})
	s.True(errors.IsInsufficientQuantity(err))
}

func (s *OrchestratorTestSuite) TestPlantSeedUnknownName() {
	svc := s.newService(&rng.Scripted{})
	s.startGuest(svc)

	_, err := svc.PlantSeed(s.ctx, &game.PlantSeedInput{SlotIndex: 5, SeedName: "Planta Falsa"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestWaterSlotConsumesWater() {
	// Thirst roll of 0.1 makes the plant thirsty on the growth pulse.
	svc := s.newService(&rng.Scripted{Ints: []int{0}, Floats: []float64{0.1}})
	s.startGuest(svc)

	s.seedInventory(
		entities.InventoryEntry{Name: "Trébol", Type: entities.ItemTypeSeed, Rarity: entities.RarityCommon, Quantity: 1},
		entities.InventoryEntry{Name: "Agua Destilada", Type: entities.ItemTypeConsumable, Quantity: 1},
	)
	s.restart(svc)

	_, err := svc.PlantSeed(s.ctx, &game.PlantSeedInput{SlotIndex: 0, SeedName: "Trébol"})
	s.Require().NoError(err)

	added, err := svc.AddTask(s.ctx, &game.AddTaskInput{Title: "Inbox zero"})
	s.Require().NoError(err)
	completed, err := svc.CompleteTask(s.ctx, &game.CompleteTaskInput{TaskID: added.Task.ID})
	s.Require().NoError(err)
	s.Require().Len(completed.ChangedSlots, 1)
	s.Require().True(completed.ChangedSlots[0].NeedsWater)

	out, err := svc.WaterSlot(s.ctx, &game.WaterSlotInput{SlotIndex: 0})
	s.Require().NoError(err)
	s.False(out.Slot.NeedsWater)

	inv, err := svc.Inventory(s.ctx, &game.InventoryInput{})
	s.Require().NoError(err)
	for _, e := range inv.Entries {
		s.NotEqual("Agua Destilada", e.Name, "the water was consumed")
	}
}

func (s *OrchestratorTestSuite) TestWaterSlotWithoutWater() {
	svc := s.newService(&rng.Scripted{Ints: []int{0}, Floats: []float64{0.1}})
	s.startGuest(svc)

	_, err := svc.WaterSlot(s.ctx, &game.WaterSlotInput{SlotIndex: 0})
	s.True(errors.IsInsufficientQuantity(err))
}

func (s *OrchestratorTestSuite) TestRemoveSlotDiscardsPlant() {
	svc := s.newService(&rng.Scripted{})
	s.startGuest(svc)

	s.seedInventory(entities.InventoryEntry{
		Name: "Trébol", Type: entities.ItemTypeSeed, Rarity: entities.RarityCommon, Quantity: 1,
	})
	s.restart(svc)

	_, err := svc.PlantSeed(s.ctx, &game.PlantSeedInput{SlotIndex: 5, SeedName: "Trébol"})
	s.Require().NoError(err)

	_, err = svc.RemoveSlot(s.ctx, &game.RemoveSlotInput{SlotIndex: 5})
	s.Require().NoError(err)

	garden, err := svc.Garden(s.ctx, &game.GardenInput{})
	s.Require().NoError(err)
	s.True(garden.Slots[5].IsEmpty())

	inv, err := svc.Inventory(s.ctx, &game.InventoryInput{})
	s.Require().NoError(err)
	s.Empty(inv.Entries, "a removed plant does not return to the inventory")
}

func (s *OrchestratorTestSuite) TestOpenGachaBox() {
	// Rarity roll 0.3 lands in rare; pool pick 1.
	svc := s.newService(&rng.Scripted{Floats: []float64{0.3}, Ints: []int{1}})

	s.seedProfile(150, 0)
	s.startGuest(svc)

	out, err := svc.OpenGachaBox(s.ctx, &game.OpenGachaBoxInput{})
	s.Require().NoError(err)

	s.Equal(entities.RarityRare, out.Rarity)
	s.Equal(s.cat.SeedsByRarity(entities.RarityRare)[1].Name, out.SeedName)
	s.Equal(100, out.Cost)
	s.Equal(50, out.Profile.Coins)

	inv, err := svc.Inventory(s.ctx, &game.InventoryInput{})
	s.Require().NoError(err)
	s.Require().Len(inv.Entries, 1)
	s.Equal(out.SeedName, inv.Entries[0].Name)
	s.Equal(1, inv.Entries[0].Quantity)
}

func (s *OrchestratorTestSuite) TestOpenGachaBoxInsufficientFunds() {
	svc := s.newService(&rng.Scripted{Floats: []float64{0.3}, Ints: []int{0}})

	s.seedProfile(99, 0)
	s.startGuest(svc)

	_, err := svc.OpenGachaBox(s.ctx, &game.OpenGachaBoxInput{})
	s.True(errors.IsInsufficientFunds(err))

	inv, err := svc.Inventory(s.ctx, &game.InventoryInput{})
	s.Require().NoError(err)
	s.Empty(inv.Entries)
}

func (s *OrchestratorTestSuite) TestBuyConsumable() {
	svc := s.newService(&rng.Scripted{})

	s.seedProfile(60, 0)
	s.startGuest(svc)

	out, err := svc.BuyConsumable(s.ctx, &game.BuyConsumableInput{ItemName: "Fertilizante Premium"})
	s.Require().NoError(err)
	s.Equal(50, out.Cost)
	s.Equal(10, out.Profile.Coins)

	inv, err := svc.Inventory(s.ctx, &game.InventoryInput{})
	s.Require().NoError(err)
	s.Require().Len(inv.Entries, 1)
	s.Equal(entities.ItemTypeConsumable, inv.Entries[0].Type)
}

func (s *OrchestratorTestSuite) TestBuyConsumableUnknownItem() {
	svc := s.newService(&rng.Scripted{})
	s.startGuest(svc)

	_, err := svc.BuyConsumable(s.ctx, &game.BuyConsumableInput{ItemName: "Poción"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestFuseSeeds() {
	svc := s.newService(&rng.Scripted{Ints: []int{0}})

	s.seedInventory(entities.InventoryEntry{
		Name: "Trébol", Type: entities.ItemTypeSeed, Rarity: entities.RarityCommon, Quantity: 2,
	})
	s.startGuest(svc)

	out, err := svc.FuseSeeds(s.ctx, &game.FuseSeedsInput{SourceRarity: entities.RarityCommon})
	s.Require().NoError(err)
	s.Equal(entities.RarityRare, out.Result.Rarity)

	inv, err := svc.Inventory(s.ctx, &game.InventoryInput{})
	s.Require().NoError(err)
	s.Require().Len(inv.Entries, 1)
	s.Equal(out.Result.Name, inv.Entries[0].Name)
}

func (s *OrchestratorTestSuite) TestFuseSeedsShortMaterials() {
	svc := s.newService(&rng.Scripted{Ints: []int{0}})

	s.seedInventory(entities.InventoryEntry{
		Name: "Trébol", Type: entities.ItemTypeSeed, Rarity: entities.RarityCommon, Quantity: 1,
	})
	s.startGuest(svc)

	_, err := svc.FuseSeeds(s.ctx, &game.FuseSeedsInput{SourceRarity: entities.RarityCommon})
	s.True(errors.IsInsufficientMaterials(err))
}

func (s *OrchestratorTestSuite) TestFuseSeedsNoRecipe() {
	svc := s.newService(&rng.Scripted{Ints: []int{0}})
	s.startGuest(svc)

	_, err := svc.FuseSeeds(s.ctx, &game.FuseSeedsInput{SourceRarity: entities.RarityBlackMarket})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestApplyFocusPenalty() {
	svc := s.newService(&rng.Scripted{})

	s.seedProfile(5, 0)
	s.startGuest(svc)

	out, err := svc.ApplyFocusPenalty(s.ctx, &game.ApplyFocusPenaltyInput{})
	s.Require().NoError(err)
	s.True(out.Penalized)
	s.Equal(3, out.Profile.Coins)
}

func (s *OrchestratorTestSuite) TestApplyFocusPenaltySkippedWhenBroke() {
	svc := s.newService(&rng.Scripted{})

	s.seedProfile(1, 0)
	s.startGuest(svc)

	out, err := svc.ApplyFocusPenalty(s.ctx, &game.ApplyFocusPenaltyInput{})
	s.Require().NoError(err)
	s.False(out.Penalized)
	s.Equal(1, out.Profile.Coins, "an unaffordable penalty deducts nothing")
}

func (s *OrchestratorTestSuite) TestStatePersistsAcrossSessions() {
	svc := s.newService(&rng.Scripted{Ints: []int{0}, Floats: []float64{0.9}})
	s.startGuest(svc)

	added, err := svc.AddTask(s.ctx, &game.AddTaskInput{Title: "Inbox zero"})
	s.Require().NoError(err)
	_, err = svc.CompleteTask(s.ctx, &game.CompleteTaskInput{TaskID: added.Task.ID})
	s.Require().NoError(err)
	svc.Flush()

	// A second coordinator over the same repositories sees the settled
	// writes.
	svc2 := s.newService(rng.NewSeeded(7))
	out := s.startGuest(svc2)

	s.Equal(10, out.Profile.XP)
	s.Equal(5, out.Profile.Coins)

	tasks, err := svc2.ListTasks(s.ctx, &game.ListTasksInput{})
	s.Require().NoError(err)
	s.Require().Len(tasks.Tasks, 1)
	s.Equal(entities.TaskStatusCompleted, tasks.Tasks[0].Status)
}

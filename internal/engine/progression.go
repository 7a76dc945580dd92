package engine

import (
	"github.com/questbloom/questbloom-api/internal/entities"
	"github.com/questbloom/questbloom-api/internal/errors"
)

// Reward constants. The boss/daily split is the only input, not hit points
// or subtask count.
const (
	DailyTaskXP      = 10
	DailyTaskCoins   = 5
	ProjectTaskXP    = 50
	ProjectTaskCoins = 20

	// FocusPenaltyCoins is deducted when the player breaks an active focus
	// session (the monster counter-attacks).
	FocusPenaltyCoins = 2
)

// CompletionReward describes the profile mutation produced by completing a
// task.
type CompletionReward struct {
	XPDelta   int
	CoinDelta int
	NewLevel  int
	LevelUp   bool
}

// RewardForTask returns the fixed reward for a task by its project split.
func RewardForTask(task *entities.Task) (xpDelta, coinDelta int) {
	if task.IsProject {
		return ProjectTaskXP, ProjectTaskCoins
	}
	return DailyTaskXP, DailyTaskCoins
}

// CompleteTask marks the task completed and grants its reward to the
// profile. Completing an already-completed task fails with an invalid state
// transition and grants nothing.
func CompleteTask(profile *entities.Profile, task *entities.Task, completedAt int64) (*CompletionReward, error) {
	if task.Status == entities.TaskStatusCompleted {
		return nil, errors.InvalidStateTransitionf("task %q is already completed", task.ID)
	}

	xpDelta, coinDelta := RewardForTask(task)

	levelBefore := profile.Level
	if err := ApplyCurrencyDelta(profile, coinDelta, xpDelta); err != nil {
		return nil, err
	}

	task.Status = entities.TaskStatusCompleted
	task.CompletedAt = completedAt

	return &CompletionReward{
		XPDelta:   xpDelta,
		CoinDelta: coinDelta,
		NewLevel:  profile.Level,
		LevelUp:   profile.Level > levelBefore,
	}, nil
}

// ApplyCurrencyDelta is the single point through which coins and XP are ever
// mutated. A deduction that would take coins negative is rejected with
// InsufficientFunds and produces no mutation; XP never decreases. Level is
// recomputed from XP on every call.
func ApplyCurrencyDelta(profile *entities.Profile, coinDelta, xpDelta int) error {
	if profile == nil {
		return errors.InvalidArgument("profile is required")
	}
	if xpDelta < 0 {
		return errors.InvalidArgument("xp delta cannot be negative")
	}
	if profile.Coins+coinDelta < 0 {
		return errors.InsufficientFundsf("need %d coins, have %d", -coinDelta, profile.Coins)
	}

	profile.Coins += coinDelta
	profile.XP += xpDelta
	profile.Level = entities.LevelForXP(profile.XP)
	return nil
}

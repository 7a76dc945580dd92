package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/questbloom/questbloom-api/internal/orchestrators/game"
)

var completeHyperGrowth bool

var completeTaskCmd = &cobra.Command{
	Use:   "complete-task [task-id]",
	Short: "Complete a task, defeat its monster, and collect the reward",
	Args:  cobra.ExactArgs(1),
	RunE:  completeTask,
}

func init() {
	completeTaskCmd.Flags().BoolVar(&completeHyperGrowth, "hyper-growth", false, "Double the garden growth pulse (active focus session)")
}

func completeTask(cmd *cobra.Command, args []string) error {
	return withSession(func(ctx context.Context, svc game.Service, _ *game.StartSessionOutput) error {
		out, err := svc.CompleteTask(ctx, &game.CompleteTaskInput{
			TaskID:            args[0],
			HyperGrowthActive: completeHyperGrowth,
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s defeated!\n", out.Task.Monster.Name)
		fmt.Printf("  +%d XP, +%d coins\n", out.Reward.XPDelta, out.Reward.CoinDelta)
		if out.Reward.LevelUp {
			fmt.Printf("  Level up! You are now level %d\n", out.Reward.NewLevel)
		}
		for _, slot := range out.ChangedSlots {
			fmt.Printf("  Garden slot %d: %s is now %s", slot.Index, slot.SeedName, slot.Stage)
			if slot.NeedsWater {
				fmt.Print(" (thirsty!)")
			}
			fmt.Println()
		}
		fmt.Printf("Balance: %d coins, %d XP (level %d)\n", out.Profile.Coins, out.Profile.XP, out.Profile.Level)
		return nil
	})
}

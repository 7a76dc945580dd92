package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/questbloom/questbloom-api/internal/orchestrators/game"
)

var plantCmd = &cobra.Command{
	Use:   "plant [slot-index] [seed-name]",
	Short: "Plant a held seed into an empty garden slot",
	Args:  cobra.ExactArgs(2),
	RunE:  plantSeed,
}

func plantSeed(cmd *cobra.Command, args []string) error {
	slotIndex, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid slot index %q: %w", args[0], err)
	}

	return withSession(func(ctx context.Context, svc game.Service, _ *game.StartSessionOutput) error {
		out, err := svc.PlantSeed(ctx, &game.PlantSeedInput{
			SlotIndex: slotIndex,
			SeedName:  args[1],
		})
		if err != nil {
			return err
		}
		fmt.Printf("Planted %s [%s] in slot %d\n", out.Slot.SeedName, out.Slot.SeedRarity, out.Slot.Index)
		return nil
	})
}

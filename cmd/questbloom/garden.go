package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/questbloom/questbloom-api/internal/orchestrators/game"
)

var gardenCmd = &cobra.Command{
	Use:   "garden",
	Short: "Show the ten garden slots",
	RunE:  showGarden,
}

func showGarden(cmd *cobra.Command, args []string) error {
	return withSession(func(ctx context.Context, svc game.Service, _ *game.StartSessionOutput) error {
		out, err := svc.Garden(ctx, &game.GardenInput{})
		if err != nil {
			return err
		}

		for _, slot := range out.Slots {
			if slot.IsEmpty() {
				fmt.Printf("%2d: (empty)\n", slot.Index)
				continue
			}

			fmt.Printf("%2d: %s [%s] %s, progress %d", slot.Index, slot.SeedName, slot.SeedRarity, slot.Stage, slot.Progress)
			if slot.Wilted {
				fmt.Print("  WILTED")
			}
			if slot.NeedsWater {
				fmt.Print("  needs water")
			}
			if slot.NeedsFertilizer {
				fmt.Print("  needs fertilizer")
			}
			fmt.Println()
		}
		return nil
	})
}

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/questbloom/questbloom-api/internal/orchestrators/game"
)

var waterCmd = &cobra.Command{
	Use:   "water [slot-index]",
	Short: "Water a thirsty plant, consuming one water item",
	Args:  cobra.ExactArgs(1),
	RunE:  waterSlot,
}

func waterSlot(cmd *cobra.Command, args []string) error {
	slotIndex, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid slot index %q: %w", args[0], err)
	}

	return withSession(func(ctx context.Context, svc game.Service, _ *game.StartSessionOutput) error {
		out, err := svc.WaterSlot(ctx, &game.WaterSlotInput{SlotIndex: slotIndex})
		if err != nil {
			return err
		}
		fmt.Printf("Watered %s in slot %d\n", out.Slot.SeedName, out.Slot.Index)
		return nil
	})
}

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/questbloom/questbloom-api/internal/orchestrators/game"
)

var fertilizeCmd = &cobra.Command{
	Use:   "fertilize [slot-index]",
	Short: "Fertilize a plant that demands it, consuming one fertilizer",
	Args:  cobra.ExactArgs(1),
	RunE:  fertilizeSlot,
}

func fertilizeSlot(cmd *cobra.Command, args []string) error {
	slotIndex, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid slot index %q: %w", args[0], err)
	}

	return withSession(func(ctx context.Context, svc game.Service, _ *game.StartSessionOutput) error {
		out, err := svc.FertilizeSlot(ctx, &game.FertilizeSlotInput{SlotIndex: slotIndex})
		if err != nil {
			return err
		}
		fmt.Printf("Fertilized %s in slot %d\n", out.Slot.SeedName, out.Slot.Index)
		return nil
	})
}

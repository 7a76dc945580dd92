package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/questbloom/questbloom-api/internal/orchestrators/game"
)

var removePlantCmd = &cobra.Command{
	Use:   "remove-plant [slot-index]",
	Short: "Clear a garden slot, discarding the plant",
	Args:  cobra.ExactArgs(1),
	RunE:  removePlant,
}

func removePlant(cmd *cobra.Command, args []string) error {
	slotIndex, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid slot index %q: %w", args[0], err)
	}

	return withSession(func(ctx context.Context, svc game.Service, _ *game.StartSessionOutput) error {
		if _, err := svc.RemoveSlot(ctx, &game.RemoveSlotInput{SlotIndex: slotIndex}); err != nil {
			return err
		}
		fmt.Printf("Cleared slot %d\n", slotIndex)
		return nil
	})
}

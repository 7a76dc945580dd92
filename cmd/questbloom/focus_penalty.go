package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/questbloom/questbloom-api/internal/orchestrators/game"
)

var focusPenaltyCmd = &cobra.Command{
	Use:   "focus-penalty",
	Short: "Record a broken focus session (the monster counter-attacks)",
	RunE:  focusPenalty,
}

func focusPenalty(cmd *cobra.Command, args []string) error {
	return withSession(func(ctx context.Context, svc game.Service, _ *game.StartSessionOutput) error {
		out, err := svc.ApplyFocusPenalty(ctx, &game.ApplyFocusPenaltyInput{})
		if err != nil {
			return err
		}

		if out.Penalized {
			fmt.Printf("The monster counter-attacked! %d coins remaining\n", out.Profile.Coins)
		} else {
			fmt.Println("The monster counter-attacked, but you had nothing to lose")
		}
		return nil
	})
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/questbloom/questbloom-api/internal/orchestrators/game"
)

var openBoxCmd = &cobra.Command{
	Use:   "open-box",
	Short: "Spend coins on a gacha box and draw a random seed",
	RunE:  openBox,
}

func openBox(cmd *cobra.Command, args []string) error {
	return withSession(func(ctx context.Context, svc game.Service, _ *game.StartSessionOutput) error {
		out, err := svc.OpenGachaBox(ctx, &game.OpenGachaBoxInput{})
		if err != nil {
			return err
		}

		fmt.Printf("You drew: %s [%s]\n", out.SeedName, out.Rarity)
		fmt.Printf("Spent %d coins, %d remaining\n", out.Cost, out.Profile.Coins)
		return nil
	})
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/questbloom/questbloom-api/internal/orchestrators/game"
)

var buyCmd = &cobra.Command{
	Use:   "buy [item-name]",
	Short: "Buy a store consumable",
	Long: `Buy one unit of a store consumable, for example:

  questbloom buy "Agua Destilada"
  questbloom buy "Fertilizante Premium"`,
	Args: cobra.ExactArgs(1),
	RunE: buyConsumable,
}

func buyConsumable(cmd *cobra.Command, args []string) error {
	return withSession(func(ctx context.Context, svc game.Service, _ *game.StartSessionOutput) error {
		out, err := svc.BuyConsumable(ctx, &game.BuyConsumableInput{ItemName: args[0]})
		if err != nil {
			return err
		}

		fmt.Printf("Bought 1x %s for %d coins, %d remaining\n", out.ItemName, out.Cost, out.Profile.Coins)
		return nil
	})
}

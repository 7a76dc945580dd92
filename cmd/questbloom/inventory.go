package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/questbloom/questbloom-api/internal/entities"
	"github.com/questbloom/questbloom-api/internal/orchestrators/game"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Show held seeds and consumables",
	RunE:  showInventory,
}

func showInventory(cmd *cobra.Command, args []string) error {
	return withSession(func(ctx context.Context, svc game.Service, _ *game.StartSessionOutput) error {
		out, err := svc.Inventory(ctx, &game.InventoryInput{})
		if err != nil {
			return err
		}

		if len(out.Entries) == 0 {
			fmt.Println("Inventory is empty. Open a gacha box with: questbloom open-box")
			return nil
		}

		for _, e := range out.Entries {
			if e.Type == entities.ItemTypeSeed {
				fmt.Printf("%3dx %s [%s]\n", e.Quantity, e.Name, e.Rarity)
			} else {
				fmt.Printf("%3dx %s\n", e.Quantity, e.Name)
			}
		}
		return nil
	})
}

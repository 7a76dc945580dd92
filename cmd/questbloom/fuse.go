package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/questbloom/questbloom-api/internal/entities"
	"github.com/questbloom/questbloom-api/internal/orchestrators/game"
)

var fuseCmd = &cobra.Command{
	Use:   "fuse [rarity]",
	Short: "Fuse seeds of one tier into a random seed of the next",
	Long: `Fuse seeds of the named tier into one random seed of the tier above.
Tiers: common, rare, epic, exotic.`,
	Args: cobra.ExactArgs(1),
	RunE: fuseSeeds,
}

func fuseSeeds(cmd *cobra.Command, args []string) error {
	rarity := entities.Rarity(args[0])
	if !rarity.IsValid() {
		return fmt.Errorf("unknown rarity %q", args[0])
	}

	return withSession(func(ctx context.Context, svc game.Service, _ *game.StartSessionOutput) error {
		out, err := svc.FuseSeeds(ctx, &game.FuseSeedsInput{SourceRarity: rarity})
		if err != nil {
			return err
		}

		fmt.Printf("Fusion produced: %s [%s]\n", out.Result.Name, out.Result.Rarity)
		return nil
	})
}

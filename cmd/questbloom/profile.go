package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/questbloom/questbloom-api/internal/entities"
	"github.com/questbloom/questbloom-api/internal/orchestrators/game"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your level, XP, and coin balance",
	RunE:  showProfile,
}

func showProfile(cmd *cobra.Command, args []string) error {
	return withSession(func(ctx context.Context, svc game.Service, session *game.StartSessionOutput) error {
		p := session.Profile

		mode := "remote"
		if session.Guest {
			mode = "guest (local)"
		}

		fmt.Printf("Player:  %s (%s)\n", p.ID, mode)
		fmt.Printf("Level:   %d\n", p.Level)
		fmt.Printf("XP:      %d (%d to next level)\n", p.XP, entities.XPPerLevel-p.XP%entities.XPPerLevel)
		fmt.Printf("Coins:   %d\n", p.Coins)
		return nil
	})
}

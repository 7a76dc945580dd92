// Package main is the entry point for the questbloom CLI
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/questbloom/questbloom-api/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "questbloom",
	Short: "QuestBloom progression CLI",
	Long: `QuestBloom turns tasks into monsters: completing them grants XP and
coins, grows your seed garden, and funds the gacha store.

Set QUESTBLOOM_PLAYER_ID to use a remote Redis-backed session; leave it
unset to play as a local guest.`,
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints a failed command's error. Rule preconditions (not
// enough coins, slot already planted) are shown as plain player-facing
// messages; infrastructure faults keep the full error chain, with a hint
// when the store itself failed.
func reportError(w io.Writer, err error) {
	if errors.IsPersistenceFailure(err) {
		fmt.Fprintf(w, "Error: %v\n", err)
		fmt.Fprintln(w, "Your progress may not have been saved. Check QUESTBLOOM_REDIS_ADDR and retry.")
		return
	}
	if errors.GetCode(err).Recoverable() {
		fmt.Fprintf(w, "%v\n", err)
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func init() {
	rootCmd.AddCommand(addTaskCmd)
	rootCmd.AddCommand(listTasksCmd)
	rootCmd.AddCommand(completeTaskCmd)
	rootCmd.AddCommand(deleteTaskCmd)

	rootCmd.AddCommand(gardenCmd)
	rootCmd.AddCommand(plantCmd)
	rootCmd.AddCommand(waterCmd)
	rootCmd.AddCommand(fertilizeCmd)
	rootCmd.AddCommand(removePlantCmd)

	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(openBoxCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(fuseCmd)

	rootCmd.AddCommand(focusPenaltyCmd)
	rootCmd.AddCommand(profileCmd)
}

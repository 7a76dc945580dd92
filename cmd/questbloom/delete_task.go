package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/questbloom/questbloom-api/internal/orchestrators/game"
)

var deleteTaskCmd = &cobra.Command{
	Use:   "delete-task [task-id]",
	Short: "Delete a task without any reward",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteTask,
}

func deleteTask(cmd *cobra.Command, args []string) error {
	return withSession(func(ctx context.Context, svc game.Service, _ *game.StartSessionOutput) error {
		if _, err := svc.DeleteTask(ctx, &game.DeleteTaskInput{TaskID: args[0]}); err != nil {
			return err
		}
		fmt.Printf("Deleted task %s\n", args[0])
		return nil
	})
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/questbloom/questbloom-api/internal/entities"
	"github.com/questbloom/questbloom-api/internal/orchestrators/game"
)

var listTasksCmd = &cobra.Command{
	Use:   "list-tasks",
	Short: "List your tasks, newest first",
	RunE:  listTasks,
}

func listTasks(cmd *cobra.Command, args []string) error {
	return withSession(func(ctx context.Context, svc game.Service, _ *game.StartSessionOutput) error {
		out, err := svc.ListTasks(ctx, &game.ListTasksInput{})
		if err != nil {
			return err
		}

		if len(out.Tasks) == 0 {
			fmt.Println("No tasks. Add one with: questbloom add-task")
			return nil
		}

		for _, t := range out.Tasks {
			status := " "
			if t.Status == entities.TaskStatusCompleted {
				status = "x"
			}
			fmt.Printf("[%s] %s  %s\n", status, t.ID, t.Title)
			fmt.Printf("      %s (%d HP)\n", t.Monster.Name, t.HP)
		}
		return nil
	})
}

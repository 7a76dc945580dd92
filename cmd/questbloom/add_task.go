package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/questbloom/questbloom-api/internal/orchestrators/game"
)

var (
	addTaskDescription  string
	addTaskSubtaskCount int
)

var addTaskCmd = &cobra.Command{
	Use:   "add-task [title]",
	Short: "Create a task and summon its monster",
	Long: `Create a task. Tasks with five or more subtasks become projects and
summon a boss instead of a daily monster.`,
	Args: cobra.ExactArgs(1),
	RunE: addTask,
}

func init() {
	addTaskCmd.Flags().StringVar(&addTaskDescription, "description", "", "Optional task description")
	addTaskCmd.Flags().IntVar(&addTaskSubtaskCount, "subtasks", 0, "Number of subtasks")
}

func addTask(cmd *cobra.Command, args []string) error {
	return withSession(func(ctx context.Context, svc game.Service, _ *game.StartSessionOutput) error {
		out, err := svc.AddTask(ctx, &game.AddTaskInput{
			Title:        args[0],
			Description:  addTaskDescription,
			SubtaskCount: addTaskSubtaskCount,
		})
		if err != nil {
			return err
		}

		kind := "daily monster"
		if out.Task.IsProject {
			kind = "boss"
		}
		fmt.Printf("Created task %s\n", out.Task.ID)
		fmt.Printf("  %s guards it (%s, %d HP)\n", out.Task.Monster.Name, kind, out.Task.HP)
		return nil
	})
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Work with planner tasks",
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks of a plan",
	RunE:  runTasksList,
}

var tasksPlan string

func init() {
	tasksListCmd.Flags().StringVar(&tasksPlan, "plan", "", "plan ID to list tasks of")
	tasksCmd.AddCommand(tasksListCmd)
	rootCmd.AddCommand(tasksCmd)
}

func runTasksList(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()
	provider, err := resolveProvider(ctx)
	if err != nil {
		return err
	}

	tasks, err := provider.ListTasks(ctx, tasksPlan)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(tasks) == 0 {
		cmd.Println("No tasks found.")
		return nil
	}

	for _, task := range tasks {
		cmd.Printf("  %s  [%s] %s", task.ID, task.Status, task.Title)
		if task.DueDate != "" {
			cmd.Printf(" (due %s)", task.DueDate)
		}
		cmd.Println()
	}
	return nil
}

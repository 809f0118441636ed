// Task commands: add, list, set-status.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/auralis-hq/auralis/internal/sqlite"
	"github.com/auralis-hq/auralis/pkg/types"
)

var (
	taskTitle      string
	taskArea       string
	taskProject    string
	taskListStatus string
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new task",
	Long: `Add creates a new task with status "todo" and priority "normal".
Without --area the task is filed under the default area.

Example:
  auralis task add --title "Renew passport"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := sqlite.NewTasks(store).Add(taskTitle, taskArea, taskProject)
		if err != nil {
			return err
		}
		return emit(map[string]string{"id": id}, "Created task: "+id)
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		var status types.TaskStatus
		if taskListStatus != "" {
			s, err := types.ParseTaskStatus(taskListStatus)
			if err != nil {
				return err
			}
			status = s
		}
		tasks, err := sqlite.NewTasks(store).List(status)
		if err != nil {
			return err
		}
		if flagJSON {
			return emit(tasks, "")
		}
		for _, t := range tasks {
			fmt.Printf("%s  %-9s %-7s %s\n", t.ID, t.Status, t.Priority, t.Title)
		}
		return nil
	},
}

var taskSetStatusCmd = &cobra.Command{
	Use:   "set-status <id> <todo|doing|done|deferred>",
	Short: "Change a task's status",
	Long: `Set-status moves a task to the given status. Marking a task done
records the completion time; any other status clears it.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := types.ParseTaskStatus(args[1])
		if err != nil {
			return err
		}
		if err := sqlite.NewTasks(store).SetStatus(args[0], status); err != nil {
			return err
		}
		return emit(map[string]string{"id": args[0], "status": string(status)},
			fmt.Sprintf("Task %s status=%s", args[0], status))
	},
}

func init() {
	taskAddCmd.Flags().StringVar(&taskTitle, "title", "", "title for the task (required)")
	taskAddCmd.Flags().StringVar(&taskArea, "area", "", "owning area id (default: fallback area)")
	taskAddCmd.Flags().StringVar(&taskProject, "project", "", "owning project id")
	_ = taskAddCmd.MarkFlagRequired("title")

	taskListCmd.Flags().StringVar(&taskListStatus, "status", "", "filter by status (todo|doing|done|deferred)")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskSetStatusCmd)
}

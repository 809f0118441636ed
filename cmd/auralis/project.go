// Project commands: add, list, set-status.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/auralis-hq/auralis/internal/sqlite"
	"github.com/auralis-hq/auralis/pkg/types"
)

var (
	projectName       string
	projectArea       string
	projectListStatus string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new project",
	Long: `Add creates a new project with status "paused". Without --area the
project is filed under the default area.

Example:
  auralis project add --name "Move apartment" --area area_admin_life`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := sqlite.NewProjects(store).Add(projectName, projectArea)
		if err != nil {
			return err
		}
		return emit(map[string]string{"id": id}, "Created project: "+id)
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		var status types.ProjectStatus
		if projectListStatus != "" {
			s, err := types.ParseProjectStatus(projectListStatus)
			if err != nil {
				return err
			}
			status = s
		}
		projects, err := sqlite.NewProjects(store).List(status)
		if err != nil {
			return err
		}
		if flagJSON {
			return emit(projects, "")
		}
		for _, p := range projects {
			fmt.Printf("%s  %-10s %s\n", p.ID, p.Status, p.Name)
		}
		return nil
	},
}

var projectSetStatusCmd = &cobra.Command{
	Use:   "set-status <id> <paused|active|completed>",
	Short: "Change a project's status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := types.ParseProjectStatus(args[1])
		if err != nil {
			return err
		}
		if err := sqlite.NewProjects(store).SetStatus(args[0], status); err != nil {
			return err
		}
		return emit(map[string]string{"id": args[0], "status": string(status)},
			fmt.Sprintf("Project %s status=%s", args[0], status))
	},
}

func init() {
	projectAddCmd.Flags().StringVar(&projectName, "name", "", "name for the project (required)")
	projectAddCmd.Flags().StringVar(&projectArea, "area", "", "owning area id (default: fallback area)")
	_ = projectAddCmd.MarkFlagRequired("name")

	projectListCmd.Flags().StringVar(&projectListStatus, "status", "", "filter by status (paused|active|completed)")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectSetStatusCmd)
}

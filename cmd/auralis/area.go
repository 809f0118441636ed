// Area commands: add, list, set-active.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/auralis-hq/auralis/internal/sqlite"
)

var (
	areaName       string
	areaActiveOnly bool
	areaActive     bool
)

var areaCmd = &cobra.Command{
	Use:   "area",
	Short: "Manage areas of responsibility",
}

var areaAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new area",
	Long: `Add creates a new area with the given name. New areas start active.

Example:
  auralis area add --name "Health"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := sqlite.NewAreas(store).Add(areaName)
		if err != nil {
			return err
		}
		return emit(map[string]string{"id": id}, "Created area: "+id)
	},
}

var areaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List areas, ordered by name",
	RunE: func(cmd *cobra.Command, args []string) error {
		areas, err := sqlite.NewAreas(store).List(areaActiveOnly)
		if err != nil {
			return err
		}
		if flagJSON {
			return emit(areas, "")
		}
		for _, a := range areas {
			state := "inactive"
			if a.Active {
				state = "active"
			}
			fmt.Printf("%s  %-10s %s\n", a.ID, state, a.Name)
		}
		return nil
	},
}

var areaSetActiveCmd = &cobra.Command{
	Use:   "set-active <id>",
	Short: "Activate or deactivate an area",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sqlite.NewAreas(store).SetActive(args[0], areaActive); err != nil {
			return err
		}
		return emit(map[string]any{"id": args[0], "active": areaActive},
			fmt.Sprintf("Area %s active=%t", args[0], areaActive))
	},
}

func init() {
	areaAddCmd.Flags().StringVar(&areaName, "name", "", "name for the area (required)")
	_ = areaAddCmd.MarkFlagRequired("name")

	areaListCmd.Flags().BoolVar(&areaActiveOnly, "active", false, "only list active areas")

	areaSetActiveCmd.Flags().BoolVar(&areaActive, "active", true, "target active flag")

	areaCmd.AddCommand(areaAddCmd)
	areaCmd.AddCommand(areaListCmd)
	areaCmd.AddCommand(areaSetActiveCmd)
}

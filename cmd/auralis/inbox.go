// Inbox commands: add, list, set-state, convert.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/auralis-hq/auralis/internal/sqlite"
	"github.com/auralis-hq/auralis/pkg/types"
)

var (
	inboxContent   string
	inboxSource    string
	inboxListState string
)

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Capture and triage inbox items",
}

var inboxAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Capture a new inbox item",
	Long: `Add captures a raw thought into the inbox with state "unprocessed".

Example:
  auralis inbox add --content "Buy milk" --source text`,
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := types.ParseInboxSource(inboxSource)
		if err != nil {
			return err
		}
		id, err := sqlite.NewInbox(store).Add(inboxContent, source)
		if err != nil {
			return err
		}
		return emit(map[string]string{"id": id}, "Captured inbox item: "+id)
	},
}

var inboxListCmd = &cobra.Command{
	Use:   "list",
	Short: "List inbox items, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		var state types.InboxState
		if inboxListState != "" {
			s, err := types.ParseInboxState(inboxListState)
			if err != nil {
				return err
			}
			state = s
		}
		items, err := sqlite.NewInbox(store).List(state)
		if err != nil {
			return err
		}
		if flagJSON {
			return emit(items, "")
		}
		for _, it := range items {
			fmt.Printf("%s  %-11s %s\n", it.ID, it.State, it.Content)
		}
		return nil
	},
}

var inboxSetStateCmd = &cobra.Command{
	Use:   "set-state <id> <unprocessed|processed|archived>",
	Short: "Change an inbox item's state",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := types.ParseInboxState(args[1])
		if err != nil {
			return err
		}
		if err := sqlite.NewInbox(store).SetState(args[0], state); err != nil {
			return err
		}
		return emit(map[string]string{"id": args[0], "state": string(state)},
			fmt.Sprintf("Inbox item %s state=%s", args[0], state))
	},
}

var inboxConvertCmd = &cobra.Command{
	Use:   "convert <id>",
	Short: "Convert an unprocessed inbox item into a task",
	Long: `Convert creates a task from the item's first non-empty content line
and marks the item processed, atomically. An item converts at most once.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := sqlite.NewInbox(store).ConvertToTask(args[0])
		if err != nil {
			return err
		}
		return emit(map[string]string{"task_id": taskID}, "Created task: "+taskID)
	},
}

func init() {
	inboxAddCmd.Flags().StringVar(&inboxContent, "content", "", "captured content (required)")
	inboxAddCmd.Flags().StringVar(&inboxSource, "source", "text", "capture source (text|voice)")
	_ = inboxAddCmd.MarkFlagRequired("content")

	inboxListCmd.Flags().StringVar(&inboxListState, "state", "", "filter by state (unprocessed|processed|archived)")

	inboxCmd.AddCommand(inboxAddCmd)
	inboxCmd.AddCommand(inboxListCmd)
	inboxCmd.AddCommand(inboxSetStateCmd)
	inboxCmd.AddCommand(inboxConvertCmd)
}

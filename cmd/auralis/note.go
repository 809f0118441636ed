// Note commands: add, list, get, update, delete, summarise.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/auralis-hq/auralis/internal/ai"
	"github.com/auralis-hq/auralis/internal/sqlite"
)

var (
	noteTitle   string
	noteContent string
	noteArea    string
	noteProject string
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new note",
	Long: `Add creates a note. Title and content are required; --area and
--project optionally attach it to an area and/or a project.

Example:
  auralis note add --title "Weekly review" --content "..."`,
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := sqlite.NewNotes(store).Add(noteTitle, noteContent, noteArea, noteProject)
		if err != nil {
			return err
		}
		return emit(map[string]string{"id": id}, "Created note: "+id)
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, most recently updated first",
	Long: `List returns all notes, or filters by --project or --area. When both
are given the project filter wins.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := sqlite.NewNotes(store).List(noteArea, noteProject)
		if err != nil {
			return err
		}
		if flagJSON {
			return emit(notes, "")
		}
		for _, n := range notes {
			fmt.Printf("%s  %s\n", n.ID, n.Title)
		}
		return nil
	},
}

var noteGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, err := sqlite.NewNotes(store).Get(args[0])
		if err != nil {
			return err
		}
		return emit(note, fmt.Sprintf("%s\n\n%s", note.Title, note.Content))
	},
}

var noteUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a note's fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sqlite.NewNotes(store).Update(args[0], noteTitle, noteContent, noteArea, noteProject); err != nil {
			return err
		}
		return emit(map[string]string{"id": args[0]}, "Updated note: "+args[0])
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sqlite.NewNotes(store).Delete(args[0]); err != nil {
			return err
		}
		return emit(map[string]string{"id": args[0]}, "Deleted note: "+args[0])
	},
}

var noteSummariseCmd = &cobra.Command{
	Use:   "summarise <id>",
	Short: "Summarise a note through the local language model",
	Long: `Summarise sends the note's title and content to the configured model
and prints the generated summary. Requires a running Ollama-compatible
server at the configured endpoint.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chat := ai.NewClient(cfg.OllamaURL, logger)
		summariser := ai.NewSummariser(sqlite.NewNotes(store), chat, cfg.OllamaModel)

		summary, err := summariser.Summarise(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return emit(map[string]string{"summary": summary}, summary)
	},
}

func init() {
	for _, c := range []*cobra.Command{noteAddCmd, noteUpdateCmd} {
		c.Flags().StringVar(&noteTitle, "title", "", "note title (required)")
		c.Flags().StringVar(&noteContent, "content", "", "note content (required)")
		c.Flags().StringVar(&noteArea, "area", "", "attached area id")
		c.Flags().StringVar(&noteProject, "project", "", "attached project id")
		_ = c.MarkFlagRequired("title")
		_ = c.MarkFlagRequired("content")
	}

	noteListCmd.Flags().StringVar(&noteArea, "area", "", "filter by area id")
	noteListCmd.Flags().StringVar(&noteProject, "project", "", "filter by project id (wins over --area)")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteGetCmd)
	noteCmd.AddCommand(noteUpdateCmd)
	noteCmd.AddCommand(noteDeleteCmd)
	noteCmd.AddCommand(noteSummariseCmd)
}

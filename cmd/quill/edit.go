package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillkit/quill"
)

var (
	editTitle   string
	editContent string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Edit an existing note",
	Long: `Edit replaces the note's title and/or content. Fields not passed keep
their current value. An edit that changes nothing is a no-op and does not
touch storage.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		ctx := context.Background()
		ctrl, err := openController(ctx)
		if err != nil {
			fatal("Failed to open note store", err)
		}

		var original *quill.Note
		for _, n := range ctrl.Notes() {
			if n.ID == id {
				original = &n
				break
			}
		}
		if original == nil {
			fatal("Note not found", fmt.Errorf("no note with id %s", id))
		}

		title := original.Title
		if cmd.Flags().Changed("title") {
			title = editTitle
		}
		content := original.Content
		if cmd.Flags().Changed("content") {
			content = editContent
		}

		session := quill.NewSession(original)
		note, ok := session.Finish(title, content)
		if !ok {
			fmt.Println("No changes.")
			return
		}

		if err := ctrl.Upsert(ctx, note); err != nil {
			fatal("Failed to save note", err)
		}
		fmt.Printf("Updated note %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content")
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillkit/quill"
)

var (
	newTitle   string
	newContent string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a note",
	Long:  `Create a note with the given title and content. An entirely empty note is discarded, not saved.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		ctrl, err := openController(ctx)
		if err != nil {
			fatal("Failed to open note store", err)
		}

		session := quill.NewSession(nil)
		note, ok := session.Finish(newTitle, newContent)
		if !ok {
			fmt.Println("Nothing to save: note is empty.")
			return
		}

		if err := ctrl.Upsert(ctx, note); err != nil {
			fatal("Failed to save note", err)
		}
		fmt.Printf("Created note %s\n", note.ID)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newTitle, "title", "t", "", "Note title")
	newCmd.Flags().StringVarP(&newContent, "content", "c", "", "Note content")
}

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Long:  `Delete permanently removes a note from the collection. There is no soft delete or undo.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		ctx := context.Background()
		ctrl, err := openController(ctx)
		if err != nil {
			fatal("Failed to open note store", err)
		}

		if err := ctrl.Delete(ctx, id); err != nil {
			fatal("Failed to delete note", err)
		}
		fmt.Printf("Deleted note %s\n", id)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

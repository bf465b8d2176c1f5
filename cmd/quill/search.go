package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search notes by title",
	Long:  `Search filters notes whose title contains the keyword, case-insensitively. A blank keyword lists everything.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		keyword := ""
		if len(args) == 1 {
			keyword = args[0]
		}

		ctx := context.Background()
		ctrl, err := openController(ctx)
		if err != nil {
			fatal("Failed to open note store", err)
		}

		for _, n := range ctrl.Search(keyword) {
			fmt.Printf("%s  %s\n", n.ID, n.Title)
		}
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

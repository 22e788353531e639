package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nitinkv/docvault/internal/bootstrap"
)

func tagsCmd(app **bootstrap.App) *cobra.Command {
	var term string

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List known tags, optionally filtered by a search term",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app

			token, err := a.Tokens.Load()
			if err != nil {
				return err
			}

			tags, err := a.TagsUC.Load(cmd.Context(), term, token)
			if err != nil {
				return err
			}

			if len(tags) == 0 {
				fmt.Println("No tags found.")
				return nil
			}
			for _, tag := range tags {
				fmt.Println(tag.Label)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&term, "term", "", "substring to match tags against")
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nitinkv/docvault/internal/bootstrap"
	"github.com/nitinkv/docvault/internal/core/domain"
)

func searchCmd(app **bootstrap.App) *cobra.Command {
	var (
		major  string
		minor  string
		tags   []string
		from   string
		to     string
		text   string
		start  int
		length int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search documents by category, tags, date range and free text",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app
			ctx := cmd.Context()

			category, err := buildCategory(major, minor)
			if err != nil {
				return err
			}
			dates, err := buildDateRange(from, to)
			if err != nil {
				return err
			}

			query, err := a.SearchUC.Build(category, buildTagSet(tags).Selected(), dates, text,
				domain.Page{Start: start, Length: length})
			if err != nil {
				return err
			}

			token, err := a.Tokens.Load()
			if err != nil {
				return err
			}

			results, err := a.SearchUC.Execute(ctx, query, token)
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Println("No documents found.")
				return nil
			}
			for _, doc := range results {
				fmt.Printf("%s\t%s/%s\t%s\t%s\n",
					doc.ID, doc.MajorHead, doc.MinorHead, doc.DocumentDate, doc.Name)
			}
			fmt.Printf("%d document(s)\n", len(results))
			return nil
		},
	}

	cmd.Flags().StringVar(&major, "major", "", "major category (Personal, Professional)")
	cmd.Flags().StringVar(&minor, "minor", "", "minor category within the major")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag filter, repeatable")
	cmd.Flags().StringVar(&from, "from", "", "earliest document date")
	cmd.Flags().StringVar(&to, "to", "", "latest document date")
	cmd.Flags().StringVar(&text, "text", "", "free-text filter")
	cmd.Flags().IntVar(&start, "start", 0, "pagination offset")
	cmd.Flags().IntVar(&length, "length", domain.DefaultPageLength, "page size")
	return cmd
}

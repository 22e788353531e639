package main

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/nitinkv/docvault/internal/bootstrap"
	"github.com/nitinkv/docvault/internal/core/domain"
)

func uploadCmd(app **bootstrap.App) *cobra.Command {
	var (
		major   string
		minor   string
		tags    []string
		date    string
		remarks string
		files   []string
	)

	cmd := &cobra.Command{
		Use:   "upload",
		Short: "Upload one or more files as a single document entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app
			ctx := cmd.Context()

			category, err := buildCategory(major, minor)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return errors.New("at least one --file is required")
			}

			documentDate := time.Now().UTC()
			if date != "" {
				documentDate, err = parseDate(date)
				if err != nil {
					return err
				}
			}

			staged := make([]domain.PendingFile, 0, len(files))
			for _, path := range files {
				pending, err := stageLocalFile(cmd, a, path)
				if err != nil {
					for _, f := range staged {
						_ = a.Stager.Discard(ctx, f)
					}
					return err
				}
				staged = append(staged, pending)
			}

			form := domain.SubmissionForm{
				Category: category,
				Tags:     buildTagSet(tags).Selected(),
				Remarks:  remarks,
				Date:     documentDate,
				Files:    staged,
				UserID:   a.Config.UserID,
			}

			token, err := a.Tokens.Load()
			if err != nil {
				return err
			}

			if err := a.Submitter().Submit(ctx, &form, token); err != nil {
				for _, f := range staged {
					_ = a.Stager.Discard(ctx, f)
				}
				return err
			}
			fmt.Printf("Uploaded %d file(s) as %s/%s\n", len(staged), major, minor)
			return nil
		},
	}

	cmd.Flags().StringVar(&major, "major", "", "major category (Personal, Professional)")
	cmd.Flags().StringVar(&minor, "minor", "", "minor category within the major")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag to attach, repeatable")
	cmd.Flags().StringVar(&date, "date", "", "document date, defaults to today")
	cmd.Flags().StringVar(&remarks, "remarks", "", "free-form remarks")
	cmd.Flags().StringArrayVar(&files, "file", nil, "file to upload, repeatable")
	_ = cmd.MarkFlagRequired("major")
	_ = cmd.MarkFlagRequired("minor")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func stageLocalFile(cmd *cobra.Command, a *bootstrap.App, path string) (domain.PendingFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.PendingFile{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return a.Stager.Stage(cmd.Context(), filepath.Base(path), mimeType, f)
}

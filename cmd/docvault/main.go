// Package main provides the docvault command line client for the remote
// document-management API: OTP login, tag-aware search and multipart
// upload from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nitinkv/docvault/internal/bootstrap"
	"github.com/nitinkv/docvault/internal/config"
)

const version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var app *bootstrap.App

	cmd := &cobra.Command{
		Use:           "docvault",
		Short:         "Client for the remote document-management API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			var err error
			app, err = bootstrap.New("docvault-cli", cfg)
			if err != nil {
				return fmt.Errorf("bootstrap: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if app != nil {
				app.Close()
			}
		},
	}

	cmd.AddCommand(loginCmd(&app))
	cmd.AddCommand(searchCmd(&app))
	cmd.AddCommand(uploadCmd(&app))
	cmd.AddCommand(tagsCmd(&app))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(*cobra.Command, []string) {
			fmt.Printf("docvault version %s\n", version)
		},
	})

	return cmd
}

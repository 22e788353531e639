package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nitinkv/docvault/internal/bootstrap"
)

func loginCmd(app **bootstrap.App) *cobra.Command {
	var phone string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with a one-time password sent to your mobile number",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := *app
			ctx := cmd.Context()

			if err := a.LoginUC.RequestOTP(ctx, phone); err != nil {
				return err
			}
			fmt.Printf("OTP sent to %s\n", phone)

			fmt.Print("Enter OTP: ")
			reader := bufio.NewReader(os.Stdin)
			otp, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("read otp: %w", err)
			}

			// VerifyOTP persists the token, later commands pick it up.
			if _, err := a.LoginUC.VerifyOTP(ctx, phone, strings.TrimSpace(otp)); err != nil {
				return err
			}
			fmt.Println("Logged in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "10-digit mobile number")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}

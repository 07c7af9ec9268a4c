// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
)

var (
	serverURL string
	username  string
	password  string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an access token using the password grant",
	Long:  `Log in against a running notes-service and print the bearer token, handy for curl sessions`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config := &oauth2.Config{
			Endpoint: oauth2.Endpoint{
				TokenURL:  strings.TrimSuffix(serverURL, "/") + "/auth/login",
				AuthStyle: oauth2.AuthStyleInParams,
			},
		}

		token, err := config.PasswordCredentialsToken(cmd.Context(), username, password)
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&serverURL, "server", "http://localhost:8080", "Base URL of the notes-service")
	tokenCmd.Flags().StringVar(&username, "username", "", "Login email")
	tokenCmd.Flags().StringVar(&password, "password", "", "Login password")

	_ = tokenCmd.MarkFlagRequired("username")
	_ = tokenCmd.MarkFlagRequired("password")
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/canonical/notes-service/internal/seed"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/pkg/authentication"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load tenants and users from a fixture",
	Long:  `Load tenants and users from a YAML fixture, the built-in demo fixture is used when --file is omitted. Records that already exist are left untouched.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fixture, err := seed.Load(seedFile)
		if err != nil {
			return err
		}

		s, logger, closer, err := openStorage()
		if err != nil {
			return err
		}
		defer closer()

		seeder := seed.NewSeeder(
			s,
			authentication.NewArgon2Hasher(authentication.DefaultArgon2Params),
			tracing.NewNoopTracer(),
			logger,
		)

		report, err := seeder.Apply(cmd.Context(), fixture)
		if err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}

		fmt.Fprintf(
			cmd.OutOrStdout(),
			"Seed complete: %d tenants created, %d users created, %d skipped\n",
			report.TenantsCreated,
			report.UsersCreated,
			report.Skipped,
		)

		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "Path to a YAML fixture")

	rootCmd.AddCommand(seedCmd)
}

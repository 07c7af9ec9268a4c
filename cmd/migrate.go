// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/notes-service/migrations"
)

var migrateFormat string

// migrateCmd applies the embedded schema migrations
var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down [version]|status|check]",
	Short:     "Run database migrations",
	Long:      `Run the embedded schema migrations against the database pointed to by --dsn or $DSN`,
	ValidArgs: []string{"up", "down", "status", "check"},
	Args:      migrateArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) > 0 {
			command = args[0]
		}

		target := int64(-1)
		if len(args) > 1 {
			target, _ = strconv.ParseInt(args[1], 10, 64)
		}

		connString, err := resolveDSN()
		if err != nil {
			return err
		}

		provider, closer, err := migrationProvider(cmd.Context(), connString, migrateFormat == "json")
		if err != nil {
			return err
		}
		defer closer()

		return runMigration(cmd.Context(), provider, command, target, migrateFormat, cmd.OutOrStdout())
	},
}

func init() {
	migrateCmd.Flags().StringVarP(&migrateFormat, "format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	if err := cobra.OnlyValidArgs(cmd, args[:1]); err != nil {
		return err
	}

	if len(args) == 2 {
		if args[0] != "down" {
			return fmt.Errorf("only down accepts a target version, got %q", args)
		}

		if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
			return fmt.Errorf("invalid version number: %q", args[1])
		}
	}

	return nil
}

func migrationProvider(ctx context.Context, connString string, quiet bool) (*goose.Provider, func(), error) {
	config, err := pgx.ParseConfig(connString)
	if err != nil {
		return nil, nil, fmt.Errorf("DSN validation failed: %w", err)
	}

	db := stdlib.OpenDB(*config)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("DB connection failed: %w", err)
	}

	var opts []goose.ProviderOption
	if quiet {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to create goose provider: %w", err)
	}

	return provider, func() { provider.Close() }, nil
}

func runMigration(ctx context.Context, provider *goose.Provider, command string, target int64, format string, out io.Writer) error {
	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}

		return printResults(out, format, results)
	case "down":
		var results []*goose.MigrationResult

		if target < 0 {
			result, err := provider.Down(ctx)
			if err != nil {
				return err
			}

			results = append(results, result)
		} else {
			var err error
			if results, err = provider.DownTo(ctx, target); err != nil {
				return err
			}
		}

		return printResults(out, format, results)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}

		return printStatus(out, format, statuses)
	case "check":
		return checkPending(ctx, provider, format, out)
	}

	return fmt.Errorf("unknown migrate command %q", command)
}

func printResults(out io.Writer, format string, results []*goose.MigrationResult) error {
	if results == nil {
		results = []*goose.MigrationResult{}
	}

	if format == "json" {
		return json.NewEncoder(out).Encode(map[string]any{"applied": results})
	}

	if len(results) == 0 {
		fmt.Fprintln(out, "No migrations to apply")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VERSION\tDIRECTION\tDURATION\tMIGRATION")

	for _, r := range results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.Source.Version, r.Direction, r.Duration.Round(time.Millisecond), r.Source.Path)
	}

	return w.Flush()
}

func printStatus(out io.Writer, format string, statuses []*goose.MigrationStatus) error {
	if format == "json" {
		return json.NewEncoder(out).Encode(statuses)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "APPLIED AT\tMIGRATION")

	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}

		fmt.Fprintf(w, "%s\t%s\n", appliedAt, s.Source.Path)
	}

	return w.Flush()
}

func checkPending(ctx context.Context, provider *goose.Provider, format string, out io.Writer) error {
	pending, err := provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read database version: %w", err)
	}

	state := "ok"
	if pending {
		state = "pending"
	}

	if format == "json" {
		if err := json.NewEncoder(out).Encode(map[string]any{"status": state, "version": current}); err != nil {
			return err
		}
	} else if !pending {
		fmt.Fprintf(out, "Database is up to date (version %d)\n", current)
	}

	if pending {
		return fmt.Errorf("migrations are pending: current version %d", current)
	}

	return nil
}

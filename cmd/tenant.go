// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/notes-service/internal/monitoring"
	"github.com/canonical/notes-service/internal/tracing"
	"github.com/canonical/notes-service/internal/types"
	"github.com/canonical/notes-service/pkg/tenant"
)

var tenantPlan string

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants directly in the database",
	Long:  `Operator commands that bypass the HTTP API and act on the database pointed to by --dsn or $DSN`,
}

var createTenantCmd = &cobra.Command{
	Use:   "create [slug] [name]",
	Short: "Create a new tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := types.ParsePlan(tenantPlan)
		if err != nil {
			return err
		}

		return withTenantService(cmd, func(svc tenant.ServiceInterface) error {
			t, err := svc.CreateTenant(cmd.Context(), args[0], args[1], plan)
			if err != nil {
				return fmt.Errorf("failed to create tenant: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Tenant created: %s (ID: %s, plan: %s)\n", t.Name, t.ID, t.Plan)
			return nil
		})
	},
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tenants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTenantService(cmd, func(svc tenant.ServiceInterface) error {
			tenants, err := svc.ListTenants(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list tenants: %w", err)
			}

			return printTenants(cmd.OutOrStdout(), tenants)
		})
	},
}

var upgradeTenantCmd = &cobra.Command{
	Use:   "upgrade [slug]",
	Short: "Move a tenant to the pro plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTenantService(cmd, func(svc tenant.ServiceInterface) error {
			plan, err := svc.Upgrade(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to upgrade tenant: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Tenant %s is now on the %s plan\n", args[0], plan)
			return nil
		})
	},
}

func init() {
	createTenantCmd.Flags().StringVar(&tenantPlan, "plan", string(types.PlanFree), "Plan of the new tenant (free or pro)")

	tenantCmd.AddCommand(createTenantCmd)
	tenantCmd.AddCommand(listTenantsCmd)
	tenantCmd.AddCommand(upgradeTenantCmd)

	rootCmd.AddCommand(tenantCmd)
}

func withTenantService(cmd *cobra.Command, fn func(tenant.ServiceInterface) error) error {
	s, logger, closer, err := openStorage()
	if err != nil {
		return err
	}
	defer closer()

	return fn(tenant.NewService(s, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("notes-service"), logger))
}

func printTenants(out io.Writer, tenants []*types.Tenant) error {
	if len(tenants) == 0 {
		fmt.Fprintln(out, "No tenants found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPLAN\tCREATED")

	for _, t := range tenants {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Plan, t.CreatedAt.Format(time.RFC3339))
	}

	return w.Flush()
}

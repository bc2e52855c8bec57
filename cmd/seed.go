// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/canonical/tenant-seed/internal/authorization"
	"github.com/canonical/tenant-seed/internal/config"
	"github.com/canonical/tenant-seed/internal/db"
	"github.com/canonical/tenant-seed/internal/fixtures"
	"github.com/canonical/tenant-seed/internal/logging"
	"github.com/canonical/tenant-seed/internal/monitoring"
	"github.com/canonical/tenant-seed/internal/monitoring/prometheus"
	"github.com/canonical/tenant-seed/internal/openfga"
	"github.com/canonical/tenant-seed/internal/storage"
	"github.com/canonical/tenant-seed/internal/tracing"
	"github.com/canonical/tenant-seed/internal/types"
	"github.com/canonical/tenant-seed/pkg/seed"
	"github.com/canonical/tenant-seed/pkg/tenant"
)

const serviceName = "tenant-seed"

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with fixture users, tenants and workspaces",
	Long:  `Seed a migrated database, list of environment variables is available in the readme`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		planFile, _ := cmd.Flags().GetString("plan")
		fixturesFile, _ := cmd.Flags().GetString("fixtures")

		return runSeed(cmd.Context(), cmd.OutOrStdout(), envFile, planFile, fixturesFile)
	},
}

func init() {
	seedCmd.Flags().String("env-file", ".env", "Optional dotenv file loaded before the environment is read")
	seedCmd.Flags().String("plan", "", "YAML tenant plan, the built-in plan is used when empty")
	seedCmd.Flags().String("fixtures", "", "YAML user fixtures, the embedded fixtures are used when empty")

	rootCmd.AddCommand(seedCmd)
}

func loadSpecs(envFile string) (*config.EnvSpec, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	return specs, nil
}

func runSeed(ctx context.Context, out io.Writer, envFile, planFile, fixturesFile string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	specs, err := loadSpecs(envFile)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor(serviceName, specs.PushgatewayURL, logger)
	defer func() {
		if err := monitor.Push(context.Background()); err != nil {
			logger.Warnf("failed to push metrics: %v", err)
		}
	}()

	tracingConfig := tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger)
	tracingConfig.SampleRatio = specs.TracingRatio
	tracer := tracing.NewTracer(tracingConfig)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := tracer.Shutdown(shutdownCtx); err != nil {
			logger.Warnf("failed to flush traces: %v", err)
		}
	}()

	plan := seed.DefaultPlan()
	if planFile != "" {
		if plan, err = seed.LoadPlanFile(planFile); err != nil {
			return err
		}
	}

	set, err := fixtures.Default()
	if fixturesFile != "" {
		set, err = fixtures.LoadFile(fixturesFile)
	}
	if err != nil {
		return err
	}

	dbClient, err := db.NewDBClient(
		db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create database client: %w", err)
	}
	defer dbClient.Close()

	if err := dbClient.Ping(ctx); err != nil {
		return fmt.Errorf("database is unreachable: %w", err)
	}

	s := storage.NewStorage(dbClient, tracer, monitor, logger)
	authorizer := newAuthorizer(specs, tracer, monitor, logger)

	orchestrator := seed.NewOrchestrator(
		s,
		tenant.NewService(s, specs.SeedConcurrency, tracer, monitor, logger),
		authorizer,
		dbClient,
		plan,
		specs.SeedTransactional,
		tracer,
		monitor,
		logger,
	)

	summary, err := seed.NewSeeder(s, orchestrator, tracer, monitor, logger).Seed(ctx, set)
	if err != nil {
		return err
	}

	printSummary(out, summary)
	return printTenants(ctx, out, s)
}

func newAuthorizer(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *authorization.Authorizer {
	if !specs.AuthorizationEnabled {
		logger.Info("Using noop authorizer")
		return authorization.NewAuthorizer(openfga.NewNoopClient(tracer, monitor, logger), tracer, monitor, logger)
	}

	logger.Info("Authorization is enabled")
	ofga := openfga.NewClient(
		openfga.NewConfig(
			specs.OpenfgaApiScheme,
			specs.OpenfgaApiHost,
			specs.OpenfgaStoreId,
			specs.OpenfgaApiToken,
			specs.OpenfgaModelId,
			specs.Debug,
			tracer,
			monitor,
			logger,
		),
	)

	return authorization.NewAuthorizer(ofga, tracer, monitor, logger)
}

func printSummary(out io.Writer, summary *types.Summary) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TABLE\tROWS")
	fmt.Fprintf(w, "roles\t%d\n", summary.Roles)
	fmt.Fprintf(w, "permissions\t%d\n", summary.Permissions)
	fmt.Fprintf(w, "users\t%d\n", summary.Users)
	fmt.Fprintf(w, "tenants\t%d\n", summary.Tenants)
	fmt.Fprintf(w, "tenant_memberships\t%d\n", summary.TenantMemberships)
	fmt.Fprintf(w, "workspaces\t%d\n", summary.Workspaces)
	fmt.Fprintf(w, "workspace_memberships\t%d\n", summary.WorkspaceMemberships)
	w.Flush()
}

func printTenants(ctx context.Context, out io.Writer, s storage.StorageInterface) error {
	tenants, err := s.ListTenants(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TENANT_ID\tNAME\tMEMBERS\tWORKSPACES")
	for _, t := range tenants {
		members, err := s.ListMembersByTenantID(ctx, t.ID)
		if err != nil {
			return err
		}

		workspaces, err := s.ListWorkspacesByTenantID(ctx, t.ID)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", t.ID, t.Name, len(members), len(workspaces))
	}

	return w.Flush()
}

// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/coffee-shop-service/migrations"
)

const (
	migrateUp     = "up"
	migrateDown   = "down"
	migrateStatus = "status"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Apply the drinks schema migrations",
	Long:      `Apply, roll back or list the embedded drinks schema migrations. The DSN defaults to the DSN environment variable.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{migrateUp, migrateDown, migrateStatus},
	RunE:      runMigrate,
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string, defaults to $DSN")
	migrateCmd.Flags().Int64("to", -1, "version to roll back to with down, defaults to the previous one")

	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := migrateUp
	if len(args) > 0 {
		command = args[0]
	}

	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		dsn = os.Getenv("DSN")
	}

	if dsn == "" {
		return fmt.Errorf("a DSN is required, use --dsn or the DSN environment variable")
	}

	to, _ := cmd.Flags().GetInt64("to")
	if to != -1 && command != migrateDown {
		return fmt.Errorf("--to only applies to down")
	}

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("invalid DSN: %w", err)
	}

	db := stdlib.OpenDB(*config)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	return migrate(cmd.Context(), provider, command, to, cmd.OutOrStdout())
}

func migrate(ctx context.Context, provider *goose.Provider, command string, to int64, out io.Writer) error {
	switch command {
	case migrateUp:
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		printResults(results, out)
	case migrateDown:
		var results []*goose.MigrationResult
		if to < 0 {
			result, err := provider.Down(ctx)
			if err != nil {
				return err
			}
			results = append(results, result)
		} else {
			var err error
			if results, err = provider.DownTo(ctx, to); err != nil {
				return err
			}
		}
		printResults(results, out)
	case migrateStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		printStatus(statuses, out)
	}

	return nil
}

func printResults(results []*goose.MigrationResult, out io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(out, "No migrations to apply")
		return
	}

	for _, r := range results {
		fmt.Fprintf(out, "%-4s %s (%v)\n", r.Direction, r.Source.Path, r.Duration)
	}
}

func printStatus(statuses []*goose.MigrationStatus, out io.Writer) {
	for _, s := range statuses {
		state := "pending"
		if s.State == goose.StateApplied {
			state = s.AppliedAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(out, "%-20s %s\n", state, s.Source.Path)
	}
}

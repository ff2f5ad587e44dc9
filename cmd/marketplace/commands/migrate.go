package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cheertaboi/marketplace-schema/cmd/marketplace/output"
	"github.com/Cheertaboi/marketplace-schema/internal/repository"
	"github.com/Cheertaboi/marketplace-schema/internal/schema"
)

var migrateReset bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the schema in the configured database",
	Long: `Create every table and index that does not exist yet. Running it
twice is a no-op.

Examples:
  marketplace migrate                           # create missing tables
  marketplace migrate --reset                   # drop every table, then create
  DB_DRIVER=sqlite3 SQLITE_PATH=dev.db marketplace migrate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMigrate(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().BoolVar(&migrateReset, "reset", false, "Drop all tables before creating them (destroys data)")
}

func runMigrate(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	conn, err := openDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer conn.Close()

	output.Info("Connected (driver %s)", conn.DriverName())
	if migrateReset {
		output.Warning("Dropping all %d tables", len(schema.Tables()))
		if err := repository.Reset(ctx, conn); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
	} else if err := repository.Migrate(ctx, conn); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	output.Success("Schema is up to date (%d tables)", len(schema.Tables()))
	return nil
}

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/Cheertaboi/marketplace-schema/internal/config"
	"github.com/Cheertaboi/marketplace-schema/pkg/db"
)

var (
	// Global flags
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "marketplace",
	Short: "Marketplace schema: DDL, migrations and record validation",
	Long: `marketplace manages the relational schema of the marketplace
(users, addresses, shops, products, models, deliveries, orders, reviews,
payments and coupons).

Configuration is read from --config (YAML) and the environment
(DB_DRIVER, DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_SSLMODE,
SQLITE_PATH, HTTP_ADDR, LOG_LEVEL, LOG_FORMAT).`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

// openDB connects to the database selected by cfg.DB.Driver.
func openDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	switch cfg.DB.Driver {
	case "sqlite3":
		return db.NewSQLiteConnection(ctx, cfg.DB.SQLitePath)
	default:
		return db.NewPostgresConnection(cfg.DB.Postgres)
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cheertaboi/marketplace-schema/internal/schema"
)

var ddlDialect string

var ddlCmd = &cobra.Command{
	Use:   "ddl",
	Short: "Print the CREATE statements of the schema",
	Long: `Print the CREATE TABLE and CREATE INDEX statements of every table in
dependency order.

Examples:
  marketplace ddl                     # PostgreSQL
  marketplace ddl --dialect sqlite    # SQLite`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := schema.ParseDialect(ddlDialect)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), schema.Script(d))
		return err
	},
}

func init() {
	rootCmd.AddCommand(ddlCmd)
	ddlCmd.Flags().StringVarP(&ddlDialect, "dialect", "d", string(schema.Postgres), "SQL dialect (postgres or sqlite)")
}

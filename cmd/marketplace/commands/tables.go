package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Cheertaboi/marketplace-schema/cmd/marketplace/output"
	"github.com/Cheertaboi/marketplace-schema/internal/schema"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables of the schema and their references",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTables()
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}

type tableSummary struct {
	Table      string   `json:"table"`
	Entity     string   `json:"entity"`
	Columns    int      `json:"columns"`
	References []string `json:"references,omitempty"`
}

func summarize() []tableSummary {
	tables := schema.Tables()
	out := make([]tableSummary, len(tables))
	for i, t := range tables {
		s := tableSummary{Table: t.Name, Entity: t.Entity, Columns: len(t.Columns)}
		for _, fk := range t.ForeignKeys() {
			s.References = append(s.References,
				fmt.Sprintf("%s → %s (%s)", fk.Name, fk.References.Table, fk.References.OnDelete))
		}
		out[i] = s
	}
	return out
}

func runTables() error {
	summaries := summarize()

	if jsonOutput {
		enc := json.NewEncoder(output.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	output.Section("Tables")
	w := tabwriter.NewWriter(output.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TABLE\tENTITY\tCOLUMNS\tREFERENCES")
	for _, s := range summaries {
		refs := strings.Join(s.References, ", ")
		if refs == "" {
			refs = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", s.Table, s.Entity, s.Columns, refs)
	}
	return w.Flush()
}

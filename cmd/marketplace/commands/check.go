package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Cheertaboi/marketplace-schema/cmd/marketplace/output"
	"github.com/Cheertaboi/marketplace-schema/internal/service"
)

var checkWorkers int

var checkCmd = &cobra.Command{
	Use:   "check <fixture.json>",
	Short: "Validate candidate records without storing them",
	Long: `Validate the records of a fixture file against the entity rules.
The file maps entity names to arrays of records:

  {"shop": [{"id": 1, "name": "Corner", ...}], "order": [...]}

Exits non-zero when any record is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(args[0])
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().IntVarP(&checkWorkers, "workers", "w", 4, "Records validated in parallel per entity")
}

func runCheck(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}
	var fixture service.Fixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return fmt.Errorf("parse fixture %s: %w", path, err)
	}

	svc := service.NewValidationService(slog.New(slog.NewTextHandler(io.Discard, nil)), service.WithWorkers(checkWorkers))
	reports, err := svc.ValidateFixture(context.Background(), fixture)
	if err != nil {
		return err
	}

	invalid := 0
	for _, r := range reports {
		invalid += r.Invalid()
	}

	if jsonOutput {
		enc := json.NewEncoder(output.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	} else {
		printReports(reports)
	}

	if invalid > 0 {
		return fmt.Errorf("%d invalid record(s)", invalid)
	}
	return nil
}

func printReports(reports []service.Report) {
	for _, r := range reports {
		output.Section(fmt.Sprintf("%s (%d)", r.Entity, len(r.Results)))
		for _, res := range r.Results {
			fmt.Fprintf(output.Out, "%s record %d\n", output.StatusIcon(res.Valid), res.Index)
			if res.Error != "" {
				output.Muted("    %s", res.Error)
			}
			for _, v := range res.Violations {
				output.Muted("    %s", v.Error())
			}
		}
	}

	total, bad := 0, 0
	for _, r := range reports {
		total += len(r.Results)
		bad += r.Invalid()
	}
	fmt.Fprintln(output.Out)
	if bad == 0 {
		output.Success("%d record(s) valid", total)
		return
	}
	output.Error("%d of %d record(s) invalid", bad, total)
}
